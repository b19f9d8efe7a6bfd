package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController handles health check endpoints.
type HealthController struct {
	store Pinger
	cache Pinger
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache,omitempty"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance. cache may be nil.
func NewHealthController(store, cache Pinger) *HealthController {
	return &HealthController{
		store: store,
		cache: cache,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	response := HealthResponse{
		Status:    "ok",
		Database:  status(ctx, h.store),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if h.cache != nil {
		response.Cache = status(ctx, h.cache)
	}

	c.JSON(http.StatusOK, response)
}

func status(ctx context.Context, p Pinger) string {
	if p != nil && p.Ping(ctx) == nil {
		return "connected"
	}
	return "disconnected"
}
