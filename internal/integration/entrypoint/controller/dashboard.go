package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finapple/backend/internal/application/usecase/advice"
	"github.com/finapple/backend/internal/application/usecase/dashboard"
	"github.com/finapple/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles the home screen summary and the daily tip.
type DashboardController struct {
	dashboardUseCase *dashboard.GetDashboardUseCase
	adviceUseCase    *advice.GetAdviceUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	dashboardUseCase *dashboard.GetDashboardUseCase,
	adviceUseCase *advice.GetAdviceUseCase,
) *DashboardController {
	return &DashboardController{
		dashboardUseCase: dashboardUseCase,
		adviceUseCase:    adviceUseCase,
	}
}

// Get handles GET /dashboard requests.
func (c *DashboardController) Get(ctx *gin.Context) {
	output, err := c.dashboardUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// Advice handles GET /dashboard/advice requests.
func (c *DashboardController) Advice(ctx *gin.Context) {
	output, err := c.adviceUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAdviceResponse(output))
}
