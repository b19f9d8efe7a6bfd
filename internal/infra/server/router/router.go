// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finapple/backend/internal/integration/entrypoint/controller"
	"github.com/finapple/backend/internal/integration/entrypoint/middleware"
)

// Controllers groups the HTTP handlers served by the router.
type Controllers struct {
	Health      *controller.HealthController
	Auth        *controller.AuthController
	Wallet      *controller.WalletController
	Budget      *controller.BudgetController
	Envelope    *controller.EnvelopeController
	Investment  *controller.InvestmentController
	Transaction *controller.TransactionController
	Settings    *controller.SettingsController
	Dashboard   *controller.DashboardController
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	controllers      Controllers
	loginRateLimiter *middleware.RateLimiter
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		controllers:      controllers,
		loginRateLimiter: loginRateLimiter,
		authMiddleware:   authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.controllers.Health.Check)
}

func (r *Router) setupAPIRoutes() {
	c := r.controllers
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", r.loginRateLimiter.Middleware(), c.Auth.Login)
		auth.POST("/refresh", c.Auth.RefreshToken)
		auth.POST("/logout", c.Auth.Logout)
	}

	// Everything below requires the owner's access token
	api := v1.Group("")
	api.Use(r.authMiddleware.Authenticate())

	wallets := api.Group("/wallets")
	{
		wallets.GET("", c.Wallet.List)
		wallets.POST("", c.Wallet.Create)
		wallets.PUT("/:id", c.Wallet.Update)
		wallets.DELETE("/:id", c.Wallet.Delete)
	}

	budgets := api.Group("/budgets")
	{
		budgets.GET("", c.Budget.List)
		budgets.POST("", c.Budget.Create)
		budgets.PUT("/:id", c.Budget.Update)
		budgets.DELETE("/:id", c.Budget.Delete)
	}

	envelopes := api.Group("/envelopes")
	{
		envelopes.GET("", c.Envelope.List)
		envelopes.POST("", c.Envelope.Create)
		envelopes.GET("/:id", c.Envelope.Get)
		envelopes.PUT("/:id", c.Envelope.Update)
		envelopes.DELETE("/:id", c.Envelope.Delete)
	}

	investments := api.Group("/investments")
	{
		investments.GET("", c.Investment.List)
		investments.POST("", c.Investment.Create)
		investments.GET("/payouts", c.Investment.Payouts)
		investments.GET("/portfolio", c.Investment.Portfolio)
		investments.GET("/types/:type", c.Investment.TypeDetails)
		investments.PUT("/:id", c.Investment.Update)
		investments.DELETE("/:id", c.Investment.Delete)
	}

	transactions := api.Group("/transactions")
	{
		transactions.GET("", c.Transaction.List)
		transactions.POST("", c.Transaction.Create)
		transactions.PUT("/:id", c.Transaction.Update)
		transactions.DELETE("/:id", c.Transaction.Delete)
	}

	settings := api.Group("/settings")
	{
		settings.GET("", c.Settings.Get)
		settings.PATCH("", c.Settings.Update)
		settings.POST("/categories/:kind", c.Settings.AddCategory)
		settings.DELETE("/categories/:kind/:name", c.Settings.RemoveCategory)
		settings.POST("/currencies", c.Settings.AddCurrency)
		settings.DELETE("/currencies/:code", c.Settings.RemoveCurrency)
	}

	api.GET("/dashboard", c.Dashboard.Get)
	api.GET("/advice", c.Dashboard.Advice)
}
