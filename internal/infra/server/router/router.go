// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/goat-farm/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	goatController        *controller.GoatController
	transactionController *controller.TransactionController
	dashboardController   *controller.DashboardController
	reportController      *controller.ReportController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	goatController *controller.GoatController,
	transactionController *controller.TransactionController,
	dashboardController *controller.DashboardController,
	reportController *controller.ReportController,
) *Router {
	return &Router{
		healthController:      healthController,
		goatController:        goatController,
		transactionController: transactionController,
		dashboardController:   dashboardController,
		reportController:      reportController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
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

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		if r.goatController != nil {
			goats := v1.Group("/goats")
			{
				goats.GET("", r.goatController.List)
				goats.POST("", r.goatController.Create)
				goats.GET("/:id", r.goatController.Get)
				goats.PUT("/:id", r.goatController.Update)
				goats.DELETE("/:id", r.goatController.Delete)
			}
		}

		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.GET("/:id", r.transactionController.Get)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.dashboardController != nil {
			v1.GET("/dashboard", r.dashboardController.Get)
		}

		if r.reportController != nil {
			reports := v1.Group("/reports")
			{
				reports.GET("/profit-loss", r.reportController.ProfitLoss)
				reports.GET("/balance-sheet", r.reportController.BalanceSheet)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
