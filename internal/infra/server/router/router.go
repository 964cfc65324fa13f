// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/finance-tracker/dashboard/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/dashboard/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	dashboardController   *controller.DashboardController
	transactionController *controller.TransactionController
	accountController     *controller.AccountController
	categoryController    *controller.CategoryController
	syncController        *controller.SyncController
	mutationRateLimiter   *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	dashboardController *controller.DashboardController,
	transactionController *controller.TransactionController,
	accountController *controller.AccountController,
	categoryController *controller.CategoryController,
	syncController *controller.SyncController,
	mutationRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		dashboardController:   dashboardController,
		transactionController: transactionController,
		accountController:     accountController,
		categoryController:    categoryController,
		syncController:        syncController,
		mutationRateLimiter:   mutationRateLimiter,
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

	r.engine = gin.New()
	r.engine.Use(middleware.RequestID(), middleware.RequestLogger(), gin.Recovery())

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	limit := r.mutationLimit()

	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		if r.dashboardController != nil {
			v1.GET("/dashboard", r.dashboardController.GetDashboard)
			v1.GET("/summary", r.dashboardController.GetSummary)
			v1.GET("/chart", r.dashboardController.GetChart)
		}

		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.GET("/all", r.transactionController.ListAll)
				transactions.GET("/transfers", r.transactionController.ListTransfers)
				transactions.POST("", limit, r.transactionController.Create)
				transactions.PUT("/:id", limit, r.transactionController.Update)
				transactions.DELETE("/:id", limit, r.transactionController.Delete)
				transactions.GET("/:id/editability", r.transactionController.GetEditability)
			}
		}

		if r.accountController != nil {
			accounts := v1.Group("/accounts")
			{
				accounts.GET("", r.accountController.List)
				accounts.GET("/stats", r.accountController.Stats)
			}
		}

		if r.categoryController != nil {
			v1.GET("/categories", r.categoryController.List)
		}

		if r.syncController != nil {
			v1.POST("/sync", limit, r.syncController.Sync)
		}
	}
}

// mutationLimit returns the rate limiting handler for write routes.
func (r *Router) mutationLimit() gin.HandlerFunc {
	if r.mutationRateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return r.mutationRateLimiter.Middleware()
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
