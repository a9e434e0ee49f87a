// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/invoice-hub/backend/internal/integration/entrypoint/controller"
	"github.com/invoice-hub/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	invoiceController   *controller.InvoiceController
	analyticsController *controller.AnalyticsController
	exportController    *controller.ExportController
	chatController      *controller.ChatController
	authController      *controller.AuthController
	chatRateLimiter     *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	invoiceController *controller.InvoiceController,
	analyticsController *controller.AnalyticsController,
	exportController *controller.ExportController,
	chatController *controller.ChatController,
	authController *controller.AuthController,
	chatRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		invoiceController:   invoiceController,
		analyticsController: analyticsController,
		exportController:    exportController,
		chatController:      chatController,
		authController:      authController,
		chatRateLimiter:     chatRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupAPIRoutes()

	return r.engine
}

// setupAPIRoutes configures the main API routes. The static /invoices/user
// segment is registered alongside the /invoices/:invoiceNum parameter route;
// Gin resolves static paths first.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")
	{
		api.GET("/health", r.healthController.Check)

		invoices := api.Group("/invoices")
		{
			invoices.GET("", r.invoiceController.List)
			invoices.GET("/user", r.authMiddleware.Authenticate(), r.invoiceController.ListOwn)
			invoices.POST("/user", r.authMiddleware.Authenticate(), r.invoiceController.CreateOwn)
			invoices.GET("/:invoiceNum", r.invoiceController.Get)
			invoices.PUT("/:invoiceNum", r.invoiceController.Update)
		}

		api.GET("/analytics/summary", r.analyticsController.Summary)
		api.GET("/vendors", r.invoiceController.Vendors)
		api.GET("/export/invoices", r.exportController.Download)

		api.POST("/chat", r.chatRateLimiter.Middleware(), r.chatController.Ask)

		auth := api.Group("/auth")
		{
			auth.GET("/google", r.authController.GoogleLogin)
			auth.GET("/google/callback", r.authController.GoogleCallback)
			auth.GET("/user", r.authMiddleware.Authenticate(), r.authController.Me)
			auth.GET("/logout", r.authController.Logout)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
