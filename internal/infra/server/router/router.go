// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/salon-manager/backend/internal/domain/entity"
	"github.com/salon-manager/backend/internal/integration/entrypoint/controller"
	"github.com/salon-manager/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	appointmentController *controller.AppointmentController
	agendaController      *controller.AgendaController
	dashboardController   *controller.DashboardController
	revenueController     *controller.RevenueController
	clientController      *controller.ClientController
	serviceController     *controller.ServiceController
	sheetController       *controller.SheetController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	appointmentController *controller.AppointmentController,
	agendaController *controller.AgendaController,
	dashboardController *controller.DashboardController,
	revenueController *controller.RevenueController,
	clientController *controller.ClientController,
	serviceController *controller.ServiceController,
	sheetController *controller.SheetController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		appointmentController: appointmentController,
		agendaController:      agendaController,
		dashboardController:   dashboardController,
		revenueController:     revenueController,
		clientController:      clientController,
		serviceController:     serviceController,
		sheetController:       sheetController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
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
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)

				if r.authMiddleware != nil {
					auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
					auth.GET("/users",
						r.authMiddleware.Authenticate(),
						r.authMiddleware.RequireRoles(entity.UserRoleAdmin),
						r.authController.ListUsers,
					)
				}
			}
		}

		// Appointment routes (require authentication)
		if r.appointmentController != nil && r.authMiddleware != nil {
			appointments := v1.Group("/appointments")
			appointments.Use(r.authMiddleware.Authenticate())
			{
				appointments.GET("", r.appointmentController.List)
				appointments.GET("/date/:date", r.appointmentController.ListByDate)
				appointments.POST("", r.appointmentController.Create)
				appointments.PUT("/:id", r.appointmentController.Update)
				appointments.PATCH("/:id/status", r.appointmentController.SetStatus)
				appointments.DELETE("/:id", r.appointmentController.Delete)
			}
		}

		// Agenda route (requires authentication)
		if r.agendaController != nil && r.authMiddleware != nil {
			v1.GET("/agenda", r.authMiddleware.Authenticate(), r.agendaController.GetAgenda)
		}

		// Dashboard route (requires authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			v1.GET("/dashboard/summary", r.authMiddleware.Authenticate(), r.dashboardController.GetSummary)
		}

		// Revenue route (requires authentication)
		if r.revenueController != nil && r.authMiddleware != nil {
			v1.GET("/revenue/stats", r.authMiddleware.Authenticate(), r.revenueController.GetStats)
		}

		// Client routes (require authentication)
		if r.clientController != nil && r.authMiddleware != nil {
			clients := v1.Group("/clients")
			clients.Use(r.authMiddleware.Authenticate())
			{
				clients.GET("", r.clientController.List)
				clients.POST("", r.clientController.Create)
				clients.DELETE("/:id", r.clientController.Delete)
			}
		}

		// Service catalog routes (require authentication)
		if r.serviceController != nil && r.authMiddleware != nil {
			services := v1.Group("/services")
			services.Use(r.authMiddleware.Authenticate())
			{
				services.GET("", r.serviceController.List)
				services.POST("", r.serviceController.Create)
				services.PUT("/:id", r.serviceController.Update)
				services.DELETE("/:id", r.serviceController.Delete)
			}
		}

		// Technical sheet routes (require authentication)
		if r.sheetController != nil && r.authMiddleware != nil {
			sheets := v1.Group("/sheets")
			sheets.Use(r.authMiddleware.Authenticate())
			{
				sheets.POST("", r.sheetController.Create)
				sheets.GET("/client/:clientId", r.sheetController.ListByClient)
				sheets.DELETE("/:id", r.sheetController.Delete)
			}
		}
	}
}
