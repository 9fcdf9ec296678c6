package main

import (
	"github.com/gin-gonic/gin"

	"github.com/beauroweb/backend/internal/handlers"
	"github.com/beauroweb/backend/internal/middleware"
	"github.com/beauroweb/backend/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger("/api/global-settings/stream", "/api/workflows/stream", "/health"), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	apiLimiter := middleware.NewRateLimiter(50, 100).
		SkipPrefix("/api/global-settings/stream", "/api/workflows/stream")
	r.Use(apiLimiter.Middleware())
	r.Use(middleware.AuditLog(svc.activityLog))

	// Health check
	healthHandler := handlers.NewHealthHandler(svc.settingsRegistry, svc.workflowRegistry)
	r.GET("/health", healthHandler.CheckHealth)

	// API routes
	api := r.Group("/api")
	{
		eventsHandler := handlers.NewEventsHandler(svc.settingsRegistry, svc.workflowRegistry)

		// Global settings
		settingsHandler := handlers.NewSettingsHandler(svc.settingsRegistry)
		api.GET("/global-settings", settingsHandler.List)
		api.GET("/global-settings/types", settingsHandler.DataTypes)
		api.GET("/global-settings/stream", eventsHandler.StreamSettings)
		api.GET("/global-settings/:id", settingsHandler.Get)
		api.POST("/global-settings", settingsHandler.Create)
		api.PUT("/global-settings/:id", settingsHandler.Update)
		api.DELETE("/global-settings/:id", settingsHandler.Delete)
		api.POST("/global-settings/:id/toggle", settingsHandler.ToggleActive)

		// Workflows
		workflowHandler := handlers.NewWorkflowHandler(svc.workflowRegistry)
		api.GET("/workflows", workflowHandler.List)
		api.GET("/workflows/types", workflowHandler.Types)
		api.GET("/workflows/stream", eventsHandler.StreamWorkflows)
		api.GET("/workflows/:id", workflowHandler.Get)
		api.POST("/workflows", workflowHandler.Create)
		api.PUT("/workflows/:id", workflowHandler.Update)
		api.DELETE("/workflows/:id", workflowHandler.Delete)
		api.POST("/workflows/:id/toggle", workflowHandler.ToggleActive)

		// Users
		userHandler := handlers.NewUserHandler(svc.userService)
		api.GET("/users", userHandler.List)
		api.GET("/users/:id", userHandler.Get)
		api.POST("/users", userHandler.Create)
		api.PUT("/users/:id", userHandler.Update)
		api.DELETE("/users/:id", userHandler.Delete)
		api.POST("/users/:id/toggle", userHandler.ToggleStatus)

		// Directory profiles
		profileHandler := handlers.NewProfileHandler(svc.profileService)
		api.GET("/bureau-profiles", profileHandler.ListBureaus)
		api.GET("/bureau-profiles/:id", profileHandler.GetBureau)
		api.GET("/individual-profiles", profileHandler.ListIndividuals)
		api.GET("/individual-profiles/:id", profileHandler.GetIndividual)

		// Verification request queue
		queueHandler := handlers.NewQueueHandler(svc.queueService)
		api.GET("/requests", queueHandler.List)
		api.GET("/requests/:id", queueHandler.Get)
		api.POST("/requests/:id/approve", queueHandler.Approve)
		api.POST("/requests/:id/revise", queueHandler.Revise)
		api.POST("/requests/:id/reject", queueHandler.Reject)

		// Dashboard
		dashboardHandler := handlers.NewDashboardHandler(svc.dashboardService)
		api.GET("/dashboard/stats", dashboardHandler.GetStats)

		// Activity logs
		activityLogHandler := handlers.NewActivityLogHandler(svc.activityLog)
		api.GET("/activity-logs", activityLogHandler.List)
		api.GET("/activity-logs/modules", activityLogHandler.Modules)
		api.POST("/activity-logs/cleanup", activityLogHandler.Cleanup)
	}
}
