package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/beauroweb/backend/internal/models"
	"github.com/beauroweb/backend/internal/registry/settings"
	"github.com/beauroweb/backend/internal/registry/workflow"
)

// HealthHandler provides enhanced health check endpoints.
type HealthHandler struct {
	settings  *settings.Registry
	workflows *workflow.Registry
}

func NewHealthHandler(settingsRegistry *settings.Registry, workflowRegistry *workflow.Registry) *HealthHandler {
	return &HealthHandler{settings: settingsRegistry, workflows: workflowRegistry}
}

// CheckHealth returns the health status of all subsystems.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	overall := "healthy"

	dbStatus := "ok"
	sqlDB, err := models.GetDB().DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	}

	var pendingRequests int64
	models.GetDB().Model(&models.VerificationRequest{}).
		Where("status = ?", models.RequestPending).
		Count(&pendingRequests)

	c.JSON(200, gin.H{
		"status":  overall,
		"service": "beauroweb",
		"components": gin.H{
			"database":             dbStatus,
			"settingsSubscribers":  h.settings.SubscriberCount(),
			"workflowSubscribers":  h.workflows.SubscriberCount(),
			"pendingVerifications": pendingRequests,
		},
	})
}
