package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/beauroweb/backend/internal/services"
	"github.com/beauroweb/backend/pkg/response"
)

type ActivityLogHandler struct {
	logs *services.ActivityLogService
}

func NewActivityLogHandler(logs *services.ActivityLogService) *ActivityLogHandler {
	return &ActivityLogHandler{logs: logs}
}

func (h *ActivityLogHandler) List(c *gin.Context) {
	var req services.ActivityLogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.logs.List(&req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, page)
}

func (h *ActivityLogHandler) Modules(c *gin.Context) {
	modules, err := h.logs.GetModules()
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, modules)
}

type cleanupRequest struct {
	RetentionDays int `json:"retentionDays"`
}

// Cleanup triggers an immediate purge of old entries. Without a body it
// uses the retention configured in the settings registry.
func (h *ActivityLogHandler) Cleanup(c *gin.Context) {
	var req cleanupRequest
	_ = c.ShouldBindJSON(&req)

	days := req.RetentionDays
	if days <= 0 {
		days = h.logs.RetentionDays()
	}

	deleted, err := h.logs.CleanupOld(days)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": deleted, "retentionDays": days})
}
