package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/beauroweb/backend/internal/services"
	"github.com/beauroweb/backend/pkg/response"
)

type DashboardHandler struct {
	dashboard *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetStats returns dashboard statistics
// GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboard.GetStats()
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, stats)
}
