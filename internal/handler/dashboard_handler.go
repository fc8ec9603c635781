package handler

import (
	"github.com/gin-gonic/gin"

	"apt-be-svc/internal/service"
	"apt-be-svc/pkg/logger"
	"apt-be-svc/pkg/utils"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboardStatistics handles GET /api/v1/dashboard/statistics
// @Summary Get dashboard statistics
// @Description Occupancy, monthly income series, bill status histogram and outstanding amount
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dashboard.Stats} "Successfully retrieved dashboard statistics"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/statistics [get]
func (h *DashboardHandler) GetDashboardStatistics(c *gin.Context) {
	statistics, err := h.dashboardService.GetStatistics(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get dashboard statistics")
		utils.ErrorFromService(c, "Failed to retrieve dashboard statistics", err)
		return
	}

	utils.SuccessResponse(c, "Dashboard statistics retrieved successfully", statistics)
}

// StreamDashboard handles GET /api/v1/dashboard/stream
// @Summary Stream dashboard statistics
// @Description Server-sent events. A "stats" event is sent after every recomputation.
// @Tags dashboard
// @Produce text/event-stream
// @Success 200 {object} dashboard.Stats "Event payload"
// @Router /api/v1/dashboard/stream [get]
func (h *DashboardHandler) StreamDashboard(c *gin.Context) {
	streamEvents(c, "stats", h.dashboardService.Watch(c.Request.Context()))
}
