package handler

import (
	"github.com/gin-gonic/gin"

	"apt-be-svc/internal/inbox"
	"apt-be-svc/internal/middleware"
	"apt-be-svc/internal/service"
	"apt-be-svc/pkg/logger"
	"apt-be-svc/pkg/utils"
)

// NotificationHandler serves the caller's inbox
type NotificationHandler struct {
	notificationService service.NotificationService
	logger              *logger.Logger
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService service.NotificationService, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

// ListNotifications handles GET /api/v1/notifications
// @Summary List notifications
// @Description Notifications visible to the caller, newest first, with the caller's unread count
// @Tags notifications
// @Produce json
// @Success 200 {object} utils.APIResponse{data=inbox.View} "Inbox"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Router /api/v1/notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	viewer, ok := h.viewer(c)
	if !ok {
		return
	}

	view, err := h.notificationService.List(c.Request.Context(), viewer)
	if err != nil {
		h.logger.WithError(err).WithField("viewer_id", viewer.ID).Error("Failed to list notifications")
		utils.ErrorFromService(c, "Failed to retrieve notifications", err)
		return
	}

	utils.SuccessResponse(c, "Notifications retrieved successfully", view)
}

// MarkRead handles POST /api/v1/notifications/:id/read
// @Summary Mark notification read
// @Description Idempotent. Only affects the caller.
// @Tags notifications
// @Produce json
// @Param id path string true "Notification id"
// @Success 200 {object} utils.APIResponse "Marked"
// @Failure 404 {object} utils.APIResponse "Notification not found or not visible"
// @Router /api/v1/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	viewer, ok := h.viewer(c)
	if !ok {
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid notification id", err)
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), viewer, id); err != nil {
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"viewer_id":       viewer.ID,
			"notification_id": id,
		}).Warn("Failed to mark notification read")
		utils.ErrorFromService(c, "Failed to mark notification read", err)
		return
	}

	utils.SuccessResponse(c, "Notification marked as read", nil)
}

// MarkAllRead handles POST /api/v1/notifications/read-all
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Success 200 {object} utils.APIResponse{data=map[string]int} "Number of notifications marked"
// @Router /api/v1/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	viewer, ok := h.viewer(c)
	if !ok {
		return
	}

	marked, err := h.notificationService.MarkAllRead(c.Request.Context(), viewer)
	if err != nil {
		h.logger.WithError(err).WithField("viewer_id", viewer.ID).Error("Failed to mark notifications read")
		utils.ErrorFromService(c, "Failed to mark notifications read", err)
		return
	}

	utils.SuccessResponse(c, "Notifications marked as read", gin.H{"marked": marked})
}

// StreamNotifications handles GET /api/v1/notifications/stream
// @Summary Stream inbox
// @Description Server-sent events. Each "inbox" event carries the caller's full inbox.
// @Tags notifications
// @Produce text/event-stream
// @Success 200 {object} inbox.View "Event payload"
// @Router /api/v1/notifications/stream [get]
func (h *NotificationHandler) StreamNotifications(c *gin.Context) {
	viewer, ok := h.viewer(c)
	if !ok {
		return
	}
	streamEvents(c, "inbox", h.notificationService.Watch(c.Request.Context(), viewer))
}

func (h *NotificationHandler) viewer(c *gin.Context) (inbox.Viewer, bool) {
	viewer, ok := middleware.ViewerFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return inbox.Viewer{}, false
	}
	return viewer, true
}
