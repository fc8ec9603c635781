package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"apt-be-svc/internal/models"
	"apt-be-svc/internal/service"
	"apt-be-svc/pkg/logger"
	"apt-be-svc/pkg/utils"
)

// RegisterTenantRequest moves a tenant into a vacant room
type RegisterTenantRequest struct {
	TenantName string `json:"tenant_name" binding:"required"`
}

// RoomHandler handles room-related HTTP requests
type RoomHandler struct {
	roomService service.RoomService
	logger      *logger.Logger
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomService service.RoomService, logger *logger.Logger) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
		logger:      logger,
	}
}

// CreateRoom handles POST /api/v1/rooms
// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body service.CreateRoomRequest true "Room"
// @Success 201 {object} utils.APIResponse{data=models.Room} "Room created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 409 {object} utils.APIResponse "Room already exists"
// @Router /api/v1/rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req service.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), &req)
	if err != nil {
		h.logger.WithError(err).WithField("room_id", req.ID).Error("Failed to create room")
		utils.ErrorFromService(c, "Failed to create room", err)
		return
	}

	utils.CreatedResponse(c, "Room created successfully", room)
}

// ListRooms handles GET /api/v1/rooms
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Param status query string false "Vacant, Occupied or Maintenance"
// @Success 200 {object} utils.APIResponse{data=[]models.Room} "Rooms"
// @Failure 400 {object} utils.APIResponse "Invalid status"
// @Router /api/v1/rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.roomService.ListRooms(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.logger.WithError(err).Error("Failed to list rooms")
		utils.ErrorFromService(c, "Failed to retrieve rooms", err)
		return
	}

	utils.SuccessResponse(c, "Rooms retrieved successfully", rooms)
}

// GetRoom handles GET /api/v1/rooms/:id
// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room number"
// @Success 200 {object} utils.APIResponse{data=models.Room} "Room"
// @Failure 404 {object} utils.APIResponse "Room not found"
// @Router /api/v1/rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid room id", err)
		return
	}

	room, err := h.roomService.GetRoom(c.Request.Context(), id)
	if err != nil {
		utils.ErrorFromService(c, "Failed to retrieve room", err)
		return
	}

	utils.SuccessResponse(c, "Room retrieved successfully", room)
}

// UpdateRoom handles PUT /api/v1/rooms/:id
// @Summary Update room
// @Description Admin edit. Status and tenant must stay consistent.
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room number"
// @Param request body service.UpdateRoomRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=models.Room} "Room updated"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Room not found"
// @Router /api/v1/rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid room id", err)
		return
	}
	var req service.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	room, err := h.roomService.UpdateRoom(c.Request.Context(), id, &req)
	if err != nil {
		h.logger.WithError(err).WithField("room_id", id).Error("Failed to update room")
		utils.ErrorFromService(c, "Failed to update room", err)
		return
	}

	utils.SuccessResponse(c, "Room updated successfully", room)
}

// DeleteRoom handles DELETE /api/v1/rooms/:id
// @Summary Delete room
// @Tags rooms
// @Produce json
// @Param id path string true "Room number"
// @Success 200 {object} utils.APIResponse "Room deleted"
// @Failure 404 {object} utils.APIResponse "Room not found"
// @Router /api/v1/rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid room id", err)
		return
	}

	if err := h.roomService.DeleteRoom(c.Request.Context(), id); err != nil {
		h.logger.WithError(err).WithField("room_id", id).Error("Failed to delete room")
		utils.ErrorFromService(c, "Failed to delete room", err)
		return
	}

	utils.SuccessResponse(c, "Room deleted successfully", nil)
}

// Register handles POST /api/v1/rooms/:id/register
// @Summary Register tenant
// @Description Vacant room becomes Occupied by the tenant
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room number"
// @Param request body RegisterTenantRequest true "Tenant"
// @Success 200 {object} utils.APIResponse{data=models.Room} "Room occupied"
// @Failure 409 {object} utils.APIResponse "Room is not vacant"
// @Router /api/v1/rooms/{id}/register [post]
func (h *RoomHandler) Register(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid room id", err)
		return
	}
	var req RegisterTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	room, err := h.roomService.Register(c.Request.Context(), id, req.TenantName)
	if err != nil {
		h.logger.WithError(err).WithField("room_id", id).Warn("Failed to register tenant")
		utils.ErrorFromService(c, "Failed to register tenant", err)
		return
	}

	utils.SuccessResponse(c, "Tenant registered successfully", room)
}

// Vacate handles POST /api/v1/rooms/:id/vacate
// @Summary Vacate room
// @Tags rooms
// @Produce json
// @Param id path string true "Room number"
// @Success 200 {object} utils.APIResponse{data=models.Room} "Room vacant"
// @Failure 409 {object} utils.APIResponse "Room is not occupied"
// @Router /api/v1/rooms/{id}/vacate [post]
func (h *RoomHandler) Vacate(c *gin.Context) {
	h.transition(c, "Room vacated successfully", h.roomService.Vacate)
}

// StartMaintenance handles POST /api/v1/rooms/:id/maintenance
// @Summary Start maintenance
// @Tags rooms
// @Produce json
// @Param id path string true "Room number"
// @Success 200 {object} utils.APIResponse{data=models.Room} "Room under maintenance"
// @Failure 409 {object} utils.APIResponse "Room is not vacant"
// @Router /api/v1/rooms/{id}/maintenance [post]
func (h *RoomHandler) StartMaintenance(c *gin.Context) {
	h.transition(c, "Maintenance started successfully", h.roomService.StartMaintenance)
}

// FinishRepair handles POST /api/v1/rooms/:id/maintenance/finish
// @Summary Finish repair
// @Tags rooms
// @Produce json
// @Param id path string true "Room number"
// @Success 200 {object} utils.APIResponse{data=models.Room} "Room vacant"
// @Failure 409 {object} utils.APIResponse "Room is not under maintenance"
// @Router /api/v1/rooms/{id}/maintenance/finish [post]
func (h *RoomHandler) FinishRepair(c *gin.Context) {
	h.transition(c, "Repair finished successfully", h.roomService.FinishRepair)
}

// StreamRooms handles GET /api/v1/rooms/stream
// @Summary Stream rooms
// @Description Server-sent events. Each "rooms" event carries the full filtered list.
// @Tags rooms
// @Produce text/event-stream
// @Param status query string false "Vacant, Occupied or Maintenance"
// @Success 200 {array} models.Room "Event payload"
// @Router /api/v1/rooms/stream [get]
func (h *RoomHandler) StreamRooms(c *gin.Context) {
	streamEvents(c, "rooms", h.roomService.WatchRooms(c.Request.Context(), c.Query("status")))
}

func (h *RoomHandler) transition(c *gin.Context, message string, apply func(ctx context.Context, id string) (*models.Room, error)) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid room id", err)
		return
	}

	room, err := apply(c.Request.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("room_id", id).Warn("Room transition rejected")
		utils.ErrorFromService(c, "Failed to update room status", err)
		return
	}

	utils.SuccessResponse(c, message, room)
}
