package handler

import (
	"github.com/gin-gonic/gin"

	"apt-be-svc/internal/inbox"
	"apt-be-svc/internal/middleware"
	"apt-be-svc/internal/service"
	"apt-be-svc/pkg/logger"
	"apt-be-svc/pkg/utils"
)

// ParcelHandler handles parcel-related HTTP requests
type ParcelHandler struct {
	parcelService service.ParcelService
	logger        *logger.Logger
}

// NewParcelHandler creates a new parcel handler
func NewParcelHandler(parcelService service.ParcelService, logger *logger.Logger) *ParcelHandler {
	return &ParcelHandler{
		parcelService: parcelService,
		logger:        logger,
	}
}

// LogArrival handles POST /api/v1/parcels
// @Summary Log parcel arrival
// @Description Records a parcel for a room and notifies its tenant
// @Tags parcels
// @Accept json
// @Produce json
// @Param request body service.LogParcelRequest true "Parcel"
// @Success 201 {object} utils.APIResponse{data=models.Parcel} "Parcel logged"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Room not found"
// @Router /api/v1/parcels [post]
func (h *ParcelHandler) LogArrival(c *gin.Context) {
	var req service.LogParcelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	parcel, err := h.parcelService.LogArrival(c.Request.Context(), &req)
	if err != nil {
		h.logger.WithError(err).WithField("room_id", req.RoomID).Error("Failed to log parcel")
		utils.ErrorFromService(c, "Failed to log parcel", err)
		return
	}

	utils.CreatedResponse(c, "Parcel logged successfully", parcel)
}

// ListParcels handles GET /api/v1/parcels
// @Summary List parcels
// @Description Tenants only see parcels of their own room
// @Tags parcels
// @Produce json
// @Param room_id query string false "Room number"
// @Param status query string false "Arrived or PickedUp"
// @Success 200 {object} utils.APIResponse{data=[]models.Parcel} "Parcels"
// @Failure 400 {object} utils.APIResponse "Invalid status"
// @Router /api/v1/parcels [get]
func (h *ParcelHandler) ListParcels(c *gin.Context) {
	roomID := c.Query("room_id")
	if viewer, ok := middleware.ViewerFromContext(c); ok && viewer.Role == inbox.RoleTenant {
		roomID = viewer.RoomID
	}

	parcels, err := h.parcelService.List(c.Request.Context(), roomID, c.Query("status"))
	if err != nil {
		utils.ErrorFromService(c, "Failed to retrieve parcels", err)
		return
	}

	utils.SuccessResponse(c, "Parcels retrieved successfully", parcels)
}

// MarkPickedUp handles POST /api/v1/parcels/:id/pickup
// @Summary Mark parcel picked up
// @Tags parcels
// @Produce json
// @Param id path string true "Parcel id"
// @Success 200 {object} utils.APIResponse{data=models.Parcel} "Parcel picked up"
// @Failure 404 {object} utils.APIResponse "Parcel not found"
// @Router /api/v1/parcels/{id}/pickup [post]
func (h *ParcelHandler) MarkPickedUp(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid parcel id", err)
		return
	}

	parcel, err := h.parcelService.MarkPickedUp(c.Request.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("parcel_id", id).Error("Failed to mark parcel picked up")
		utils.ErrorFromService(c, "Failed to mark parcel picked up", err)
		return
	}

	utils.SuccessResponse(c, "Parcel marked as picked up", parcel)
}

// DeleteParcel handles DELETE /api/v1/parcels/:id
// @Summary Delete parcel
// @Tags parcels
// @Produce json
// @Param id path string true "Parcel id"
// @Success 200 {object} utils.APIResponse "Parcel deleted"
// @Failure 404 {object} utils.APIResponse "Parcel not found"
// @Router /api/v1/parcels/{id} [delete]
func (h *ParcelHandler) DeleteParcel(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid parcel id", err)
		return
	}

	if err := h.parcelService.Delete(c.Request.Context(), id); err != nil {
		h.logger.WithError(err).WithField("parcel_id", id).Error("Failed to delete parcel")
		utils.ErrorFromService(c, "Failed to delete parcel", err)
		return
	}

	utils.SuccessResponse(c, "Parcel deleted successfully", nil)
}
