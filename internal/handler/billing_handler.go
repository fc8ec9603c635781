package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"apt-be-svc/internal/billing"
	"apt-be-svc/internal/inbox"
	"apt-be-svc/internal/middleware"
	"apt-be-svc/internal/service"
	"apt-be-svc/pkg/apperror"
	"apt-be-svc/pkg/logger"
	"apt-be-svc/pkg/utils"
)

// BulkMonthlyRentRequest represents the request for bulk rent creation
type BulkMonthlyRentRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`     // Month 1-12
	Year  int `json:"year" binding:"required,min=2020,max=2100"` // Reasonable year range
}

// ChargeIDsRequest selects charges by id
type ChargeIDsRequest struct {
	ChargeIDs []string `json:"charge_ids" binding:"required,min=1"`
}

// SubmitProofRequest attaches a payment proof to charges
type SubmitProofRequest struct {
	ChargeIDs []string `json:"charge_ids" binding:"required,min=1"`
	ProofRef  string   `json:"proof_ref" binding:"required"`
}

// GroupProofRequest attaches a payment proof to a whole bill group
type GroupProofRequest struct {
	ProofRef string `json:"proof_ref" binding:"required"`
}

// BillingHandler handles billing-related HTTP requests
type BillingHandler struct {
	billingService service.BillingService
	logger         *logger.Logger
}

// NewBillingHandler creates a new BillingHandler instance
func NewBillingHandler(billingService service.BillingService, logger *logger.Logger) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		logger:         logger,
	}
}

// CreateCharge creates one itemized charge
// @Summary Create charge
// @Description Create a single charge (rent, water, electricity, maintenance or other) for a room
// @Tags billings
// @Accept json
// @Produce json
// @Param request body service.CreateChargeRequest true "Charge"
// @Success 201 {object} utils.APIResponse{data=models.Charge} "Charge created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/billings/charges [post]
func (h *BillingHandler) CreateCharge(c *gin.Context) {
	var req service.CreateChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	charge, err := h.billingService.CreateCharge(c.Request.Context(), &req)
	if err != nil {
		h.logger.WithError(err).WithField("room", req.Room).Error("Failed to create charge")
		utils.ErrorFromService(c, "Failed to create charge", err)
		return
	}

	utils.CreatedResponse(c, "Charge created successfully", charge)
}

// CreateMonthlyBill creates the itemized charges of one monthly bill
// @Summary Create monthly bill
// @Description Create one charge per non-zero item (rent, water, electricity, maintenance, other) sharing a due date
// @Tags billings
// @Accept json
// @Produce json
// @Param request body service.MonthlyBillRequest true "Monthly bill form"
// @Success 201 {object} utils.APIResponse{data=[]models.Charge} "Charges created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/billings/monthly [post]
func (h *BillingHandler) CreateMonthlyBill(c *gin.Context) {
	var req service.MonthlyBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	charges, err := h.billingService.CreateMonthlyBill(c.Request.Context(), &req)
	if err != nil {
		h.logger.WithError(err).WithField("room", req.Room).Error("Failed to create monthly bill")
		utils.ErrorFromService(c, "Failed to create monthly bill", err)
		return
	}

	utils.CreatedResponse(c, "Monthly bill created successfully", charges)
}

// CreateBulkMonthlyRent creates rent charges for every occupied room
// @Summary Create bulk monthly rent
// @Description Create the rent charge of the given month for every occupied room. Rooms already billed for that month are skipped.
// @Tags billings
// @Accept json
// @Produce json
// @Param request body BulkMonthlyRentRequest true "Bulk rent request with month and year"
// @Success 200 {object} utils.APIResponse{data=service.BulkBillingResponse} "Bulk billing creation result"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/billings/bulk-monthly [post]
func (h *BillingHandler) CreateBulkMonthlyRent(c *gin.Context) {
	var req BulkMonthlyRentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	response, err := h.billingService.CreateBulkMonthlyRent(c.Request.Context(), req.Month, req.Year)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create bulk rent")
		utils.ErrorFromService(c, "Failed to create billings", err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"total_rooms":    response.TotalRooms,
		"total_billings": response.TotalBillings,
		"success_count":  response.SuccessCount,
		"failed_count":   response.FailedCount,
	}).Info("Bulk rent created successfully")

	utils.SuccessResponse(c, "Bulk billings created successfully", response)
}

// ListGroups lists the monthly bill groups
// @Summary List bill groups
// @Description List bills grouped by room and month, most recent month first. Tenants only see their own room.
// @Tags billings
// @Produce json
// @Param room query string false "Room number"
// @Param month query string false "Month label YYYY-MM"
// @Param status query string false "Pending, PendingReview, Paid or Overdue"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} utils.PaginatedResponse{data=[]billing.Group} "Bill groups"
// @Failure 400 {object} utils.APIResponse "Bad request - invalid parameters"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/billings/groups [get]
func (h *BillingHandler) ListGroups(c *gin.Context) {
	filter, ok := h.groupFilter(c)
	if !ok {
		return
	}
	page, limit := utils.GetPaginationParams(c)

	list, err := h.billingService.ListGroups(c.Request.Context(), filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list bill groups")
		utils.ErrorFromService(c, "Failed to retrieve bill groups", err)
		return
	}
	if len(list.Skipped) > 0 {
		c.Header("X-Skipped-Charges", joinSkipped(list.Skipped))
	}

	utils.PaginatedSuccessResponse(c, "Bill groups retrieved successfully",
		utils.Paginate(list.Groups, page, limit), page, limit, int64(len(list.Groups)))
}

// GetGroup returns one bill group
// @Summary Get bill group
// @Tags billings
// @Produce json
// @Param id path string true "Group id <room>_<YYYY-MM>"
// @Success 200 {object} utils.APIResponse{data=billing.Group} "Bill group"
// @Failure 400 {object} utils.APIResponse "Malformed group id"
// @Failure 404 {object} utils.APIResponse "Group not found"
// @Router /api/v1/billings/groups/{id} [get]
func (h *BillingHandler) GetGroup(c *gin.Context) {
	group, ok := h.visibleGroup(c)
	if !ok {
		return
	}
	utils.SuccessResponse(c, "Bill group retrieved successfully", group)
}

// VerifyGroup marks every member of a group as paid
// @Summary Verify payment
// @Description Mark all charges of the group as Paid and notify the room
// @Tags billings
// @Produce json
// @Param id path string true "Group id <room>_<YYYY-MM>"
// @Success 200 {object} utils.APIResponse{data=service.TransitionResult} "Verification result"
// @Failure 404 {object} utils.APIResponse "Group not found"
// @Failure 503 {object} utils.APIResponse "Some writes failed, retry"
// @Router /api/v1/billings/groups/{id}/verify [post]
func (h *BillingHandler) VerifyGroup(c *gin.Context) {
	groupID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid group id", err)
		return
	}

	result, err := h.billingService.Verify(c.Request.Context(), groupID)
	if err != nil {
		h.logger.WithError(err).WithField("group_id", groupID).Error("Failed to verify payment")
		utils.ErrorFromService(c, "Failed to verify payment", err)
		return
	}

	utils.SuccessResponse(c, "Payment verified successfully", result)
}

// SubmitGroupProof attaches a proof of payment to the unpaid members of a group
// @Summary Submit payment proof for a group
// @Description Pending and Overdue members go to review. Tenants may only submit for their own room.
// @Tags billings
// @Accept json
// @Produce json
// @Param id path string true "Group id <room>_<YYYY-MM>"
// @Param request body GroupProofRequest true "Proof reference"
// @Success 200 {object} utils.APIResponse{data=service.TransitionResult} "Submission result"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Group not found"
// @Failure 409 {object} utils.APIResponse "Group has no unpaid charges"
// @Router /api/v1/billings/groups/{id}/submit-proof [post]
func (h *BillingHandler) SubmitGroupProof(c *gin.Context) {
	var req GroupProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	group, ok := h.visibleGroup(c)
	if !ok {
		return
	}

	result, err := h.billingService.SubmitGroupProof(c.Request.Context(), group.ID, req.ProofRef)
	if err != nil {
		h.logger.WithError(err).WithField("group_id", group.ID).Error("Failed to submit payment proof")
		utils.ErrorFromService(c, "Failed to submit payment proof", err)
		return
	}

	utils.SuccessResponse(c, "Payment proof submitted successfully", result)
}

// SubmitProof attaches a proof of payment to charges
// @Summary Submit payment proof
// @Description Tenants may only name charges of their own room
// @Tags billings
// @Accept json
// @Produce json
// @Param request body SubmitProofRequest true "Charge ids and proof reference"
// @Success 200 {object} utils.APIResponse{data=service.TransitionResult} "Submission result"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Charge not found"
// @Failure 409 {object} utils.APIResponse "A charge is already paid"
// @Router /api/v1/billings/submit-proof [post]
func (h *BillingHandler) SubmitProof(c *gin.Context) {
	var req SubmitProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	room := ""
	if viewer, ok := middleware.ViewerFromContext(c); ok && viewer.Role == inbox.RoleTenant {
		room = viewer.RoomID
	}

	result, err := h.billingService.SubmitProof(c.Request.Context(), room, req.ChargeIDs, req.ProofRef)
	if err != nil {
		h.logger.WithError(err).WithField("charge_ids", req.ChargeIDs).Error("Failed to submit payment proof")
		utils.ErrorFromService(c, "Failed to submit payment proof", err)
		return
	}

	utils.SuccessResponse(c, "Payment proof submitted successfully", result)
}

// DeleteCharges deletes charges by id
// @Summary Delete charges
// @Tags billings
// @Accept json
// @Produce json
// @Param request body ChargeIDsRequest true "Charge ids"
// @Success 200 {object} utils.APIResponse{data=service.TransitionResult} "Deletion result"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "None of the charges exist"
// @Router /api/v1/billings/delete [post]
func (h *BillingHandler) DeleteCharges(c *gin.Context) {
	var req ChargeIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	result, err := h.billingService.DeleteCharges(c.Request.Context(), req.ChargeIDs)
	if err != nil {
		h.logger.WithError(err).WithField("charge_ids", req.ChargeIDs).Error("Failed to delete charges")
		utils.ErrorFromService(c, "Failed to delete charges", err)
		return
	}

	utils.SuccessResponse(c, "Charges deleted successfully", result)
}

// DeleteGroup deletes every member of a group
// @Summary Delete bill group
// @Tags billings
// @Produce json
// @Param id path string true "Group id <room>_<YYYY-MM>"
// @Success 200 {object} utils.APIResponse{data=service.TransitionResult} "Deletion result"
// @Failure 404 {object} utils.APIResponse "Group not found"
// @Router /api/v1/billings/groups/{id} [delete]
func (h *BillingHandler) DeleteGroup(c *gin.Context) {
	groupID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid group id", err)
		return
	}

	result, err := h.billingService.DeleteGroup(c.Request.Context(), groupID)
	if err != nil {
		h.logger.WithError(err).WithField("group_id", groupID).Error("Failed to delete bill group")
		utils.ErrorFromService(c, "Failed to delete bill group", err)
		return
	}

	utils.SuccessResponse(c, "Bill group deleted successfully", result)
}

// SendOverdueReminders notifies rooms with overdue bills
// @Summary Send overdue reminders
// @Description Notify every room with an overdue bill. A room is reminded at most once per day per bill.
// @Tags billings
// @Produce json
// @Success 200 {object} utils.APIResponse{data=service.ReminderResult} "Reminder result"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/billings/reminders [post]
func (h *BillingHandler) SendOverdueReminders(c *gin.Context) {
	result, err := h.billingService.SendOverdueReminders(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to send overdue reminders")
		utils.ErrorFromService(c, "Failed to send overdue reminders", err)
		return
	}

	utils.SuccessResponse(c, "Overdue reminders sent successfully", result)
}

// ExportGroups downloads bill groups as an Excel workbook
// @Summary Export bill groups
// @Tags billings
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param room query string false "Room number"
// @Param month query string false "Month label YYYY-MM"
// @Param status query string false "Pending, PendingReview, Paid or Overdue"
// @Success 200 {file} file "Excel workbook"
// @Failure 400 {object} utils.APIResponse "Bad request - invalid parameters"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/billings/export [get]
func (h *BillingHandler) ExportGroups(c *gin.Context) {
	filter, ok := h.groupFilter(c)
	if !ok {
		return
	}

	content, filename, err := h.billingService.ExportGroupsToExcel(c.Request.Context(), filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to export bill groups")
		utils.ErrorFromService(c, "Failed to export bill groups", err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

// StreamGroups pushes the bill group list whenever charges change
// @Summary Stream bill groups
// @Description Server-sent events. Each "groups" event carries the full filtered list.
// @Tags billings
// @Produce text/event-stream
// @Param room query string false "Room number"
// @Param month query string false "Month label YYYY-MM"
// @Param status query string false "Pending, PendingReview, Paid or Overdue"
// @Success 200 {object} service.GroupList "Event payload"
// @Router /api/v1/billings/groups/stream [get]
func (h *BillingHandler) StreamGroups(c *gin.Context) {
	filter, ok := h.groupFilter(c)
	if !ok {
		return
	}
	streamEvents(c, "groups", h.billingService.WatchGroups(c.Request.Context(), filter))
}

// groupFilter reads the query filter. Tenants are pinned to their own room.
func (h *BillingHandler) groupFilter(c *gin.Context) (billing.Filter, bool) {
	filter := billing.Filter{
		Room:       strings.TrimSpace(c.Query("room")),
		MonthLabel: strings.TrimSpace(c.Query("month")),
	}
	if raw := c.Query("status"); raw != "" {
		status, err := billing.ParseStatus(raw)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid status parameter", err)
			return filter, false
		}
		filter.Status = status
	}
	if viewer, ok := middleware.ViewerFromContext(c); ok && viewer.Role == inbox.RoleTenant {
		filter.Room = viewer.RoomID
	}
	return filter, true
}

// visibleGroup loads the group named by the id parameter. A tenant asking
// for another room's group gets a 404.
func (h *BillingHandler) visibleGroup(c *gin.Context) (*billing.Group, bool) {
	groupID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid group id", err)
		return nil, false
	}

	group, err := h.billingService.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		utils.ErrorFromService(c, "Failed to retrieve bill group", err)
		return nil, false
	}
	if viewer, ok := middleware.ViewerFromContext(c); ok && viewer.Role == inbox.RoleTenant && group.Room != viewer.RoomID {
		utils.ErrorFromService(c, "Failed to retrieve bill group", apperror.New(apperror.KindNotFound, "bill group not found"))
		return nil, false
	}
	return group, true
}

func joinSkipped(skipped []billing.Skipped) string {
	ids := make([]string, 0, len(skipped))
	for _, s := range skipped {
		ids = append(ids, s.ChargeID)
	}
	return strings.Join(ids, ",")
}
