package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/juju/clock"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"

	"apt-be-svc/internal/billing"
	"apt-be-svc/internal/metrics"
	"apt-be-svc/internal/models"
	"apt-be-svc/internal/repository"
	"apt-be-svc/internal/stream"
	"apt-be-svc/pkg/apperror"
	"apt-be-svc/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen -source=billing_service.go -destination=../mocks/billing_service_mock.go -package=mocks

// BillingService defines the interface for billing business operations
type BillingService interface {
	CreateCharge(ctx context.Context, req *CreateChargeRequest) (*models.Charge, error)
	CreateMonthlyBill(ctx context.Context, req *MonthlyBillRequest) ([]*models.Charge, error)
	CreateBulkMonthlyRent(ctx context.Context, month int, year int) (*BulkBillingResponse, error)
	ListGroups(ctx context.Context, filter billing.Filter) (*GroupList, error)
	GetGroup(ctx context.Context, groupID string) (*billing.Group, error)
	SubmitProof(ctx context.Context, room string, chargeIDs []string, proofRef string) (*TransitionResult, error)
	SubmitGroupProof(ctx context.Context, groupID string, proofRef string) (*TransitionResult, error)
	Verify(ctx context.Context, groupID string) (*TransitionResult, error)
	DeleteCharges(ctx context.Context, chargeIDs []string) (*TransitionResult, error)
	DeleteGroup(ctx context.Context, groupID string) (*TransitionResult, error)
	SendOverdueReminders(ctx context.Context) (*ReminderResult, error)
	ExportGroupsToExcel(ctx context.Context, filter billing.Filter) ([]byte, string, error)
	WatchGroups(ctx context.Context, filter billing.Filter) <-chan GroupList
	Close()
}

// CreateChargeRequest is the input for a single itemized charge
type CreateChargeRequest struct {
	Room     string                 `json:"room" binding:"required"`
	Category string                 `json:"category" binding:"required"`
	Amount   decimal.Decimal        `json:"amount"`
	DueDate  string                 `json:"due_date" binding:"required"`
	Details  map[string]interface{} `json:"details,omitempty"`
}

// MonthlyBillRequest is the admin billing form: one charge is created per non-zero item
type MonthlyBillRequest struct {
	Room        string          `json:"room" binding:"required"`
	DueDate     string          `json:"due_date" binding:"required"`
	Rent        decimal.Decimal `json:"rent"`
	Water       decimal.Decimal `json:"water"`
	Electricity decimal.Decimal `json:"electricity"`
	Maintenance decimal.Decimal `json:"maintenance"`
	Other       decimal.Decimal `json:"other"`
	Note        string          `json:"note,omitempty"`
}

// BulkBillingResponse represents the response for bulk billing creation
type BulkBillingResponse struct {
	TotalRooms    int      `json:"total_rooms"`
	TotalBillings int      `json:"total_billings"`
	SuccessCount  int      `json:"success_count"`
	FailedCount   int      `json:"failed_count"`
	Errors        []string `json:"errors,omitempty"`
}

// GroupList is the bill group view together with the records left out of it
type GroupList struct {
	Groups  []billing.Group   `json:"groups"`
	Skipped []billing.Skipped `json:"skipped,omitempty"`
}

// TransitionResult reports what a multi-charge operation did
type TransitionResult struct {
	Operation billing.Operation `json:"operation"`
	Requested int               `json:"requested"`
	Changed   []string          `json:"changed"`
	Unchanged int               `json:"unchanged"`
	Failed    []FailedWrite     `json:"failed,omitempty"`
}

// ReminderResult reports one overdue reminder pass
type ReminderResult struct {
	OverdueGroups int `json:"overdue_groups"`
	Sent          int `json:"sent"`
	AlreadySent   int `json:"already_sent"`
}

// BillingSettings carries the billing knobs from configuration
type BillingSettings struct {
	Location     *time.Location
	RentDueDay   int
	WriteWorkers int
}

// billingService implements BillingService
type billingService struct {
	chargeRepo repository.ChargeRepository
	roomRepo   repository.RoomRepository
	hub        *stream.Hub
	emitter    *emitter
	batch      *batchWriter
	clock      clock.Clock
	settings   BillingSettings
	metrics    *metrics.Collector
	logger     *logger.Logger
}

// NewBillingService creates a new instance of BillingService
func NewBillingService(
	chargeRepo repository.ChargeRepository,
	roomRepo repository.RoomRepository,
	notificationRepo repository.NotificationRepository,
	hub *stream.Hub,
	clk clock.Clock,
	settings BillingSettings,
	metrics *metrics.Collector,
	logger *logger.Logger,
) BillingService {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if settings.RentDueDay < 1 {
		settings.RentDueDay = 1
	}
	return &billingService{
		chargeRepo: chargeRepo,
		roomRepo:   roomRepo,
		hub:        hub,
		emitter:    newEmitter(notificationRepo, clk, metrics, logger),
		batch:      newBatchWriter(settings.WriteWorkers),
		clock:      clk,
		settings:   settings,
		metrics:    metrics,
		logger:     logger,
	}
}

var chargeCategories = map[string]struct{}{
	models.CategoryRent:        {},
	models.CategoryWater:       {},
	models.CategoryElectricity: {},
	models.CategoryMaintenance: {},
	models.CategoryOther:       {},
}

// CreateCharge validates and stores one Pending charge
func (s *billingService) CreateCharge(ctx context.Context, req *CreateChargeRequest) (*models.Charge, error) {
	charge, err := s.newCharge(req.Room, req.Category, req.Amount, req.DueDate, req.Details)
	if err != nil {
		return nil, err
	}

	if err := s.chargeRepo.Create(context.WithoutCancel(ctx), charge); err != nil {
		s.logger.WithError(err).WithField("room", req.Room).Error("Failed to create charge")
		return nil, err
	}

	s.metrics.ChargeWrites("create", 1, 0)
	s.logger.WithFields(map[string]interface{}{
		"charge_id": charge.ID,
		"room":      req.Room,
		"category":  charge.Category,
	}).Info("Charge created")
	return charge, nil
}

// CreateMonthlyBill splits the billing form into one charge per non-zero item
func (s *billingService) CreateMonthlyBill(ctx context.Context, req *MonthlyBillRequest) ([]*models.Charge, error) {
	items := []struct {
		category string
		amount   decimal.Decimal
	}{
		{models.CategoryRent, req.Rent},
		{models.CategoryWater, req.Water},
		{models.CategoryElectricity, req.Electricity},
		{models.CategoryMaintenance, req.Maintenance},
		{models.CategoryOther, req.Other},
	}

	var details map[string]interface{}
	if note := strings.TrimSpace(req.Note); note != "" {
		details = map[string]interface{}{"note": note}
	}

	var charges []*models.Charge
	for _, item := range items {
		if item.amount.IsZero() {
			continue
		}
		charge, err := s.newCharge(req.Room, item.category, item.amount, req.DueDate, details)
		if err != nil {
			return nil, err
		}
		charges = append(charges, charge)
	}
	if len(charges) == 0 {
		return nil, apperror.New(apperror.KindValidation, "monthly bill has no items")
	}

	if err := s.chargeRepo.CreateBatch(context.WithoutCancel(ctx), charges); err != nil {
		s.logger.WithError(err).WithField("room", req.Room).Error("Failed to create monthly bill")
		return nil, err
	}

	s.metrics.ChargeWrites("create", len(charges), 0)
	s.logger.WithFields(map[string]interface{}{
		"room":    req.Room,
		"charges": len(charges),
	}).Info("Monthly bill created")
	return charges, nil
}

func (s *billingService) newCharge(room, category string, amount decimal.Decimal, dueDate string, details map[string]interface{}) (*models.Charge, error) {
	room = strings.TrimSpace(room)
	if room == "" {
		return nil, apperror.New(apperror.KindValidation, "room is required")
	}
	category = strings.ToLower(strings.TrimSpace(category))
	if _, ok := chargeCategories[category]; !ok {
		return nil, apperror.WithMetadata(apperror.KindValidation, "unknown charge category", map[string]string{"category": category})
	}
	if amount.IsNegative() {
		return nil, apperror.WithMetadata(apperror.KindValidation, "amount must not be negative", map[string]string{"amount": amount.String()})
	}
	due, err := time.Parse(billing.DateLayout, strings.TrimSpace(dueDate))
	if err != nil {
		return nil, apperror.WithMetadata(apperror.KindValidation, "due date must be YYYY-MM-DD", map[string]string{"due_date": dueDate})
	}

	now := s.clock.Now().UTC()
	return &models.Charge{
		ID:         uuid.NewString(),
		RoomNumber: stringPtr(room),
		Category:   category,
		Amount:     amount,
		DueDate:    due.Format(billing.DateLayout),
		Status:     string(billing.StatusPending),
		Details:    datatypes.JSONMap(details),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// CreateBulkMonthlyRent creates the rent charge of the given month for every
// occupied room that does not have one yet. Running it twice creates nothing new.
func (s *billingService) CreateBulkMonthlyRent(ctx context.Context, month int, year int) (*BulkBillingResponse, error) {
	if month < 1 || month > 12 {
		return nil, apperror.WithMetadata(apperror.KindValidation, "month must be between 1 and 12", map[string]string{"month": fmt.Sprint(month)})
	}
	if year < 2000 || year > 9999 {
		return nil, apperror.WithMetadata(apperror.KindValidation, "invalid year", map[string]string{"year": fmt.Sprint(year)})
	}

	rooms, err := s.roomRepo.List(ctx, models.RoomOccupied)
	if err != nil {
		return nil, err
	}

	monthLabel := fmt.Sprintf("%04d-%02d", year, month)
	existing, err := s.chargeRepo.List(ctx, repository.ChargeFilter{Category: models.CategoryRent, MonthLabel: monthLabel})
	if err != nil {
		return nil, err
	}
	billed := make(map[string]struct{}, len(existing))
	for _, rec := range existing {
		billed[billing.RoomKey(rec)] = struct{}{}
	}

	dueDate := time.Date(year, time.Month(month), s.settings.RentDueDay, 0, 0, 0, 0, time.UTC).Format(billing.DateLayout)
	pending := make(map[string]*models.Charge)
	var ids []string
	for _, room := range rooms {
		if _, ok := billed[room.ID]; ok {
			continue
		}
		charge, err := s.newCharge(room.ID, models.CategoryRent, room.Price, dueDate, map[string]interface{}{
			"tenant_name": room.TenantName,
			"generated":   true,
		})
		if err != nil {
			s.logger.WithError(err).WithField("room", room.ID).Warn("Skipping room in bulk rent")
			continue
		}
		pending[charge.ID] = charge
		ids = append(ids, charge.ID)
	}

	response := &BulkBillingResponse{
		TotalRooms:    len(rooms),
		TotalBillings: len(ids),
	}
	if len(ids) == 0 {
		return response, nil
	}

	res := s.batch.run(ctx, ids, func(ctx context.Context, id string) error {
		return s.chargeRepo.Create(ctx, pending[id])
	})
	response.SuccessCount = len(res.Succeeded)
	response.FailedCount = len(res.Failed)
	for _, f := range res.Failed {
		response.Errors = append(response.Errors, fmt.Sprintf("room %s: %s", derefString(pending[f.ID].RoomNumber), f.Error))
	}

	s.metrics.ChargeWrites("create", response.SuccessCount, response.FailedCount)
	s.logger.WithFields(map[string]interface{}{
		"month":   monthLabel,
		"rooms":   response.TotalRooms,
		"created": response.SuccessCount,
		"failed":  response.FailedCount,
	}).Info("Bulk monthly rent generated")
	return response, nil
}

// ListGroups aggregates the current charge snapshot into bill groups
func (s *billingService) ListGroups(ctx context.Context, filter billing.Filter) (*GroupList, error) {
	records, err := s.chargeRepo.List(ctx, repository.ChargeFilter{Room: filter.Room, MonthLabel: filter.MonthLabel})
	if err != nil {
		return nil, err
	}

	groups, skipped := billing.AggregateRecords(records, s.clock.Now(), s.settings.Location)
	s.reportSkipped(skipped)

	return &GroupList{
		Groups:  filter.Apply(groups),
		Skipped: skipped,
	}, nil
}

// GetGroup returns one bill group by its "<room>_<YYYY-MM>" id
func (s *billingService) GetGroup(ctx context.Context, groupID string) (*billing.Group, error) {
	room, monthLabel, err := billing.ParseGroupID(groupID)
	if err != nil {
		return nil, err
	}
	list, err := s.ListGroups(ctx, billing.Filter{Room: room, MonthLabel: monthLabel})
	if err != nil {
		return nil, err
	}
	group, ok := billing.Find(list.Groups, groupID)
	if !ok {
		return nil, apperror.WithMetadata(apperror.KindNotFound, "bill group not found", map[string]string{"group_id": groupID})
	}
	return &group, nil
}

// SubmitProof attaches a payment proof to the charges and sends them to review.
// A non-empty room limits the batch to that room's charges; a charge of another
// room is reported as not found.
func (s *billingService) SubmitProof(ctx context.Context, room string, chargeIDs []string, proofRef string) (*TransitionResult, error) {
	proofRef = strings.TrimSpace(proofRef)
	if proofRef == "" {
		return nil, apperror.New(apperror.KindValidation, "proof reference is required")
	}

	ids := uniqueIDs(chargeIDs)
	targets, err := s.loadTargets(ctx, ids)
	if err != nil {
		return nil, err
	}
	if room != "" {
		for _, c := range targets {
			if c.Room != room {
				return nil, apperror.WithMetadata(apperror.KindNotFound, "charge not found", map[string]string{"charge_id": c.ID})
			}
		}
	}
	return s.submit(ctx, len(ids), targets, proofRef)
}

// SubmitGroupProof submits a proof for the members of the group that are still
// Pending or Overdue. Paid members and members already in review are left alone.
func (s *billingService) SubmitGroupProof(ctx context.Context, groupID string, proofRef string) (*TransitionResult, error) {
	proofRef = strings.TrimSpace(proofRef)
	if proofRef == "" {
		return nil, apperror.New(apperror.KindValidation, "proof reference is required")
	}

	_, _, members, err := s.groupMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	payable := make([]billing.Charge, 0, len(members))
	for _, c := range members {
		if status := c.EffectiveStatus(now, s.settings.Location); status == billing.StatusPending || status == billing.StatusOverdue {
			payable = append(payable, c)
		}
	}
	if len(payable) == 0 {
		return nil, apperror.WithMetadata(apperror.KindPrecondition, "bill group has no unpaid charges", map[string]string{"group_id": groupID})
	}
	return s.submit(ctx, len(payable), payable, proofRef)
}

func (s *billingService) submit(ctx context.Context, requested int, targets []billing.Charge, proofRef string) (*TransitionResult, error) {
	steps, err := billing.Plan(targets, billing.OpSubmitProof, s.clock.Now(), s.settings.Location)
	if err != nil {
		s.logger.WithError(err).Warn("Proof submission rejected")
		return nil, err
	}

	result, err := s.apply(ctx, billing.OpSubmitProof, requested, steps, map[string]interface{}{
		"status":    string(billing.StatusPendingReview),
		"proof_ref": proofRef,
	})
	if err != nil {
		return result, err
	}

	for _, room := range stepRooms(steps) {
		s.emitter.emit(ctx, models.NotificationPayment,
			"Payment proof submitted",
			fmt.Sprintf("Room %s submitted a payment proof for %s", room, monthsOf(targets, steps, room)),
			nil)
	}
	return result, nil
}

// Verify marks every member of the group Paid
func (s *billingService) Verify(ctx context.Context, groupID string) (*TransitionResult, error) {
	room, monthLabel, members, err := s.groupMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	steps, err := billing.Plan(members, billing.OpVerify, now, s.settings.Location)
	if err != nil {
		return nil, err
	}

	result, err := s.apply(ctx, billing.OpVerify, len(members), steps, map[string]interface{}{
		"status":  string(billing.StatusPaid),
		"paid_at": now.UTC(),
	})
	if err != nil {
		return result, err
	}

	if len(result.Changed) > 0 {
		s.emitter.emit(ctx, models.NotificationPaymentVerified,
			"Payment verified",
			fmt.Sprintf("Your bill for %s has been verified", monthLabel),
			stringPtr(room))
	}
	return result, nil
}

// DeleteCharges removes the charges. Ids that no longer exist count as already deleted.
func (s *billingService) DeleteCharges(ctx context.Context, chargeIDs []string) (*TransitionResult, error) {
	ids := uniqueIDs(chargeIDs)
	if len(ids) == 0 {
		return nil, apperror.New(apperror.KindValidation, "no charges selected")
	}

	records, err := s.chargeRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperror.WithMetadata(apperror.KindNotFound, "charges not found", map[string]string{"charge_ids": strings.Join(ids, ",")})
	}

	existing := make([]string, 0, len(records))
	for _, rec := range records {
		existing = append(existing, rec.ID)
	}
	return s.deleteIDs(ctx, len(ids), existing)
}

// DeleteGroup removes every member charge of the group
func (s *billingService) DeleteGroup(ctx context.Context, groupID string) (*TransitionResult, error) {
	_, _, members, err := s.groupMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	return s.deleteIDs(ctx, len(ids), ids)
}

func (s *billingService) deleteIDs(ctx context.Context, requested int, ids []string) (*TransitionResult, error) {
	res := s.batch.run(ctx, ids, func(ctx context.Context, id string) error {
		err := s.chargeRepo.Delete(ctx, id)
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil
		}
		return err
	})

	s.metrics.ChargeWrites(string(billing.OpDelete), len(res.Succeeded), len(res.Failed))
	result := &TransitionResult{
		Operation: billing.OpDelete,
		Requested: requested,
		Changed:   nonNil(res.Succeeded),
		Unchanged: requested - len(ids),
		Failed:    res.Failed,
	}
	if err := res.err("some charges could not be deleted"); err != nil {
		s.logger.WithError(err).Error("Charge deletion partially failed")
		return result, err
	}

	s.logger.WithField("deleted", len(res.Succeeded)).Info("Charges deleted")
	return result, nil
}

// apply writes fields to every planned charge. Steps already dropped by the plan
// count as unchanged. A failed write is reported but does not undo the others.
func (s *billingService) apply(ctx context.Context, op billing.Operation, requested int, steps []billing.Step, fields map[string]interface{}) (*TransitionResult, error) {
	ids := make([]string, 0, len(steps))
	for _, step := range steps {
		ids = append(ids, step.ChargeID)
	}

	res := s.batch.run(ctx, ids, func(ctx context.Context, id string) error {
		return s.chargeRepo.Update(ctx, id, fields)
	})

	s.metrics.ChargeWrites(string(op), len(res.Succeeded), len(res.Failed))
	result := &TransitionResult{
		Operation: op,
		Requested: requested,
		Changed:   nonNil(res.Succeeded),
		Unchanged: requested - len(steps),
		Failed:    res.Failed,
	}
	if err := res.err("some charges could not be updated"); err != nil {
		s.logger.WithError(err).WithField("operation", string(op)).Error("Charge transition partially failed")
		return result, err
	}

	s.logger.WithFields(map[string]interface{}{
		"operation": string(op),
		"changed":   len(result.Changed),
		"unchanged": result.Unchanged,
	}).Info("Charge transition applied")
	return result, nil
}

// loadTargets reads and normalizes the charges. A missing id is NOT_FOUND and a
// malformed record is DATA_SHAPE; both reject the whole batch before any write.
func (s *billingService) loadTargets(ctx context.Context, ids []string) ([]billing.Charge, error) {
	if len(ids) == 0 {
		return nil, apperror.New(apperror.KindValidation, "no charges selected")
	}

	records, err := s.chargeRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	found := make(map[string]models.Charge, len(records))
	for _, rec := range records {
		found[rec.ID] = rec
	}

	targets := make([]billing.Charge, 0, len(ids))
	for _, id := range ids {
		rec, ok := found[id]
		if !ok {
			return nil, apperror.WithMetadata(apperror.KindNotFound, "charge not found", map[string]string{"charge_id": id})
		}
		c, err := billing.Normalize(rec)
		if err != nil {
			return nil, err
		}
		targets = append(targets, c)
	}
	return targets, nil
}

// groupMembers resolves a group id to its current member charges.
func (s *billingService) groupMembers(ctx context.Context, groupID string) (string, string, []billing.Charge, error) {
	room, monthLabel, err := billing.ParseGroupID(groupID)
	if err != nil {
		return "", "", nil, err
	}

	records, err := s.chargeRepo.List(ctx, repository.ChargeFilter{Room: room, MonthLabel: monthLabel})
	if err != nil {
		return "", "", nil, err
	}
	charges, skipped := billing.NormalizeAll(records)
	s.reportSkipped(skipped)

	var members []billing.Charge
	for _, c := range charges {
		if c.Room == room && c.MonthLabel() == monthLabel {
			members = append(members, c)
		}
	}
	if len(members) == 0 {
		return "", "", nil, apperror.WithMetadata(apperror.KindNotFound, "bill group not found", map[string]string{"group_id": groupID})
	}
	return room, monthLabel, members, nil
}

// SendOverdueReminders notifies each room with an overdue bill group, at most
// once per group per local day.
func (s *billingService) SendOverdueReminders(ctx context.Context) (*ReminderResult, error) {
	list, err := s.ListGroups(ctx, billing.Filter{Status: billing.StatusOverdue})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	local := now.In(s.settings.Location)
	startOfDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.settings.Location)

	result := &ReminderResult{OverdueGroups: len(list.Groups)}
	for _, g := range list.Groups {
		title := fmt.Sprintf("Payment overdue for %s", g.MonthLabel)
		exists, err := s.reminderSent(ctx, g.Room, title, startOfDay)
		if err != nil {
			return result, err
		}
		if exists {
			result.AlreadySent++
			continue
		}
		message := fmt.Sprintf("Your bill of %s for %s was due on %s", g.TotalAmount.StringFixed(2), g.MonthLabel, g.DueDate)
		if s.emitter.emit(ctx, models.NotificationPaymentReminder, title, message, stringPtr(g.Room)) != nil {
			result.Sent++
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"overdue_groups": result.OverdueGroups,
		"sent":           result.Sent,
		"already_sent":   result.AlreadySent,
	}).Info("Overdue reminders processed")
	return result, nil
}

func (s *billingService) reminderSent(ctx context.Context, room, title string, since time.Time) (bool, error) {
	return s.emitter.repo.ExistsSince(ctx, models.NotificationPaymentReminder, room, title, since.UTC())
}

// ExportGroupsToExcel exports bill groups to an Excel file
func (s *billingService) ExportGroupsToExcel(ctx context.Context, filter billing.Filter) ([]byte, string, error) {
	list, err := s.ListGroups(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Warn("Error closing Excel file")
		}
	}()

	sheetName := "Bill Groups"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"No", "Room", "Month", "Due Date", "Items", "Total", "Status", "Proof", "Paid At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		lastCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(sheetName, "A1", lastCell, headerStyle)
	}

	for i, g := range list.Groups {
		row := i + 2

		items := make([]string, 0, len(g.Members))
		for _, m := range g.Members {
			items = append(items, fmt.Sprintf("%s %s", m.Category, m.Amount.StringFixed(2)))
		}
		paidAt := ""
		if g.PaidAt != nil {
			paidAt = g.PaidAt.In(s.settings.Location).Format("2006-01-02 15:04")
		}

		total, _ := g.TotalAmount.Float64()
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), g.Room)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), g.MonthLabel)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), g.DueDate)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), strings.Join(items, ", "))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), total)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), string(g.Status))
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), derefString(g.ProofRef))
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), paidAt)
	}

	for i := 1; i <= len(headers); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(sheetName, col, col, 15)
	}

	if f.GetSheetName(0) == "Sheet1" && sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	timestamp := s.clock.Now().In(s.settings.Location).Format("20060102_150405")
	filename := fmt.Sprintf("bill_groups_export_%s.xlsx", timestamp)

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buffer.Bytes(), filename, nil
}

// WatchGroups streams the filtered bill groups, recomputed from the full charge
// snapshot after every charge change.
func (s *billingService) WatchGroups(ctx context.Context, filter billing.Filter) <-chan GroupList {
	sub := s.hub.Subscribe(stream.Charges)
	return stream.Watch(ctx, sub, func(ctx context.Context) (GroupList, error) {
		list, err := s.ListGroups(ctx, filter)
		if err != nil {
			return GroupList{}, err
		}
		return *list, nil
	}, s.logger)
}

// Close waits for queued writes and stops the worker pool
func (s *billingService) Close() {
	s.batch.close()
}

func (s *billingService) reportSkipped(skipped []billing.Skipped) {
	if len(skipped) == 0 {
		return
	}
	s.metrics.ChargesSkipped(len(skipped))
	for _, sk := range skipped {
		s.logger.WithFields(map[string]interface{}{
			"charge_id": sk.ChargeID,
			"reason":    sk.Reason,
		}).Warn("Skipping malformed charge record")
	}
}

// stepRooms lists the distinct rooms touched by steps, sorted.
func stepRooms(steps []billing.Step) []string {
	seen := map[string]struct{}{}
	var rooms []string
	for _, step := range steps {
		if _, ok := seen[step.Room]; ok {
			continue
		}
		seen[step.Room] = struct{}{}
		rooms = append(rooms, step.Room)
	}
	sort.Strings(rooms)
	return rooms
}

// monthsOf lists the due months of the changed charges of room.
func monthsOf(targets []billing.Charge, steps []billing.Step, room string) string {
	changed := make(map[string]struct{}, len(steps))
	for _, step := range steps {
		if step.Room == room {
			changed[step.ChargeID] = struct{}{}
		}
	}
	seen := map[string]struct{}{}
	var months []string
	for _, c := range targets {
		if _, ok := changed[c.ID]; !ok {
			continue
		}
		if _, ok := seen[c.MonthLabel()]; ok {
			continue
		}
		seen[c.MonthLabel()] = struct{}{}
		months = append(months, c.MonthLabel())
	}
	sort.Strings(months)
	return strings.Join(months, ", ")
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
