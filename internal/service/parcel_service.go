package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/juju/clock"

	"apt-be-svc/internal/metrics"
	"apt-be-svc/internal/models"
	"apt-be-svc/internal/repository"
	"apt-be-svc/pkg/apperror"
	"apt-be-svc/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen -source=parcel_service.go -destination=../mocks/parcel_service_mock.go -package=mocks

// ParcelService defines the interface for parcel tracking
type ParcelService interface {
	LogArrival(ctx context.Context, req *LogParcelRequest) (*models.Parcel, error)
	MarkPickedUp(ctx context.Context, id string) (*models.Parcel, error)
	List(ctx context.Context, roomID, status string) ([]models.Parcel, error)
	Delete(ctx context.Context, id string) error
}

// LogParcelRequest is the front desk form for an arrived parcel
type LogParcelRequest struct {
	RoomID   string  `json:"room_id" binding:"required"`
	Carrier  string  `json:"carrier"`
	Note     string  `json:"note"`
	ImageRef *string `json:"image_ref,omitempty"`
}

// parcelService implements ParcelService
type parcelService struct {
	parcelRepo repository.ParcelRepository
	roomRepo   repository.RoomRepository
	emitter    *emitter
	clock      clock.Clock
	logger     *logger.Logger
}

// NewParcelService creates a new instance of ParcelService
func NewParcelService(parcelRepo repository.ParcelRepository, roomRepo repository.RoomRepository, notificationRepo repository.NotificationRepository, clk clock.Clock, metrics *metrics.Collector, logger *logger.Logger) ParcelService {
	return &parcelService{
		parcelRepo: parcelRepo,
		roomRepo:   roomRepo,
		emitter:    newEmitter(notificationRepo, clk, metrics, logger),
		clock:      clk,
		logger:     logger,
	}
}

// LogArrival records a parcel and notifies the room it is addressed to
func (s *parcelService) LogArrival(ctx context.Context, req *LogParcelRequest) (*models.Parcel, error) {
	roomID := strings.TrimSpace(req.RoomID)
	if roomID == "" {
		return nil, apperror.New(apperror.KindValidation, "room id is required")
	}
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		return nil, err
	}

	parcel := &models.Parcel{
		ID:        uuid.NewString(),
		RoomID:    roomID,
		Carrier:   strings.TrimSpace(req.Carrier),
		Note:      strings.TrimSpace(req.Note),
		ImageRef:  req.ImageRef,
		Status:    models.ParcelArrived,
		ArrivedAt: s.clock.Now().UTC(),
	}
	if err := s.parcelRepo.Create(context.WithoutCancel(ctx), parcel); err != nil {
		s.logger.WithError(err).WithField("room_id", roomID).Error("Failed to log parcel")
		return nil, err
	}

	message := "A parcel is waiting for you at the front desk"
	if parcel.Carrier != "" {
		message = fmt.Sprintf("A parcel from %s is waiting for you at the front desk", parcel.Carrier)
	}
	s.emitter.emit(ctx, models.NotificationParcel, "Parcel arrived", message, stringPtr(roomID))

	s.logger.WithFields(map[string]interface{}{
		"parcel_id": parcel.ID,
		"room_id":   roomID,
	}).Info("Parcel logged")
	return parcel, nil
}

// MarkPickedUp records the pickup. Picking up twice keeps the first pickup time.
func (s *parcelService) MarkPickedUp(ctx context.Context, id string) (*models.Parcel, error) {
	parcel, err := s.parcelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if parcel.Status == models.ParcelPickedUp {
		return parcel, nil
	}

	now := s.clock.Now().UTC()
	if err := s.parcelRepo.Update(context.WithoutCancel(ctx), id, map[string]interface{}{
		"status":       models.ParcelPickedUp,
		"picked_up_at": now,
	}); err != nil {
		s.logger.WithError(err).WithField("parcel_id", id).Error("Failed to mark parcel picked up")
		return nil, err
	}

	parcel.Status = models.ParcelPickedUp
	parcel.PickedUpAt = &now
	s.logger.WithField("parcel_id", id).Info("Parcel picked up")
	return parcel, nil
}

// List lists parcels, optionally by room and status
func (s *parcelService) List(ctx context.Context, roomID, status string) ([]models.Parcel, error) {
	if status != "" && status != models.ParcelArrived && status != models.ParcelPickedUp {
		return nil, apperror.WithMetadata(apperror.KindValidation, "unknown parcel status", map[string]string{"status": status})
	}
	return s.parcelRepo.List(ctx, roomID, status)
}

// Delete deletes a parcel record
func (s *parcelService) Delete(ctx context.Context, id string) error {
	if err := s.parcelRepo.Delete(context.WithoutCancel(ctx), id); err != nil {
		s.logger.WithError(err).WithField("parcel_id", id).Error("Failed to delete parcel")
		return err
	}
	return nil
}
