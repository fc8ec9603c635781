package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/juju/clock"
	"github.com/shopspring/decimal"

	"apt-be-svc/internal/metrics"
	"apt-be-svc/internal/models"
	"apt-be-svc/internal/repository"
	"apt-be-svc/internal/rooms"
	"apt-be-svc/internal/stream"
	"apt-be-svc/pkg/apperror"
	"apt-be-svc/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen -source=room_service.go -destination=../mocks/room_service_mock.go -package=mocks

// RoomService defines the interface for room business operations
type RoomService interface {
	CreateRoom(ctx context.Context, req *CreateRoomRequest) (*models.Room, error)
	ListRooms(ctx context.Context, status string) ([]models.Room, error)
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	UpdateRoom(ctx context.Context, id string, req *UpdateRoomRequest) (*models.Room, error)
	DeleteRoom(ctx context.Context, id string) error
	Register(ctx context.Context, id string, tenantName string) (*models.Room, error)
	Vacate(ctx context.Context, id string) (*models.Room, error)
	StartMaintenance(ctx context.Context, id string) (*models.Room, error)
	FinishRepair(ctx context.Context, id string) (*models.Room, error)
	WatchRooms(ctx context.Context, status string) <-chan []models.Room
}

// CreateRoomRequest is the input for adding a room to the inventory
type CreateRoomRequest struct {
	ID         string          `json:"id" binding:"required"`
	Type       string          `json:"type"`
	Price      decimal.Decimal `json:"price"`
	Status     string          `json:"status,omitempty"`
	TenantName string          `json:"tenant_name,omitempty"`
}

// UpdateRoomRequest is an admin edit. Nil fields are left untouched.
type UpdateRoomRequest struct {
	Type       *string          `json:"type,omitempty"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	Status     *string          `json:"status,omitempty"`
	TenantName *string          `json:"tenant_name,omitempty"`
}

// roomService implements RoomService
type roomService struct {
	roomRepo repository.RoomRepository
	hub      *stream.Hub
	emitter  *emitter
	logger   *logger.Logger
}

// NewRoomService creates a new instance of RoomService
func NewRoomService(roomRepo repository.RoomRepository, notificationRepo repository.NotificationRepository, hub *stream.Hub, clk clock.Clock, metrics *metrics.Collector, logger *logger.Logger) RoomService {
	return &roomService{
		roomRepo: roomRepo,
		hub:      hub,
		emitter:  newEmitter(notificationRepo, clk, metrics, logger),
		logger:   logger,
	}
}

// CreateRoom adds a room. A room without a status starts Vacant.
func (s *roomService) CreateRoom(ctx context.Context, req *CreateRoomRequest) (*models.Room, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return nil, apperror.New(apperror.KindValidation, "room id is required")
	}
	if req.Price.IsNegative() {
		return nil, apperror.WithMetadata(apperror.KindValidation, "price must not be negative", map[string]string{"price": req.Price.String()})
	}

	state := rooms.State{Status: req.Status, TenantName: req.TenantName}
	if state.Status == "" {
		state.Status = models.RoomVacant
	}
	state = rooms.Normalize(state)
	if err := rooms.Validate(state); err != nil {
		return nil, err
	}

	room := &models.Room{
		ID:         id,
		Type:       strings.TrimSpace(req.Type),
		Price:      req.Price,
		Status:     state.Status,
		TenantName: state.TenantName,
	}
	if err := s.roomRepo.Create(context.WithoutCancel(ctx), room); err != nil {
		s.logger.WithError(err).WithField("room_id", id).Error("Failed to create room")
		return nil, err
	}

	s.logger.WithField("room_id", id).Info("Room created")
	return room, nil
}

// ListRooms lists rooms, optionally by status
func (s *roomService) ListRooms(ctx context.Context, status string) ([]models.Room, error) {
	return s.roomRepo.List(ctx, status)
}

// GetRoom gets a room by id
func (s *roomService) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	return s.roomRepo.GetByID(ctx, id)
}

// UpdateRoom applies an admin edit. The edited room must still satisfy the tenant invariant.
func (s *roomService) UpdateRoom(ctx context.Context, id string, req *UpdateRoomRequest) (*models.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Type != nil {
		room.Type = strings.TrimSpace(*req.Type)
		fields["type"] = room.Type
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, apperror.WithMetadata(apperror.KindValidation, "price must not be negative", map[string]string{"price": req.Price.String()})
		}
		room.Price = *req.Price
		fields["price"] = room.Price
	}

	state := rooms.Of(*room)
	if req.Status != nil {
		state.Status = *req.Status
	}
	if req.TenantName != nil {
		state.TenantName = *req.TenantName
	}
	state = rooms.Normalize(state)
	if err := rooms.Validate(state); err != nil {
		return nil, err
	}
	if req.Status != nil || req.TenantName != nil {
		fields["status"] = state.Status
		fields["tenant_name"] = state.TenantName
	}
	room.Status = state.Status
	room.TenantName = state.TenantName

	if len(fields) == 0 {
		return room, nil
	}
	if err := s.roomRepo.Update(context.WithoutCancel(ctx), id, fields); err != nil {
		s.logger.WithError(err).WithField("room_id", id).Error("Failed to update room")
		return nil, err
	}

	s.logger.WithField("room_id", id).Info("Room updated")
	return room, nil
}

// DeleteRoom deletes a room
func (s *roomService) DeleteRoom(ctx context.Context, id string) error {
	if err := s.roomRepo.Delete(context.WithoutCancel(ctx), id); err != nil {
		s.logger.WithError(err).WithField("room_id", id).Error("Failed to delete room")
		return err
	}
	s.logger.WithField("room_id", id).Info("Room deleted")
	return nil
}

// Register moves a Vacant room to Occupied. Concurrent registrations of the same
// room race on a conditional write, and only the first one wins.
func (s *roomService) Register(ctx context.Context, id string, tenantName string) (*models.Room, error) {
	return s.transition(ctx, id, rooms.OpRegister, tenantName)
}

// Vacate moves an Occupied room to Vacant and clears the tenant
func (s *roomService) Vacate(ctx context.Context, id string) (*models.Room, error) {
	return s.transition(ctx, id, rooms.OpVacate, "")
}

// StartMaintenance takes a room out of service, keeping its tenant on file
func (s *roomService) StartMaintenance(ctx context.Context, id string) (*models.Room, error) {
	return s.transition(ctx, id, rooms.OpStartMaintenance, "")
}

// FinishRepair returns a room from maintenance and notifies the admins
func (s *roomService) FinishRepair(ctx context.Context, id string) (*models.Room, error) {
	room, err := s.transition(ctx, id, rooms.OpFinishRepair, "")
	if err != nil {
		return nil, err
	}

	s.emitter.emit(ctx, models.NotificationMaintenance,
		"Repair finished",
		fmt.Sprintf("Room %s is back in service as %s", room.ID, room.Status),
		nil)
	return room, nil
}

func (s *roomService) transition(ctx context.Context, id string, op rooms.Operation, tenantName string) (*models.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current := rooms.Of(*room)
	next, err := rooms.Apply(current, op, tenantName)
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"room_id":   id,
			"operation": string(op),
		}).Warn("Room transition rejected")
		return nil, err
	}

	won, err := s.roomRepo.UpdateIfStatus(context.WithoutCancel(ctx), id, current.Status, map[string]interface{}{
		"status":      next.Status,
		"tenant_name": next.TenantName,
	})
	if err != nil {
		return nil, err
	}
	if !won {
		s.logger.WithFields(map[string]interface{}{
			"room_id":   id,
			"operation": string(op),
		}).Warn("Room changed concurrently, transition rejected")
		return nil, apperror.WithMetadata(apperror.KindPrecondition, "room status changed before the update was applied", map[string]string{
			"room_id":   id,
			"expected":  current.Status,
			"operation": string(op),
		})
	}

	room.Status = next.Status
	room.TenantName = next.TenantName
	s.logger.WithFields(map[string]interface{}{
		"room_id":   id,
		"operation": string(op),
		"from":      current.Status,
		"to":        next.Status,
	}).Info("Room transition applied")
	return room, nil
}

// WatchRooms streams the room list after every room change
func (s *roomService) WatchRooms(ctx context.Context, status string) <-chan []models.Room {
	sub := s.hub.Subscribe(stream.Rooms)
	return stream.Watch(ctx, sub, func(ctx context.Context) ([]models.Room, error) {
		return s.roomRepo.List(ctx, status)
	}, s.logger)
}
