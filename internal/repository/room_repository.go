package repository

import (
	"context"

	"gorm.io/gorm"

	"apt-be-svc/internal/models"
	"apt-be-svc/internal/stream"
)

// RoomRepository defines the interface for room data operations
type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id string) (*models.Room, error)
	List(ctx context.Context, status string) ([]models.Room, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	// UpdateIfStatus writes fields only while the room still has the expected
	// status. It reports false when another writer changed the status first.
	UpdateIfStatus(ctx context.Context, id, expected string, fields map[string]interface{}) (bool, error)
	Delete(ctx context.Context, id string) error
}

type roomRepository struct {
	db       *gorm.DB
	notifier stream.Notifier
}

// NewRoomRepository creates a new instance of RoomRepository
func NewRoomRepository(db *gorm.DB, notifier stream.Notifier) RoomRepository {
	return &roomRepository{
		db:       db,
		notifier: notifier,
	}
}

func (r *roomRepository) Create(ctx context.Context, room *models.Room) error {
	if err := r.db.WithContext(ctx).Create(room).Error; err != nil {
		return translate(err, "room", room.ID)
	}
	r.notifier.Notify(ctx, stream.Change{Collection: stream.Rooms, ID: room.ID, Op: stream.OpCreate})
	return nil
}

func (r *roomRepository) GetByID(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error; err != nil {
		return nil, translate(err, "room", id)
	}
	return &room, nil
}

func (r *roomRepository) List(ctx context.Context, status string) ([]models.Room, error) {
	var rooms []models.Room
	query := r.db.WithContext(ctx).Model(&models.Room{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("id ASC").Find(&rooms).Error; err != nil {
		return nil, translate(err, "room", "")
	}
	return rooms, nil
}

func (r *roomRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translate(res.Error, "room", id)
	}
	if res.RowsAffected == 0 {
		return notFound("room", id)
	}
	r.notifier.Notify(ctx, stream.Change{Collection: stream.Rooms, ID: id, Op: stream.OpUpdate})
	return nil
}

func (r *roomRepository) UpdateIfStatus(ctx context.Context, id, expected string, fields map[string]interface{}) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Room{}).
		Where("id = ? AND status = ?", id, expected).
		Updates(fields)
	if res.Error != nil {
		return false, translate(res.Error, "room", id)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return false, translate(err, "room", id)
		}
		if count == 0 {
			return false, notFound("room", id)
		}
		return false, nil
	}
	r.notifier.Notify(ctx, stream.Change{Collection: stream.Rooms, ID: id, Op: stream.OpUpdate})
	return true, nil
}

func (r *roomRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Room{})
	if res.Error != nil {
		return translate(res.Error, "room", id)
	}
	if res.RowsAffected == 0 {
		return notFound("room", id)
	}
	r.notifier.Notify(ctx, stream.Change{Collection: stream.Rooms, ID: id, Op: stream.OpDelete})
	return nil
}
