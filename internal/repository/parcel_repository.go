package repository

import (
	"context"

	"gorm.io/gorm"

	"apt-be-svc/internal/models"
	"apt-be-svc/internal/stream"
)

// ParcelRepository defines the interface for parcel data operations
type ParcelRepository interface {
	Create(ctx context.Context, parcel *models.Parcel) error
	GetByID(ctx context.Context, id string) (*models.Parcel, error)
	List(ctx context.Context, roomID, status string) ([]models.Parcel, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type parcelRepository struct {
	db       *gorm.DB
	notifier stream.Notifier
}

// NewParcelRepository creates a new instance of ParcelRepository
func NewParcelRepository(db *gorm.DB, notifier stream.Notifier) ParcelRepository {
	return &parcelRepository{
		db:       db,
		notifier: notifier,
	}
}

func (r *parcelRepository) Create(ctx context.Context, parcel *models.Parcel) error {
	if err := r.db.WithContext(ctx).Create(parcel).Error; err != nil {
		return translate(err, "parcel", parcel.ID)
	}
	r.notifier.Notify(ctx, stream.Change{Collection: stream.Parcels, ID: parcel.ID, Op: stream.OpCreate})
	return nil
}

func (r *parcelRepository) GetByID(ctx context.Context, id string) (*models.Parcel, error) {
	var parcel models.Parcel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&parcel).Error; err != nil {
		return nil, translate(err, "parcel", id)
	}
	return &parcel, nil
}

func (r *parcelRepository) List(ctx context.Context, roomID, status string) ([]models.Parcel, error) {
	var parcels []models.Parcel
	query := r.db.WithContext(ctx).Model(&models.Parcel{})
	if roomID != "" {
		query = query.Where("room_id = ?", roomID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("arrived_at DESC").Find(&parcels).Error; err != nil {
		return nil, translate(err, "parcel", "")
	}
	return parcels, nil
}

func (r *parcelRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.Parcel{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translate(res.Error, "parcel", id)
	}
	if res.RowsAffected == 0 {
		return notFound("parcel", id)
	}
	r.notifier.Notify(ctx, stream.Change{Collection: stream.Parcels, ID: id, Op: stream.OpUpdate})
	return nil
}

func (r *parcelRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Parcel{})
	if res.Error != nil {
		return translate(res.Error, "parcel", id)
	}
	if res.RowsAffected == 0 {
		return notFound("parcel", id)
	}
	r.notifier.Notify(ctx, stream.Change{Collection: stream.Parcels, ID: id, Op: stream.OpDelete})
	return nil
}
