package repository

import (
	"context"

	"gorm.io/gorm"

	"apt-be-svc/internal/models"
	"apt-be-svc/internal/stream"
)

// ChargeFilter narrows a charge listing. Empty fields match everything.
type ChargeFilter struct {
	Room     string
	Category string
	// MonthLabel is "YYYY-MM" and matches on the due date prefix.
	MonthLabel string
}

// ChargeRepository defines the interface for charge data operations
type ChargeRepository interface {
	Create(ctx context.Context, charge *models.Charge) error
	CreateBatch(ctx context.Context, charges []*models.Charge) error
	GetByIDs(ctx context.Context, ids []string) ([]models.Charge, error)
	List(ctx context.Context, filter ChargeFilter) ([]models.Charge, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// chargeRepository implements ChargeRepository
type chargeRepository struct {
	db       *gorm.DB
	notifier stream.Notifier
}

// NewChargeRepository creates a new instance of ChargeRepository
func NewChargeRepository(db *gorm.DB, notifier stream.Notifier) ChargeRepository {
	return &chargeRepository{
		db:       db,
		notifier: notifier,
	}
}

// Create inserts a single charge
func (r *chargeRepository) Create(ctx context.Context, charge *models.Charge) error {
	if err := r.db.WithContext(ctx).Create(charge).Error; err != nil {
		return translate(err, "charge", charge.ID)
	}
	r.notifier.Notify(ctx, stream.Change{Collection: stream.Charges, ID: charge.ID, Op: stream.OpCreate})
	return nil
}

// CreateBatch inserts charges in batches of 100. Each row is independent; there is no enclosing transaction.
func (r *chargeRepository) CreateBatch(ctx context.Context, charges []*models.Charge) error {
	if len(charges) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(charges, 100).Error; err != nil {
		return translate(err, "charge", "")
	}
	r.notifier.Notify(ctx, stream.Change{Collection: stream.Charges, Op: stream.OpCreate})
	return nil
}

// GetByIDs retrieves the charges with the given IDs. Missing IDs are simply absent from the result.
func (r *chargeRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Charge, error) {
	var charges []models.Charge
	if len(ids) == 0 {
		return charges, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&charges).Error; err != nil {
		return nil, translate(err, "charge", "")
	}
	return charges, nil
}

// List retrieves charges matching the filter. The room filter matches either legacy key column.
func (r *chargeRepository) List(ctx context.Context, filter ChargeFilter) ([]models.Charge, error) {
	var charges []models.Charge

	query := r.db.WithContext(ctx).Model(&models.Charge{})
	if filter.Room != "" {
		query = query.Where("(room_number = ? OR (COALESCE(room_number, '') = '' AND room = ?))", filter.Room, filter.Room)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.MonthLabel != "" {
		query = query.Where("due_date LIKE ?", filter.MonthLabel+"-%")
	}

	if err := query.Order("due_date DESC, created_at ASC").Find(&charges).Error; err != nil {
		return nil, translate(err, "charge", "")
	}
	return charges, nil
}

// Update applies a partial update to one charge
func (r *chargeRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.Charge{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translate(res.Error, "charge", id)
	}
	if res.RowsAffected == 0 {
		return notFound("charge", id)
	}
	r.notifier.Notify(ctx, stream.Change{Collection: stream.Charges, ID: id, Op: stream.OpUpdate})
	return nil
}

// Delete removes one charge
func (r *chargeRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Charge{})
	if res.Error != nil {
		return translate(res.Error, "charge", id)
	}
	if res.RowsAffected == 0 {
		return notFound("charge", id)
	}
	r.notifier.Notify(ctx, stream.Change{Collection: stream.Charges, ID: id, Op: stream.OpDelete})
	return nil
}
