package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"apt-be-svc/internal/models"
	"apt-be-svc/internal/stream"
)

// NotificationRepository defines the interface for notification data operations.
// Notifications are append-only except for growing read_by.
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByID(ctx context.Context, id string) (*models.Notification, error)
	List(ctx context.Context) ([]models.Notification, error)
	// AddReader adds reader to read_by of one notification. Adding a reader twice is a no-op.
	AddReader(ctx context.Context, id, reader string) error
	// AddReaderToMany does the same for several notifications in one statement.
	AddReaderToMany(ctx context.Context, ids []string, reader string) error
	ExistsSince(ctx context.Context, notificationType, roomID, title string, since time.Time) (bool, error)
}

type notificationRepository struct {
	db       *gorm.DB
	notifier stream.Notifier
}

// NewNotificationRepository creates a new instance of NotificationRepository
func NewNotificationRepository(db *gorm.DB, notifier stream.Notifier) NotificationRepository {
	return &notificationRepository{
		db:       db,
		notifier: notifier,
	}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return translate(err, "notification", notification.ID)
	}
	r.notifier.Notify(ctx, stream.Change{Collection: stream.Notifications, ID: notification.ID, Op: stream.OpCreate})
	return nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&notification).Error; err != nil {
		return nil, translate(err, "notification", id)
	}
	return &notification, nil
}

func (r *notificationRepository) List(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, translate(err, "notification", "")
	}
	return notifications, nil
}

// readerAppend is the set-add on read_by, evaluated by PostgreSQL.
const readerAppend = "array_append(COALESCE(read_by, '{}'::text[]), ?)"

// readerAbsent guards readerAppend so a reader is stored at most once.
const readerAbsent = "NOT (? = ANY(COALESCE(read_by, '{}'::text[])))"

func (r *notificationRepository) AddReader(ctx context.Context, id, reader string) error {
	res := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ?", id).
		Where(readerAbsent, reader).
		Update("read_by", gorm.Expr(readerAppend, reader))
	if res.Error != nil {
		return translate(res.Error, "notification", id)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Notification{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return translate(err, "notification", id)
		}
		if count == 0 {
			return notFound("notification", id)
		}
		return nil
	}
	r.notifier.Notify(ctx, stream.Change{Collection: stream.Notifications, ID: id, Op: stream.OpUpdate})
	return nil
}

func (r *notificationRepository) AddReaderToMany(ctx context.Context, ids []string, reader string) error {
	if len(ids) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id IN ?", ids).
		Where(readerAbsent, reader).
		Update("read_by", gorm.Expr(readerAppend, reader))
	if res.Error != nil {
		return translate(res.Error, "notification", "")
	}
	if res.RowsAffected > 0 {
		r.notifier.Notify(ctx, stream.Change{Collection: stream.Notifications, Op: stream.OpUpdate})
	}
	return nil
}

func (r *notificationRepository) ExistsSince(ctx context.Context, notificationType, roomID, title string, since time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("type = ? AND room_id = ? AND title = ? AND created_at >= ?", notificationType, roomID, title, since).
		Count(&count).Error
	if err != nil {
		return false, translate(err, "notification", "")
	}
	return count > 0, nil
}
