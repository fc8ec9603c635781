package repository

import (
	"context"

	"apt-be-svc/internal/models"

	"gorm.io/gorm"
)

//go:generate go run go.uber.org/mock/mockgen -source=log_scheduler_repository.go -destination=../mocks/log_scheduler_repository_mock.go -package=mocks

// LogSchedulerRepository defines the interface for log scheduler data operations
type LogSchedulerRepository interface {
	CreateLogScheduler(ctx context.Context, log *models.LogSchedullers) error
}

// logSchedulerRepository implements LogSchedulerRepository
type logSchedulerRepository struct {
	db *gorm.DB
}

// NewLogSchedulerRepository creates a new instance of LogSchedulerRepository
func NewLogSchedulerRepository(db *gorm.DB) LogSchedulerRepository {
	return &logSchedulerRepository{
		db: db,
	}
}

// CreateLogScheduler creates a new log scheduler record
func (r *logSchedulerRepository) CreateLogScheduler(ctx context.Context, log *models.LogSchedullers) error {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return translate(err, "scheduler log", log.DocumentID)
	}
	return nil
}
