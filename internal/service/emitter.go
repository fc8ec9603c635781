package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/juju/clock"
	"github.com/lib/pq"

	"apt-be-svc/internal/metrics"
	"apt-be-svc/internal/models"
	"apt-be-svc/internal/repository"
	"apt-be-svc/pkg/logger"
)

// emitter creates notifications as a side effect of state transitions. Delivery
// is at most once: a failed create is logged and never undoes the transition.
type emitter struct {
	repo    repository.NotificationRepository
	clock   clock.Clock
	metrics *metrics.Collector
	logger  *logger.Logger
}

func newEmitter(repo repository.NotificationRepository, clk clock.Clock, metrics *metrics.Collector, logger *logger.Logger) *emitter {
	return &emitter{repo: repo, clock: clk, metrics: metrics, logger: logger}
}

// emit creates one notification. A nil roomID addresses all admins.
func (e *emitter) emit(ctx context.Context, notificationType, title, message string, roomID *string) *models.Notification {
	n := &models.Notification{
		ID:        uuid.NewString(),
		Type:      notificationType,
		Title:     title,
		Message:   message,
		RoomID:    roomID,
		ReadBy:    pq.StringArray{},
		CreatedAt: e.clock.Now().UTC(),
	}

	// The triggering write already happened, so the caller's cancellation must not drop the notice.
	if err := e.repo.Create(context.WithoutCancel(ctx), n); err != nil {
		e.logger.WithError(err).WithFields(map[string]interface{}{
			"type":    notificationType,
			"room_id": roomID,
		}).Error("Failed to create notification")
		return nil
	}

	e.metrics.NotificationEmitted(notificationType)
	e.logger.WithFields(map[string]interface{}{
		"notification_id": n.ID,
		"type":            notificationType,
	}).Info("Notification created")
	return n
}

func stringPtr(s string) *string {
	return &s
}
