package service

import (
	"context"

	"apt-be-svc/internal/inbox"
	"apt-be-svc/internal/repository"
	"apt-be-svc/internal/stream"
	"apt-be-svc/pkg/apperror"
	"apt-be-svc/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen -source=notification_service.go -destination=../mocks/notification_service_mock.go -package=mocks

// NotificationService defines the interface for the per-viewer inbox
type NotificationService interface {
	List(ctx context.Context, viewer inbox.Viewer) (*inbox.View, error)
	MarkRead(ctx context.Context, viewer inbox.Viewer, id string) error
	MarkAllRead(ctx context.Context, viewer inbox.Viewer) (int, error)
	Watch(ctx context.Context, viewer inbox.Viewer) <-chan inbox.View
}

// notificationService implements NotificationService
type notificationService struct {
	notificationRepo repository.NotificationRepository
	hub              *stream.Hub
	logger           *logger.Logger
}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(notificationRepo repository.NotificationRepository, hub *stream.Hub, logger *logger.Logger) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		hub:              hub,
		logger:           logger,
	}
}

func validViewer(viewer inbox.Viewer) error {
	if viewer.ID == "" {
		return apperror.New(apperror.KindValidation, "viewer id is required")
	}
	if viewer.Role != inbox.RoleAdmin && viewer.Role != inbox.RoleTenant {
		return apperror.WithMetadata(apperror.KindValidation, "unknown viewer role", map[string]string{"role": viewer.Role})
	}
	return nil
}

// List builds the viewer's inbox from the full notification snapshot
func (s *notificationService) List(ctx context.Context, viewer inbox.Viewer) (*inbox.View, error) {
	if err := validViewer(viewer); err != nil {
		return nil, err
	}
	notifications, err := s.notificationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	view := inbox.Build(viewer, notifications)
	return &view, nil
}

// MarkRead adds the viewer to read_by. Notifications the viewer cannot see are NOT_FOUND.
func (s *notificationService) MarkRead(ctx context.Context, viewer inbox.Viewer, id string) error {
	if err := validViewer(viewer); err != nil {
		return err
	}

	n, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !inbox.Visible(viewer, *n) {
		return apperror.WithMetadata(apperror.KindNotFound, "notification not found", map[string]string{"notification_id": id})
	}
	if !inbox.Unread(viewer, *n) {
		return nil
	}

	if err := s.notificationRepo.AddReader(context.WithoutCancel(ctx), id, viewer.ID); err != nil {
		s.logger.WithError(err).WithField("notification_id", id).Error("Failed to mark notification read")
		return err
	}
	return nil
}

// MarkAllRead marks every visible unread notification as read and returns how many there were
func (s *notificationService) MarkAllRead(ctx context.Context, viewer inbox.Viewer) (int, error) {
	if err := validViewer(viewer); err != nil {
		return 0, err
	}

	notifications, err := s.notificationRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	ids := inbox.UnreadIDs(viewer, notifications)
	if len(ids) == 0 {
		return 0, nil
	}

	if err := s.notificationRepo.AddReaderToMany(context.WithoutCancel(ctx), ids, viewer.ID); err != nil {
		s.logger.WithError(err).WithField("viewer_id", viewer.ID).Error("Failed to mark notifications read")
		return 0, err
	}

	s.logger.WithFields(map[string]interface{}{
		"viewer_id": viewer.ID,
		"marked":    len(ids),
	}).Info("Notifications marked read")
	return len(ids), nil
}

// Watch streams the viewer's inbox, rebuilt after every notification change
func (s *notificationService) Watch(ctx context.Context, viewer inbox.Viewer) <-chan inbox.View {
	sub := s.hub.Subscribe(stream.Notifications)
	return stream.Watch(ctx, sub, func(ctx context.Context) (inbox.View, error) {
		notifications, err := s.notificationRepo.List(ctx)
		if err != nil {
			return inbox.View{}, err
		}
		return inbox.Build(viewer, notifications), nil
	}, s.logger)
}
