package service

import (
	"context"
	"time"

	"github.com/juju/clock"

	"apt-be-svc/internal/dashboard"
	"apt-be-svc/internal/repository"
	"apt-be-svc/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen -source=dashboard_service.go -destination=../mocks/dashboard_service_mock.go -package=mocks

// DashboardService interface defines dashboard service methods
type DashboardService interface {
	GetStatistics(ctx context.Context) (*dashboard.Stats, error)
	Watch(ctx context.Context) <-chan dashboard.Stats
}

// dashboardService implements DashboardService interface
type dashboardService struct {
	reconciler *dashboard.Reconciler
	roomRepo   repository.RoomRepository
	chargeRepo repository.ChargeRepository
	clock      clock.Clock
	location   *time.Location
	window     int
	logger     *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(reconciler *dashboard.Reconciler, roomRepo repository.RoomRepository, chargeRepo repository.ChargeRepository, clk clock.Clock, location *time.Location, window int, logger *logger.Logger) DashboardService {
	return &dashboardService{
		reconciler: reconciler,
		roomRepo:   roomRepo,
		chargeRepo: chargeRepo,
		clock:      clk,
		location:   location,
		window:     window,
		logger:     logger,
	}
}

// GetStatistics returns the reconciler's latest stats, computing them directly
// from the stores until the reconciler has produced its first result.
func (s *dashboardService) GetStatistics(ctx context.Context) (*dashboard.Stats, error) {
	if stats, ok := s.reconciler.Latest(); ok {
		return &stats, nil
	}

	rooms, err := s.roomRepo.List(ctx, "")
	if err != nil {
		s.logger.WithError(err).Error("Failed to load rooms for dashboard")
		return nil, err
	}
	charges, err := s.chargeRepo.List(ctx, repository.ChargeFilter{})
	if err != nil {
		s.logger.WithError(err).Error("Failed to load charges for dashboard")
		return nil, err
	}

	stats := dashboard.Compute(rooms, charges, s.clock.Now(), s.location, s.window)
	s.logger.WithFields(map[string]interface{}{
		"total_rooms": stats.TotalRooms,
		"occupied":    stats.Occupied,
	}).Info("Dashboard statistics computed on demand")
	return &stats, nil
}

// Watch streams every recomputation of the dashboard
func (s *dashboardService) Watch(ctx context.Context) <-chan dashboard.Stats {
	return s.reconciler.Subscribe(ctx)
}
