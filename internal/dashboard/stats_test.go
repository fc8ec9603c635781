package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apt-be-svc/internal/billing"
	"apt-be-svc/internal/models"
	"apt-be-svc/internal/stream"
	"apt-be-svc/pkg/logger"
)

var march = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

func room(id, status string) models.Room {
	tenant := models.NoTenant
	if status == models.RoomOccupied {
		tenant = "tenant-" + id
	}
	return models.Room{ID: id, Status: status, TenantName: tenant}
}

func charge(id, room string, amount int64, due, status string) models.Charge {
	return models.Charge{ID: id, Room: &room, Category: models.CategoryRent, Amount: decimal.NewFromInt(amount), DueDate: due, Status: status}
}

func TestComputeOccupancy(t *testing.T) {
	rooms := []models.Room{
		room("101", models.RoomOccupied),
		room("102", models.RoomOccupied),
		room("103", models.RoomVacant),
		room("104", models.RoomMaintenance),
	}

	stats := Compute(rooms, nil, march, time.UTC, 6)

	assert.Equal(t, 4, stats.TotalRooms)
	assert.Equal(t, 2, stats.Occupied)
	assert.Equal(t, 1, stats.Vacant)
	assert.Equal(t, 1, stats.Maintenance)
	assert.Equal(t, 50.0, stats.OccupancyRate)
}

func TestComputeEmpty(t *testing.T) {
	stats := Compute(nil, nil, march, time.UTC, 3)

	assert.Zero(t, stats.OccupancyRate)
	require.Len(t, stats.IncomeSeries, 3)
	assert.Equal(t, "2024-01", stats.IncomeSeries[0].Month)
	assert.Equal(t, "2024-03", stats.IncomeSeries[2].Month)
}

func TestComputeIncomeSeriesAndHistogram(t *testing.T) {
	charges := []models.Charge{
		charge("a", "101", 4500, "2024-03-05", "Paid"),
		charge("b", "102", 5000, "2024-03-05", "Paid"),
		charge("c", "101", 4500, "2024-02-05", "Paid"),
		charge("d", "101", 4500, "2023-01-05", "Paid"), // outside the window
		charge("e", "102", 300, "2024-03-01", "Pending"),
		charge("f", "102", 200, "2024-03-31", "Pending Review"),
		charge("g", "", 1, "bad", "Pending"),
	}

	stats := Compute(nil, charges, march, time.UTC, 6)

	require.Len(t, stats.IncomeSeries, 6)
	assert.Equal(t, "2023-10", stats.IncomeSeries[0].Month)
	assert.True(t, decimal.NewFromInt(4500).Equal(stats.IncomeSeries[4].Amount))
	assert.True(t, decimal.NewFromInt(9500).Equal(stats.IncomeSeries[5].Amount))
	assert.Equal(t, 4, stats.StatusHistogram[billing.StatusPaid])
	assert.Equal(t, 1, stats.StatusHistogram[billing.StatusOverdue])
	assert.Equal(t, 1, stats.StatusHistogram[billing.StatusPendingReview])
	assert.True(t, decimal.NewFromInt(500).Equal(stats.Outstanding))
	assert.Equal(t, 1, stats.SkippedCharges)
}

type snapshots struct {
	mu         sync.Mutex
	rooms      []models.Room
	charges    []models.Charge
	failCharge bool
}

func (s *snapshots) loadRooms(context.Context) ([]models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Room(nil), s.rooms...), nil
}

func (s *snapshots) loadCharges(context.Context) ([]models.Charge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failCharge {
		return nil, errors.New("connection reset")
	}
	return append([]models.Charge(nil), s.charges...), nil
}

func (s *snapshots) set(fn func(s *snapshots)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

func next(t *testing.T, ch <-chan Stats, match func(Stats) bool) Stats {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-ch:
			if match(s) {
				return s
			}
		case <-deadline:
			t.Fatal("timed out waiting for dashboard stats")
			return Stats{}
		}
	}
}

func TestReconcilerRecomputesOnEitherFeed(t *testing.T) {
	hub := stream.NewHub(nil, logger.NewNopLogger())
	snap := &snapshots{
		rooms:   []models.Room{room("101", models.RoomOccupied), room("102", models.RoomVacant)},
		charges: []models.Charge{charge("a", "101", 4500, "2024-03-05", "Paid")},
	}
	r := NewReconciler(hub, snap.loadRooms, snap.loadCharges, testclock.NewClock(march), time.UTC, 6, nil, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)
	feed := r.Subscribe(ctx)

	first := next(t, feed, func(s Stats) bool { return s.TotalRooms == 2 && s.StatusHistogram[billing.StatusPaid] == 1 })
	assert.Equal(t, 50.0, first.OccupancyRate)

	// Rooms move while charges stay put.
	snap.set(func(s *snapshots) { s.rooms[1].Status = models.RoomOccupied })
	hub.Notify(ctx, stream.Change{Collection: stream.Rooms})
	second := next(t, feed, func(s Stats) bool { return s.Occupied == 2 })
	assert.Equal(t, 100.0, second.OccupancyRate)
	assert.Equal(t, 1, second.StatusHistogram[billing.StatusPaid], "charge snapshot is kept across room updates")

	// Charges move while rooms stay put.
	snap.set(func(s *snapshots) {
		s.charges = append(s.charges, charge("b", "102", 5000, "2024-03-05", "Paid"))
	})
	hub.Notify(ctx, stream.Change{Collection: stream.Charges})
	third := next(t, feed, func(s Stats) bool { return s.StatusHistogram[billing.StatusPaid] == 2 })
	assert.Equal(t, 2, third.Occupied)

	latest, ok := r.Latest()
	require.True(t, ok)
	assert.Equal(t, 2, latest.StatusHistogram[billing.StatusPaid])
}

func TestReconcilerKeepsSnapshotWhenReloadFails(t *testing.T) {
	hub := stream.NewHub(nil, logger.NewNopLogger())
	snap := &snapshots{
		rooms:   []models.Room{room("101", models.RoomOccupied)},
		charges: []models.Charge{charge("a", "101", 4500, "2024-03-05", "Paid")},
	}
	r := NewReconciler(hub, snap.loadRooms, snap.loadCharges, testclock.NewClock(march), time.UTC, 6, nil, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)
	feed := r.Subscribe(ctx)
	next(t, feed, func(s Stats) bool { return s.StatusHistogram[billing.StatusPaid] == 1 })

	snap.set(func(s *snapshots) { s.failCharge = true })
	hub.Notify(ctx, stream.Change{Collection: stream.Charges})
	snap.set(func(s *snapshots) { s.rooms = append(s.rooms, room("102", models.RoomVacant)) })
	hub.Notify(ctx, stream.Change{Collection: stream.Rooms})

	got := next(t, feed, func(s Stats) bool { return s.TotalRooms == 2 })
	assert.Equal(t, 1, got.StatusHistogram[billing.StatusPaid])
}

func TestLatestBeforeFirstRun(t *testing.T) {
	r := NewReconciler(stream.NewHub(nil, logger.NewNopLogger()), nil, nil, testclock.NewClock(march), time.UTC, 6, nil, logger.NewNopLogger())
	_, ok := r.Latest()
	assert.False(t, ok)
}
