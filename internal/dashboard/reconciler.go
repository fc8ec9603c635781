package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/juju/clock"

	"apt-be-svc/internal/metrics"
	"apt-be-svc/internal/models"
	"apt-be-svc/internal/stream"
	"apt-be-svc/pkg/logger"
)

// RoomLoader reads the full room snapshot.
type RoomLoader func(ctx context.Context) ([]models.Room, error)

// ChargeLoader reads the full charge snapshot.
type ChargeLoader func(ctx context.Context) ([]models.Charge, error)

// Reconciler keeps the latest room and charge snapshots, each refreshed by its
// own change feed, and recomputes Stats from both whenever either one moves.
// The two feeds are not ordered relative to each other.
type Reconciler struct {
	hub         *stream.Hub
	loadRooms   RoomLoader
	loadCharges ChargeLoader
	clock       clock.Clock
	location    *time.Location
	window      int
	metrics     *metrics.Collector
	logger      *logger.Logger

	mu      sync.RWMutex
	rooms   []models.Room
	charges []models.Charge
	latest  *Stats

	subsMu sync.Mutex
	subs   map[chan Stats]struct{}
}

// NewReconciler creates a reconciler. Call Run to start it.
func NewReconciler(hub *stream.Hub, loadRooms RoomLoader, loadCharges ChargeLoader, clk clock.Clock, location *time.Location, window int, metrics *metrics.Collector, logger *logger.Logger) *Reconciler {
	return &Reconciler{
		hub:         hub,
		loadRooms:   loadRooms,
		loadCharges: loadCharges,
		clock:       clk,
		location:    location,
		window:      window,
		metrics:     metrics,
		logger:      logger,
		subs:        make(map[chan Stats]struct{}),
	}
}

// Run follows both feeds until ctx is done.
func (r *Reconciler) Run(ctx context.Context) {
	roomsSub := r.hub.Subscribe(stream.Rooms)
	chargesSub := r.hub.Subscribe(stream.Charges)
	defer roomsSub.Close()
	defer chargesSub.Close()

	r.refreshRooms(ctx)
	r.refreshCharges(ctx)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Dashboard reconciler stopped")
			return
		case <-roomsSub.C():
			r.refreshRooms(ctx)
		case <-chargesSub.C():
			r.refreshCharges(ctx)
		}
	}
}

func (r *Reconciler) refreshRooms(ctx context.Context) {
	rooms, err := r.loadRooms(ctx)
	if err != nil {
		r.logger.WithError(err).Warn("Failed to reload rooms, keeping previous snapshot")
		return
	}
	r.mu.Lock()
	r.rooms = rooms
	r.mu.Unlock()
	r.recompute()
}

func (r *Reconciler) refreshCharges(ctx context.Context) {
	charges, err := r.loadCharges(ctx)
	if err != nil {
		r.logger.WithError(err).Warn("Failed to reload charges, keeping previous snapshot")
		return
	}
	r.mu.Lock()
	r.charges = charges
	r.mu.Unlock()
	r.recompute()
}

func (r *Reconciler) recompute() {
	r.mu.Lock()
	stats := Compute(r.rooms, r.charges, r.clock.Now(), r.location, r.window)
	r.latest = &stats
	r.mu.Unlock()

	r.metrics.DashboardRecomputed()
	r.broadcast(stats)
}

// Latest returns the most recent stats, or false before the first computation.
func (r *Reconciler) Latest() (Stats, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.latest == nil {
		return Stats{}, false
	}
	return *r.latest, true
}

// Subscribe delivers the current stats, if any, and every later recomputation.
// Delivery is latest-wins. The channel closes when ctx is done.
func (r *Reconciler) Subscribe(ctx context.Context) <-chan Stats {
	ch := make(chan Stats, 1)

	r.subsMu.Lock()
	r.subs[ch] = struct{}{}
	if latest, ok := r.Latest(); ok {
		ch <- latest
	}
	r.subsMu.Unlock()

	go func() {
		<-ctx.Done()
		r.subsMu.Lock()
		delete(r.subs, ch)
		close(ch)
		r.subsMu.Unlock()
	}()

	return ch
}

func (r *Reconciler) broadcast(stats Stats) {
	r.subsMu.Lock()
	defer r.subsMu.Unlock()
	for ch := range r.subs {
		select {
		case <-ch:
		default:
		}
		ch <- stats
	}
}
