// Package stream propagates "something changed in this collection" signals from
// the repositories to every watcher that derives a view from that collection.
// Signals carry no data: watchers always reload the full snapshot.
package stream

import (
	"context"
	"sync"

	"apt-be-svc/internal/metrics"
	"apt-be-svc/pkg/logger"
)

// Collection names a store whose changes can be watched.
type Collection string

const (
	Charges       Collection = "charges"
	Rooms         Collection = "rooms"
	Notifications Collection = "notifications"
	Parcels       Collection = "parcels"
)

// All lists every watched collection.
var All = []Collection{Charges, Rooms, Notifications, Parcels}

// Change describes one committed write.
type Change struct {
	Collection Collection `json:"collection"`
	ID         string     `json:"id,omitempty"`
	Op         string     `json:"op"`
}

// Write operations
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Notifier is told about every committed write. It never fails the write.
type Notifier interface {
	Notify(ctx context.Context, change Change)
}

// Subscription receives a coalesced signal whenever its collection changes.
type Subscription struct {
	hub        *Hub
	collection Collection
	ch         chan struct{}
	once       sync.Once
}

// C is signalled at least once after every change. Several changes may collapse into one signal.
func (s *Subscription) C() <-chan struct{} {
	return s.ch
}

// Close detaches the subscription from its hub. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s)
	})
}

// Hub is the in-process fan-out of change signals.
type Hub struct {
	mu      sync.Mutex
	subs    map[Collection]map[*Subscription]struct{}
	metrics *metrics.Collector
	logger  *logger.Logger
}

// NewHub creates an empty hub.
func NewHub(metrics *metrics.Collector, logger *logger.Logger) *Hub {
	return &Hub{
		subs:    make(map[Collection]map[*Subscription]struct{}),
		metrics: metrics,
		logger:  logger,
	}
}

// Subscribe starts receiving signals for a collection.
func (h *Hub) Subscribe(collection Collection) *Subscription {
	sub := &Subscription{hub: h, collection: collection, ch: make(chan struct{}, 1)}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[collection] == nil {
		h.subs[collection] = make(map[*Subscription]struct{})
	}
	h.subs[collection][sub] = struct{}{}
	return sub
}

// Notify signals every subscriber of the change's collection without blocking.
// A subscriber that has not consumed its previous signal keeps just that one.
func (h *Hub) Notify(_ context.Context, change Change) {
	h.metrics.StoreChanged(string(change.Collection))

	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs[change.Collection] {
		select {
		case sub.ch <- struct{}{}:
		default:
		}
	}
}

// NotifyAll signals every collection, used after a reconnect when changes may have been missed.
func (h *Hub) NotifyAll(ctx context.Context) {
	for _, c := range All {
		h.Notify(ctx, Change{Collection: c, Op: OpUpdate})
	}
}

// Subscribers returns the number of live subscriptions for a collection.
func (h *Hub) Subscribers(collection Collection) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[collection])
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[sub.collection], sub)
}
