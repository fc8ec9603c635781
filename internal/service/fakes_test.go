package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"apt-be-svc/internal/billing"
	"apt-be-svc/internal/inbox"
	"apt-be-svc/internal/models"
	"apt-be-svc/internal/repository"
	"apt-be-svc/internal/stream"
	"apt-be-svc/pkg/apperror"
)

var errConnReset = errors.New("connection reset by peer")

type fakeChargeRepo struct {
	mu         sync.Mutex
	charges    map[string]models.Charge
	failUpdate map[string]bool
	updates    int
	notifier   stream.Notifier
}

func newFakeChargeRepo(notifier stream.Notifier, charges ...models.Charge) *fakeChargeRepo {
	r := &fakeChargeRepo{charges: map[string]models.Charge{}, failUpdate: map[string]bool{}, notifier: notifier}
	for _, c := range charges {
		r.charges[c.ID] = c
	}
	return r
}

func (r *fakeChargeRepo) notify(ctx context.Context, id, op string) {
	if r.notifier != nil {
		r.notifier.Notify(ctx, stream.Change{Collection: stream.Charges, ID: id, Op: op})
	}
}

func (r *fakeChargeRepo) Create(ctx context.Context, charge *models.Charge) error {
	r.mu.Lock()
	r.charges[charge.ID] = *charge
	r.mu.Unlock()
	r.notify(ctx, charge.ID, stream.OpCreate)
	return nil
}

func (r *fakeChargeRepo) CreateBatch(ctx context.Context, charges []*models.Charge) error {
	for _, c := range charges {
		if err := r.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeChargeRepo) GetByIDs(_ context.Context, ids []string) ([]models.Charge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Charge
	for _, id := range ids {
		if c, ok := r.charges[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeChargeRepo) List(_ context.Context, filter repository.ChargeFilter) ([]models.Charge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Charge
	for _, c := range r.charges {
		if filter.Room != "" && billing.RoomKey(c) != filter.Room {
			continue
		}
		if filter.Category != "" && c.Category != filter.Category {
			continue
		}
		if filter.MonthLabel != "" && !strings.HasPrefix(c.DueDate, filter.MonthLabel+"-") {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeChargeRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	r.mu.Lock()
	if r.failUpdate[id] {
		r.mu.Unlock()
		return apperror.Wrap(apperror.KindTransient, "failed to update charge", errConnReset)
	}
	c, ok := r.charges[id]
	if !ok {
		r.mu.Unlock()
		return apperror.New(apperror.KindNotFound, "charge not found")
	}
	if v, ok := fields["status"].(string); ok {
		c.Status = v
	}
	if v, ok := fields["proof_ref"].(string); ok {
		c.ProofRef = &v
	}
	if v, ok := fields["paid_at"].(time.Time); ok {
		c.PaidAt = &v
	}
	r.charges[id] = c
	r.updates++
	r.mu.Unlock()
	r.notify(ctx, id, stream.OpUpdate)
	return nil
}

func (r *fakeChargeRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	if _, ok := r.charges[id]; !ok {
		r.mu.Unlock()
		return apperror.New(apperror.KindNotFound, "charge not found")
	}
	delete(r.charges, id)
	r.mu.Unlock()
	r.notify(ctx, id, stream.OpDelete)
	return nil
}

func (r *fakeChargeRepo) get(id string) models.Charge {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.charges[id]
}

type fakeRoomRepo struct {
	mu    sync.Mutex
	rooms map[string]models.Room
	// beforeWrite runs inside UpdateIfStatus before the status check.
	beforeWrite func()
}

func newFakeRoomRepo(rooms ...models.Room) *fakeRoomRepo {
	r := &fakeRoomRepo{rooms: map[string]models.Room{}}
	for _, room := range rooms {
		r.rooms[room.ID] = room
	}
	return r
}

func (r *fakeRoomRepo) Create(_ context.Context, room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[room.ID]; ok {
		return apperror.New(apperror.KindPrecondition, "room exists")
	}
	r.rooms[room.ID] = *room
	return nil
}

func (r *fakeRoomRepo) GetByID(_ context.Context, id string) (*models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok {
		return nil, apperror.New(apperror.KindNotFound, "room not found")
	}
	return &room, nil
}

func (r *fakeRoomRepo) List(_ context.Context, status string) ([]models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Room
	for _, room := range r.rooms {
		if status == "" || room.Status == status {
			out = append(out, room)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRoomRepo) apply(room *models.Room, fields map[string]interface{}) {
	for k, v := range fields {
		switch k {
		case "status":
			room.Status = v.(string)
		case "tenant_name":
			room.TenantName = v.(string)
		case "type":
			room.Type = v.(string)
		}
	}
}

func (r *fakeRoomRepo) Update(_ context.Context, id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok {
		return apperror.New(apperror.KindNotFound, "room not found")
	}
	r.apply(&room, fields)
	r.rooms[id] = room
	return nil
}

func (r *fakeRoomRepo) UpdateIfStatus(_ context.Context, id, expected string, fields map[string]interface{}) (bool, error) {
	if r.beforeWrite != nil {
		r.beforeWrite()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok {
		return false, apperror.New(apperror.KindNotFound, "room not found")
	}
	if room.Status != expected {
		return false, nil
	}
	r.apply(&room, fields)
	r.rooms[id] = room
	return true, nil
}

func (r *fakeRoomRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[id]; !ok {
		return apperror.New(apperror.KindNotFound, "room not found")
	}
	delete(r.rooms, id)
	return nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []models.Notification
	failCreate    bool
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return apperror.Wrap(apperror.KindTransient, "failed to create notification", errConnReset)
	}
	r.notifications = append(r.notifications, *n)
	return nil
}

func (r *fakeNotificationRepo) GetByID(_ context.Context, id string) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			n := n
			return &n, nil
		}
	}
	return nil, apperror.New(apperror.KindNotFound, "notification not found")
}

func (r *fakeNotificationRepo) List(context.Context) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Notification(nil), r.notifications...), nil
}

func (r *fakeNotificationRepo) AddReader(_ context.Context, id, reader string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			set := inbox.FromSlice(r.notifications[i].ReadBy)
			set.Add(reader)
			r.notifications[i].ReadBy = set.Slice()
			return nil
		}
	}
	return apperror.New(apperror.KindNotFound, "notification not found")
}

func (r *fakeNotificationRepo) AddReaderToMany(ctx context.Context, ids []string, reader string) error {
	for _, id := range ids {
		if err := r.AddReader(ctx, id, reader); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeNotificationRepo) ExistsSince(_ context.Context, notificationType, roomID, title string, since time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.Type == notificationType && n.RoomID != nil && *n.RoomID == roomID && n.Title == title && !n.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeNotificationRepo) ofType(notificationType string) []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Notification
	for _, n := range r.notifications {
		if n.Type == notificationType {
			out = append(out, n)
		}
	}
	return out
}

type fakeParcelRepo struct {
	mu      sync.Mutex
	parcels map[string]models.Parcel
	updates int
}

func (r *fakeParcelRepo) Create(_ context.Context, p *models.Parcel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parcels[p.ID] = *p
	return nil
}

func (r *fakeParcelRepo) GetByID(_ context.Context, id string) (*models.Parcel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.parcels[id]
	if !ok {
		return nil, apperror.New(apperror.KindNotFound, "parcel not found")
	}
	return &p, nil
}

func (r *fakeParcelRepo) List(_ context.Context, roomID, status string) ([]models.Parcel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Parcel
	for _, p := range r.parcels {
		if (roomID == "" || p.RoomID == roomID) && (status == "" || p.Status == status) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeParcelRepo) Update(_ context.Context, id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.parcels[id]
	if !ok {
		return apperror.New(apperror.KindNotFound, "parcel not found")
	}
	if v, ok := fields["status"].(string); ok {
		p.Status = v
	}
	if v, ok := fields["picked_up_at"].(time.Time); ok {
		p.PickedUpAt = &v
	}
	r.parcels[id] = p
	r.updates++
	return nil
}

func (r *fakeParcelRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.parcels[id]; !ok {
		return apperror.New(apperror.KindNotFound, "parcel not found")
	}
	delete(r.parcels, id)
	return nil
}
