package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apt-be-svc/internal/models"
	"apt-be-svc/internal/stream"
	"apt-be-svc/pkg/apperror"
	"apt-be-svc/pkg/logger"
)

func newRoomFixture(rooms ...models.Room) (RoomService, *fakeRoomRepo, *fakeNotificationRepo) {
	repo := newFakeRoomRepo(rooms...)
	notifications := &fakeNotificationRepo{}
	svc := NewRoomService(repo, notifications, stream.NewHub(nil, logger.NewNopLogger()), testclock.NewClock(midJanuary), nil, logger.NewNopLogger())
	return svc, repo, notifications
}

func vacant(id string) models.Room {
	return models.Room{ID: id, Type: "studio", Price: decimal.NewFromInt(4500), Status: models.RoomVacant, TenantName: models.NoTenant}
}

func TestConcurrentRegistrationHasOneWinner(t *testing.T) {
	svc, repo, _ := newRoomFixture(vacant("101"))

	// Hold both writers until each has read the room as Vacant.
	var arrived sync.WaitGroup
	arrived.Add(2)
	repo.beforeWrite = func() {
		arrived.Done()
		arrived.Wait()
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, name := range []string{"Somchai", "Malee"} {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			_, errs[i] = svc.Register(context.Background(), "101", name)
		}(i, name)
	}
	wg.Wait()

	var wins, rejections int
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		if apperror.IsKind(err, apperror.KindPrecondition) {
			rejections++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, rejections)

	room, err := svc.GetRoom(context.Background(), "101")
	require.NoError(t, err)
	assert.Equal(t, models.RoomOccupied, room.Status)
	assert.Contains(t, []string{"Somchai", "Malee"}, room.TenantName)
}

func TestRegisterRequiresVacantRoomAndTenantName(t *testing.T) {
	svc, _, _ := newRoomFixture(vacant("101"), models.Room{ID: "102", Status: models.RoomOccupied, TenantName: "Malee"})
	ctx := context.Background()

	_, err := svc.Register(ctx, "102", "Somchai")
	assert.True(t, apperror.IsKind(err, apperror.KindPrecondition))

	_, err = svc.Register(ctx, "101", models.NoTenant)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = svc.Register(ctx, "999", "Somchai")
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestMaintenanceRoundTripKeepsTenant(t *testing.T) {
	svc, _, notifications := newRoomFixture(models.Room{ID: "102", Status: models.RoomOccupied, TenantName: "Malee"})
	ctx := context.Background()

	room, err := svc.StartMaintenance(ctx, "102")
	require.NoError(t, err)
	assert.Equal(t, models.RoomMaintenance, room.Status)
	assert.Equal(t, "Malee", room.TenantName)

	room, err = svc.FinishRepair(ctx, "102")
	require.NoError(t, err)
	assert.Equal(t, models.RoomOccupied, room.Status, "a tenant on file brings the room back occupied")

	notices := notifications.ofType(models.NotificationMaintenance)
	require.Len(t, notices, 1)
	assert.Nil(t, notices[0].RoomID)
	assert.Contains(t, notices[0].Message, "102")
}

func TestFinishRepairOnEmptyRoomReturnsVacant(t *testing.T) {
	svc, _, _ := newRoomFixture(vacant("103"))
	ctx := context.Background()

	_, err := svc.StartMaintenance(ctx, "103")
	require.NoError(t, err)
	room, err := svc.FinishRepair(ctx, "103")
	require.NoError(t, err)
	assert.Equal(t, models.RoomVacant, room.Status)
	assert.Equal(t, models.NoTenant, room.TenantName)

	_, err = svc.FinishRepair(ctx, "103")
	assert.True(t, apperror.IsKind(err, apperror.KindPrecondition))
}

func TestVacateClearsTenant(t *testing.T) {
	svc, _, _ := newRoomFixture(models.Room{ID: "102", Status: models.RoomOccupied, TenantName: "Malee"})

	room, err := svc.Vacate(context.Background(), "102")
	require.NoError(t, err)
	assert.Equal(t, models.RoomVacant, room.Status)
	assert.Equal(t, models.NoTenant, room.TenantName)
}

func TestCreateAndUpdateRoomKeepTenantInvariant(t *testing.T) {
	svc, _, _ := newRoomFixture()
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, &CreateRoomRequest{ID: "201", Type: "suite", Price: decimal.NewFromInt(8000)})
	require.NoError(t, err)
	assert.Equal(t, models.RoomVacant, room.Status)
	assert.Equal(t, models.NoTenant, room.TenantName)

	_, err = svc.CreateRoom(ctx, &CreateRoomRequest{ID: "202", Status: models.RoomOccupied})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = svc.CreateRoom(ctx, &CreateRoomRequest{ID: "203", Price: decimal.NewFromInt(-1)})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	tenant := "Somchai"
	_, err = svc.UpdateRoom(ctx, "201", &UpdateRoomRequest{TenantName: &tenant})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation), "a vacant room cannot carry a tenant")

	occupied := models.RoomOccupied
	room, err = svc.UpdateRoom(ctx, "201", &UpdateRoomRequest{Status: &occupied, TenantName: &tenant})
	require.NoError(t, err)
	assert.Equal(t, models.RoomOccupied, room.Status)

	price := decimal.NewFromInt(8500)
	room, err = svc.UpdateRoom(ctx, "201", &UpdateRoomRequest{Price: &price})
	require.NoError(t, err)
	assert.True(t, price.Equal(room.Price))
	assert.Equal(t, "Somchai", room.TenantName)

	require.NoError(t, svc.DeleteRoom(ctx, "201"))
	_, err = svc.GetRoom(ctx, "201")
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestWatchRoomsFollowsTransitions(t *testing.T) {
	repo := newFakeRoomRepo(vacant("101"), vacant("102"))
	hub := stream.NewHub(nil, logger.NewNopLogger())
	svc := NewRoomService(repo, &fakeNotificationRepo{}, hub, testclock.NewClock(midJanuary), nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := svc.WatchRooms(ctx, models.RoomVacant)
	first := <-feed
	assert.Len(t, first, 2)

	_, err := svc.Register(ctx, "101", "Somchai")
	require.NoError(t, err)
	hub.Notify(ctx, stream.Change{Collection: stream.Rooms, ID: "101", Op: stream.OpUpdate})

	deadline := time.After(2 * time.Second)
	for {
		select {
		case rooms := <-feed:
			if len(rooms) == 1 {
				assert.Equal(t, "102", rooms[0].ID)
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for the room list update")
		}
	}
}
