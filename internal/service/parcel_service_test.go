package service

import (
	"context"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apt-be-svc/internal/models"
	"apt-be-svc/pkg/apperror"
	"apt-be-svc/pkg/logger"
)

func TestParcelArrivalNotifiesRoom(t *testing.T) {
	parcels := &fakeParcelRepo{parcels: map[string]models.Parcel{}}
	notifications := &fakeNotificationRepo{}
	clk := testclock.NewClock(midJanuary)
	svc := NewParcelService(parcels, newFakeRoomRepo(vacant("205")), notifications, clk, nil, logger.NewNopLogger())
	ctx := context.Background()

	parcel, err := svc.LogArrival(ctx, &LogParcelRequest{RoomID: "205", Carrier: "Kerry"})
	require.NoError(t, err)
	assert.Equal(t, models.ParcelArrived, parcel.Status)

	notices := notifications.ofType(models.NotificationParcel)
	require.Len(t, notices, 1)
	require.NotNil(t, notices[0].RoomID)
	assert.Equal(t, "205", *notices[0].RoomID)
	assert.Contains(t, notices[0].Message, "Kerry")

	_, err = svc.LogArrival(ctx, &LogParcelRequest{RoomID: "999"})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestMarkPickedUpIsIdempotent(t *testing.T) {
	parcels := &fakeParcelRepo{parcels: map[string]models.Parcel{
		"p1": {ID: "p1", RoomID: "205", Status: models.ParcelArrived, ArrivedAt: midJanuary},
	}}
	clk := testclock.NewClock(midJanuary)
	svc := NewParcelService(parcels, newFakeRoomRepo(), &fakeNotificationRepo{}, clk, nil, logger.NewNopLogger())
	ctx := context.Background()

	first, err := svc.MarkPickedUp(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, first.PickedUpAt)

	clk.Advance(time.Hour)
	second, err := svc.MarkPickedUp(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, first.PickedUpAt.Equal(*second.PickedUpAt))
	assert.Equal(t, 1, parcels.updates)

	waiting, err := svc.List(ctx, "205", models.ParcelArrived)
	require.NoError(t, err)
	assert.Empty(t, waiting)

	_, err = svc.List(ctx, "", "Lost")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}
