package inbox

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apt-be-svc/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestRoomScopedNotificationVisibility(t *testing.T) {
	n := models.Notification{ID: "n1", Type: models.NotificationPaymentVerified, RoomID: ptr("205"), CreatedAt: time.Now()}

	tenant205 := Viewer{ID: "u205", Role: RoleTenant, RoomID: "205"}
	tenant206 := Viewer{ID: "u206", Role: RoleTenant, RoomID: "206"}
	admin := Viewer{ID: "admin-1", Role: RoleAdmin}

	assert.True(t, Visible(tenant205, n))
	assert.True(t, Unread(tenant205, n))
	assert.False(t, Visible(tenant206, n))

	assert.True(t, Visible(admin, n))
	assert.True(t, Unread(admin, n))

	n.ReadBy = pq.StringArray{"admin-1"}
	assert.False(t, Unread(admin, n))
	assert.True(t, Unread(tenant205, n), "another reader does not mark it read for the tenant")
}

func TestAdminDoesNotSeeParcels(t *testing.T) {
	admin := Viewer{ID: "a", Role: RoleAdmin}
	tenant := Viewer{ID: "t", Role: RoleTenant, RoomID: "101"}
	parcel := models.Notification{Type: models.NotificationParcel, RoomID: ptr("101")}

	assert.False(t, Visible(admin, parcel))
	assert.True(t, Visible(tenant, parcel))
}

func TestTenantDoesNotSeeUnscopedNotifications(t *testing.T) {
	tenant := Viewer{ID: "t", Role: RoleTenant, RoomID: "101"}
	adminOnly := models.Notification{Type: models.NotificationPayment}

	assert.False(t, Visible(tenant, adminOnly))
	assert.True(t, Visible(Viewer{ID: "a", Role: RoleAdmin}, adminOnly))
}

func TestLegacyReadFlag(t *testing.T) {
	n := models.Notification{Type: models.NotificationMaintenance, Read: ptr(true)}
	assert.False(t, Unread(Viewer{ID: "a", Role: RoleAdmin}, n))

	n.Read = ptr(false)
	assert.True(t, Unread(Viewer{ID: "a", Role: RoleAdmin}, n))
}

func TestBuildCountsAndOrders(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	admin := Viewer{ID: "a", Role: RoleAdmin}
	notifications := []models.Notification{
		{ID: "old", Type: models.NotificationPayment, CreatedAt: base},
		{ID: "new", Type: models.NotificationMaintenance, CreatedAt: base.Add(time.Hour)},
		{ID: "read", Type: models.NotificationPayment, CreatedAt: base.Add(30 * time.Minute), ReadBy: pq.StringArray{"a"}},
		{ID: "parcel", Type: models.NotificationParcel, RoomID: ptr("101"), CreatedAt: base.Add(2 * time.Hour)},
	}

	view := Build(admin, notifications)

	require.Len(t, view.Items, 3)
	assert.Equal(t, []string{"new", "read", "old"}, []string{view.Items[0].ID, view.Items[1].ID, view.Items[2].ID})
	assert.Equal(t, 2, view.UnreadCount)
	assert.ElementsMatch(t, []string{"old", "new"}, UnreadIDs(admin, notifications))
}

func TestBuildEmpty(t *testing.T) {
	view := Build(Viewer{ID: "t", Role: RoleTenant, RoomID: "1"}, nil)
	assert.NotNil(t, view.Items)
	assert.Zero(t, view.UnreadCount)
}
