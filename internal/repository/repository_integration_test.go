package repository

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"apt-be-svc/internal/models"
	"apt-be-svc/internal/stream"
	"apt-be-svc/pkg/apperror"
	"apt-be-svc/pkg/logger"
)

// integration tests are opt-in. Set DB_DSN_TEST=1 and DB_DSN to a scratch PostgreSQL database.
func setupTestDB(t *testing.T) (*gorm.DB, *stream.Hub) {
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	db, err := gorm.Open(postgres.Open(os.Getenv("DB_DSN")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Room{}, &models.Charge{}, &models.Notification{}, &models.Parcel{}, &models.LogSchedullers{}))
	return db, stream.NewHub(nil, logger.NewNopLogger())
}

func TestRoomConditionalUpdateHasOneWinner(t *testing.T) {
	db, hub := setupTestDB(t)
	repo := NewRoomRepository(db, hub)
	ctx := context.Background()

	id := "it-" + uuid.NewString()[:8]
	require.NoError(t, repo.Create(ctx, &models.Room{ID: id, Type: "studio", Price: decimal.NewFromInt(4500), Status: models.RoomVacant, TenantName: models.NoTenant}))
	t.Cleanup(func() { _ = repo.Delete(ctx, id) })

	var wg sync.WaitGroup
	results := make([]bool, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := repo.UpdateIfStatus(ctx, id, models.RoomVacant, map[string]interface{}{
				"status":      models.RoomOccupied,
				"tenant_name": []string{"A", "B"}[i],
			})
			assert.NoError(t, err)
			results[i] = ok
		}(i)
	}
	wg.Wait()

	assert.NotEqual(t, results[0], results[1], "exactly one registration must win")

	_, err := repo.UpdateIfStatus(ctx, "missing-"+id, models.RoomVacant, map[string]interface{}{"status": models.RoomOccupied})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestNotificationAddReaderIsASetAdd(t *testing.T) {
	db, hub := setupTestDB(t)
	repo := NewNotificationRepository(db, hub)
	ctx := context.Background()

	n := &models.Notification{ID: uuid.NewString(), Type: models.NotificationPayment, Title: "t", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, n))
	t.Cleanup(func() { db.Delete(&models.Notification{}, "id = ?", n.ID) })

	for _, reader := range []string{"admin", "tenant", "admin", "tenant"} {
		require.NoError(t, repo.AddReader(ctx, n.ID, reader))
	}

	got, err := repo.GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"admin", "tenant"}, []string(got.ReadBy))

	assert.True(t, apperror.IsKind(repo.AddReader(ctx, uuid.NewString(), "admin"), apperror.KindNotFound))
}

func TestChargeListMatchesEitherRoomKey(t *testing.T) {
	db, hub := setupTestDB(t)
	repo := NewChargeRepository(db, hub)
	ctx := context.Background()

	room := "it-" + uuid.NewString()[:8]
	legacy := &models.Charge{ID: uuid.NewString(), Room: &room, Category: models.CategoryRent, Amount: decimal.NewFromInt(100), DueDate: "2024-01-31", Status: "Pending"}
	current := &models.Charge{ID: uuid.NewString(), RoomNumber: &room, Category: models.CategoryWater, Amount: decimal.NewFromInt(10), DueDate: "2024-01-31", Status: "Pending"}
	require.NoError(t, repo.CreateBatch(ctx, []*models.Charge{legacy, current}))
	t.Cleanup(func() {
		_ = repo.Delete(ctx, legacy.ID)
		_ = repo.Delete(ctx, current.ID)
	})

	got, err := repo.List(ctx, ChargeFilter{Room: room, MonthLabel: "2024-01"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	require.NoError(t, repo.Update(ctx, legacy.ID, map[string]interface{}{"status": "PendingReview"}))
	assert.True(t, apperror.IsKind(repo.Update(ctx, uuid.NewString(), map[string]interface{}{"status": "Paid"}), apperror.KindNotFound))
}

func TestChargeWithTimestampDueDateListsUnderItsMonth(t *testing.T) {
	db, hub := setupTestDB(t)
	repo := NewChargeRepository(db, hub)
	ctx := context.Background()

	room := "it-" + uuid.NewString()[:8]
	imported := &models.Charge{ID: uuid.NewString(), Room: &room, Category: models.CategoryRent, Amount: decimal.NewFromInt(100),
		DueDate: "2024-01-31T23:59:59.999999999+07:00", Status: "Pending"}
	require.NoError(t, repo.Create(ctx, imported))
	t.Cleanup(func() { _ = repo.Delete(ctx, imported.ID) })

	got, err := repo.List(ctx, ChargeFilter{Room: room, MonthLabel: "2024-01"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, imported.DueDate, got[0].DueDate)
}
