package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"apt-be-svc/internal/billing"
	"apt-be-svc/internal/inbox"
	"apt-be-svc/internal/middleware"
	"apt-be-svc/internal/mocks"
	"apt-be-svc/internal/models"
	"apt-be-svc/internal/models/response"
	"apt-be-svc/internal/service"
	"apt-be-svc/pkg/apperror"
	"apt-be-svc/pkg/logger"
	"apt-be-svc/pkg/utils"
)

const testSecret = "handler-secret"

var (
	adminViewer  = inbox.Viewer{ID: "admin-1", Role: inbox.RoleAdmin}
	tenantViewer = inbox.Viewer{ID: "tenant-205", Role: inbox.RoleTenant, RoomID: "205"}
)

type fixture struct {
	router        *gin.Engine
	billing       *mocks.MockBillingService
	rooms         *mocks.MockRoomService
	notifications *mocks.MockNotificationService
	parcels       *mocks.MockParcelService
	dashboard     *mocks.MockDashboardService
	menus         *mocks.MockMenuService
}

func newFixture(t *testing.T) *fixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	f := &fixture{
		router:        gin.New(),
		billing:       mocks.NewMockBillingService(ctrl),
		rooms:         mocks.NewMockRoomService(ctrl),
		notifications: mocks.NewMockNotificationService(ctrl),
		parcels:       mocks.NewMockParcelService(ctrl),
		dashboard:     mocks.NewMockDashboardService(ctrl),
		menus:         mocks.NewMockMenuService(ctrl),
	}
	SetupRoutes(f.router, Services{
		Billing:      f.billing,
		Room:         f.rooms,
		Notification: f.notifications,
		Parcel:       f.parcels,
		Dashboard:    f.dashboard,
		Menu:         f.menus,
	}, nil, testSecret, logger.NewNopLogger())
	return f
}

// streamRecorder adds the CloseNotifier that gin's Stream expects
type streamRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *streamRecorder) CloseNotify() <-chan bool {
	return r.closed
}

func (f *fixture) do(t *testing.T, viewer *inbox.Viewer, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if viewer != nil {
		token, err := middleware.SignToken(testSecret, *viewer)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthCheckNeedsNoToken(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, nil, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Server is running")
}

func TestTenantGroupListIsPinnedToOwnRoom(t *testing.T) {
	f := newFixture(t)
	groups := []billing.Group{{ID: "205_2024-01", Room: "205", MonthLabel: "2024-01", Status: billing.StatusPending}}
	f.billing.EXPECT().
		ListGroups(gomock.Any(), billing.Filter{Room: "205", Status: billing.StatusOverdue}).
		Return(&service.GroupList{Groups: groups}, nil)

	w := f.do(t, &tenantViewer, http.MethodGet, "/api/v1/billings/groups?room=101&status=overdue", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body utils.PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.Pagination.Total)
}

func TestListGroupsRejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, &adminViewer, http.MethodGet, "/api/v1/billings/groups?status=late", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTenantCannotSeeOtherRoomsGroup(t *testing.T) {
	f := newFixture(t)
	f.billing.EXPECT().GetGroup(gomock.Any(), "101_2024-01").
		Return(&billing.Group{ID: "101_2024-01", Room: "101", MonthLabel: "2024-01"}, nil)

	w := f.do(t, &tenantViewer, http.MethodGet, "/api/v1/billings/groups/101_2024-01", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTenantSubmitsProofForOwnGroup(t *testing.T) {
	f := newFixture(t)
	group := &billing.Group{ID: "205_2024-01", Room: "205", MemberChargeIDs: []string{"c1", "c2"}}
	f.billing.EXPECT().GetGroup(gomock.Any(), "205_2024-01").Return(group, nil)
	f.billing.EXPECT().SubmitGroupProof(gomock.Any(), "205_2024-01", "slip-001.jpg").
		Return(&service.TransitionResult{Operation: billing.OpSubmitProof, Requested: 1, Changed: []string{"c2"}}, nil)

	w := f.do(t, &tenantViewer, http.MethodPost, "/api/v1/billings/groups/205_2024-01/submit-proof",
		GroupProofRequest{ProofRef: "slip-001.jpg"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTenantCannotSubmitProofForOtherRoomsGroup(t *testing.T) {
	f := newFixture(t)
	f.billing.EXPECT().GetGroup(gomock.Any(), "101_2024-01").
		Return(&billing.Group{ID: "101_2024-01", Room: "101"}, nil)

	w := f.do(t, &tenantViewer, http.MethodPost, "/api/v1/billings/groups/101_2024-01/submit-proof",
		GroupProofRequest{ProofRef: "slip-001.jpg"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTenantSubmitProofIsPinnedToOwnRoom(t *testing.T) {
	f := newFixture(t)
	f.billing.EXPECT().SubmitProof(gomock.Any(), "205", []string{"water-205"}, "slip-002.jpg").
		Return(&service.TransitionResult{Operation: billing.OpSubmitProof, Requested: 1, Changed: []string{"water-205"}}, nil)

	w := f.do(t, &tenantViewer, http.MethodPost, "/api/v1/billings/submit-proof",
		SubmitProofRequest{ChargeIDs: []string{"water-205"}, ProofRef: "slip-002.jpg"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminSubmitProofIsNotPinned(t *testing.T) {
	f := newFixture(t)
	f.billing.EXPECT().SubmitProof(gomock.Any(), "", []string{"rent-101"}, "slip-003.jpg").
		Return(&service.TransitionResult{Operation: billing.OpSubmitProof, Requested: 1, Changed: []string{"rent-101"}}, nil)

	w := f.do(t, &adminViewer, http.MethodPost, "/api/v1/billings/submit-proof",
		SubmitProofRequest{ChargeIDs: []string{"rent-101"}, ProofRef: "slip-003.jpg"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTenantCannotVerify(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, &tenantViewer, http.MethodPost, "/api/v1/billings/groups/205_2024-01/verify", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVerifyPartialFailureReportsFailedIDs(t *testing.T) {
	f := newFixture(t)
	failure := apperror.WithMetadata(apperror.KindTransient, "some charge writes failed",
		map[string]string{"failed_ids": "c2"})
	f.billing.EXPECT().Verify(gomock.Any(), "205_2024-01").
		Return(&service.TransitionResult{Requested: 2, Changed: []string{"c1"}}, failure)

	w := f.do(t, &adminViewer, http.MethodPost, "/api/v1/billings/groups/205_2024-01/verify", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	body := decode(t, w)
	require.NotNil(t, body.Error)
	assert.Equal(t, string(apperror.KindTransient), body.Error.Code)
	assert.Equal(t, "c2", body.Error.Metadata["failed_ids"])
}

func TestBulkMonthlyRentValidatesMonth(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, &adminViewer, http.MethodPost, "/api/v1/billings/bulk-monthly", map[string]int{"month": 13, "year": 2024})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.billing.EXPECT().CreateBulkMonthlyRent(gomock.Any(), 2, 2024).
		Return(&service.BulkBillingResponse{TotalRooms: 2, TotalBillings: 1, SuccessCount: 1}, nil)
	w = f.do(t, &adminViewer, http.MethodPost, "/api/v1/billings/bulk-monthly", BulkMonthlyRentRequest{Month: 2, Year: 2024})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateMonthlyBill(t *testing.T) {
	f := newFixture(t)
	f.billing.EXPECT().CreateMonthlyBill(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.MonthlyBillRequest) ([]*models.Charge, error) {
			assert.Equal(t, "205", req.Room)
			assert.True(t, decimal.NewFromInt(150).Equal(req.Water))
			return []*models.Charge{{ID: "c1"}, {ID: "c2"}}, nil
		})

	w := f.do(t, &adminViewer, http.MethodPost, "/api/v1/billings/monthly", map[string]interface{}{
		"room": "205", "due_date": "2024-01-05", "rent": 4500, "water": 150,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestExportSetsAttachmentHeader(t *testing.T) {
	f := newFixture(t)
	f.billing.EXPECT().ExportGroupsToExcel(gomock.Any(), billing.Filter{MonthLabel: "2024-01"}).
		Return([]byte("xlsx"), "bill_groups_export_20240115_100000.xlsx", nil)

	w := f.do(t, &adminViewer, http.MethodGet, "/api/v1/billings/export?month=2024-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "bill_groups_export_20240115_100000.xlsx")
	assert.Equal(t, "xlsx", w.Body.String())
}

func TestRoomTransitionConflict(t *testing.T) {
	f := newFixture(t)
	f.rooms.EXPECT().Register(gomock.Any(), "205", "Somchai").
		Return(nil, apperror.New(apperror.KindPrecondition, "room is not vacant"))

	w := f.do(t, &adminViewer, http.MethodPost, "/api/v1/rooms/205/register", RegisterTenantRequest{TenantName: "Somchai"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = f.do(t, &tenantViewer, http.MethodGet, "/api/v1/rooms", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMarkReadUsesCallerIdentity(t *testing.T) {
	f := newFixture(t)
	f.notifications.EXPECT().MarkRead(gomock.Any(), tenantViewer, "n1").Return(nil)
	f.notifications.EXPECT().MarkAllRead(gomock.Any(), tenantViewer).Return(3, nil)

	w := f.do(t, &tenantViewer, http.MethodPost, "/api/v1/notifications/n1/read", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, &tenantViewer, http.MethodPost, "/api/v1/notifications/read-all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"marked":3`)

	w = f.do(t, nil, http.MethodGet, "/api/v1/notifications", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTenantParcelListIsPinnedToOwnRoom(t *testing.T) {
	f := newFixture(t)
	f.parcels.EXPECT().List(gomock.Any(), "205", "Arrived").Return(nil, nil)

	w := f.do(t, &tenantViewer, http.MethodGet, "/api/v1/parcels?room_id=101&status=Arrived", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMenusFollowRole(t *testing.T) {
	f := newFixture(t)
	f.menus.EXPECT().GetMenusByRole(inbox.RoleTenant).
		Return([]response.MenuResponse{{Code: "tenant_home", Name: "Home", Path: "/tenant", Order: 1, IsActive: true}}, nil)

	w := f.do(t, &tenantViewer, http.MethodGet, "/api/v1/menus", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tenant_home")
}

func TestStreamGroupsWritesEvents(t *testing.T) {
	f := newFixture(t)
	feed := make(chan service.GroupList, 1)
	feed <- service.GroupList{Groups: []billing.Group{{ID: "205_2024-01", Room: "205"}}}
	close(feed)
	f.billing.EXPECT().WatchGroups(gomock.Any(), billing.Filter{Room: "205"}).Return((<-chan service.GroupList)(feed))

	token, err := middleware.SignToken(testSecret, tenantViewer)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/billings/groups/stream?token="+token, nil)
	w := &streamRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool, 1)}
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/event-stream"))
	assert.Contains(t, w.Body.String(), "event:groups")
	assert.Contains(t, w.Body.String(), "205_2024-01")
}
