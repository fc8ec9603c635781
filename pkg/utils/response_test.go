package utils

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apt-be-svc/pkg/apperror"
)

func TestErrorFromServiceUsesKindStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		want int
	}{
		{apperror.New(apperror.KindValidation, "bad"), http.StatusBadRequest},
		{apperror.New(apperror.KindPrecondition, "occupied"), http.StatusConflict},
		{apperror.New(apperror.KindNotFound, "missing"), http.StatusNotFound},
		{apperror.New(apperror.KindTransient, "db down"), http.StatusServiceUnavailable},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		ErrorFromService(c, "failed", tc.err)
		assert.Equal(t, tc.want, rec.Code, tc.err.Error())
	}
}

func TestErrorResponseCarriesMetadata(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	err := apperror.WithMetadata(apperror.KindPrecondition, "room not vacant", map[string]string{"room_id": "101"})
	ErrorFromService(c, "Failed to register tenant", err)

	var body APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "PRECONDITION_FAILED", body.Error.Code)
	assert.Equal(t, "101", body.Error.Metadata["room_id"])
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{1, 2}, Paginate(items, 1, 2))
	assert.Equal(t, []int{5}, Paginate(items, 3, 2))
	assert.Empty(t, Paginate(items, 4, 2))
}

func TestPaginateHugePageIsEmpty(t *testing.T) {
	items := []int{1, 2, 3}
	assert.Empty(t, Paginate(items, 922337203685477582, 10))
	assert.Empty(t, Paginate(items, math.MaxInt, 100))
	assert.Empty(t, Paginate([]int{}, 1, 10))
}

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=9223372036854775807&limit=500", nil)

	page, limit := GetPaginationParams(c)
	assert.Equal(t, math.MaxInt64, page)
	assert.Equal(t, 10, limit)
	assert.Empty(t, Paginate([]string{"a"}, page, limit))
}
