package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apt-be-svc/internal/inbox"
	"apt-be-svc/pkg/apperror"
)

func TestGetMenusByRole(t *testing.T) {
	svc := NewMenuService()

	adminMenus, err := svc.GetMenusByRole(inbox.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, adminMenus)
	assert.Equal(t, "dashboard", adminMenus[0].Code)

	tenantMenus, err := svc.GetMenusByRole(inbox.RoleTenant)
	require.NoError(t, err)
	assert.Equal(t, "tenant_home", tenantMenus[0].Code)
	for _, m := range tenantMenus {
		assert.NotEqual(t, "rooms", m.Code)
	}

	_, err = svc.GetMenusByRole("guest")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}
