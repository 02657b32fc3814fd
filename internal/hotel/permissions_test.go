package hotel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionsForRole(t *testing.T) {
	t.Run("owner gets full reservation control", func(t *testing.T) {
		perms := PermissionsForRole(RoleOwner)

		assert.True(t, Allowed(perms, ResReservations, ActionDelete))
		assert.True(t, Allowed(perms, ResReservations, ActionCheckin))
		assert.True(t, Allowed(perms, ResAuditLogs, ActionRead))
	})

	t.Run("staff can check guests in but not cancel", func(t *testing.T) {
		perms := PermissionsForRole(RoleStaff)

		assert.True(t, Allowed(perms, ResReservations, ActionCheckin))
		assert.False(t, Allowed(perms, ResReservations, ActionCancel))
		assert.False(t, Allowed(perms, ResMember, ActionRead))
	})

	t.Run("viewer is read only", func(t *testing.T) {
		perms := PermissionsForRole(RoleViewer)

		for resource, actions := range perms {
			assert.Equal(t, []string{ActionRead}, actions, resource)
		}
	})

	t.Run("unknown role grants nothing", func(t *testing.T) {
		perms := PermissionsForRole("intruder")

		assert.Empty(t, perms)
		assert.False(t, Allowed(perms, ResOrders, ActionRead))
	})

	t.Run("result is a private copy", func(t *testing.T) {
		perms := PermissionsForRole(RoleViewer)
		perms[ResOrders] = append(perms[ResOrders], ActionDelete)

		assert.False(t, Allowed(PermissionsForRole(RoleViewer), ResOrders, ActionDelete))
	})
}

func TestAllowed(t *testing.T) {
	assert.False(t, Allowed(nil, ResOrders, ActionRead))

	perms := PermissionMap{ResOrders: {ActionRead, ActionCreate}}
	assert.True(t, Allowed(perms, ResOrders, ActionCreate))
	assert.False(t, Allowed(perms, ResOrders, ActionDelete))
	assert.False(t, Allowed(perms, ResGuests, ActionRead))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleOwner))
	assert.True(t, ValidRole(RoleViewer))
	assert.False(t, ValidRole("superuser"))
	assert.False(t, ValidRole(""))
}
