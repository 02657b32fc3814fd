package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowsNilMap(t *testing.T) {
	var m PermissionMap

	assert.False(t, m.Allows("orders", "read"))
}

func TestAllowsMembership(t *testing.T) {
	m := PermissionMap{"orders": {"read", "create"}}

	assert.True(t, m.Allows("orders", "create"))
	assert.False(t, m.Allows("orders", "delete"))
	assert.False(t, m.Allows("reservations", "read"))
}

func TestCloneIsIndependent(t *testing.T) {
	m := PermissionMap{"orders": {"read"}}
	clone := m.Clone()

	clone["orders"][0] = "delete"
	clone["guests"] = []string{"read"}

	assert.Equal(t, "read", m["orders"][0])
	assert.NotContains(t, m, "guests")
}

func TestCanWithoutSession(t *testing.T) {
	c, err := New(Config{})
	require.NoError(t, err)

	assert.False(t, c.Can("orders", "read"))
	assert.False(t, c.CanAny(Permission{"orders", "read"}, Permission{"guests", "read"}))
}

func TestCanAny(t *testing.T) {
	c, err := New(Config{})
	require.NoError(t, err)
	c.storeSession(&Session{Permissions: PermissionMap{"guests": {"read"}}})

	assert.True(t, c.CanAny(
		Permission{"orders", "read"},
		Permission{"guests", "read"},
	))
	assert.False(t, c.CanAny(
		Permission{"orders", "read"},
		Permission{"metrics", "read"},
	))
}
