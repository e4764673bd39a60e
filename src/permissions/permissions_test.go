package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminHasEveryPermission(t *testing.T) {
	for _, perm := range []Permission{
		InventoryRead, InboundCreate, InboundBatch, InboundRead,
		OutboundCreate, OutboundBox, OutboundRead,
		ReportsRead, UsersManage, StorageManage,
	} {
		assert.True(t, HasPermission(string(RoleAdmin), perm), "admin should hold %s", perm)
	}
}

func TestOperatorPermissions(t *testing.T) {
	role := string(RoleOperator)

	assert.True(t, HasPermission(role, InventoryRead))
	assert.True(t, HasPermission(role, InboundCreate))
	assert.True(t, HasPermission(role, OutboundCreate))
	assert.True(t, HasPermission(role, ReportsRead))

	assert.False(t, HasPermission(role, UsersManage))
	assert.False(t, HasPermission(role, StorageManage))
	assert.False(t, HasPermission(role, InboundBatch))
}

func TestViewerIsReadOnly(t *testing.T) {
	role := string(RoleViewer)

	assert.True(t, HasPermission(role, InventoryRead))
	assert.True(t, HasPermission(role, InboundRead))
	assert.True(t, HasPermission(role, OutboundRead))
	assert.True(t, HasPermission(role, ReportsRead))

	assert.False(t, HasPermission(role, InboundCreate))
	assert.False(t, HasPermission(role, OutboundCreate))
	assert.False(t, HasPermission(role, UsersManage))
	assert.False(t, HasPermission(role, StorageManage))
}

func TestUnknownRoleGrantsNothing(t *testing.T) {
	assert.False(t, HasPermission("superuser", InventoryRead))
	assert.False(t, HasPermission("", InventoryRead))
	assert.Empty(t, UserPermissions("superuser"))
}

func TestHasAnyPermission(t *testing.T) {
	assert.True(t, HasAnyPermission(string(RoleViewer), UsersManage, InventoryRead))
	assert.False(t, HasAnyPermission(string(RoleViewer), UsersManage, StorageManage))
}
