package permissions

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
)

type Permission string

const (
	InventoryRead  Permission = "inventory:read"
	InboundCreate  Permission = "inbound:create"
	InboundBatch   Permission = "inbound:batch"
	InboundRead    Permission = "inbound:read"
	OutboundCreate Permission = "outbound:create"
	OutboundBox    Permission = "outbound:box"
	OutboundRead   Permission = "outbound:read"
	ReportsRead    Permission = "reports:read"
	UsersManage    Permission = "users:manage"
	StorageManage  Permission = "storage:manage"
)

// rolePermissions is the static role -> permission table. Checks are pure
// lookups over this map; no dynamic inspection.
var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		InventoryRead,
		InboundCreate,
		InboundBatch,
		InboundRead,
		OutboundCreate,
		OutboundBox,
		OutboundRead,
		ReportsRead,
		UsersManage,
		StorageManage,
	},
	RoleOperator: {
		InventoryRead,
		InboundCreate,
		InboundRead,
		OutboundCreate,
		OutboundRead,
		ReportsRead,
	},
	RoleViewer: {
		InventoryRead,
		InboundRead,
		OutboundRead,
		ReportsRead,
	},
}

// RoleLabels maps roles to their display names.
var RoleLabels = map[Role]string{
	RoleAdmin:    "管理员",
	RoleOperator: "细胞操作员",
	RoleViewer:   "观察员",
}

// HasPermission reports whether the given role grants the permission.
// Unknown roles grant nothing.
func HasPermission(role string, permission Permission) bool {
	for _, p := range rolePermissions[Role(role)] {
		if p == permission {
			return true
		}
	}
	return false
}

// HasAnyPermission reports whether the role grants at least one of the
// given permissions.
func HasAnyPermission(role string, perms ...Permission) bool {
	for _, p := range perms {
		if HasPermission(role, p) {
			return true
		}
	}
	return false
}

// UserPermissions returns all permissions granted to the role.
func UserPermissions(role string) []Permission {
	perms := rolePermissions[Role(role)]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}
