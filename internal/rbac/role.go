package rbac

import "strings"

// Role is the normalized three-tier access role of a CRM user.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleSalesManager Role = "SALES_MANAGER"
	RoleSalesRep     Role = "SALES_REP"
	// RoleUnknown is what every unrecognized role value normalizes to.
	// It carries no capabilities.
	RoleUnknown Role = "UNKNOWN"
)

// NormalizeRole maps a stored role value onto the three-tier hierarchy.
// Both the current uppercase spelling and the legacy lowercase one
// (admin/manager/rep) are accepted. Anything else yields RoleUnknown,
// which denies every capability.
func NormalizeRole(raw string) Role {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "ADMIN":
		return RoleAdmin
	case "SALES_MANAGER", "MANAGER":
		return RoleSalesManager
	case "SALES_REP", "REP":
		return RoleSalesRep
	default:
		return RoleUnknown
	}
}
