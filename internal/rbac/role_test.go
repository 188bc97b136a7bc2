package rbac_test

import (
	"testing"

	"crm-backend/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want rbac.Role
	}{
		{"uppercase admin", "ADMIN", rbac.RoleAdmin},
		{"lowercase admin", "admin", rbac.RoleAdmin},
		{"uppercase manager", "SALES_MANAGER", rbac.RoleSalesManager},
		{"legacy manager", "manager", rbac.RoleSalesManager},
		{"mixed case manager", "Manager", rbac.RoleSalesManager},
		{"uppercase rep", "SALES_REP", rbac.RoleSalesRep},
		{"legacy rep", "rep", rbac.RoleSalesRep},
		{"surrounding whitespace", "  admin  ", rbac.RoleAdmin},
		{"empty", "", rbac.RoleUnknown},
		{"garbage", "superuser", rbac.RoleUnknown},
		{"near miss", "sales-rep", rbac.RoleUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rbac.NormalizeRole(tt.raw))
		})
	}
}
