package rbac_test

import (
	"testing"

	"crm-backend/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestMatchesEq(t *testing.T) {
	f := rbac.Eq{Field: "tenant_id", Value: "t1"}

	assert.True(t, rbac.Matches(f, map[string]interface{}{"tenant_id": "t1"}))
	assert.False(t, rbac.Matches(f, map[string]interface{}{"tenant_id": "t2"}))
	assert.False(t, rbac.Matches(f, map[string]interface{}{}))
}

func TestMatchesIn(t *testing.T) {
	f := rbac.In{Field: "lead_owner", Values: []string{"m1", "r1", "r2"}}

	assert.True(t, rbac.Matches(f, map[string]interface{}{"lead_owner": "r2"}))
	assert.False(t, rbac.Matches(f, map[string]interface{}{"lead_owner": "r3"}))
	assert.False(t, rbac.Matches(f, map[string]interface{}{"lead_owner": 42}))
}

func TestMatchesAnd(t *testing.T) {
	f := rbac.And{Clauses: []rbac.Filter{
		rbac.Eq{Field: "tenant_id", Value: "t1"},
		rbac.Eq{Field: "is_deleted", Value: false},
		rbac.In{Field: "lead_owner", Values: []string{"r1"}},
	}}

	assert.True(t, rbac.Matches(f, map[string]interface{}{
		"tenant_id":  "t1",
		"is_deleted": false,
		"lead_owner": "r1",
	}))
	assert.False(t, rbac.Matches(f, map[string]interface{}{
		"tenant_id":  "t1",
		"is_deleted": true,
		"lead_owner": "r1",
	}))
	assert.False(t, rbac.Matches(f, map[string]interface{}{
		"tenant_id":  "t2",
		"is_deleted": false,
		"lead_owner": "r1",
	}))
}

func TestMatchesEmptyAnd(t *testing.T) {
	// The empty conjunction is vacuously true
	assert.True(t, rbac.Matches(rbac.And{}, map[string]interface{}{"anything": "goes"}))
}

func TestDenyAllOwnerMatchesNothing(t *testing.T) {
	f := rbac.Eq{Field: "lead_owner", Value: rbac.DenyAllOwner}

	for _, owner := range []string{"r1", "m1", "", "admin"} {
		assert.False(t, rbac.Matches(f, map[string]interface{}{"lead_owner": owner}))
	}
}
