package rbac_test

import (
	"errors"
	"testing"

	"crm-backend/internal/rbac"

	"github.com/stretchr/testify/assert"
)

// fakeDirectory serves canned reporting lines keyed by manager id.
type fakeDirectory struct {
	reports map[string][]string
	err     error
}

func (d *fakeDirectory) FindReports(managerID, tenantID string) ([]string, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.reports[managerID], nil
}

func testCompiler() *rbac.Compiler {
	return rbac.NewCompiler(&fakeDirectory{
		reports: map[string][]string{
			"m1": {"r1", "r2"},
		},
	})
}

func admin() rbac.User {
	return rbac.User{UserID: "a1", TenantID: "t1", Role: rbac.RoleAdmin}
}

func manager() rbac.User {
	return rbac.User{UserID: "m1", TenantID: "t1", Role: rbac.RoleSalesManager}
}

func rep(id string) rbac.User {
	return rbac.User{UserID: id, TenantID: "t1", Role: rbac.RoleSalesRep}
}

func leadAttrs(tenant, owner string, deleted bool) map[string]interface{} {
	return map[string]interface{}{
		"tenant_id":  tenant,
		"is_deleted": deleted,
		"lead_owner": owner,
	}
}

func TestCompileAdminSeesWholeTenant(t *testing.T) {
	c := testCompiler()
	f := c.Compile(admin(), "lead_owner", false)

	assert.True(t, rbac.Matches(f, leadAttrs("t1", "r1", false)))
	assert.True(t, rbac.Matches(f, leadAttrs("t1", "someone-else", false)))
	assert.False(t, rbac.Matches(f, leadAttrs("t2", "r1", false)), "other tenants stay invisible")
	assert.False(t, rbac.Matches(f, leadAttrs("t1", "r1", true)), "deleted records stay hidden")
}

func TestCompileRepSeesOwnRecordsOnly(t *testing.T) {
	c := testCompiler()
	f := c.Compile(rep("r1"), "lead_owner", false)

	assert.True(t, rbac.Matches(f, leadAttrs("t1", "r1", false)))
	assert.False(t, rbac.Matches(f, leadAttrs("t1", "r2", false)))
	assert.False(t, rbac.Matches(f, leadAttrs("t1", "m1", false)))
	assert.False(t, rbac.Matches(f, leadAttrs("t2", "r1", false)))
}

func TestCompileManagerSeesSelfAndReports(t *testing.T) {
	c := testCompiler()
	f := c.Compile(manager(), "lead_owner", false)

	assert.True(t, rbac.Matches(f, leadAttrs("t1", "m1", false)))
	assert.True(t, rbac.Matches(f, leadAttrs("t1", "r1", false)))
	assert.True(t, rbac.Matches(f, leadAttrs("t1", "r2", false)))
	assert.False(t, rbac.Matches(f, leadAttrs("t1", "r3", false)), "not a direct report")
	assert.False(t, rbac.Matches(f, leadAttrs("t2", "r1", false)))
}

func TestCompileManagerWithoutReports(t *testing.T) {
	c := rbac.NewCompiler(&fakeDirectory{reports: map[string][]string{}})
	f := c.Compile(manager(), "lead_owner", false)

	assert.True(t, rbac.Matches(f, leadAttrs("t1", "m1", false)))
	assert.False(t, rbac.Matches(f, leadAttrs("t1", "r1", false)))
}

func TestCompileDirectoryFailureDegradesToSelfOnly(t *testing.T) {
	c := rbac.NewCompiler(&fakeDirectory{err: errors.New("directory unavailable")})
	f := c.Compile(manager(), "lead_owner", false)

	assert.True(t, rbac.Matches(f, leadAttrs("t1", "m1", false)))
	assert.False(t, rbac.Matches(f, leadAttrs("t1", "r1", false)),
		"a failed lookup must restrict, never widen")
}

func TestCompileUnknownRoleMatchesNothing(t *testing.T) {
	c := testCompiler()
	f := c.Compile(rbac.User{UserID: "x1", TenantID: "t1", Role: "superuser"}, "lead_owner", false)

	assert.False(t, rbac.Matches(f, leadAttrs("t1", "x1", false)))
	assert.False(t, rbac.Matches(f, leadAttrs("t1", "r1", false)))
}

func TestCompileIncludeDeleted(t *testing.T) {
	c := testCompiler()
	f := c.Compile(admin(), "lead_owner", true)

	assert.True(t, rbac.Matches(f, leadAttrs("t1", "r1", true)))
	assert.True(t, rbac.Matches(f, leadAttrs("t1", "r1", false)))
	assert.False(t, rbac.Matches(f, leadAttrs("t2", "r1", true)))
}

func TestCanAccess(t *testing.T) {
	c := testCompiler()
	active := func(tenant, owner string) rbac.RecordView {
		return rbac.RecordView{TenantID: tenant, OwnerID: owner}
	}

	// tenant boundary comes first, even for admins
	assert.False(t, c.CanAccess(active("t2", "a1"), admin()))

	// soft-deleted records are refused on the direct path
	assert.False(t, c.CanAccess(rbac.RecordView{TenantID: "t1", OwnerID: "a1", Deleted: true}, admin()))

	assert.True(t, c.CanAccess(active("t1", "anyone"), admin()))
	assert.True(t, c.CanAccess(active("t1", "r1"), manager()))
	assert.False(t, c.CanAccess(active("t1", "r3"), manager()))
	assert.True(t, c.CanAccess(active("t1", "r1"), rep("r1")))
	assert.False(t, c.CanAccess(active("t1", "r2"), rep("r1")))
}

func TestCanAccessOwner(t *testing.T) {
	c := testCompiler()

	assert.True(t, c.CanAccessOwner("whoever", admin()))
	assert.True(t, c.CanAccessOwner("m1", manager()))
	assert.True(t, c.CanAccessOwner("r2", manager()))
	assert.False(t, c.CanAccessOwner("r3", manager()))
	assert.True(t, c.CanAccessOwner("r1", rep("r1")))
	assert.False(t, c.CanAccessOwner("m1", rep("r1")))
	assert.False(t, c.CanAccessOwner("x1", rbac.User{UserID: "x1", TenantID: "t1", Role: "intern"}))
}

// For any active record in the user's tenant, the record-level decision
// must agree with evaluating the compiled filter against that record.
func TestGuardAgreesWithCompiledFilter(t *testing.T) {
	c := testCompiler()

	users := []rbac.User{
		admin(),
		manager(),
		rep("r1"),
		rep("r2"),
		{UserID: "t2rep", TenantID: "t2", Role: rbac.RoleSalesRep},
		{UserID: "x1", TenantID: "t1", Role: "unrecognized"},
	}
	records := []rbac.RecordView{
		{TenantID: "t1", OwnerID: "a1"},
		{TenantID: "t1", OwnerID: "m1"},
		{TenantID: "t1", OwnerID: "r1"},
		{TenantID: "t1", OwnerID: "r2"},
		{TenantID: "t1", OwnerID: "r3"},
		{TenantID: "t2", OwnerID: "t2rep"},
	}

	for _, user := range users {
		f := c.Compile(user, "lead_owner", false)
		for _, rec := range records {
			attrs := leadAttrs(rec.TenantID, rec.OwnerID, false)
			assert.Equal(t, rbac.Matches(f, attrs), c.CanAccess(rec, user),
				"user %s vs record owned by %s in %s", user.UserID, rec.OwnerID, rec.TenantID)
		}
	}
}
