package rbac

import (
	"sort"

	"crm-backend/internal/logger"
)

// Directory resolves the direct reports of a manager: same tenant,
// individual-contributor role, not deleted.
type Directory interface {
	FindReports(managerID, tenantID string) ([]string, error)
}

// User is the request-scoped identity access decisions are computed for.
type User struct {
	UserID   string
	TenantID string
	Email    string
	Role     Role
}

// Compiler turns a user's role, tenant and reporting-line position into
// access filters and record-level decisions. It is stateless per call;
// subordinates are resolved fresh on every evaluation.
type Compiler struct {
	directory Directory
	log       *logger.Logger
}

// NewCompiler creates a compiler backed by the given directory.
func NewCompiler(directory Directory) *Compiler {
	return &Compiler{
		directory: directory,
		log:       logger.New(),
	}
}

// Compile produces the declarative filter for everything the user may
// read in the given entity table. The tenant clause is always present
// and the soft-delete clause unless includeDeleted is set; the role
// branch then narrows the owner attribute. Unrecognized roles compile
// to a sentinel owner that matches no record.
func (c *Compiler) Compile(user User, ownerField string, includeDeleted bool) Filter {
	clauses := []Filter{Eq{Field: FieldTenantID, Value: user.TenantID}}
	if !includeDeleted {
		clauses = append(clauses, Eq{Field: FieldIsDeleted, Value: false})
	}

	switch NormalizeRole(string(user.Role)) {
	case RoleAdmin:
		// full tenant visibility
	case RoleSalesManager:
		owners := c.accessibleOwners(user)
		if len(owners) == 1 {
			clauses = append(clauses, Eq{Field: ownerField, Value: user.UserID})
		} else {
			clauses = append(clauses, In{Field: ownerField, Values: owners})
		}
	case RoleSalesRep:
		clauses = append(clauses, Eq{Field: ownerField, Value: user.UserID})
	default:
		clauses = append(clauses, Eq{Field: ownerField, Value: DenyAllOwner})
	}

	return And{Clauses: clauses}
}

// accessibleOwners is the manager's own id plus their direct reports.
// A failed directory lookup degrades to self-only access: the safe,
// restrictive default, never an error.
func (c *Compiler) accessibleOwners(user User) []string {
	reports, err := c.directory.FindReports(user.UserID, user.TenantID)
	if err != nil {
		c.log.WithField("manager", user.UserID).
			Warnf("directory lookup failed, restricting access to own records: %v", err)
		return []string{user.UserID}
	}

	seen := map[string]bool{user.UserID: true}
	owners := []string{user.UserID}
	for _, r := range reports {
		if !seen[r] {
			seen[r] = true
			owners = append(owners, r)
		}
	}
	sort.Strings(owners)
	return owners
}
