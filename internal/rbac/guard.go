package rbac

// RecordView is the minimal projection of an already-fetched record
// that access decisions need.
type RecordView struct {
	TenantID string
	OwnerID  string
	Deleted  bool
}

// CanAccess decides whether the user may act on one concrete record.
// The tenant check runs first and unconditionally; soft-deleted records
// are refused here (restore goes through its own path). The role branch
// then mirrors Compile: for any record in the user's tenant, CanAccess
// agrees with evaluating the compiled filter against that record.
func (c *Compiler) CanAccess(rec RecordView, user User) bool {
	if rec.TenantID != user.TenantID {
		return false
	}
	if rec.Deleted {
		return false
	}
	return c.CanAccessOwner(rec.OwnerID, user)
}

// CanAccessOwner decides whether the user may see records held by the
// given owner: admins may for any owner, managers for themselves and
// their direct reports, reps only for themselves.
func (c *Compiler) CanAccessOwner(ownerID string, user User) bool {
	switch NormalizeRole(string(user.Role)) {
	case RoleAdmin:
		return true
	case RoleSalesManager:
		if ownerID == user.UserID {
			return true
		}
		for _, owner := range c.accessibleOwners(user) {
			if owner == ownerID {
				return true
			}
		}
		return false
	case RoleSalesRep:
		return ownerID == user.UserID
	default:
		return false
	}
}
