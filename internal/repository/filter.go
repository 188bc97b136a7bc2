package repository

import (
	"fmt"

	"crm-backend/internal/rbac"

	"gorm.io/gorm"
)

// applyFilter renders the storage-agnostic access filter into gorm WHERE
// clauses. Field names come from the entity descriptors, never from user
// input.
func applyFilter(q *gorm.DB, f rbac.Filter) *gorm.DB {
	switch f := f.(type) {
	case rbac.And:
		for _, clause := range f.Clauses {
			q = applyFilter(q, clause)
		}
	case rbac.Eq:
		q = q.Where(fmt.Sprintf("%s = ?", f.Field), f.Value)
	case rbac.In:
		q = q.Where(fmt.Sprintf("%s IN ?", f.Field), f.Values)
	}
	return q
}
