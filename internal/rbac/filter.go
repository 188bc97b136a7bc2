package rbac

// Filter is the storage-agnostic access predicate produced by the
// ownership compiler: a conjunction of equality and set-membership
// clauses. Storage adapters render it into their native query language;
// Matches evaluates it in memory against a record's attributes.
type Filter interface {
	isFilter()
}

// Attribute names shared by every owned entity table.
const (
	FieldTenantID  = "tenant_id"
	FieldIsDeleted = "is_deleted"
)

// DenyAllOwner is the sentinel owner value compiled for unrecognized
// roles. No real record carries it, so the resulting filter matches
// nothing; an unknown role must never compile to an unconstrained query.
const DenyAllOwner = "#no-matching-owner#"

// Eq requires an attribute to equal a value.
type Eq struct {
	Field string
	Value interface{}
}

// In requires an attribute to be a member of a value set. The set is
// used purely for membership testing; its order carries no meaning.
type In struct {
	Field  string
	Values []string
}

// And is the conjunction of its clauses.
type And struct {
	Clauses []Filter
}

func (Eq) isFilter()  {}
func (In) isFilter()  {}
func (And) isFilter() {}

// Matches evaluates a filter against a record's attribute map.
func Matches(f Filter, attrs map[string]interface{}) bool {
	switch f := f.(type) {
	case Eq:
		return attrs[f.Field] == f.Value
	case In:
		value, ok := attrs[f.Field].(string)
		if !ok {
			return false
		}
		for _, v := range f.Values {
			if v == value {
				return true
			}
		}
		return false
	case And:
		for _, clause := range f.Clauses {
			if !Matches(clause, attrs) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
