package service

import (
	"errors"
	"fmt"
	"strings"

	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/logger"
	"crm-backend/internal/rbac"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedRecord is implemented by every CRM entity model served by the
// access engine.
type OwnedRecord interface {
	AccessView() rbac.RecordView
	SearchValues() []string
}

// OwnedStore is the tenant-scoped storage collaborator of the access
// engine. The filter passed to QueryByTenant is the compiled access
// predicate; the adapter renders it into its native query language.
type OwnedStore[T OwnedRecord] interface {
	Create(rec *T) error
	Save(rec *T) error
	QueryByTenant(tenantID string, filter rbac.Filter) ([]T, error)
	GetByID(id uuid.UUID) (*T, error)
	MarkDeleted(id uuid.UUID, by string) error
	Restore(id uuid.UUID, by string) error
	HardDelete(id uuid.UUID) error
}

// AccessEngine applies the role and ownership rules for one entity
// type. Every per-entity service is an instantiation of this engine
// with its owner column and resource name; the engine itself holds no
// per-request state.
//
// Failure semantics: storage errors propagate unchanged; directory
// errors never do (the compiler degrades them to self-only access).
// A record that does not exist and a record the user may not see are
// indistinguishable to callers: both come back nil, never an error.
type AccessEngine[T OwnedRecord] struct {
	resource    rbac.Resource
	entity      string
	ownerColumn string
	store       OwnedStore[T]
	policy      *rbac.Policy
	compiler    *rbac.Compiler
	log         *logger.Logger
}

// NewAccessEngine creates the RBAC service core for one entity type.
func NewAccessEngine[T OwnedRecord](resource rbac.Resource, entity, ownerColumn string, store OwnedStore[T], policy *rbac.Policy, compiler *rbac.Compiler) *AccessEngine[T] {
	return &AccessEngine[T]{
		resource:    resource,
		entity:      entity,
		ownerColumn: ownerColumn,
		store:       store,
		policy:      policy,
		compiler:    compiler,
		log:         logger.New().WithField("resource", string(resource)),
	}
}

// ListForUser returns every record the user may read. A role without
// the view capability gets an empty list, not an error.
func (e *AccessEngine[T]) ListForUser(user rbac.User, includeDeleted bool) ([]T, error) {
	if !e.policy.IsPermitted(user.Role, rbac.ActionView, e.resource) {
		return []T{}, nil
	}
	filter := e.compiler.Compile(user, e.ownerColumn, includeDeleted)
	recs, err := e.store.QueryByTenant(user.TenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", e.resource, err)
	}
	return recs, nil
}

// GetByIDForUser fetches one record and applies the access guard.
// Missing and inaccessible records both return nil.
func (e *AccessEngine[T]) GetByIDForUser(id uuid.UUID, user rbac.User) (*T, error) {
	if !e.policy.IsPermitted(user.Role, rbac.ActionView, e.resource) {
		return nil, nil
	}
	rec, err := e.store.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", e.entity, err)
	}
	if !e.compiler.CanAccess((*rec).AccessView(), user) {
		return nil, nil
	}
	return rec, nil
}

// ListByOwnerForUser returns the target owner's records, provided the
// requesting user may see that owner's records at all.
func (e *AccessEngine[T]) ListByOwnerForUser(ownerID string, user rbac.User) ([]T, error) {
	if !e.policy.IsPermitted(user.Role, rbac.ActionView, e.resource) {
		return []T{}, nil
	}
	if !e.compiler.CanAccessOwner(ownerID, user) {
		return []T{}, nil
	}
	filter := rbac.And{Clauses: []rbac.Filter{
		rbac.Eq{Field: rbac.FieldTenantID, Value: user.TenantID},
		rbac.Eq{Field: rbac.FieldIsDeleted, Value: false},
		rbac.Eq{Field: e.ownerColumn, Value: ownerID},
	}}
	recs, err := e.store.QueryByTenant(user.TenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s by owner: %w", e.resource, err)
	}
	return recs, nil
}

// SearchForUser fetches the user's full accessible set, then applies a
// case-insensitive substring match over the entity's text fields. The
// match is never pushed to storage, so results are bounded by whatever
// the ownership filter already returned.
func (e *AccessEngine[T]) SearchForUser(user rbac.User, term string) ([]T, error) {
	recs, err := e.ListForUser(user, false)
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return recs, nil
	}
	matched := make([]T, 0, len(recs))
	for _, rec := range recs {
		for _, value := range rec.SearchValues() {
			if strings.Contains(strings.ToLower(value), term) {
				matched = append(matched, rec)
				break
			}
		}
	}
	return matched, nil
}

// CreateForUser inserts a record after the capability check. Tenant and
// audit stamping is done by the per-entity service before calling.
func (e *AccessEngine[T]) CreateForUser(rec *T, user rbac.User) error {
	if !e.policy.IsPermitted(user.Role, rbac.ActionCreate, e.resource) {
		return apperrors.ErrPolicyDenied
	}
	return e.store.Create(rec)
}

// SaveForUser persists a mutated record after re-checking access.
func (e *AccessEngine[T]) SaveForUser(rec *T, user rbac.User) error {
	if !e.policy.IsPermitted(user.Role, rbac.ActionEdit, e.resource) {
		return apperrors.ErrPolicyDenied
	}
	if !e.compiler.CanAccess((*rec).AccessView(), user) {
		return apperrors.NewNotFoundError(e.entity)
	}
	return e.store.Save(rec)
}

// SoftDeleteForUser marks a record deleted. Denied access surfaces as
// not-found, matching the read paths; deleting an already-deleted record
// the user can reach is a state conflict, not absence.
func (e *AccessEngine[T]) SoftDeleteForUser(id uuid.UUID, user rbac.User) error {
	if !e.policy.IsPermitted(user.Role, rbac.ActionDelete, e.resource) {
		return apperrors.ErrPolicyDenied
	}
	rec, err := e.store.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFoundError(e.entity)
	}
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", e.entity, err)
	}
	view := (*rec).AccessView()
	if view.TenantID != user.TenantID || !e.compiler.CanAccessOwner(view.OwnerID, user) {
		return apperrors.NewNotFoundError(e.entity)
	}
	if view.Deleted {
		return apperrors.ErrRecordAlreadyDeleted
	}
	return e.store.MarkDeleted(id, user.UserID)
}

// RestoreForUser reverses a soft delete. This is the dedicated path for
// reaching deleted records; the regular guard refuses them.
func (e *AccessEngine[T]) RestoreForUser(id uuid.UUID, user rbac.User) error {
	if !e.policy.IsPermitted(user.Role, rbac.ActionEdit, e.resource) {
		return apperrors.ErrPolicyDenied
	}
	rec, err := e.store.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFoundError(e.entity)
	}
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", e.entity, err)
	}
	view := (*rec).AccessView()
	if view.TenantID != user.TenantID {
		return apperrors.NewNotFoundError(e.entity)
	}
	if !view.Deleted {
		return apperrors.ErrRecordNotDeleted
	}
	if !e.compiler.CanAccessOwner(view.OwnerID, user) {
		return apperrors.NewNotFoundError(e.entity)
	}
	return e.store.Restore(id, user.UserID)
}

// HardDeleteForUser physically removes a record. Admin only.
func (e *AccessEngine[T]) HardDeleteForUser(id uuid.UUID, user rbac.User) error {
	if rbac.NormalizeRole(string(user.Role)) != rbac.RoleAdmin {
		return apperrors.ErrHardDeleteDenied
	}
	rec, err := e.store.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFoundError(e.entity)
	}
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", e.entity, err)
	}
	if (*rec).AccessView().TenantID != user.TenantID {
		return apperrors.NewNotFoundError(e.entity)
	}
	return e.store.HardDelete(id)
}
