package repository

import (
	"errors"
	"time"

	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/rbac"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the Postgres error code for duplicate keys.
const pgUniqueViolation = "23505"

// OwnedRepository handles database operations shared by every
// tenant-scoped CRM entity table.
type OwnedRepository[T any] struct {
	db     *gorm.DB
	entity string
}

// NewOwnedRepository creates a repository for one entity table. The
// entity name is only used for error messages.
func NewOwnedRepository[T any](db *gorm.DB, entity string) *OwnedRepository[T] {
	return &OwnedRepository[T]{db: db, entity: entity}
}

// Create inserts a new record
func (r *OwnedRepository[T]) Create(rec *T) error {
	if err := r.db.Create(rec).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.NewAlreadyExistsError(r.entity, "in the tenant")
		}
		return err
	}
	return nil
}

// Save persists all fields of an existing record
func (r *OwnedRepository[T]) Save(rec *T) error {
	return r.db.Save(rec).Error
}

// QueryByTenant returns records of one tenant matching the access
// filter. The tenant clause is pinned here as well, so a broken filter
// can never widen the partition.
func (r *OwnedRepository[T]) QueryByTenant(tenantID string, filter rbac.Filter) ([]T, error) {
	var recs []T
	q := r.db.Model(new(T)).Where("tenant_id = ?", tenantID)
	if filter != nil {
		q = applyFilter(q, filter)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// GetByID retrieves a record by primary key. The lookup deliberately
// crosses tenants and includes soft-deleted rows; callers apply the
// access guard on the result.
func (r *OwnedRepository[T]) GetByID(id uuid.UUID) (*T, error) {
	var rec T
	if err := r.db.First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// MarkDeleted soft-deletes a record
func (r *OwnedRepository[T]) MarkDeleted(id uuid.UUID, by string) error {
	now := time.Now()
	return r.db.Model(new(T)).Where("id = ?", id).Updates(map[string]interface{}{
		"is_deleted": true,
		"deleted_at": &now,
		"deleted_by": by,
	}).Error
}

// Restore reverses a soft delete
func (r *OwnedRepository[T]) Restore(id uuid.UUID, by string) error {
	return r.db.Model(new(T)).Where("id = ?", id).Updates(map[string]interface{}{
		"is_deleted": false,
		"deleted_at": nil,
		"deleted_by": "",
		"updated_by": by,
	}).Error
}

// HardDelete physically removes a record
func (r *OwnedRepository[T]) HardDelete(id uuid.UUID) error {
	return r.db.Delete(new(T), "id = ?", id).Error
}
