package repository

import (
	"errors"
	"time"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// UserRepository handles database operations for the tenant user directory
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrUserExists
		}
		return err
	}
	return nil
}

// GetByUserID retrieves a user by their stable string identity
func (r *UserRepository) GetByUserID(userID string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ? AND is_deleted = false", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListByTenant retrieves all users of one tenant
func (r *UserRepository) ListByTenant(tenantID string, includeDeleted bool) ([]models.User, error) {
	var users []models.User
	q := r.db.Where("tenant_id = ?", tenantID)
	if !includeDeleted {
		q = q.Where("is_deleted = false")
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindReports returns the user IDs directly reporting to a manager:
// same tenant, individual-contributor role, not deleted. This is the
// directory lookup the ownership compiler consumes.
func (r *UserRepository) FindReports(managerID, tenantID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.User{}).
		Where("reporting_to = ? AND tenant_id = ? AND is_deleted = false", managerID, tenantID).
		Where("UPPER(role) IN ?", []string{"SALES_REP", "REP"}).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// MarkDeleted soft-deletes a user from the directory
func (r *UserRepository) MarkDeleted(userID string) error {
	now := time.Now()
	return r.db.Model(&models.User{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"is_deleted": true,
		"deleted_at": &now,
	}).Error
}
