package repository

import (
	"crm-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user directory operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByUserID(userID string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	ListByTenant(tenantID string, includeDeleted bool) ([]models.User, error)
	FindReports(managerID, tenantID string) ([]string, error)
	Update(user *models.User) error
	MarkDeleted(userID string) error
}
