package service

import (
	"errors"
	"fmt"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/rbac"
	"crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// maxReportingDepth bounds the walk up the reporting chain when
// validating a new reporting_to value.
const maxReportingDepth = 10

// UserService manages the tenant user directory. All operations are
// admin-gated through the policy table.
type UserService struct {
	repo      repository.UserRepositoryInterface
	policy    *rbac.Policy
	validator *validator.Validate
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepositoryInterface, policy *rbac.Policy, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		policy:    policy,
		validator: validator,
	}
}

// CreateUserRequest represents the request to create a directory user
type CreateUserRequest struct {
	UserID      string  `json:"user_id" validate:"required,max=40"`
	Email       string  `json:"email" validate:"required,email,max=255"`
	FirstName   string  `json:"first_name" validate:"max=100"`
	LastName    string  `json:"last_name" validate:"max=100"`
	Role        string  `json:"role" validate:"required,oneof=ADMIN SALES_MANAGER SALES_REP admin manager rep"`
	ReportingTo *string `json:"reporting_to,omitempty" validate:"omitempty,max=40"`
}

// UpdateUserRequest represents the request to update a directory user
type UpdateUserRequest struct {
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Role        *string `json:"role,omitempty" validate:"omitempty,oneof=ADMIN SALES_MANAGER SALES_REP admin manager rep"`
	ReportingTo *string `json:"reporting_to,omitempty" validate:"omitempty,max=40"`
}

// ListUsers returns the directory of the actor's tenant
func (s *UserService) ListUsers(actor rbac.User) ([]models.User, error) {
	if !s.policy.IsPermitted(actor.Role, rbac.ActionView, rbac.ResourceUsers) {
		return nil, apperrors.ErrPolicyDenied
	}
	return s.repo.ListByTenant(actor.TenantID, false)
}

// GetUser returns one directory entry of the actor's tenant. Missing
// and cross-tenant users are both reported as not found.
func (s *UserService) GetUser(userID string, actor rbac.User) (*models.User, error) {
	if !s.policy.IsPermitted(actor.Role, rbac.ActionView, rbac.ResourceUsers) {
		return nil, apperrors.ErrPolicyDenied
	}
	user, err := s.repo.GetByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.TenantID != actor.TenantID || user.IsDeleted {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// CreateUser adds a user to the actor's tenant directory
func (s *UserService) CreateUser(req *CreateUserRequest, actor rbac.User) (*models.User, error) {
	if !s.policy.IsPermitted(actor.Role, rbac.ActionCreate, rbac.ResourceUsers) {
		return nil, apperrors.ErrPolicyDenied
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	user := &models.User{
		UserID:      req.UserID,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        string(rbac.NormalizeRole(req.Role)),
		TenantID:    actor.TenantID,
		ReportingTo: req.ReportingTo,
	}

	if err := s.validateReportingChain(user); err != nil {
		return nil, err
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser mutates a directory entry in the actor's tenant
func (s *UserService) UpdateUser(userID string, req *UpdateUserRequest, actor rbac.User) (*models.User, error) {
	if !s.policy.IsPermitted(actor.Role, rbac.ActionEdit, rbac.ResourceUsers) {
		return nil, apperrors.ErrPolicyDenied
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.GetUser(userID, actor)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Role != nil {
		user.Role = string(rbac.NormalizeRole(*req.Role))
	}
	if req.ReportingTo != nil {
		if *req.ReportingTo == "" {
			user.ReportingTo = nil
		} else {
			user.ReportingTo = req.ReportingTo
		}
	}

	if err := s.validateReportingChain(user); err != nil {
		return nil, err
	}
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser soft-deletes a directory entry in the actor's tenant
func (s *UserService) DeleteUser(userID string, actor rbac.User) error {
	if !s.policy.IsPermitted(actor.Role, rbac.ActionDelete, rbac.ResourceUsers) {
		return apperrors.ErrPolicyDenied
	}
	if _, err := s.GetUser(userID, actor); err != nil {
		return err
	}
	return s.repo.MarkDeleted(userID)
}

// validateReportingChain rejects reporting_to values that leave the
// tenant or close a cycle. Cycles are refused at write time so the
// read-side subordinate resolution never has to bound itself.
func (s *UserService) validateReportingChain(user *models.User) error {
	if user.ReportingTo == nil {
		return nil
	}

	next := *user.ReportingTo
	for depth := 0; depth < maxReportingDepth; depth++ {
		if next == user.UserID {
			return apperrors.ErrReportingCycleDetected
		}
		manager, err := s.repo.GetByUserID(next)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidationError("reporting_to", "manager does not exist")
		}
		if err != nil {
			return fmt.Errorf("failed to resolve reporting chain: %w", err)
		}
		if manager.TenantID != user.TenantID {
			return apperrors.ErrReportingCrossTenant
		}
		if manager.IsDeleted {
			return apperrors.NewValidationError("reporting_to", "manager is deleted")
		}
		if manager.ReportingTo == nil {
			return nil
		}
		next = *manager.ReportingTo
	}
	return apperrors.ErrReportingCycleDetected
}
