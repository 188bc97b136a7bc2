package service

import (
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/rbac"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SubsidiaryService provides subsidiary business logic. Subsidiaries are
// organizational entities: read-only below admin per the default policy.
type SubsidiaryService struct {
	*AccessEngine[models.Subsidiary]
	validator *validator.Validate
}

// Ensure SubsidiaryService implements SubsidiaryServiceInterface
var _ SubsidiaryServiceInterface = (*SubsidiaryService)(nil)

// NewSubsidiaryService creates a new SubsidiaryService
func NewSubsidiaryService(store OwnedStore[models.Subsidiary], policy *rbac.Policy, compiler *rbac.Compiler, validator *validator.Validate) *SubsidiaryService {
	return &SubsidiaryService{
		AccessEngine: NewAccessEngine(rbac.ResourceSubsidiaries, "subsidiary", models.SubsidiaryOwnerColumn, store, policy, compiler),
		validator:    validator,
	}
}

// CreateSubsidiaryRequest represents the request to create a subsidiary
type CreateSubsidiaryRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"omitempty,email,max=255"`
	Phone   string `json:"phone" validate:"max=40"`
	Website string `json:"website" validate:"max=255"`
	City    string `json:"city" validate:"max=100"`
	Country string `json:"country" validate:"max=100"`
	Address string `json:"address" validate:"max=300"`
}

// UpdateSubsidiaryRequest represents the request to update a subsidiary
type UpdateSubsidiaryRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Website *string `json:"website,omitempty" validate:"omitempty,max=255"`
	City    *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Country *string `json:"country,omitempty" validate:"omitempty,max=100"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=300"`
}

// CreateSubsidiary creates a new subsidiary
func (s *SubsidiaryService) CreateSubsidiary(req *CreateSubsidiaryRequest, user rbac.User) (*models.Subsidiary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	subsidiary := &models.Subsidiary{
		OwnedModel: models.OwnedModel{
			TenantID:  user.TenantID,
			CreatedBy: user.UserID,
			UpdatedBy: user.UserID,
		},
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Website: req.Website,
		City:    req.City,
		Country: req.Country,
		Address: req.Address,
	}

	if err := s.CreateForUser(subsidiary, user); err != nil {
		return nil, err
	}
	return subsidiary, nil
}

// UpdateSubsidiary updates an existing subsidiary the user may access
func (s *SubsidiaryService) UpdateSubsidiary(id uuid.UUID, req *UpdateSubsidiaryRequest, user rbac.User) (*models.Subsidiary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	subsidiary, err := s.GetByIDForUser(id, user)
	if err != nil {
		return nil, err
	}
	if subsidiary == nil {
		return nil, apperrors.ErrSubsidiaryNotFound
	}

	if req.Name != nil {
		subsidiary.Name = *req.Name
	}
	if req.Email != nil {
		subsidiary.Email = *req.Email
	}
	if req.Phone != nil {
		subsidiary.Phone = *req.Phone
	}
	if req.Website != nil {
		subsidiary.Website = *req.Website
	}
	if req.City != nil {
		subsidiary.City = *req.City
	}
	if req.Country != nil {
		subsidiary.Country = *req.Country
	}
	if req.Address != nil {
		subsidiary.Address = *req.Address
	}
	subsidiary.UpdatedBy = user.UserID

	if err := s.SaveForUser(subsidiary, user); err != nil {
		return nil, err
	}
	return subsidiary, nil
}
