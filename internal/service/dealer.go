package service

import (
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/rbac"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DealerService provides dealer business logic. Dealers are
// organizational entities: read-only below admin per the default policy.
type DealerService struct {
	*AccessEngine[models.Dealer]
	validator *validator.Validate
}

// Ensure DealerService implements DealerServiceInterface
var _ DealerServiceInterface = (*DealerService)(nil)

// NewDealerService creates a new DealerService
func NewDealerService(store OwnedStore[models.Dealer], policy *rbac.Policy, compiler *rbac.Compiler, validator *validator.Validate) *DealerService {
	return &DealerService{
		AccessEngine: NewAccessEngine(rbac.ResourceDealers, "dealer", models.DealerOwnerColumn, store, policy, compiler),
		validator:    validator,
	}
}

// CreateDealerRequest represents the request to create a dealer
type CreateDealerRequest struct {
	Name           string  `json:"name" validate:"required,max=200"`
	Email          string  `json:"email" validate:"omitempty,email,max=255"`
	Phone          string  `json:"phone" validate:"max=40"`
	Territory      string  `json:"territory" validate:"max=100"`
	CommissionRate float64 `json:"commission_rate" validate:"min=0,max=100"`
}

// UpdateDealerRequest represents the request to update a dealer
type UpdateDealerRequest struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Email          *string  `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone          *string  `json:"phone,omitempty" validate:"omitempty,max=40"`
	Territory      *string  `json:"territory,omitempty" validate:"omitempty,max=100"`
	CommissionRate *float64 `json:"commission_rate,omitempty" validate:"omitempty,min=0,max=100"`
}

// CreateDealer creates a new dealer
func (s *DealerService) CreateDealer(req *CreateDealerRequest, user rbac.User) (*models.Dealer, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	dealer := &models.Dealer{
		OwnedModel: models.OwnedModel{
			TenantID:  user.TenantID,
			CreatedBy: user.UserID,
			UpdatedBy: user.UserID,
		},
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Territory:      req.Territory,
		CommissionRate: req.CommissionRate,
	}

	if err := s.CreateForUser(dealer, user); err != nil {
		return nil, err
	}
	return dealer, nil
}

// UpdateDealer updates an existing dealer the user may access
func (s *DealerService) UpdateDealer(id uuid.UUID, req *UpdateDealerRequest, user rbac.User) (*models.Dealer, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	dealer, err := s.GetByIDForUser(id, user)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, apperrors.ErrDealerNotFound
	}

	if req.Name != nil {
		dealer.Name = *req.Name
	}
	if req.Email != nil {
		dealer.Email = *req.Email
	}
	if req.Phone != nil {
		dealer.Phone = *req.Phone
	}
	if req.Territory != nil {
		dealer.Territory = *req.Territory
	}
	if req.CommissionRate != nil {
		dealer.CommissionRate = *req.CommissionRate
	}
	dealer.UpdatedBy = user.UserID

	if err := s.SaveForUser(dealer, user); err != nil {
		return nil, err
	}
	return dealer, nil
}
