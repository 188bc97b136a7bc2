package service

import (
	"time"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/rbac"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DealService provides deal business logic on top of the access engine
type DealService struct {
	*AccessEngine[models.Deal]
	validator *validator.Validate
}

// Ensure DealService implements DealServiceInterface
var _ DealServiceInterface = (*DealService)(nil)

// NewDealService creates a new DealService
func NewDealService(store OwnedStore[models.Deal], policy *rbac.Policy, compiler *rbac.Compiler, validator *validator.Validate) *DealService {
	return &DealService{
		AccessEngine: NewAccessEngine(rbac.ResourceDeals, "deal", models.DealOwnerColumn, store, policy, compiler),
		validator:    validator,
	}
}

// CreateDealRequest represents the request to create a deal
type CreateDealRequest struct {
	DealOwner   string     `json:"deal_owner" validate:"max=40"`
	DealName    string     `json:"deal_name" validate:"required,max=200"`
	Amount      float64    `json:"amount"`
	Probability int        `json:"probability" validate:"min=0,max=100"`
	CloseDate   *time.Time `json:"close_date,omitempty"`
	LeadSource  string     `json:"lead_source" validate:"max=100"`
	ContactID   *uuid.UUID `json:"contact_id,omitempty"`
}

// UpdateDealRequest represents the request to update a deal
type UpdateDealRequest struct {
	DealOwner   *string    `json:"deal_owner,omitempty" validate:"omitempty,max=40"`
	DealName    *string    `json:"deal_name,omitempty" validate:"omitempty,max=200"`
	Stage       *string    `json:"stage,omitempty"`
	Amount      *float64   `json:"amount,omitempty"`
	Probability *int       `json:"probability,omitempty" validate:"omitempty,min=0,max=100"`
	CloseDate   *time.Time `json:"close_date,omitempty"`
	LeadSource  *string    `json:"lead_source,omitempty" validate:"omitempty,max=100"`
	ContactID   *uuid.UUID `json:"contact_id,omitempty"`
}

// CreateDeal creates a new deal owned by the creator unless explicitly
// assigned to someone else
func (s *DealService) CreateDeal(req *CreateDealRequest, user rbac.User) (*models.Deal, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	owner := req.DealOwner
	if owner == "" {
		owner = user.UserID
	}

	deal := &models.Deal{
		OwnedModel: models.OwnedModel{
			TenantID:  user.TenantID,
			CreatedBy: user.UserID,
			UpdatedBy: user.UserID,
		},
		DealOwner:   owner,
		DealName:    req.DealName,
		Stage:       models.DealStageQualification,
		Amount:      req.Amount,
		Probability: req.Probability,
		CloseDate:   req.CloseDate,
		LeadSource:  req.LeadSource,
		ContactID:   req.ContactID,
	}

	if err := s.CreateForUser(deal, user); err != nil {
		return nil, err
	}
	return deal, nil
}

// UpdateDeal updates an existing deal the user may access
func (s *DealService) UpdateDeal(id uuid.UUID, req *UpdateDealRequest, user rbac.User) (*models.Deal, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	deal, err := s.GetByIDForUser(id, user)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, apperrors.ErrDealNotFound
	}

	if req.DealOwner != nil {
		deal.DealOwner = *req.DealOwner
	}
	if req.DealName != nil {
		deal.DealName = *req.DealName
	}
	if req.Stage != nil {
		deal.Stage = models.DealStage(*req.Stage)
	}
	if req.Amount != nil {
		deal.Amount = *req.Amount
	}
	if req.Probability != nil {
		deal.Probability = *req.Probability
	}
	if req.CloseDate != nil {
		deal.CloseDate = req.CloseDate
	}
	if req.LeadSource != nil {
		deal.LeadSource = *req.LeadSource
	}
	if req.ContactID != nil {
		deal.ContactID = req.ContactID
	}
	deal.UpdatedBy = user.UserID

	if err := s.SaveForUser(deal, user); err != nil {
		return nil, err
	}
	return deal, nil
}
