package service

import (
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/rbac"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// LeadService provides lead business logic on top of the access engine
type LeadService struct {
	*AccessEngine[models.Lead]
	validator *validator.Validate
}

// Ensure LeadService implements LeadServiceInterface
var _ LeadServiceInterface = (*LeadService)(nil)

// NewLeadService creates a new LeadService
func NewLeadService(store OwnedStore[models.Lead], policy *rbac.Policy, compiler *rbac.Compiler, validator *validator.Validate) *LeadService {
	return &LeadService{
		AccessEngine: NewAccessEngine(rbac.ResourceLeads, "lead", models.LeadOwnerColumn, store, policy, compiler),
		validator:    validator,
	}
}

// CreateLeadRequest represents the request to create a lead
type CreateLeadRequest struct {
	LeadOwner     string  `json:"lead_owner" validate:"max=40"`
	Salutation    string  `json:"salutation" validate:"max=20"`
	FirstName     string  `json:"first_name" validate:"max=100"`
	LastName      string  `json:"last_name" validate:"required,max=100"`
	Email         string  `json:"email" validate:"omitempty,email,max=255"`
	Phone         string  `json:"phone" validate:"max=40"`
	Company       string  `json:"company" validate:"max=200"`
	LeadSource    string  `json:"lead_source" validate:"max=100"`
	Industry      string  `json:"industry" validate:"max=100"`
	AnnualRevenue float64 `json:"annual_revenue"`
}

// UpdateLeadRequest represents the request to update a lead
type UpdateLeadRequest struct {
	LeadOwner     *string  `json:"lead_owner,omitempty" validate:"omitempty,max=40"`
	Salutation    *string  `json:"salutation,omitempty" validate:"omitempty,max=20"`
	FirstName     *string  `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName      *string  `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email         *string  `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone         *string  `json:"phone,omitempty" validate:"omitempty,max=40"`
	Company       *string  `json:"company,omitempty" validate:"omitempty,max=200"`
	LeadSource    *string  `json:"lead_source,omitempty" validate:"omitempty,max=100"`
	LeadStatus    *string  `json:"lead_status,omitempty"`
	Industry      *string  `json:"industry,omitempty" validate:"omitempty,max=100"`
	AnnualRevenue *float64 `json:"annual_revenue,omitempty"`
}

// CreateLead creates a new lead owned by the creator unless explicitly
// assigned to someone else
func (s *LeadService) CreateLead(req *CreateLeadRequest, user rbac.User) (*models.Lead, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	owner := req.LeadOwner
	if owner == "" {
		owner = user.UserID
	}

	lead := &models.Lead{
		OwnedModel: models.OwnedModel{
			TenantID:  user.TenantID,
			CreatedBy: user.UserID,
			UpdatedBy: user.UserID,
		},
		LeadOwner:     owner,
		Salutation:    req.Salutation,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Company:       req.Company,
		LeadSource:    req.LeadSource,
		LeadStatus:    models.LeadStatusNew,
		Industry:      req.Industry,
		AnnualRevenue: req.AnnualRevenue,
	}

	if err := s.CreateForUser(lead, user); err != nil {
		return nil, err
	}
	return lead, nil
}

// UpdateLead updates an existing lead the user may access
func (s *LeadService) UpdateLead(id uuid.UUID, req *UpdateLeadRequest, user rbac.User) (*models.Lead, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	lead, err := s.GetByIDForUser(id, user)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperrors.ErrLeadNotFound
	}

	if req.LeadOwner != nil {
		lead.LeadOwner = *req.LeadOwner
	}
	if req.Salutation != nil {
		lead.Salutation = *req.Salutation
	}
	if req.FirstName != nil {
		lead.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		lead.LastName = *req.LastName
	}
	if req.Email != nil {
		lead.Email = *req.Email
	}
	if req.Phone != nil {
		lead.Phone = *req.Phone
	}
	if req.Company != nil {
		lead.Company = *req.Company
	}
	if req.LeadSource != nil {
		lead.LeadSource = *req.LeadSource
	}
	if req.LeadStatus != nil {
		lead.LeadStatus = models.LeadStatus(*req.LeadStatus)
	}
	if req.Industry != nil {
		lead.Industry = *req.Industry
	}
	if req.AnnualRevenue != nil {
		lead.AnnualRevenue = *req.AnnualRevenue
	}
	lead.UpdatedBy = user.UserID

	if err := s.SaveForUser(lead, user); err != nil {
		return nil, err
	}
	return lead, nil
}
