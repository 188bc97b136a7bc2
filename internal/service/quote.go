package service

import (
	"time"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/rbac"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// QuoteService provides quote business logic on top of the access engine
type QuoteService struct {
	*AccessEngine[models.Quote]
	validator *validator.Validate
}

// Ensure QuoteService implements QuoteServiceInterface
var _ QuoteServiceInterface = (*QuoteService)(nil)

// NewQuoteService creates a new QuoteService
func NewQuoteService(store OwnedStore[models.Quote], policy *rbac.Policy, compiler *rbac.Compiler, validator *validator.Validate) *QuoteService {
	return &QuoteService{
		AccessEngine: NewAccessEngine(rbac.ResourceQuotes, "quote", models.QuoteOwnerColumn, store, policy, compiler),
		validator:    validator,
	}
}

// CreateQuoteRequest represents the request to create a quote
type CreateQuoteRequest struct {
	QuoteOwner string     `json:"quote_owner" validate:"max=40"`
	Subject    string     `json:"subject" validate:"required,max=200"`
	DealID     *uuid.UUID `json:"deal_id,omitempty"`
	ContactID  *uuid.UUID `json:"contact_id,omitempty"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
	Subtotal   float64    `json:"subtotal" validate:"min=0"`
	Discount   float64    `json:"discount" validate:"min=0"`
	Tax        float64    `json:"tax" validate:"min=0"`
}

// UpdateQuoteRequest represents the request to update a quote
type UpdateQuoteRequest struct {
	QuoteOwner *string    `json:"quote_owner,omitempty" validate:"omitempty,max=40"`
	Subject    *string    `json:"subject,omitempty" validate:"omitempty,max=200"`
	Stage      *string    `json:"stage,omitempty"`
	DealID     *uuid.UUID `json:"deal_id,omitempty"`
	ContactID  *uuid.UUID `json:"contact_id,omitempty"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
	Subtotal   *float64   `json:"subtotal,omitempty" validate:"omitempty,min=0"`
	Discount   *float64   `json:"discount,omitempty" validate:"omitempty,min=0"`
	Tax        *float64   `json:"tax,omitempty" validate:"omitempty,min=0"`
}

// CreateQuote creates a new quote owned by the creator unless explicitly
// assigned to someone else
func (s *QuoteService) CreateQuote(req *CreateQuoteRequest, user rbac.User) (*models.Quote, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	owner := req.QuoteOwner
	if owner == "" {
		owner = user.UserID
	}

	quote := &models.Quote{
		OwnedModel: models.OwnedModel{
			TenantID:  user.TenantID,
			CreatedBy: user.UserID,
			UpdatedBy: user.UserID,
		},
		QuoteOwner: owner,
		Subject:    req.Subject,
		Stage:      models.QuoteStageDraft,
		DealID:     req.DealID,
		ContactID:  req.ContactID,
		ValidUntil: req.ValidUntil,
		Subtotal:   req.Subtotal,
		Discount:   req.Discount,
		Tax:        req.Tax,
		GrandTotal: req.Subtotal - req.Discount + req.Tax,
	}

	if err := s.CreateForUser(quote, user); err != nil {
		return nil, err
	}
	return quote, nil
}

// UpdateQuote updates an existing quote the user may access
func (s *QuoteService) UpdateQuote(id uuid.UUID, req *UpdateQuoteRequest, user rbac.User) (*models.Quote, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	quote, err := s.GetByIDForUser(id, user)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperrors.ErrQuoteNotFound
	}

	if req.QuoteOwner != nil {
		quote.QuoteOwner = *req.QuoteOwner
	}
	if req.Subject != nil {
		quote.Subject = *req.Subject
	}
	if req.Stage != nil {
		quote.Stage = models.QuoteStage(*req.Stage)
	}
	if req.DealID != nil {
		quote.DealID = req.DealID
	}
	if req.ContactID != nil {
		quote.ContactID = req.ContactID
	}
	if req.ValidUntil != nil {
		quote.ValidUntil = req.ValidUntil
	}
	if req.Subtotal != nil {
		quote.Subtotal = *req.Subtotal
	}
	if req.Discount != nil {
		quote.Discount = *req.Discount
	}
	if req.Tax != nil {
		quote.Tax = *req.Tax
	}
	quote.GrandTotal = quote.Subtotal - quote.Discount + quote.Tax
	quote.UpdatedBy = user.UserID

	if err := s.SaveForUser(quote, user); err != nil {
		return nil, err
	}
	return quote, nil
}
