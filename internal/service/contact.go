package service

import (
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/rbac"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ContactService provides contact business logic on top of the access engine
type ContactService struct {
	*AccessEngine[models.Contact]
	validator *validator.Validate
}

// Ensure ContactService implements ContactServiceInterface
var _ ContactServiceInterface = (*ContactService)(nil)

// NewContactService creates a new ContactService
func NewContactService(store OwnedStore[models.Contact], policy *rbac.Policy, compiler *rbac.Compiler, validator *validator.Validate) *ContactService {
	return &ContactService{
		AccessEngine: NewAccessEngine(rbac.ResourceContacts, "contact", models.ContactOwnerColumn, store, policy, compiler),
		validator:    validator,
	}
}

// CreateContactRequest represents the request to create a contact
type CreateContactRequest struct {
	ContactOwner string `json:"contact_owner" validate:"max=40"`
	Salutation   string `json:"salutation" validate:"max=20"`
	FirstName    string `json:"first_name" validate:"max=100"`
	LastName     string `json:"last_name" validate:"required,max=100"`
	Email        string `json:"email" validate:"omitempty,email,max=255"`
	Phone        string `json:"phone" validate:"max=40"`
	Mobile       string `json:"mobile" validate:"max=40"`
	Title        string `json:"title" validate:"max=100"`
	Department   string `json:"department" validate:"max=100"`
	AccountName  string `json:"account_name" validate:"max=200"`
	MailingCity  string `json:"mailing_city" validate:"max=100"`
}

// UpdateContactRequest represents the request to update a contact
type UpdateContactRequest struct {
	ContactOwner *string `json:"contact_owner,omitempty" validate:"omitempty,max=40"`
	Salutation   *string `json:"salutation,omitempty" validate:"omitempty,max=20"`
	FirstName    *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName     *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Mobile       *string `json:"mobile,omitempty" validate:"omitempty,max=40"`
	Title        *string `json:"title,omitempty" validate:"omitempty,max=100"`
	Department   *string `json:"department,omitempty" validate:"omitempty,max=100"`
	AccountName  *string `json:"account_name,omitempty" validate:"omitempty,max=200"`
	MailingCity  *string `json:"mailing_city,omitempty" validate:"omitempty,max=100"`
}

// CreateContact creates a new contact owned by the creator unless
// explicitly assigned to someone else
func (s *ContactService) CreateContact(req *CreateContactRequest, user rbac.User) (*models.Contact, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	owner := req.ContactOwner
	if owner == "" {
		owner = user.UserID
	}

	contact := &models.Contact{
		OwnedModel: models.OwnedModel{
			TenantID:  user.TenantID,
			CreatedBy: user.UserID,
			UpdatedBy: user.UserID,
		},
		ContactOwner: owner,
		Salutation:   req.Salutation,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Mobile:       req.Mobile,
		Title:        req.Title,
		Department:   req.Department,
		AccountName:  req.AccountName,
		MailingCity:  req.MailingCity,
	}

	if err := s.CreateForUser(contact, user); err != nil {
		return nil, err
	}
	return contact, nil
}

// UpdateContact updates an existing contact the user may access
func (s *ContactService) UpdateContact(id uuid.UUID, req *UpdateContactRequest, user rbac.User) (*models.Contact, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	contact, err := s.GetByIDForUser(id, user)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, apperrors.ErrContactNotFound
	}

	if req.ContactOwner != nil {
		contact.ContactOwner = *req.ContactOwner
	}
	if req.Salutation != nil {
		contact.Salutation = *req.Salutation
	}
	if req.FirstName != nil {
		contact.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		contact.LastName = *req.LastName
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.Mobile != nil {
		contact.Mobile = *req.Mobile
	}
	if req.Title != nil {
		contact.Title = *req.Title
	}
	if req.Department != nil {
		contact.Department = *req.Department
	}
	if req.AccountName != nil {
		contact.AccountName = *req.AccountName
	}
	if req.MailingCity != nil {
		contact.MailingCity = *req.MailingCity
	}
	contact.UpdatedBy = user.UserID

	if err := s.SaveForUser(contact, user); err != nil {
		return nil, err
	}
	return contact, nil
}
