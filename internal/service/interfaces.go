package service

import (
	"crm-backend/internal/database/models"
	"crm-backend/internal/rbac"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LeadServiceInterface defines the interface for lead service
type LeadServiceInterface interface {
	ListForUser(user rbac.User, includeDeleted bool) ([]models.Lead, error)
	GetByIDForUser(id uuid.UUID, user rbac.User) (*models.Lead, error)
	ListByOwnerForUser(ownerID string, user rbac.User) ([]models.Lead, error)
	SearchForUser(user rbac.User, term string) ([]models.Lead, error)
	CreateLead(req *CreateLeadRequest, user rbac.User) (*models.Lead, error)
	UpdateLead(id uuid.UUID, req *UpdateLeadRequest, user rbac.User) (*models.Lead, error)
	SoftDeleteForUser(id uuid.UUID, user rbac.User) error
	RestoreForUser(id uuid.UUID, user rbac.User) error
	HardDeleteForUser(id uuid.UUID, user rbac.User) error
}

// ContactServiceInterface defines the interface for contact service
type ContactServiceInterface interface {
	ListForUser(user rbac.User, includeDeleted bool) ([]models.Contact, error)
	GetByIDForUser(id uuid.UUID, user rbac.User) (*models.Contact, error)
	ListByOwnerForUser(ownerID string, user rbac.User) ([]models.Contact, error)
	SearchForUser(user rbac.User, term string) ([]models.Contact, error)
	CreateContact(req *CreateContactRequest, user rbac.User) (*models.Contact, error)
	UpdateContact(id uuid.UUID, req *UpdateContactRequest, user rbac.User) (*models.Contact, error)
	SoftDeleteForUser(id uuid.UUID, user rbac.User) error
	RestoreForUser(id uuid.UUID, user rbac.User) error
	HardDeleteForUser(id uuid.UUID, user rbac.User) error
}

// DealServiceInterface defines the interface for deal service
type DealServiceInterface interface {
	ListForUser(user rbac.User, includeDeleted bool) ([]models.Deal, error)
	GetByIDForUser(id uuid.UUID, user rbac.User) (*models.Deal, error)
	ListByOwnerForUser(ownerID string, user rbac.User) ([]models.Deal, error)
	SearchForUser(user rbac.User, term string) ([]models.Deal, error)
	CreateDeal(req *CreateDealRequest, user rbac.User) (*models.Deal, error)
	UpdateDeal(id uuid.UUID, req *UpdateDealRequest, user rbac.User) (*models.Deal, error)
	SoftDeleteForUser(id uuid.UUID, user rbac.User) error
	RestoreForUser(id uuid.UUID, user rbac.User) error
	HardDeleteForUser(id uuid.UUID, user rbac.User) error
}

// ProductServiceInterface defines the interface for product service
type ProductServiceInterface interface {
	ListForUser(user rbac.User, includeDeleted bool) ([]models.Product, error)
	GetByIDForUser(id uuid.UUID, user rbac.User) (*models.Product, error)
	ListByOwnerForUser(ownerID string, user rbac.User) ([]models.Product, error)
	SearchForUser(user rbac.User, term string) ([]models.Product, error)
	CreateProduct(req *CreateProductRequest, user rbac.User) (*models.Product, error)
	UpdateProduct(id uuid.UUID, req *UpdateProductRequest, user rbac.User) (*models.Product, error)
	SoftDeleteForUser(id uuid.UUID, user rbac.User) error
	RestoreForUser(id uuid.UUID, user rbac.User) error
	HardDeleteForUser(id uuid.UUID, user rbac.User) error
}

// QuoteServiceInterface defines the interface for quote service
type QuoteServiceInterface interface {
	ListForUser(user rbac.User, includeDeleted bool) ([]models.Quote, error)
	GetByIDForUser(id uuid.UUID, user rbac.User) (*models.Quote, error)
	ListByOwnerForUser(ownerID string, user rbac.User) ([]models.Quote, error)
	SearchForUser(user rbac.User, term string) ([]models.Quote, error)
	CreateQuote(req *CreateQuoteRequest, user rbac.User) (*models.Quote, error)
	UpdateQuote(id uuid.UUID, req *UpdateQuoteRequest, user rbac.User) (*models.Quote, error)
	SoftDeleteForUser(id uuid.UUID, user rbac.User) error
	RestoreForUser(id uuid.UUID, user rbac.User) error
	HardDeleteForUser(id uuid.UUID, user rbac.User) error
}

// TaskServiceInterface defines the interface for task service
type TaskServiceInterface interface {
	ListForUser(user rbac.User, includeDeleted bool) ([]models.Task, error)
	GetByIDForUser(id uuid.UUID, user rbac.User) (*models.Task, error)
	ListByOwnerForUser(ownerID string, user rbac.User) ([]models.Task, error)
	SearchForUser(user rbac.User, term string) ([]models.Task, error)
	CreateTask(req *CreateTaskRequest, user rbac.User) (*models.Task, error)
	UpdateTask(id uuid.UUID, req *UpdateTaskRequest, user rbac.User) (*models.Task, error)
	SoftDeleteForUser(id uuid.UUID, user rbac.User) error
	RestoreForUser(id uuid.UUID, user rbac.User) error
	HardDeleteForUser(id uuid.UUID, user rbac.User) error
}

// SubsidiaryServiceInterface defines the interface for subsidiary service
type SubsidiaryServiceInterface interface {
	ListForUser(user rbac.User, includeDeleted bool) ([]models.Subsidiary, error)
	GetByIDForUser(id uuid.UUID, user rbac.User) (*models.Subsidiary, error)
	ListByOwnerForUser(ownerID string, user rbac.User) ([]models.Subsidiary, error)
	SearchForUser(user rbac.User, term string) ([]models.Subsidiary, error)
	CreateSubsidiary(req *CreateSubsidiaryRequest, user rbac.User) (*models.Subsidiary, error)
	UpdateSubsidiary(id uuid.UUID, req *UpdateSubsidiaryRequest, user rbac.User) (*models.Subsidiary, error)
	SoftDeleteForUser(id uuid.UUID, user rbac.User) error
	RestoreForUser(id uuid.UUID, user rbac.User) error
	HardDeleteForUser(id uuid.UUID, user rbac.User) error
}

// DealerServiceInterface defines the interface for dealer service
type DealerServiceInterface interface {
	ListForUser(user rbac.User, includeDeleted bool) ([]models.Dealer, error)
	GetByIDForUser(id uuid.UUID, user rbac.User) (*models.Dealer, error)
	ListByOwnerForUser(ownerID string, user rbac.User) ([]models.Dealer, error)
	SearchForUser(user rbac.User, term string) ([]models.Dealer, error)
	CreateDealer(req *CreateDealerRequest, user rbac.User) (*models.Dealer, error)
	UpdateDealer(id uuid.UUID, req *UpdateDealerRequest, user rbac.User) (*models.Dealer, error)
	SoftDeleteForUser(id uuid.UUID, user rbac.User) error
	RestoreForUser(id uuid.UUID, user rbac.User) error
	HardDeleteForUser(id uuid.UUID, user rbac.User) error
}

// UserServiceInterface defines the interface for user directory service
type UserServiceInterface interface {
	ListUsers(actor rbac.User) ([]models.User, error)
	GetUser(userID string, actor rbac.User) (*models.User, error)
	CreateUser(req *CreateUserRequest, actor rbac.User) (*models.User, error)
	UpdateUser(userID string, req *UpdateUserRequest, actor rbac.User) (*models.User, error)
	DeleteUser(userID string, actor rbac.User) error
}
