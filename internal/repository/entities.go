package repository

import (
	"crm-backend/internal/database/models"

	"gorm.io/gorm"
)

// Per-entity repositories are instantiations of the generic owned-record
// repository; each entity only differs by table and error label.

type LeadRepository = OwnedRepository[models.Lead]
type ContactRepository = OwnedRepository[models.Contact]
type DealRepository = OwnedRepository[models.Deal]
type ProductRepository = OwnedRepository[models.Product]
type QuoteRepository = OwnedRepository[models.Quote]
type TaskRepository = OwnedRepository[models.Task]
type SubsidiaryRepository = OwnedRepository[models.Subsidiary]
type DealerRepository = OwnedRepository[models.Dealer]

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return NewOwnedRepository[models.Lead](db, "lead")
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return NewOwnedRepository[models.Contact](db, "contact")
}

// NewDealRepository creates a new deal repository
func NewDealRepository(db *gorm.DB) *DealRepository {
	return NewOwnedRepository[models.Deal](db, "deal")
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return NewOwnedRepository[models.Product](db, "product")
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return NewOwnedRepository[models.Quote](db, "quote")
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return NewOwnedRepository[models.Task](db, "task")
}

// NewSubsidiaryRepository creates a new subsidiary repository
func NewSubsidiaryRepository(db *gorm.DB) *SubsidiaryRepository {
	return NewOwnedRepository[models.Subsidiary](db, "subsidiary")
}

// NewDealerRepository creates a new dealer repository
func NewDealerRepository(db *gorm.DB) *DealerRepository {
	return NewOwnedRepository[models.Dealer](db, "dealer")
}
