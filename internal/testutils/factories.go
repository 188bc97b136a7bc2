package testutils

import (
	"time"

	"crm-backend/internal/database/models"
	"crm-backend/internal/rbac"

	"github.com/google/uuid"
)

// DefaultTenant is the tenant test data lands in unless overridden
const DefaultTenant = "tenant-a"

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	return &models.User{
		ID:        uuid.New(),
		UserID:    "u-" + uuid.NewString()[:8],
		Email:     uuid.NewString()[:8] + "@test.com",
		FirstName: "Test",
		LastName:  "User",
		Role:      string(rbac.RoleSalesRep),
		TenantID:  DefaultTenant,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role rbac.Role) *models.User {
	user := f.Create()
	user.Role = string(role)
	return user
}

// WithTenant sets a custom tenant for the user
func (f *UserFactory) WithTenant(tenantID string) *models.User {
	user := f.Create()
	user.TenantID = tenantID
	return user
}

// ReportingTo creates a rep reporting to the given manager
func (f *UserFactory) ReportingTo(manager *models.User) *models.User {
	user := f.Create()
	user.TenantID = manager.TenantID
	user.ReportingTo = &manager.UserID
	return user
}

// ownedDefaults builds the common fields of a tenant-scoped record
func ownedDefaults(tenantID, owner string) models.OwnedModel {
	return models.OwnedModel{
		ID:        uuid.New(),
		TenantID:  tenantID,
		CreatedBy: owner,
		UpdatedBy: owner,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// LeadFactory provides methods to create test Lead data
type LeadFactory struct{}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates a test Lead owned by the given user
func (f *LeadFactory) Create(tenantID, owner string) *models.Lead {
	return &models.Lead{
		OwnedModel: ownedDefaults(tenantID, owner),
		LeadOwner:  owner,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada." + uuid.NewString()[:8] + "@test.com",
		Company:    "Analytical Engines Ltd",
		LeadSource: "referral",
		LeadStatus: models.LeadStatusNew,
	}
}

// Deleted creates a soft-deleted lead owned by the given user
func (f *LeadFactory) Deleted(tenantID, owner string) *models.Lead {
	lead := f.Create(tenantID, owner)
	lead.IsDeleted = true
	now := time.Now()
	lead.DeletedAt = &now
	lead.DeletedBy = owner
	return lead
}

// ContactFactory provides methods to create test Contact data
type ContactFactory struct{}

// NewContactFactory creates a new ContactFactory
func NewContactFactory() *ContactFactory {
	return &ContactFactory{}
}

// Create creates a test Contact owned by the given user
func (f *ContactFactory) Create(tenantID, owner string) *models.Contact {
	return &models.Contact{
		OwnedModel:   ownedDefaults(tenantID, owner),
		ContactOwner: owner,
		FirstName:    "Grace",
		LastName:     "Hopper",
		Email:        "grace." + uuid.NewString()[:8] + "@test.com",
		AccountName:  "Navy Systems",
	}
}

// DealFactory provides methods to create test Deal data
type DealFactory struct{}

// NewDealFactory creates a new DealFactory
func NewDealFactory() *DealFactory {
	return &DealFactory{}
}

// Create creates a test Deal owned by the given user
func (f *DealFactory) Create(tenantID, owner string) *models.Deal {
	return &models.Deal{
		OwnedModel:  ownedDefaults(tenantID, owner),
		DealOwner:   owner,
		DealName:    "Deal " + uuid.NewString()[:8],
		Stage:       models.DealStageQualification,
		Amount:      25000,
		Probability: 40,
	}
}

// ProductFactory provides methods to create test Product data
type ProductFactory struct{}

// NewProductFactory creates a new ProductFactory
func NewProductFactory() *ProductFactory {
	return &ProductFactory{}
}

// Create creates a test Product owned by the given user
func (f *ProductFactory) Create(tenantID, owner string) *models.Product {
	return &models.Product{
		OwnedModel:   ownedDefaults(tenantID, owner),
		ProductOwner: owner,
		ProductName:  "Widget " + uuid.NewString()[:8],
		ProductCode:  "W-" + uuid.NewString()[:8],
		Category:     "hardware",
		UnitPrice:    99.5,
	}
}

// QuoteFactory provides methods to create test Quote data
type QuoteFactory struct{}

// NewQuoteFactory creates a new QuoteFactory
func NewQuoteFactory() *QuoteFactory {
	return &QuoteFactory{}
}

// Create creates a test Quote owned by the given user
func (f *QuoteFactory) Create(tenantID, owner string) *models.Quote {
	return &models.Quote{
		OwnedModel: ownedDefaults(tenantID, owner),
		QuoteOwner: owner,
		Subject:    "Quote " + uuid.NewString()[:8],
		Stage:      models.QuoteStageDraft,
		Subtotal:   1000,
		Discount:   100,
		Tax:        90,
		GrandTotal: 990,
	}
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task assigned to the given user
func (f *TaskFactory) Create(tenantID, assignee string) *models.Task {
	return &models.Task{
		OwnedModel: ownedDefaults(tenantID, assignee),
		AssignedTo: assignee,
		Subject:    "Follow up " + uuid.NewString()[:8],
		Status:     models.TaskStatusOpen,
		Priority:   models.TaskPriorityNormal,
	}
}

// SubsidiaryFactory provides methods to create test Subsidiary data
type SubsidiaryFactory struct{}

// NewSubsidiaryFactory creates a new SubsidiaryFactory
func NewSubsidiaryFactory() *SubsidiaryFactory {
	return &SubsidiaryFactory{}
}

// Create creates a test Subsidiary created by the given user
func (f *SubsidiaryFactory) Create(tenantID, creator string) *models.Subsidiary {
	return &models.Subsidiary{
		OwnedModel: ownedDefaults(tenantID, creator),
		Name:       "Branch " + uuid.NewString()[:8],
		Email:      "branch@test.com",
		City:       "Berlin",
		Country:    "Germany",
	}
}

// DealerFactory provides methods to create test Dealer data
type DealerFactory struct{}

// NewDealerFactory creates a new DealerFactory
func NewDealerFactory() *DealerFactory {
	return &DealerFactory{}
}

// Create creates a test Dealer created by the given user
func (f *DealerFactory) Create(tenantID, creator string) *models.Dealer {
	return &models.Dealer{
		OwnedModel:     ownedDefaults(tenantID, creator),
		Name:           "Dealer " + uuid.NewString()[:8],
		Email:          "dealer@test.com",
		Territory:      "north",
		CommissionRate: 5,
	}
}
