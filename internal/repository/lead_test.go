//go:build integration
// +build integration

package repository

import (
	"testing"

	"crm-backend/internal/rbac"
	"crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LeadRepositoryTestSuite tests the owned-record repository against a
// real Postgres, using leads as the representative entity table
type LeadRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LeadRepository
	leads         *testutils.LeadFactory
}

// SetupSuite runs before all tests in the suite
func (suite *LeadRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewLeadRepository(suite.baseTestSuite.DB)
	suite.leads = testutils.NewLeadFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *LeadRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LeadRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *LeadRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests inserting a new lead
func (suite *LeadRepositoryTestSuite) TestCreate() {
	lead := suite.leads.Create(testutils.DefaultTenant, "r1")

	err := suite.repo.Create(lead)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, lead.ID)
	suite.NotZero(lead.CreatedAt)
	suite.NotZero(lead.UpdatedAt)
}

// TestQueryByTenantPinsTenant tests that the tenant clause always applies
func (suite *LeadRepositoryTestSuite) TestQueryByTenantPinsTenant() {
	suite.NoError(suite.repo.Create(suite.leads.Create(testutils.DefaultTenant, "r1")))
	suite.NoError(suite.repo.Create(suite.leads.Create("tenant-b", "r1")))

	// a nil filter must still only expose one tenant's rows
	leads, err := suite.repo.QueryByTenant(testutils.DefaultTenant, nil)

	suite.NoError(err)
	suite.Len(leads, 1)
	suite.Equal(testutils.DefaultTenant, leads[0].TenantID)
}

// TestQueryByTenantRendersFilter tests the SQL rendering of compiled filters
func (suite *LeadRepositoryTestSuite) TestQueryByTenantRendersFilter() {
	suite.NoError(suite.repo.Create(suite.leads.Create(testutils.DefaultTenant, "r1")))
	suite.NoError(suite.repo.Create(suite.leads.Create(testutils.DefaultTenant, "r2")))
	suite.NoError(suite.repo.Create(suite.leads.Create(testutils.DefaultTenant, "r3")))
	suite.NoError(suite.repo.Create(suite.leads.Deleted(testutils.DefaultTenant, "r1")))

	filter := rbac.And{Clauses: []rbac.Filter{
		rbac.Eq{Field: rbac.FieldIsDeleted, Value: false},
		rbac.In{Field: "lead_owner", Values: []string{"r1", "r2"}},
	}}
	leads, err := suite.repo.QueryByTenant(testutils.DefaultTenant, filter)

	suite.NoError(err)
	suite.Len(leads, 2)
	for _, lead := range leads {
		suite.Contains([]string{"r1", "r2"}, lead.LeadOwner)
		suite.False(lead.IsDeleted)
	}
}

// TestQueryByTenantDenyAll tests that the unknown-role sentinel matches no rows
func (suite *LeadRepositoryTestSuite) TestQueryByTenantDenyAll() {
	suite.NoError(suite.repo.Create(suite.leads.Create(testutils.DefaultTenant, "r1")))

	filter := rbac.Eq{Field: "lead_owner", Value: rbac.DenyAllOwner}
	leads, err := suite.repo.QueryByTenant(testutils.DefaultTenant, filter)

	suite.NoError(err)
	suite.Empty(leads)
}

// TestGetByIDCrossesTenants tests that the raw lookup ignores tenant and
// deletion state, leaving the decision to the access guard
func (suite *LeadRepositoryTestSuite) TestGetByIDCrossesTenants() {
	deleted := suite.leads.Deleted("tenant-b", "r1")
	suite.NoError(suite.repo.Create(deleted))

	found, err := suite.repo.GetByID(deleted.ID)

	suite.NoError(err)
	suite.Equal("tenant-b", found.TenantID)
	suite.True(found.IsDeleted)
}

// TestGetByIDNotFound tests looking up a missing lead
func (suite *LeadRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestMarkDeletedAndRestore tests the soft-delete round trip
func (suite *LeadRepositoryTestSuite) TestMarkDeletedAndRestore() {
	lead := suite.leads.Create(testutils.DefaultTenant, "r1")
	suite.NoError(suite.repo.Create(lead))

	suite.NoError(suite.repo.MarkDeleted(lead.ID, "m1"))

	found, err := suite.repo.GetByID(lead.ID)
	suite.NoError(err)
	suite.True(found.IsDeleted)
	suite.NotNil(found.DeletedAt)
	suite.Equal("m1", found.DeletedBy)

	suite.NoError(suite.repo.Restore(lead.ID, "m1"))

	found, err = suite.repo.GetByID(lead.ID)
	suite.NoError(err)
	suite.False(found.IsDeleted)
	suite.Nil(found.DeletedAt)
	suite.Empty(found.DeletedBy)
	suite.Equal("m1", found.UpdatedBy)
}

// TestHardDelete tests physical removal
func (suite *LeadRepositoryTestSuite) TestHardDelete() {
	lead := suite.leads.Create(testutils.DefaultTenant, "r1")
	suite.NoError(suite.repo.Create(lead))

	suite.NoError(suite.repo.HardDelete(lead.ID))

	_, err := suite.repo.GetByID(lead.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestSave tests updating an existing lead
func (suite *LeadRepositoryTestSuite) TestSave() {
	lead := suite.leads.Create(testutils.DefaultTenant, "r1")
	suite.NoError(suite.repo.Create(lead))

	lead.Company = "Engine Works"
	suite.NoError(suite.repo.Save(lead))

	found, err := suite.repo.GetByID(lead.ID)
	suite.NoError(err)
	suite.Equal("Engine Works", found.Company)
}

// TestLeadRepositoryTestSuite runs the test suite
func TestLeadRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeadRepositoryTestSuite))
}
