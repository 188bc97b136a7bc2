package service_test

import (
	"errors"
	"testing"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/rbac"
	"crm-backend/internal/service"
	"crm-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// fakeLeadStore keeps leads in memory and evaluates compiled filters
// with the in-memory matcher, mirroring what the SQL adapter renders.
type fakeLeadStore struct {
	leads map[uuid.UUID]*models.Lead
	err   error
}

func newFakeLeadStore() *fakeLeadStore {
	return &fakeLeadStore{leads: map[uuid.UUID]*models.Lead{}}
}

func (s *fakeLeadStore) add(lead *models.Lead) *models.Lead {
	s.leads[lead.ID] = lead
	return lead
}

func (s *fakeLeadStore) attrs(lead *models.Lead) map[string]interface{} {
	return map[string]interface{}{
		"tenant_id":  lead.TenantID,
		"is_deleted": lead.IsDeleted,
		"lead_owner": lead.LeadOwner,
	}
}

func (s *fakeLeadStore) Create(rec *models.Lead) error {
	if s.err != nil {
		return s.err
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	s.leads[rec.ID] = rec
	return nil
}

func (s *fakeLeadStore) Save(rec *models.Lead) error {
	if s.err != nil {
		return s.err
	}
	s.leads[rec.ID] = rec
	return nil
}

func (s *fakeLeadStore) QueryByTenant(tenantID string, filter rbac.Filter) ([]models.Lead, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Lead
	for _, lead := range s.leads {
		if lead.TenantID != tenantID {
			continue
		}
		if rbac.Matches(filter, s.attrs(lead)) {
			out = append(out, *lead)
		}
	}
	return out, nil
}

func (s *fakeLeadStore) GetByID(id uuid.UUID) (*models.Lead, error) {
	if s.err != nil {
		return nil, s.err
	}
	lead, ok := s.leads[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *lead
	return &copied, nil
}

func (s *fakeLeadStore) MarkDeleted(id uuid.UUID, by string) error {
	lead, ok := s.leads[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	lead.IsDeleted = true
	lead.DeletedBy = by
	return nil
}

func (s *fakeLeadStore) Restore(id uuid.UUID, by string) error {
	lead, ok := s.leads[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	lead.IsDeleted = false
	lead.DeletedAt = nil
	lead.DeletedBy = ""
	lead.UpdatedBy = by
	return nil
}

func (s *fakeLeadStore) HardDelete(id uuid.UUID) error {
	delete(s.leads, id)
	return nil
}

// fakeDirectory serves canned reporting lines keyed by manager id.
type fakeDirectory struct {
	reports map[string][]string
	err     error
}

func (d *fakeDirectory) FindReports(managerID, tenantID string) ([]string, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.reports[managerID], nil
}

type AccessEngineTestSuite struct {
	suite.Suite
	store   *fakeLeadStore
	service *service.LeadService

	admin   rbac.User
	manager rbac.User
	rep1    rbac.User
	rep2    rbac.User
	outside rbac.User

	leadM    *models.Lead
	leadR1   *models.Lead
	leadR2   *models.Lead
	leadGone *models.Lead
	leadT2   *models.Lead
}

func (suite *AccessEngineTestSuite) SetupTest() {
	suite.store = newFakeLeadStore()
	compiler := rbac.NewCompiler(&fakeDirectory{reports: map[string][]string{
		"m1": {"r1", "r2"},
	}})
	suite.service = service.NewLeadService(suite.store, rbac.DefaultPolicy(), compiler, validator.New())

	suite.admin = rbac.User{UserID: "a1", TenantID: "t1", Role: rbac.RoleAdmin}
	suite.manager = rbac.User{UserID: "m1", TenantID: "t1", Role: rbac.RoleSalesManager}
	suite.rep1 = rbac.User{UserID: "r1", TenantID: "t1", Role: rbac.RoleSalesRep}
	suite.rep2 = rbac.User{UserID: "r2", TenantID: "t1", Role: rbac.RoleSalesRep}
	suite.outside = rbac.User{UserID: "o1", TenantID: "t2", Role: rbac.RoleSalesRep}

	leads := testutils.NewLeadFactory()
	suite.leadM = suite.store.add(leads.Create("t1", "m1"))
	suite.leadR1 = suite.store.add(leads.Create("t1", "r1"))
	suite.leadR2 = suite.store.add(leads.Create("t1", "r2"))
	suite.leadGone = suite.store.add(leads.Deleted("t1", "r1"))
	suite.leadT2 = suite.store.add(leads.Create("t2", "o1"))
}

func (suite *AccessEngineTestSuite) ownedBy(leads []models.Lead) map[string]int {
	owners := map[string]int{}
	for _, lead := range leads {
		owners[lead.LeadOwner]++
	}
	return owners
}

func (suite *AccessEngineTestSuite) TestListAdminSeesWholeTenant() {
	leads, err := suite.service.ListForUser(suite.admin, false)
	suite.NoError(err)
	suite.Len(leads, 3)
	suite.Equal(map[string]int{"m1": 1, "r1": 1, "r2": 1}, suite.ownedBy(leads))
}

func (suite *AccessEngineTestSuite) TestListManagerSeesSelfAndReports() {
	leads, err := suite.service.ListForUser(suite.manager, false)
	suite.NoError(err)
	suite.Len(leads, 3)
}

func (suite *AccessEngineTestSuite) TestListRepSeesOwnOnly() {
	leads, err := suite.service.ListForUser(suite.rep1, false)
	suite.NoError(err)
	suite.Len(leads, 1)
	suite.Equal("r1", leads[0].LeadOwner)
}

func (suite *AccessEngineTestSuite) TestListExcludesDeletedByDefault() {
	leads, err := suite.service.ListForUser(suite.admin, false)
	suite.NoError(err)
	for _, lead := range leads {
		suite.False(lead.IsDeleted)
	}

	withDeleted, err := suite.service.ListForUser(suite.admin, true)
	suite.NoError(err)
	suite.Len(withDeleted, 4)
}

func (suite *AccessEngineTestSuite) TestListUnknownRoleGetsEmptySet() {
	leads, err := suite.service.ListForUser(rbac.User{UserID: "x", TenantID: "t1", Role: "superuser"}, false)
	suite.NoError(err)
	suite.Empty(leads)
}

func (suite *AccessEngineTestSuite) TestGetOwnLead() {
	lead, err := suite.service.GetByIDForUser(suite.leadR1.ID, suite.rep1)
	suite.NoError(err)
	suite.NotNil(lead)
	suite.Equal(suite.leadR1.ID, lead.ID)
}

func (suite *AccessEngineTestSuite) TestGetInaccessibleLeadIsIndistinguishableFromMissing() {
	// another rep's record
	lead, err := suite.service.GetByIDForUser(suite.leadR2.ID, suite.rep1)
	suite.NoError(err)
	suite.Nil(lead)

	// another tenant's record, even for an admin
	lead, err = suite.service.GetByIDForUser(suite.leadT2.ID, suite.admin)
	suite.NoError(err)
	suite.Nil(lead)

	// a record that does not exist at all
	lead, err = suite.service.GetByIDForUser(uuid.New(), suite.rep1)
	suite.NoError(err)
	suite.Nil(lead)

	// a soft-deleted record on the direct path
	lead, err = suite.service.GetByIDForUser(suite.leadGone.ID, suite.rep1)
	suite.NoError(err)
	suite.Nil(lead)
}

func (suite *AccessEngineTestSuite) TestListByOwner() {
	// manager may list a report's records
	leads, err := suite.service.ListByOwnerForUser("r1", suite.manager)
	suite.NoError(err)
	suite.Len(leads, 1)
	suite.Equal("r1", leads[0].LeadOwner)

	// a rep may not list someone else's
	leads, err = suite.service.ListByOwnerForUser("r2", suite.rep1)
	suite.NoError(err)
	suite.Empty(leads)
}

func (suite *AccessEngineTestSuite) TestSearchStaysInsideAccessibleSet() {
	suite.leadR1.Company = "Acme Rockets"
	suite.leadR2.Company = "Acme Anvils"

	leads, err := suite.service.SearchForUser(suite.rep1, "acme")
	suite.NoError(err)
	suite.Len(leads, 1)
	suite.Equal("r1", leads[0].LeadOwner)

	leads, err = suite.service.SearchForUser(suite.manager, "ACME")
	suite.NoError(err)
	suite.Len(leads, 2)
}

func (suite *AccessEngineTestSuite) TestSearchEmptyTermReturnsAccessibleSet() {
	leads, err := suite.service.SearchForUser(suite.rep1, "   ")
	suite.NoError(err)
	suite.Len(leads, 1)
}

func (suite *AccessEngineTestSuite) TestCreateDefaultsOwnerToCreator() {
	lead, err := suite.service.CreateLead(&service.CreateLeadRequest{LastName: "Curie"}, suite.rep1)
	suite.NoError(err)
	suite.Equal("r1", lead.LeadOwner)
	suite.Equal("t1", lead.TenantID)
	suite.Equal("r1", lead.CreatedBy)
	suite.Equal(models.LeadStatusNew, lead.LeadStatus)
}

func (suite *AccessEngineTestSuite) TestCreateRequiresCapability() {
	_, err := suite.service.CreateLead(&service.CreateLeadRequest{LastName: "Curie"},
		rbac.User{UserID: "x", TenantID: "t1", Role: "auditor"})
	suite.ErrorIs(err, apperrors.ErrPolicyDenied)
}

func (suite *AccessEngineTestSuite) TestCreateValidatesRequest() {
	_, err := suite.service.CreateLead(&service.CreateLeadRequest{}, suite.rep1)
	suite.Error(err)
	var validationErrs validator.ValidationErrors
	suite.True(errors.As(err, &validationErrs))
}

func (suite *AccessEngineTestSuite) TestUpdateOwnLead() {
	company := "Curie Labs"
	lead, err := suite.service.UpdateLead(suite.leadR1.ID, &service.UpdateLeadRequest{Company: &company}, suite.rep1)
	suite.NoError(err)
	suite.Equal("Curie Labs", lead.Company)
	suite.Equal("r1", lead.UpdatedBy)
}

func (suite *AccessEngineTestSuite) TestUpdateInaccessibleLeadReportsNotFound() {
	company := "Curie Labs"
	_, err := suite.service.UpdateLead(suite.leadR2.ID, &service.UpdateLeadRequest{Company: &company}, suite.rep1)
	suite.ErrorIs(err, apperrors.ErrLeadNotFound)
}

func (suite *AccessEngineTestSuite) TestSoftDelete() {
	err := suite.service.SoftDeleteForUser(suite.leadR1.ID, suite.rep1)
	suite.NoError(err)
	suite.True(suite.store.leads[suite.leadR1.ID].IsDeleted)
	suite.Equal("r1", suite.store.leads[suite.leadR1.ID].DeletedBy)
}

func (suite *AccessEngineTestSuite) TestSoftDeleteTwiceIsAConflict() {
	suite.NoError(suite.service.SoftDeleteForUser(suite.leadR1.ID, suite.rep1))

	err := suite.service.SoftDeleteForUser(suite.leadR1.ID, suite.rep1)
	suite.ErrorIs(err, apperrors.ErrRecordAlreadyDeleted)
}

func (suite *AccessEngineTestSuite) TestSoftDeleteAlreadyDeletedRecord() {
	err := suite.service.SoftDeleteForUser(suite.leadGone.ID, suite.rep1)
	suite.ErrorIs(err, apperrors.ErrRecordAlreadyDeleted)
}

func (suite *AccessEngineTestSuite) TestSoftDeleteInaccessibleReportsNotFound() {
	err := suite.service.SoftDeleteForUser(suite.leadR2.ID, suite.rep1)
	suite.True(apperrors.IsNotFound(err))
	suite.False(suite.store.leads[suite.leadR2.ID].IsDeleted)
}

func (suite *AccessEngineTestSuite) TestRestore() {
	err := suite.service.RestoreForUser(suite.leadGone.ID, suite.rep1)
	suite.NoError(err)
	suite.False(suite.store.leads[suite.leadGone.ID].IsDeleted)
}

func (suite *AccessEngineTestSuite) TestRestoreActiveRecordIsRefused() {
	err := suite.service.RestoreForUser(suite.leadR1.ID, suite.rep1)
	suite.ErrorIs(err, apperrors.ErrRecordNotDeleted)
}

func (suite *AccessEngineTestSuite) TestRestoreSomeoneElsesRecordReportsNotFound() {
	err := suite.service.RestoreForUser(suite.leadGone.ID, suite.rep2)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *AccessEngineTestSuite) TestHardDeleteIsAdminOnly() {
	err := suite.service.HardDeleteForUser(suite.leadR1.ID, suite.rep1)
	suite.ErrorIs(err, apperrors.ErrHardDeleteDenied)

	err = suite.service.HardDeleteForUser(suite.leadR1.ID, suite.manager)
	suite.ErrorIs(err, apperrors.ErrHardDeleteDenied)

	err = suite.service.HardDeleteForUser(suite.leadR1.ID, suite.admin)
	suite.NoError(err)
	_, exists := suite.store.leads[suite.leadR1.ID]
	suite.False(exists)
}

func (suite *AccessEngineTestSuite) TestHardDeleteStopsAtTenantBoundary() {
	err := suite.service.HardDeleteForUser(suite.leadT2.ID, suite.admin)
	suite.True(apperrors.IsNotFound(err))
	_, exists := suite.store.leads[suite.leadT2.ID]
	suite.True(exists)
}

func TestAccessEngineTestSuite(t *testing.T) {
	suite.Run(t, new(AccessEngineTestSuite))
}
