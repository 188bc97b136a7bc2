//go:build integration
// +build integration

package repository

import (
	"testing"

	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/rbac"
	"crm-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	users         *testutils.UserFactory
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.users = testutils.NewUserFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.users.Create()

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotZero(user.CreatedAt)
}

// TestCreateDuplicateUserID tests creating a user with a taken identity
func (suite *UserRepositoryTestSuite) TestCreateDuplicateUserID() {
	user := suite.users.Create()
	suite.NoError(suite.repo.Create(user))

	dup := suite.users.Create()
	dup.UserID = user.UserID

	suite.ErrorIs(suite.repo.Create(dup), apperrors.ErrUserExists)
}

// TestGetByUserID tests retrieving a user by identity
func (suite *UserRepositoryTestSuite) TestGetByUserID() {
	user := suite.users.Create()
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByUserID(user.UserID)

	suite.NoError(err)
	suite.Equal(user.Email, found.Email)
}

// TestGetByEmailSkipsDeleted tests that deleted users are not resolvable by email
func (suite *UserRepositoryTestSuite) TestGetByEmailSkipsDeleted() {
	user := suite.users.Create()
	suite.NoError(suite.repo.Create(user))
	suite.NoError(suite.repo.MarkDeleted(user.UserID))

	_, err := suite.repo.GetByEmail(user.Email)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListByTenant tests listing users within one tenant
func (suite *UserRepositoryTestSuite) TestListByTenant() {
	suite.NoError(suite.repo.Create(suite.users.Create()))
	suite.NoError(suite.repo.Create(suite.users.WithTenant("tenant-b")))
	deleted := suite.users.Create()
	suite.NoError(suite.repo.Create(deleted))
	suite.NoError(suite.repo.MarkDeleted(deleted.UserID))

	users, err := suite.repo.ListByTenant(testutils.DefaultTenant, false)
	suite.NoError(err)
	suite.Len(users, 1)

	users, err = suite.repo.ListByTenant(testutils.DefaultTenant, true)
	suite.NoError(err)
	suite.Len(users, 2)
}

// TestFindReports tests the directory lookup feeding the ownership compiler
func (suite *UserRepositoryTestSuite) TestFindReports() {
	manager := suite.users.WithRole(rbac.RoleSalesManager)
	suite.NoError(suite.repo.Create(manager))

	rep1 := suite.users.ReportingTo(manager)
	suite.NoError(suite.repo.Create(rep1))
	rep2 := suite.users.ReportingTo(manager)
	rep2.Role = "rep" // legacy spelling still counts as an individual contributor
	suite.NoError(suite.repo.Create(rep2))

	// a fellow manager in the chain is not a report the filter widens to
	subManager := suite.users.ReportingTo(manager)
	subManager.Role = string(rbac.RoleSalesManager)
	suite.NoError(suite.repo.Create(subManager))

	// deleted reports drop out of the reporting line
	gone := suite.users.ReportingTo(manager)
	suite.NoError(suite.repo.Create(gone))
	suite.NoError(suite.repo.MarkDeleted(gone.UserID))

	// same manager id in another tenant must not leak across
	other := suite.users.WithTenant("tenant-b")
	other.ReportingTo = &manager.UserID
	suite.NoError(suite.repo.Create(other))

	ids, err := suite.repo.FindReports(manager.UserID, manager.TenantID)

	suite.NoError(err)
	suite.ElementsMatch([]string{rep1.UserID, rep2.UserID}, ids)
}

// TestUpdate tests persisting user changes
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.users.Create()
	suite.NoError(suite.repo.Create(user))

	user.FirstName = "Updated"
	suite.NoError(suite.repo.Update(user))

	found, err := suite.repo.GetByUserID(user.UserID)
	suite.NoError(err)
	suite.Equal("Updated", found.FirstName)
}

// TestMarkDeleted tests soft-deleting a user
func (suite *UserRepositoryTestSuite) TestMarkDeleted() {
	user := suite.users.Create()
	suite.NoError(suite.repo.Create(user))

	suite.NoError(suite.repo.MarkDeleted(user.UserID))

	found, err := suite.repo.GetByUserID(user.UserID)
	suite.NoError(err)
	suite.True(found.IsDeleted)
	suite.NotNil(found.DeletedAt)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
