package service_test

import (
	"testing"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/rbac"
	"crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type UserServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockUserRepositoryInterface
	userService *service.UserService

	admin rbac.User
	rep   rbac.User
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.userService = service.NewUserService(suite.mockRepo, rbac.DefaultPolicy(), validator.New())

	suite.admin = rbac.User{UserID: "a1", TenantID: "t1", Role: rbac.RoleAdmin}
	suite.rep = rbac.User{UserID: "r1", TenantID: "t1", Role: rbac.RoleSalesRep}
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) TestListUsersRequiresAdmin() {
	_, err := suite.userService.ListUsers(suite.rep)
	suite.ErrorIs(err, apperrors.ErrPolicyDenied)
}

func (suite *UserServiceTestSuite) TestListUsers() {
	users := []models.User{{UserID: "u1", TenantID: "t1"}}
	suite.mockRepo.EXPECT().ListByTenant("t1", false).Return(users, nil)

	got, err := suite.userService.ListUsers(suite.admin)
	suite.NoError(err)
	suite.Len(got, 1)
}

func (suite *UserServiceTestSuite) TestGetUserHidesOtherTenants() {
	suite.mockRepo.EXPECT().GetByUserID("u2").Return(&models.User{UserID: "u2", TenantID: "t2"}, nil)

	_, err := suite.userService.GetUser("u2", suite.admin)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *UserServiceTestSuite) TestGetUserHidesDeleted() {
	suite.mockRepo.EXPECT().GetByUserID("u2").Return(&models.User{UserID: "u2", TenantID: "t1", IsDeleted: true}, nil)

	_, err := suite.userService.GetUser("u2", suite.admin)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *UserServiceTestSuite) TestCreateUserNormalizesRole() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		suite.Equal(string(rbac.RoleSalesManager), user.Role)
		suite.Equal("t1", user.TenantID)
		return nil
	})

	user, err := suite.userService.CreateUser(&service.CreateUserRequest{
		UserID: "u2",
		Email:  "u2@test.com",
		Role:   "manager",
	}, suite.admin)
	suite.NoError(err)
	suite.Equal(string(rbac.RoleSalesManager), user.Role)
}

func (suite *UserServiceTestSuite) TestCreateUserRequiresAdmin() {
	_, err := suite.userService.CreateUser(&service.CreateUserRequest{
		UserID: "u2",
		Email:  "u2@test.com",
		Role:   "SALES_REP",
	}, suite.rep)
	suite.ErrorIs(err, apperrors.ErrPolicyDenied)
}

func (suite *UserServiceTestSuite) TestCreateUserRejectsInvalidRole() {
	_, err := suite.userService.CreateUser(&service.CreateUserRequest{
		UserID: "u2",
		Email:  "u2@test.com",
		Role:   "superuser",
	}, suite.admin)
	suite.Error(err)
}

func (suite *UserServiceTestSuite) TestCreateUserValidReportingChain() {
	manager := "m1"
	suite.mockRepo.EXPECT().GetByUserID("m1").Return(&models.User{UserID: "m1", TenantID: "t1"}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	_, err := suite.userService.CreateUser(&service.CreateUserRequest{
		UserID:      "u2",
		Email:       "u2@test.com",
		Role:        "SALES_REP",
		ReportingTo: &manager,
	}, suite.admin)
	suite.NoError(err)
}

func (suite *UserServiceTestSuite) TestCreateUserRejectsSelfReporting() {
	self := "u2"
	_, err := suite.userService.CreateUser(&service.CreateUserRequest{
		UserID:      "u2",
		Email:       "u2@test.com",
		Role:        "SALES_REP",
		ReportingTo: &self,
	}, suite.admin)
	suite.ErrorIs(err, apperrors.ErrReportingCycleDetected)
}

func (suite *UserServiceTestSuite) TestCreateUserRejectsReportingCycle() {
	// m1 already reports to u2, so u2 reporting to m1 closes a cycle
	manager := "m1"
	reportsBack := "u2"
	suite.mockRepo.EXPECT().GetByUserID("m1").Return(&models.User{
		UserID: "m1", TenantID: "t1", ReportingTo: &reportsBack,
	}, nil)

	_, err := suite.userService.CreateUser(&service.CreateUserRequest{
		UserID:      "u2",
		Email:       "u2@test.com",
		Role:        "SALES_REP",
		ReportingTo: &manager,
	}, suite.admin)
	suite.ErrorIs(err, apperrors.ErrReportingCycleDetected)
}

func (suite *UserServiceTestSuite) TestCreateUserRejectsCrossTenantManager() {
	manager := "m1"
	suite.mockRepo.EXPECT().GetByUserID("m1").Return(&models.User{UserID: "m1", TenantID: "t2"}, nil)

	_, err := suite.userService.CreateUser(&service.CreateUserRequest{
		UserID:      "u2",
		Email:       "u2@test.com",
		Role:        "SALES_REP",
		ReportingTo: &manager,
	}, suite.admin)
	suite.ErrorIs(err, apperrors.ErrReportingCrossTenant)
}

func (suite *UserServiceTestSuite) TestCreateUserRejectsMissingManager() {
	manager := "ghost"
	suite.mockRepo.EXPECT().GetByUserID("ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.userService.CreateUser(&service.CreateUserRequest{
		UserID:      "u2",
		Email:       "u2@test.com",
		Role:        "SALES_REP",
		ReportingTo: &manager,
	}, suite.admin)
	suite.True(apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestUpdateUserClearsReportingLine() {
	manager := "m1"
	existing := &models.User{UserID: "u2", TenantID: "t1", Email: "u2@test.com", Role: "SALES_REP", ReportingTo: &manager}
	suite.mockRepo.EXPECT().GetByUserID("u2").Return(existing, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(user *models.User) error {
		suite.Nil(user.ReportingTo)
		return nil
	})

	empty := ""
	_, err := suite.userService.UpdateUser("u2", &service.UpdateUserRequest{ReportingTo: &empty}, suite.admin)
	suite.NoError(err)
}

func (suite *UserServiceTestSuite) TestDeleteUser() {
	suite.mockRepo.EXPECT().GetByUserID("u2").Return(&models.User{UserID: "u2", TenantID: "t1"}, nil)
	suite.mockRepo.EXPECT().MarkDeleted("u2").Return(nil)

	suite.NoError(suite.userService.DeleteUser("u2", suite.admin))
}

func (suite *UserServiceTestSuite) TestDeleteUserRequiresAdmin() {
	suite.ErrorIs(suite.userService.DeleteUser("u2", suite.rep), apperrors.ErrPolicyDenied)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
