package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm-backend/internal/api/handlers"
	"crm-backend/internal/auth"
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/rbac"
	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockUserServiceInterface
	router      *gin.Engine

	admin rbac.User
	rep   rbac.User
}

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUserServiceInterface(suite.ctrl)
	handler := handlers.NewUserHandler(suite.mockService)

	suite.router = gin.New()
	api := suite.router.Group("/api/v1")
	api.Use(auth.Middleware(testSecret))
	api.GET("/users", handler.ListUsers)
	api.GET("/users/:userId", handler.GetUser)
	api.POST("/users", handler.CreateUser)
	api.PUT("/users/:userId", handler.UpdateUser)
	api.DELETE("/users/:userId", handler.DeleteUser)

	suite.admin = rbac.User{UserID: "a1", TenantID: "t1", Email: "a1@test.com", Role: rbac.RoleAdmin}
	suite.rep = rbac.User{UserID: "r1", TenantID: "t1", Email: "r1@test.com", Role: rbac.RoleSalesRep}
}

func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) request(method, path string, body interface{}, user rbac.User) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+signToken(suite.T(), user))

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

func (suite *UserHandlerTestSuite) TestListUsers() {
	suite.mockService.EXPECT().ListUsers(suite.admin).Return([]models.User{{UserID: "u1"}}, nil)

	resp := suite.request(http.MethodGet, "/api/v1/users", nil, suite.admin)

	suite.Equal(http.StatusOK, resp.Code)
}

func (suite *UserHandlerTestSuite) TestListUsersForbiddenBelowAdmin() {
	suite.mockService.EXPECT().ListUsers(suite.rep).Return(nil, apperrors.ErrPolicyDenied)

	resp := suite.request(http.MethodGet, "/api/v1/users", nil, suite.rep)

	suite.Equal(http.StatusForbidden, resp.Code)
}

func (suite *UserHandlerTestSuite) TestGetUserNotFound() {
	suite.mockService.EXPECT().GetUser("ghost", suite.admin).Return(nil, apperrors.ErrUserNotFound)

	resp := suite.request(http.MethodGet, "/api/v1/users/ghost", nil, suite.admin)

	suite.Equal(http.StatusNotFound, resp.Code)
}

func (suite *UserHandlerTestSuite) TestCreateUser() {
	req := service.CreateUserRequest{UserID: "u2", Email: "u2@test.com", Role: "SALES_REP"}
	suite.mockService.EXPECT().CreateUser(&req, suite.admin).Return(&models.User{UserID: "u2"}, nil)

	resp := suite.request(http.MethodPost, "/api/v1/users", req, suite.admin)

	suite.Equal(http.StatusCreated, resp.Code)
}

func (suite *UserHandlerTestSuite) TestCreateUserConflict() {
	req := service.CreateUserRequest{UserID: "u2", Email: "u2@test.com", Role: "SALES_REP"}
	suite.mockService.EXPECT().CreateUser(&req, suite.admin).Return(nil, apperrors.ErrUserExists)

	resp := suite.request(http.MethodPost, "/api/v1/users", req, suite.admin)

	suite.Equal(http.StatusConflict, resp.Code)
}

func (suite *UserHandlerTestSuite) TestUpdateUserCycleConflict() {
	manager := "m1"
	req := service.UpdateUserRequest{ReportingTo: &manager}
	suite.mockService.EXPECT().UpdateUser("u2", &req, suite.admin).Return(nil, apperrors.ErrReportingCycleDetected)

	resp := suite.request(http.MethodPut, "/api/v1/users/u2", req, suite.admin)

	suite.Equal(http.StatusConflict, resp.Code)
}

func (suite *UserHandlerTestSuite) TestDeleteUser() {
	suite.mockService.EXPECT().DeleteUser("u2", suite.admin).Return(nil)

	resp := suite.request(http.MethodDelete, "/api/v1/users/u2", nil, suite.admin)

	suite.Equal(http.StatusNoContent, resp.Code)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
