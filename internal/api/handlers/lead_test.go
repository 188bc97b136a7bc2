package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crm-backend/internal/api/handlers"
	"crm-backend/internal/auth"
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/rbac"
	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testSecret = "handler-test-secret"

// signToken issues a bearer token the auth middleware accepts
func signToken(t *testing.T, user rbac.User) string {
	t.Helper()
	claims := auth.Claims{
		UserID:   user.UserID,
		TenantID: user.TenantID,
		Role:     string(user.Role),
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

type LeadHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockLeadServiceInterface
	router      *gin.Engine

	rep rbac.User
}

func (suite *LeadHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockLeadServiceInterface(suite.ctrl)
	handler := handlers.NewLeadHandler(suite.mockService)

	suite.router = gin.New()
	api := suite.router.Group("/api/v1")
	api.Use(auth.Middleware(testSecret))
	api.GET("/leads", handler.ListLeads)
	api.GET("/leads/search", handler.SearchLeads)
	api.GET("/leads/owner/:ownerId", handler.ListLeadsByOwner)
	api.GET("/leads/:id", handler.GetLead)
	api.POST("/leads", handler.CreateLead)
	api.PUT("/leads/:id", handler.UpdateLead)
	api.DELETE("/leads/:id", handler.DeleteLead)
	api.POST("/leads/:id/restore", handler.RestoreLead)
	api.DELETE("/leads/:id/purge", handler.PurgeLead)

	suite.rep = rbac.User{UserID: "r1", TenantID: "t1", Email: "r1@test.com", Role: rbac.RoleSalesRep}
}

func (suite *LeadHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LeadHandlerTestSuite) request(method, path string, body interface{}, user *rbac.User) *httptest.ResponseRecorder {
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
	if user != nil {
		req.Header.Set("Authorization", "Bearer "+signToken(suite.T(), *user))
	}

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

func (suite *LeadHandlerTestSuite) TestListLeads() {
	leads := []models.Lead{{LeadOwner: "r1", LastName: "Lovelace"}}
	suite.mockService.EXPECT().ListForUser(suite.rep, false).Return(leads, nil)

	resp := suite.request(http.MethodGet, "/api/v1/leads", nil, &suite.rep)

	suite.Equal(http.StatusOK, resp.Code)
	var got []models.Lead
	suite.NoError(json.Unmarshal(resp.Body.Bytes(), &got))
	suite.Len(got, 1)
	suite.Equal("Lovelace", got[0].LastName)
}

func (suite *LeadHandlerTestSuite) TestListLeadsIncludeDeleted() {
	suite.mockService.EXPECT().ListForUser(suite.rep, true).Return([]models.Lead{}, nil)

	resp := suite.request(http.MethodGet, "/api/v1/leads?include_deleted=true", nil, &suite.rep)

	suite.Equal(http.StatusOK, resp.Code)
}

func (suite *LeadHandlerTestSuite) TestListLeadsWithoutToken() {
	resp := suite.request(http.MethodGet, "/api/v1/leads", nil, nil)

	suite.Equal(http.StatusUnauthorized, resp.Code)
}

func (suite *LeadHandlerTestSuite) TestListLeadsWithGarbageToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/leads", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)

	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func (suite *LeadHandlerTestSuite) TestGetLead() {
	id := uuid.New()
	suite.mockService.EXPECT().GetByIDForUser(id, suite.rep).Return(&models.Lead{LastName: "Lovelace"}, nil)

	resp := suite.request(http.MethodGet, "/api/v1/leads/"+id.String(), nil, &suite.rep)

	suite.Equal(http.StatusOK, resp.Code)
}

func (suite *LeadHandlerTestSuite) TestGetLeadNotVisible() {
	id := uuid.New()
	suite.mockService.EXPECT().GetByIDForUser(id, suite.rep).Return(nil, nil)

	resp := suite.request(http.MethodGet, "/api/v1/leads/"+id.String(), nil, &suite.rep)

	suite.Equal(http.StatusNotFound, resp.Code)
}

func (suite *LeadHandlerTestSuite) TestGetLeadInvalidID() {
	resp := suite.request(http.MethodGet, "/api/v1/leads/not-a-uuid", nil, &suite.rep)

	suite.Equal(http.StatusBadRequest, resp.Code)
}

func (suite *LeadHandlerTestSuite) TestListLeadsByOwner() {
	suite.mockService.EXPECT().ListByOwnerForUser("r2", suite.rep).Return([]models.Lead{}, nil)

	resp := suite.request(http.MethodGet, "/api/v1/leads/owner/r2", nil, &suite.rep)

	suite.Equal(http.StatusOK, resp.Code)
}

func (suite *LeadHandlerTestSuite) TestSearchLeads() {
	suite.mockService.EXPECT().SearchForUser(suite.rep, "acme").Return([]models.Lead{}, nil)

	resp := suite.request(http.MethodGet, "/api/v1/leads/search?q=acme", nil, &suite.rep)

	suite.Equal(http.StatusOK, resp.Code)
}

func (suite *LeadHandlerTestSuite) TestCreateLead() {
	req := service.CreateLeadRequest{LastName: "Curie"}
	suite.mockService.EXPECT().CreateLead(&req, suite.rep).Return(&models.Lead{LastName: "Curie"}, nil)

	resp := suite.request(http.MethodPost, "/api/v1/leads", req, &suite.rep)

	suite.Equal(http.StatusCreated, resp.Code)
}

func (suite *LeadHandlerTestSuite) TestCreateLeadPolicyDenied() {
	req := service.CreateLeadRequest{LastName: "Curie"}
	suite.mockService.EXPECT().CreateLead(&req, suite.rep).Return(nil, apperrors.ErrPolicyDenied)

	resp := suite.request(http.MethodPost, "/api/v1/leads", req, &suite.rep)

	suite.Equal(http.StatusForbidden, resp.Code)
}

func (suite *LeadHandlerTestSuite) TestUpdateLead() {
	id := uuid.New()
	company := "Curie Labs"
	req := service.UpdateLeadRequest{Company: &company}
	suite.mockService.EXPECT().UpdateLead(id, &req, suite.rep).Return(&models.Lead{Company: company}, nil)

	resp := suite.request(http.MethodPut, "/api/v1/leads/"+id.String(), req, &suite.rep)

	suite.Equal(http.StatusOK, resp.Code)
}

func (suite *LeadHandlerTestSuite) TestUpdateLeadNotFound() {
	id := uuid.New()
	company := "Curie Labs"
	req := service.UpdateLeadRequest{Company: &company}
	suite.mockService.EXPECT().UpdateLead(id, &req, suite.rep).Return(nil, apperrors.ErrLeadNotFound)

	resp := suite.request(http.MethodPut, "/api/v1/leads/"+id.String(), req, &suite.rep)

	suite.Equal(http.StatusNotFound, resp.Code)
}

func (suite *LeadHandlerTestSuite) TestDeleteLead() {
	id := uuid.New()
	suite.mockService.EXPECT().SoftDeleteForUser(id, suite.rep).Return(nil)

	resp := suite.request(http.MethodDelete, "/api/v1/leads/"+id.String(), nil, &suite.rep)

	suite.Equal(http.StatusNoContent, resp.Code)
}

func (suite *LeadHandlerTestSuite) TestDeleteLeadAlreadyDeleted() {
	id := uuid.New()
	suite.mockService.EXPECT().SoftDeleteForUser(id, suite.rep).Return(apperrors.ErrRecordAlreadyDeleted)

	resp := suite.request(http.MethodDelete, "/api/v1/leads/"+id.String(), nil, &suite.rep)

	suite.Equal(http.StatusConflict, resp.Code)
}

func (suite *LeadHandlerTestSuite) TestRestoreLeadNotDeleted() {
	id := uuid.New()
	suite.mockService.EXPECT().RestoreForUser(id, suite.rep).Return(apperrors.ErrRecordNotDeleted)

	resp := suite.request(http.MethodPost, "/api/v1/leads/"+id.String()+"/restore", nil, &suite.rep)

	suite.Equal(http.StatusConflict, resp.Code)
}

func (suite *LeadHandlerTestSuite) TestPurgeLeadDenied() {
	id := uuid.New()
	suite.mockService.EXPECT().HardDeleteForUser(id, suite.rep).Return(apperrors.ErrHardDeleteDenied)

	resp := suite.request(http.MethodDelete, "/api/v1/leads/"+id.String()+"/purge", nil, &suite.rep)

	suite.Equal(http.StatusForbidden, resp.Code)
}

func TestLeadHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LeadHandlerTestSuite))
}
