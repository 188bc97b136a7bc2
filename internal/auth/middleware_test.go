package auth_test

import (
	"net/http"
	"testing"
	"time"

	"crm-backend/internal/auth"
	"crm-backend/internal/rbac"
	"crm-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const secret = "middleware-test-secret"

func protectedRouter() *testutils.HTTPTestSuite {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/whoami", auth.Middleware(secret), func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "identity lost"})
			return
		}
		c.JSON(http.StatusOK, user)
	})
	return httpSuite
}

func issueToken(t *testing.T, claims auth.Claims, key string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	assert.NoError(t, err)
	return token
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	httpSuite := protectedRouter()
	token := issueToken(t, auth.Claims{
		UserID:   "r1",
		TenantID: "t1",
		Role:     "rep",
		Email:    "r1@test.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, secret)

	recorder := httpSuite.MakeRequestWithHeaders(http.MethodGet, "/whoami", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})

	var user rbac.User
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &user)
	assert.Equal(t, "r1", user.UserID)
	assert.Equal(t, "t1", user.TenantID)
	assert.Equal(t, rbac.RoleSalesRep, user.Role, "legacy role spelling is normalized at the boundary")
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	httpSuite := protectedRouter()

	recorder := httpSuite.MakeRequest(http.MethodGet, "/whoami", nil)

	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "missing authorization header")
}

func TestMiddlewareRejectsNonBearerScheme(t *testing.T) {
	httpSuite := protectedRouter()

	recorder := httpSuite.MakeRequestWithHeaders(http.MethodGet, "/whoami", nil, map[string]string{
		"Authorization": "Basic dXNlcjpwYXNz",
	})

	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "Bearer scheme")
}

func TestMiddlewareRejectsWrongKey(t *testing.T) {
	httpSuite := protectedRouter()
	token := issueToken(t, auth.Claims{
		UserID:   "r1",
		TenantID: "t1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, "some-other-secret")

	recorder := httpSuite.MakeRequestWithHeaders(http.MethodGet, "/whoami", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})

	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "invalid or expired token")
}

func TestMiddlewareRejectsExpiredToken(t *testing.T) {
	httpSuite := protectedRouter()
	token := issueToken(t, auth.Claims{
		UserID:   "r1",
		TenantID: "t1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, secret)

	recorder := httpSuite.MakeRequestWithHeaders(http.MethodGet, "/whoami", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})

	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "invalid or expired token")
}

func TestMiddlewareRejectsTokenWithoutIdentity(t *testing.T) {
	httpSuite := protectedRouter()
	token := issueToken(t, auth.Claims{
		Role: "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, secret)

	recorder := httpSuite.MakeRequestWithHeaders(http.MethodGet, "/whoami", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})

	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "identity claims")
}
