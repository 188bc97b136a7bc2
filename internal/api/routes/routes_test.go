package routes_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"crm-backend/internal/api/routes"
	"crm-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("builds the router with default policy", func(t *testing.T) {
		router, err := routes.SetupRoutes(nil, &config.Config{JWTSecret: "test-secret"})
		require.NoError(t, err)
		require.NotNil(t, router)

		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/health/live", nil)
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("rejects unauthenticated API requests", func(t *testing.T) {
		router, err := routes.SetupRoutes(nil, &config.Config{JWTSecret: "test-secret"})
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/leads", nil)
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("fails startup on a broken policy file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.yaml")
		require.NoError(t, os.WriteFile(path, []byte("roles:\n  SUPERUSER:\n    leads: [view]\n"), 0o644))

		router, err := routes.SetupRoutes(nil, &config.Config{JWTSecret: "test-secret", PolicyFile: path})
		assert.Error(t, err)
		assert.Nil(t, router)
		assert.Contains(t, err.Error(), "policy")
	})
}
