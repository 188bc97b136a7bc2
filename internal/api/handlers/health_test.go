package handlers_test

import (
	"net/http"
	"testing"

	"crm-backend/internal/api/handlers"
	"crm-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func TestLive(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	handler := handlers.NewHealthHandler(nil)
	httpSuite.Router.GET("/health/live", handler.Live)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
	assert.Equal(t, true, body["alive"])
}
