package handlers

import (
	"errors"
	"net/http"

	"crm-backend/internal/auth"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// requireUser pulls the authenticated identity out of the context and
// writes a 401 when it is absent
func requireUser(c *gin.Context) (rbac.User, bool) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrMissingIdentity.Error()})
		return rbac.User{}, false
	}
	return user, true
}

// parseRecordID parses the :id path parameter as a UUID
func parseRecordID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid record ID"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs), apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err),
		errors.Is(err, apperrors.ErrRecordNotDeleted),
		errors.Is(err, apperrors.ErrRecordAlreadyDeleted),
		errors.Is(err, apperrors.ErrReportingCycleDetected),
		errors.Is(err, apperrors.ErrReportingCrossTenant):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
