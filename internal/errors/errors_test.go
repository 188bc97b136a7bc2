package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "lead"}
		assert.Equal(t, "lead not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "lead"}
		err2 := &NotFoundError{Entity: "lead"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "lead"}
		err2 := &NotFoundError{Entity: "contact"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrLeadNotFound, ErrLeadNotFound))
		assert.False(t, errors.Is(ErrLeadNotFound, ErrContactNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrLeadNotFound))
		assert.True(t, IsNotFound(ErrUserNotFound))
		assert.False(t, IsNotFound(ErrUserExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "lead", Context: "in the tenant"}
		assert.Equal(t, "lead already exists in the tenant", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "lead"}
		assert.Equal(t, "lead already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "lead", Context: "in the tenant"}
		err2 := &AlreadyExistsError{Entity: "lead", Context: "in the tenant"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrLeadNotFound))
	})
}

func TestAuthenticationErrors(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "invalid or expired token", ErrInvalidToken.Error())
		assert.Equal(t, "missing authorization header", ErrMissingAuthHeader.Error())
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidToken))
		assert.True(t, IsAuthentication(ErrMissingIdentity))
		assert.False(t, IsAuthentication(ErrPolicyDenied))
	})
}

func TestAuthorizationErrors(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "role does not permit this operation", ErrPolicyDenied.Error())
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrPolicyDenied))
		assert.True(t, IsAuthorization(ErrHardDeleteDenied))
		assert.False(t, IsAuthorization(ErrInvalidToken))
	})
}

func TestConfigurationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &ConfigurationError{Message: "JWT_SECRET must be set in production"}
		assert.Equal(t, "JWT_SECRET must be set in production", err.Error())
	})

	t.Run("IsConfiguration helper", func(t *testing.T) {
		err := NewConfigurationError("database name is required")
		assert.True(t, IsConfiguration(err))
		assert.False(t, IsConfiguration(ErrPolicyDenied))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})

	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := NewAuthorizationError("no access")
		assert.Equal(t, "no access", err.Error())
		assert.True(t, IsAuthorization(err))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	t.Run("Soft-delete state errors", func(t *testing.T) {
		assert.Error(t, ErrRecordAlreadyDeleted)
		assert.Error(t, ErrRecordNotDeleted)
		assert.False(t, errors.Is(ErrRecordAlreadyDeleted, ErrRecordNotDeleted))
	})

	t.Run("Reporting chain errors", func(t *testing.T) {
		assert.Error(t, ErrReportingCycleDetected)
		assert.Error(t, ErrReportingCrossTenant)
	})
}
