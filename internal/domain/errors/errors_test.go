package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"chaski/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrInvalidImage.WithDetails("application/pdf")

	assert.True(t, stderrors.Is(err, ErrInvalidImage))
	assert.False(t, stderrors.Is(err, ErrImageTooLarge))
	assert.Equal(t, "application/pdf", err.Details())
	assert.Equal(t, ErrInvalidImage.Message(), err.Message())
}

func TestBaseError_WrapMessageIsStillMatchable(t *testing.T) {
	err := ErrAuthTimeout.WrapMessage("login")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusGatewayTimeout, appErr.HTTPCode())
	assert.True(t, errors.Is(err, ErrAuthTimeout))
}

func TestAuthTimeoutMessage(t *testing.T) {
	assert.Equal(t, "La operación ha excedido el tiempo máximo de espera", ErrAuthTimeout.Error())
	assert.NotEqual(t, ErrAuthTimeout.ErrorCode(), ErrInvalidCredentials.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to insert message")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to insert message", err.Details())
	assert.ErrorIs(t, err, cause)
}
