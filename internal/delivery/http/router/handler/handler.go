// Package handler contains the HTTP handlers of the view gateway.
package handler

import (
	"net/http"

	domainerrors "chaski/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck answers liveness probes.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// bind decodes the request into input and runs the echo validator on it.
func bind(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(input)
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a UUID")
	}

	return id, nil
}
