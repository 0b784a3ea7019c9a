package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"chaski/internal/delivery/http/response"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantDetail string
	}{
		{
			name:       "domain error",
			err:        domainerrors.ErrProductNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "PRODUCT_NOT_FOUND",
		},
		{
			name:       "wrapped domain error keeps details",
			err:        errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("price: gt=0"), "create product"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantDetail: "price: gt=0",
		},
		{
			name:       "echo error",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
			wantDetail: "Method Not Allowed",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/products", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetail, body.Error.Details)
		})
	}
}
