package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "chaski/internal/delivery/context"
	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	mockUsecase "chaski/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionMiddleware(t *testing.T) {
	member := &entity.User{ID: "0b8f6a8e-7f7c-4d4b-9a55-3c0f5f1f2d11", Name: "Ana"}
	demo := entity.DemoUser()

	tests := []struct {
		name       string
		user       *entity.User
		rejectDemo bool
		wantErr    error
	}{
		{name: "no identity", user: nil, wantErr: domainerrors.ErrNotAuthenticated},
		{name: "member passes", user: member},
		{name: "demo passes the session gate", user: demo},
		{name: "demo rejected", user: demo, rejectDemo: true, wantErr: domainerrors.ErrDemoUnsupported},
		{name: "member passes the demo gate", user: member, rejectDemo: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := mockUsecase.NewMockSessionUsecase(t)
			session.EXPECT().CurrentUser().Return(tt.user).Once()
			m := NewSessionMiddleware(session)

			var seen *entity.User
			next := func(c echo.Context) error {
				seen = deliverycontext.GetUser(c)

				return c.NoContent(http.StatusNoContent)
			}

			h := m.RequireSession(next)
			if tt.rejectDemo {
				h = m.RequireSession(m.RejectDemo(next))
			}

			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/me", nil), httptest.NewRecorder())
			err := h(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, seen)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.user, seen)
		})
	}
}
