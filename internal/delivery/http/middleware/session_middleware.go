package middleware

import (
	deliverycontext "chaski/internal/delivery/context"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware gates routes on the identity held by the session manager.
type SessionMiddleware struct {
	identity usecase.IdentityProvider
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(session usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{identity: session}
}

// RequireSession answers 401 when there is no identity, demo included.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := m.identity.CurrentUser()
		if user == nil {
			return domainerrors.ErrNotAuthenticated
		}
		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// RejectDemo answers 403 for the demo identity. It must be used AFTER RequireSession.
func (m *SessionMiddleware) RejectDemo(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := deliverycontext.GetUser(c)
		if user == nil {
			return domainerrors.ErrNotAuthenticated
		}
		if user.IsDemo() {
			return domainerrors.ErrDemoUnsupported
		}

		return next(c)
	}
}
