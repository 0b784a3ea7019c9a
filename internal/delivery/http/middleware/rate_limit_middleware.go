package middleware

import (
	"log/slog"

	"chaski/config"
	deliverycontext "chaski/internal/delivery/context"
	domainerrors "chaski/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewRateLimiter limits the requests of each client IP with an in-memory token bucket.
// It returns nil when rate limiting is disabled.
func NewRateLimiter(cfg *config.Config, logger *slog.Logger) echo.MiddlewareFunc {
	limits := cfg.RateLimit
	if limits == nil || !limits.Enabled {
		return nil
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(limits.RequestsPerSecond),
		Burst:     limits.Burst,
		ExpiresIn: limits.ExpiresIn,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health"
		},
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return domainerrors.ErrValidationFailed.WithDetails("missing client address")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), logger).Warn("Rate limit exceeded",
				slog.String("client_ip", identifier),
				slog.String("path", c.Path()),
			)

			return domainerrors.ErrTooManyRequests
		},
	})
}
