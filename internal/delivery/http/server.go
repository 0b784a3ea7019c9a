package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"chaski/config"
	"chaski/internal/delivery"
	"chaski/internal/delivery/http/middleware"
	"chaski/internal/delivery/http/router"
	"chaski/internal/delivery/http/validator"
	"chaski/internal/domain/lifecycle"
	"chaski/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams

	RequestID   *middleware.RequestIDMiddleware
	Logging     *middleware.LoggerMiddleware
	ErrorRender *middleware.ErrorMiddleware
	RateLimiter echo.MiddlewareFunc `name:"rateLimiter" optional:"true"`
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Validator = validator.New()
	echoServer.HTTPErrorHandler = params.ErrorRender.HandleHTTPError

	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     params.Config.HTTP.AllowOrigins,
		AllowCredentials: true,
	}))
	echoServer.Use(params.RequestID.Process)
	echoServer.Use(params.Logging.Handle)
	if limit := params.Config.HTTP.MaxRequestBodySize; limit != "" {
		echoServer.Use(echomiddleware.BodyLimit(limit))
	}
	if params.RateLimiter != nil {
		echoServer.Use(params.RateLimiter)
	}

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	timeouts := params.Config.HTTP.Timeouts
	echoServer.Server.ReadTimeout = timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = timeouts.IdleTimeout

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
