package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"forum/config"
	"forum/internal/delivery"
	apimiddleware "forum/internal/delivery/api/middleware"
	"forum/internal/delivery/api/router"
	"forum/internal/delivery/api/validator"
	"forum/internal/delivery/middleware"
	"forum/internal/domain/lifecycle"
	"forum/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the HTTP server.
type ServerParams struct {
	Cfg             *config.Config
	Logger          *slog.Logger
	Validator       *validator.Validator
	RequestRecorder apimiddleware.RequestRecorder // Optional.
	MetricsHandler  http.Handler                  // Optional; served at cfg.Metrics.Path.
	RouterParams    router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params)

	return &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}, nil
}

// NewEcho builds the fully wired echo instance without binding a port.
func NewEcho(params ServerParams) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	// Rate limiting keys on the peer address; forwarded headers are client controlled.
	echoServer.IPExtractor = echo.ExtractIPDirect()
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Metrics wrap the logger, which renders errors, so the final status is observed
	if params.RequestRecorder != nil {
		echoServer.Use(apimiddleware.NewMetricsMiddleware(params.RequestRecorder).Handle)
	}

	// 4. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	echoServer.Use(loggerMiddleware.Handle)

	// 5. CORS middleware
	echoServer.Use(echomiddleware.CORS())

	// 6. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	errorMiddleware := apimiddleware.NewErrorMiddleware(params.Logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = params.Validator

	if params.MetricsHandler != nil && params.Cfg.Metrics != nil && params.Cfg.Metrics.Enabled {
		echoServer.GET(params.Cfg.Metrics.Path, echo.WrapHandler(params.MetricsHandler))
	}

	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	return echoServer
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
