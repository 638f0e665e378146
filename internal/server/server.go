package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"alabaztrum_echo/internal/config"
	"alabaztrum_echo/internal/handlers"
	"alabaztrum_echo/internal/logging"
	appMiddleware "alabaztrum_echo/internal/middleware"
	"alabaztrum_echo/internal/routes"
)

const shutdownTimeout = 10 * time.Second

// New assembles the Echo instance: middleware, error handler, renderer,
// static files and the route table
func New(cfg *config.Config, logger *logrus.Logger, renderer echo.Renderer, checkers ...handlers.HealthChecker) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Deployment limits: one request may take up to RequestTimeout and idle
	// keep-alive connections are closed after KeepAlive.
	e.Server.ReadTimeout = cfg.RequestTimeout
	e.Server.WriteTimeout = cfg.RequestTimeout
	e.Server.IdleTimeout = cfg.KeepAlive

	e.HTTPErrorHandler = appMiddleware.NewErrorHandler(logger)

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(logging.RequestLogger(logger))
	e.Use(appMiddleware.Recover(logger))

	e.Renderer = renderer

	// Static file serving
	e.Static("/static", cfg.StaticDir)

	pageHandler := handlers.NewPageHandler(logger, cfg.Firebase.Web(), cfg.Environment)
	healthHandler := handlers.NewHealthHandler(logger, checkers...)
	routes.Register(e, routes.Table(), pageHandler, healthHandler)

	return e
}

// Run serves HTTP on the configured address until ctx is cancelled, then
// shuts the server down gracefully
func Run(ctx context.Context, e *echo.Echo, cfg *config.Config, logger logrus.FieldLogger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.WithField("address", cfg.Address()).Info("server starting")
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
