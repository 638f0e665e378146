package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// HealthChecker is a dependency probed by the health endpoint
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// HealthResponse is the payload of the health endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

const healthFailedMessage = "Health check failed"

// HealthHandler handles the liveness endpoint
type HealthHandler struct {
	logger   logrus.FieldLogger
	checkers []HealthChecker
	timeout  time.Duration
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(logger logrus.FieldLogger, checkers ...HealthChecker) *HealthHandler {
	return &HealthHandler{logger: logger, checkers: checkers, timeout: 2 * time.Second}
}

// Health reports whether the application is running. Failures, including
// panics while building the response, are answered here with a 500 payload
// instead of reaching the global error handler.
func (h *HealthHandler) Health(c echo.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = h.fail(c, fmt.Errorf("health check panicked: %v", r))
		}
	}()

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	for _, checker := range h.checkers {
		if cerr := checker.Check(ctx); cerr != nil {
			return h.fail(c, fmt.Errorf("%s: %w", checker.Name(), cerr))
		}
	}

	h.logger.Debug("health check passed")
	return c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "Application is running",
	})
}

// fail logs the cause and answers with a fixed message
func (h *HealthHandler) fail(c echo.Context, err error) error {
	h.logger.WithError(err).Error("health check failed")
	return c.JSON(http.StatusInternalServerError, HealthResponse{
		Status:  "error",
		Message: healthFailedMessage,
	})
}
