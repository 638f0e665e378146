package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// ErrorResponse is the JSON body of every error answer
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// NewErrorHandler creates the HTTP error handler for Echo. Server errors are
// logged with their cause; the client only sees a generic message and the
// request id to quote when reporting the problem.
func NewErrorHandler(logger logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := ""

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			}
		}

		switch {
		case code == http.StatusNotFound:
			message = "Not found"
		case code == http.StatusMethodNotAllowed:
			message = "Method not allowed"
		case code >= http.StatusInternalServerError:
			message = "Internal server error"
		case message == "":
			message = http.StatusText(code)
		}

		requestID := c.Response().Header().Get(echo.HeaderXRequestID)
		entry := logger.WithFields(logrus.Fields{
			"status":     code,
			"method":     c.Request().Method,
			"uri":        c.Request().RequestURI,
			"request_id": requestID,
		})

		body := ErrorResponse{Error: message}
		if code >= http.StatusInternalServerError {
			entry.WithError(err).Error("request failed")
			body.RequestID = requestID
		} else {
			entry.WithError(err).Debug("request rejected")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, body)
		}
		if writeErr != nil {
			entry.WithError(writeErr).Error("failed to write error response")
		}
	}
}

// Recover turns panics into errors for the error handler and logs the stack
// through logger instead of echo's default logger
func Recover(logger logrus.FieldLogger) echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.WithFields(logrus.Fields{
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				"stack":      string(stack),
			}).WithError(err).Error("panic recovered")
			return err
		},
	})
}
