package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type stubChecker struct {
	err   error
	panic bool
}

func (s stubChecker) Name() string { return "stub" }

func (s stubChecker) Check(ctx context.Context) error {
	if s.panic {
		panic("checker exploded")
	}
	return s.err
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		checkers   []HealthChecker
		wantCode   int
		wantStatus string
		wantMsg    string
	}{
		{
			name:       "no checkers",
			wantCode:   http.StatusOK,
			wantStatus: "ok",
			wantMsg:    "Application is running",
		},
		{
			name:       "passing checker",
			checkers:   []HealthChecker{stubChecker{}},
			wantCode:   http.StatusOK,
			wantStatus: "ok",
			wantMsg:    "Application is running",
		},
		{
			name:       "failing checker",
			checkers:   []HealthChecker{stubChecker{err: errors.New("dial tcp 10.0.0.5:6379: connection refused")}},
			wantCode:   http.StatusInternalServerError,
			wantStatus: "error",
			wantMsg:    "Health check failed",
		},
		{
			name:       "panicking checker",
			checkers:   []HealthChecker{stubChecker{panic: true}},
			wantCode:   http.StatusInternalServerError,
			wantStatus: "error",
			wantMsg:    "Health check failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h := NewHealthHandler(discardLogger(), tt.checkers...)
			if err := h.Health(c); err != nil {
				t.Fatalf("Health() error = %v", err)
			}

			if rec.Code != tt.wantCode {
				t.Errorf("status code = %d; want %d", rec.Code, tt.wantCode)
			}

			var body HealthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
			}
			if body.Status != tt.wantStatus || body.Message != tt.wantMsg {
				t.Errorf("body = %+v; want {%s %s}", body, tt.wantStatus, tt.wantMsg)
			}
			for _, leak := range []string{"10.0.0.5", "connection refused", "exploded"} {
				if strings.Contains(rec.Body.String(), leak) {
					t.Errorf("body %q leaks %q", rec.Body.String(), leak)
				}
			}
		})
	}
}
