package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"alabaztrum_echo/internal/config"
	"alabaztrum_echo/internal/render"
	"alabaztrum_echo/internal/routes"
	"alabaztrum_echo/web/templates"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	renderer, err := render.NewTemplateRenderer(templates.FS)
	if err != nil {
		t.Fatalf("NewTemplateRenderer() error = %v", err)
	}

	cfg := &config.Config{
		Environment:    config.EnvProduction,
		Host:           "127.0.0.1",
		Port:           "5000",
		RequestTimeout: 120 * time.Second,
		KeepAlive:      5 * time.Second,
		LogLevel:       "info",
		StaticDir:      t.TempDir(),
		Firebase: config.FirebaseConfig{
			StorageBucket: "alabaztrum.appspot.com",
			ProjectID:     "alabaztrum",
		},
	}
	return New(cfg, logger, renderer)
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

// Parameterised paths are requested with a sample value in place of each
// :param segment.
func samplePath(pattern string) string {
	segments := strings.Split(pattern, "/")
	for i, s := range segments {
		if strings.HasPrefix(s, ":") {
			segments[i] = "sample-" + strings.TrimPrefix(s, ":")
		}
	}
	return strings.Join(segments, "/")
}

func TestEveryRouteRenders(t *testing.T) {
	e := newTestEcho(t)

	for _, r := range routes.Table() {
		if r.RedirectTo != "" {
			continue
		}
		t.Run(r.Path, func(t *testing.T) {
			rec := get(e, samplePath(r.Path))

			if rec.Code != http.StatusOK {
				t.Fatalf("GET %s status = %d; want %d (body %q)", r.Path, rec.Code, http.StatusOK, rec.Body.String())
			}
			if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMETextHTML) {
				t.Errorf("Content-Type = %q; want text/html", ct)
			}
			if !strings.Contains(rec.Body.String(), `<a href="/">Home</a>`) && r.Path != "/" {
				t.Errorf("GET %s body has no Home breadcrumb", r.Path)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	rec := get(newTestEcho(t), "/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
	if body["status"] != "ok" || body["message"] != "Application is running" {
		t.Errorf("body = %v; want status ok and message %q", body, "Application is running")
	}
}

func TestAyudaRedirect(t *testing.T) {
	rec := get(newTestEcho(t), "/ayuda")

	if rec.Code != http.StatusFound {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/ayuda/contacto" {
		t.Errorf("Location = %q; want %q", loc, "/ayuda/contacto")
	}
}

func TestUndeclaredPathReturnsNotFound(t *testing.T) {
	e := newTestEcho(t)

	for _, path := range []string{"/perfumes", "/admin/users", "/producto", "/ayuda/contacto/extra"} {
		t.Run(path, func(t *testing.T) {
			rec := get(e, path)

			if rec.Code != http.StatusNotFound {
				t.Errorf("status = %d; want %d", rec.Code, http.StatusNotFound)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"Not found"}` {
				t.Errorf("body = %s; want {\"error\":\"Not found\"}", got)
			}
		})
	}
}

func TestProductEditPassesIdentifierThrough(t *testing.T) {
	e := newTestEcho(t)

	for _, id := range []string{"42", "abc-DEF_9", "0000", "not.a.real.id"} {
		t.Run(id, func(t *testing.T) {
			rec := get(e, "/admin/products/edit/"+id)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
			}
			want := `data-product-id="` + id + `"`
			if !strings.Contains(rec.Body.String(), want) {
				t.Errorf("body does not contain %s", want)
			}
		})
	}
}

func TestAdminEditPathsPassIdentifierThrough(t *testing.T) {
	e := newTestEcho(t)

	tests := []struct {
		path string
		want string
	}{
		{path: "/admin/orders/edit/ORD-1001", want: `data-order-id="ORD-1001"`},
		{path: "/admin/messages/edit/msg_7", want: `data-message-id="msg_7"`},
		{path: "/admin/comments/edit/c.42", want: `data-comment-id="c.42"`},
		{path: "/admin/site-reviews/edit/r9", want: `data-review-id="r9"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(e, tt.path)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
			}
			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Errorf("body does not contain %s", tt.want)
			}
		})
	}
}

func TestSearchQueryIsEscaped(t *testing.T) {
	rec := get(newTestEcho(t), "/buscar?q=%3Cscript%3Eoud")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<script>oud") {
		t.Errorf("search query was rendered unescaped")
	}
	if !strings.Contains(body, "&lt;script&gt;oud") {
		t.Errorf("search query missing from the page")
	}
}

func TestFirebaseConfigInjected(t *testing.T) {
	rec := get(newTestEcho(t), "/login")

	if !strings.Contains(rec.Body.String(), `projectId: "alabaztrum"`) {
		t.Errorf("login page does not carry the Firebase web config")
	}
}
