package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"alabaztrum_echo/web/templates/shared"
)

// TemplateRenderer is a html/template renderer for Echo.
// Uses per-page template cloning to allow each page to define its own blocks.
type TemplateRenderer struct {
	templates map[string]*template.Template
}

// FuncMap holds the helpers available to every template
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"breadcrumbs": renderBreadcrumbs,
		"isActive": func(active, nav string) bool {
			return active != "" && active == nav
		},
	}
}

// NewTemplateRenderer parses the templates found in fsys. layouts/*.html and
// partials/*.html form the base every page is cloned from; pages are keyed
// by their path below pages/, e.g. "admin/dashboard.html".
func NewTemplateRenderer(fsys fs.FS) (*TemplateRenderer, error) {
	base := template.New("").Funcs(FuncMap())
	for _, pattern := range []string{"layouts/*.html", "partials/*.html"} {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			continue
		}
		if base, err = base.ParseFS(fsys, matches...); err != nil {
			return nil, fmt.Errorf("parse %s: %w", pattern, err)
		}
	}

	templates := make(map[string]*template.Template)
	err := fs.WalkDir(fsys, "pages", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".html" {
			return nil
		}

		src, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		pageTemplate, err := base.Clone()
		if err != nil {
			return fmt.Errorf("clone base for %s: %w", p, err)
		}
		name := strings.TrimPrefix(p, "pages/")
		if _, err := pageTemplate.New(name).Parse(string(src)); err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		templates[name] = pageTemplate
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &TemplateRenderer{templates: templates}, nil
}

// Render renders a template document
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := t.templates[name]
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Template not found: "+name)
	}

	// Pages built on the layout go through "base"; standalone pages are
	// executed directly.
	entry := name
	if tmpl.Lookup("base") != nil {
		entry = "base"
	}
	if err := tmpl.ExecuteTemplate(w, entry, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// Has reports whether a page template with the given identifier exists
func (t *TemplateRenderer) Has(name string) bool {
	_, ok := t.templates[name]
	return ok
}

func renderBreadcrumbs(items []shared.Breadcrumb) (template.HTML, error) {
	var buf bytes.Buffer
	if err := shared.Breadcrumbs(items).Render(context.Background(), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
