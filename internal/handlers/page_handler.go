package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"alabaztrum_echo/internal/config"
)

// PageHandler renders template-backed pages. One instance serves every view
// in the route table.
type PageHandler struct {
	logger      logrus.FieldLogger
	firebase    config.WebConfig
	environment string
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(logger logrus.FieldLogger, firebase config.WebConfig, environment string) *PageHandler {
	return &PageHandler{logger: logger, firebase: firebase, environment: environment}
}

// Render returns the handler serving the given view
func (h *PageHandler) Render(view View) echo.HandlerFunc {
	return func(c echo.Context) error {
		data := PageData{
			Title:       view.Title,
			ActiveNav:   view.ActiveNav,
			Breadcrumbs: BuildBreadcrumbs(view.Breadcrumbs...),
			Path:        c.Request().URL.Path,
			Params:      pathParams(c),
			Query:       c.QueryParam("q"),
			Firebase:    h.firebase,
			Environment: h.environment,
		}

		h.logger.WithFields(logrus.Fields{
			"template": view.Template,
			"params":   data.Params,
		}).Debug("rendering page")

		return c.Render(http.StatusOK, view.Template, data)
	}
}

// Redirect returns a handler answering with a temporary redirect to target
func (h *PageHandler) Redirect(target string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Redirect(http.StatusFound, target)
	}
}

// Path parameters are copied as raw strings; ids are not parsed or looked up.
func pathParams(c echo.Context) map[string]string {
	names := c.ParamNames()
	params := make(map[string]string, len(names))
	for _, name := range names {
		params[name] = c.Param(name)
	}
	return params
}
