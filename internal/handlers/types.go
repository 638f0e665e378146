package handlers

import (
	"alabaztrum_echo/internal/config"
	"alabaztrum_echo/web/templates/shared"
)

// View describes what a route renders: the template identifier plus the
// static page metadata. Views are declared once in the route table.
type View struct {
	Template    string
	Title       string
	ActiveNav   string
	Breadcrumbs []shared.Breadcrumb // trail below the Home root
}

// PageData represents the common data structure passed to templates
type PageData struct {
	Title       string
	ActiveNav   string
	Breadcrumbs []shared.Breadcrumb
	Path        string
	Params      map[string]string // raw path parameters, never coerced
	Query       string
	Firebase    config.WebConfig
	Environment string
}
