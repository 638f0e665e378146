package handlers

import "alabaztrum_echo/web/templates/shared"

// HomeBreadcrumb is the root of every trail
var HomeBreadcrumb = shared.Breadcrumb{Title: "Home", URL: "/"}

// Crumb builds a trail entry. Pass an empty path for the current page.
func Crumb(label, path string) shared.Breadcrumb {
	return shared.Breadcrumb{Title: label, URL: path}
}

// BuildBreadcrumbs returns a new trail anchored at Home followed by items in
// the given order. Duplicates are kept as given.
func BuildBreadcrumbs(items ...shared.Breadcrumb) []shared.Breadcrumb {
	trail := make([]shared.Breadcrumb, 0, len(items)+1)
	trail = append(trail, HomeBreadcrumb)
	return append(trail, items...)
}
