// Package templates embeds the HTML layouts, partials and pages rendered by
// the server.
package templates

import "embed"

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate -path shared

//go:embed layouts partials pages
var FS embed.FS
