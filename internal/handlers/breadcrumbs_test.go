package handlers

import (
	"testing"

	"alabaztrum_echo/web/templates/shared"
)

func TestBuildBreadcrumbs(t *testing.T) {
	tests := []struct {
		name  string
		items []shared.Breadcrumb
	}{
		{name: "empty", items: nil},
		{name: "single", items: []shared.Breadcrumb{Crumb("Fragancias", "")}},
		{
			name: "nested admin page",
			items: []shared.Breadcrumb{
				Crumb("Admin", "/admin"),
				Crumb("Productos", "/admin/products"),
				Crumb("Editar producto", ""),
			},
		},
		{
			name: "duplicates and home repeated are kept",
			items: []shared.Breadcrumb{
				Crumb("Home", "/"),
				Crumb("Ayuda", "/ayuda"),
				Crumb("Ayuda", "/ayuda"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trail := BuildBreadcrumbs(tt.items...)

			if len(trail) != len(tt.items)+1 {
				t.Fatalf("len(BuildBreadcrumbs()) = %d; want %d", len(trail), len(tt.items)+1)
			}
			if trail[0] != (shared.Breadcrumb{Title: "Home", URL: "/"}) {
				t.Errorf("trail[0] = %+v; want Home root", trail[0])
			}
			for i, item := range tt.items {
				if trail[i+1] != item {
					t.Errorf("trail[%d] = %+v; want %+v", i+1, trail[i+1], item)
				}
			}
		})
	}
}

func TestBuildBreadcrumbsDoesNotAliasInput(t *testing.T) {
	items := []shared.Breadcrumb{Crumb("Decants", "/decants")}
	trail := BuildBreadcrumbs(items...)
	trail[1].Title = "changed"

	if items[0].Title != "Decants" {
		t.Errorf("input was modified through the returned trail: %+v", items[0])
	}
}
