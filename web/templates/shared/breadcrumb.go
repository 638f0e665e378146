package shared

// Breadcrumb is one entry in a navigation trail. An empty URL marks the
// current page, which is rendered as plain text.
type Breadcrumb struct {
	Title string
	URL   string
}
