package form

import "net/url"

// Client-side routes the form navigates between.
const (
	// RouteRoot is the record list.
	RouteRoot = "/"
	// RouteCreate opens an empty form.
	RouteCreate = "/create"
)

// RecordRoute returns the route that opens the form for id.
func RecordRoute(id string) string {
	return "/record/" + url.PathEscape(id)
}
