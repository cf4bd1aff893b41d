package routes

import "net/http"

// Route represents an HTTP route with method, pattern, and handler.
// Pattern is joined to the enclosing group prefixes; the special pattern
// "/{$}" matches only the exact prefix path.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Description string
	Routes      []Route
	Children    []Group
}
