package middleware

import (
	"net/http"
	"strings"
)

// TrimSlash returns middleware that redirects requests with trailing slashes
// to their canonical form without the slash. The root path "/" is preserved.
// GET and HEAD receive 301; other methods receive 308 so the method and body
// survive the redirect. Leading slashes and backslashes collapse to a single
// slash so the Location is always a local path, never a scheme-relative URL.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if len(path) <= 1 || !strings.HasSuffix(path, "/") {
				next.ServeHTTP(w, r)
				return
			}

			target := *r.URL
			target.Path = "/" + strings.TrimLeft(strings.TrimRight(path, "/"), "/\\")
			target.RawPath = ""

			status := http.StatusMovedPermanently
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				status = http.StatusPermanentRedirect
			}
			http.Redirect(w, r, target.RequestURI(), status)
		})
	}
}
