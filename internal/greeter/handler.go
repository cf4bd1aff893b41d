package greeter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/JaimeStill/starlight/pkg/handlers"
	"github.com/JaimeStill/starlight/pkg/routes"
)

// Handler binds the greeting endpoints. It holds no per-request state.
type Handler struct {
	logger      *slog.Logger
	maxBodySize int64
}

// NewHandler creates a greeting handler. maxBodySize caps the echo body in
// bytes; zero or less means unlimited.
func NewHandler(logger *slog.Logger, maxBodySize int64) *Handler {
	return &Handler{
		logger:      logger,
		maxBodySize: maxBodySize,
	}
}

// Routes returns the greeting route group. Method restrictions are enforced
// by the route system, not by the handlers.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "",
		Description: "Greeting endpoints",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{$}", Handler: h.Root},
			{Method: "POST", Pattern: "/echo", Handler: h.Echo},
			{Method: "GET", Pattern: "/hey", Handler: h.Hey},
		},
	}
}

// Root responds with the root greeting.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	handlers.RespondText(w, http.StatusOK, RootGreeting)
}

// Hey responds with the hey greeting.
func (h *Handler) Hey(w http.ResponseWriter, r *http.Request) {
	handlers.RespondText(w, http.StatusOK, HeyGreeting)
}

// Echo responds with the request body unchanged. The request Content-Type is
// mirrored on the response unless it is one a browser would render as active
// markup, in which case the body is returned as plain text.
func (h *Handler) Echo(w http.ResponseWriter, r *http.Request) {
	body := r.Body
	if h.maxBodySize > 0 {
		body = http.MaxBytesReader(w, body, h.maxBodySize)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			// The unread remainder of the body makes the connection unusable.
			w.Header().Set("Connection", "close")
			handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge,
				fmt.Errorf("request body exceeds %d bytes", maxErr.Limit))
			return
		}
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("read request body: %w", err))
		return
	}

	w.Header().Set("X-Content-Type-Options", "nosniff")
	handlers.RespondBytes(w, http.StatusOK, echoContentType(r.Header.Get("Content-Type")), data)
}

// markupTypes are media types that browsers execute or render as documents.
var markupTypes = map[string]bool{
	"text/html":              true,
	"application/xhtml+xml":  true,
	"image/svg+xml":          true,
	"text/xml":               true,
	"application/xml":        true,
	"text/javascript":        true,
	"application/javascript": true,
}

// echoContentType returns the media type to echo back. Unparseable or markup
// types fall back to plain text; an empty result means plain text too.
func echoContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || markupTypes[mediaType] {
		return handlers.ContentTypeText
	}
	return contentType
}
