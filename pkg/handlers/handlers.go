// Package handlers provides HTTP response utilities.
// These stateless functions standardize response formatting across handlers.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ContentTypeText is the media type used for plain text responses.
const ContentTypeText = "text/plain; charset=utf-8"

// RespondText writes body with the given status code as plain text.
func RespondText(w http.ResponseWriter, status int, body string) {
	RespondBytes(w, status, ContentTypeText, []byte(body))
}

// RespondBytes writes body verbatim with the given status code and content type.
// An empty contentType falls back to ContentTypeText.
func RespondBytes(w http.ResponseWriter, status int, contentType string, body []byte) {
	if contentType == "" {
		contentType = ContentTypeText
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	w.Write(body)
}

// RespondError logs the error and writes a JSON error response.
// The response body contains {"error": "<error message>"}.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("handler error", "error", err, "status", status)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
