package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/starlight/pkg/handlers"
)

func TestRespondText(t *testing.T) {
	w := httptest.NewRecorder()

	handlers.RespondText(w, http.StatusOK, "Hello world!")

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); ct != handlers.ContentTypeText {
		t.Errorf("Content-Type = %q, want %q", ct, handlers.ContentTypeText)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "Hello world!" {
		t.Errorf("body = %q, want %q", string(body), "Hello world!")
	}
}

func TestRespondBytes(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		wantType    string
		body        []byte
	}{
		{"explicit type", "application/octet-stream", "application/octet-stream", []byte{0x00, 0x01}},
		{"default type", "", handlers.ContentTypeText, []byte("plain")},
		{"empty body", "", handlers.ContentTypeText, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			handlers.RespondBytes(w, http.StatusOK, tt.contentType, tt.body)

			if ct := w.Header().Get("Content-Type"); ct != tt.wantType {
				t.Errorf("Content-Type = %q, want %q", ct, tt.wantType)
			}
			if w.Body.String() != string(tt.body) {
				t.Errorf("body = %q, want %q", w.Body.String(), string(tt.body))
			}
		})
	}
}

func TestRespondError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := httptest.NewRecorder()

	handlers.RespondError(w, logger, http.StatusBadRequest, errors.New("bad input"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "bad input" {
		t.Errorf("error = %q, want %q", body["error"], "bad input")
	}
}
