package utils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
)

func TestResponseNotFound_Body(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	ResponseNotFound(w, "Movie not found")

	if w.Code != 404 {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["error"] != "Movie not found" {
		t.Errorf("expected error 'Movie not found', got %q", body["error"])
	}
	if _, ok := body["message"]; ok {
		t.Error("message should be omitted when empty")
	}
}

func TestResponseInternalError_IncludesUnderlyingError(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	ResponseInternalError(w, "Failed to fetch movies", errors.New("connection refused"))

	if w.Code != 500 {
		t.Fatalf("expected status 500, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["error"] != "Failed to fetch movies" {
		t.Errorf("unexpected error field: %q", body["error"])
	}
	if body["message"] != "connection refused" {
		t.Errorf("unexpected message field: %q", body["message"])
	}
}
