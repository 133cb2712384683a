package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jaekwang-park/tasklist/internal/http/handler"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	handler.WriteJSON(w, http.StatusOK, handler.Envelope{Success: true, Message: "Task added successfully", ID: 7})

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var result map[string]any
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result["success"] != true {
		t.Error("expected success=true")
	}
	if result["id"] != float64(7) {
		t.Errorf("expected id=7, got %v", result["id"])
	}
	if _, present := result["data"]; present {
		t.Error("expected empty data field to be omitted")
	}
}

func TestWriteFailure(t *testing.T) {
	w := httptest.NewRecorder()

	handler.WriteFailure(w, "Task not found")

	// Failures ride the envelope at 200, never an HTTP error status
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var result map[string]any
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result["success"] != false {
		t.Error("expected success=false")
	}
	if result["message"] != "Task not found" {
		t.Errorf("expected message='Task not found', got %v", result["message"])
	}
	if _, present := result["id"]; present {
		t.Error("expected zero id to be omitted")
	}
}
