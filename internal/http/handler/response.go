package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the uniform JSON wrapper returned by every API call.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	ID      int64  `json:"id,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// WriteFailure reports a failed operation. Failures are envelope-level, not
// HTTP error statuses: validation errors, not-found and store failures all
// go out as 200 with success=false.
func WriteFailure(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: false, Message: message})
}
