package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// MessageResponse is returned on successful signup and unregister requests.
type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse is returned when a request fails.
type DetailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}
