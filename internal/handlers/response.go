package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteJSON writes data as a compact JSON body with no trailing newline
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	body, err := json.Marshal(data)
	if err != nil {
		logger.Error("failed to encode JSON response", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(body); err != nil {
		logger.Warn("failed to write JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("failed to encode error response", "error", err)
	}
}
