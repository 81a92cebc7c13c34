package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorBody is the error envelope every failure uses on the wire.
type errorBody struct {
	Error string `json:"error"`
}

// JSON writes payload as a JSON body with the given status code.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Error writing response body", "error", err)
	}
}

// Error writes {"error": msg} with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, errorBody{Error: msg})
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
