// internal/api/handler.go
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/remaimber-it/recall/internal/service"
)

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	drill  *service.DrillService
	logger *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(drill *service.DrillService, logger *slog.Logger) *Handler {
	return &Handler{
		drill:  drill,
		logger: logger,
	}
}

// validator is implemented by request bodies that check their own fields.
type validator interface {
	Validate() error
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into v and runs its validation.
// Returns false if a 400 was written (caller should return).
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	if val, ok := v.(validator); ok {
		if err := val.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return false
		}
	}
	return true
}

// handleServiceError logs err and writes a 500. Returns true if an error was
// handled (caller should return).
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, op string) bool {
	if err == nil {
		return false
	}
	GetLogger(r.Context()).Error("service error", "error", err, "op", op)
	http.Error(w, "internal error", http.StatusInternalServerError)
	return true
}
