// internal/api/router.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /health", h.health)

	// Deck
	mux.HandleFunc("GET /deck", h.getDeck)
	mux.HandleFunc("PUT /deck", h.saveDeck)

	// Session
	mux.HandleFunc("GET /session", h.getSession)
	mux.HandleFunc("POST /session/reveal", h.reveal)
	mux.HandleFunc("POST /session/rate", h.rate)
	mux.HandleFunc("POST /session/restart", h.restart)
	mux.HandleFunc("POST /session/keys", h.pressKey)
}

// health reports that the server is up.
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
