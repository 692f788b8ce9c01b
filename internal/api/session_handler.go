package api

import (
	"errors"
	"net/http"

	"github.com/remaimber-it/recall/internal/domain/review"
	"github.com/remaimber-it/recall/internal/service"
)

var (
	errTextRequired   = errors.New("text is required")
	errRatingRequired = errors.New("rating is required")
	errKeyRequired    = errors.New("key is required")
)

// ── Request / Response types ────────────────────────────────────────────────

type RateRequest struct {
	Rating review.Rating `json:"rating" swaggertype:"integer" enums:"1,2,3,4" example:"3"`
}

func (r *RateRequest) Validate() error {
	if r.Rating == 0 {
		return errRatingRequired
	}
	if !r.Rating.IsValid() {
		return review.ErrInvalidRating
	}
	return nil
}

type KeyRequest struct {
	Key string `json:"key" example:"space"`
}

func (r *KeyRequest) Validate() error {
	if r.Key == "" {
		return errKeyRequired
	}
	return nil
}

// MutationResponse reports whether the operation changed the session and
// the session as it is afterwards.
type MutationResponse struct {
	Applied bool             `json:"applied"`
	Session service.Snapshot `json:"session"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getSession returns the current session snapshot.
// @Summary      Get the session
// @Description  The current card's answer is omitted until it is revealed.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  service.Snapshot
// @Router       /session [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.drill.Snapshot())
}

// reveal shows the answer of the current card.
// @Summary      Reveal the answer
// @Tags         Session
// @Produce      json
// @Success      200  {object}  MutationResponse
// @Router       /session/reveal [post]
func (h *Handler) reveal(w http.ResponseWriter, r *http.Request) {
	snap, applied := h.drill.Reveal()
	respondJSON(w, http.StatusOK, MutationResponse{Applied: applied, Session: snap})
}

// rate applies a 1-4 rating to the revealed card.
// @Summary      Rate the current card
// @Description  1 again, 2 hard, 3 good, 4 easy. Rejected (applied=false) unless the answer is revealed.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      RateRequest  true  "Rating"
// @Success      200   {object}  MutationResponse
// @Failure      400   {object}  map[string]string
// @Router       /session/rate [post]
func (h *Handler) rate(w http.ResponseWriter, r *http.Request) {
	var req RateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	snap, applied := h.drill.Rate(req.Rating)
	respondJSON(w, http.StatusOK, MutationResponse{Applied: applied, Session: snap})
}

// restart re-seeds the session from the loaded deck.
// @Summary      Restart the session
// @Tags         Session
// @Produce      json
// @Success      200  {object}  MutationResponse
// @Router       /session/restart [post]
func (h *Handler) restart(w http.ResponseWriter, r *http.Request) {
	snap := h.drill.Restart()
	respondJSON(w, http.StatusOK, MutationResponse{Applied: true, Session: snap})
}

// pressKey routes a key press through the keyboard mapping.
// @Summary      Press a key
// @Description  Space reveals; 1-4 rate while the answer is shown. Ignored once the session is completed.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      KeyRequest  true  "Key"
// @Success      200   {object}  MutationResponse
// @Failure      400   {object}  map[string]string
// @Router       /session/keys [post]
func (h *Handler) pressKey(w http.ResponseWriter, r *http.Request) {
	var req KeyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	snap, applied := h.drill.Key(req.Key)
	respondJSON(w, http.StatusOK, MutationResponse{Applied: applied, Session: snap})
}
