package api

import (
	"net/http"

	"github.com/samber/lo"

	"github.com/remaimber-it/recall/internal/domain/deck"
	"github.com/remaimber-it/recall/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type SaveDeckRequest struct {
	Text *string `json:"text"`
}

func (r *SaveDeckRequest) Validate() error {
	if r.Text == nil {
		return errTextRequired
	}
	return nil
}

type DeckEntryResponse struct {
	Number    int    `json:"number"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	HasAnswer bool   `json:"has_answer"`
}

type DeckResponse struct {
	Text    string              `json:"text"`
	Entries []DeckEntryResponse `json:"entries"`
}

type SaveDeckResponse struct {
	Deck    DeckResponse     `json:"deck"`
	Session service.Snapshot `json:"session"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getDeck returns the saved text and the entries parsed from it.
// @Summary      Get the deck
// @Description  Returns the raw saved text and its parsed entries, numbered from 1.
// @Tags         Deck
// @Produce      json
// @Success      200  {object}  DeckResponse
// @Router       /deck [get]
func (h *Handler) getDeck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.deckResponse())
}

// saveDeck replaces the deck text and starts a new session.
// @Summary      Save the deck
// @Description  Persists the text verbatim, re-parses it and re-seeds the review session.
// @Tags         Deck
// @Accept       json
// @Produce      json
// @Param        body  body      SaveDeckRequest  true  "Deck text"
// @Success      200   {object}  SaveDeckResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /deck [put]
func (h *Handler) saveDeck(w http.ResponseWriter, r *http.Request) {
	var req SaveDeckRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	snap, err := h.drill.Save(r.Context(), *req.Text)
	if h.handleServiceError(w, r, err, "save deck") {
		return
	}

	respondJSON(w, http.StatusOK, SaveDeckResponse{
		Deck:    h.deckResponse(),
		Session: snap,
	})
}

func (h *Handler) deckResponse() DeckResponse {
	entries := lo.Map(h.drill.Entries(), func(e deck.Entry, i int) DeckEntryResponse {
		return DeckEntryResponse{
			Number:    i + 1,
			Question:  e.Question,
			Answer:    e.Answer,
			HasAnswer: e.HasAnswer(),
		}
	})
	return DeckResponse{
		Text:    h.drill.Source(),
		Entries: entries,
	}
}
