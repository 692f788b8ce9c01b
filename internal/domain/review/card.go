package review

import "github.com/remaimber-it/recall/internal/domain/deck"

// Card is a deck entry together with its review state for one session.
// ID is the entry's position in the loaded deck and is the card's identity;
// two cards with identical text are still distinct.
type Card struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Status     Status `json:"status"`
	LastRating Rating `json:"last_rating,omitempty"`
}

func newCard(id int, e deck.Entry) Card {
	return Card{
		ID:       id,
		Question: e.Question,
		Answer:   e.Answer,
		Status:   Unseen,
	}
}

// Rated reports whether the card received at least one rating.
func (c Card) Rated() bool {
	return c.LastRating != 0
}

func isMastered(c Card) bool { return c.Status == Mastered }

func isUnseen(c Card) bool { return c.Status == Unseen }
