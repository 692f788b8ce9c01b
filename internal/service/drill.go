// internal/service/drill.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"github.com/remaimber-it/recall/internal/domain/deck"
	"github.com/remaimber-it/recall/internal/domain/review"
	"github.com/remaimber-it/recall/internal/id"
	"github.com/remaimber-it/recall/internal/store"
)

// AwaitingContentMessage is shown when the saved text holds no entries.
const AwaitingContentMessage = "No questions added yet."

// CardView is the presented card. Answer is empty until revealed.
type CardView struct {
	ID         int           `json:"id"`
	Question   string        `json:"question"`
	Answer     string        `json:"answer,omitempty"`
	Status     review.Status `json:"status" swaggertype:"string" enums:"unseen,learning,mastered"`
	LastRating review.Rating `json:"last_rating,omitempty" swaggertype:"integer" enums:"1,2,3,4"`
}

// Snapshot is a read-only copy of the session taken under the lock.
type Snapshot struct {
	SessionID string       `json:"session_id"`
	Phase     review.Phase `json:"phase" swaggertype:"string" enums:"awaiting-content,in-progress,completed"`
	Mode      review.Mode  `json:"mode" swaggertype:"string" enums:"question,answer-rating"`
	Current   *CardView    `json:"current,omitempty"`
	Stats     review.Stats `json:"stats"`
	Remaining int          `json:"remaining"` // cards not yet mastered
	Total     int          `json:"total"`
	Message   string       `json:"message,omitempty"`
}

// DrillService owns the one review session of the process. All scheduler
// transitions go through its mutex; the store only ever sees the raw text.
type DrillService struct {
	store   store.TextStore
	slot    string
	shuffle review.Shuffler
	logger  *slog.Logger

	mu        sync.Mutex
	source    string
	entries   []deck.Entry
	state     review.State
	sessionID string
}

// NewDrillService creates a DrillService with an empty deck. Call Load to
// pick up previously saved text.
func NewDrillService(s store.TextStore, slot string, cfg review.Config, logger *slog.Logger) *DrillService {
	ds := &DrillService{
		store:   s,
		slot:    slot,
		shuffle: cfg.Shuffler(),
		logger:  logger,
		entries: []deck.Entry{},
	}
	ds.reseed()
	return ds
}

// Load reads the saved text and rebuilds the session from it. A missing slot
// is an empty deck, not an error.
func (ds *DrillService) Load(ctx context.Context) error {
	text, err := ds.store.GetText(ctx, ds.slot)
	if errors.Is(err, store.ErrNotFound) {
		text = ""
	} else if err != nil {
		return fmt.Errorf("load deck: %w", err)
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.setSource(text)

	ds.logger.Info("deck loaded",
		"slot", ds.slot,
		"entries", len(ds.entries),
		"session_id", ds.sessionID,
	)
	return nil
}

// Save persists text verbatim, then re-parses it and starts a new session.
// On a store error the current session is left as it was.
func (ds *DrillService) Save(ctx context.Context, text string) (Snapshot, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	if err := ds.store.PutText(ctx, ds.slot, text); err != nil {
		return ds.snapshot(), fmt.Errorf("save deck: %w", err)
	}
	ds.setSource(text)

	ds.logger.Info("deck saved",
		"slot", ds.slot,
		"entries", len(ds.entries),
		"session_id", ds.sessionID,
	)
	return ds.snapshot(), nil
}

// Source returns the raw text the deck was parsed from.
func (ds *DrillService) Source() string {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return ds.source
}

// Entries returns a copy of the parsed deck in authoring order.
func (ds *DrillService) Entries() []deck.Entry {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	out := make([]deck.Entry, len(ds.entries))
	copy(out, ds.entries)
	return out
}

// Snapshot returns the current session state. The card answer is left out
// until it has been revealed.
func (ds *DrillService) Snapshot() Snapshot {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return ds.snapshot()
}

// Reveal shows the answer of the current card.
func (ds *DrillService) Reveal() (Snapshot, bool) {
	return ds.transition("reveal", func(s review.State) (review.State, bool) {
		return s.Reveal()
	})
}

// Rate applies r to the current card.
func (ds *DrillService) Rate(r review.Rating) (Snapshot, bool) {
	return ds.transition("rate", func(s review.State) (review.State, bool) {
		return s.Rate(r)
	})
}

// Key routes a key press through the keyboard mapping.
func (ds *DrillService) Key(key string) (Snapshot, bool) {
	return ds.transition("key", func(s review.State) (review.State, bool) {
		return s.Apply(review.HandleKey(key, s))
	})
}

// Restart re-seeds the session from the loaded deck.
func (ds *DrillService) Restart() Snapshot {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	ds.reseed()
	ds.logger.Info("session restarted", "session_id", ds.sessionID, "cards", len(ds.state.Queue))
	return ds.snapshot()
}

func (ds *DrillService) transition(op string, fn func(review.State) (review.State, bool)) (Snapshot, bool) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	next, ok := fn(ds.state)
	if !ok {
		ds.logger.Debug("operation rejected",
			"op", op,
			"session_id", ds.sessionID,
			"phase", ds.state.Phase().String(),
			"mode", ds.state.Mode.String(),
		)
		return ds.snapshot(), false
	}

	wasCompleted := ds.state.Stats.Completed
	ds.state = next
	if next.Stats.Completed && !wasCompleted {
		ds.logger.Info("session completed",
			"session_id", ds.sessionID,
			"cards_reviewed", next.Stats.CardsReviewed,
			"total_mastered", next.Stats.TotalMastered,
		)
	}
	return ds.snapshot(), true
}

// setSource must be called with mu held.
func (ds *DrillService) setSource(text string) {
	ds.source = text
	ds.entries = deck.Parse(text)
	ds.reseed()
}

// reseed must be called with mu held.
func (ds *DrillService) reseed() {
	ds.state = review.Init(ds.entries, ds.shuffle)
	ds.sessionID = id.GenerateID()
}

func (ds *DrillService) snapshot() Snapshot {
	s := ds.state
	snap := Snapshot{
		SessionID: ds.sessionID,
		Phase:     s.Phase(),
		Mode:      s.Mode,
		Stats:     s.Stats,
		Remaining: lo.CountBy(s.Queue, func(c review.Card) bool { return c.Status != review.Mastered }),
		Total:     len(s.Entries),
	}

	if snap.Phase == review.AwaitingContent {
		snap.Message = AwaitingContentMessage
	}

	if card, ok := s.Current(); ok {
		view := CardView{
			ID:         card.ID,
			Question:   card.Question,
			Status:     card.Status,
			LastRating: card.LastRating,
		}
		if s.Mode == review.ModeAnswer {
			view.Answer = card.Answer
		}
		snap.Current = &view
	}
	return snap
}
