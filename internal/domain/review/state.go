package review

import (
	"math/rand"
	"slices"

	"github.com/samber/lo"

	"github.com/remaimber-it/recall/internal/domain/deck"
)

// Stats counts what happened in the current session.
type Stats struct {
	CardsReviewed int  `json:"cards_reviewed"`
	TotalMastered int  `json:"total_mastered"`
	Completed     bool `json:"completed"`
}

// State is the whole review session as a value. Every transition returns a
// new State and leaves the receiver untouched, so a controller can apply the
// result atomically.
type State struct {
	Entries []deck.Entry // deck the queue was seeded from, reused by Restart
	Queue   []Card       // front is the card being presented
	Mode    Mode
	Stats   Stats
}

// Init seeds a fresh session: one unseen card per entry, shuffled. A nil
// shuffle falls back to the global math/rand source.
func Init(entries []deck.Entry, shuffle Shuffler) State {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}

	queue := make([]Card, len(entries))
	for i, e := range entries {
		queue[i] = newCard(i, e)
	}
	shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})

	return State{
		Entries: entries,
		Queue:   queue,
		Mode:    ModeQuestion,
	}
}

// Restart re-seeds the session from the entries already loaded.
func (s State) Restart(shuffle Shuffler) State {
	return Init(s.Entries, shuffle)
}

// Phase derives the session-level state.
func (s State) Phase() Phase {
	switch {
	case s.Stats.Completed:
		return Completed
	case len(s.Queue) == 0:
		return AwaitingContent
	default:
		return InProgress
	}
}

// Current returns the card to present, if any.
func (s State) Current() (Card, bool) {
	if s.Phase() != InProgress {
		return Card{}, false
	}
	return s.Queue[0], true
}

// Reveal shows the answer of the front card. It reports false and returns
// the state unchanged when there is nothing to reveal.
func (s State) Reveal() (State, bool) {
	if s.Phase() != InProgress || s.Mode != ModeQuestion {
		return s, false
	}
	s.Mode = ModeAnswer
	return s, true
}

// Rate applies the learner's rating to the front card and repositions it.
// It reports false and returns the state unchanged when the rating is out of
// range, the answer is not revealed, or the session is not in progress.
func (s State) Rate(r Rating) (State, bool) {
	if !r.IsValid() || s.Phase() != InProgress || s.Mode != ModeAnswer {
		return s, false
	}

	current := s.Queue[0]
	if current.Status == Mastered {
		return s, false
	}
	remaining := slices.Clone(s.Queue[1:])

	updated := current
	updated.LastRating = r
	updated.Status = Learning
	if r == Easy {
		updated.Status = Mastered
	}

	next := s
	next.Mode = ModeQuestion
	next.Stats.CardsReviewed++
	if updated.Status == Mastered {
		next.Stats.TotalMastered++
	}

	if updated.Status == Mastered && lo.EveryBy(remaining, isMastered) {
		next.Stats.Completed = true
		next.Queue = remaining
		return next, true
	}

	queue := slices.Insert(remaining, insertIndex(remaining, r), updated)
	next.Queue = frontUnmastered(queue)
	return next, true
}

// insertIndex picks where a just-rated card goes in the remaining queue.
func insertIndex(remaining []Card, r Rating) int {
	if r == Easy {
		return len(remaining)
	}

	// Let the learner see every unseen card before a repeat.
	for i := len(remaining) - 1; i >= 0; i-- {
		if isUnseen(remaining[i]) {
			return i + 1
		}
	}

	n := len(remaining)
	var idx int
	switch r {
	case Again:
		idx = 0
	case Hard:
		idx = max(n/3, 1)
	case Good:
		idx = max(2*n/3, 2)
	}
	return min(idx, n)
}

// frontUnmastered rotates leading mastered cards to the tail, keeping their
// order, so a mastered card is never presented while others remain.
func frontUnmastered(queue []Card) []Card {
	k := slices.IndexFunc(queue, func(c Card) bool { return !isMastered(c) })
	if k <= 0 {
		return queue
	}
	return append(slices.Clone(queue[k:]), queue[:k]...)
}
