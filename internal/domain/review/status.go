package review

import (
	"encoding"
	"fmt"
)

// Status is the per-session learning state of a card.
type Status int

const (
	Unseen   Status = iota // Not rated yet in this session.
	Learning               // Rated 1-3 at least once, never 4.
	Mastered               // Rated 4. Terminal for the session.
)

var statusNames = [...]string{Unseen: "unseen", Learning: "learning", Mastered: "mastered"}

var (
	_ fmt.Stringer           = Status(0)
	_ encoding.TextMarshaler = Status(0)
)

func (s Status) String() string {
	if s >= Unseen && s <= Mastered {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler so JSON carries the name.
func (s Status) MarshalText() ([]byte, error) {
	if s < Unseen || s > Mastered {
		return nil, fmt.Errorf("review: invalid status: %d", int(s))
	}
	return []byte(statusNames[s]), nil
}

// Mode is what the learner currently sees for the front card.
type Mode int

const (
	ModeQuestion Mode = iota // Question only; answer hidden.
	ModeAnswer               // Answer revealed, waiting for a rating.
)

func (m Mode) String() string {
	if m == ModeAnswer {
		return "answer-rating"
	}
	return "question"
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Phase is the session-level state.
type Phase int

const (
	AwaitingContent Phase = iota // Nothing loaded.
	InProgress
	Completed // Every card mastered; only Restart leaves this phase.
)

var phaseNames = [...]string{AwaitingContent: "awaiting-content", InProgress: "in-progress", Completed: "completed"}

func (p Phase) String() string {
	if p >= AwaitingContent && p <= Completed {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
