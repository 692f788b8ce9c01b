package review

import (
	"fmt"
	"strconv"
	"strings"
)

// Rating is the learner's self-assessment of a card, from 1 (forgot) to 4 (easy).
// The zero value means the card has not been rated.
type Rating int

const (
	Again Rating = iota + 1 // Did not recall.
	Hard                    // Recalled with significant difficulty.
	Good                    // Recalled with some effort.
	Easy                    // Recalled effortlessly; masters the card.
)

var ratingNames = [...]string{Again: "again", Hard: "hard", Good: "good", Easy: "easy"}

// IsValid reports whether r is one of Again through Easy.
func (r Rating) IsValid() bool {
	return r >= Again && r <= Easy
}

func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// ParseRating accepts either the ordinal ("1".."4") or the name ("good").
func ParseRating(s string) (Rating, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if r := Rating(n); r.IsValid() {
			return r, nil
		}
		return 0, fmt.Errorf("%w: %d", ErrInvalidRating, n)
	}
	for r := Again; r <= Easy; r++ {
		if ratingNames[r] == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRating, s)
}
