package review

import "errors"

// ErrInvalidRating is returned by ParseRating, and by request validation in
// the API, for a rating outside 1-4.
var ErrInvalidRating = errors.New("review: invalid rating")
