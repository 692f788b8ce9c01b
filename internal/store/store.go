package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
)

// TextStore keeps raw strings under fixed keys. Values are written and read
// back verbatim; nothing is parsed at this layer.
type TextStore interface {
	GetText(ctx context.Context, key string) (string, error)
	PutText(ctx context.Context, key, value string) error
}
