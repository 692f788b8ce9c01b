package review

import "math/rand"

// Shuffler permutes n elements through swap. rand.Shuffle and
// (*rand.Rand).Shuffle both satisfy it.
type Shuffler func(n int, swap func(i, j int))

// KeepOrder leaves the deck in authoring order.
func KeepOrder(int, func(i, j int)) {}

// Config holds optional knobs for seeding a session.
type Config struct {
	Seed *int64 // nil = non-deterministic shuffle
}

// DefaultConfig returns a config with an unseeded shuffle.
func DefaultConfig() Config {
	return Config{Seed: nil}
}

// Shuffler returns the shuffle to use for Init and Restart. A seeded config
// yields the same permutation sequence on every call to Shuffler.
func (c Config) Shuffler() Shuffler {
	if c.Seed == nil {
		return rand.Shuffle
	}
	return rand.New(rand.NewSource(*c.Seed)).Shuffle
}
