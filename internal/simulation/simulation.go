// simulation/simulation.go
package simulation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/samber/lo"

	"github.com/remaimber-it/recall/internal/domain/deck"
	"github.com/remaimber-it/recall/internal/domain/review"
	"github.com/remaimber-it/recall/internal/worker"
)

var ErrNoCards = errors.New("simulation: deck has no cards")

const DefaultMaxSteps = 10000

// Learner picks the rating a simulated learner gives the revealed card.
type Learner func(c review.Card, rng *rand.Rand) review.Rating

// RandomLearner rates uniformly at random.
func RandomLearner(_ review.Card, rng *rand.Rand) review.Rating {
	return review.Rating(rng.Intn(4) + 1)
}

// ImprovingLearner forgets a card the first time and rates it one step
// better on every later view, so each card takes exactly four reviews.
func ImprovingLearner(c review.Card, _ *rand.Rand) review.Rating {
	if !c.Rated() {
		return review.Again
	}
	return min(c.LastRating+1, review.Easy)
}

// LearnerByName resolves the --learner flag.
func LearnerByName(name string) (Learner, error) {
	switch name {
	case "random", "":
		return RandomLearner, nil
	case "improving":
		return ImprovingLearner, nil
	default:
		return nil, fmt.Errorf("unknown learner %q (want random or improving)", name)
	}
}

type Options struct {
	Runs     int
	Workers  int
	Seed     int64 // run i uses Seed+i
	Learner  Learner
	MaxSteps int // 0 = DefaultMaxSteps
}

// Result is the outcome of one simulated session.
type Result struct {
	Run       int
	Reviews   int
	Completed bool
}

type Summary struct {
	Runs        int
	Completed   int
	MinReviews  int
	MaxReviews  int
	MeanReviews float64
	Results     []Result // indexed by run
}

// Run plays opts.Runs independent sessions over entries on a worker pool.
func Run(ctx context.Context, entries []deck.Entry, opts Options) (Summary, error) {
	if len(entries) == 0 {
		return Summary{}, ErrNoCards
	}
	if opts.Runs < 1 {
		opts.Runs = 1
	}
	if opts.Learner == nil {
		opts.Learner = RandomLearner
	}
	if opts.MaxSteps <= 0 {
		opts.MaxSteps = DefaultMaxSteps
	}

	pool := worker.NewPool[Result](opts.Workers, opts.Runs)
	go func() {
		defer pool.Close()
		for i := 0; i < opts.Runs; i++ {
			pool.Submit(strconv.Itoa(i), func() Result {
				return playSession(ctx, entries, i, opts)
			})
		}
	}()

	results := make([]Result, opts.Runs)
	for res := range pool.Results() {
		i, _ := strconv.Atoi(res.JobID)
		results[i] = res.Output
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	return summarize(results), nil
}

func playSession(ctx context.Context, entries []deck.Entry, run int, opts Options) Result {
	rng := rand.New(rand.NewSource(opts.Seed + int64(run)))
	s := review.Init(entries, rng.Shuffle)

	for step := 0; step < opts.MaxSteps && s.Phase() == review.InProgress; step++ {
		if ctx.Err() != nil {
			break
		}
		s, _ = s.Reveal()
		card, _ := s.Current()
		s, _ = s.Rate(opts.Learner(card, rng))
	}

	return Result{
		Run:       run,
		Reviews:   s.Stats.CardsReviewed,
		Completed: s.Stats.Completed,
	}
}

func summarize(results []Result) Summary {
	reviews := lo.Map(results, func(r Result, _ int) int { return r.Reviews })
	return Summary{
		Runs:        len(results),
		Completed:   lo.CountBy(results, func(r Result) bool { return r.Completed }),
		MinReviews:  lo.Min(reviews),
		MaxReviews:  lo.Max(reviews),
		MeanReviews: float64(lo.Sum(reviews)) / float64(len(reviews)),
		Results:     results,
	}
}
