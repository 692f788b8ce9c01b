package cli

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/recall/internal/service"
	"github.com/remaimber-it/recall/internal/simulation"
)

func newSimulateCmd(a *app) *cobra.Command {
	var (
		runs     int
		workers  int
		learner  string
		maxSteps int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Estimate how many reviews the saved deck takes with a simulated learner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := simulation.LearnerByName(learner)
			if err != nil {
				return err
			}

			drill, closeFn, err := a.openDrill(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			seed := rand.Int63()
			if a.cfg.ShuffleSeed != nil {
				seed = *a.cfg.ShuffleSeed
			}

			sum, err := simulation.Run(cmd.Context(), drill.Entries(), simulation.Options{
				Runs:     runs,
				Workers:  workers,
				Seed:     seed,
				Learner:  l,
				MaxSteps: maxSteps,
			})
			out := cmd.OutOrStdout()
			if errors.Is(err, simulation.ErrNoCards) {
				fmt.Fprintln(out, service.AwaitingContentMessage)
				return nil
			}
			if err != nil {
				return err
			}

			a.logger.Debug("simulation finished", "seed", seed, "runs", sum.Runs, "learner", learner)
			fmt.Fprintf(out, "cards:     %d\n", len(drill.Entries()))
			fmt.Fprintf(out, "runs:      %d (%d completed)\n", sum.Runs, sum.Completed)
			fmt.Fprintf(out, "reviews:   min %d, mean %.1f, max %d\n", sum.MinReviews, sum.MeanReviews, sum.MaxReviews)
			return nil
		},
	}

	cmd.Flags().IntVarP(&runs, "runs", "n", 100, "number of simulated sessions")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "sessions simulated in parallel")
	cmd.Flags().StringVar(&learner, "learner", "random", "rating policy: random or improving")
	cmd.Flags().IntVar(&maxSteps, "max-steps", simulation.DefaultMaxSteps, "reviews after which a session is abandoned")
	return cmd
}
