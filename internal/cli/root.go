package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/recall/internal/domain/review"
	"github.com/remaimber-it/recall/internal/infrastructure/config"
	"github.com/remaimber-it/recall/internal/infrastructure/logging"
	"github.com/remaimber-it/recall/internal/service"
	"github.com/remaimber-it/recall/internal/store"
)

// Version is set at build time with -ldflags "-X ...cli.Version=v1.2.3".
var Version = "dev"

type rootOptions struct {
	dbPath string
	slot   string
	seed   int64
}

type app struct {
	opts   rootOptions
	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds the recall command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "recall",
		Short: "Drill question/answer flashcards from a plain text file",
		Long: `Recall turns a plain text file into a deck of flashcards and quizzes you on it.

Separate cards with a blank line and put "===" between question and answer:

    What is the capital of France?
    ===
    Paris

Rate each answer 1 (again) to 4 (easy). A card rated 4 is mastered; the
session ends once every card is mastered.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.init(cmd)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.dbPath, "db", "", "SQLite database file (default $DB_PATH or recall.db)")
	flags.StringVar(&a.opts.slot, "slot", "", "key the deck text is saved under (default $SLOT_KEY or questions)")
	flags.Int64Var(&a.opts.seed, "seed", 0, "shuffle seed for a reproducible card order")

	root.AddCommand(
		newSaveCmd(a),
		newShowCmd(a),
		newReviewCmd(a),
		newInspectCmd(a),
		newSimulateCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (a *app) init(cmd *cobra.Command) {
	a.cfg = config.Load()
	if a.opts.dbPath != "" {
		a.cfg.DBPath = a.opts.dbPath
	}
	if a.opts.slot != "" {
		a.cfg.SlotKey = a.opts.slot
	}
	if cmd.Flags().Changed("seed") {
		seed := a.opts.seed
		a.cfg.ShuffleSeed = &seed
	}
	a.logger = logging.New(cmd.ErrOrStderr(), a.cfg.LogLevel, a.cfg.IsDev())
}

// openDrill opens the store and loads the saved deck. The returned close
// func releases the database.
func (a *app) openDrill(ctx context.Context) (*service.DrillService, func(), error) {
	db, err := store.NewSQLite(a.cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	drill := service.NewDrillService(db, a.cfg.SlotKey, review.Config{Seed: a.cfg.ShuffleSeed}, a.logger)
	if err := drill.Load(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return drill, func() { db.Close() }, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the recall version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "recall", Version)
		},
	}
}
