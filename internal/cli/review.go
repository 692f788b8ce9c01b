package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/remaimber-it/recall/internal/tui"
)

func newReviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Start an interactive review of the saved deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			drill, closeFn, err := a.openDrill(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			return tui.Run(drill,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
		},
	}
}
