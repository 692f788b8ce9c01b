package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/remaimber-it/recall/internal/domain/deck"
	"github.com/remaimber-it/recall/internal/service"
)

func newSaveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save FILE",
		Short: "Save a deck text file (use - for stdin), replacing the current deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readSource(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			drill, closeFn, err := a.openDrill(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			snap, err := drill.Save(cmd.Context(), text)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if snap.Total == 0 {
				fmt.Fprintln(out, service.AwaitingContentMessage)
				return nil
			}
			noun := "questions"
			if snap.Total == 1 {
				noun = "question"
			}
			fmt.Fprintf(out, "Saved %d %s.\n", snap.Total, noun)
			for i, e := range drill.Entries() {
				if !e.HasAnswer() {
					fmt.Fprintf(out, "  Question %d has no answer.\n", i+1)
				}
			}
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List the questions in the saved deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			drill, closeFn, err := a.openDrill(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			printDeck(cmd.OutOrStdout(), drill.Entries())
			return nil
		},
	}
}

func newInspectCmd(a *app) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Parse deck files without saving them and report what was found",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := service.InspectFiles(cmd.Context(), args, workers)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FILE\tQUESTIONS\tWITHOUT ANSWER")

			failed := 0
			for _, r := range reports {
				if r.Err != nil {
					failed++
					fmt.Fprintf(w, "%s\t-\t%v\n", r.Path, r.Err)
					continue
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", r.Path, r.Entries, formatNumbers(r.QuestionOnly))
			}
			w.Flush()

			if failed > 0 {
				a.logger.Warn("inspect finished with errors", "failed", failed, "files", len(reports))
				return fmt.Errorf("%d of %d files could not be read", failed, len(reports))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "number of files parsed in parallel")
	return cmd
}

func printDeck(out io.Writer, entries []deck.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, service.AwaitingContentMessage)
		return
	}
	for i, e := range entries {
		fmt.Fprintf(out, "Question %d: %s\n", i+1, e.Question)
		fmt.Fprintf(out, "Answer: %s\n", e.Answer)
		fmt.Fprintln(out)
	}
}

func readSource(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func formatNumbers(nums []int) string {
	if len(nums) == 0 {
		return "-"
	}
	return strings.Join(lo.Map(nums, func(n int, _ int) string {
		return strconv.Itoa(n)
	}), ",")
}
