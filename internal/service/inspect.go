package service

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/samber/lo"

	"github.com/remaimber-it/recall/internal/domain/deck"
	"github.com/remaimber-it/recall/internal/worker"
)

// FileReport summarizes one parsed deck file.
type FileReport struct {
	Path         string
	Entries      int
	QuestionOnly []int // 1-based numbers of entries without an answer
	Err          error
}

// InspectFiles parses every path on a bounded worker pool. Reports come back
// in the order of paths; a read failure is recorded on its report and does
// not stop the others.
func InspectFiles(ctx context.Context, paths []string, workers int) []FileReport {
	pool := worker.NewPool[FileReport](workers, len(paths))

	go func() {
		defer pool.Close()
		for i, path := range paths {
			pool.Submit(strconv.Itoa(i), func() FileReport {
				return inspectFile(ctx, path)
			})
		}
	}()

	reports := make([]FileReport, len(paths))
	for res := range pool.Results() {
		i, _ := strconv.Atoi(res.JobID)
		reports[i] = res.Output
	}
	return reports
}

func inspectFile(ctx context.Context, path string) FileReport {
	report := FileReport{Path: path}
	if err := ctx.Err(); err != nil {
		report.Err = err
		return report
	}

	data, err := os.ReadFile(path)
	if err != nil {
		report.Err = fmt.Errorf("read %s: %w", path, err)
		return report
	}

	entries := deck.Parse(string(data))
	report.Entries = len(entries)
	report.QuestionOnly = lo.FilterMap(entries, func(e deck.Entry, i int) (int, bool) {
		return i + 1, !e.HasAnswer()
	})
	return report
}
