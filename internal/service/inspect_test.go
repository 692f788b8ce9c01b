package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/recall/internal/service"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestInspectFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "Q1 === A1\n\nQ2\n\nQ3 === A3\n\nQ4")
	b := writeFile(t, dir, "b.txt", "   \n")
	missing := filepath.Join(dir, "missing.txt")
	c := writeFile(t, dir, "c.txt", "Only\n===\nOne")

	reports := service.InspectFiles(context.Background(), []string{a, b, missing, c}, 2)

	require.Len(t, reports, 4)

	assert.Equal(t, a, reports[0].Path)
	assert.NoError(t, reports[0].Err)
	assert.Equal(t, 4, reports[0].Entries)
	assert.Equal(t, []int{2, 4}, reports[0].QuestionOnly)

	assert.Equal(t, 0, reports[1].Entries)
	assert.Empty(t, reports[1].QuestionOnly)

	assert.Equal(t, missing, reports[2].Path)
	assert.ErrorIs(t, reports[2].Err, os.ErrNotExist)

	assert.Equal(t, 1, reports[3].Entries)
	assert.Empty(t, reports[3].QuestionOnly)
}

func TestInspectFiles_Cancelled(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "Q === A")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reports := service.InspectFiles(ctx, []string{a}, 1)

	require.Len(t, reports, 1)
	assert.ErrorIs(t, reports[0].Err, context.Canceled)
}

func TestInspectFiles_NoPaths(t *testing.T) {
	assert.Empty(t, service.InspectFiles(context.Background(), nil, 4))
}
