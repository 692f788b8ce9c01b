package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/recall/internal/cli"
)

type env struct {
	dir string
	db  string
}

func newEnv(t *testing.T) env {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("APP_ENV", "")
	t.Setenv("SHUFFLE_SEED", "")
	return env{dir: dir, db: filepath.Join(dir, "test.db")}
}

func (e env) write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(e.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func (e env) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--db", e.db}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestShow_Empty(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "", "show")

	require.NoError(t, err)
	assert.Equal(t, "No questions added yet.\n", out)
}

func TestSaveThenShow(t *testing.T) {
	e := newEnv(t)
	path := e.write(t, "deck.txt", "What is Go?\n===\nA language\n\nName a gopher\n")

	out, err := e.run(t, "", "save", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved 2 questions.")
	assert.Contains(t, out, "Question 2 has no answer.")

	out, err = e.run(t, "", "show")
	require.NoError(t, err)
	assert.Equal(t, "Question 1: What is Go?\nAnswer: A language\n\nQuestion 2: Name a gopher\nAnswer: \n\n", out)
}

func TestShow_QuestionOnlyKeepsAnswerLine(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "Just a question", "save", "-")
	require.NoError(t, err)

	out, err := e.run(t, "", "show")

	require.NoError(t, err)
	assert.Equal(t, "Question 1: Just a question\nAnswer: \n\n", out)
}

func TestSave_FromStdin(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "Q === A", "save", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved 1 question.")

	out, err = e.run(t, "", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Question 1: Q")
}

func TestSave_EmptyText(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "  \n\n ", "save", "-")

	require.NoError(t, err)
	assert.Equal(t, "No questions added yet.\n", out)
}

func TestSave_MissingFile(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "", "save", filepath.Join(e.dir, "nope.txt"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSlotsAreIndependent(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "Q1 === A1", "--slot", "one", "save", "-")
	require.NoError(t, err)

	out, err := e.run(t, "", "--slot", "two", "show")
	require.NoError(t, err)
	assert.Equal(t, "No questions added yet.\n", out)

	out, err = e.run(t, "", "--slot", "one", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Question 1: Q1")
}

func TestInspect(t *testing.T) {
	e := newEnv(t)
	a := e.write(t, "a.txt", "Q1 === A1\n\nQ2\n\nQ3")
	b := e.write(t, "b.txt", "Only === One")

	out, err := e.run(t, "", "inspect", a, b)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "QUESTIONS")
	assert.Contains(t, lines[1], "a.txt")
	assert.Contains(t, lines[1], "2,3")
	assert.Contains(t, lines[2], "b.txt")
	assert.True(t, strings.HasSuffix(lines[2], "-"))
}

func TestInspect_ReportsUnreadableFiles(t *testing.T) {
	e := newEnv(t)
	a := e.write(t, "a.txt", "Q === A")

	out, err := e.run(t, "", "inspect", a, filepath.Join(e.dir, "missing.txt"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files")
	assert.Contains(t, out, "missing.txt")
}

func TestSimulate(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "Q1 === A1\n\nQ2 === A2\n\nQ3 === A3", "save", "-")
	require.NoError(t, err)

	out, err := e.run(t, "", "--seed", "9", "simulate", "--runs", "5", "--learner", "improving")

	require.NoError(t, err)
	assert.Contains(t, out, "cards:     3")
	assert.Contains(t, out, "runs:      5 (5 completed)")
	assert.Contains(t, out, "reviews:   min 12, mean 12.0, max 12")
}

func TestSimulate_EmptyDeck(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "", "simulate")

	require.NoError(t, err)
	assert.Equal(t, "No questions added yet.\n", out)
}

func TestSimulate_UnknownLearner(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "", "simulate", "--learner", "lazy")

	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "", "version")

	require.NoError(t, err)
	assert.Equal(t, "recall dev\n", out)
}
