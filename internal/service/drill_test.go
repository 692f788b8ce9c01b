package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/recall/internal/domain/review"
	"github.com/remaimber-it/recall/internal/service"
	"github.com/remaimber-it/recall/internal/store"
)

const twoCards = "Q1\n===\nA1\n\nQ2\n===\nA2"

type memStore struct {
	mu   sync.Mutex
	data map[string]string
	err  error
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}}
}

func (m *memStore) GetText(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	v, ok := m.data[key]
	if !ok {
		return "", store.ErrNotFound
	}
	return v, nil
}

func (m *memStore) PutText(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.data[key] = value
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seeded(seed int64) review.Config {
	return review.Config{Seed: &seed}
}

func newService(t *testing.T, s store.TextStore) *service.DrillService {
	t.Helper()
	return service.NewDrillService(s, "questions", seeded(1), discardLogger())
}

func TestNewDrillService_AwaitingContent(t *testing.T) {
	ds := newService(t, newMemStore())

	snap := ds.Snapshot()
	assert.Equal(t, review.AwaitingContent, snap.Phase)
	assert.Equal(t, service.AwaitingContentMessage, snap.Message)
	assert.Nil(t, snap.Current)
	assert.Equal(t, 0, snap.Total)
	assert.NotEmpty(t, snap.SessionID)
	assert.Empty(t, ds.Entries())
}

func TestLoad_MissingSlotIsEmptyDeck(t *testing.T) {
	ds := newService(t, newMemStore())

	require.NoError(t, ds.Load(context.Background()))

	assert.Equal(t, "", ds.Source())
	assert.Equal(t, review.AwaitingContent, ds.Snapshot().Phase)
}

func TestLoad_RebuildsFromSavedText(t *testing.T) {
	ms := newMemStore()
	ms.data["questions"] = twoCards
	ds := newService(t, ms)

	require.NoError(t, ds.Load(context.Background()))

	snap := ds.Snapshot()
	assert.Equal(t, review.InProgress, snap.Phase)
	assert.Equal(t, 2, snap.Total)
	assert.Equal(t, 2, snap.Remaining)
	require.NotNil(t, snap.Current)
	assert.Equal(t, review.Unseen, snap.Current.Status)
	assert.Empty(t, snap.Current.Answer, "answer hidden in question mode")
	assert.Equal(t, twoCards, ds.Source())
}

func TestLoad_StoreError(t *testing.T) {
	ms := newMemStore()
	ms.err = errors.New("disk on fire")
	ds := newService(t, ms)

	err := ds.Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ms.err)
}

func TestSave_PersistsVerbatimAndReseeds(t *testing.T) {
	ms := newMemStore()
	ds := newService(t, ms)
	before := ds.Snapshot().SessionID
	text := "  Q1 === A1  \n\n\nQ2"

	snap, err := ds.Save(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, text, ms.data["questions"])
	assert.Equal(t, review.InProgress, snap.Phase)
	assert.Equal(t, 2, snap.Total)
	assert.NotEqual(t, before, snap.SessionID)

	entries := ds.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Q1", entries[0].Question)
	assert.Equal(t, "A1", entries[0].Answer)
	assert.Equal(t, "Q2", entries[1].Question)
	assert.False(t, entries[1].HasAnswer())
}

func TestSave_StoreErrorKeepsSession(t *testing.T) {
	ms := newMemStore()
	ds := newService(t, ms)
	_, err := ds.Save(context.Background(), twoCards)
	require.NoError(t, err)
	before := ds.Snapshot()

	ms.err = errors.New("read-only")
	snap, err := ds.Save(context.Background(), "Other\n===\nText")

	require.Error(t, err)
	assert.Equal(t, before, snap)
	assert.Equal(t, twoCards, ds.Source())
}

func TestSave_EmptyTextAwaitsContent(t *testing.T) {
	ds := newService(t, newMemStore())
	_, err := ds.Save(context.Background(), twoCards)
	require.NoError(t, err)

	snap, err := ds.Save(context.Background(), "   \n\n  ")
	require.NoError(t, err)

	assert.Equal(t, review.AwaitingContent, snap.Phase)
	assert.Equal(t, service.AwaitingContentMessage, snap.Message)
}

func TestRevealAndRate_FullSession(t *testing.T) {
	ds := newService(t, newMemStore())
	_, err := ds.Save(context.Background(), twoCards)
	require.NoError(t, err)

	_, ok := ds.Rate(review.Easy)
	assert.False(t, ok, "rating before reveal is rejected")

	snap, ok := ds.Reveal()
	require.True(t, ok)
	assert.Equal(t, review.ModeAnswer, snap.Mode)
	require.NotNil(t, snap.Current)
	assert.NotEmpty(t, snap.Current.Answer)

	_, ok = ds.Reveal()
	assert.False(t, ok, "second reveal is rejected")

	snap, ok = ds.Rate(review.Easy)
	require.True(t, ok)
	assert.Equal(t, 1, snap.Remaining)
	assert.Equal(t, review.ModeQuestion, snap.Mode)

	_, ok = ds.Reveal()
	require.True(t, ok)
	snap, ok = ds.Rate(review.Easy)
	require.True(t, ok)

	assert.Equal(t, review.Completed, snap.Phase)
	assert.True(t, snap.Stats.Completed)
	assert.Equal(t, 2, snap.Stats.CardsReviewed)
	assert.Equal(t, 2, snap.Stats.TotalMastered)
	assert.Equal(t, 0, snap.Remaining)
	assert.Nil(t, snap.Current)

	_, ok = ds.Reveal()
	assert.False(t, ok)
}

func TestKey(t *testing.T) {
	ds := newService(t, newMemStore())
	_, err := ds.Save(context.Background(), "Only\n===\nOne")
	require.NoError(t, err)

	_, ok := ds.Key("3")
	assert.False(t, ok, "digits ignored in question mode")

	snap, ok := ds.Key(" ")
	require.True(t, ok)
	assert.Equal(t, "One", snap.Current.Answer)

	snap, ok = ds.Key("1")
	require.True(t, ok)
	assert.Equal(t, review.Learning, snap.Current.Status)
	assert.Equal(t, review.Again, snap.Current.LastRating)

	_, ok = ds.Key("space")
	require.True(t, ok)
	snap, ok = ds.Key("4")
	require.True(t, ok)
	assert.Equal(t, review.Completed, snap.Phase)

	_, ok = ds.Key(" ")
	assert.False(t, ok, "keys ignored once completed")
}

func TestRestart_NewSessionSameDeck(t *testing.T) {
	ds := newService(t, newMemStore())
	_, err := ds.Save(context.Background(), twoCards)
	require.NoError(t, err)

	_, _ = ds.Reveal()
	_, _ = ds.Rate(review.Good)
	before := ds.Snapshot()

	snap := ds.Restart()

	assert.NotEqual(t, before.SessionID, snap.SessionID)
	assert.Equal(t, review.Stats{}, snap.Stats)
	assert.Equal(t, review.ModeQuestion, snap.Mode)
	assert.Equal(t, 2, snap.Remaining)
	assert.Equal(t, twoCards, ds.Source())
}

func TestEntries_ReturnsCopy(t *testing.T) {
	ds := newService(t, newMemStore())
	_, err := ds.Save(context.Background(), twoCards)
	require.NoError(t, err)

	entries := ds.Entries()
	entries[0].Question = "mutated"

	assert.Equal(t, "Q1", ds.Entries()[0].Question)
}

func TestConcurrentKeys(t *testing.T) {
	ds := newService(t, newMemStore())
	_, err := ds.Save(context.Background(), twoCards+"\n\nQ3 === A3\n\nQ4 === A4")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				ds.Key(" ")
			} else {
				ds.Key("2")
			}
		}()
	}
	wg.Wait()

	snap := ds.Snapshot()
	assert.Equal(t, 4, snap.Total)
	assert.LessOrEqual(t, snap.Stats.TotalMastered, snap.Stats.CardsReviewed)
	assert.Equal(t, 4, snap.Remaining, "rating 2 never masters")
}

func TestDrillService_SQLiteRoundTrip(t *testing.T) {
	db, err := store.NewSQLite(filepath.Join(t.TempDir(), "recall.db"))
	require.NoError(t, err)
	defer db.Close()
	ctx := context.Background()

	first := service.NewDrillService(db, "questions", review.DefaultConfig(), discardLogger())
	_, err = first.Save(ctx, twoCards)
	require.NoError(t, err)
	_, _ = first.Reveal()
	_, _ = first.Rate(review.Easy)

	second := service.NewDrillService(db, "questions", review.DefaultConfig(), discardLogger())
	require.NoError(t, second.Load(ctx))

	snap := second.Snapshot()
	assert.Equal(t, twoCards, second.Source())
	assert.Equal(t, 2, snap.Remaining, "progress is never persisted")
	assert.Equal(t, review.Stats{}, snap.Stats)
}
