package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergioortiz17/devtools-backend/internal/model"
)

type fakeCache struct {
	entries []*model.DictionaryEntry
	err     error
}

func (f *fakeCache) Set(_ context.Context, entry *model.DictionaryEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

func newTestJobService(cache EntryCache) *JobService {
	logger := zerolog.Nop()
	j := &JobService{logger: &logger}
	j.SetCache(cache)
	return j
}

func TestHandleEntryAddedTask(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	entry := &model.DictionaryEntry{ID: 3, Word: "Go", Definition: "a language", CreatedAt: created}

	task, err := NewEntryAddedTask(entry)
	require.NoError(t, err)
	assert.Equal(t, TaskEntryAdded, task.Type())

	t.Run("primes the cache", func(t *testing.T) {
		cache := &fakeCache{}
		j := newTestJobService(cache)

		require.NoError(t, j.handleEntryAddedTask(context.Background(), task))
		require.Len(t, cache.entries, 1)
		assert.Equal(t, entry, cache.entries[0])
	})

	t.Run("cache error is returned for retry", func(t *testing.T) {
		j := newTestJobService(&fakeCache{err: errors.New("redis down")})

		assert.Error(t, j.handleEntryAddedTask(context.Background(), task))
	})

	t.Run("bad payload is not retried", func(t *testing.T) {
		j := newTestJobService(&fakeCache{})

		err := j.handleEntryAddedTask(context.Background(), asynq.NewTask(TaskEntryAdded, []byte("{")))
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("no cache configured", func(t *testing.T) {
		logger := zerolog.Nop()
		j := &JobService{logger: &logger}

		assert.NoError(t, j.handleEntryAddedTask(context.Background(), task))
	})
}
