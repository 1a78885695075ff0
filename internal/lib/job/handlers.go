package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/sergioortiz17/devtools-backend/internal/model"
)

// SetCache sets the cache primed by handleEntryAddedTask.
func (j *JobService) SetCache(cache EntryCache) {
	j.cache = cache
}

// handleEntryAddedTask writes the new entry to the definition cache so the
// first lookup does not hit the database.
func (j *JobService) handleEntryAddedTask(ctx context.Context, t *asynq.Task) error {
	var p EntryAddedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal entry added payload: %w: %w", err, asynq.SkipRetry)
	}

	if j.cache == nil {
		j.logger.Debug().Str("word", p.Word).Msg("no definition cache configured, skipping")
		return nil
	}

	entry := &model.DictionaryEntry{
		ID:         p.ID,
		Word:       p.Word,
		Definition: p.Definition,
		CreatedAt:  p.CreatedAt,
	}
	if err := j.cache.Set(ctx, entry); err != nil {
		j.logger.Error().
			Str("type", TaskEntryAdded).
			Str("word", p.Word).
			Err(err).
			Msg("Failed to prime definition cache")
		return err
	}

	j.logger.Info().
		Str("type", TaskEntryAdded).
		Str("word", p.Word).
		Msg("Primed definition cache")

	return nil
}
