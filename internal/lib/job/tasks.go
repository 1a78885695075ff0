package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/sergioortiz17/devtools-backend/internal/model"
)

// TaskEntryAdded is emitted after a dictionary entry is committed.
const TaskEntryAdded = "dictionary:entry_added"

// EntryAddedPayload is the JSON payload of TaskEntryAdded.
type EntryAddedPayload struct {
	ID         int64     `json:"id"`
	Word       string    `json:"word"`
	Definition string    `json:"definition"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewEntryAddedTask builds the task announcing entry.
func NewEntryAddedTask(entry *model.DictionaryEntry) (*asynq.Task, error) {
	payload, err := json.Marshal(EntryAddedPayload{
		ID:         entry.ID,
		Word:       entry.Word,
		Definition: entry.Definition,
		CreatedAt:  entry.CreatedAt,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskEntryAdded,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(30*time.Second),
	), nil
}

// EntryAdded enqueues TaskEntryAdded for entry.
func (j *JobService) EntryAdded(ctx context.Context, entry *model.DictionaryEntry) error {
	task, err := NewEntryAddedTask(entry)
	if err != nil {
		return err
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return err
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Str("word", entry.Word).
		Msg("enqueued entry added task")
	return nil
}
