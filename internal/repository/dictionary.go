package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sergioortiz17/devtools-backend/internal/model"
)

//go:generate mockgen -source=dictionary.go -destination=../mocks/repository/mock_dictionary.go -package=mock_repository

// DictionaryRepository is one unit of work over the dictionary entries.
// Writes become durable on Commit and are discarded by Rollback.
type DictionaryRepository interface {
	// FindByWord matches case-insensitively on the trimmed word.
	// It returns nil, nil when there is no match or the word is blank.
	FindByWord(ctx context.Context, word string) (*model.DictionaryEntry, error)
	Create(ctx context.Context, word, definition string) (*model.DictionaryEntry, error)
	Commit() error
	Rollback() error
}

// DictionaryStore opens units of work.
type DictionaryStore interface {
	Begin(ctx context.Context) (DictionaryRepository, error)
}

const (
	selectEntryColumns = "SELECT id, word, definition, created_at FROM dictionary_entries"

	findByWordQuery = selectEntryColumns + " WHERE lower(word) = lower(?) ORDER BY id LIMIT 1"
	findByIDQuery   = selectEntryColumns + " WHERE id = ?"
	insertQuery     = "INSERT INTO dictionary_entries (word, definition) VALUES (?, ?) RETURNING id"
)

// DBDictionaryStore implements DictionaryStore on sqlx.
type DBDictionaryStore struct {
	db *sqlx.DB
}

// NewDictionaryStore creates a new DBDictionaryStore.
func NewDictionaryStore(db *sqlx.DB) *DBDictionaryStore {
	return &DBDictionaryStore{db: db}
}

// Begin starts a transaction-backed unit of work.
func (s *DBDictionaryStore) Begin(ctx context.Context) (DictionaryRepository, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &dbDictionaryTx{tx: tx}, nil
}

type dbDictionaryTx struct {
	tx *sqlx.Tx
}

func (r *dbDictionaryTx) FindByWord(ctx context.Context, word string) (*model.DictionaryEntry, error) {
	// Both sides go through the store's lower(), the function behind the
	// unique index.
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, nil
	}

	var entry model.DictionaryEntry
	err := r.tx.GetContext(ctx, &entry, r.tx.Rebind(findByWordQuery), word)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find dictionary entry: %w", err)
	}
	return &entry, nil
}

// Create inserts the trimmed pair and reads the row back inside the same
// transaction so store-assigned columns are populated.
func (r *dbDictionaryTx) Create(ctx context.Context, word, definition string) (*model.DictionaryEntry, error) {
	word = strings.TrimSpace(word)
	definition = strings.TrimSpace(definition)
	if word == "" {
		return nil, model.ErrEmptyWord
	}
	if definition == "" {
		return nil, model.ErrEmptyDefinition
	}

	var id int64
	if err := r.tx.QueryRowxContext(ctx, r.tx.Rebind(insertQuery), word, definition).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert dictionary entry: %w", err)
	}

	var entry model.DictionaryEntry
	if err := r.tx.GetContext(ctx, &entry, r.tx.Rebind(findByIDQuery), id); err != nil {
		return nil, fmt.Errorf("load dictionary entry %d: %w", id, err)
	}
	return &entry, nil
}

func (r *dbDictionaryTx) Commit() error {
	if err := r.tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Rollback is a no-op once the transaction has been committed or rolled back.
func (r *dbDictionaryTx) Rollback() error {
	if err := r.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

// WithDictionaryTx runs fn in a unit of work, committing when fn succeeds and
// rolling back otherwise. fn's error is returned unchanged.
func WithDictionaryTx(ctx context.Context, store DictionaryStore, fn func(repo DictionaryRepository) error) error {
	repo, err := store.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(repo); err != nil {
		if rbErr := repo.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (original error: %v)", rbErr, err)
		}
		return err
	}
	return repo.Commit()
}
