package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sergioortiz17/devtools-backend/internal/model"
	"github.com/sergioortiz17/devtools-backend/internal/repository"
	"github.com/sergioortiz17/devtools-backend/internal/sqlerr"
)

// DefinitionCache is an optional read-through cache for GetWord.
type DefinitionCache interface {
	Get(ctx context.Context, word string) (*model.DictionaryEntry, error)
	Set(ctx context.Context, entry *model.DictionaryEntry) error
}

// EntryEvents is notified after an entry has been committed.
type EntryEvents interface {
	EntryAdded(ctx context.Context, entry *model.DictionaryEntry) error
}

// DictionaryService enforces the dictionary rules: words are unique
// case-insensitively and lookups of unknown words fail with NotFound.
type DictionaryService struct {
	store  repository.DictionaryStore
	cache  DefinitionCache
	events EntryEvents
}

func NewDictionaryService(store repository.DictionaryStore) *DictionaryService {
	return &DictionaryService{store: store}
}

// WithCache returns a copy of the service reading through cache.
func (s *DictionaryService) WithCache(cache DefinitionCache) *DictionaryService {
	clone := *s
	clone.cache = cache
	return &clone
}

// WithEvents returns a copy of the service notifying events on AddWord.
func (s *DictionaryService) WithEvents(events EntryEvents) *DictionaryService {
	clone := *s
	clone.events = events
	return &clone
}

// AddWord stores a new entry. Blank input fails with model.ErrInvalidInput
// before the store is touched; an existing word in any casing fails with
// model.ErrWordAlreadyExists. Nothing is written on failure.
func (s *DictionaryService) AddWord(ctx context.Context, word, definition string) (*model.DictionaryEntry, error) {
	if strings.TrimSpace(word) == "" {
		return nil, model.ErrEmptyWord
	}
	if strings.TrimSpace(definition) == "" {
		return nil, model.ErrEmptyDefinition
	}

	logger := zerolog.Ctx(ctx)

	repo, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// No-op after a successful commit.
	defer func() {
		if rbErr := repo.Rollback(); rbErr != nil {
			logger.Error().Err(rbErr).Str("word", word).Msg("failed to roll back dictionary transaction")
		}
	}()

	existing, err := repo.FindByWord(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("look up word %q: %w", word, err)
	}
	if existing != nil {
		logger.Warn().Str("word", word).Msg("word already exists in dictionary")
		return nil, model.NewWordAlreadyExistsError(word)
	}

	entry, err := repo.Create(ctx, word, definition)
	if err != nil {
		return nil, s.translateWriteError(word, err)
	}

	if err := repo.Commit(); err != nil {
		return nil, s.translateWriteError(word, err)
	}

	logger.Info().Str("word", entry.Word).Int64("id", entry.ID).Msg("added word to dictionary")

	if s.events != nil {
		if err := s.events.EntryAdded(ctx, entry); err != nil {
			logger.Warn().Err(err).Str("word", entry.Word).Msg("failed to publish entry added event")
		}
	}

	return entry, nil
}

// translateWriteError maps a unique violation, i.e. a concurrent insert of
// the same word, onto AlreadyExists. Validation errors pass through.
func (s *DictionaryService) translateWriteError(word string, err error) error {
	if errors.Is(err, model.ErrInvalidInput) {
		return err
	}
	if sqlerr.IsUniqueViolation(err) {
		return model.NewWordAlreadyExistsError(word)
	}
	return fmt.Errorf("add word %q: %w", word, err)
}

// GetWord looks word up case-insensitively.
func (s *DictionaryService) GetWord(ctx context.Context, word string) (*model.DictionaryEntry, error) {
	if strings.TrimSpace(word) == "" {
		return nil, model.ErrEmptyWord
	}

	logger := zerolog.Ctx(ctx)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, word)
		if err != nil {
			logger.Warn().Err(err).Str("word", word).Msg("definition cache read failed")
		} else if cached != nil {
			logger.Debug().Str("word", word).Msg("definition cache hit")
			return cached, nil
		}
	}

	var entry *model.DictionaryEntry
	err := repository.WithDictionaryTx(ctx, s.store, func(repo repository.DictionaryRepository) error {
		found, err := repo.FindByWord(ctx, word)
		if err != nil {
			return err
		}
		entry = found
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("look up word %q: %w", word, err)
	}

	if entry == nil {
		logger.Info().Str("word", word).Msg("word not found in dictionary")
		return nil, model.NewWordNotFoundError(word)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, entry); err != nil {
			logger.Warn().Err(err).Str("word", entry.Word).Msg("definition cache write failed")
		}
	}

	return entry, nil
}
