package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergioortiz17/devtools-backend/internal/config"
	"github.com/sergioortiz17/devtools-backend/internal/database"
	"github.com/sergioortiz17/devtools-backend/internal/model"
	"github.com/sergioortiz17/devtools-backend/internal/repository"
)

func newSQLiteDictionary(t *testing.T) (*DictionaryService, *database.Database) {
	t.Helper()

	logger := zerolog.Nop()
	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Database: config.DatabaseConfig{
			Driver:     config.DriverSQLite,
			URL:        ":memory:",
			MaxRetries: 1,
			RetryDelay: time.Second,
		},
	}

	db, err := database.New(context.Background(), cfg, &logger, nil)
	if err != nil {
		t.Skipf("sqlite3 driver unavailable: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.MigrateDatabase(context.Background(), &logger, cfg, db))

	return NewDictionaryService(repository.NewDictionaryStore(db.DB)), db
}

func TestDictionaryService_SQLite_CaseInsensitiveLookup(t *testing.T) {
	svc, _ := newSQLiteDictionary(t)
	ctx := context.Background()

	added, err := svc.AddWord(ctx, "  Serendipity ", " a happy accident ")
	require.NoError(t, err)
	assert.Equal(t, "Serendipity", added.Word)
	assert.Equal(t, "a happy accident", added.Definition)
	assert.NotZero(t, added.ID)
	assert.False(t, added.CreatedAt.IsZero())

	for _, variant := range []string{"Serendipity", "serendipity", "SERENDIPITY", "  sErEnDiPiTy  "} {
		got, err := svc.GetWord(ctx, variant)
		require.NoError(t, err, variant)
		assert.Equal(t, "a happy accident", got.Definition, variant)
		assert.Equal(t, "Serendipity", got.Word, variant)
	}
}

func TestDictionaryService_SQLite_DuplicateWord(t *testing.T) {
	svc, db := newSQLiteDictionary(t)
	ctx := context.Background()

	_, err := svc.AddWord(ctx, "Go", "a language")
	require.NoError(t, err)

	_, err = svc.AddWord(ctx, " GO ", "a board game")
	require.ErrorIs(t, err, model.ErrWordAlreadyExists)
	assert.Equal(t, "Word ' GO ' already exists in dictionary", err.Error())

	var count int
	require.NoError(t, db.DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM dictionary_entries"))
	assert.Equal(t, 1, count)
}

func TestDictionaryService_SQLite_UniqueIndexBackstop(t *testing.T) {
	_, db := newSQLiteDictionary(t)
	ctx := context.Background()
	store := repository.NewDictionaryStore(db.DB)

	// Insert bypassing the lookup, as a concurrent request would.
	err := repository.WithDictionaryTx(ctx, store, func(repo repository.DictionaryRepository) error {
		_, err := repo.Create(ctx, "Go", "a language")
		return err
	})
	require.NoError(t, err)

	err = repository.WithDictionaryTx(ctx, store, func(repo repository.DictionaryRepository) error {
		_, err := repo.Create(ctx, "go", "again")
		return err
	})
	require.Error(t, err)

	svc := NewDictionaryService(store)
	assert.ErrorIs(t, svc.translateWriteError("go", err), model.ErrWordAlreadyExists)
}

func TestDictionaryService_SQLite_NotFound(t *testing.T) {
	svc, _ := newSQLiteDictionary(t)

	_, err := svc.GetWord(context.Background(), "missing")
	require.ErrorIs(t, err, model.ErrWordNotFound)
	assert.Equal(t, "Word 'missing' not found in dictionary", err.Error())
}

func TestDictionaryService_SQLite_NonASCIICase(t *testing.T) {
	svc, db := newSQLiteDictionary(t)
	ctx := context.Background()

	_, err := svc.AddWord(ctx, "CAFÉ", "a coffee house")
	require.NoError(t, err)

	for _, variant := range []string{"CAFÉ", "café", "Café"} {
		got, err := svc.GetWord(ctx, variant)
		require.NoError(t, err, variant)
		assert.Equal(t, "CAFÉ", got.Word, variant)
	}

	_, err = svc.AddWord(ctx, "café", "again")
	require.ErrorIs(t, err, model.ErrWordAlreadyExists)

	var count int
	require.NoError(t, db.DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM dictionary_entries"))
	assert.Equal(t, 1, count)
}
