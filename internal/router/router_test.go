package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sergioortiz17/devtools-backend/internal/config"
	"github.com/sergioortiz17/devtools-backend/internal/database"
	"github.com/sergioortiz17/devtools-backend/internal/handler"
	mock_repository "github.com/sergioortiz17/devtools-backend/internal/mocks/repository"
	"github.com/sergioortiz17/devtools-backend/internal/model"
	"github.com/sergioortiz17/devtools-backend/internal/repository"
	"github.com/sergioortiz17/devtools-backend/internal/server"
	"github.com/sergioortiz17/devtools-backend/internal/service"
)

type testEnv struct {
	router *echo.Echo
	store  *mock_repository.MockDictionaryStore
	repo   *mock_repository.MockDictionaryRepository
	dbMock sqlmock.Sqlmock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := mock_repository.NewMockDictionaryStore(ctrl)
	repo := mock_repository.NewMockDictionaryRepository(ctrl)

	sqlDB, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	logger := zerolog.Nop()
	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		App:     config.AppConfig{Name: "DevTools Playground API", Version: "1.0.0"},
		Server: config.ServerConfig{
			Port:               "8000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"http://localhost:5173"},
		},
		Observability: config.DefaultObservabilityConfig(),
	}

	s := &server.Server{
		Config: cfg,
		Logger: &logger,
		DB:     database.NewFromDB(sqlDB, config.DriverSQLite, &logger),
	}

	services, err := service.NewServices(s, &repository.Repositories{Dictionary: store})
	require.NoError(t, err)

	return &testEnv{
		router: NewRouter(s, handler.NewHandlers(s, services)),
		store:  store,
		repo:   repo,
		dbMock: dbMock,
	}
}

func (env *testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestRouter_AddWord(t *testing.T) {
	entry := &model.DictionaryEntry{ID: 1, Word: "Go", Definition: "a language", CreatedAt: time.Now()}

	tests := []struct {
		name       string
		body       string
		setup      func(env *testEnv)
		wantStatus int
		wantBody   map[string]any
		wantCode   string
	}{
		{
			name: "created",
			body: `{"word":"Go","definition":"a language"}`,
			setup: func(env *testEnv) {
				env.store.EXPECT().Begin(gomock.Any()).Return(env.repo, nil)
				env.repo.EXPECT().FindByWord(gomock.Any(), "Go").Return(nil, nil)
				env.repo.EXPECT().Create(gomock.Any(), "Go", "a language").Return(entry, nil)
				env.repo.EXPECT().Commit().Return(nil)
				env.repo.EXPECT().Rollback().Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   map[string]any{"message": "Word 'Go' added successfully", "word": "Go"},
		},
		{
			name: "duplicate",
			body: `{"word":"go","definition":"again"}`,
			setup: func(env *testEnv) {
				env.store.EXPECT().Begin(gomock.Any()).Return(env.repo, nil)
				env.repo.EXPECT().FindByWord(gomock.Any(), "go").Return(entry, nil)
				env.repo.EXPECT().Rollback().Return(nil)
			},
			wantStatus: http.StatusConflict,
			wantCode:   "WORD_ALREADY_EXISTS",
		},
		{
			name:       "blank word",
			body:       `{"word":"   ","definition":"a language"}`,
			setup:      func(*testEnv) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "missing definition",
			body:       `{"word":"Go"}`,
			setup:      func(*testEnv) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "malformed json",
			body:       `{"word":`,
			setup:      func(*testEnv) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			tt.setup(env)

			rec := env.do(http.MethodPost, "/dictionary/add", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			body := decode(t, rec)
			if tt.wantBody != nil {
				assert.Equal(t, tt.wantBody, body)
			}
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body["code"])
				assert.EqualValues(t, tt.wantStatus, body["status"])
			}
		})
	}
}

func TestRouter_GetWord(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		env := newTestEnv(t)
		env.store.EXPECT().Begin(gomock.Any()).Return(env.repo, nil)
		env.repo.EXPECT().FindByWord(gomock.Any(), "go").
			Return(&model.DictionaryEntry{ID: 1, Word: "Go", Definition: "a language"}, nil)
		env.repo.EXPECT().Commit().Return(nil)

		rec := env.do(http.MethodGet, "/dictionary/go", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]any{"word": "Go", "definition": "a language"}, decode(t, rec))
	})

	t.Run("absent", func(t *testing.T) {
		env := newTestEnv(t)
		env.store.EXPECT().Begin(gomock.Any()).Return(env.repo, nil)
		env.repo.EXPECT().FindByWord(gomock.Any(), "nope").Return(nil, nil)
		env.repo.EXPECT().Commit().Return(nil)

		rec := env.do(http.MethodGet, "/dictionary/nope", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "WORD_NOT_FOUND", body["code"])
		assert.Equal(t, "Word 'nope' not found in dictionary", body["message"])
	})

	t.Run("blank word", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodGet, "/dictionary/%20%20", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decode(t, rec)["code"])
	})

	t.Run("store failure is sanitized", func(t *testing.T) {
		env := newTestEnv(t)
		env.store.EXPECT().Begin(gomock.Any()).Return(nil, errors.New("connection reset by peer"))

		rec := env.do(http.MethodGet, "/dictionary/go", "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", body["code"])
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}

func TestRouter_ShoppingTotal(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:       "all items found",
			body:       `{"costs":{"apple":1.50,"banana":0.75},"items":["apple","banana"],"tax":0.1}`,
			wantStatus: http.StatusOK,
			wantBody: map[string]any{
				"subtotal":        2.25,
				"tax_amount":      0.23,
				"total":           2.48,
				"items_found":     []any{"apple", "banana"},
				"items_not_found": []any{},
			},
		},
		{
			name:       "zero tax with a missing item",
			body:       `{"costs":{"apple":1.50},"items":["apple","kiwi"],"tax":0}`,
			wantStatus: http.StatusOK,
			wantBody: map[string]any{
				"subtotal":        1.5,
				"tax_amount":      0.0,
				"total":           1.5,
				"items_found":     []any{"apple"},
				"items_not_found": []any{"kiwi"},
			},
		},
		{
			name:       "negative tax",
			body:       `{"costs":{"apple":1.50},"items":["apple"],"tax":-0.1}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing tax",
			body:       `{"costs":{"apple":1.50},"items":["apple"]}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			rec := env.do(http.MethodPost, "/shopping/total", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			body := decode(t, rec)
			if tt.wantBody != nil {
				assert.Equal(t, tt.wantBody, body)
			} else {
				assert.Equal(t, "BAD_REQUEST", body["code"])
			}
		})
	}
}

func TestRouter_WordConcat(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/word/concat", `{"words":["hello","world"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"result": "ho", "words": []any{"hello", "world"}}, decode(t, rec))

	rec = env.do(http.MethodPost, "/word/concat", `{"words":[]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", decode(t, rec)["code"])
}

func TestRouter_RootAndHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{
		"message": "DevTools Playground API",
		"version": "1.0.0",
		"docs":    "/docs",
	}, decode(t, rec))

	rec = env.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"status": "healthy"}, decode(t, rec))
}

func TestRouter_Status(t *testing.T) {
	t.Run("database up", func(t *testing.T) {
		env := newTestEnv(t)
		env.dbMock.ExpectPing()

		rec := env.do(http.MethodGet, "/status", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "healthy", body["status"])
		assert.Contains(t, body["checks"], "database")
		assert.NoError(t, env.dbMock.ExpectationsWereMet())
	})

	t.Run("database down", func(t *testing.T) {
		env := newTestEnv(t)
		env.dbMock.ExpectPing().WillReturnError(errors.New("down"))

		rec := env.do(http.MethodGet, "/status", "")

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "unhealthy", decode(t, rec)["status"])
	})
}

func TestRouter_SystemRoutes(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/docs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)

	rec = env.do(http.MethodGet, "/static/openapi.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/dictionary/add")

	rec = env.do(http.MethodGet, "/does-not-exist", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decode(t, rec)["code"])
}

func TestRouter_RequestIDEchoed(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "abc-123")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(echo.HeaderXRequestID))
}
