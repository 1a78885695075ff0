package logger

import (
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/sergioortiz17/devtools-backend/internal/config"
)

func TestNewLoggerService_WithoutLicenseKey(t *testing.T) {
	ls := NewLoggerService(config.DefaultObservabilityConfig())

	assert.Nil(t, ls.GetApplication())
	assert.NotPanics(t, ls.Shutdown)

	var nilService *LoggerService
	assert.Nil(t, nilService.GetApplication())
	assert.NotPanics(t, nilService.Shutdown)
}

func TestNewLogger_Level(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	logger := NewLogger(cfg)

	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	logger := zerolog.Nop()

	assert.Equal(t, logger, WithTraceContext(logger, nil))
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	tests := []struct {
		level zerolog.Level
		want  tracelog.LogLevel
	}{
		{zerolog.DebugLevel, tracelog.LogLevelDebug},
		{zerolog.InfoLevel, tracelog.LogLevelInfo},
		{zerolog.WarnLevel, tracelog.LogLevelWarn},
		{zerolog.ErrorLevel, tracelog.LogLevelError},
		{zerolog.Disabled, tracelog.LogLevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, int(tt.want), GetPgxTraceLogLevel(tt.level))
		})
	}
}
