// Package config loads the service configuration from the environment.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into the Config struct on top of built-in defaults.
//   - Validate the result so the app fails fast on bad config.
package config

import (
	"encoding/json"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Loads `.env` into the process environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
)

/*
	Env vars are read with the DEVTOOLS_ prefix. A double underscore
	separates nesting levels, single underscores stay part of the key:

	  DEVTOOLS_DATABASE__MAX_RETRIES -> database.max_retries -> Config.Database.MaxRetries
*/

const (
	envPrefix = "DEVTOOLS_"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// listKeys are split on commas (or parsed as a JSON array) before unmarshalling.
var listKeys = map[string]bool{
	"server.cors_allowed_origins": true,
}

// Config is the root configuration object.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	App           AppConfig            `koanf:"app" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds the runtime environment name (local, development, production).
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// AppConfig is reported by the root endpoint and the API docs.
type AppConfig struct {
	Name        string `koanf:"name" validate:"required"`
	Version     string `koanf:"version" validate:"required"`
	Description string `koanf:"description"`
}

// ServerConfig groups settings for the HTTP server runtime. Timeouts are seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
	// RateLimit is requests per second per client IP; 0 disables limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`
}

// DatabaseConfig selects the driver and holds connection, pool and retry settings.
//
// URL, when set, wins over the discrete connection fields. For sqlite3 it is
// the database file (or ":memory:").
type DatabaseConfig struct {
	Driver          string        `koanf:"driver" validate:"required,oneof=postgres sqlite3"`
	URL             string        `koanf:"url"`
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name"`
	SSLMode         string        `koanf:"ssl_mode"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int           `koanf:"conn_max_lifetime" validate:"gte=0"`
	ConnMaxIdleTime int           `koanf:"conn_max_idle_time" validate:"gte=0"`
	MaxRetries      int           `koanf:"max_retries" validate:"min=1"`
	RetryDelay      time.Duration `koanf:"retry_delay" validate:"min=1s"`
}

// RedisConfig enables the definition cache and background jobs when Address is set.
type RedisConfig struct {
	Address  string        `koanf:"address"`
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

// IsSQLite reports whether the configured store is SQLite.
func (d DatabaseConfig) IsSQLite() bool {
	return d.Driver == DriverSQLite || strings.HasPrefix(strings.ToLower(d.URL), "sqlite")
}

// DSN returns the connection string for the configured driver.
func (d DatabaseConfig) DSN() string {
	if d.IsSQLite() {
		return strings.TrimPrefix(strings.TrimPrefix(d.URL, "sqlite://"), "sqlite:")
	}
	if d.URL != "" {
		return d.URL
	}

	// URL-encode the password so characters like '@' or ':' keep the DSN valid.
	hostPort := net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(d.User),
		url.QueryEscape(d.Password),
		hostPort,
		d.Name,
		d.SSLMode,
	)
}

// DriverName returns the database/sql driver name to open.
func (d DatabaseConfig) DriverName() string {
	if d.IsSQLite() {
		return DriverSQLite
	}
	return DriverPostgres
}

// defaultConfig mirrors the settings the service shipped with.
func defaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		App: AppConfig{
			Name:        "DevTools Playground API",
			Version:     "1.0.0",
			Description: "A collection of developer utilities",
		},
		Server: ServerConfig{
			Port:               "8000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Driver:          DriverPostgres,
			Host:            "localhost",
			Port:            5432,
			User:            "devtools",
			Password:        "devtools",
			Name:            "devtools",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    25,
			ConnMaxLifetime: 300,
			ConnMaxIdleTime: 300,
			MaxRetries:      30,
			RetryDelay:      2 * time.Second,
		},
		Redis: RedisConfig{
			CacheTTL: 24 * time.Hour,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// envKey maps DEVTOOLS_DATABASE__MAX_RETRIES to database.max_retries.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
}

// splitList accepts either "a,b" or `["a","b"]`.
func splitList(value string) []string {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "[") {
		var items []string
		if err := json.Unmarshal([]byte(value), &items); err == nil {
			return items
		}
	}
	return lo.Compact(lo.Map(strings.Split(value, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}

// LoadConfig loads configuration from the environment, on top of defaults,
// and validates it.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		key = envKey(key)
		if listKeys[key] {
			return key, splitList(value)
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Unmarshal only overwrites keys present in the environment,
	// so the defaults survive for everything else.
	mainConfig := defaultConfig()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	// Service name and environment are not configurable on their own;
	// telemetry is always tagged with the primary environment.
	mainConfig.Observability.ServiceName = "devtools-backend"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := Validate(mainConfig); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// Validate checks struct tags and the observability rules.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if !cfg.Database.IsSQLite() && cfg.Database.URL == "" {
		if cfg.Database.Host == "" || cfg.Database.Name == "" || cfg.Database.User == "" {
			return fmt.Errorf("config validation failed: database host, name and user are required for postgres")
		}
	}

	if err := cfg.Observability.Validate(); err != nil {
		return fmt.Errorf("invalid observability config: %w", err)
	}

	return nil
}
