// Package server defines the Server container that owns the app's shared
// dependencies and the HTTP server lifecycle.
//
// It owns:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - the dictionary database
//   - redis client, definition cache and job workers (when redis is configured)
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sergioortiz17/devtools-backend/internal/config"
	"github.com/sergioortiz17/devtools-backend/internal/database"
	"github.com/sergioortiz17/devtools-backend/internal/lib/cache"
	"github.com/sergioortiz17/devtools-backend/internal/lib/job"

	loggerPkg "github.com/sergioortiz17/devtools-backend/internal/logger"
)

// Server is the application container that holds shared resources.
// Redis, Cache and Job are nil when no redis address is configured.
type Server struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService
	DB            *database.Database
	Redis         *redis.Client
	Cache         *cache.DefinitionCache
	Job           *job.JobService

	httpServer *http.Server
}

// New connects to the database (waiting for it to come up) and, when
// configured, to Redis.
//
// A Redis that does not answer is logged and skipped; the database is required.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(ctx, cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	server := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
	}

	if !cfg.Redis.Enabled() {
		logger.Info().Msg("redis not configured, definition cache and background jobs disabled")
		return server, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Address,
	})

	if loggerService.GetApplication() != nil {
		redisClient.AddHook(nrredis.NewHook(redisClient.Options()))
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Error().Err(err).Msg("Failed to connect to Redis, continuing without Redis")
		redisClient.Close()
		return server, nil
	}

	server.Redis = redisClient
	server.Cache = cache.NewDefinitionCache(redisClient, cfg.Redis.CacheTTL)

	jobService := job.NewJobService(logger, cfg)
	jobService.SetCache(server.Cache)
	if err := jobService.Start(); err != nil {
		db.Close()
		redisClient.Close()
		return nil, fmt.Errorf("failed to start job server: %w", err)
	}
	server.Job = jobService

	return server, nil
}

// SetupHTTPServer configures the internal net/http server. Timeouts are seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server until it is shut down.
// It requires SetupHTTPServer to be called first.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown stops the HTTP server, then the workers, redis and the database.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.Job != nil {
		s.Job.Stop()
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			s.Logger.Warn().Err(err).Msg("failed to close redis client")
		}
	}

	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}

	return nil
}
