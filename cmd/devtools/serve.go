package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sergioortiz17/devtools-backend/internal/config"
	"github.com/sergioortiz17/devtools-backend/internal/database"
	"github.com/sergioortiz17/devtools-backend/internal/handler"
	"github.com/sergioortiz17/devtools-backend/internal/logger"
	"github.com/sergioortiz17/devtools-backend/internal/repository"
	"github.com/sergioortiz17/devtools-backend/internal/router"
	"github.com/sergioortiz17/devtools-backend/internal/server"
	"github.com/sergioortiz17/devtools-backend/internal/service"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema and start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("config.LoadConfig() > %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv, err := server.New(ctx, cfg, &log, loggerService)
	if err != nil {
		return fmt.Errorf("server.New() > %w", err)
	}

	if err := database.MigrateDatabase(ctx, &log, cfg, srv.DB); err != nil {
		_ = srv.Shutdown(ctx)
		return fmt.Errorf("database.MigrateDatabase() > %w", err)
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		_ = srv.Shutdown(ctx)
		return fmt.Errorf("service.NewServices() > %w", err)
	}

	r := router.NewRouter(srv, handler.NewHandlers(srv, services))
	srv.SetupHTTPServer(r)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
	case err := <-errCh:
		if err != nil {
			_ = srv.Shutdown(context.Background())
			return fmt.Errorf("server stopped: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exited properly")
	return nil
}
