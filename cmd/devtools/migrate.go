package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sergioortiz17/devtools-backend/internal/config"
	"github.com/sergioortiz17/devtools-backend/internal/database"
	"github.com/sergioortiz17/devtools-backend/internal/logger"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("config.LoadConfig() > %w", err)
			}

			log := logger.NewLogger(cfg.Observability)

			if !cfg.Database.IsSQLite() {
				return database.Migrate(ctx, &log, cfg)
			}

			db, err := database.New(ctx, cfg, &log, nil)
			if err != nil {
				return fmt.Errorf("database.New() > %w", err)
			}
			defer db.Close()

			return database.MigrateDatabase(ctx, &log, cfg, db)
		},
	}
}
