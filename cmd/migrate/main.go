package main

import (
	"context"
	"openhours/internal/config"
	"openhours/internal/core/domain/logging"
	"openhours/internal/db"
	zaplogging "openhours/internal/implementations/logging"
	"os"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := zaplogging.NewZapLogger(cfg.IsTestMode)
	defer log.Sync()

	ctx := context.Background()
	if err := db.ApplyMigrations(cfg.PostgresqlURL, cfg.MigrationsPath); err != nil {
		logging.Error(log, ctx, err, logging.Entry("migrationsPath", cfg.MigrationsPath))
		log.Sync()
		os.Exit(1)
	}
	log.Info(ctx, "DB migrations applied.", logging.Entry("migrationsPath", cfg.MigrationsPath))
}
