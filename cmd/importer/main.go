package main

import (
	"context"
	"openhours/internal/app/deps"
	"openhours/internal/app/services"
	"openhours/internal/core/domain/logging"
	importrestaurants "openhours/internal/core/services/import_restaurants"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	services := services.InitServices(deps)

	if services.ImportRestaurants == nil {
		deps.Logger.Error(context.Background(), "CSV_PATH must be set.")
		shutdownDeps()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	result, err := services.ImportRestaurants.Run(ctx, importrestaurants.Input{})
	cancel()

	deps.Logger.Info(
		context.Background(),
		"Import finished.",
		logging.Entry("csvPath", deps.Config.CSVPath),
		logging.Entry("viaQueue", deps.ImportQueue != nil),
		logging.Entry("read", result.Read),
		logging.Entry("published", result.Published),
		logging.Entry("skipped", result.Skipped),
	)
	shutdownDeps()
	if err != nil {
		os.Exit(1)
	}
}
