package main

import (
	"context"
	"openhours/internal/app/consumers"
	"openhours/internal/app/deps"
	"openhours/internal/app/services"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	defer shutdownDeps()

	services := services.InitServices(deps)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	shutdownConsumers := consumers.InitConsumers(ctx, deps, services)
	defer shutdownConsumers()

	<-ctx.Done()
	deps.Logger.Info(context.Background(), "Worker is stopping gracefully.")
}
