// Command migrate applies all pending database migrations and exits.
// Intended for deploy pipelines; the server can also run migrations at
// startup with SERVER_RUN_MIGRATIONS=true.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"time"

	"github.com/jahboukie/inner-architect/internal/adapter/postgres"
	"github.com/jahboukie/inner-architect/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := postgres.RunMigrations(ctx, cfg.Database.DSN); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	log.Println("migrations applied")
}
