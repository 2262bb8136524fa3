// Command cleanup removes expired refresh and email tokens and stale
// anonymous quota counters. It is intended to be invoked by an external
// cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jahboukie/inner-architect/internal/adapter/postgres"
	"github.com/jahboukie/inner-architect/internal/adapter/postgres/emailtoken"
	"github.com/jahboukie/inner-architect/internal/adapter/postgres/quota"
	"github.com/jahboukie/inner-architect/internal/adapter/postgres/token"
	"github.com/jahboukie/inner-architect/internal/app"
	"github.com/jahboukie/inner-architect/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	refreshDeleted, err := token.New(pool).DeleteExpired(ctx)
	if err != nil {
		logger.Error("delete expired refresh tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	emailDeleted, err := emailtoken.New(pool).DeleteExpired(ctx)
	if err != nil {
		logger.Error("delete expired email tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	threshold := time.Now().AddDate(0, 0, -cfg.Quota.RetentionDays)
	quotasDeleted, err := quota.New(pool).DeleteStale(ctx, threshold)
	if err != nil {
		logger.Error("delete stale quotas",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("cleanup completed",
		slog.Int("refresh_tokens", refreshDeleted),
		slog.Int("email_tokens", emailDeleted),
		slog.Int("stale_quotas", quotasDeleted),
	)
}
