// Command send-reminders emails every practice reminder that has come due
// and advances its schedule. Run it from cron every few minutes.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jahboukie/inner-architect/internal/adapter/email"
	"github.com/jahboukie/inner-architect/internal/adapter/postgres"
	reminderrepo "github.com/jahboukie/inner-architect/internal/adapter/postgres/reminder"
	userrepo "github.com/jahboukie/inner-architect/internal/adapter/postgres/user"
	"github.com/jahboukie/inner-architect/internal/app"
	"github.com/jahboukie/inner-architect/internal/config"
	"github.com/jahboukie/inner-architect/internal/service/reminder"
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

	mail := email.NewSender(cfg.Email, cfg.Server.BaseURL, logger)
	svc := reminder.NewService(logger,
		reminderrepo.New(pool),
		userrepo.New(pool),
		postgres.NewTxManager(pool),
		mail,
	)

	sent, err := svc.SendDue(ctx)
	if err != nil {
		logger.Error("send due reminders", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("reminders sent", slog.Int("sent", sent))
}
