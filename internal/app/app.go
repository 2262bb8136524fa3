package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jahboukie/inner-architect/internal/adapter/email"
	"github.com/jahboukie/inner-architect/internal/adapter/llm"
	"github.com/jahboukie/inner-architect/internal/adapter/postgres"
	analyticsrepo "github.com/jahboukie/inner-architect/internal/adapter/postgres/analytics"
	chatrepo "github.com/jahboukie/inner-architect/internal/adapter/postgres/chat"
	convctxrepo "github.com/jahboukie/inner-architect/internal/adapter/postgres/convctx"
	"github.com/jahboukie/inner-architect/internal/adapter/postgres/emailtoken"
	exerciserepo "github.com/jahboukie/inner-architect/internal/adapter/postgres/exercise"
	"github.com/jahboukie/inner-architect/internal/adapter/postgres/quota"
	reminderrepo "github.com/jahboukie/inner-architect/internal/adapter/postgres/reminder"
	"github.com/jahboukie/inner-architect/internal/adapter/postgres/stats"
	subscriptionrepo "github.com/jahboukie/inner-architect/internal/adapter/postgres/subscription"
	"github.com/jahboukie/inner-architect/internal/adapter/postgres/token"
	userrepo "github.com/jahboukie/inner-architect/internal/adapter/postgres/user"
	"github.com/jahboukie/inner-architect/internal/adapter/stripebilling"
	authpkg "github.com/jahboukie/inner-architect/internal/auth"
	"github.com/jahboukie/inner-architect/internal/config"
	"github.com/jahboukie/inner-architect/internal/service/analytics"
	authsvc "github.com/jahboukie/inner-architect/internal/service/auth"
	"github.com/jahboukie/inner-architect/internal/service/chat"
	"github.com/jahboukie/inner-architect/internal/service/convctx"
	"github.com/jahboukie/inner-architect/internal/service/exercise"
	"github.com/jahboukie/inner-architect/internal/service/reminder"
	"github.com/jahboukie/inner-architect/internal/service/subscription"
	"github.com/jahboukie/inner-architect/internal/service/technique"
	"github.com/jahboukie/inner-architect/internal/transport/middleware"
	"github.com/jahboukie/inner-architect/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires adapters into services, and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Server.RunMigrations {
		if err := postgres.RunMigrations(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("app: run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	tx := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := token.New(pool)
	emailTokens := emailtoken.New(pool)
	messages := chatrepo.New(pool)
	contexts := convctxrepo.New(pool)
	exercises := exerciserepo.New(pool)
	reminders := reminderrepo.New(pool)
	quotas := quota.New(pool)
	subs := subscriptionrepo.New(pool)
	usage := stats.New(pool)
	aggregates := analyticsrepo.New(pool)

	jwt := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	mail := email.NewSender(cfg.Email, cfg.Server.BaseURL, logger)
	billing := stripebilling.NewClient(cfg.Stripe, logger)
	llmClient := llm.NewClient(cfg.LLM, logger)

	subscriptionSvc := subscription.NewService(logger, subs, quotas, users, tx, billing, cfg.Server.BaseURL)
	authSvc := authsvc.NewService(logger, users, tokens, emailTokens, subs, tx, jwt, mail, billing, cfg.Auth)
	techniqueSvc := technique.NewService(logger, usage, subscriptionSvc, llmClient)
	chatSvc := chat.NewService(logger, messages, contexts, usage, tx, subscriptionSvc, techniqueSvc, llmClient, cfg.Chat)
	convctxSvc := convctx.NewService(logger, contexts, messages, tx, llmClient, cfg.Chat)
	exerciseSvc := exercise.NewService(logger, exercises, subscriptionSvc)
	reminderSvc := reminder.NewService(logger, reminders, users, tx, mail)
	analyticsSvc := analytics.NewService(logger, aggregates)

	mux := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, BuildVersion()),
		Auth:         rest.NewAuthHandler(authSvc, logger),
		Chat:         rest.NewChatHandler(chatSvc, logger),
		Contexts:     rest.NewContextHandler(convctxSvc, logger),
		Techniques:   rest.NewTechniqueHandler(techniqueSvc, logger),
		Exercises:    rest.NewExerciseHandler(exerciseSvc, logger),
		Reminders:    rest.NewReminderHandler(reminderSvc, logger),
		Subscription: rest.NewSubscriptionHandler(subscriptionSvc, logger),
		Webhook:      rest.NewWebhookHandler(billing, subscriptionSvc, logger),
		Admin:        rest.NewAdminHandler(analyticsSvc, logger),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(jwt),
		middleware.SessionID,
	)(mux)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("app: http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}

	return nil
}
