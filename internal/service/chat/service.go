// Package chat implements the coaching conversation loop: quota-gated
// message sending, history assembly, mood detection and technique-guided
// LLM replies.
package chat

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/adapter/llm"
	"github.com/jahboukie/inner-architect/internal/config"
	"github.com/jahboukie/inner-architect/internal/domain"
)

// chatRepo defines the chat message repository interface needed by the service.
type chatRepo interface {
	Insert(ctx context.Context, m *domain.ChatMessage) error
	Recent(ctx context.Context, userID, contextID uuid.UUID, limit int) ([]domain.ChatMessage, error)
	ListBefore(ctx context.Context, userID, contextID uuid.UUID, before time.Time, limit int) ([]domain.ChatMessage, error)
}

// contextRepo defines the conversation context repository interface needed by the service.
type contextRepo interface {
	Create(ctx context.Context, userID uuid.UUID, title string) (*domain.ConversationContext, error)
	Get(ctx context.Context, userID, contextID uuid.UUID) (*domain.ConversationContext, error)
	ListMemoryItems(ctx context.Context, contextID uuid.UUID) ([]domain.MemoryItem, error)
}

// statsRepo defines the technique usage stats interface needed by the service.
type statsRepo interface {
	IncrementUsage(ctx context.Context, sessionID string, technique domain.TechniqueID) error
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// quotaChecker defines the quota consumption interface needed by the service.
type quotaChecker interface {
	CheckAndConsume(ctx context.Context, category domain.QuotaCategory) error
}

// coach defines the technique toolbox interface needed by the service.
type coach interface {
	DetectMood(text string) domain.Mood
	Recommend(text string, mood domain.Mood) domain.TechniqueID
	Prompt(id domain.TechniqueID) string
}

// completer defines the LLM completion interface needed by the service.
type completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

// Service implements chat operations.
type Service struct {
	log      *slog.Logger
	messages chatRepo
	contexts contextRepo
	stats    statsRepo
	tx       txManager
	quota    quotaChecker
	coach    coach
	llm      completer
	cfg      config.ChatConfig
}

// NewService creates a new chat service instance.
func NewService(
	logger *slog.Logger,
	messages chatRepo,
	contexts contextRepo,
	stats statsRepo,
	tx txManager,
	quota quotaChecker,
	coach coach,
	llm completer,
	cfg config.ChatConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "chat"),
		messages: messages,
		contexts: contexts,
		stats:    stats,
		tx:       tx,
		quota:    quota,
		coach:    coach,
		llm:      llm,
		cfg:      cfg,
	}
}
