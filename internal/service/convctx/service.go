// Package convctx manages conversation contexts: the named threads that
// group chat messages, plus the LLM summarization pass that distills a
// thread into a summary, themes and durable memory items.
package convctx

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/adapter/llm"
	"github.com/jahboukie/inner-architect/internal/config"
	"github.com/jahboukie/inner-architect/internal/domain"
	"github.com/jahboukie/inner-architect/pkg/ctxutil"
)

// contextRepo defines the conversation context repository interface needed by the service.
type contextRepo interface {
	Create(ctx context.Context, userID uuid.UUID, title string) (*domain.ConversationContext, error)
	Get(ctx context.Context, userID, contextID uuid.UUID) (*domain.ConversationContext, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ConversationContext, error)
	Rename(ctx context.Context, userID, contextID uuid.UUID, title string) error
	Delete(ctx context.Context, userID, contextID uuid.UUID) error
	SetSummary(ctx context.Context, userID, contextID uuid.UUID, summary string, themes []string) error
	ReplaceMemoryItems(ctx context.Context, contextID uuid.UUID, items []domain.MemoryItem) error
}

// chatRepo defines the chat message reading interface needed by the service.
type chatRepo interface {
	Recent(ctx context.Context, userID, contextID uuid.UUID, limit int) ([]domain.ChatMessage, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// completer defines the LLM completion interface needed by the service.
type completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

// Service implements conversation context operations.
type Service struct {
	log      *slog.Logger
	contexts contextRepo
	messages chatRepo
	tx       txManager
	llm      completer
	cfg      config.ChatConfig
}

// NewService creates a new conversation context service instance.
func NewService(
	logger *slog.Logger,
	contexts contextRepo,
	messages chatRepo,
	tx txManager,
	llm completer,
	cfg config.ChatConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "convctx"),
		contexts: contexts,
		messages: messages,
		tx:       tx,
		llm:      llm,
		cfg:      cfg,
	}
}

// Create starts a fresh, empty conversation context.
func (s *Service) Create(ctx context.Context, title string) (*domain.ConversationContext, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = "New conversation"
	}
	if len([]rune(title)) > 120 {
		return nil, domain.NewValidationError("title", "longer than 120 characters")
	}

	conv, err := s.contexts.Create(ctx, userID, title)
	if err != nil {
		return nil, fmt.Errorf("convctx.Create: %w", err)
	}
	return conv, nil
}

// List returns the user's conversation contexts, most recently active first.
func (s *Service) List(ctx context.Context) ([]domain.ConversationContext, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	contexts, err := s.contexts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("convctx.List: %w", err)
	}
	return contexts, nil
}

// Get returns one conversation context owned by the caller.
func (s *Service) Get(ctx context.Context, contextID uuid.UUID) (*domain.ConversationContext, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if contextID == uuid.Nil {
		return nil, domain.NewValidationError("context_id", "required")
	}
	conv, err := s.contexts.Get(ctx, userID, contextID)
	if err != nil {
		return nil, fmt.Errorf("convctx.Get: %w", err)
	}
	return conv, nil
}

// Rename retitles a conversation context.
func (s *Service) Rename(ctx context.Context, contextID uuid.UUID, title string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if contextID == uuid.Nil {
		return domain.NewValidationError("context_id", "required")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.NewValidationError("title", "required")
	}
	if len([]rune(title)) > 120 {
		return domain.NewValidationError("title", "longer than 120 characters")
	}
	if err := s.contexts.Rename(ctx, userID, contextID, title); err != nil {
		return fmt.Errorf("convctx.Rename: %w", err)
	}
	return nil
}

// Delete removes a conversation context together with its messages and
// memory items.
func (s *Service) Delete(ctx context.Context, contextID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if contextID == uuid.Nil {
		return domain.NewValidationError("context_id", "required")
	}
	if err := s.contexts.Delete(ctx, userID, contextID); err != nil {
		return fmt.Errorf("convctx.Delete: %w", err)
	}
	s.log.InfoContext(ctx, "conversation context deleted", slog.String("context_id", contextID.String()))
	return nil
}
