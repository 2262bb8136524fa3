package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/domain"
	"github.com/jahboukie/inner-architect/pkg/ctxutil"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// History returns one page of a conversation, oldest first. before is a
// keyset cursor: zero means the latest page, otherwise messages strictly
// older than the cursor are returned.
func (s *Service) History(ctx context.Context, contextID uuid.UUID, before time.Time, limit int) ([]domain.ChatMessage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if contextID == uuid.Nil {
		return nil, domain.NewValidationError("context_id", "required")
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	// Ownership check: the context lookup is scoped by user and 404s for
	// foreign contexts.
	if _, err := s.contexts.Get(ctx, userID, contextID); err != nil {
		return nil, fmt.Errorf("chat.History get context: %w", err)
	}

	var (
		messages []domain.ChatMessage
		err      error
	)
	if before.IsZero() {
		messages, err = s.messages.Recent(ctx, userID, contextID, limit)
	} else {
		messages, err = s.messages.ListBefore(ctx, userID, contextID, before, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("chat.History list: %w", err)
	}
	return messages, nil
}
