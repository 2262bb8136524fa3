package convctx

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/adapter/llm"
	"github.com/jahboukie/inner-architect/internal/domain"
	"github.com/jahboukie/inner-architect/pkg/ctxutil"
)

// summarizeDepth bounds how much transcript is replayed into the
// summarization prompt.
const summarizeDepth = 50

const summarizePrompt = `Summarize the coaching conversation below for future sessions.

Respond with a single JSON object and nothing else, in this exact shape:
{
  "summary": "two to four sentences capturing where the user is and what was worked on",
  "themes": ["up to five short recurring themes"],
  "memory_items": [
    {"kind": "fact|goal|preference|concern", "content": "one durable fact worth remembering", "relevance": 0.9}
  ]
}`

// SummarizeResult is the distilled state of one conversation context.
type SummarizeResult struct {
	Summary     string
	Themes      []string
	MemoryItems []domain.MemoryItem
}

// Summarize distills a conversation into a summary, themes and memory
// items, and stores them on the context. The previous memory items are
// replaced wholesale: the LLM sees the full recent transcript, so its
// extraction supersedes earlier passes.
func (s *Service) Summarize(ctx context.Context, contextID uuid.UUID) (*SummarizeResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if contextID == uuid.Nil {
		return nil, domain.NewValidationError("context_id", "required")
	}

	conv, err := s.contexts.Get(ctx, userID, contextID)
	if err != nil {
		return nil, fmt.Errorf("convctx.Summarize get context: %w", err)
	}

	history, err := s.messages.Recent(ctx, userID, conv.ID, summarizeDepth)
	if err != nil {
		return nil, fmt.Errorf("convctx.Summarize load history: %w", err)
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("convctx.Summarize: empty conversation: %w", domain.ErrConflict)
	}

	raw, err := s.llm.Complete(ctx, llm.Request{
		System:  summarizePrompt,
		Message: transcriptText(history),
	})
	if err != nil {
		return nil, fmt.Errorf("convctx.Summarize complete: %w", err)
	}

	result := parseSummary(raw)
	if result.Summary == "" {
		s.log.WarnContext(ctx, "summarization reply unusable, keeping raw text",
			slog.String("context_id", conv.ID.String()))
		result.Summary = strings.TrimSpace(raw)
	}
	for i := range result.MemoryItems {
		result.MemoryItems[i].ID = uuid.New()
		result.MemoryItems[i].ContextID = conv.ID
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.contexts.SetSummary(txCtx, userID, conv.ID, result.Summary, result.Themes); err != nil {
			return fmt.Errorf("set summary: %w", err)
		}
		if err := s.contexts.ReplaceMemoryItems(txCtx, conv.ID, result.MemoryItems); err != nil {
			return fmt.Errorf("replace memory items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("convctx.Summarize persist: %w", err)
	}

	s.log.InfoContext(ctx, "conversation summarized",
		slog.String("context_id", conv.ID.String()),
		slog.Int("memory_items", len(result.MemoryItems)))

	return &result, nil
}

// transcriptText renders the exchange oldest-first as plain dialogue.
func transcriptText(history []domain.ChatMessage) string {
	var b strings.Builder
	for _, m := range history {
		b.WriteString("User: ")
		b.WriteString(m.UserMessage)
		b.WriteString("\nCoach: ")
		b.WriteString(m.AIResponse)
		b.WriteString("\n")
	}
	return b.String()
}
