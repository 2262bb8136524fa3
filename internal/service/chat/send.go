package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/adapter/llm"
	"github.com/jahboukie/inner-architect/internal/domain"
	"github.com/jahboukie/inner-architect/pkg/ctxutil"
)

const basePrompt = "You are Inner Architect, a supportive coach grounded in NLP " +
	"(Neuro-Linguistic Programming) self-help techniques. Respond with warmth and " +
	"practicality, in at most three short paragraphs. Never present yourself as a " +
	"therapist and suggest professional help when a message indicates crisis or harm."

// SendInput holds parameters for the send message operation.
type SendInput struct {
	Message   string
	ContextID uuid.UUID          // zero value starts a new conversation context
	Technique domain.TechniqueID // empty lets mood-based recommendation pick one
}

// Validate validates the send input against the configured message bound.
func (i SendInput) Validate(maxLen int) error {
	msg := strings.TrimSpace(i.Message)
	if msg == "" {
		return domain.NewValidationError("message", "required")
	}
	if len(msg) > maxLen {
		return domain.NewValidationError("message", fmt.Sprintf("longer than %d characters", maxLen))
	}
	if i.Technique != "" && !i.Technique.Valid() {
		return domain.NewValidationError("technique", "unknown technique")
	}
	return nil
}

// SendResult is the reply to one chat message.
type SendResult struct {
	ContextID        uuid.UUID
	Response         string
	Mood             domain.Mood
	Technique        domain.TechniqueID
	SuggestSummarize bool
}

// SendMessage runs the conversation loop for one user message: consume
// quota, assemble history, pick a technique by detected mood, call the LLM
// and persist the exchange.
//
// Anonymous visitors get a reply but no persistence: conversation contexts
// are owned by accounts, so their exchanges are quota-metered and stateless.
func (s *Service) SendMessage(ctx context.Context, input SendInput) (*SendResult, error) {
	if err := input.Validate(s.cfg.MaxMessageLen); err != nil {
		return nil, err
	}
	message := strings.TrimSpace(input.Message)

	if err := s.quota.CheckAndConsume(ctx, domain.QuotaMessages); err != nil {
		return nil, err
	}

	mood := s.coach.DetectMood(message)
	technique := input.Technique
	if technique == "" {
		technique = s.coach.Recommend(message, mood)
	}

	userID, authenticated := ctxutil.UserIDFromCtx(ctx)

	var (
		conv    *domain.ConversationContext
		history []domain.ChatMessage
	)
	if authenticated {
		var err error
		conv, err = s.resolveContext(ctx, userID, input.ContextID, message)
		if err != nil {
			return nil, fmt.Errorf("chat.SendMessage resolve context: %w", err)
		}
		history, err = s.messages.Recent(ctx, userID, conv.ID, s.cfg.HistoryDepth)
		if err != nil {
			return nil, fmt.Errorf("chat.SendMessage load history: %w", err)
		}
	}

	req := llm.Request{
		System:  s.systemPrompt(ctx, conv, technique),
		History: toTranscript(history),
		Message: message,
	}
	response, err := s.llm.Complete(ctx, req)
	if err != nil {
		if errors.Is(err, llm.ErrNoProvider) {
			return nil, fmt.Errorf("chat.SendMessage: %w", err)
		}
		return nil, fmt.Errorf("chat.SendMessage complete: %w", err)
	}

	result := &SendResult{
		Response:  response,
		Mood:      mood,
		Technique: technique,
	}

	sessionID := ctxutil.SessionIDFromCtx(ctx)
	if !authenticated {
		if sessionID != "" {
			if err := s.stats.IncrementUsage(ctx, sessionID, technique); err != nil {
				s.log.WarnContext(ctx, "usage stats update failed", slog.String("error", err.Error()))
			}
		}
		return result, nil
	}

	// Persisting the exchange and bumping usage stats happen together: the
	// message insert also advances the context's message counter.
	if sessionID == "" {
		sessionID = userID.String()
	}
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.messages.Insert(txCtx, &domain.ChatMessage{
			ID:          uuid.New(),
			UserID:      userID,
			ContextID:   conv.ID,
			SessionID:   sessionID,
			UserMessage: message,
			AIResponse:  response,
			Mood:        mood,
			Technique:   technique,
		}); err != nil {
			return fmt.Errorf("insert message: %w", err)
		}
		if err := s.stats.IncrementUsage(txCtx, sessionID, technique); err != nil {
			return fmt.Errorf("increment usage: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("chat.SendMessage persist: %w", err)
	}

	result.ContextID = conv.ID
	result.SuggestSummarize = conv.MessageCount+1 >= s.cfg.SummaryThreshold && conv.Summary == ""

	s.log.InfoContext(ctx, "chat message handled",
		slog.String("context_id", conv.ID.String()),
		slog.String("mood", string(mood)),
		slog.String("technique", technique.String()))

	return result, nil
}

// resolveContext loads the addressed context or starts a new one titled
// from the first message.
func (s *Service) resolveContext(ctx context.Context, userID, contextID uuid.UUID, message string) (*domain.ConversationContext, error) {
	if contextID != uuid.Nil {
		return s.contexts.Get(ctx, userID, contextID)
	}
	return s.contexts.Create(ctx, userID, titleFrom(message))
}

// systemPrompt assembles the coaching prompt: base persona, the selected
// technique fragment, and for existing contexts the stored summary and
// memory items.
func (s *Service) systemPrompt(ctx context.Context, conv *domain.ConversationContext, technique domain.TechniqueID) string {
	var b strings.Builder
	b.WriteString(basePrompt)

	if fragment := s.coach.Prompt(technique); fragment != "" {
		b.WriteString("\n\n")
		b.WriteString(fragment)
	}

	if conv == nil {
		return b.String()
	}

	if conv.Summary != "" {
		b.WriteString("\n\nConversation so far: ")
		b.WriteString(conv.Summary)
	}

	items, err := s.contexts.ListMemoryItems(ctx, conv.ID)
	if err != nil {
		s.log.WarnContext(ctx, "memory items unavailable", slog.String("error", err.Error()))
		return b.String()
	}
	if len(items) > 0 {
		b.WriteString("\n\nKnown about the user:")
		for _, item := range items {
			fmt.Fprintf(&b, "\n- (%s) %s", item.Kind, item.Content)
		}
	}
	return b.String()
}

// titleFrom derives a context title from the opening message.
func titleFrom(message string) string {
	const maxTitle = 60
	title := strings.Join(strings.Fields(message), " ")
	if runes := []rune(title); len(runes) > maxTitle {
		title = strings.TrimSpace(string(runes[:maxTitle])) + "…"
	}
	return title
}

func toTranscript(history []domain.ChatMessage) []domain.TranscriptEntry {
	out := make([]domain.TranscriptEntry, 0, len(history)*2)
	for _, m := range history {
		out = append(out,
			domain.TranscriptEntry{Role: "user", Content: m.UserMessage},
			domain.TranscriptEntry{Role: "assistant", Content: m.AIResponse},
		)
	}
	return out
}
