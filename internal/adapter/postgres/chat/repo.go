// Package chat implements the ChatMessage repository using PostgreSQL.
package chat

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/jahboukie/inner-architect/internal/adapter/postgres"
	"github.com/jahboukie/inner-architect/internal/domain"
)

// Repo provides chat message persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new chat repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const messageColumns = `id, user_id, context_id, session_id, user_message, ai_response, mood, technique, created_at`

const insertSQL = `
INSERT INTO chat_messages (id, user_id, context_id, session_id, user_message, ai_response, mood, technique, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const bumpContextSQL = `
UPDATE conversation_contexts
SET message_count = message_count + 1, updated_at = now()
WHERE id = $1`

// recentSQL fetches the newest rows first; the repo reverses them so the
// caller receives chronological order.
const recentSQL = `
SELECT ` + messageColumns + `
FROM chat_messages
WHERE context_id = $1 AND user_id = $2
ORDER BY created_at DESC
LIMIT $3`

const listSQL = `
SELECT ` + messageColumns + `
FROM chat_messages
WHERE context_id = $1 AND user_id = $2 AND created_at < $3
ORDER BY created_at DESC
LIMIT $4`

// Insert persists one exchange and bumps the owning context's message
// count. Run inside a transaction so the counter cannot drift.
func (r *Repo) Insert(ctx context.Context, m *domain.ChatMessage) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	_, err := q.Exec(ctx, insertSQL,
		m.ID, m.UserID, m.ContextID, m.SessionID, m.UserMessage, m.AIResponse,
		string(m.Mood), m.Technique.String(), m.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "chat_message", m.ID)
	}

	if _, err := q.Exec(ctx, bumpContextSQL, m.ContextID); err != nil {
		return postgres.MapError(err, "conversation_context", m.ContextID)
	}
	return nil
}

// Recent returns the last limit messages of a context in chronological order.
func (r *Repo) Recent(ctx context.Context, userID, contextID uuid.UUID, limit int) ([]domain.ChatMessage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, recentSQL, contextID, userID, limit)
	if err != nil {
		return nil, postgres.MapError(err, "chat_message", contextID)
	}
	msgs, err := scanMessages(rows)
	if err != nil {
		return nil, postgres.MapError(err, "chat_message", contextID)
	}

	// newest-first from SQL; flip to chronological
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// ListBefore returns up to limit messages older than before, newest first.
// Pass time.Now() for the first page.
func (r *Repo) ListBefore(ctx context.Context, userID, contextID uuid.UUID, before time.Time, limit int) ([]domain.ChatMessage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL, contextID, userID, before, limit)
	if err != nil {
		return nil, postgres.MapError(err, "chat_message", contextID)
	}
	msgs, err := scanMessages(rows)
	if err != nil {
		return nil, postgres.MapError(err, "chat_message", contextID)
	}
	return msgs, nil
}

func scanMessages(rows pgx.Rows) ([]domain.ChatMessage, error) {
	defer rows.Close()

	var msgs []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		var mood, technique string
		if err := rows.Scan(&m.ID, &m.UserID, &m.ContextID, &m.SessionID,
			&m.UserMessage, &m.AIResponse, &mood, &technique, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Mood = domain.Mood(mood)
		m.Technique = domain.TechniqueID(technique)
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
