// Package convctx implements the ConversationContext and MemoryItem
// repositories using PostgreSQL.
package convctx

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/jahboukie/inner-architect/internal/adapter/postgres"
	"github.com/jahboukie/inner-architect/internal/domain"
)

// Repo provides conversation context persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new conversation context repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const contextColumns = `id, user_id, title, summary, themes, message_count, created_at, updated_at`

const createSQL = `
INSERT INTO conversation_contexts (id, user_id, title, created_at, updated_at)
VALUES ($1, $2, $3, now(), now())
RETURNING ` + contextColumns

const getSQL = `
SELECT ` + contextColumns + `
FROM conversation_contexts
WHERE id = $1 AND user_id = $2`

const listSQL = `
SELECT ` + contextColumns + `
FROM conversation_contexts
WHERE user_id = $1
ORDER BY updated_at DESC`

const renameSQL = `
UPDATE conversation_contexts
SET title = $3, updated_at = now()
WHERE id = $1 AND user_id = $2`

const deleteSQL = `
DELETE FROM conversation_contexts
WHERE id = $1 AND user_id = $2`

const setSummarySQL = `
UPDATE conversation_contexts
SET summary = $3, themes = $4, updated_at = now()
WHERE id = $1 AND user_id = $2`

const deleteMemorySQL = `
DELETE FROM memory_items WHERE context_id = $1`

const insertMemorySQL = `
INSERT INTO memory_items (id, context_id, kind, content, relevance, created_at)
VALUES ($1, $2, $3, $4, $5, now())`

const listMemorySQL = `
SELECT id, context_id, kind, content, relevance, created_at
FROM memory_items
WHERE context_id = $1
ORDER BY relevance DESC, created_at DESC`

// Create inserts a new conversation context for the user.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, title string) (*domain.ConversationContext, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanContext(q.QueryRow(ctx, createSQL, uuid.New(), userID, title))
	if err != nil {
		return nil, postgres.MapError(err, "conversation_context", userID)
	}
	return c, nil
}

// Get returns a context by id, scoped to the owning user.
func (r *Repo) Get(ctx context.Context, userID, contextID uuid.UUID) (*domain.ConversationContext, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanContext(q.QueryRow(ctx, getSQL, contextID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "conversation_context", contextID)
	}
	return c, nil
}

// ListByUser returns all contexts of a user, most recently active first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ConversationContext, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL, userID)
	if err != nil {
		return nil, postgres.MapError(err, "conversation_context", userID)
	}
	defer rows.Close()

	var out []domain.ConversationContext
	for rows.Next() {
		c, err := scanContextRows(rows)
		if err != nil {
			return nil, postgres.MapError(err, "conversation_context", userID)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// Rename changes the context title.
func (r *Repo) Rename(ctx context.Context, userID, contextID uuid.UUID, title string) error {
	return r.execOwned(ctx, renameSQL, contextID, userID, title)
}

// Delete removes a context. Messages and memory items cascade via FK.
func (r *Repo) Delete(ctx context.Context, userID, contextID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, contextID, userID)
	if err != nil {
		return postgres.MapError(err, "conversation_context", contextID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("conversation_context %s: %w", contextID, domain.ErrNotFound)
	}
	return nil
}

// SetSummary stores the summarization result.
func (r *Repo) SetSummary(ctx context.Context, userID, contextID uuid.UUID, summary string, themes []string) error {
	return r.execOwned(ctx, setSummarySQL, contextID, userID, summary, themes)
}

// ReplaceMemoryItems swaps the extracted memory of a context. Run inside a
// transaction together with SetSummary.
func (r *Repo) ReplaceMemoryItems(ctx context.Context, contextID uuid.UUID, items []domain.MemoryItem) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteMemorySQL, contextID); err != nil {
		return postgres.MapError(err, "memory_item", contextID)
	}
	for i := range items {
		it := &items[i]
		if it.ID == uuid.Nil {
			it.ID = uuid.New()
		}
		_, err := q.Exec(ctx, insertMemorySQL, it.ID, contextID, string(it.Kind), it.Content, it.Relevance)
		if err != nil {
			return postgres.MapError(err, "memory_item", contextID)
		}
	}
	return nil
}

// ListMemoryItems returns extracted memory for a context, most relevant first.
func (r *Repo) ListMemoryItems(ctx context.Context, contextID uuid.UUID) ([]domain.MemoryItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listMemorySQL, contextID)
	if err != nil {
		return nil, postgres.MapError(err, "memory_item", contextID)
	}
	defer rows.Close()

	var out []domain.MemoryItem
	for rows.Next() {
		var it domain.MemoryItem
		var kind string
		if err := rows.Scan(&it.ID, &it.ContextID, &kind, &it.Content, &it.Relevance, &it.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "memory_item", contextID)
		}
		it.Kind = domain.MemoryItemKind(kind)
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *Repo) execOwned(ctx context.Context, sql string, contextID, userID uuid.UUID, args ...any) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, sql, append([]any{contextID, userID}, args...)...)
	if err != nil {
		return postgres.MapError(err, "conversation_context", contextID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("conversation_context %s: %w", contextID, domain.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContext(row rowScanner) (*domain.ConversationContext, error) {
	var c domain.ConversationContext
	err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.Summary, &c.Themes,
		&c.MessageCount, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanContextRows(rows pgx.Rows) (*domain.ConversationContext, error) {
	return scanContext(rows)
}
