package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/jahboukie/inner-architect/migrations"
)

// RunMigrations applies all pending goose migrations from the embedded
// filesystem. Goose requires database/sql, so this opens its own short-lived
// connection instead of reusing the pgx pool.
func RunMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres.RunMigrations: open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("postgres.RunMigrations: provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("postgres.RunMigrations: up: %w", err)
	}
	return nil
}
