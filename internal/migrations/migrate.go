package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/pressly/goose/v3"
)

// Up runs all pending SQL migrations found in migrationsDir.
func Up(db *sql.DB, migrationsDir string) error {
	_, err := UpContext(context.Background(), db, migrationsDir)
	return err
}

// UpContext is Up with a context, reporting the number of applied migrations.
func UpContext(ctx context.Context, db *sql.DB, migrationsDir string) (int, error) {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, os.DirFS(migrationsDir))
	if err != nil {
		return 0, fmt.Errorf("create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("run goose up migrations: %w", err)
	}

	return len(results), nil
}
