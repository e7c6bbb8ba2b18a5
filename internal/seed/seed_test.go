package seed

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/Simplici0/printcost/internal/db"
	"github.com/Simplici0/printcost/internal/migrations"
	"github.com/Simplici0/printcost/internal/quotes"
)

func TestRunIsIdempotent(t *testing.T) {
	database, err := db.Open(filepath.Join(t.TempDir(), "seed.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := migrations.Up(database, "../../migrations"); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	first, err := Run(t.Context(), database)
	if err != nil {
		t.Fatalf("first seed run failed: %v", err)
	}
	if first.Inserts != 1 {
		t.Fatalf("first run inserts = %d, want 1", first.Inserts)
	}

	second, err := Run(t.Context(), database)
	if err != nil {
		t.Fatalf("second seed run failed: %v", err)
	}
	if second.Inserts != 0 {
		t.Fatalf("second run inserts = %d, want 0", second.Inserts)
	}

	assertCount(t, database, 1)

	list, err := quotes.NewSQLiteStore(database).List(t.Context(), "auriculares")
	if err != nil {
		t.Fatalf("list quotes: %v", err)
	}
	if len(list) != 1 || list[0].PieceName != samplePieceName {
		t.Fatalf("sample quote not readable through the store: %+v", list)
	}
}

func assertCount(t *testing.T, database *sql.DB, expected int) {
	t.Helper()

	var got int
	if err := database.QueryRow(`SELECT COUNT(*) FROM quotes`).Scan(&got); err != nil {
		t.Fatalf("count quotes: %v", err)
	}
	if got != expected {
		t.Fatalf("quotes count = %d, want %d", got, expected)
	}
}
