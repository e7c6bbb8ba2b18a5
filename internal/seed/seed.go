package seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Simplici0/printcost/internal/pricing"
)

const samplePieceName = "Ejemplo: soporte de auriculares"

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run adds a sample quote to an empty archive so the quotes page has
// something to show in development. It is idempotent.
func Run(ctx context.Context, db *sql.DB) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}
	if err := ensureSampleQuote(ctx, tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}
	return stats, nil
}

func ensureSampleQuote(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM quotes)`).Scan(&exists); err != nil {
		return fmt.Errorf("check quotes existence: %w", err)
	}
	if exists {
		return nil
	}

	in := pricing.DefaultInput()
	in.PieceName = samplePieceName
	in.ClientName = "Cliente de prueba"
	in.Notes = "Cotización generada al iniciar en modo desarrollo."
	costs := pricing.Calculate(in)

	inputJSON, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode sample input: %w", err)
	}
	costsJSON, err := json.Marshal(costs)
	if err != nil {
		return fmt.Errorf("encode sample costs: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO quotes (piece_name, client_name, notes, currency, selling_price, input_json, costs_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, in.PieceName, in.ClientName, in.Notes, in.Currency, costs.SellingPrice, string(inputJSON), string(costsJSON)); err != nil {
		return fmt.Errorf("insert sample quote: %w", err)
	}

	stats.Inserts++
	return nil
}
