// Package quotes archives saved estimates.
package quotes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Simplici0/printcost/internal/pricing"
)

// ErrNotFound is returned when a quote id does not exist.
var ErrNotFound = errors.New("quote not found")

const timeLayout = "2006-01-02 15:04:05"

// Noop accepts saves without storing anything.
type Noop struct{}

func (Noop) Save(context.Context, pricing.CostInput, pricing.CalculatedCosts) (int64, error) {
	return 0, nil
}

// Summary is one row of the quotes list.
type Summary struct {
	ID           int64
	CreatedAt    string
	PieceName    string
	ClientName   string
	Currency     string
	SellingPrice float64
}

// Quote is a stored snapshot. Costs are the values calculated at save time
// and are never recalculated on read.
type Quote struct {
	ID        int64
	CreatedAt string
	Input     pricing.CostInput
	Costs     pricing.CalculatedCosts
}

// SQLiteStore keeps quotes in the quotes table.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

// Save stores a snapshot of in and costs and returns the new quote id.
func (s *SQLiteStore) Save(ctx context.Context, in pricing.CostInput, costs pricing.CalculatedCosts) (int64, error) {
	inputJSON, err := json.Marshal(in)
	if err != nil {
		return 0, fmt.Errorf("encode quote input: %w", err)
	}
	costsJSON, err := json.Marshal(costs)
	if err != nil {
		return 0, fmt.Errorf("encode quote costs: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO quotes (created_at, piece_name, client_name, notes, currency, selling_price, input_json, costs_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		s.now().UTC().Format(timeLayout),
		strings.TrimSpace(in.PieceName),
		strings.TrimSpace(in.ClientName),
		strings.TrimSpace(in.Notes),
		pricing.NormalizeCurrency(in.Currency),
		costs.SellingPrice,
		string(inputJSON),
		string(costsJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("insert quote: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read quote id: %w", err)
	}
	return id, nil
}

// List returns saved quotes, newest first. A non-empty query filters by
// piece name, client name or notes.
func (s *SQLiteStore) List(ctx context.Context, query string) ([]Summary, error) {
	query = strings.TrimSpace(query)
	search := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			id,
			created_at,
			COALESCE(piece_name, ''),
			COALESCE(client_name, ''),
			currency,
			selling_price
		FROM quotes
		WHERE (? = ''
			OR COALESCE(piece_name, '') LIKE ?
			OR COALESCE(client_name, '') LIKE ?
			OR COALESCE(notes, '') LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search, search)
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}
	defer rows.Close()

	quotes := make([]Summary, 0)
	for rows.Next() {
		var item Summary
		if err := rows.Scan(&item.ID, &item.CreatedAt, &item.PieceName, &item.ClientName, &item.Currency, &item.SellingPrice); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		quotes = append(quotes, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quotes: %w", err)
	}

	return quotes, nil
}

// Get returns the stored snapshot for id.
func (s *SQLiteStore) Get(ctx context.Context, id int64) (Quote, error) {
	var (
		q         Quote
		inputJSON string
		costsJSON string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, input_json, costs_json
		FROM quotes
		WHERE id = ?
	`, id).Scan(&q.ID, &q.CreatedAt, &inputJSON, &costsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return Quote{}, ErrNotFound
	}
	if err != nil {
		return Quote{}, fmt.Errorf("query quote %d: %w", id, err)
	}

	if err := json.Unmarshal([]byte(inputJSON), &q.Input); err != nil {
		return Quote{}, fmt.Errorf("decode quote input: %w", err)
	}
	if err := json.Unmarshal([]byte(costsJSON), &q.Costs); err != nil {
		return Quote{}, fmt.Errorf("decode quote costs: %w", err)
	}
	return q, nil
}
