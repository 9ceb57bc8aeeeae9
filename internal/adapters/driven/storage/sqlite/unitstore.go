package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/propunit/internal/core/domain"
	"github.com/custodia-labs/propunit/internal/core/ports/driven"
)

// unitStore implements driven.UnitStore.
type unitStore struct {
	store *Store
}

var _ driven.UnitStore = (*unitStore)(nil)

// Save stores or updates a definition, keyed by symbol.
func (s *unitStore) Save(ctx context.Context, def domain.UnitDefinition) error {
	if def.Symbol == "" || def.ID == "" {
		return domain.ErrInvalidInput
	}
	if def.CreatedAt.IsZero() {
		def.CreatedAt = time.Now().UTC()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO units (id, symbol, category, scale, offset_value, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(symbol) DO UPDATE SET
			category = excluded.category,
			scale = excluded.scale,
			offset_value = excluded.offset_value,
			description = excluded.description
	`, def.ID, def.Symbol, string(def.Category), def.Scale, def.Offset, def.Description, def.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving unit: %w", err)
	}
	return nil
}

// Get retrieves a definition by symbol.
func (s *unitStore) Get(ctx context.Context, symbol string) (*domain.UnitDefinition, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, symbol, category, scale, offset_value, description, created_at
		FROM units WHERE symbol = ?
	`, symbol)

	def, err := scanUnit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning unit: %w", err)
	}
	return def, nil
}

// List returns all definitions ordered by symbol.
func (s *unitStore) List(ctx context.Context) ([]domain.UnitDefinition, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, symbol, category, scale, offset_value, description, created_at
		FROM units ORDER BY symbol
	`)
	if err != nil {
		return nil, fmt.Errorf("querying units: %w", err)
	}
	defer rows.Close()

	var defs []domain.UnitDefinition
	for rows.Next() {
		def, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning unit: %w", err)
		}
		defs = append(defs, *def)
	}
	return defs, rows.Err()
}

// Delete removes a definition by symbol.
func (s *unitStore) Delete(ctx context.Context, symbol string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM units WHERE symbol = ?", symbol)
	if err != nil {
		return fmt.Errorf("deleting unit: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting unit: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUnit(row rowScanner) (*domain.UnitDefinition, error) {
	var def domain.UnitDefinition
	var category string
	var createdAt sql.NullTime
	if err := row.Scan(&def.ID, &def.Symbol, &category, &def.Scale, &def.Offset,
		&def.Description, &createdAt); err != nil {
		return nil, err
	}
	def.Category = domain.Category(category)
	if createdAt.Valid {
		def.CreatedAt = createdAt.Time
	}
	return &def, nil
}
