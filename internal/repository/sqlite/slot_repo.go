// Package sqlite implements the persistence ports on an embedded SQLite
// database. Each named slot is one row; Set replaces the row's value
// wholesale, so a slot behaves like a single atomic cell.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"guestlist/internal/domain"
)

// InitSchema creates the slot table. Safe to call on every start; it uses
// IF NOT EXISTS.
func InitSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS slots (
    name TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

type slotRepository struct {
	DB *sql.DB
}

func NewSlotRepository(db *sql.DB) domain.SlotStore {
	return &slotRepository{
		DB: db,
	}
}

func (r *slotRepository) Get(ctx context.Context, name string) (string, bool, error) {
	query := `
		SELECT value
		FROM slots
		WHERE name = ?
	`
	var value string
	err := r.DB.QueryRowContext(ctx, query, name).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (r *slotRepository) Set(ctx context.Context, name, value string) error {
	query := `
		INSERT INTO slots (name, value)
		VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.DB.ExecContext(ctx, query, name, value); err != nil {
		return fmt.Errorf("failed to set slot %q: %w", name, err)
	}
	return nil
}
