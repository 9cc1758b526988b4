// Package store persists column-to-field mappings per sheet session.
//
// The core engine computes mappings fresh on every call and holds no state;
// this package is the persistence collaborator that remembers a user's
// confirmed (or disambiguated) column assignments so a sheet can be
// re-identified by column letter without re-deriving field identity.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

// SavedMapping is one persisted column assignment. The core treats the
// column letter and display name as opaque strings for re-identification;
// FieldKey ties the column back to the canonical catalog.
type SavedMapping struct {
	ID           uuid.UUID `json:"id"`
	SheetID      string    `json:"sheetId"`
	ColumnLetter string    `json:"columnLetter"`
	FieldKey     string    `json:"fieldKey"`
	DisplayName  string    `json:"displayName"`
	Position     int       `json:"position"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Store provides access to persisted sheet mappings.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store backed by a pgx connection pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

const schema = `
CREATE TABLE IF NOT EXISTS sheet_mappings (
    id            UUID PRIMARY KEY,
    sheet_id      TEXT NOT NULL,
    column_letter TEXT NOT NULL,
    field_key     TEXT NOT NULL,
    display_name  TEXT NOT NULL,
    position      INT  NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (sheet_id, column_letter)
);
CREATE INDEX IF NOT EXISTS idx_sheet_mappings_sheet ON sheet_mappings (sheet_id, position);
`

// EnsureSchema creates the mappings table if it does not exist.
// Called once at startup.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Replace atomically swaps the full mapping set for a sheet. Missing IDs are
// generated; positions default to list order when unset.
func (s *Store) Replace(ctx context.Context, sheetID string, mappings []SavedMapping) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM sheet_mappings WHERE sheet_id = $1`, sheetID); err != nil {
		return fmt.Errorf("clear mappings: %w", err)
	}

	for i, m := range mappings {
		id := m.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		position := m.Position
		if position == 0 {
			position = i
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO sheet_mappings (id, sheet_id, column_letter, field_key, display_name, position)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			id, sheetID, m.ColumnLetter, m.FieldKey, m.DisplayName, position)
		if err != nil {
			return fmt.Errorf("insert mapping %s: %w", m.ColumnLetter, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// List returns a sheet's mappings ordered by position.
func (s *Store) List(ctx context.Context, sheetID string) ([]SavedMapping, error) {
	return listMappings(ctx, s.pool, sheetID)
}

// Delete removes all mappings for a sheet and returns how many were removed.
func (s *Store) Delete(ctx context.Context, sheetID string) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM sheet_mappings WHERE sheet_id = $1`, sheetID)
	if err != nil {
		return 0, fmt.Errorf("delete mappings: %w", err)
	}
	return tag.RowsAffected(), nil
}

func listMappings(ctx context.Context, db DBTX, sheetID string) ([]SavedMapping, error) {
	rows, err := db.Query(ctx,
		`SELECT id, sheet_id, column_letter, field_key, display_name, position, created_at
		 FROM sheet_mappings
		 WHERE sheet_id = $1
		 ORDER BY position, column_letter`,
		sheetID)
	if err != nil {
		return nil, fmt.Errorf("query mappings: %w", err)
	}
	defer rows.Close()

	var out []SavedMapping
	for rows.Next() {
		var m SavedMapping
		if err := rows.Scan(&m.ID, &m.SheetID, &m.ColumnLetter, &m.FieldKey,
			&m.DisplayName, &m.Position, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan mapping: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mappings: %w", err)
	}
	return out, nil
}
