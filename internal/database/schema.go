package database

import (
	"context"
	"database/sql"
	"fmt"
)

// The whole order collection lives in one JSONB document per row.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS order_collections (
    name TEXT PRIMARY KEY,
    doc JSONB NOT NULL DEFAULT '[]'::jsonb,
    updated_at TIMESTAMPTZ DEFAULT NOW()
);
`

const seedSQL = `INSERT INTO order_collections (name, doc) VALUES ($1, '[]'::jsonb) ON CONFLICT (name) DO NOTHING`

// InitSchema creates the collection table and an empty collection under name
// unless one already exists.
func InitSchema(ctx context.Context, db *sql.DB, name string) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, seedSQL, name); err != nil {
		return fmt.Errorf("failed to seed collection %q: %w", name, err)
	}
	return nil
}
