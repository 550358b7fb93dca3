package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Category deletion is blocked while
// items still reference the category (ON DELETE RESTRICT).
const schema = `
CREATE TABLE IF NOT EXISTS categories (
    id   INTEGER PRIMARY KEY,
    name TEXT NOT NULL CHECK (length(name) <= 80)
);

CREATE TABLE IF NOT EXISTS items (
    id          INTEGER PRIMARY KEY,
    name        TEXT NOT NULL CHECK (length(name) <= 80),
    description TEXT CHECK (description IS NULL OR length(description) <= 250),
    category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
    owner_id    TEXT NOT NULL CHECK (length(owner_id) <= 512),
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_items_category ON items(category_id);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
