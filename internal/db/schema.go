package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. One row per garment; tags are stored as
// comma-joined text and wear/wash as RFC3339 text, both decoded by the model layer.
const schema = `
CREATE TABLE IF NOT EXISTS garments (
    id          INTEGER PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    count       INTEGER NOT NULL DEFAULT 0,
    total       INTEGER NOT NULL DEFAULT 0,
    wear        TEXT,
    wash        TEXT,
    color       TEXT NOT NULL DEFAULT '#000000',
    tags        TEXT NOT NULL DEFAULT '',
    photo       BLOB,
    photo_mime  TEXT
);
`

// EnsureSchema creates all tables if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
