package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SetGarmentPhoto stores a garment's photo data.
func SetGarmentPhoto(ctx context.Context, db *sql.DB, id int64, photo []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE garments SET photo = ?, photo_mime = ? WHERE id = ?`,
		photo, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting garment photo: %w", err)
	}
	return nil
}

// GetGarmentPhoto returns a garment's photo data and MIME type. Both are
// empty if the garment has no photo or doesn't exist.
func GetGarmentPhoto(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var photo []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT photo, photo_mime FROM garments WHERE id = ?`, id,
	).Scan(&photo, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting garment photo: %w", err)
	}
	return photo, mime.String, nil
}
