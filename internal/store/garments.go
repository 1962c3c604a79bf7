package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/g-s-k/wear/internal/model"
)

// SortColumn selects the column a garment listing is ordered by.
type SortColumn string

// Sortable columns, matching the "sort" query parameter values.
const (
	SortName  SortColumn = "name"
	SortCount SortColumn = "count"
	SortWear  SortColumn = "wear"
	SortWash  SortColumn = "wash"
)

// ParseSortColumn validates a user-supplied sort parameter.
func ParseSortColumn(s string) (SortColumn, bool) {
	switch c := SortColumn(s); c {
	case SortName, SortCount, SortWear, SortWash:
		return c, true
	default:
		return "", false
	}
}

const garmentColumns = `id, name, description, count, total, wear, wash, color, tags`

// ListGarments returns all garments, optionally ordered. An empty order means
// the table's natural order.
//
// For the timestamp columns the requested direction is inverted before the
// clause is built: "ascending" in the UI means most-recent-first, while the
// column's natural ascending order is oldest-first.
func ListGarments(ctx context.Context, db *sql.DB, order SortColumn, ascending bool) ([]model.Garment, error) {
	query := `SELECT ` + garmentColumns + ` FROM garments`

	if order != "" {
		var column string
		switch order {
		case SortName:
			column = "name"
		case SortCount:
			column = "count"
		case SortWear:
			ascending = !ascending
			column = "datetime(wear)"
		case SortWash:
			ascending = !ascending
			column = "datetime(wash)"
		default:
			return nil, fmt.Errorf("unknown sort column %q", order)
		}

		query += " ORDER BY " + column
		if ascending {
			query += " ASC"
		} else {
			query += " DESC"
		}
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing garments: %w", err)
	}
	defer rows.Close()

	var garments []model.Garment
	for rows.Next() {
		g, err := scanGarment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning garment: %w", err)
		}
		garments = append(garments, *g)
	}
	return garments, rows.Err()
}

// CreateGarment inserts a new garment and returns its assigned id. Counters
// and timestamps start at their schema defaults.
func CreateGarment(ctx context.Context, db *sql.DB, g *model.Garment) (int64, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO garments (name, description, color, tags) VALUES (?, ?, ?, ?)`,
		g.Name, g.Description, g.Color, model.JoinTags(g.Tags),
	)
	if err != nil {
		return 0, fmt.Errorf("creating garment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting garment id: %w", err)
	}
	return id, nil
}

// GetGarment returns a garment by ID, or nil if no row matches.
func GetGarment(ctx context.Context, db *sql.DB, id int64) (*model.Garment, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+garmentColumns+` FROM garments WHERE id = ?`, id,
	)

	g, err := scanGarment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting garment: %w", err)
	}
	return g, nil
}

// UpdateGarment overwrites name, description, color and tags for the given id,
// leaving counters and timestamps untouched. Returns the affected-row count;
// 0 means the id didn't exist.
func UpdateGarment(ctx context.Context, db *sql.DB, g *model.Garment) (int64, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE garments SET name = ?, description = ?, color = ?, tags = ? WHERE id = ?`,
		g.Name, g.Description, g.Color, model.JoinTags(g.Tags), g.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("updating garment: %w", err)
	}
	return result.RowsAffected()
}

// DeleteGarment removes a garment. Returns the affected-row count; 0 means
// there was nothing to delete.
func DeleteGarment(ctx context.Context, db *sql.DB, id int64) (int64, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM garments WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting garment: %w", err)
	}
	return result.RowsAffected()
}

// LogWear increments the wear counters and stamps the wear time, all in a
// single statement so there is no read-modify-write window.
func LogWear(ctx context.Context, db *sql.DB, id int64) (int64, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE garments SET count = count + 1, total = total + 1, wear = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), id,
	)
	if err != nil {
		return 0, fmt.Errorf("logging wear: %w", err)
	}
	return result.RowsAffected()
}

// LogWash resets the since-wash counter and stamps the wash time. The lifetime
// counter is left alone.
func LogWash(ctx context.Context, db *sql.DB, id int64) (int64, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE garments SET count = 0, wash = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), id,
	)
	if err != nil {
		return 0, fmt.Errorf("logging wash: %w", err)
	}
	return result.RowsAffected()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanGarment decodes one garments row, converting the stored tag and
// timestamp encodings into model values.
func scanGarment(row scanner) (*model.Garment, error) {
	g := &model.Garment{}
	var wear, wash sql.NullString
	var tags string

	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.Count, &g.TotalCount,
		&wear, &wash, &g.Color, &tags)
	if err != nil {
		return nil, err
	}

	if wear.Valid {
		g.LastWear = model.ParseTimestamp(wear.String)
	}
	if wash.Valid {
		g.LastWash = model.ParseTimestamp(wash.String)
	}
	g.Tags = model.ParseTags(tags)
	return g, nil
}
