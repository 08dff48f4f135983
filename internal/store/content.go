package store

import (
	"context"
	"database/sql"
	"time"

	"folio-go/internal/model"
)

const contentColumns = "id, section, key, value, kind, updated_at"

func scanContent(scanner interface{ Scan(dest ...any) error }) (model.ContentRecord, error) {
	var c model.ContentRecord
	err := scanner.Scan(&c.ID, &c.Section, &c.Key, &c.Value, &c.Kind, &c.UpdatedAt)
	return c, err
}

func collectContent(rows *sql.Rows) ([]model.ContentRecord, error) {
	defer func() { _ = rows.Close() }()

	records := make([]model.ContentRecord, 0)
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, c)
	}
	return records, rows.Err()
}

// ListContent returns all content records in insertion (id) order.
func (q *Queries) ListContent(ctx context.Context) ([]model.ContentRecord, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+contentColumns+" FROM contents ORDER BY id")
	if err != nil {
		return nil, err
	}
	return collectContent(rows)
}

// ListContentBySection returns the records whose section matches exactly.
// An unknown section yields an empty slice, not an error.
func (q *Queries) ListContentBySection(ctx context.Context, section string) ([]model.ContentRecord, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+contentColumns+" FROM contents WHERE section = ? ORDER BY id", section)
	if err != nil {
		return nil, err
	}
	return collectContent(rows)
}

// GetContentByID fetches a single content record.
func (q *Queries) GetContentByID(ctx context.Context, id int64) (model.ContentRecord, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+contentColumns+" FROM contents WHERE id = ?", id)
	return scanContent(row)
}

// UpdateContentValueParams holds the fields for UpdateContentValue.
type UpdateContentValueParams struct {
	ID        int64
	Value     string
	UpdatedAt time.Time
}

// UpdateContentValue replaces a record's value and refreshes its timestamp.
// Section, key, and kind are immutable after creation. Returns the updated
// record, or sql.ErrNoRows if the id does not exist.
func (q *Queries) UpdateContentValue(ctx context.Context, arg UpdateContentValueParams) (model.ContentRecord, error) {
	res, err := q.db.ExecContext(ctx,
		"UPDATE contents SET value = ?, updated_at = ? WHERE id = ?",
		arg.Value, arg.UpdatedAt, arg.ID)
	if err != nil {
		return model.ContentRecord{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return model.ContentRecord{}, err
	}
	if affected == 0 {
		return model.ContentRecord{}, sql.ErrNoRows
	}
	return q.GetContentByID(ctx, arg.ID)
}

// CreateContentParams holds the fields for CreateContent.
type CreateContentParams struct {
	Section   string
	Key       string
	Value     string
	Kind      string
	UpdatedAt time.Time
}

// CreateContent inserts a content record. The unique (section, key) index
// rejects duplicates.
func (q *Queries) CreateContent(ctx context.Context, arg CreateContentParams) (model.ContentRecord, error) {
	res, err := q.db.ExecContext(ctx,
		"INSERT INTO contents (section, key, value, kind, updated_at) VALUES (?, ?, ?, ?, ?)",
		arg.Section, arg.Key, arg.Value, arg.Kind, arg.UpdatedAt)
	if err != nil {
		return model.ContentRecord{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.ContentRecord{}, err
	}
	return model.ContentRecord{
		ID:        id,
		Section:   arg.Section,
		Key:       arg.Key,
		Value:     arg.Value,
		Kind:      arg.Kind,
		UpdatedAt: arg.UpdatedAt,
	}, nil
}

// DeleteContent removes a record. Returns sql.ErrNoRows if the id does not
// exist. The admin editor never calls this; it exists for completeness and
// for operational cleanup.
func (q *Queries) DeleteContent(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, "DELETE FROM contents WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountContent returns the number of content rows.
func (q *Queries) CountContent(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM contents").Scan(&n)
	return n, err
}
