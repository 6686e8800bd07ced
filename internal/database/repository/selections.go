package repository

import (
	"context"
	"database/sql"
	"time"
)

// SelectionRepo persists the last selection per widget.
type SelectionRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewSelectionRepo(db *sql.DB) *SelectionRepo {
	return &SelectionRepo{db: db, now: now}
}

func (r *SelectionRepo) Save(ctx context.Context, s Selection) error {
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = r.now()
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO selections(widget, idx, value, text, updated_at) VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(widget) DO UPDATE SET
	 idx=excluded.idx,
	 value=excluded.value,
	 text=excluded.text,
	 updated_at=excluded.updated_at;
	`, s.Widget, s.Index, s.Value, s.Text, s.UpdatedAt)
	return err
}

// Get returns nil when the widget has no stored selection.
func (r *SelectionRepo) Get(ctx context.Context, widget string) (*Selection, error) {
	row := r.db.QueryRowContext(ctx, `SELECT widget, idx, value, text, updated_at FROM selections WHERE widget = ?`, widget)
	var s Selection
	if err := row.Scan(&s.Widget, &s.Index, &s.Value, &s.Text, &s.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
