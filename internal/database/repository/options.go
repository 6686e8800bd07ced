package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/ddlist/core"
)

// OptionRepo handles option catalogs.
type OptionRepo struct {
	db *sql.DB
}

func NewOptionRepo(db *sql.DB) *OptionRepo { return &OptionRepo{db: db} }

// ListID returns the stable id for a catalog name.
func ListID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("list:"+name)).String()
}

func (r *OptionRepo) Lists(ctx context.Context) ([]OptionList, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM option_lists ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []OptionList
	for rows.Next() {
		var l OptionList
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// ReplaceList stores opts as the full content of the named catalog.
func (r *OptionRepo) ReplaceList(ctx context.Context, name string, opts []core.Option) error {
	listID := ListID(name)
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO option_lists(id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name=excluded.name;
		`, listID, name); err != nil {
			return fmt.Errorf("upsert list %q: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM options WHERE list_id = ?`, listID); err != nil {
			return fmt.Errorf("clear list %q: %w", name, err)
		}
		for pos, o := range opts {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO options(id, list_id, position, text, value, description, image_src, selected)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`, uuid.NewString(), listID, pos, o.Text, o.Value, nullable(o.Description), nullable(o.ImageSrc), o.Selected); err != nil {
				return fmt.Errorf("insert option %d of %q: %w", pos, name, err)
			}
		}
		return nil
	})
}

// Options loads the named catalog in position order. An unknown name yields
// an empty, non-nil slice so callers stay in inject mode.
func (r *OptionRepo) Options(ctx context.Context, name string) ([]core.Option, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT o.text, o.value, o.description, o.image_src, o.selected
	FROM options o JOIN option_lists l ON l.id = o.list_id
	WHERE l.name = ?
	ORDER BY o.position`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []core.Option{}
	for rows.Next() {
		var (
			o           core.Option
			desc, image sql.NullString
		)
		if err := rows.Scan(&o.Text, &o.Value, &desc, &image, &o.Selected); err != nil {
			return nil, err
		}
		o.Description = desc.String
		o.ImageSrc = image.String
		out = append(out, o)
	}
	return out, rows.Err()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
