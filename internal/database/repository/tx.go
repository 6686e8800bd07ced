package repository

import (
	"context"
	"database/sql"
	"time"
)

// withTx runs fn in a transaction bound to ctx. fn's error rolls it back.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// now is UTC truncated to seconds, matching what sqlite's CURRENT_TIMESTAMP stores.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
