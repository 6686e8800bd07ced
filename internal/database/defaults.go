package database

import (
	"context"
	"database/sql"

	"github.com/jask/ddlist/core"
	"github.com/jask/ddlist/internal/database/repository"
)

// SeedDefaults ensures the sample catalogs exist for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	repo := repository.NewOptionRepo(db)
	existing, err := repo.Lists(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}
	defaults := map[string][]core.Option{
		"sizes": {
			{Text: "Small", Value: "s"},
			{Text: "Medium", Value: "m", Selected: true},
			{Text: "Large", Value: "l"},
		},
		"shipping": {
			{Text: "Standard", Value: "standard", Description: "3-5 business days"},
			{Text: "Express", Value: "express", Description: "next business day"},
			{Text: "Pickup", Value: "pickup", Description: "collect in store"},
		},
	}
	for _, name := range []string{"sizes", "shipping"} {
		if err := repo.ReplaceList(ctx, name, defaults[name]); err != nil {
			return err
		}
	}
	return nil
}
