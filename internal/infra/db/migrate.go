package db

import (
	"context"
	"io/fs"
	"sort"

	"venue-scheduler/internal/pkg/errs"
	"venue-scheduler/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate applies the embedded schema files in lexical order. Statements
// are idempotent so re-running on an existing database is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	names, err := fs.Glob(migrations.Files, "*.sql")
	if err != nil {
		return errs.Wrap(err, "failed to list migration files")
	}
	sort.Strings(names)

	for _, name := range names {
		sql, err := fs.ReadFile(migrations.Files, name)
		if err != nil {
			return errs.Wrap(err, "failed to read migration "+name)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return errs.Wrap(err, "failed to apply migration "+name)
		}
	}
	return nil
}
