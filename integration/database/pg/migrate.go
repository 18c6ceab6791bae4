package pg

import (
	"context"
	"embed"
	"errors"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the embedded schema migrations, creating the kv_records
// table on first run. It is safe to call on every startup.
func Migrate(ctx context.Context, connectionString string) error {
	if connectionString == "" {
		return ErrEmptyConnectionString
	}

	db, err := goose.OpenDBWithDriver("pgx", connectionString)
	if err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}
	return nil
}
