package database

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

const migrationsTable = "schema_migrations"

type MigrateAction string

const (
	MigrateUp     MigrateAction = "up"
	MigrateDown   MigrateAction = "down"
	MigrateStepUp MigrateAction = "step-up"
	MigrateDrop   MigrateAction = "drop"
)

func newMigrate(migrations fs.FS, dsn string) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations, ".")
	if err != nil {
		return nil, fmt.Errorf("open migration source: %w", err)
	}

	// golang-migrate picks the pgx v5 driver by scheme
	url := "pgx5://" + strings.TrimPrefix(dsn, "postgres://") + "&x-migrations-table=" + migrationsTable

	mig, err := migrate.NewWithSourceInstance("iofs", source, url)
	if err != nil {
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}
	return mig, nil
}

// Migrate applies action to the schema using the embedded SQL files.
func Migrate(migrations fs.FS, dsn string, action MigrateAction, log *zap.Logger) error {
	mig, err := newMigrate(migrations, dsn)
	if err != nil {
		return err
	}
	defer mig.Close()

	switch action {
	case MigrateUp:
		err = mig.Up()
	case MigrateDown:
		err = mig.Steps(-1)
	case MigrateStepUp:
		err = mig.Steps(1)
	case MigrateDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("unknown migration action %q", action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migration %s: %w", action, err)
	}

	version, dirty, verr := mig.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", verr)
	}

	log.Info("Database migration finished",
		zap.String("action", string(action)),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}
