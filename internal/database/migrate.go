package database

import (
	"errors"
	"fmt"

	"tam-survey/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres:// URLs
	_ "github.com/golang-migrate/migrate/v4/source/file"       // file:// sources
	"go.uber.org/zap"
)

// Migrator applies the SQL files in a directory to the database.
type Migrator struct {
	m *migrate.Migrate
}

// NewMigrator binds a migrations directory to a postgres DSN.
func NewMigrator(migrationsDir, dsn string) (*Migrator, error) {
	m, err := migrate.New("file://"+migrationsDir, dsn)
	if err != nil {
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	return &Migrator{m: m}, nil
}

// Up applies every pending migration.
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up failed: %w", err)
	}
	mg.logVersion("up")
	return nil
}

// Down rolls back one migration, or all of them.
func (mg *Migrator) Down(all bool) error {
	var err error
	if all {
		err = mg.m.Down()
	} else {
		err = mg.m.Steps(-1)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down failed: %w", err)
	}
	mg.logVersion("down")
	return nil
}

// Version returns the applied version; ok is false when nothing is applied.
func (mg *Migrator) Version() (uint, bool, error) {
	v, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if dirty {
		return v, true, fmt.Errorf("database is dirty at version %d", v)
	}
	return v, true, nil
}

func (mg *Migrator) logVersion(direction string) {
	v, ok, err := mg.Version()
	logger.Get().Info("Migrations completed",
		zap.String("direction", direction),
		zap.Uint("version", v),
		zap.Bool("applied", ok),
		zap.Error(err))
}

// Close releases the source and database handles.
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}
