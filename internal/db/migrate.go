package db

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"mesa-roi/db/migrations"
)

// ErrDirty is returned when a previous migration failed half way.
var ErrDirty = errors.New("database is in dirty state")

// Migrate applies the embedded migrations up to migrations.Version against
// the database at addr. A dirty schema is reported instead of forced.
func Migrate(addr string, logger *slog.Logger) error {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return err
	}
	defer mg.Close()

	current, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return fmt.Errorf("%w at version %d", ErrDirty, current)
	}

	if err = mg.Migrate(migrations.Version); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("schema up to date", slog.Uint64("version", uint64(current)))
			return nil
		}
		return err
	}
	logger.Info("migrations applied",
		slog.Uint64("from", uint64(current)),
		slog.Int("to", migrations.Version))
	return nil
}
