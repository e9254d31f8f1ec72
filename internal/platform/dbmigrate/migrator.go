// Package dbmigrate applies the embedded schema migrations with golang-migrate.
package dbmigrate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/riskibarqy/draft-ratings/db"
)

// Migrator wraps a golang-migrate instance.
type Migrator struct {
	migrate *migrate.Migrate
	source  string
}

// Source returns a description of where migrations are read from.
func (m *Migrator) Source() string {
	return m.source
}

// New reads migrations from dir when it is non-empty, otherwise from the
// files compiled into the binary.
func New(dbURL, dir string) (*Migrator, error) {
	if strings.TrimSpace(dbURL) == "" {
		return nil, crerr.New("database url is required")
	}

	source, name, err := sourceFS(dir)
	if err != nil {
		return nil, err
	}

	driver, err := iofs.New(source, ".")
	if err != nil {
		return nil, crerr.Wrap(err, "create migration source driver")
	}

	m, err := migrate.NewWithSourceInstance("iofs", driver, dbURL)
	if err != nil {
		return nil, crerr.Wrap(err, "create migration instance")
	}
	return &Migrator{migrate: m, source: name}, nil
}

func sourceFS(dir string) (fs.FS, string, error) {
	dir = strings.TrimSpace(dir)
	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, "", crerr.Wrapf(err, "resolve migrations dir %q", dir)
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			return nil, "", crerr.Newf("migrations dir %q not found", abs)
		}
		return os.DirFS(abs), "dir:" + abs, nil
	}

	sub, err := fs.Sub(db.Migrations, "migrations")
	if err != nil {
		return nil, "", crerr.Wrap(err, "open embedded migrations")
	}
	return sub, "embedded", nil
}

// Up applies all pending migrations. It reports whether anything changed.
func (m *Migrator) Up() (bool, error) {
	err := m.migrate.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("apply migrations: %w", err)
	}
	return true, nil
}

// Down rolls back steps migrations.
func (m *Migrator) Down(steps int) (bool, error) {
	if steps <= 0 {
		return false, crerr.New("down steps must be > 0")
	}
	err := m.migrate.Steps(-steps)
	if errors.Is(err, migrate.ErrNoChange) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("roll back %d migration(s): %w", steps, err)
	}
	return true, nil
}

// Version returns the applied version; ok is false before the first migration.
func (m *Migrator) Version() (version uint, dirty bool, ok bool, err error) {
	version, dirty, err = m.migrate.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, fmt.Errorf("read migration version: %w", err)
	}
	return version, dirty, true, nil
}

func (m *Migrator) Force(version int) error {
	if err := m.migrate.Force(version); err != nil {
		return fmt.Errorf("force version %d: %w", version, err)
	}
	return nil
}

func (m *Migrator) Goto(version uint) (bool, error) {
	err := m.migrate.Migrate(version)
	if errors.Is(err, migrate.ErrNoChange) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("migrate to version %d: %w", version, err)
	}
	return true, nil
}

// Close releases the source and database handles.
func (m *Migrator) Close() error {
	srcErr, dbErr := m.migrate.Close()
	return errors.Join(srcErr, dbErr)
}
