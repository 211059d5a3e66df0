// Package repomanager vends dialect-specific repository implementations and
// the matching schema migrations. A RepositoryManager is picked once from the
// configured driver; everything above it is dialect-agnostic.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sync"

	"github.com/dmitrijs2005/gophdiary/internal/client/config"
	"github.com/dmitrijs2005/gophdiary/internal/client/migrations"
	"github.com/dmitrijs2005/gophdiary/internal/client/repositories/records"
	"github.com/dmitrijs2005/gophdiary/internal/client/repositories/users"
	"github.com/dmitrijs2005/gophdiary/internal/dbx"
	"github.com/pressly/goose/v3"
)

type RepositoryManager interface {
	// DriverName is the database/sql driver to open.
	DriverName() string
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Records(db dbx.DBTX) records.Repository
}

// New returns the RepositoryManager for a configured driver
// (config.DriverSQLite or config.DriverPostgres).
func New(driver string) (RepositoryManager, error) {
	switch driver {
	case config.DriverSQLite:
		return NewSQLiteRepositoryManager(), nil
	case config.DriverPostgres:
		return NewPostgresRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", driver)
	}
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// goose keeps its base FS, dialect and logger in package globals.
var gooseMu sync.Mutex

// runMigrations applies the embedded migrations found in dir using the given
// goose dialect. Applied versions are tracked in goose_db_version, so running
// it again is a no-op.
func runMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	sub, err := fs.Sub(migrations.Migrations, dir)
	if err != nil {
		return fmt.Errorf("migrations %s: %w", dir, err)
	}

	goose.SetBaseFS(sub)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run %s migrations: %w", dir, err)
	}
	return nil
}
