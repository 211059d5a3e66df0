package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophdiary/internal/client/repositories/records"
	"github.com/dmitrijs2005/gophdiary/internal/client/repositories/users"
	"github.com/dmitrijs2005/gophdiary/internal/dbx"

	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends repositories for the local diary file.
type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) DriverName() string { return "sqlite" }

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

// Records returns a records.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Records(db dbx.DBTX) records.Repository {
	return records.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, "sqlite3", "sqlite")
}
