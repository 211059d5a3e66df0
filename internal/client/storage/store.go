// Package storage is the diary's persistence layer. Store wraps one database
// handle and exposes the operations the session controller needs: schema
// initialization, account creation and lookup, and record CRUD.
//
// Every call runs with its own deadline (Config.OperationTimeout) and a
// single statement, except the mutations that need a transaction.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/client/config"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/client/repomanager"
	"github.com/dmitrijs2005/gophdiary/internal/common"
	"github.com/dmitrijs2005/gophdiary/internal/dbx"
	"github.com/dmitrijs2005/gophdiary/internal/filex"
)

type Store struct {
	db      *sql.DB
	manager repomanager.RepositoryManager
	timeout time.Duration
}

// New wraps an already opened database. A non-positive timeout disables
// per-operation deadlines.
func New(db *sql.DB, manager repomanager.RepositoryManager, timeout time.Duration) *Store {
	return &Store{db: db, manager: manager, timeout: timeout}
}

// Open opens the database selected by cfg. The schema is not touched;
// call InitializeSchema before use.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	manager, err := repomanager.New(cfg.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	dsn := cfg.DSN()
	if cfg.DatabaseDriver == config.DriverSQLite && isFilePath(dsn) {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, fmt.Errorf("prepare database directory: %w", err)
		}
	}

	ctx, cancel := withTimeout(ctx, cfg.OperationTimeout)
	defer cancel()

	db, err := dbx.Open(ctx, manager.DriverName(), dsn)
	if err != nil {
		return nil, err
	}
	return New(db, manager, cfg.OperationTimeout), nil
}

// isFilePath is false for in-memory databases and "file:" URIs.
func isFilePath(dsn string) bool {
	return dsn != ":memory:" && !strings.HasPrefix(dsn, "file:")
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func (s *Store) Close() error {
	return s.db.Close()
}

// InitializeSchema creates the users and records tables if they do not
// exist. It is safe to call on every start.
func (s *Store) InitializeSchema(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.manager.RunMigrations(ctx, s.db)
}

// CreateUser registers a new account. It returns false, nil when the
// username is already taken; other storage errors are returned as is.
func (s *Store) CreateUser(ctx context.Context, username, password string) (bool, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.manager.Users(s.db).Create(ctx, &models.User{Username: username, Password: password})
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// VerifyCredentials returns the id of the user matching both username and
// password exactly. ok is false when there is no such user.
func (s *Store) VerifyCredentials(ctx context.Context, username, password string) (id int64, ok bool, err error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	id, err = s.manager.Users(s.db).GetIDByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return id, true, nil
}

// CreateRecord stores content verbatim for userID and returns the new id.
func (s *Store) CreateRecord(ctx context.Context, userID int64, content string) (int64, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	rec, err := s.manager.Records(s.db).Create(ctx, &models.Record{UserID: userID, Content: content})
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

// ListRecords returns every record of userID in storage order.
func (s *Store) ListRecords(ctx context.Context, userID int64) ([]models.Record, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.manager.Records(s.db).ListByUser(ctx, userID)
}

// UpdateRecord replaces the content of any record, whoever owns it.
func (s *Store) UpdateRecord(ctx context.Context, recordID int64, content string) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.manager.Records(s.db).Update(ctx, recordID, content)
}

// DeleteRecord removes any record, whoever owns it.
func (s *Store) DeleteRecord(ctx context.Context, recordID int64) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.manager.Records(tx).Delete(ctx, recordID)
	})
}

// UpdateOwnedRecord is UpdateRecord restricted to records of userID.
// It returns common.ErrNotFound or common.ErrNotOwner without writing.
func (s *Store) UpdateOwnedRecord(ctx context.Context, userID, recordID int64, content string) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.manager.Records(tx)
		if err := checkOwner(ctx, repo.GetByID, userID, recordID); err != nil {
			return err
		}
		return repo.Update(ctx, recordID, content)
	})
}

// DeleteOwnedRecord is DeleteRecord restricted to records of userID.
func (s *Store) DeleteOwnedRecord(ctx context.Context, userID, recordID int64) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.manager.Records(tx)
		if err := checkOwner(ctx, repo.GetByID, userID, recordID); err != nil {
			return err
		}
		return repo.Delete(ctx, recordID)
	})
}

func checkOwner(ctx context.Context, get func(context.Context, int64) (*models.Record, error), userID, recordID int64) error {
	rec, err := get(ctx, recordID)
	if err != nil {
		return err
	}
	if rec.UserID != userID {
		return fmt.Errorf("record %d: %w", recordID, common.ErrNotOwner)
	}
	return nil
}
