package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const (
	insertUserQuery = `(?s)^INSERT\s+INTO\s+users\s*\(username,\s*password\)\s*VALUES\s*\(\$1,\s*\$2\)\s*RETURNING\s+id\s*$`
	selectUserQuery = `(?s)^SELECT\s+id\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s+AND\s+password\s*=\s*\$2\s*$`
)

func TestPostgresCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertUserQuery).
		WithArgs("alice", "pass123").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	got, err := repo.Create(context.Background(), &models.User{Username: "alice", Password: "pass123"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 42 || got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertUserQuery).
		WithArgs("alice", "other").
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Create(context.Background(), &models.User{Username: "alice", Password: "other"})
	if !errors.Is(err, common.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestPostgresCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertUserQuery).
		WithArgs("alice", "pass123").
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Username: "alice", Password: "pass123"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestPostgresGetIDByCredentials_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectUserQuery).
		WithArgs("alice", "pass123").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := repo.GetIDByCredentials(context.Background(), "alice", "pass123")
	if err != nil {
		t.Fatalf("GetIDByCredentials error: %v", err)
	}
	if id != 7 {
		t.Fatalf("unexpected id: %d", id)
	}
}

func TestPostgresGetIDByCredentials_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectUserQuery).
		WithArgs("alice", "wrong").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetIDByCredentials(context.Background(), "alice", "wrong")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresGetIDByCredentials_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectUserQuery).
		WithArgs("alice", "pass123").
		WillReturnError(errors.New("conn reset"))

	_, err := repo.GetIDByCredentials(context.Background(), "alice", "pass123")
	if err == nil || errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
