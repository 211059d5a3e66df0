package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/common"
	"github.com/dmitrijs2005/gophdiary/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts the record and sets its id from the new rowid.
func (r *SQLiteRepository) Create(ctx context.Context, rec *models.Record) (*models.Record, error) {
	query := `INSERT INTO records (user_id, content) VALUES (?, ?)`

	res, err := r.db.ExecContext(ctx, query, rec.UserID, rec.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to insert record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get record id: %w", err)
	}
	rec.ID = id
	return rec, nil
}

// ListByUser selects id and content of every record owned by userID.
func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Record, error) {
	query := `SELECT id, content FROM records WHERE user_id = ?`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}
	defer rows.Close()

	var result []models.Record
	for rows.Next() {
		item := models.Record{UserID: userID}
		if err := rows.Scan(&item.ID, &item.Content); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID returns a single record including its owner.
func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Record, error) {
	query := `SELECT id, user_id, content FROM records WHERE id = ?`

	rec := &models.Record{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rec.ID, &rec.UserID, &rec.Content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return rec, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id int64, content string) error {
	query := `UPDATE records SET content = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, content, id); err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM records WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}
