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

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rec *models.Record) (*models.Record, error) {
	query :=
		`INSERT INTO records (user_id, content)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	if err := r.db.QueryRowContext(ctx, query, rec.UserID, rec.Content).Scan(&rec.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]models.Record, error) {
	query :=
		`SELECT id, content FROM records
		 WHERE user_id = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Record
	for rows.Next() {
		item := models.Record{UserID: userID}
		if err := rows.Scan(&item.ID, &item.Content); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Record, error) {
	query :=
		`SELECT id, user_id, content FROM records
		 WHERE id = $1
		 `

	rec := &models.Record{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rec.ID, &rec.UserID, &rec.Content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, content string) error {
	query := `UPDATE records SET content = $1 WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, content, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM records WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
