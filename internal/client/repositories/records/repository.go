package records

import (
	"context"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
)

// Repository describes storage operations for diary records.
type Repository interface {
	// Create inserts a record for record.UserID and fills record.ID.
	Create(ctx context.Context, record *models.Record) (*models.Record, error)

	// ListByUser returns every record owned by userID in storage order.
	ListByUser(ctx context.Context, userID int64) ([]models.Record, error)

	// GetByID returns a record by id or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Record, error)

	// Update replaces the content of the record with the given id.
	// Updating a missing id is not an error.
	Update(ctx context.Context, id int64, content string) error

	// Delete removes the record with the given id.
	// Deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) error
}
