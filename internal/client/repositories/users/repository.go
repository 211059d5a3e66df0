package users

import (
	"context"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
)

// Repository describes account storage.
type Repository interface {
	// Create inserts the user and fills user.ID. It returns
	// common.ErrUsernameTaken when the username is already registered.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetIDByCredentials returns the id of the user whose username and
	// password both match exactly, or common.ErrNotFound.
	GetIDByCredentials(ctx context.Context, username, password string) (int64, error)
}
