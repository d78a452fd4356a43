package users

import (
	"context"

	"github.com/dmitrijs2005/gophdemo/internal/server/models"
)

// Repository is the read-only capability the API needs from a record store.
type Repository interface {
	// FindByCredentials returns the record whose username and password both
	// match exactly, or common.ErrorNotFound.
	FindByCredentials(ctx context.Context, username, password string) (*models.User, error)
	// List returns every record ordered by id.
	List(ctx context.Context) ([]models.User, error)
}
