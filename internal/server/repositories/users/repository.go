// Package users persists User records keyed by email.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Repository is the user store. Create must reject a second user with the
// same email with common.ErrorAlreadyExists, atomically with respect to
// concurrent Create calls. GetUserByEmail returns common.ErrorNotFound for
// unknown emails.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
