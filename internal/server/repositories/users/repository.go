// Package users implements the credential store: persistence of account
// records keyed by a unique, normalized email.
package users

import (
	"context"
	"errors"

	"github.com/avolkovs/teambase/internal/server/models"
)

// ErrAdminBootstrapped is returned by Create when the bootstrap-admin slot is
// already taken by a concurrent registration. The caller may retry the insert
// as a regular member.
var ErrAdminBootstrapped = errors.New("bootstrap admin already assigned")

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}
