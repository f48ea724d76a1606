package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/notes-api/internal/domain/entity"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already taken")
)

// UserRepository is the durable credential store.
type UserRepository interface {
	// Create inserts u and fills ID and timestamps. Returns ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
