package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/valueobject"
)

// UserRepository defines the interface for user-related database operations.
// Lookups return ErrNotFound when no user matches.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error)
	GetByPasswordResetToken(ctx context.Context, token string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error)
	Add(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, u *entity.User) error
	Count(ctx context.Context) (int, error)
}
