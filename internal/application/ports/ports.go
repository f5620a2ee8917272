// Package ports declares the services the application handlers depend on.
// Implementations live under internal/infrastructure.
package ports

import (
	"context"
	"errors"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/entity"
)

// ErrInvalidImage is returned by ImageStorage.Upload for empty or undecodable payloads.
var ErrInvalidImage = errors.New("invalid image data")

type PasswordService interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenClaims is what a verified access token says about its bearer.
type TokenClaims struct {
	UserID string
	Email  string
}

type TokenService interface {
	Issue(u *entity.User) (string, error)
	Validate(token string) (*TokenClaims, error)
}

type EmailService interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

// ImageStorage stores base64 encoded images and returns their public URL.
// Upload accepts raw base64 or a data URL.
type ImageStorage interface {
	Upload(ctx context.Context, data, nameHint string) (string, error)
	Delete(ctx context.Context, url string) error
}
