package services

import (
	"errors"

	"github.com/oksasatya/go-ddd-recipe-api/internal/application/ports"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/helpers"
)

// JWTTokenService issues and validates HS256 access tokens.
type JWTTokenService struct {
	JWT *helpers.JWTManager
}

func NewJWTTokenService(jwt *helpers.JWTManager) *JWTTokenService {
	return &JWTTokenService{JWT: jwt}
}

func (s *JWTTokenService) Issue(u *entity.User) (string, error) {
	if u == nil || u.ID == "" {
		return "", errors.New("issue token: user has no id")
	}
	tok, _, err := s.JWT.GenerateAccessToken(u.ID, u.Email.String())
	return tok, err
}

func (s *JWTTokenService) Validate(token string) (*ports.TokenClaims, error) {
	claims, err := s.JWT.ParseAccessToken(token)
	if err != nil {
		return nil, err
	}
	return &ports.TokenClaims{UserID: claims.UserID, Email: claims.Email}, nil
}
