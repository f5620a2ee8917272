package auth

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-recipe-api/internal/application/ports"
	userapp "github.com/oksasatya/go-ddd-recipe-api/internal/application/user"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/result"
)

// dummyHash is compared against when the user does not exist so that both
// branches spend comparable time in the password service.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3ZVx3ZJX9cYg1FzC0o3x4pS"

type LoginCommand struct {
	Email    string
	Password string
}

type LoginHandler struct {
	Users     repository.UserRepository
	Passwords ports.PasswordService
	Tokens    ports.TokenService
	Logger    logrus.FieldLogger
}

func NewLoginHandler(users repository.UserRepository, passwords ports.PasswordService, tokens ports.TokenService, logger logrus.FieldLogger) *LoginHandler {
	return &LoginHandler{Users: users, Passwords: passwords, Tokens: tokens, Logger: logger}
}

func (h *LoginHandler) Handle(ctx context.Context, cmd LoginCommand) result.Result[AuthResponse] {
	email := valueobject.CreateEmail(cmd.Email)
	if email.IsFailure() {
		return result.Unauthenticated[AuthResponse](invalidCredentials)
	}

	u, err := h.Users.GetByEmail(ctx, email.Value())
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		h.Logger.WithError(err).Error("login: user lookup failed")
		return result.Unexpected[AuthResponse]("An unexpected error occurred")
	}
	if u == nil {
		_ = h.Passwords.Verify(cmd.Password, dummyHash)
		return result.Unauthenticated[AuthResponse](invalidCredentials)
	}

	if !h.Passwords.Verify(cmd.Password, u.PasswordHash) {
		return result.Unauthenticated[AuthResponse](invalidCredentials)
	}

	token, err := h.Tokens.Issue(u)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Error("login: issue token failed")
		return result.Unexpected[AuthResponse]("An unexpected error occurred")
	}
	return result.Success(AuthResponse{Token: token, User: userapp.ToUserDTO(u)})
}
