package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-recipe-api/internal/application/ports"
	userapp "github.com/oksasatya/go-ddd-recipe-api/internal/application/user"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/result"
)

type SignupCommand struct {
	FullName string
	Email    string
	Password string
}

type SignupHandler struct {
	Users     repository.UserRepository
	Passwords ports.PasswordService
	Tokens    ports.TokenService
	Logger    logrus.FieldLogger
}

func NewSignupHandler(users repository.UserRepository, passwords ports.PasswordService, tokens ports.TokenService, logger logrus.FieldLogger) *SignupHandler {
	return &SignupHandler{Users: users, Passwords: passwords, Tokens: tokens, Logger: logger}
}

const emailTaken = "User with this email already exists"

func (h *SignupHandler) Handle(ctx context.Context, cmd SignupCommand) result.Result[AuthResponse] {
	email := valueobject.CreateEmail(cmd.Email)
	if email.IsFailure() {
		return result.Propagate[AuthResponse](email)
	}

	exists, err := h.Users.ExistsByEmail(ctx, email.Value())
	if err != nil {
		h.Logger.WithError(err).Error("signup: email lookup failed")
		return result.Unexpected[AuthResponse]("An unexpected error occurred")
	}
	if exists {
		return result.Conflict[AuthResponse](emailTaken)
	}

	if msg := checkPassword(cmd.Password); msg != "" {
		return result.Validation[AuthResponse](msg)
	}

	hash, err := h.Passwords.Hash(cmd.Password)
	if err != nil {
		h.Logger.WithError(err).Error("signup: hash password failed")
		return result.Unexpected[AuthResponse]("An unexpected error occurred")
	}

	u := entity.NewUser(strings.TrimSpace(cmd.FullName), email.Value(), hash)
	if err := h.Users.Add(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return result.Conflict[AuthResponse](emailTaken)
		}
		h.Logger.WithError(err).Error("signup: persist user failed")
		return result.Unexpected[AuthResponse]("An unexpected error occurred")
	}

	token, err := h.Tokens.Issue(u)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Error("signup: issue token failed")
		return result.Unexpected[AuthResponse]("An unexpected error occurred")
	}

	return result.Success(AuthResponse{Token: token, User: userapp.ToUserDTO(u)})
}
