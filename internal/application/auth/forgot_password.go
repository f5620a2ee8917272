package auth

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-recipe-api/internal/application/ports"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/helpers"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/result"
)

const DefaultResetTokenTTL = 30 * time.Minute

type ForgotPasswordCommand struct {
	Email string
}

// ForgotPasswordHandler always succeeds so callers cannot probe which emails are registered.
type ForgotPasswordHandler struct {
	Users    repository.UserRepository
	Emails   ports.EmailService
	Logger   logrus.FieldLogger
	TokenTTL time.Duration
	// NewToken defaults to helpers.GenerateToken.
	NewToken func() (string, error)
	Now      func() time.Time
}

func NewForgotPasswordHandler(users repository.UserRepository, emails ports.EmailService, logger logrus.FieldLogger, ttl time.Duration) *ForgotPasswordHandler {
	if ttl <= 0 {
		ttl = DefaultResetTokenTTL
	}
	return &ForgotPasswordHandler{
		Users:    users,
		Emails:   emails,
		Logger:   logger,
		TokenTTL: ttl,
		NewToken: func() (string, error) { return helpers.GenerateToken(32) },
		Now:      time.Now,
	}
}

func (h *ForgotPasswordHandler) Handle(ctx context.Context, cmd ForgotPasswordCommand) result.Result[result.Unit] {
	ok := result.Success(result.Unit{})

	email := valueobject.CreateEmail(cmd.Email)
	if email.IsFailure() {
		return ok
	}

	u, err := h.Users.GetByEmail(ctx, email.Value())
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.Logger.WithError(err).Warn("forgot password: user lookup failed")
		}
		return ok
	}
	if u == nil {
		return ok
	}

	token, err := h.NewToken()
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Warn("forgot password: token generation failed")
		return ok
	}
	u.SetPasswordResetToken(token, h.Now().Add(h.TokenTTL))
	if err := h.Users.Update(ctx, u); err != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Warn("forgot password: persist token failed")
		return ok
	}

	if err := h.Emails.SendPasswordReset(ctx, u.Email.String(), token); err != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Warn("forgot password: send email failed")
	}
	return ok
}
