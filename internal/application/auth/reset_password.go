package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-recipe-api/internal/application/ports"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/result"
)

type ResetPasswordCommand struct {
	Token       string
	NewPassword string
}

type ResetPasswordHandler struct {
	Users     repository.UserRepository
	Passwords ports.PasswordService
	Logger    logrus.FieldLogger
}

func NewResetPasswordHandler(users repository.UserRepository, passwords ports.PasswordService, logger logrus.FieldLogger) *ResetPasswordHandler {
	return &ResetPasswordHandler{Users: users, Passwords: passwords, Logger: logger}
}

const invalidResetToken = "Invalid or expired reset token"

func (h *ResetPasswordHandler) Handle(ctx context.Context, cmd ResetPasswordCommand) result.Result[result.Unit] {
	if msg := checkPassword(cmd.NewPassword); msg != "" {
		return result.Validation[result.Unit](msg)
	}
	token := strings.TrimSpace(cmd.Token)
	if token == "" {
		return result.Validation[result.Unit](invalidResetToken)
	}

	u, err := h.Users.GetByPasswordResetToken(ctx, token)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && u == nil) {
		return result.NotFound[result.Unit](invalidResetToken)
	}
	if err != nil {
		h.Logger.WithError(err).Error("reset password: token lookup failed")
		return result.Unexpected[result.Unit]("An unexpected error occurred")
	}

	if !u.IsPasswordResetTokenValid(token) {
		return result.Validation[result.Unit](invalidResetToken)
	}

	hash, err := h.Passwords.Hash(cmd.NewPassword)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Error("reset password: hash failed")
		return result.Unexpected[result.Unit]("An unexpected error occurred")
	}
	u.UpdatePassword(hash)
	if err := h.Users.Update(ctx, u); err != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Error("reset password: persist failed")
		return result.Unexpected[result.Unit]("An unexpected error occurred")
	}
	return result.Success(result.Unit{})
}
