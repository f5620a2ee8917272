package user

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/result"
)

type GetProfileQuery struct {
	UserID string
}

type GetProfileHandler struct {
	Users  repository.UserRepository
	Logger logrus.FieldLogger
}

func NewGetProfileHandler(users repository.UserRepository, logger logrus.FieldLogger) *GetProfileHandler {
	return &GetProfileHandler{Users: users, Logger: logger}
}

func (h *GetProfileHandler) Handle(ctx context.Context, q GetProfileQuery) result.Result[UserDTO] {
	u, err := h.Users.GetByID(ctx, q.UserID)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && u == nil) {
		return result.NotFound[UserDTO]("User not found")
	}
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", q.UserID).Error("load profile failed")
		return result.Unexpected[UserDTO]("An unexpected error occurred")
	}
	return result.Success(ToUserDTO(u))
}
