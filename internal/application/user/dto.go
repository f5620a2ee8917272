package user

import (
	"time"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/entity"
)

type UserDTO struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	FullName      string     `json:"full_name"`
	EmailVerified bool       `json:"email_verified"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

func ToUserDTO(u *entity.User) UserDTO {
	return UserDTO{
		ID:            u.ID,
		Email:         u.Email.String(),
		FullName:      u.Name,
		EmailVerified: u.IsEmailVerified(),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
