package entity

import (
	"crypto/subtle"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/valueobject"
)

// User is the aggregate root for accounts.
// PasswordHash holds a bcrypt hash; the reset token and its expiry are either both set or both nil.
type User struct {
	ID                          string
	Name                        string
	Email                       valueobject.Email
	PasswordHash                string
	EmailVerifiedAt             *time.Time
	PasswordResetToken          *string
	PasswordResetTokenExpiresAt *time.Time
	CreatedAt                   time.Time
	UpdatedAt                   *time.Time
}

func NewUser(name string, email valueobject.Email, passwordHash string) *User {
	return &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}

func (u *User) touch() {
	now := time.Now().UTC()
	u.UpdatedAt = &now
}

func (u *User) UpdateName(name string) {
	u.Name = name
	u.touch()
}

// UpdatePassword replaces the hash and invalidates any outstanding reset token.
func (u *User) UpdatePassword(hash string) {
	u.PasswordHash = hash
	u.PasswordResetToken = nil
	u.PasswordResetTokenExpiresAt = nil
	u.touch()
}

func (u *User) VerifyEmail() {
	now := time.Now().UTC()
	u.EmailVerifiedAt = &now
	u.touch()
}

func (u *User) IsEmailVerified() bool { return u.EmailVerifiedAt != nil }

func (u *User) SetPasswordResetToken(token string, expiresAt time.Time) {
	exp := expiresAt.UTC()
	u.PasswordResetToken = &token
	u.PasswordResetTokenExpiresAt = &exp
	u.touch()
}

func (u *User) ClearPasswordResetToken() {
	u.PasswordResetToken = nil
	u.PasswordResetTokenExpiresAt = nil
	u.touch()
}

// IsPasswordResetTokenValid reports whether token matches the stored one and has not expired.
func (u *User) IsPasswordResetTokenValid(token string) bool {
	if u.PasswordResetToken == nil || u.PasswordResetTokenExpiresAt == nil || token == "" {
		return false
	}
	if !time.Now().UTC().Before(*u.PasswordResetTokenExpiresAt) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(*u.PasswordResetToken), []byte(token)) == 1
}
