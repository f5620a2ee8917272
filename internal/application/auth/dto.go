package auth

import (
	userapp "github.com/oksasatya/go-ddd-recipe-api/internal/application/user"
)

// MinPasswordLength is enforced on signup and password reset.
const MinPasswordLength = 8

// MaxPasswordBytes is bcrypt's input limit; longer passwords cannot be hashed.
const MaxPasswordBytes = 72

// checkPassword returns the validation message for an unacceptable password.
func checkPassword(p string) string {
	switch {
	case len(p) < MinPasswordLength:
		return "Password must be at least 8 characters"
	case len(p) > MaxPasswordBytes:
		return "Password must be at most 72 bytes"
	}
	return ""
}

const invalidCredentials = "Invalid email or password"

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Token string          `json:"token"`
	User  userapp.UserDTO `json:"user"`
}
