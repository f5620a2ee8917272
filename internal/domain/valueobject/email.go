package valueobject

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/oksasatya/go-ddd-recipe-api/pkg/result"
)

// MaxEmailLength is the longest address accepted, per RFC 5321.
const MaxEmailLength = 254

var validate = validator.New()

// Email is a normalized (trimmed, lower-cased) email address.
type Email struct {
	value string
}

// CreateEmail normalizes raw and validates it.
func CreateEmail(raw string) result.Result[Email] {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return result.Validation[Email]("Email is required")
	}
	if len(v) > MaxEmailLength {
		return result.Validation[Email]("Email is too long")
	}
	if err := validate.Var(v, "email"); err != nil || !hasDottedDomain(v) {
		return result.Validation[Email]("Email has an invalid format")
	}
	return result.Success(Email{value: v})
}

// hasDottedDomain rejects single-label domains such as user@localhost.
func hasDottedDomain(v string) bool {
	at := strings.LastIndexByte(v, '@')
	if at < 0 {
		return false
	}
	domain := v[at+1:]
	dot := strings.LastIndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}

func (e Email) String() string { return e.value }

func (e Email) Equals(other Email) bool { return e.value == other.value }
