package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-recipe-api/config"
)

func TestRenderForgotPassword(t *testing.T) {
	cfg := &config.Config{AppName: "Recipe Box", CompanyName: "Acme", ResetPasswordURL: "http://x/reset"}
	exp := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
	data := NewForgotPasswordData(cfg, "cook@example.com",
		WithResetURL("http://x/reset?token=abc"),
		WithExpiresAt(exp),
	)

	subject, text, html, err := Render(ForgotPassword, data)
	require.NoError(t, err)
	assert.Equal(t, "Reset your Recipe Box password", subject)
	assert.Contains(t, text, "http://x/reset?token=abc")
	assert.Contains(t, text, "02 January 2026, 15:04 UTC")
	assert.Contains(t, text, "Hi cook@example.com")
	assert.Contains(t, html, `href="http://x/reset?token=abc"`)
	assert.Contains(t, html, "Acme")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, _, err := Render("nope", map[string]any{})
	assert.Error(t, err)
}

func TestDefaultFn(t *testing.T) {
	assert.Equal(t, "fb", defaultFn("fb", ""))
	assert.Equal(t, "fb", defaultFn("fb", nil))
	assert.Equal(t, "fb", defaultFn("fb", 0))
	assert.Equal(t, "v", defaultFn("fb", "v"))
}
