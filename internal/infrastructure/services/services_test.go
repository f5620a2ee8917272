package services

import (
	"context"
	"encoding/base64"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-ddd-recipe-api/config"
	"github.com/oksasatya/go-ddd-recipe-api/internal/application/ports"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/helpers"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/mailer"
	mailtpl "github.com/oksasatya/go-ddd-recipe-api/pkg/mailer/templates"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestBcryptPasswordService(t *testing.T) {
	svc := NewBcryptPasswordService(bcrypt.MinCost)
	hash, err := svc.Hash("password1")
	require.NoError(t, err)
	assert.True(t, svc.Verify("password1", hash))
	assert.False(t, svc.Verify("password2", hash))
}

func TestJWTTokenService(t *testing.T) {
	svc := NewJWTTokenService(helpers.NewJWTManager(strings.Repeat("k", 32), "recipe-api", "recipe-app", time.Hour))
	u := entity.NewUser("Cook", valueobject.CreateEmail("cook@example.com").Value(), "hash")

	tok, err := svc.Issue(u)
	require.NoError(t, err)

	claims, err := svc.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "cook@example.com", claims.Email)

	_, err = svc.Validate(tok + "x")
	assert.Error(t, err)
	_, err = svc.Issue(&entity.User{})
	assert.Error(t, err)
}

type recordingPublisher struct {
	jobs []any
	err  error
}

func (p *recordingPublisher) PublishJSON(_ context.Context, body any) error {
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, body)
	return nil
}

func TestQueueEmailService(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := &config.Config{AppName: "Recipe Box", ResetPasswordURL: "http://app/reset?lang=en", PasswordResetTTL: 30 * time.Minute}
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("publishes a forgot password job", func(t *testing.T) {
		pub := &recordingPublisher{}
		svc := NewQueueEmailService(pub, cfg, logger)
		svc.Now = func() time.Time { return now }

		require.NoError(t, svc.SendPasswordReset(context.Background(), "cook@example.com", "tok/+="))
		require.Len(t, pub.jobs, 1)
		job := pub.jobs[0].(mailer.EmailJob)
		assert.Equal(t, "cook@example.com", job.To)
		assert.Equal(t, mailtpl.ForgotPassword, job.Template)

		link, err := url.Parse(job.Data["ResetURL"].(string))
		require.NoError(t, err)
		assert.Equal(t, "tok/+=", link.Query().Get("token"))
		assert.Equal(t, "en", link.Query().Get("lang"))
		assert.Equal(t, "01 March 2026, 10:30 UTC", job.Data["ExpiresAtText"])
	})

	t.Run("publish failure is returned", func(t *testing.T) {
		svc := NewQueueEmailService(&recordingPublisher{err: errors.New("broker down")}, cfg, logger)
		assert.ErrorContains(t, svc.SendPasswordReset(context.Background(), "cook@example.com", "tok"), "broker down")
	})

	t.Run("no publisher only logs", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		svc := NewQueueEmailService(nil, cfg, logger)
		require.NoError(t, svc.SendPasswordReset(context.Background(), "cook@example.com", "tok"))
		require.NotNil(t, hook.LastEntry())
		assert.Contains(t, hook.LastEntry().Message, "not queued")
	})
}

func TestImageStorageUpload(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryObjectStore()
	images := NewImageStorage(store, "/recipes/")

	t.Run("unknown bytes default to jpg", func(t *testing.T) {
		url, err := images.Upload(ctx, base64.StdEncoding.EncodeToString([]byte{1, 2, 3}), "file123")
		require.NoError(t, err)
		assert.Contains(t, url, "file123")
		assert.True(t, strings.HasSuffix(url, ".jpg"))
		assert.True(t, store.Has("recipes/file123.jpg"))
	})

	t.Run("data url prefix is stripped and type detected", func(t *testing.T) {
		payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngHeader)
		url, err := images.Upload(ctx, payload, "img")
		require.NoError(t, err)
		assert.Contains(t, url, "img")
		assert.True(t, strings.HasSuffix(url, ".png"))
	})

	t.Run("invalid input", func(t *testing.T) {
		for _, in := range []string{"not_base64", " ", "", "data:image/png,abc", "data:image/png;base64,"} {
			_, err := images.Upload(ctx, in, "bad")
			assert.ErrorIs(t, err, ports.ErrInvalidImage, in)
		}
	})
}

func TestImageStorageDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryObjectStore()
	images := NewImageStorage(store, "recipes")

	url, err := images.Upload(ctx, base64.StdEncoding.EncodeToString([]byte{1, 2, 3}), "r1")
	require.NoError(t, err)
	require.NoError(t, images.Delete(ctx, url))
	assert.False(t, store.Has("recipes/r1.jpg"))

	assert.NoError(t, images.Delete(ctx, "http://example.com/x.jpg"))
	assert.NoError(t, images.Delete(ctx, url))
}
