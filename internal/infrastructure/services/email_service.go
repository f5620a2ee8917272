package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-recipe-api/config"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/mailer"
	mailtpl "github.com/oksasatya/go-ddd-recipe-api/pkg/mailer/templates"
)

// JobPublisher puts a JSON message on the email queue. helpers.RabbitPublisher satisfies it.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// QueueEmailService hands reset emails to the email worker through RabbitMQ.
// With a nil Publisher the email is only logged.
type QueueEmailService struct {
	Publisher JobPublisher
	Cfg       *config.Config
	Logger    logrus.FieldLogger
	Now       func() time.Time
}

func NewQueueEmailService(pub JobPublisher, cfg *config.Config, logger logrus.FieldLogger) *QueueEmailService {
	return &QueueEmailService{Publisher: pub, Cfg: cfg, Logger: logger, Now: time.Now}
}

func (s *QueueEmailService) SendPasswordReset(ctx context.Context, email, token string) error {
	link, err := resetLink(s.Cfg.ResetPasswordURL, token)
	if err != nil {
		return fmt.Errorf("build reset link: %w", err)
	}
	data := mailtpl.NewForgotPasswordData(s.Cfg, email,
		mailtpl.WithResetURL(link),
		mailtpl.WithExpiresAt(s.Now().Add(s.Cfg.PasswordResetTTL)),
	)
	job := mailer.EmailJob{To: email, Template: mailtpl.ForgotPassword, Data: data}

	if s.Publisher == nil {
		s.Logger.WithField("email", email).Info("mail sending disabled; password reset email not queued")
		return nil
	}
	if err := s.Publisher.PublishJSON(ctx, job); err != nil {
		return fmt.Errorf("queue reset email: %w", err)
	}
	s.Logger.WithField("email", email).Debug("password reset email queued")
	return nil
}

func resetLink(base, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
