package main

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/oksasatya/go-ddd-recipe-api/pkg/mailer"
	mailtpl "github.com/oksasatya/go-ddd-recipe-api/pkg/mailer/templates"
)

const sendTimeout = 15 * time.Second

var errEmptyRecipient = errors.New("job has no recipient")

type sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// permanentError marks a job that will never succeed and must not be requeued.
type permanentError struct{ error }

func (e permanentError) Unwrap() error { return e.error }

func isPermanent(err error) bool {
	var p permanentError
	return errors.As(err, &p)
}

// process renders the job if it names a template and sends it. Bad payloads
// and render failures are permanent; delivery failures are retried.
func process(ctx context.Context, mg sender, body []byte) error {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return permanentError{err}
	}
	if job.To == "" {
		return permanentError{errEmptyRecipient}
	}
	job.EnsureRecipient()

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		s, t, h, err := mailtpl.Render(job.Template, job.Data)
		if err != nil {
			return permanentError{err}
		}
		subject, text, html = s, t, h
	}

	c, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	return mg.Send(c, job.To, subject, text, html)
}
