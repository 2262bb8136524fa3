// Package email sends transactional mail through SendGrid. With no API key
// configured the sender degrades to logging, so local development never
// needs mail credentials.
package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/jahboukie/inner-architect/internal/config"
)

// Sender delivers transactional email.
type Sender struct {
	client  *sendgrid.Client
	from    *mail.Email
	baseURL string
	log     *slog.Logger
}

// NewSender builds the SendGrid sender. baseURL is the public origin used
// in links embedded in messages.
func NewSender(cfg config.EmailConfig, baseURL string, logger *slog.Logger) *Sender {
	s := &Sender{
		from:    mail.NewEmail(cfg.FromName, cfg.FromAddress),
		baseURL: baseURL,
		log:     logger.With("component", "email"),
	}
	if cfg.SendGridAPIKey != "" {
		s.client = sendgrid.NewSendClient(cfg.SendGridAPIKey)
	}
	return s
}

// SendVerification mails the email-verification link for a freshly
// registered account. token is the raw (unhashed) verification token.
func (s *Sender) SendVerification(ctx context.Context, to, displayName, token string) error {
	link := fmt.Sprintf("%s/api/v1/auth/verify-email?token=%s", s.baseURL, token)
	subject := "Verify your Inner Architect email"
	plain := fmt.Sprintf(
		"Hi %s,\n\nConfirm your email address to finish setting up your account:\n\n%s\n\nThe link expires in 48 hours. If you did not sign up, ignore this message.\n",
		displayName, link,
	)
	return s.send(ctx, to, subject, plain)
}

// SendPracticeReminder mails a scheduled practice nudge for an exercise.
func (s *Sender) SendPracticeReminder(ctx context.Context, to, displayName, exerciseName string) error {
	subject := "Time to practice: " + exerciseName
	plain := fmt.Sprintf(
		"Hi %s,\n\nThis is your practice reminder for %q.\n\nA few minutes of practice keeps the technique fresh. Open the app when you are ready:\n\n%s\n",
		displayName, exerciseName, s.baseURL,
	)
	return s.send(ctx, to, subject, plain)
}

func (s *Sender) send(ctx context.Context, to, subject, plain string) error {
	if s.client == nil {
		s.log.InfoContext(ctx, "email sending disabled, dropping message",
			"to", to, "subject", subject)
		return nil
	}

	msg := mail.NewSingleEmail(s.from, subject, mail.NewEmail("", to), plain, "")

	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}

	s.log.DebugContext(ctx, "email sent", "to", to, "subject", subject)
	return nil
}
