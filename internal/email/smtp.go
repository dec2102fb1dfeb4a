// internal/email/smtp.go
package email

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig configures the plain-SMTP transport.
type SMTPConfig struct {
	Host      string
	Port      int
	User      string
	Pass      string
	FromEmail string
	FromName  string
}

type smtpSender struct {
	cfg SMTPConfig
}

// NewSMTPSender creates a gomail-backed Sender for deployments that relay
// through an SMTP account instead of a transactional API.
func NewSMTPSender(cfg SMTPConfig) (Sender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: Host is required", ErrInvalidConfig)
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("%w: Port is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.FromEmail) {
		return nil, fmt.Errorf("%w: FromEmail must be a valid email address", ErrInvalidConfig)
	}
	return &smtpSender{cfg: cfg}, nil
}

// Send makes a single delivery attempt. gomail's DialAndSend has no context
// support, so it runs in a goroutine and the caller's deadline is honored by
// selecting on ctx; the dial keeps running in the background if abandoned.
func (s *smtpSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail))
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Pass)

	done := make(chan error, 1)
	go func() {
		done <- dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return errors.Join(ErrSendFailed, err)
		}
		return nil
	case <-ctx.Done():
		return errors.Join(ErrSendFailed, ctx.Err())
	}
}
