// internal/email/postmark.go
package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

// PostmarkConfig holds the credentials and sender identity for the Postmark
// transactional API.
type PostmarkConfig struct {
	ServerToken  string
	AccountToken string
	FromEmail    string
	FromName     string
}

type postmarkSender struct {
	client *postmark.Client
	cfg    PostmarkConfig
}

// NewPostmarkSender creates a Postmark-backed Sender. Tokens and a valid
// sender address are required up front so a misconfigured service fails at
// startup instead of on the first form submission.
func NewPostmarkSender(cfg PostmarkConfig) (Sender, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: ServerToken is required", ErrInvalidConfig)
	}
	if cfg.AccountToken == "" {
		return nil, fmt.Errorf("%w: AccountToken is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.FromEmail) {
		return nil, fmt.Errorf("%w: FromEmail must be a valid email address", ErrInvalidConfig)
	}
	return &postmarkSender{
		client: postmark.NewClient(cfg.ServerToken, cfg.AccountToken),
		cfg:    cfg,
	}, nil
}

// Send makes a single delivery attempt through Postmark. A non-zero provider
// error code counts as a send failure even when the HTTP call itself worked.
func (s *postmarkSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	from := s.cfg.FromEmail
	if s.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:     from,
		To:       msg.To,
		Subject:  msg.Subject,
		Tag:      msg.Tag,
		HTMLBody: msg.HTMLBody,
	})
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(ErrSendFailed, fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message))
	}
	return nil
}
