// internal/email/sender.go
package email

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrSendFailed    = errors.New("email: send failed")
	ErrInvalidConfig = errors.New("email: invalid config")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Sender delivers one rendered message. Implementations make at most one
// delivery attempt; the caller decides what a failure means.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a fully rendered outbound email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
	Tag      string // optional, provider-side categorization
}

func (m Message) Validate() error {
	if strings.TrimSpace(m.To) == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(m.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidConfig)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(m.HTMLBody) == "" {
		return fmt.Errorf("%w: HTMLBody is required", ErrInvalidConfig)
	}
	return nil
}
