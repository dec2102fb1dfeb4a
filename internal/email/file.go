// internal/email/file.go
package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// FileSender writes rendered emails to a directory instead of sending them.
// Used for local development so form submissions can be inspected without a
// provider account.
type FileSender struct {
	dir string
}

func NewFileSender(dir string) *FileSender {
	return &FileSender{dir: dir}
}

type fileMetadata struct {
	Timestamp string `json:"timestamp"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Tag       string `json:"tag,omitempty"`
}

// Send saves the message as an .html file plus a .json metadata sidecar.
func (f *FileSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create outbox dir: %v", ErrSendFailed, err)
	}

	now := time.Now()
	identifier := msg.Tag
	if identifier == "" {
		identifier = msg.Subject
	}
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(identifier))

	if err := os.WriteFile(filepath.Join(f.dir, base+".html"), []byte(msg.HTMLBody), 0o644); err != nil {
		return fmt.Errorf("%w: write html: %v", ErrSendFailed, err)
	}

	meta, err := json.MarshalIndent(fileMetadata{
		Timestamp: now.Format(time.RFC3339),
		To:        msg.To,
		Subject:   msg.Subject,
		Tag:       msg.Tag,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal metadata: %v", ErrSendFailed, err)
	}
	if err := os.WriteFile(filepath.Join(f.dir, base+".json"), meta, 0o644); err != nil {
		return fmt.Errorf("%w: write metadata: %v", ErrSendFailed, err)
	}
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")
	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
