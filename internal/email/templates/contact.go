// internal/email/templates/contact.go
package templates

import (
	"html/template"
	"strings"
)

var contactTmpl = template.Must(template.New("contact").Funcs(funcs).Parse(contactHTML))

// ContactData holds everything the contact notification email interpolates.
// SubmittedAt is preformatted by the caller so rendering stays deterministic.
type ContactData struct {
	BusinessName   string
	PrimaryColor   string
	SecondaryColor string

	Name        string
	Email       string
	Phone       string
	Message     string
	ProjectType string // optional, row omitted when empty

	SubmittedAt  string
	SubmissionID string
}

// RenderContactEmail renders the HTML body for a contact form notification.
func RenderContactEmail(data ContactData) (string, error) {
	var buf strings.Builder
	err := contactTmpl.Execute(&buf, data)
	return buf.String(), err
}
