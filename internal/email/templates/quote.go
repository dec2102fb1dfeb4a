// internal/email/templates/quote.go
package templates

import (
	"html/template"
	"strings"
)

var quoteTmpl = template.Must(template.New("quote").Funcs(funcs).Parse(quoteHTML))

// QuoteData holds everything the quote notification email interpolates.
// IsEstimate selects the "Estimate Details" section; otherwise the
// "Consultation Details" section is rendered.
type QuoteData struct {
	BusinessName   string
	PrimaryColor   string
	SecondaryColor string

	Type       string
	IsEstimate bool

	Name  string
	Email string
	Phone string

	// Estimate fields, rows omitted when empty
	Address            string
	ServiceType        string
	Timeframe          string
	ProjectDescription string

	// Consultation fields, rows omitted when empty
	RoomType         string
	ConsultationType string
	StylePreference  string
	CurrentColors    string
	AdditionalInfo   string

	SubmittedAt  string
	SubmissionID string
}

// RenderQuoteEmail renders the HTML body for a quote request notification.
func RenderQuoteEmail(data QuoteData) (string, error) {
	var buf strings.Builder
	err := quoteTmpl.Execute(&buf, data)
	return buf.String(), err
}
