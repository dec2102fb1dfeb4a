package models

import "strings"

// QuoteType is the closed set of quote request kinds. Anything else is a
// validation failure; there is no fall-through to a default template.
type QuoteType string

const (
	QuoteFreeEstimate      QuoteType = "Free Estimate"
	QuoteColorConsultation QuoteType = "Color Consultation"
)

func (t QuoteType) Valid() bool {
	return t == QuoteFreeEstimate || t == QuoteColorConsultation
}

// ContactSubmission is the payload of POST /api/contact. It lives for one
// request: parsed, validated, rendered into an email, discarded.
type ContactSubmission struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Message     string `json:"message" validate:"required"`
	ProjectType string `json:"projectType"`
}

// Normalize trims surrounding whitespace from every field so that
// whitespace-only input does not pass the required checks.
func (s *ContactSubmission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Message = strings.TrimSpace(s.Message)
	s.ProjectType = strings.TrimSpace(s.ProjectType)
}

// QuoteSubmission is the payload of POST /api/quote. The optional fields
// split by type: address/serviceType/timeframe/projectDescription belong to
// estimates, the rest to color consultations.
type QuoteSubmission struct {
	Type  QuoteType `json:"type" validate:"required"`
	Name  string    `json:"name" validate:"required"`
	Email string    `json:"email" validate:"required"`
	Phone string    `json:"phone" validate:"required"`

	Address            string `json:"address"`
	ServiceType        string `json:"serviceType"`
	Timeframe          string `json:"timeframe"`
	ProjectDescription string `json:"projectDescription"`

	RoomType         string `json:"roomType"`
	ConsultationType string `json:"consultationType"`
	StylePreference  string `json:"stylePreference"`
	CurrentColors    string `json:"currentColors"`
	AdditionalInfo   string `json:"additionalInfo"`
}

func (s *QuoteSubmission) Normalize() {
	s.Type = QuoteType(strings.TrimSpace(string(s.Type)))
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Address = strings.TrimSpace(s.Address)
	s.ServiceType = strings.TrimSpace(s.ServiceType)
	s.Timeframe = strings.TrimSpace(s.Timeframe)
	s.ProjectDescription = strings.TrimSpace(s.ProjectDescription)
	s.RoomType = strings.TrimSpace(s.RoomType)
	s.ConsultationType = strings.TrimSpace(s.ConsultationType)
	s.StylePreference = strings.TrimSpace(s.StylePreference)
	s.CurrentColors = strings.TrimSpace(s.CurrentColors)
	s.AdditionalInfo = strings.TrimSpace(s.AdditionalInfo)
}
