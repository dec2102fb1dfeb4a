// internal/service/forms.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"contractor-site-backend/internal/email"
	"contractor-site-backend/internal/email/templates"
	"contractor-site-backend/internal/profile"
	"contractor-site-backend/pkg/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	// ErrValidation marks requests rejected before any rendering or network
	// I/O. Maps to a 400 with a generic message.
	ErrValidation = errors.New("missing or invalid required fields")

	// ErrDispatch marks a provider-side send failure. Maps to a 500 distinct
	// from unexpected faults.
	ErrDispatch = errors.New("email dispatch failed")
)

// One delivery attempt per request, bounded so a stuck provider cannot hang
// the handler.
const dispatchTimeout = 10 * time.Second

// Timestamp format for the "Submitted:" row in notification emails.
const submittedAtLayout = "1/2/2006, 3:04:05 PM MST"

// FormService runs the submission pipeline: normalize → validate → render →
// dispatch. It holds no per-request state; the profile is immutable and the
// sender is safe for concurrent use.
type FormService struct {
	sender    email.Sender
	profile   *profile.BusinessProfile
	recipient string
	validate  *validator.Validate

	now   func() time.Time
	newID func() string
}

func NewFormService(sender email.Sender, prof *profile.BusinessProfile, recipient string) *FormService {
	if recipient == "" {
		recipient = prof.Contact.Email
	}
	return &FormService{
		sender:    sender,
		profile:   prof,
		recipient: recipient,
		validate:  validator.New(),
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
}

// SubmitContact validates a contact submission, renders the notification
// email and dispatches it to the business owner.
func (s *FormService) SubmitContact(ctx context.Context, req *models.ContactSubmission) error {
	req.Normalize()
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: contact: %v", ErrValidation, err)
	}

	id := s.newID()
	log.Printf("📨 [CONTACT] Submission %s from %q", id, req.Name)

	body, err := templates.RenderContactEmail(templates.ContactData{
		BusinessName:   s.profile.Business.Name,
		PrimaryColor:   s.profile.Colors.Primary,
		SecondaryColor: s.profile.Colors.Secondary,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Message:        req.Message,
		ProjectType:    req.ProjectType,
		SubmittedAt:    s.now().Format(submittedAtLayout),
		SubmissionID:   id,
	})
	if err != nil {
		return fmt.Errorf("render contact email: %w", err)
	}

	subject := fmt.Sprintf("New Contact Form Submission - %s", s.profile.Business.Name)
	return s.dispatch(ctx, id, subject, body, "contact-form")
}

// SubmitQuote validates a quote submission, renders the notification email
// and dispatches it. An unrecognized quote type is a validation failure, not
// a silent fall-through to the consultation template.
func (s *FormService) SubmitQuote(ctx context.Context, req *models.QuoteSubmission) error {
	req.Normalize()
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: quote: %v", ErrValidation, err)
	}
	if !req.Type.Valid() {
		return fmt.Errorf("%w: quote: unrecognized type %q", ErrValidation, req.Type)
	}

	id := s.newID()
	log.Printf("📨 [QUOTE] %s submission %s from %q", req.Type, id, req.Name)

	body, err := templates.RenderQuoteEmail(templates.QuoteData{
		BusinessName:       s.profile.Business.Name,
		PrimaryColor:       s.profile.Colors.Primary,
		SecondaryColor:     s.profile.Colors.Secondary,
		Type:               string(req.Type),
		IsEstimate:         req.Type == models.QuoteFreeEstimate,
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		Address:            req.Address,
		ServiceType:        req.ServiceType,
		Timeframe:          req.Timeframe,
		ProjectDescription: req.ProjectDescription,
		RoomType:           req.RoomType,
		ConsultationType:   req.ConsultationType,
		StylePreference:    req.StylePreference,
		CurrentColors:      req.CurrentColors,
		AdditionalInfo:     req.AdditionalInfo,
		SubmittedAt:        s.now().Format(submittedAtLayout),
		SubmissionID:       id,
	})
	if err != nil {
		return fmt.Errorf("render quote email: %w", err)
	}

	subject := fmt.Sprintf("New %s Request - %s", req.Type, s.profile.Business.Name)
	return s.dispatch(ctx, id, subject, body, "quote-form")
}

// dispatch makes the single delivery attempt. Provider errors are logged with
// full detail here and surface to the caller only as ErrDispatch.
func (s *FormService) dispatch(ctx context.Context, id, subject, body, tag string) error {
	ctx, cancel := context.WithTimeout(ctx, dispatchTimeout)
	defer cancel()

	err := s.sender.Send(ctx, email.Message{
		To:       s.recipient,
		Subject:  subject,
		HTMLBody: body,
		Tag:      tag,
	})
	if err != nil {
		log.Printf("❌ [DISPATCH] Submission %s failed: %v", id, err)
		return fmt.Errorf("%w: %v", ErrDispatch, err)
	}

	log.Printf("✅ [DISPATCH] Submission %s sent to %s (Subject: %s)", id, s.recipient, subject)
	return nil
}
