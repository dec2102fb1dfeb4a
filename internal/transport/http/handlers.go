// internal/transport/http/handlers.go
package http

import (
	"errors"
	"log"

	"contractor-site-backend/internal/profile"
	"contractor-site-backend/internal/service"
	"contractor-site-backend/pkg/models"

	"github.com/gofiber/fiber/v2"
)

// Client-visible messages. Validation and dispatch failures collapse to these
// two; everything else is the generic fault message. Detail stays in the logs.
const (
	msgMissingFields = "Missing required fields"
	msgSendFailed    = "Failed to send email"
	msgInternalError = "Internal server error"
)

type Handler struct {
	forms   *service.FormService
	profile *profile.BusinessProfile
}

func NewHandler(forms *service.FormService, prof *profile.BusinessProfile) *Handler {
	return &Handler{forms: forms, profile: prof}
}

// SubmitContact handles POST /api/contact.
func (h *Handler) SubmitContact(c *fiber.Ctx) error {
	var req models.ContactSubmission
	if err := c.BodyParser(&req); err != nil {
		log.Printf("❌ [CONTACT] Malformed request body: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgInternalError})
	}
	return h.respond(c, h.forms.SubmitContact(c.Context(), &req))
}

// SubmitQuote handles POST /api/quote.
func (h *Handler) SubmitQuote(c *fiber.Ctx) error {
	var req models.QuoteSubmission
	if err := c.BodyParser(&req); err != nil {
		log.Printf("❌ [QUOTE] Malformed request body: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgInternalError})
	}
	return h.respond(c, h.forms.SubmitQuote(c.Context(), &req))
}

// GetProfile handles GET /api/profile. The profile is static, trusted
// configuration; the frontend renders the marketing pages from it.
func (h *Handler) GetProfile(c *fiber.Ctx) error {
	return c.JSON(h.profile)
}

// respond maps the pipeline outcome onto the three-outcome response contract.
func (h *Handler) respond(c *fiber.Ctx, err error) error {
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"success": true})
	case errors.Is(err, service.ErrValidation):
		log.Printf("⚠️ [FORMS] Rejected: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgMissingFields})
	case errors.Is(err, service.ErrDispatch):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgSendFailed})
	default:
		log.Printf("🔥 [FORMS] Unexpected failure: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgInternalError})
	}
}
