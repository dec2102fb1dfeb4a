package http_test

import (
	"context"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contractor-site-backend/internal/email"
	"contractor-site-backend/internal/profile"
	"contractor-site-backend/internal/service"
	transport "contractor-site-backend/internal/transport/http"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSender records outbound messages and returns a configurable error.
type stubSender struct {
	err  error
	sent []email.Message
}

func (s *stubSender) Send(ctx context.Context, msg email.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func testProfile() *profile.BusinessProfile {
	p := &profile.BusinessProfile{}
	p.Business.Name = "Happy Homes Painting"
	p.Contact.Email = "owner@happyhomespainting.net"
	p.Contact.Phone = "(980) 949-5200"
	p.Colors.Primary = "#1B4B66"
	p.Colors.Secondary = "#D4AF37"
	return p
}

func newTestApp(sender email.Sender) *fiber.App {
	prof := testProfile()
	forms := service.NewFormService(sender, prof, "")
	handler := transport.NewHandler(forms, prof)

	app := fiber.New()
	api := app.Group("/api")
	api.Post("/contact", handler.SubmitContact)
	api.Post("/quote", handler.SubmitQuote)
	api.Get("/profile", handler.GetProfile)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestContactEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("valid submission", func(t *testing.T) {
		t.Parallel()
		sender := &stubSender{}
		app := newTestApp(sender)

		status, body := postJSON(t, app, "/api/contact",
			`{"name":"Jane Doe","email":"jane@x.com","phone":"555-1234","message":"Please call me"}`)

		assert.Equal(t, nethttp.StatusOK, status)
		assert.JSONEq(t, `{"success":true}`, body)

		require.Len(t, sender.sent, 1)
		msg := sender.sent[0]
		assert.Equal(t, "owner@happyhomespainting.net", msg.To)
		assert.Equal(t, "New Contact Form Submission - Happy Homes Painting", msg.Subject)
		assert.Contains(t, msg.HTMLBody, "Jane Doe")
		assert.Contains(t, msg.HTMLBody, "jane@x.com")
		assert.Contains(t, msg.HTMLBody, "555-1234")
		assert.Contains(t, msg.HTMLBody, "Please call me")
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()
		sender := &stubSender{}
		app := newTestApp(sender)

		status, body := postJSON(t, app, "/api/contact",
			`{"name":"Jane Doe","email":"jane@x.com","phone":"555-1234"}`)

		assert.Equal(t, nethttp.StatusBadRequest, status)
		assert.JSONEq(t, `{"error":"Missing required fields"}`, body)
		assert.Empty(t, sender.sent)
	})

	t.Run("dispatch failure", func(t *testing.T) {
		t.Parallel()
		sender := &stubSender{err: errors.New("provider rejected")}
		app := newTestApp(sender)

		status, body := postJSON(t, app, "/api/contact",
			`{"name":"Jane Doe","email":"jane@x.com","phone":"555-1234","message":"Please call me"}`)

		assert.Equal(t, nethttp.StatusInternalServerError, status)
		assert.JSONEq(t, `{"error":"Failed to send email"}`, body)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()
		sender := &stubSender{}
		app := newTestApp(sender)

		status, body := postJSON(t, app, "/api/contact", `{"name":`)

		assert.Equal(t, nethttp.StatusInternalServerError, status)
		assert.JSONEq(t, `{"error":"Internal server error"}`, body)
		assert.Empty(t, sender.sent)
	})
}

func TestQuoteEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("free estimate", func(t *testing.T) {
		t.Parallel()
		sender := &stubSender{}
		app := newTestApp(sender)

		status, body := postJSON(t, app, "/api/quote",
			`{"type":"Free Estimate","name":"Mike Chen","email":"mike@x.com","phone":"555-9876","address":"123 Main St","serviceType":"Exterior Painting"}`)

		assert.Equal(t, nethttp.StatusOK, status)
		assert.JSONEq(t, `{"success":true}`, body)

		require.Len(t, sender.sent, 1)
		msg := sender.sent[0]
		assert.Equal(t, "New Free Estimate Request - Happy Homes Painting", msg.Subject)
		assert.Contains(t, msg.HTMLBody, "Estimate Details")
		assert.NotContains(t, msg.HTMLBody, "Consultation Details")
	})

	t.Run("color consultation", func(t *testing.T) {
		t.Parallel()
		sender := &stubSender{}
		app := newTestApp(sender)

		status, body := postJSON(t, app, "/api/quote",
			`{"type":"Color Consultation","name":"Mike Chen","email":"mike@x.com","phone":"555-9876","roomType":"Kitchen"}`)

		assert.Equal(t, nethttp.StatusOK, status)
		assert.JSONEq(t, `{"success":true}`, body)

		require.Len(t, sender.sent, 1)
		msg := sender.sent[0]
		assert.Equal(t, "New Color Consultation Request - Happy Homes Painting", msg.Subject)
		assert.Contains(t, msg.HTMLBody, "Consultation Details")
		assert.NotContains(t, msg.HTMLBody, "Estimate Details")
	})

	t.Run("unrecognized type is rejected", func(t *testing.T) {
		t.Parallel()
		sender := &stubSender{}
		app := newTestApp(sender)

		status, body := postJSON(t, app, "/api/quote",
			`{"type":"Full Repaint","name":"Mike Chen","email":"mike@x.com","phone":"555-9876"}`)

		assert.Equal(t, nethttp.StatusBadRequest, status)
		assert.JSONEq(t, `{"error":"Missing required fields"}`, body)
		assert.Empty(t, sender.sent)
	})

	t.Run("missing type is rejected", func(t *testing.T) {
		t.Parallel()
		sender := &stubSender{}
		app := newTestApp(sender)

		status, body := postJSON(t, app, "/api/quote",
			`{"name":"Mike Chen","email":"mike@x.com","phone":"555-9876"}`)

		assert.Equal(t, nethttp.StatusBadRequest, status)
		assert.JSONEq(t, `{"error":"Missing required fields"}`, body)
		assert.Empty(t, sender.sent)
	})
}

func TestProfileEndpoint(t *testing.T) {
	t.Parallel()
	app := newTestApp(&stubSender{})

	req := httptest.NewRequest(nethttp.MethodGet, "/api/profile", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"Happy Homes Painting"`)
	assert.Contains(t, string(raw), `"owner@happyhomespainting.net"`)
}
