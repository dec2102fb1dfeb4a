package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contractor-site-backend/internal/config"
	"contractor-site-backend/internal/email"
	"contractor-site-backend/internal/profile"
	"contractor-site-backend/internal/service"
	transport "contractor-site-backend/internal/transport/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

var startTime time.Time

func main() {
	startTime = time.Now()
	cfg := config.Load()

	prof, err := profile.Load(cfg.ProfilePath)
	if err != nil {
		log.Fatalf("❌ [PROFILE] Failed to load business profile: %v", err)
	}
	log.Printf("✅ [PROFILE] Loaded business profile for %q (%s)", prof.Business.Name, cfg.ProfilePath)

	sender, err := newSender(cfg)
	if err != nil {
		log.Fatalf("❌ [EMAIL] Failed to initialize %s sender: %v", cfg.EmailProvider, err)
	}
	log.Printf("✅ [EMAIL] %s sender initialized", cfg.EmailProvider)

	forms := service.NewFormService(sender, prof, cfg.RecipientOverride)
	handler := transport.NewHandler(forms, prof)
	log.Println("✅ [SERVICE] FormService & Handler initialized")

	app := fiber.New(fiber.Config{
		AppName:      "contractor-site-backend",
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       86400,
	}))

	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))

	api := app.Group("/api")
	api.Post("/contact", handler.SubmitContact)
	api.Post("/quote", handler.SubmitQuote)
	api.Get("/profile", handler.GetProfile)

	// Bare aliases kept for clients that post to the unprefixed paths.
	app.Post("/contact", handler.SubmitContact)
	app.Post("/quote", handler.SubmitQuote)
	log.Println("✅ [ROUTES] Registered /api/contact, /api/quote, /api/profile")

	app.Get("/health", func(c *fiber.Ctx) error {
		uptime := time.Since(startTime).Round(time.Second)
		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "contractor-site-backend",
			"business":  prof.Business.Name,
			"uptime":    uptime.String(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	log.Println("✅ [ROUTES] Registered /health")

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("🛑 [SHUTDOWN] Graceful shutdown initiated...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ [SHUTDOWN] Error: %v", err)
		}
	}()

	log.Printf("🚀 contractor-site-backend starting...")
	log.Printf("   🔗 Listening on port: %s", cfg.ServerPort)
	log.Printf("   📧 Email provider: %s", cfg.EmailProvider)
	log.Printf("   🌐 CORS allowed origins: %s", cfg.AllowedOrigins)

	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("❌ [STARTUP] Server failed to start: %v", err)
	}
}

// newSender picks the delivery transport: the Postmark transactional API by
// default, SMTP relay for accounts without one, or the local file outbox.
func newSender(cfg *config.Config) (email.Sender, error) {
	switch cfg.EmailProvider {
	case "smtp":
		return email.NewSMTPSender(email.SMTPConfig{
			Host:      cfg.SMTPHost,
			Port:      cfg.SMTPPort,
			User:      cfg.SMTPUser,
			Pass:      cfg.SMTPPass,
			FromEmail: cfg.FromEmail,
			FromName:  cfg.FromName,
		})
	case "file":
		return email.NewFileSender(cfg.OutboxDir), nil
	default:
		return email.NewPostmarkSender(email.PostmarkConfig{
			ServerToken:  cfg.PostmarkServerToken,
			AccountToken: cfg.PostmarkAccountToken,
			FromEmail:    cfg.FromEmail,
			FromName:     cfg.FromName,
		})
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	log.Printf("🔥 [ERROR] [%d] %s %s → %v | IP=%s", code, c.Method(), c.Path(), err, c.IP())
	return c.Status(code).JSON(fiber.Map{"error": "Internal server error"})
}
