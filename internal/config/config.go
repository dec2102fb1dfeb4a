// internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// Business profile
	ProfilePath string

	// Email provider selection: postmark | smtp | file
	EmailProvider string

	// Postmark
	PostmarkServerToken  string
	PostmarkAccountToken string

	// SMTP (fallback transport for deployments without a Postmark account)
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	// Sender identity for outbound mail
	FromEmail string
	FromName  string

	// Optional override of the profile's contact email, for staging.
	RecipientOverride string

	// Directory the file provider writes rendered emails to.
	OutboxDir string

	// CORS
	AllowedOrigins string
}

func Load() *Config {
	if os.Getenv("ENV") != "production" {
		_ = godotenv.Load() // optional .env for local
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8086"
	}

	smtpPort := 587
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("❌ Invalid SMTP_PORT: %v", err)
		}
		smtpPort = p
	}

	return &Config{
		ServerPort: port,

		ProfilePath: getEnv("BUSINESS_PROFILE_PATH", "business.yaml"),

		EmailProvider: getEnv("EMAIL_PROVIDER", "postmark"),

		PostmarkServerToken:  os.Getenv("POSTMARK_SERVER_TOKEN"),
		PostmarkAccountToken: os.Getenv("POSTMARK_ACCOUNT_TOKEN"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: smtpPort,
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),

		FromEmail: getEnv("FROM_EMAIL", "website@yourdomain.com"),
		FromName:  getEnv("FROM_NAME", "Website Forms"),

		RecipientOverride: os.Getenv("RECIPIENT_OVERRIDE"),

		OutboxDir: getEnv("OUTBOX_DIR", "outbox"),

		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
