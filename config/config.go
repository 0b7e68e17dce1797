package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EmailProviderResend = "resend"
	EmailProviderSMTP   = "smtp"
)

type Config struct {
	Port    string
	GinMode string
	SiteURL string
	// Logging
	LogLevel  string
	LogFormat string
	// CORS origins allowed to call the JSON API
	CORSAllowedOrigins []string
	// Email
	EmailProvider  string // resend or smtp
	ResendAPIKey   string
	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
	EmailFrom      string // Empty means "<site name> <noreply@<site domain>>"
	ContactEmailTo string // Empty means the site email from the catalog
}

func LoadConfig() (*Config, error) {
	// Load .env file when present; real environment variables win
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		SiteURL:            strings.TrimRight(getEnv("SITE_URL", "https://aim-law.ca"), "/"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"https://aim-law.ca", "https://www.aim-law.ca"}),
		EmailProvider:      strings.ToLower(getEnv("EMAIL_PROVIDER", EmailProviderResend)),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		SMTPHost:           getEnv("SMTP_HOST", ""),
		SMTPPort:           getEnvInt("SMTP_PORT", 587),
		SMTPUsername:       getEnv("SMTP_USERNAME", ""),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		EmailFrom:          getEnv("EMAIL_FROM", ""),
		ContactEmailTo:     getEnv("CONTACT_EMAIL_TO", ""),
	}

	if !cfg.EmailConfigured() {
		log.Printf("WARNING: %s email credentials missing. Contact form will run in log-only mode.", cfg.EmailProvider)
	}

	return cfg, nil
}

// EmailConfigured reports whether the credential of the selected provider is set
func (c *Config) EmailConfigured() bool {
	if c.EmailProvider == EmailProviderSMTP {
		return c.SMTPHost != "" && c.SMTPUsername != "" && c.SMTPPassword != ""
	}
	return c.ResendAPIKey != ""
}

func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.TrimRight(part, "/"))
		}
	}
	return out
}
