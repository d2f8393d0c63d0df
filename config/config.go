package config

import (
	"os"
	"strconv"
)

// Config holds every environment-provided setting, resolved once at
// startup and passed explicitly into the service constructors. Absence
// of a credential switches the corresponding service into its
// documented fallback mode rather than being an error.
type Config struct {
	Port         string
	FrontendURLs string

	// Amadeus flight provider. Empty ID or secret means demo mode
	// (mock flight data).
	AmadeusClientID     string
	AmadeusClientSecret string
	AmadeusBaseURL      string

	// Gemini generative-text backend. Empty key means deterministic
	// templated summaries.
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	// SMTP notification. Empty host or user means log-only.
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
}

// Load resolves configuration from the environment.
func Load() Config {
	baseURL := "https://api.amadeus.com" // production
	if env := os.Getenv("AMADEUS_ENV"); env == "" || env == "test" {
		baseURL = "https://test.api.amadeus.com" // free test environment
	}

	return Config{
		Port:         getEnv("PORT", "8080"),
		FrontendURLs: os.Getenv("FRONTEND_URL"),

		AmadeusClientID:     os.Getenv("AMADEUS_CLIENT_ID"),
		AmadeusClientSecret: os.Getenv("AMADEUS_CLIENT_SECRET"),
		AmadeusBaseURL:      baseURL,

		GeminiAPIKey:  os.Getenv("GOOGLE_GENAI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
