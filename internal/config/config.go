package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	Env         string

	StripeSecretKey     string
	StripeWebhookSecret string
	CheckoutSuccessURL  string
	CheckoutCancelURL   string

	TextProvider  string // "openai" | "gemini"
	OpenAIAPIKey  string
	OpenAIBaseURL string // override for OpenAI-compatible endpoints
	TextModel     string
	GeminiAPIKey  string
	ClipdropKey   string
}

// Load reads .env when present and falls back to process env variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env variables")
	}

	return &Config{
		Port:        getEnv("PORT", "4000"),
		DatabaseURL: getEnv("POSTGRES_URL", ""),
		Env:         getEnv("ENV", "development"),

		StripeSecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
		CheckoutSuccessURL:  getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/loading"),
		CheckoutCancelURL:   getEnv("CHECKOUT_CANCEL_URL", "http://localhost:3000"),

		TextProvider:  getEnv("TEXT_PROVIDER", "openai"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		TextModel:     getEnv("TEXT_MODEL", "gemini-2.0-flash"),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		ClipdropKey:   getEnv("CLIPDROP_API_KEY", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
