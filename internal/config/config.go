package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port string

	// Upstream feed settings.
	BMKGTimeout time.Duration

	// Session and identity settings.
	JWTSecret      string
	SessionTTL     time.Duration
	GoogleClientID string

	// Operator-tier access.
	AdminSecret      string
	AdminPassword    string
	OperatorPassword string

	// Document store. Empty MongoURI means the API runs without persistence
	// and report/user endpoints degrade to empty results.
	MongoURI    string
	MongoDBName string

	// Remote image classification.
	GeminiAPIKey string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")

	cfg.BMKGTimeout = getenvDuration("BMKG_TIMEOUT", 10*time.Second)

	cfg.JWTSecret = getenvDefault("JWT_SECRET", "siaga-dev-secret")
	cfg.SessionTTL = getenvDuration("SESSION_TTL", 7*24*time.Hour)
	cfg.GoogleClientID = os.Getenv("GOOGLE_CLIENT_ID")

	cfg.AdminSecret = getenvDefault("ADMIN_SECRET", "siaga-admin-secret")
	cfg.AdminPassword = getenvDefault("ADMIN_PASSWORD", "siagaadmin")
	cfg.OperatorPassword = getenvDefault("OPERATOR_PASSWORD", "siagaoperator")

	cfg.MongoURI = os.Getenv("MONGODB_URI")
	cfg.MongoDBName = getenvDefault("MONGODB_DB_NAME", "siaga")

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}
