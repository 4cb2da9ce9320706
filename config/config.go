package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	IssuerFirebase       = "firebase"
	IssuerServiceAccount = "service-account"
)

type Config struct {
	PublicHost string
	Port       string

	// GoogleClientIDs restricts accepted ID-token audiences. Empty accepts any.
	GoogleClientIDs []string

	IssuerMode                   string
	FirebaseProjectID            string
	FirebaseServiceAccountID     string
	GoogleApplicationCredentials string

	CORSAllowedOrigins []string

	LogLevel  string
	LogFormat string

	ShutdownTimeout time.Duration
}

// Load reads the environment, after merging an optional .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		PublicHost: getEnv("PUBLIC_HOST", "http://localhost"),
		Port:       getEnv("PORT", "8080"),

		GoogleClientIDs: getEnvList("GOOGLE_CLIENT_IDS", nil),

		IssuerMode:                   getEnv("ISSUER_MODE", IssuerFirebase),
		FirebaseProjectID:            getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseServiceAccountID:     getEnv("FIREBASE_SERVICE_ACCOUNT_ID", ""),
		GoogleApplicationCredentials: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func (c Config) Validate() error {
	switch c.IssuerMode {
	case IssuerFirebase:
	case IssuerServiceAccount:
		if c.GoogleApplicationCredentials == "" {
			return fmt.Errorf("ISSUER_MODE=%s requires GOOGLE_APPLICATION_CREDENTIALS", IssuerServiceAccount)
		}
	default:
		return fmt.Errorf("unknown ISSUER_MODE %q", c.IssuerMode)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
