package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	DatabaseURL     string
	Env             string
	RateLimitRate   float64
	RateLimitBurst  int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of a local env file for dev convenience.
	_ = godotenv.Load()

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:     dbURL,
		Env:             env,
		RateLimitRate:   getEnvFloat("RATE_LIMIT_RATE", 10),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 30),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return v
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %v", key, raw, def)
		return def
	}
	return v
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
