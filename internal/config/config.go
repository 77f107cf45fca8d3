package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/text/language"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	CORSOrigins string
	TablePrefix string

	// Session tokens
	SessionSecret string
	SessionTTL    time.Duration
	AuthJWKSURL   string // when set, tokens are verified against this JWKS instead of SessionSecret

	// Account tree sorting
	CollationLanguage language.Tag

	// Logging
	LogDir      string
	LogMaxFiles int
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:              getEnv("PORT", "8080"),
		Environment:       env,
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		CORSOrigins:       getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix:       getTablePrefix(env),
		SessionSecret:     getEnv("SESSION_SECRET", ""),
		SessionTTL:        getDuration("SESSION_TTL", 24*time.Hour),
		AuthJWKSURL:       getEnv("AUTH_JWKS_URL", ""),
		CollationLanguage: getLanguage("COLLATION_LANGUAGE", language.Swedish),
		LogDir:            getEnv("LOG_DIR", ""),
		LogMaxFiles:       getInt("LOG_MAX_FILES", 10),
	}
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func getLanguage(key string, defaultValue language.Tag) language.Tag {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	tag, err := language.Parse(value)
	if err != nil {
		return defaultValue
	}
	return tag
}
