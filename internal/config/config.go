package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	ServerPort        string
	TemplatesPath     string
	SessionDuration   time.Duration
	CSRFSecret        string
	RateLimitRequests int
	RateLimitWindow   time.Duration
	QuizSeed          uint64
	TrustProxy        bool
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		ServerPort:        getEnv("PORT", "8080"),
		TemplatesPath:     getEnv("TEMPLATES_PATH", "./internal/templates"),
		SessionDuration:   getEnvDuration("SESSION_DURATION", 24*time.Hour),
		CSRFSecret:        os.Getenv("CSRF_SECRET"),
		RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		QuizSeed:          getEnvUint("QUIZ_SEED", 0),
		TrustProxy:        getEnvBool("TRUST_PROXY", false),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		log.Printf("Warning: invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvUint(key string, defaultValue uint64) uint64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %t", key, value, defaultValue)
		return defaultValue
	}
	return b
}
