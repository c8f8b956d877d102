package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	CORSOrigins string
	// JWKSURL enables optional bearer-token identity resolution when set.
	// Routes stay open either way.
	JWKSURL string
	// Rate limiting
	RateLimitRequests int
	RateLimitWindow   time.Duration
	// Upload handling
	UploadDir     string
	UploadBaseURL string
	// LogDir enables file logging alongside stdout when set.
	LogDir      string
	MaxLogFiles int
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:              getEnv("PORT", "8080"),
		Environment:       env,
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		CORSOrigins:       getEnv("CORS_ORIGINS", "http://localhost:3000"),
		JWKSURL:           getEnv("JWKS_URL", ""),
		RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		UploadDir:         getEnv("UPLOAD_DIR", "./uploads"),
		UploadBaseURL:     getEnv("UPLOAD_BASE_URL", "http://localhost:8080/uploads"),
		LogDir:            getEnv("LOG_DIR", ""),
		MaxLogFiles:       getEnvInt("MAX_LOG_FILES", 5),
		// Debug defaults to true in dev/test, false in production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
