package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Backend API
	APIBaseURL     string
	RequestTimeout time.Duration

	// Local mirror store (saved jobs, applied-job shadow copies, session)
	MirrorPath string
	// Mirror entries older than this are treated as stale on freshness-aware reads
	MirrorMaxAge time.Duration

	// Feed pagination
	PageSize int

	// Legacy role fallback: tokens that are not JWTs fall back to
	// comparing the signed-in email against this address
	AdminEmail string
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development; ignored elsewhere
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:     strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8080/api"), "/"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
		MirrorPath:     getEnv("MIRROR_PATH", "portal.db"),
		MirrorMaxAge:   time.Duration(getEnvInt("MIRROR_MAX_AGE_HOURS", 24)) * time.Hour,
		PageSize:       getEnvInt("PAGE_SIZE", 5),
		AdminEmail:     getEnv("ADMIN_EMAIL", ""),
	}

	if cfg.AdminEmail == "" {
		log.Println("WARNING: ADMIN_EMAIL is not set. Opaque tokens will never resolve to the admin role.")
	}

	return cfg, nil
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
