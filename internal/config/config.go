package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the backend
type Config struct {
	// Server
	Port         string
	StaticDir    string
	AllowOrigins []string

	// Storage
	DatabasePath string

	// Rates
	RatesPath string // empty means the embedded default rate table

	// Sessions
	SessionTTL time.Duration

	// Admin bootstrap (used only when the admins collection is empty)
	AdminUsername string
	AdminPassword string
}

// Load reads configuration from environment variables
func Load() *Config {
	ttlHours := getEnvInt("NAQSH_SESSION_TTL_HOURS", 24)
	if ttlHours <= 0 {
		ttlHours = 24
	}

	return &Config{
		Port:          getEnv("NAQSH_PORT", "8080"),
		StaticDir:     getEnv("NAQSH_STATIC_DIR", "./public"),
		AllowOrigins:  []string{getEnv("NAQSH_ALLOW_ORIGIN", "http://localhost:3000")},
		DatabasePath:  getEnv("NAQSH_DB_PATH", "./naqsh.db"),
		RatesPath:     getEnv("NAQSH_RATES_PATH", ""),
		SessionTTL:    time.Duration(ttlHours) * time.Hour,
		AdminUsername: getEnv("NAQSH_ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("NAQSH_ADMIN_PASSWORD", "admin"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
