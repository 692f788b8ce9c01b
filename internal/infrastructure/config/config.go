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
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Persistence
	DBPath  string // SQLite file holding the saved text
	SlotKey string // fixed key the raw text is stored under

	// Review
	ShuffleSeed *int64 // nil = random order on every init

	// Logging
	LogLevel string // debug, info, warn, error
	AppEnv   string // "dev" switches to colored console output

	CORSAllowedOrigins []string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:      getenvDefault("SERVER_ADDRESS", ":8080"),
		ShutdownTimeout:    getDurationDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		DBPath:             getenvDefault("DB_PATH", "recall.db"),
		SlotKey:            getenvDefault("SLOT_KEY", "questions"),
		ShuffleSeed:        getInt64Ptr("SHUFFLE_SEED"),
		LogLevel:           getenvDefault("LOG_LEVEL", "info"),
		AppEnv:             os.Getenv("APP_ENV"),
		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "*")),
	}
}

// IsDev reports whether the process runs in a local development setup.
func (c *Config) IsDev() bool {
	return strings.EqualFold(c.AppEnv, "dev") || strings.EqualFold(c.AppEnv, "development")
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getInt64Ptr(k string) *int64 {
	v := os.Getenv(k)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid integer: %v", k, v, err)
	}
	return &n
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
