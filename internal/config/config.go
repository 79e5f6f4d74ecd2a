package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds process configuration. Values come from the
// environment (optionally seeded from a .env file); command-line flags
// in the binaries override them.
type Config struct {
	HTTPAddr    string
	MetricsAddr string

	DBHost  string
	DBPort  int
	DBUser  string
	DBPass  string
	DBName  string
	SSLMode string
}

// Load reads .env when present, then the environment, falling back to
// defaults.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded configuration from .env")
	}

	return &Config{
		HTTPAddr:    getEnv("RENTFLOW_HTTP_ADDR", ":8080"),
		MetricsAddr: getEnv("RENTFLOW_METRICS_ADDR", ":8081"),
		DBHost:      getEnv("RENTFLOW_DB_HOST", "localhost"),
		DBPort:      getEnvInt("RENTFLOW_DB_PORT", 5432),
		DBUser:      getEnv("RENTFLOW_DB_USER", "rentflow"),
		DBPass:      getEnv("RENTFLOW_DB_PASS", "rentflow"),
		DBName:      getEnv("RENTFLOW_DB_NAME", "rentflow"),
		SSLMode:     getEnv("RENTFLOW_DB_SSLMODE", "disable"),
	}
}

// DSN builds the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName, c.SSLMode)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("Ignoring non-numeric environment value")
		return fallback
	}
	return n
}
