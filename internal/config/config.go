// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	GRPCAddr    string
	HTTPAddr    string
	StoreDriver string // memory, sqlite or postgres
	DBConnStr   string // Postgres connection string
	SQLitePath  string
	SessionTTL  time.Duration
	BcryptCost  int
	SeedDemo    bool
	LogLevel    string
	LogPretty   bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	cfg := &Config{
		GRPCAddr:    getEnv("GRPC_ADDR", ":8080"),
		HTTPAddr:    getEnv("HTTP_ADDR", ":8081"),
		StoreDriver: getEnv("STORE_DRIVER", StoreMemory),
		DBConnStr:   postgresConnString(),
		SQLitePath:  getEnv("SQLITE_PATH", "data/stocktracker.db"),
		SessionTTL:  sessionTTL,
		BcryptCost:  getEnvAsInt("BCRYPT_COST", 10),
		SeedDemo:    getEnvAsBool("SEED_DEMO", false),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogPretty:   getEnvAsBool("LOG_PRETTY", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields and value ranges
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreMemory, StoreSQLite, StorePostgres:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want memory, sqlite or postgres)", c.StoreDriver)
	}
	if c.StoreDriver == StoreSQLite && c.SQLitePath == "" {
		return fmt.Errorf("SQLITE_PATH is required for the sqlite store")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}
	return nil
}

// postgresConnString uses DB_CONN_STR, or builds it from individual vars (Docker friendly)
func postgresConnString() string {
	if connStr := os.Getenv("DB_CONN_STR"); connStr != "" {
		return connStr
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "stocktracker"),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
