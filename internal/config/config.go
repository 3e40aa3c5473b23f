// Package config reads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort         = "8080"
	defaultDatabasePath = "postboard.db"
	defaultBcryptCost   = 12
	minSecretLength     = 32
	minBcryptCost       = 4
	maxBcryptCost       = 14
)

// Config holds everything main needs to wire the server.
type Config struct {
	Port         string
	DatabaseURL  string // postgres DSN; empty selects SQLite
	DatabasePath string
	JWTSecret    string
	BcryptCost   int
}

// UsePostgres reports whether DatabaseURL names a Postgres server.
func (c Config) UsePostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") || strings.HasPrefix(c.DatabaseURL, "postgresql://")
}

// Load reads the given dotenv files (".env" when none are named) into the
// process environment without overriding variables that are already set,
// then builds and validates a Config. A missing dotenv file is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:         envOrDefault("PORT", defaultPort),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabasePath: envOrDefault("DATABASE_PATH", defaultDatabasePath),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		BcryptCost:   defaultBcryptCost,
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET environment variable is required")
	}
	if len(cfg.JWTSecret) < minSecretLength {
		return Config{}, fmt.Errorf("JWT_SECRET must be at least %d characters for HMAC-SHA256 security", minSecretLength)
	}

	if cfg.DatabaseURL != "" && !cfg.UsePostgres() {
		return Config{}, fmt.Errorf("DATABASE_URL must be a postgres:// URL")
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if parsed < minBcryptCost || parsed > maxBcryptCost {
			return Config{}, fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", minBcryptCost, maxBcryptCost, parsed)
		}
		cfg.BcryptCost = parsed
	}

	return cfg, nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
