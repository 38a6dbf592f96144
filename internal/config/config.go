package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port        string
	Environment string
	LogLevel    string
	SiteBaseURL string

	// Database configuration
	DBType            string // sqlite, sqlite-pure, mysql, mariadb, postgres, sqlserver
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Staff session configuration
	AuthMode      string // authorizer or jwt
	AuthzURL      string
	AuthzClientID string
	JWTSecret     string
	JWTTTLHours   int
	StaffRoles    []string

	// Settings cache
	RedisURL         string
	SettingsCacheTTL time.Duration

	// Search
	StatewideToken string
}

// Auth modes
const (
	AuthModeAuthorizer = "authorizer"
	AuthModeJWT        = "jwt"
)

// LoadFile loads a dotenv file (when path is non-empty) and then the configuration.
// A missing file is an error only when it was asked for explicitly.
func LoadFile(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return Load()
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		Environment:       getEnv("APP_ENV", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		SiteBaseURL:       strings.TrimSuffix(getEnv("SITE_BASE_URL", "http://localhost:3000"), "/"),
		DBType:            getEnv("DB_TYPE", "sqlite"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", ""),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		AuthMode:          getEnv("AUTH_MODE", AuthModeAuthorizer),
		AuthzURL:          getEnv("AUTHZ_URL", ""),
		AuthzClientID:     getEnv("AUTHZ_CLIENT_ID", ""),
		JWTSecret:         getEnv("AUTH_JWT_SECRET", ""),
		JWTTTLHours:       getEnvAsInt("AUTH_JWT_TTL_HOURS", 12),
		StaffRoles:        getEnvAsList("AUTH_ROLES", []string{"admin"}),
		RedisURL:          getEnv("REDIS_URL", ""),
		SettingsCacheTTL:  time.Duration(getEnvAsInt("SETTINGS_CACHE_TTL_SECONDS", 300)) * time.Second,
		StatewideToken:    strings.ToLower(getEnv("STATEWIDE_TOKEN", "haryana")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields for the selected database and auth modes
func (c *Config) Validate() error {
	if c.DBDatabase == "" {
		return fmt.Errorf("DB_DATABASE is required")
	}
	switch c.DBType {
	case "sqlite", "sqlite-pure":
	case "mysql", "mariadb", "postgres", "postgresql", "sqlserver", "mssql":
		if c.DBUser == "" {
			return fmt.Errorf("DB_USER is required for %s", c.DBType)
		}
	default:
		return fmt.Errorf("unsupported DB_TYPE: %s", c.DBType)
	}

	switch c.AuthMode {
	case AuthModeAuthorizer:
		if c.AuthzURL == "" {
			return fmt.Errorf("AUTHZ_URL is required")
		}
		if c.AuthzClientID == "" {
			return fmt.Errorf("AUTHZ_CLIENT_ID is required")
		}
	case AuthModeJWT:
		if c.JWTSecret == "" {
			return fmt.Errorf("AUTH_JWT_SECRET is required")
		}
	default:
		return fmt.Errorf("unsupported AUTH_MODE: %s", c.AuthMode)
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
