// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Owner        OwnerConfig
	Advisor      AdvisorConfig
	Email        EmailConfig
	SeedDemoData bool
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// DatabaseConfig holds the snapshot store configuration.
type DatabaseConfig struct {
	Driver          string
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds Redis configuration. An empty URL keeps the rate limiter in memory.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// JWTConfig holds JWT token configuration.
type JWTConfig struct {
	Secret string
}

// OwnerConfig describes the single account allowed to log in. Either a bcrypt
// hash or a plain password may be given; a plain password is hashed at startup.
type OwnerConfig struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Password     string
	BcryptCost   int
}

// AdvisorConfig holds the remote tip advisor configuration.
type AdvisorConfig struct {
	GeminiAPIKey string
	Model        string
	Timeout      time.Duration
}

// EmailConfig holds email service configuration.
type EmailConfig struct {
	ResendAPIKey    string
	FromName        string
	FromEmail       string
	AppBaseURL      string
	WorkerEnabled   bool
	PollInterval    time.Duration
	BatchSize       int
	CleanupInterval time.Duration
	RetentionDays   int
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DATABASE_DRIVER", DriverSQLite),
			URL:             getEnv("DATABASE_URL", "finapple.db"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "change-me-in-production"),
		},
		Owner: OwnerConfig{
			ID:           getEnv("OWNER_ID", "owner"),
			Email:        getEnv("OWNER_EMAIL", ""),
			Name:         getEnv("OWNER_NAME", "Owner"),
			PasswordHash: getEnv("OWNER_PASSWORD_HASH", ""),
			Password:     getEnv("OWNER_PASSWORD", ""),
			BcryptCost:   getEnvAsInt("BCRYPT_COST", 12),
		},
		Advisor: AdvisorConfig{
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
			Model:        getEnv("GEMINI_MODEL", "gemini-2.5-flash-lite"),
			Timeout:      getEnvAsDuration("ADVISOR_TIMEOUT", 8*time.Second),
		},
		Email: EmailConfig{
			ResendAPIKey:    getEnv("RESEND_API_KEY", ""),
			FromName:        getEnv("RESEND_FROM_NAME", "FinApple"),
			FromEmail:       getEnv("RESEND_FROM_EMAIL", "onboarding@resend.dev"),
			AppBaseURL:      getEnv("APP_BASE_URL", "http://localhost:5173"),
			WorkerEnabled:   getEnvAsBool("EMAIL_WORKER_ENABLED", true),
			PollInterval:    getEnvAsDuration("EMAIL_WORKER_POLL_INTERVAL", 5*time.Second),
			BatchSize:       getEnvAsInt("EMAIL_WORKER_BATCH_SIZE", 10),
			CleanupInterval: getEnvAsDuration("EMAIL_CLEANUP_INTERVAL", time.Hour),
			RetentionDays:   getEnvAsInt("EMAIL_RETENTION_DAYS", 30),
		},
		SeedDemoData: getEnvAsBool("SEED_DEMO_DATA", false),
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
