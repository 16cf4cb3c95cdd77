package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App           AppConfig
	Auth          AuthConfig
	JWT           JWTConfig
	Storage       StorageConfig
	Database      DatabaseConfig
	Elasticsearch ElasticsearchConfig

	// ReferenceDataFile optionally overrides the gender and region lists.
	ReferenceDataFile string
}

// AppConfig holds application configuration
type AppConfig struct {
	Name        string
	Version     string
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// AuthConfig holds the single demo credential pair
type AuthConfig struct {
	Username   string
	Password   string
	LoginDelay time.Duration
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

type StorageConfig struct {
	Type     string
	BasePath string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type ElasticsearchConfig struct {
	URL   string
	Index string
}

// bcrypt rejects passwords longer than 72 bytes.
const maxPasswordBytes = 72

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

const (
	StorageMemory        = "memory"
	StorageFile          = "file"
	StoragePostgres      = "postgres"
	StorageElasticsearch = "elasticsearch"
)

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
		slog.Debug("No .env file found, using environment only")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Name:        getEnv("APP_NAME", "employee-dashboard"),
		Version:     getEnv("APP_VERSION", "v1.0.0"),
		Port:        appPort,
		Env:         getEnv("APP_ENV", EnvDevelopment),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Demo credentials
	loginDelay, err := time.ParseDuration(getEnv("LOGIN_DELAY", "800ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_DELAY: %w", err)
	}

	config.Auth = AuthConfig{
		Username:   getEnv("DEMO_USERNAME", "admin"),
		Password:   getEnv("DEMO_PASSWORD", "admin123"),
		LoginDelay: loginDelay,
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	config.Storage = StorageConfig{
		Type:     strings.ToLower(getEnv("STORAGE_TYPE", StorageFile)),
		BasePath: getEnv("STORAGE_BASE_PATH", "./data"),
	}

	// Database configuration, only used by the postgres storage type
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "employee_dashboard"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.Elasticsearch = ElasticsearchConfig{
		URL:   getEnv("ES_URL", "http://localhost:9200"),
		Index: getEnv("ES_INDEX", "employee_dashboard"),
	}

	config.ReferenceDataFile = getEnv("REFERENCE_DATA_FILE", "")

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("JWT_ACCESS_EXPIRATION_TIME is invalid: %w", err)
	}
	if c.Auth.Username == "" || c.Auth.Password == "" {
		return fmt.Errorf("DEMO_USERNAME and DEMO_PASSWORD are required")
	}
	if len(c.Auth.Password) > maxPasswordBytes {
		return fmt.Errorf("DEMO_PASSWORD must not exceed %d bytes", maxPasswordBytes)
	}
	if err := new(slog.Level).UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}
	if c.Auth.LoginDelay < 0 {
		return fmt.Errorf("LOGIN_DELAY must not be negative")
	}

	switch c.Storage.Type {
	case StorageMemory:
	case StorageFile:
		if c.Storage.BasePath == "" {
			return fmt.Errorf("STORAGE_BASE_PATH is required for file storage")
		}
	case StoragePostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for postgres storage")
		}
	case StorageElasticsearch:
		if c.Elasticsearch.URL == "" || c.Elasticsearch.Index == "" {
			return fmt.Errorf("ES_URL and ES_INDEX are required for elasticsearch storage")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_TYPE: %s", c.Storage.Type)
	}
	return nil
}

// SlogLevel parses LogLevel, falling back to info.
func (a AppConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Address returns the listen address for the HTTP server
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
