package config

import (
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "admin", cfg.Auth.Username)
	assert.Equal(t, "admin123", cfg.Auth.Password)
	assert.Equal(t, 800*time.Millisecond, cfg.Auth.LoginDelay)
	assert.Equal(t, StorageFile, cfg.Storage.Type)
	assert.Equal(t, "./data", cfg.Storage.BasePath)
	assert.Equal(t, ":8080", cfg.Address())
}

func TestLoad_MissingSecret(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET_KEY is required")
}

func TestLoad_InvalidLoginDelay(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("LOGIN_DELAY", "soon")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid LOGIN_DELAY")
}

func TestValidate_Storage(t *testing.T) {
	base := func() *Config {
		return &Config{
			App:     AppConfig{LogLevel: "info"},
			Auth:    AuthConfig{Username: "admin", Password: "admin123"},
			JWT:     JWTConfig{Secret: "s", AccessExpiration: "1h"},
			Storage: StorageConfig{Type: StorageMemory},
		}
	}

	cfg := base()
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Storage.Type = StoragePostgres
	assert.ErrorContains(t, cfg.Validate(), "DB_PASSWORD")

	cfg = base()
	cfg.Storage.Type = "redis"
	assert.ErrorContains(t, cfg.Validate(), "unsupported STORAGE_TYPE")

	cfg = base()
	cfg.Auth.Password = strings.Repeat("p", 72)
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Auth.Password = strings.Repeat("p", 73)
	assert.ErrorContains(t, cfg.Validate(), "DEMO_PASSWORD must not exceed 72 bytes")

	cfg = base()
	cfg.App.LogLevel = "loud"
	assert.ErrorContains(t, cfg.Validate(), "LOG_LEVEL")

	cfg = base()
	cfg.JWT.AccessExpiration = "forever"
	assert.ErrorContains(t, cfg.Validate(), "JWT_ACCESS_EXPIRATION_TIME")
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5433, User: "u", Password: "p", Name: "n", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://u:p@db:5433/n?sslmode=disable", cfg.DatabaseURL())
}

func TestAppConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, AppConfig{LogLevel: "debug"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, AppConfig{LogLevel: "WARN"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, AppConfig{LogLevel: "nonsense"}.SlogLevel())
}

// chdir changes the working directory for the duration of the test, like
// testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
