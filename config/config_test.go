package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ascent.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9090"
  allow_origins: ["https://digitalascent.example"]
database:
  driver: memory
storage:
  driver: memory
request_timeout: 5s
auth:
  jwt_secret: from-file
`), 0o600))

	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("REQUEST_TIMEOUT", "750ms")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://digitalascent.example"}, cfg.Server.AllowOrigins)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, 750*time.Millisecond, cfg.RequestTimeout)
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "ftp")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage driver")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidateAuth(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.ValidateAuth())

	cfg.Auth.JWTSecret = "secret"
	assert.Error(t, cfg.ValidateAuth())

	cfg.Auth.AdminKey = "letmein"
	assert.NoError(t, cfg.ValidateAuth())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ASCENT_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("ASCENT_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("ASCENT_TEST_UNSET_VALUE", "fallback"))
}
