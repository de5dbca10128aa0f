package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mwadley/swapshop/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "swapshop.db", cfg.Database.Path)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
	assert.Equal(t, "uploads", cfg.Uploads.Dir)
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  host: 127.0.0.1
  port: 9000
database:
  path: ":memory:"
auth:
  jwt_secret: ` + testSecret + `
  bcrypt_cost: 12
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv("SERVER_PORT", "9001")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9001", cfg.Addr(), "env should override file")
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}

func TestLoad_MissingSecret(t *testing.T) {
	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "tooshort")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 characters")
}

func TestLoad_BcryptCostOutOfRange(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("BCRYPT_COST", "20")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bcrypt_cost")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
