package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/postboard/internal/config"
)

const validSecret = "0123456789abcdef0123456789abcdef"

// clearEnv blanks every variable config reads so the host environment does
// not leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_PATH", "JWT_SECRET", "BCRYPT_COST"} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", validSecret)

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postboard.db", cfg.DatabasePath)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.False(t, cfg.UsePostgres())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", validSecret)
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/postboard")
	t.Setenv("BCRYPT_COST", "4")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.True(t, cfg.UsePostgres())
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{}},
		{"short secret", map[string]string{"JWT_SECRET": "too-short"}},
		{"cost not a number", map[string]string{"JWT_SECRET": validSecret, "BCRYPT_COST": "high"}},
		{"cost too low", map[string]string{"JWT_SECRET": validSecret, "BCRYPT_COST": "3"}},
		{"cost too high", map[string]string{"JWT_SECRET": validSecret, "BCRYPT_COST": "15"}},
		{"non-postgres url", map[string]string{"JWT_SECRET": validSecret, "DATABASE_URL": "mysql://localhost"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoad_DotenvFile(t *testing.T) {
	clearEnv(t)
	// godotenv only fills variables that are unset, not empty.
	for _, key := range []string{"JWT_SECRET", "DATABASE_PATH"} {
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("PORT", "7000")

	path := filepath.Join(t.TempDir(), "test.env")
	content := "JWT_SECRET=" + validSecret + "\nDATABASE_PATH=/tmp/from-dotenv.db\nPORT=1111\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, validSecret, cfg.JWTSecret)
	assert.Equal(t, "/tmp/from-dotenv.db", cfg.DatabasePath)
	assert.Equal(t, "7000", cfg.Port, "existing variables win over the dotenv file")
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", validSecret)

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
}
