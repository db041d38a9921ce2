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
	t.Chdir(t.TempDir())
	for _, key := range []string{"APP_ENV", "JWT_SECRET", "USER_STORE", "AI_PROVIDER", "AI_MODEL", "AI_MAX_OUTPUT_TOKENS", "AI_TEMPERATURE", "AI_REQUEST_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, StoreMemory, cfg.UserStore)
	assert.Equal(t, ProviderOpenAI, cfg.AI.Provider)
	assert.Equal(t, "gpt-4o", cfg.AI.Model)
	assert.Equal(t, 2000, cfg.AI.MaxOutputTokens)
	assert.InDelta(t, 0.3, cfg.AI.Temperature, 1e-9)
	assert.Equal(t, 60*time.Second, cfg.AI.RequestTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("AI_MODEL", "")
	t.Setenv("AI_BASE_URL", "")
	t.Setenv("AI_TEMPERATURE", "0.1")
	t.Setenv("AI_REQUEST_TIMEOUT", "5s")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	assert.Empty(t, cfg.AI.BaseURL)
	assert.InDelta(t, 0.1, cfg.AI.Temperature, 1e-9)
	assert.Equal(t, 5*time.Second, cfg.AI.RequestTimeout)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("SERVER_PORT", "")
	require.NoError(t, os.Unsetenv("SERVER_PORT"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=9999\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.ServerPort)
}

func TestLoad_UnreadableDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".env"), 0o700))

	_, err := Load()
	assert.ErrorContains(t, err, "load .env")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Environment: "development",
			JWTSecret:   DefaultJWTSecret,
			UserStore:   StoreMemory,
			AI:          AIConfig{Provider: ProviderOpenAI, MaxOutputTokens: 2000},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults in development", mutate: func(*Config) {}},
		{name: "default secret in production", mutate: func(c *Config) { c.Environment = EnvProduction }, wantErr: true},
		{name: "custom secret in production", mutate: func(c *Config) { c.Environment = EnvProduction; c.JWTSecret = "x" }},
		{name: "unknown store", mutate: func(c *Config) { c.UserStore = "postgres" }, wantErr: true},
		{name: "unknown provider", mutate: func(c *Config) { c.AI.Provider = "llama" }, wantErr: true},
		{name: "zero token bound", mutate: func(c *Config) { c.AI.MaxOutputTokens = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestLoadUsers(t *testing.T) {
	t.Run("missing file falls back to demo roster", func(t *testing.T) {
		users, err := LoadUsers(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultUsers(), users)
	})

	t.Run("reads yaml roster", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "users.yaml")
		body := "users:\n  - id: \"7\"\n    email: viewer@devboost.ai\n    name: Viewer\n    password: viewer123\n    role: viewer\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		users, err := LoadUsers(path)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, SeedUser{ID: "7", Email: "viewer@devboost.ai", Name: "Viewer", Password: "viewer123", Role: "viewer"}, users[0])
	})

	t.Run("reads status and join date", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "users.yaml")
		body := "users:\n  - email: david@devboost.ai\n    password: david123\n    status: invited\n    joined_at: 2024-03-15\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		users, err := LoadUsers(path)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "invited", users[0].Status)
		assert.True(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC).Equal(users[0].JoinedAt))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "users.yaml")
		require.NoError(t, os.WriteFile(path, []byte("users: [\n"), 0o600))

		_, err := LoadUsers(path)
		assert.Error(t, err)
	})
}
