package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_MissingDBPassword(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestLoad_WithDefaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "test_db_password")
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "ALGORITHM",
		"ACCESS_TOKEN_EXPIRE_MINUTES", "TEMP_AUDIO_DIR", "RUN_ADDRESS", "WHISPER_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "languager", cfg.Database.Name)
	assert.Equal(t, "languager", cfg.Database.User)
	assert.Equal(t, "HS256", cfg.Auth.Algorithm)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "temp_audio", cfg.Storage.TempAudioDir)
	assert.Equal(t, ":8000", cfg.HTTP.Address)
	assert.Equal(t, time.Duration(0), cfg.Whisper.Timeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("ALGORITHM", "hs512")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "90")
	t.Setenv("OLLAMA_TIMEOUT", "5s")
	t.Setenv("BOT_TOKEN", "bot-token")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "HS512", cfg.Auth.Algorithm)
	assert.Equal(t, 90*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 5*time.Second, cfg.Ollama.Timeout)
	assert.Equal(t, "bot-token", cfg.Bot.Token)
}

func TestConfig_ValidateServer(t *testing.T) {
	tests := []struct {
		name          string
		auth          AuthConfig
		expectedError string
	}{
		{
			name:  "valid",
			auth:  AuthConfig{SecretKey: "k", Algorithm: "HS256", AccessTokenTTL: time.Minute},
		},
		{
			name:          "missing secret",
			auth:          AuthConfig{Algorithm: "HS256", AccessTokenTTL: time.Minute},
			expectedError: "SECRET_KEY",
		},
		{
			name:          "unsupported algorithm",
			auth:          AuthConfig{SecretKey: "k", Algorithm: "RS256", AccessTokenTTL: time.Minute},
			expectedError: "ALGORITHM",
		},
		{
			name:          "non-positive ttl",
			auth:          AuthConfig{SecretKey: "k", Algorithm: "HS256"},
			expectedError: "ACCESS_TOKEN_EXPIRE_MINUTES",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Auth: tt.auth}
			err := cfg.ValidateServer()
			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateBot(t *testing.T) {
	assert.Error(t, (&Config{}).ValidateBot())
	assert.NoError(t, (&Config{Bot: BotConfig{Token: "t"}}).ValidateBot())
}
