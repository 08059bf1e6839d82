package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Config holds all application configuration
type Config struct {
	Env          string
	LogLevel     string
	HTTP         HTTPConfig
	Database     DatabaseConfig
	Auth         AuthConfig
	Bot          BotConfig
	Storage      StorageConfig
	Whisper      WhisperConfig
	Ollama       OllamaConfig
	LanguageTool LanguageToolConfig
	FFmpegPath   string
}

// HTTPConfig holds API server settings
type HTTPConfig struct {
	Address         string
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host           string
	Port           string
	Name           string
	User           string
	Password       string
	MigrationsPath string
}

// AuthConfig holds bearer token settings
type AuthConfig struct {
	SecretKey      string
	Algorithm      string
	AccessTokenTTL time.Duration
}

// BotConfig holds Telegram bot settings
type BotConfig struct {
	Token       string
	PollTimeout time.Duration
}

// StorageConfig holds temporary audio storage settings
type StorageConfig struct {
	TempAudioDir  string
	MaxAge        time.Duration
	SweepInterval time.Duration
}

// WhisperConfig holds speech-to-text collaborator settings
type WhisperConfig struct {
	URL     string
	Model   string
	Timeout time.Duration
}

// OllamaConfig holds translation collaborator settings
type OllamaConfig struct {
	URL     string
	Model   string
	Timeout time.Duration
}

// LanguageToolConfig holds grammar collaborator settings
type LanguageToolConfig struct {
	URL     string
	Timeout time.Duration
}

var defaults = map[string]any{
	"app_env":                     EnvLocal,
	"log_level":                   "info",
	"run_address":                 ":8000",
	"shutdown_timeout":            "10s",
	"db_host":                     "localhost",
	"db_port":                     "5432",
	"db_name":                     "languager",
	"db_user":                     "languager",
	"migrations_path":             "file://migrations",
	"algorithm":                   "HS256",
	"access_token_expire_minutes": 30,
	"bot_poll_timeout":            "10s",
	"temp_audio_dir":              "temp_audio",
	"temp_audio_max_age":          "1h",
	"temp_sweep_interval":         "1h",
	"whisper_url":                 "http://localhost:9000",
	"whisper_model":               "whisper-1",
	"whisper_timeout":             "0s",
	"ollama_url":                  "http://localhost:11434",
	"ollama_model":                "qwen2.5:1.5b",
	"ollama_timeout":              "30s",
	"languagetool_url":            "http://localhost:8010",
	"languagetool_timeout":        "30s",
	"ffmpeg_path":                 "ffmpeg",
}

// Load reads configuration from the environment, optionally seeded by a .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	cfg := &Config{
		Env:      v.GetString("app_env"),
		LogLevel: v.GetString("log_level"),
		HTTP: HTTPConfig{
			Address:         v.GetString("run_address"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Database: DatabaseConfig{
			Host:           v.GetString("db_host"),
			Port:           v.GetString("db_port"),
			Name:           v.GetString("db_name"),
			User:           v.GetString("db_user"),
			Password:       v.GetString("db_password"),
			MigrationsPath: v.GetString("migrations_path"),
		},
		Auth: AuthConfig{
			SecretKey:      v.GetString("secret_key"),
			Algorithm:      strings.ToUpper(v.GetString("algorithm")),
			AccessTokenTTL: time.Duration(v.GetInt("access_token_expire_minutes")) * time.Minute,
		},
		Bot: BotConfig{
			Token:       v.GetString("bot_token"),
			PollTimeout: v.GetDuration("bot_poll_timeout"),
		},
		Storage: StorageConfig{
			TempAudioDir:  v.GetString("temp_audio_dir"),
			MaxAge:        v.GetDuration("temp_audio_max_age"),
			SweepInterval: v.GetDuration("temp_sweep_interval"),
		},
		Whisper: WhisperConfig{
			URL:     v.GetString("whisper_url"),
			Model:   v.GetString("whisper_model"),
			Timeout: v.GetDuration("whisper_timeout"),
		},
		Ollama: OllamaConfig{
			URL:     v.GetString("ollama_url"),
			Model:   v.GetString("ollama_model"),
			Timeout: v.GetDuration("ollama_timeout"),
		},
		LanguageTool: LanguageToolConfig{
			URL:     v.GetString("languagetool_url"),
			Timeout: v.GetDuration("languagetool_timeout"),
		},
		FFmpegPath: v.GetString("ffmpeg_path"),
	}

	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// ValidateServer checks settings required by the HTTP API
func (c *Config) ValidateServer() error {
	if c.Auth.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY is required")
	}
	switch c.Auth.Algorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("ALGORITHM %q is not supported", c.Auth.Algorithm)
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}
	return nil
}

// ValidateBot checks settings required by the Telegram bot
func (c *Config) ValidateBot() error {
	if c.Bot.Token == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}
