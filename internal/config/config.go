// Package config loads settings from .env, an optional YAML file and the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

const (
	ProviderREST      = "rest"
	ProviderLangChain = "langchain"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Supabase SupabaseConfig `yaml:"supabase"`
	AI       AIConfig       `yaml:"ai"`
	Gmail    GmailConfig    `yaml:"gmail"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	Mode           string   `yaml:"mode"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type DatabaseConfig struct {
	DSN         string `yaml:"dsn"`
	AutoMigrate bool   `yaml:"auto_migrate"`
	MaxConns    int    `yaml:"max_conns"`
}

type SupabaseConfig struct {
	URL          string `yaml:"url"`
	ServiceKey   string `yaml:"service_key"`
	JWTSecret    string `yaml:"jwt_secret"`
	ResumeBucket string `yaml:"resume_bucket"`
}

type AIConfig struct {
	// Provider is "rest" (direct generateContent calls) or "langchain".
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	Endpoint string `yaml:"endpoint"`
}

type GmailConfig struct {
	Enabled         bool          `yaml:"enabled"`
	CredentialsFile string        `yaml:"credentials_file"`
	TokenFile       string        `yaml:"token_file"`
	UserID          string        `yaml:"user_id"`
	PollInterval    time.Duration `yaml:"poll_interval"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Load reads .env (if present), then the YAML file at path (if present), then
// applies environment overrides and defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{Database: DatabaseConfig{AutoMigrate: true}}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}
	case !os.IsNotExist(err):
		return nil, errors.Wrapf(err, "read %s", path)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.Server.Addr, "SERVER_ADDR")
	setString(&c.Server.Mode, "GIN_MODE")
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = strings.Split(v, ",")
	}

	setString(&c.Database.DSN, "DATABASE_URL")
	setBool(&c.Database.AutoMigrate, "DB_AUTO_MIGRATE")
	setInt(&c.Database.MaxConns, "DB_MAX_CONNS")

	setString(&c.Supabase.URL, "SUPABASE_URL")
	setString(&c.Supabase.ServiceKey, "SUPABASE_SERVICE_ROLE_KEY")
	setString(&c.Supabase.JWTSecret, "SUPABASE_JWT_SECRET")
	setString(&c.Supabase.ResumeBucket, "SUPABASE_RESUME_BUCKET")

	setString(&c.AI.Provider, "AI_PROVIDER")
	setString(&c.AI.APIKey, "GEMINI_API_KEY")
	setString(&c.AI.Model, "GEMINI_MODEL")
	setString(&c.AI.Endpoint, "GEMINI_ENDPOINT")

	setBool(&c.Gmail.Enabled, "GMAIL_ENABLED")
	setString(&c.Gmail.CredentialsFile, "GMAIL_CREDENTIALS_FILE")
	setString(&c.Gmail.TokenFile, "GMAIL_TOKEN_FILE")
	setString(&c.Gmail.UserID, "GMAIL_USER_ID")
	if v := os.Getenv("GMAIL_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Gmail.PollInterval = d
		}
	}

	setString(&c.Log.Level, "LOG_LEVEL")
	setBool(&c.Log.Development, "LOG_DEVELOPMENT")
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "release"
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = 10
	}
	if c.Supabase.ResumeBucket == "" {
		c.Supabase.ResumeBucket = "resumes"
	}
	if c.AI.Provider == "" {
		c.AI.Provider = ProviderREST
	}
	if c.AI.Model == "" {
		c.AI.Model = "gemini-2.0-flash"
	}
	if c.AI.Endpoint == "" {
		c.AI.Endpoint = "https://generativelanguage.googleapis.com/v1beta"
	}
	if c.Gmail.CredentialsFile == "" {
		c.Gmail.CredentialsFile = "credential.json"
	}
	if c.Gmail.TokenFile == "" {
		c.Gmail.TokenFile = "token.json"
	}
	if c.Gmail.PollInterval == 0 {
		c.Gmail.PollInterval = 15 * time.Minute
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate reports the first missing required setting.
func (c *Config) Validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return errors.Errorf("GIN_MODE must be debug, release or test, got %q", c.Server.Mode)
	}
	if c.Database.DSN == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.Supabase.URL == "" || c.Supabase.ServiceKey == "" {
		return errors.New("SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY are required")
	}
	if c.AI.APIKey == "" {
		return errors.New("GEMINI_API_KEY is required")
	}
	switch c.AI.Provider {
	case ProviderREST, ProviderLangChain:
	default:
		return errors.Errorf("unknown AI provider %q", c.AI.Provider)
	}
	if c.Gmail.Enabled && c.Gmail.UserID == "" {
		return errors.New("GMAIL_USER_ID is required when the Gmail watcher is enabled")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
