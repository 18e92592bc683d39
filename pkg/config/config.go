package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for dermasafe-engine.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (passwords, keys) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"PORT" env-default:"5000"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Account storage (PostgreSQL)
	Database DatabaseConfig `yaml:"database"`

	// Session token configuration
	Auth AuthConfig `yaml:"auth"`

	// Explanation model endpoint (OpenAI-compatible, e.g. local Ollama)
	AI AIConfig `yaml:"ai"`

	// Outbound email configuration
	Email EmailConfig `yaml:"email"`
}

// DatabaseConfig holds PostgreSQL database configuration.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"dermasafe"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"dermasafe_engine"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"25"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
	MigrationsPath string `yaml:"migrations_path" env:"PGMIGRATIONS_PATH" env-default:"migrations"`
}

// AuthConfig holds session token configuration.
type AuthConfig struct {
	// TokenSecret signs login session tokens (HS256). Server refuses to
	// issue tokens when unset.
	TokenSecret string `yaml:"-" env:"AUTH_TOKEN_SECRET"` // Secret - not in YAML

	// TokenTTLMinutes is how long issued session tokens stay valid.
	TokenTTLMinutes int `yaml:"token_ttl_minutes" env:"AUTH_TOKEN_TTL_MINUTES" env-default:"1440"`
}

// TokenTTL returns the session token lifetime as a duration.
func (c *AuthConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// AIConfig holds the explanation model endpoint settings.
type AIConfig struct {
	BaseURL        string `yaml:"base_url" env:"AI_BASE_URL" env-default:"http://localhost:11434/v1"`
	Model          string `yaml:"model" env:"AI_MODEL" env-default:"llama3"`
	APIKey         string `yaml:"-" env:"AI_API_KEY"` // Secret - not in YAML, optional for local endpoints
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"AI_TIMEOUT_SECONDS" env-default:"20"`
}

// IsAvailable returns true if an explanation model endpoint is configured.
func (c *AIConfig) IsAvailable() bool {
	return c.BaseURL != "" && c.Model != ""
}

// Timeout returns the per-request model deadline as a duration.
func (c *AIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// EmailConfig holds outbound email settings. With no API key configured the
// mailer logs simulated sends instead of calling SendGrid.
type EmailConfig struct {
	SendGridAPIKey string `yaml:"-" env:"SENDGRID_API_KEY"` // Secret - not in YAML
	FromAddress    string `yaml:"from_address" env:"EMAIL_FROM_ADDRESS" env-default:"no-reply@dermasafe.app"`
	FromName       string `yaml:"from_name" env:"EMAIL_FROM_NAME" env-default:"DermaSafe"`
}

// IsConfigured returns true if real email sending is enabled.
func (c *EmailConfig) IsConfigured() bool {
	return c.SendGridAPIKey != ""
}

// Load reads configuration from config.yaml with environment variable
// overrides. The version parameter is injected at build time and set on the
// returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
