package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	BotToken string `envconfig:"BOT_TOKEN" required:"true"`

	// Cadence of the onboarding instruction drip
	InstructionInterval time.Duration `envconfig:"INSTRUCTION_INTERVAL" default:"2s"`
	// Delay used by the one-shot delayed message
	DelayedMessageDelay time.Duration `envconfig:"DELAYED_MESSAGE_DELAY" default:"2s"`

	DefaultLanguage string `envconfig:"DEFAULT_LANGUAGE" default:"en"`
	// Optional directory with <lang>.yaml bundles; embedded bundles are used when empty
	LocalesDir string `envconfig:"LOCALES_DIR"`

	Database DatabaseConfig `ignored:"true"`
}

// DatabaseConfig holds database connection settings, read with the DB_ prefix
type DatabaseConfig struct {
	Host     string `default:"localhost"`
	Port     string `default:"5432"`
	Name     string `default:"penpal"`
	User     string `default:"penpal"`
	Password string `required:"true"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}
	if err := envconfig.Process("db", &cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to process database env: %w", err)
	}

	if cfg.InstructionInterval <= 0 {
		return nil, fmt.Errorf("INSTRUCTION_INTERVAL must be positive, got %s", cfg.InstructionInterval)
	}

	return &cfg, nil
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
