package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Backend   BackendConfig   `mapstructure:"backend"`
	Processor ProcessorConfig `mapstructure:"processor"`
	Console   ConsoleConfig   `mapstructure:"console"`
	Log       LogConfig       `mapstructure:"log"`
}

// BackendConfig points at the AI credit endpoint.
type BackendConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ProcessorConfig configures the card payment processor used to confirm
// credit purchases. The key is the publishable (client-side) key.
type ProcessorConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	PublishableKey string        `mapstructure:"publishable_key"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// ConsoleConfig holds console behavior knobs.
type ConsoleConfig struct {
	DefaultModel string `mapstructure:"default_model"` // model used when `ask` omits one
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: AWC_ (Agent Wallet Console).
// Nested keys use underscore: AWC_BACKEND_URL, AWC_CONSOLE_DEFAULT_MODEL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("backend.url", "http://localhost:8000/ai_credit_endpoint")
	v.SetDefault("backend.timeout", "30s")
	v.SetDefault("processor.base_url", "https://api.stripe.com")
	v.SetDefault("processor.publishable_key", "")
	v.SetDefault("processor.timeout", "30s")
	v.SetDefault("console.default_model", "anthropic")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: AWC_BACKEND_URL -> backend.url
	v.SetEnvPrefix("AWC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
