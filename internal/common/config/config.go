package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Hasura     HasuraConfig     `mapstructure:"hasura"`
	Identity   IdentityConfig   `mapstructure:"identity"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Session    SessionConfig    `mapstructure:"session"`
	Moderation ModerationConfig `mapstructure:"moderation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ReadTimeout     int `mapstructure:"read_timeout"`     // seconds
	WriteTimeout    int `mapstructure:"write_timeout"`    // seconds
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // seconds
}

// HasuraConfig points at the external GraphQL data API.
type HasuraConfig struct {
	Endpoint       string `mapstructure:"endpoint"`
	AdminSecret    string `mapstructure:"admin_secret"`
	RequestTimeout int    `mapstructure:"request_timeout"` // seconds
}

// IdentityConfig points at the external identity provider.
type IdentityConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	RequestTimeout int    `mapstructure:"request_timeout"` // seconds
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type SessionConfig struct {
	TTL int `mapstructure:"ttl"` // seconds
}

// ModerationConfig controls the review auto-hide rule. Reviews rated strictly
// below MinRating are hidden when AutoHide is on.
type ModerationConfig struct {
	AutoHide  bool `mapstructure:"auto_hide"`
	MinRating int  `mapstructure:"min_rating"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func validateConfig(cfg *Config) error {
	if cfg.Hasura.Endpoint == "" {
		return fmt.Errorf("hasura.endpoint is required")
	}
	if cfg.Identity.BaseURL == "" {
		return fmt.Errorf("identity.base_url is required")
	}
	if cfg.Moderation.MinRating < 1 || cfg.Moderation.MinRating > 5 {
		return fmt.Errorf("moderation.min_rating must be within 1..5, got %d", cfg.Moderation.MinRating)
	}
	return nil
}
