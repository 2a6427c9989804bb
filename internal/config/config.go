package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server         ServerConfig         `mapstructure:"server" validate:"required"`
	Database       DatabaseConfig       `mapstructure:"database" validate:"required"`
	Auth           AuthConfig           `mapstructure:"auth" validate:"required"`
	Classification ClassificationConfig `mapstructure:"classification" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// RateLimitRPS and RateLimitBurst shape the per-user token bucket on
	// sentence checks.
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps" validate:"gt=0"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL               string `mapstructure:"url" validate:"required,url"`
	MaxConnectRetries uint64 `mapstructure:"max_connect_retries" validate:"lte=20"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0,lt=44640"`
	BCryptCost           int    `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
}

// ClassificationConfig tunes the rule evaluation engine.
type ClassificationConfig struct {
	// Workers bounds the goroutines evaluating the rules of one sentence.
	Workers int `mapstructure:"workers" validate:"gte=1,lte=256"`
}
