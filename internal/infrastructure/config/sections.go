package config

import "time"

// DatabaseConfig holds save-database connection configuration
type DatabaseConfig struct {
	// Connection type: "sqlite" or "postgres"
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`

	// Full connection URL for postgres (takes precedence over fields below)
	URL string `mapstructure:"url"`

	// PostgreSQL connection fields (used if URL is empty)
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode" validate:"omitempty,oneof=disable require verify-ca verify-full"`

	// SQLite database file path (":memory:" for ephemeral games)
	Path string `mapstructure:"path"`
}

// EngineConfig holds the game loop's timer cadence.
type EngineConfig struct {
	TickInterval     time.Duration `mapstructure:"tick_interval" validate:"min=10ms"`
	CustomerInterval time.Duration `mapstructure:"customer_interval" validate:"min=1s"`
	ExpiryInterval   time.Duration `mapstructure:"expiry_interval" validate:"min=1s"`
	AutosaveInterval time.Duration `mapstructure:"autosave_interval" validate:"min=1s"`
}

// DaemonConfig holds daemon process configuration
type DaemonConfig struct {
	// PID file path for single-instance enforcement
	PIDFile string `mapstructure:"pid_file" validate:"required"`

	// Save slot the daemon plays
	SaveName string `mapstructure:"save_name" validate:"required"`

	// Prometheus metrics listen address; empty disables metrics
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// Output destination: stdout, stderr
	Output string `mapstructure:"output" validate:"required,oneof=stdout stderr"`
}
