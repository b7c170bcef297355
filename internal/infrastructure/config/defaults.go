package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "henhouse.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "henhouse"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "henhouse"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}

	if cfg.Engine.TickInterval == 0 {
		cfg.Engine.TickInterval = 100 * time.Millisecond
	}
	if cfg.Engine.CustomerInterval == 0 {
		cfg.Engine.CustomerInterval = 10 * time.Second
	}
	if cfg.Engine.ExpiryInterval == 0 {
		cfg.Engine.ExpiryInterval = 10 * time.Second
	}
	if cfg.Engine.AutosaveInterval == 0 {
		cfg.Engine.AutosaveInterval = 5 * time.Second
	}

	if cfg.Daemon.PIDFile == "" {
		cfg.Daemon.PIDFile = "/tmp/henhouse-daemon.pid"
	}
	if cfg.Daemon.SaveName == "" {
		cfg.Daemon.SaveName = "default"
	}
	if cfg.Daemon.MetricsAddr == "" {
		cfg.Daemon.MetricsAddr = "localhost:9190"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}
