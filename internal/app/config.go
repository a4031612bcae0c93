package app

import (
	"vboxmanager/internal/config"
	"vboxmanager/pkg/logging"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// URLs are files handed over on the command line. They are opened once
	// the window is on screen.
	URLs []string

	Version string

	// Settings is the layered configuration. NewApplication loads it when
	// the command did not.
	Settings *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool) *Config {
	return &Config{
		NoTUI: noTUI,
		Debug: debug,
	}
}

// LogLevel resolves the level to log at. The debug flag wins over the
// configured level.
func (c *Config) LogLevel() logging.LogLevel {
	if c.Debug {
		return logging.LevelDebug
	}
	if c.Settings != nil {
		return logging.ParseLevel(c.Settings.LogLevel)
	}
	return logging.LevelInfo
}
