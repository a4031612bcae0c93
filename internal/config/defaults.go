package config

import (
	"path/filepath"
	"time"
)

// DefaultCloudRefreshInterval is how often a selected cloud VM is polled.
const DefaultCloudRefreshInterval = 10 * time.Second

// GetDefaultConfig returns the built-in configuration. Without an inventory
// the service starts with no machines.
func GetDefaultConfig() Config {
	enabled := true
	cfg := Config{
		Platform:             PlatformAuto,
		UpdateCheckEnabled:   &enabled,
		CloudRefreshInterval: DefaultCloudRefreshInterval,
		LogLevel:             "info",
	}
	if dir, err := GetUserConfigDir(); err == nil {
		cfg.ExtraDataDir = dir
		cfg.Inventory = filepath.Join(dir, "inventory.yaml")
	}
	return cfg
}
