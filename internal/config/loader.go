package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"vboxmanager/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/vboxmanager"
	projectConfigDir = ".vboxmanager"
	configFileName   = "config.yaml"
)

// LoadConfig loads the configuration by layering default, user, and project settings.
func LoadConfig() (Config, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else if config, err = overlayFile(config, userConfigPath); err != nil {
		return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else if config, err = overlayFile(config, projectConfigPath); err != nil {
		return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	config.Inventory = expandHome(config.Inventory)
	config.ExtraDataDir = expandHome(config.ExtraDataDir)
	return config, nil
}

// overlayFile merges the file at path over config. A missing file leaves
// config unchanged.
func overlayFile(config Config, path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return config, err
	}
	logging.Debug("Config", "Loaded configuration layer %s", path)
	return mergeConfigs(config, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Only fields set
// in overlay win.
func mergeConfigs(base, overlay Config) Config {
	merged := base
	if overlay.Inventory != "" {
		merged.Inventory = overlay.Inventory
	}
	if overlay.ExtraDataDir != "" {
		merged.ExtraDataDir = overlay.ExtraDataDir
	}
	if overlay.Platform != "" {
		merged.Platform = overlay.Platform
	}
	if overlay.UpdateCheckEnabled != nil {
		v := *overlay.UpdateCheckEnabled
		merged.UpdateCheckEnabled = &v
	}
	if overlay.CloudRefreshInterval != 0 {
		merged.CloudRefreshInterval = overlay.CloudRefreshInterval
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	return merged
}

// expandHome resolves a leading "~/".
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := osUserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
