package config

import (
	"fmt"
	"runtime"
	"time"
)

// Config is the top-level configuration structure for vboxmanager.
type Config struct {
	// Inventory is the YAML file describing the machines, cloud profiles and
	// host networks of the in-process VM service.
	Inventory string `yaml:"inventory,omitempty"`
	// ExtraDataDir holds the persisted GUI settings.
	ExtraDataDir string   `yaml:"extraDataDir,omitempty"`
	Platform     Platform `yaml:"platform,omitempty"`
	// UpdateCheckEnabled is a pointer so a layer can turn checks off.
	UpdateCheckEnabled   *bool         `yaml:"updateCheckEnabled,omitempty"`
	CloudRefreshInterval time.Duration `yaml:"cloudRefreshInterval,omitempty"`
	LogLevel             string        `yaml:"logLevel,omitempty"`
}

// Platform selects platform specific menu behavior.
type Platform string

const (
	PlatformAuto    Platform = "auto"
	PlatformMac     Platform = "mac"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
)

// Validate checks the values a layer may set.
func (c Config) Validate() error {
	switch c.Platform {
	case "", PlatformAuto, PlatformMac, PlatformLinux, PlatformWindows:
	default:
		return fmt.Errorf("unknown platform %q", c.Platform)
	}
	if c.CloudRefreshInterval < 0 {
		return fmt.Errorf("cloudRefreshInterval must not be negative, got %s", c.CloudRefreshInterval)
	}
	return nil
}

// ResolvedPlatform replaces auto with the platform the binary runs on.
func (c Config) ResolvedPlatform() Platform {
	if c.Platform != "" && c.Platform != PlatformAuto {
		return c.Platform
	}
	switch runtime.GOOS {
	case "darwin":
		return PlatformMac
	case "windows":
		return PlatformWindows
	default:
		return PlatformLinux
	}
}

// IsMac reports whether mac menu conventions apply.
func (c Config) IsMac() bool { return c.ResolvedPlatform() == PlatformMac }

// UpdateChecks reports whether the check-for-updates action is offered.
func (c Config) UpdateChecks() bool {
	return c.UpdateCheckEnabled == nil || *c.UpdateCheckEnabled
}
