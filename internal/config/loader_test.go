package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(tempFilePath, []byte(content), 0644))
	return tempFilePath
}

// mockPaths points the home and working directories into tempDir.
func mockPaths(t *testing.T, tempDir string) {
	t.Helper()
	originalOsUserHomeDir := osUserHomeDir
	originalOsGetwd := osGetwd
	t.Cleanup(func() {
		osUserHomeDir = originalOsUserHomeDir
		osGetwd = originalOsGetwd
	})
	osUserHomeDir = func() (string, error) { return filepath.Join(tempDir, "home"), nil }
	osGetwd = func() (string, error) { return filepath.Join(tempDir, "project"), nil }
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), loadedConfig)
	assert.Equal(t, filepath.Join(tempDir, "home", userConfigDir), loadedConfig.ExtraDataDir)
	assert.Equal(t, DefaultCloudRefreshInterval, loadedConfig.CloudRefreshInterval)
	assert.True(t, loadedConfig.UpdateChecks())
}

func TestLoadConfig_UserOverride(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "home", userConfigDir), `
inventory: ~/vms/lab.yaml
platform: mac
updateCheckEnabled: false
cloudRefreshInterval: 30s
`)

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tempDir, "home", "vms", "lab.yaml"), loadedConfig.Inventory)
	assert.Equal(t, PlatformMac, loadedConfig.Platform)
	assert.True(t, loadedConfig.IsMac())
	assert.False(t, loadedConfig.UpdateChecks())
	assert.Equal(t, 30*time.Second, loadedConfig.CloudRefreshInterval)
	assert.Equal(t, "info", loadedConfig.LogLevel, "unset fields keep the default")
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "home", userConfigDir), `
logLevel: debug
platform: windows
updateCheckEnabled: false
`)
	createTempConfigFile(t, filepath.Join(tempDir, "project", projectConfigDir), `
platform: linux
updateCheckEnabled: true
`)

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", loadedConfig.LogLevel)
	assert.Equal(t, PlatformLinux, loadedConfig.ResolvedPlatform())
	assert.True(t, loadedConfig.UpdateChecks())
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "project", projectConfigDir), "platform: [mac\n")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading project config")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "home", userConfigDir), "platform: amiga\n")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, `unknown platform "amiga"`)
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "home", userConfigDir), "")

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loadedConfig)
}

func TestResolvedPlatform(t *testing.T) {
	auto := Config{Platform: PlatformAuto}
	switch runtime.GOOS {
	case "darwin":
		assert.Equal(t, PlatformMac, auto.ResolvedPlatform())
	case "windows":
		assert.Equal(t, PlatformWindows, auto.ResolvedPlatform())
	default:
		assert.Equal(t, PlatformLinux, auto.ResolvedPlatform())
	}
	assert.Equal(t, PlatformWindows, Config{Platform: PlatformWindows}.ResolvedPlatform())
}

func TestMergeConfigs(t *testing.T) {
	off := false
	base := GetDefaultConfig()
	merged := mergeConfigs(base, Config{UpdateCheckEnabled: &off, LogLevel: "error"})

	assert.False(t, merged.UpdateChecks())
	assert.True(t, base.UpdateChecks(), "base must not be modified")
	assert.Equal(t, "error", merged.LogLevel)
	assert.Equal(t, base.Inventory, merged.Inventory)
}
