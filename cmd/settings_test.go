package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vboxmanager/internal/config"
)

func TestApplyOverridesKeepsUnsetValues(t *testing.T) {
	base := config.GetDefaultConfig()
	base.Inventory = "/srv/inventory.yaml"

	got, err := applyOverrides(base, viper.New())
	require.NoError(t, err)
	assert.Equal(t, base, got)
}

func TestApplyOverridesFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
inventory: /tmp/machines.yaml
platform: mac
logLevel: debug
cloudRefreshInterval: 30s
updateCheckEnabled: false
`), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	got, err := applyOverrides(config.GetDefaultConfig(), v)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/machines.yaml", got.Inventory)
	assert.Equal(t, config.PlatformMac, got.Platform)
	assert.Equal(t, "debug", got.LogLevel)
	assert.Equal(t, 30*time.Second, got.CloudRefreshInterval)
	require.NotNil(t, got.UpdateCheckEnabled)
	assert.False(t, *got.UpdateCheckEnabled)
}

func TestApplyOverridesFromEnvironment(t *testing.T) {
	t.Setenv("VBOXMANAGER_PLATFORM", "windows")

	v := viper.New()
	v.SetEnvPrefix("VBOXMANAGER")
	v.AutomaticEnv()

	got, err := applyOverrides(config.GetDefaultConfig(), v)
	require.NoError(t, err)
	assert.Equal(t, config.PlatformWindows, got.Platform)
}

func TestApplyOverridesRejectsUnknownPlatform(t *testing.T) {
	v := viper.New()
	v.Set("platform", "amiga")

	_, err := applyOverrides(config.GetDefaultConfig(), v)
	assert.ErrorContains(t, err, "unknown platform")
}

func TestVersionCommandOutput(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()
	rootCmd.Version = "7.1.0"

	var buf bytes.Buffer
	cmd := newVersionCmd()
	cmd.SetOut(&buf)
	cmd.Run(cmd, nil)
	assert.Equal(t, "vboxmanager version 7.1.0\n", buf.String())
}
