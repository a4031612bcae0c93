package app

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vboxmanager/internal/actionpool"
	"vboxmanager/internal/config"
)

const testInventory = `
machines:
  - id: 6c1b0000-0000-4000-8000-000000000001
    name: Ubuntu
    osType: Ubuntu_64
    groups: ["/Work"]
  - id: 6c1b0000-0000-4000-8000-000000000002
    name: Windows
    osType: Windows11_64
    state: Running
    session:
      name: GUI/Qt
      pid: 4242
`

func testConfig(t *testing.T, fsys afero.Fs) *Config {
	t.Helper()
	settings := config.GetDefaultConfig()
	settings.Inventory = "/home/user/inventory.yaml"
	settings.ExtraDataDir = "/home/user/.config/vboxmanager"
	require.NoError(t, afero.WriteFile(fsys, settings.Inventory, []byte(testInventory), 0o644))

	cfg := NewConfig(true, false)
	cfg.Settings = &settings
	return cfg
}

func TestInitializeServices(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cfg := testConfig(t, fsys)

	s, err := InitializeServices(context.Background(), cfg, fsys)
	require.NoError(t, err)

	machines, err := s.VM.Machines(context.Background())
	require.NoError(t, err)
	assert.Len(t, machines, 2)
	assert.Equal(t, "/home/user/.config/vboxmanager/extradata.yaml", s.Store.Path())
	assert.Equal(t, actionpool.FlavorManager, s.Pool.Flavor())
	assert.NotNil(t, s.Tools.Current())
}

func TestInitializeServicesWithoutInventory(t *testing.T) {
	fsys := afero.NewMemMapFs()
	settings := config.GetDefaultConfig()
	settings.Inventory = "/nowhere/inventory.yaml"
	settings.ExtraDataDir = "/data"
	cfg := NewConfig(true, false)
	cfg.Settings = &settings

	s, err := InitializeServices(context.Background(), cfg, fsys)
	require.NoError(t, err)
	machines, err := s.VM.Machines(context.Background())
	require.NoError(t, err)
	assert.Empty(t, machines)
}

func TestInitializeServicesRejectsBrokenInventory(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cfg := testConfig(t, fsys)
	require.NoError(t, afero.WriteFile(fsys, cfg.Settings.Inventory, []byte("machines: {"), 0o644))

	_, err := InitializeServices(context.Background(), cfg, fsys)
	assert.ErrorContains(t, err, "failed to parse inventory")
}

func TestInitializeServicesNeedsSettings(t *testing.T) {
	_, err := InitializeServices(context.Background(), NewConfig(true, false), afero.NewMemMapFs())
	assert.Error(t, err)
}
