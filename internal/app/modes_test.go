package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vboxmanager/internal/manager"
)

func TestRunCLIModeListsMachines(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cfg := testConfig(t, fsys)
	s, err := InitializeServices(context.Background(), cfg, fsys)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runCLIMode(context.Background(), cfg, s, &out))

	text := out.String()
	assert.Contains(t, text, "NAME")
	assert.Contains(t, text, "Ubuntu")
	assert.Contains(t, text, "/Work")
	assert.Contains(t, text, "Windows")
	assert.Contains(t, text, "Running")
}

func TestRunCLIModeEmptyInventory(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cfg := testConfig(t, fsys)
	require.NoError(t, afero.WriteFile(fsys, cfg.Settings.Inventory, []byte("machines: []\n"), 0o644))
	s, err := InitializeServices(context.Background(), cfg, fsys)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runCLIMode(context.Background(), cfg, s, &out))
	assert.Equal(t, "No virtual machines.\n", out.String())
}

func TestHeadlessUI(t *testing.T) {
	ui := &headlessUI{}

	answered, ok := false, true
	ui.Confirm(manager.Prompt{Title: "Remove"}, func(v bool) { answered, ok = true, v })
	assert.True(t, answered)
	assert.False(t, ok)

	ui.AskText(manager.Prompt{Title: "Name"}, "x", func(string) { t.Fatal("input must not be accepted") })

	done := false
	ui.Open(manager.Request{Kind: manager.RequestWizard, Done: func() { done = true }})
	assert.True(t, done)

	ui.Notify(manager.Notice{Title: "Info"})
	assert.NoError(t, ui.err)
	boom := errors.New("boom")
	ui.Notify(manager.Notice{Title: "Failed to start", Err: boom})
	ui.Notify(manager.Notice{Title: "Second", Err: errors.New("other")})
	assert.ErrorIs(t, ui.err, boom)
	assert.ErrorContains(t, ui.err, "Failed to start")
}
