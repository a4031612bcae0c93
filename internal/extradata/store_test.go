package extradata

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vboxmanager/internal/defs"
)

func TestStore_SetGetPersist(t *testing.T) {
	fs := afero.NewMemMapFs()
	ctx := context.Background()

	s, err := Open(ctx, fs, "/cfg")
	require.NoError(t, err)
	require.NoError(t, s.Set("GUI/Test", "value"))

	id := uuid.New()
	require.NoError(t, s.SetMachine(id, KeyLastVisualState, "Scale"))

	reopened, err := Open(ctx, fs, "/cfg")
	require.NoError(t, err)
	assert.Equal(t, "value", reopened.Get("GUI/Test"))
	assert.Equal(t, defs.VisualStateTypeScale, reopened.RequestedVisualState(id))

	require.NoError(t, reopened.Set("GUI/Test", ""))
	assert.NotContains(t, reopened.Keys(), "GUI/Test")
}

func TestStore_MergesConcurrentWriters(t *testing.T) {
	fs := afero.NewMemMapFs()
	ctx := context.Background()

	a, err := Open(ctx, fs, "/cfg")
	require.NoError(t, err)
	b, err := Open(ctx, fs, "/cfg")
	require.NoError(t, err)

	require.NoError(t, a.Set("GUI/A", "1"))
	require.NoError(t, b.Set("GUI/B", "2"))

	assert.Equal(t, "1", b.Get("GUI/A"))
	assert.Equal(t, []string{"GUI/A", "GUI/B"}, b.Keys())
}

func TestStore_RestrictionRoundTrip(t *testing.T) {
	s := NewMemory()

	mask := defs.RuntimeMenuViewActionTypeFullscreen | defs.RuntimeMenuViewActionTypeSeamless
	require.NoError(t, s.SetRestrictedViewMenu(mask))
	assert.Equal(t, "Fullscreen,Seamless", s.Get(KeyRestrictedViewMenu))

	require.NoError(t, s.Set(KeyRestrictedViewMenu, "Seamless,Fullscreen"))
	assert.Equal(t, mask, s.RestrictedViewMenu())
}

func TestStore_ToolsLastItemsChosen(t *testing.T) {
	s := NewMemory()

	global, machine := s.ToolsLastItemsChosen()
	assert.Equal(t, defs.ToolTypeInvalid, global)
	assert.Equal(t, defs.ToolTypeInvalid, machine)

	require.NoError(t, s.SetToolsLastItemsChosen(defs.ToolTypeNetwork, defs.ToolTypeSnapshots))
	assert.Equal(t, "Network,Snapshots", s.Get(KeyToolsLastItemsChosen))

	global, machine = s.ToolsLastItemsChosen()
	assert.Equal(t, defs.ToolTypeNetwork, global)
	assert.Equal(t, defs.ToolTypeSnapshots, machine)

	// Items of the wrong class are ignored.
	require.NoError(t, s.Set(KeyToolsLastItemsChosen, "Logs,Details"))
	global, machine = s.ToolsLastItemsChosen()
	assert.Equal(t, defs.ToolTypeInvalid, global)
	assert.Equal(t, defs.ToolTypeLogs, machine)
}

func TestStore_Shortcuts(t *testing.T) {
	s := NewMemory()

	require.NoError(t, s.SetShortcuts("Manager", map[string]string{"Refresh": "f5", "New": "ctrl+n"}))
	assert.Equal(t, "New=ctrl+n,Refresh=f5", s.Get(KeyShortcutsPrefix+"Manager"))
	assert.Equal(t, map[string]string{"Refresh": "f5", "New": "ctrl+n"}, s.Shortcuts("Manager"))
	assert.Empty(t, s.Shortcuts("Runtime"))
}

func TestStore_PerMachineSettings(t *testing.T) {
	s := NewMemory()
	id := uuid.New()

	assert.Equal(t, defs.PreviewUpdateIntervalType1000ms, s.PreviewUpdateInterval(id))
	require.NoError(t, s.SetPreviewUpdateInterval(id, defs.PreviewUpdateIntervalTypeDisabled))
	assert.Equal(t, "0", s.GetMachine(id, KeyPreviewUpdate))
	assert.Equal(t, defs.PreviewUpdateIntervalTypeDisabled, s.PreviewUpdateInterval(id))
	require.NoError(t, s.SetMachine(id, KeyPreviewUpdate, "7"))
	assert.Equal(t, defs.PreviewUpdateIntervalType1000ms, s.PreviewUpdateInterval(id))

	enabled, align := s.MiniToolbar(id)
	assert.True(t, enabled)
	assert.Equal(t, defs.MiniToolbarAlignmentBottom, align)
	require.NoError(t, s.SetMiniToolbar(id, false, defs.MiniToolbarAlignmentTop))
	enabled, align = s.MiniToolbar(id)
	assert.False(t, enabled)
	assert.Equal(t, defs.MiniToolbarAlignmentTop, align)

	assert.Equal(t, defs.MaxGuestResolutionPolicyAutomatic, s.MaxGuestResolution(id))
	assert.True(t, s.MenuBarEnabled(id))
}

func TestStore_ConsoleApplications(t *testing.T) {
	s := NewMemory()

	require.NoError(t, s.SetConsoleApplication(ConsoleApplication{ID: "ssh", Name: "SSH", Path: "/usr/bin/ssh", Args: "-t"}))
	require.NoError(t, s.SetConsoleApplication(ConsoleApplication{ID: "ssh", Name: "SSH", Path: "/usr/bin/ssh", Args: "-t"}))

	apps := s.ConsoleApplications()
	require.Len(t, apps, 1)
	assert.Equal(t, "/usr/bin/ssh", apps[0].Path)
}

func TestStore_WatchReloadsExternalWrites(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := Open(ctx, afero.NewOsFs(), dir)
	require.NoError(t, err)

	changed := make(chan struct{}, 4)
	require.NoError(t, s.Watch(ctx, func() { changed <- struct{}{} }))

	data := []byte("global:\n  GUI/External: \"yes\"\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), data, 0o644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not report the external write")
	}
	assert.True(t, s.Flag("GUI/External", false))
}
