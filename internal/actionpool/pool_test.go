package actionpool

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vboxmanager/internal/defs"
	"vboxmanager/internal/extradata"
	"vboxmanager/internal/uiloop"
)

type keyPress string

func (k keyPress) String() string { return string(k) }

func newManagerPool(t *testing.T, q *uiloop.Queue) *Pool {
	t.Helper()
	opts := Options{Flavor: FlavorManager}
	if q != nil {
		opts.Loop = q
	}
	return New(opts)
}

func TestNewInvalidatesEveryMenu(t *testing.T) {
	p := newManagerPool(t, nil)

	for idx := range p.handlers {
		assert.True(t, p.Invalidated(idx), "menu %d", idx)
	}
	assert.Len(t, p.Invalidations(), len(p.handlers))

	p.UpdateMenu(MenuMachine)
	assert.False(t, p.Invalidated(MenuMachine))
	assert.NotEmpty(t, p.Action(MenuMachine).Menu().Items())

	// Menus fed from live data stay invalidated.
	p.PrepareMenu(MenuMachineMoveToGroup)
	assert.True(t, p.Invalidated(MenuMachineMoveToGroup))
}

func TestRestrictionChangeInvalidatesMenu(t *testing.T) {
	p := New(Options{Flavor: FlavorRuntime})
	p.UpdateMenu(MenuView)
	require.False(t, p.Invalidated(MenuView))

	p.SetRestrictionForMenuView(LevelRuntime, defs.RuntimeMenuViewActionTypeScale)
	assert.True(t, p.Invalidated(MenuView))

	p.UpdateMenu(MenuView)
	assert.False(t, p.Invalidated(MenuView))
	assert.NotContains(t, p.Action(MenuView).Menu().Actions(), p.Action(ViewScale))
}

func TestLayoutSeparators(t *testing.T) {
	p := newManagerPool(t, nil)
	p.UpdateMenus()

	for _, m := range p.Menus() {
		items := m.Items()
		if len(items) == 0 {
			continue
		}
		assert.False(t, items[0].Separator, "menu %d starts with a separator", m.Index())
		assert.False(t, items[len(items)-1].Separator, "menu %d ends with a separator", m.Index())
		for i := 1; i < len(items); i++ {
			assert.False(t, items[i-1].Separator && items[i].Separator, "menu %d has adjacent separators", m.Index())
		}
	}
}

func TestEnabledRequiresNotOpenedAndAllowed(t *testing.T) {
	p := newManagerPool(t, nil)
	a := p.Action(MachineSettings)
	a.SetEnabled(true)
	require.True(t, a.Enabled())

	release := a.Open()
	assert.True(t, a.Opened())
	assert.False(t, a.Enabled())
	assert.False(t, a.Trigger())

	release()
	release()
	assert.False(t, a.Opened())
	assert.True(t, a.Enabled())

	// Nested opens keep the action disabled until the last release.
	first, second := a.Open(), a.Open()
	first()
	first()
	assert.True(t, a.Opened())
	assert.False(t, a.Enabled())
	second()
	assert.False(t, a.Opened())
	assert.True(t, a.Enabled())

	r := New(Options{Flavor: FlavorRuntime})
	full := r.Action(ViewFullscreen)
	full.SetEnabled(true)
	r.SetRestrictionForMenuView(LevelBase, defs.RuntimeMenuViewActionTypeFullscreen)
	assert.False(t, full.Allowed())
	assert.False(t, full.Enabled())

	for _, a := range append(p.Actions(), r.Actions()...) {
		if a.Enabled() {
			assert.False(t, a.Opened())
			assert.True(t, a.Allowed())
		}
	}
}

func TestProcessHotKeyPostsActivation(t *testing.T) {
	q := uiloop.NewQueue(8)
	p := newManagerPool(t, q)

	var welcome, machine int
	p.Action(WelcomeNew).OnTrigger(func(*Action) { welcome++ })
	p.Action(MachineNew).OnTrigger(func(*Action) { machine++ })
	p.Action(MenuWelcome).SetVisible(false)

	require.True(t, p.ProcessHotKey(keyPress("ctrl+n")))
	assert.Zero(t, machine, "activation runs after the key event")
	assert.Equal(t, 1, q.Drain())
	assert.Equal(t, 1, machine)
	assert.Zero(t, welcome)
}

func TestProcessHotKeyUnknown(t *testing.T) {
	q := uiloop.NewQueue(8)
	p := newManagerPool(t, q)

	assert.False(t, p.ProcessHotKey(keyPress("ctrl+alt+z")))
	assert.Zero(t, q.Drain())
}

func TestProcessHotKeyConflict(t *testing.T) {
	q := uiloop.NewQueue(8)
	p := newManagerPool(t, q)
	require.NoError(t, p.SetShortcut(FileImportAppliance, "ctrl+y"))
	require.NoError(t, p.SetShortcut(FileExportAppliance, "ctrl+y"))

	var imported, exported int
	p.Action(FileImportAppliance).OnTrigger(func(*Action) { imported++ })
	p.Action(FileExportAppliance).OnTrigger(func(*Action) { exported++ })
	p.Action(FileImportAppliance).SetEnabled(false)

	assert.True(t, p.ProcessHotKey(keyPress("ctrl+y")))
	assert.Equal(t, 1, q.Drain())
	assert.Zero(t, imported)
	assert.Equal(t, 1, exported)
}

func TestProcessWidgetHotKey(t *testing.T) {
	q := uiloop.NewQueue(8)
	p := newManagerPool(t, q)

	var restored, refreshed int
	p.Action(SnapshotRestore).OnTrigger(func(*Action) { restored++ })
	p.Action(LogRefresh).OnTrigger(func(*Action) { refreshed++ })

	assert.False(t, p.ProcessHotKey(keyPress("ctrl+shift+r")), "pane actions need focus")
	assert.True(t, p.ProcessWidgetHotKey(MenuSnapshot, keyPress("ctrl+shift+r")))
	assert.True(t, p.ProcessWidgetHotKey(MenuLog, keyPress("f5")))
	assert.False(t, p.ProcessWidgetHotKey(MenuFile, keyPress("f5")))
	assert.Equal(t, 2, q.Drain())
	assert.Equal(t, 1, restored)
	assert.Equal(t, 1, refreshed)
}

func TestViewRestrictionRoundTrip(t *testing.T) {
	store := extradata.NewMemory()
	p := New(Options{Flavor: FlavorRuntime, Store: store})

	p.SetRestrictionForMenuView(LevelSession, defs.RuntimeMenuViewActionTypeFullscreen|defs.RuntimeMenuViewActionTypeSeamless)
	require.NoError(t, p.SaveRestrictions(store))
	assert.ElementsMatch(t, []string{"Fullscreen", "Seamless"}, strings.Split(store.Get(extradata.KeyRestrictedViewMenu), ","))

	reloaded := New(Options{Flavor: FlavorRuntime, Store: store})
	m := reloaded.PrepareMenu(MenuView)
	require.NotNil(t, m)

	actions := m.Actions()
	assert.NotContains(t, actions, reloaded.Action(ViewFullscreen))
	assert.NotContains(t, actions, reloaded.Action(ViewSeamless))
	for _, idx := range []Index{ViewScale, ViewMinimizeWindow, ViewAdjustWindow, ViewGuestAutoresize, ViewTakeScreenshot, ViewVRDEServer} {
		assert.Contains(t, actions, reloaded.Action(idx))
		assert.True(t, reloaded.Action(idx).Visible())
	}
	assert.False(t, reloaded.Action(ViewFullscreen).Visible())
	assert.False(t, reloaded.Action(ViewSeamless).Visible())
}

func TestMenuBarRestriction(t *testing.T) {
	p := New(Options{Flavor: FlavorRuntime})
	require.Contains(t, p.MenuBar(), p.Action(MenuView))

	p.SetRestrictionForMenuBar(LevelRuntime, defs.MenuTypeView)
	assert.NotContains(t, p.MenuBar(), p.Action(MenuView))
	assert.Empty(t, p.Invalidations(), "every menu was rebuilt")
}

func TestMacApplicationMenuIsConsumed(t *testing.T) {
	p := New(Options{Flavor: FlavorManager, Mac: true})

	about := p.Action(ApplicationAbout)
	require.NotNil(t, about)
	assert.Equal(t, RoleAbout, about.Role())
	assert.Equal(t, RolePreferences, p.Action(ApplicationPreferences).Role())
	assert.NotNil(t, p.Action(MenuWindow))

	m := p.PrepareMenu(MenuApplication)
	assert.True(t, m.Consumed())
	assert.True(t, m.Empty())

	var absorbed []*Action
	for _, it := range m.Absorbed() {
		if it.Action != nil {
			absorbed = append(absorbed, it.Action)
		}
	}
	assert.Contains(t, absorbed, about)
	assert.Contains(t, absorbed, p.Action(ApplicationPreferences))

	m = p.PrepareMenu(MenuApplication)
	assert.True(t, m.Empty())
	assert.False(t, p.Invalidated(MenuApplication))

	// The Window menu is rebuilt on every show.
	p.PrepareMenu(MenuWindow)
	assert.True(t, p.Invalidated(MenuWindow))
}

func TestNonMacVariations(t *testing.T) {
	p := newManagerPool(t, nil)

	assert.Nil(t, p.Action(MenuWindow))
	assert.Nil(t, p.Action(ApplicationAbout))
	require.NotNil(t, p.Action(HelpAbout))

	m := p.PrepareMenu(MenuHelp)
	assert.Contains(t, m.Actions(), p.Action(HelpAbout))
	assert.False(t, m.Consumed())
}

func TestMenuPrepareNotification(t *testing.T) {
	p := newManagerPool(t, nil)

	var prepared []Index
	p.OnMenuPrepare(func(idx Index, m *Menu) {
		prepared = append(prepared, idx)
		if idx == MenuMachineMoveToGroup {
			m.AddSeparator()
			m.AddDynamic("[Root]", "/", func(string) {})
		}
	})

	for range 2 {
		m := p.PrepareMenu(MenuMachineMoveToGroup)
		require.Len(t, m.Items(), 3)
		assert.Equal(t, p.Action(MachineMoveToGroupNew), m.Items()[0].Action)
		assert.True(t, m.Items()[1].Separator)
		assert.Equal(t, "/", m.Items()[2].Data)
	}
	assert.Equal(t, []Index{MenuMachineMoveToGroup, MenuMachineMoveToGroup}, prepared)
	assert.Nil(t, p.PrepareMenu(MachineSettings))
}

func TestShortcutOverrides(t *testing.T) {
	store := extradata.NewMemory()
	p := New(Options{Flavor: FlavorManager, Store: store})
	settings := p.Action(MachineSettings)
	require.Equal(t, "ctrl+s", settings.Shortcut())
	assert.Equal(t, "Settings... (ctrl+s)", settings.ToolTip())

	require.NoError(t, p.SetShortcut(MachineSettings, "ctrl+k"))
	assert.Equal(t, "ctrl+k", settings.Shortcut())
	assert.Equal(t, "ctrl+k", store.Shortcuts("SelectorShortcuts")["SettingsVM"])

	reloaded := New(Options{Flavor: FlavorManager, Store: store})
	assert.Equal(t, "ctrl+k", reloaded.Action(MachineSettings).Shortcut())

	require.NoError(t, p.ResetShortcut(MachineSettings))
	assert.Equal(t, "ctrl+s", settings.Shortcut())
	assert.NotContains(t, store.Shortcuts("SelectorShortcuts"), "SettingsVM")

	assert.Error(t, p.SetShortcut(MenuMachine, "ctrl+x"))
}

func TestClearedShortcutDisablesBinding(t *testing.T) {
	q := uiloop.NewQueue(8)
	p := newManagerPool(t, q)
	require.NoError(t, p.SetShortcut(FileImportAppliance, ""))

	assert.Empty(t, p.Action(FileImportAppliance).Shortcut())
	assert.False(t, p.ProcessHotKey(keyPress("ctrl+i")))
}

func TestExclusiveToolsGroup(t *testing.T) {
	p := newManagerPool(t, nil)
	g := p.ActionGroup(MenuMachineTools)
	require.NotNil(t, g)
	require.True(t, g.Exclusive)

	snapshots := p.Action(MachineToolsSnapshots)
	logs := p.Action(MachineToolsLogs)

	require.True(t, snapshots.Trigger())
	assert.True(t, snapshots.Checked())
	assert.Equal(t, snapshots, g.Checked())

	require.True(t, logs.Trigger())
	assert.False(t, snapshots.Checked())
	assert.Equal(t, logs, g.Checked())

	logs.Trigger()
	assert.True(t, logs.Checked(), "an exclusive toggle stays checked")
}

func TestPauseToggleTwice(t *testing.T) {
	p := newManagerPool(t, nil)
	pause := p.Action(MachinePause)
	before := pause.Checked()

	var seen []bool
	pause.OnTrigger(func(a *Action) { seen = append(seen, a.Checked()) })
	pause.Trigger()
	pause.Trigger()

	assert.Equal(t, before, pause.Checked())
	assert.Equal(t, []bool{!before, before}, seen)
}

func TestStartOrShowStates(t *testing.T) {
	p := newManagerPool(t, nil)
	a := p.Action(MachineStartOrShowStartNormal)

	assert.Equal(t, "Start", a.Name())
	a.SetState(1)
	assert.Equal(t, "Show", a.Name())
}

func TestUpdateCheckDisabled(t *testing.T) {
	p := New(Options{Flavor: FlavorManager, UpdateCheckDisabled: true})

	assert.False(t, p.Action(ApplicationCheckForUpdates).Allowed())
	m := p.PrepareMenu(MenuFile)
	assert.NotContains(t, m.Actions(), p.Action(ApplicationCheckForUpdates))
	assert.Contains(t, m.Actions(), p.Action(ApplicationPreferences))
}

func TestUnknownIndex(t *testing.T) {
	p := New(Options{Flavor: FlavorRuntime})

	assert.Nil(t, p.Action(MachineSettings))
	assert.Nil(t, p.ActionGroup(MenuMachineTools))
	assert.NotNil(t, p.Action(ApplicationClose))
	assert.Equal(t, "q", p.Action(ApplicationClose).Shortcut())
}
