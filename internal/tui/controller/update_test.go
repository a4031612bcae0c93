package controller

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vboxmanager/internal/actionpool"
	"vboxmanager/internal/defs"
	"vboxmanager/internal/events"
	"vboxmanager/internal/extradata"
	"vboxmanager/internal/manager"
	"vboxmanager/internal/tools"
	"vboxmanager/internal/tui/model"
	"vboxmanager/internal/tui/view"
	"vboxmanager/internal/uiloop"
	"vboxmanager/internal/vmservice/memory"
)

const testInventory = `
machineFolder: /vms
homeFolder: /home/user
machines:
  - id: 6c1b0000-0000-4000-8000-000000000001
    name: Ubuntu
    osType: Ubuntu_64
    groups: ["/Work"]
    logs:
      - name: VBox.log
        content: "00:00:00.000000 VirtualBox VM starting"
  - id: 6c1b0000-0000-4000-8000-000000000003
    name: Saved
    osType: Fedora_64
    state: Saved
  - id: 6c1b0000-0000-4000-8000-000000000004
    name: Windows
    osType: Windows11_64
    state: Running
    session:
      name: GUI/Qt
      pid: 4242
hostInterfaces:
  - name: vboxnet0
    hostOnly: true
    ipv4: 192.168.56.1
    mask: 255.255.255.0
`

type nopDesktop struct{}

func (nopDesktop) OpenURL(string) error                                          { return nil }
func (nopDesktop) OpenInFileManager(string) error                                { return nil }
func (nopDesktop) CreateMachineShortcut(string, string, string, uuid.UUID) error { return nil }
func (nopDesktop) Execute(string, []string) error                                { return nil }

type nopClipboard struct{}

func (nopClipboard) WriteAll(string) error { return nil }

// newTestModel wires a window model to a controller over the in-memory
// service and delivers the first window size.
func newTestModel(t *testing.T) (*model.Model, *uiloop.Queue) {
	t.Helper()
	inv, err := memory.ParseInventory([]byte(testInventory))
	require.NoError(t, err)
	svc, err := memory.New(inv, events.NewBus())
	require.NoError(t, err)

	q := uiloop.NewQueue(256)
	store := extradata.NewMemory()
	pool := actionpool.New(actionpool.Options{Flavor: actionpool.FlavorManager, Loop: q, Store: store})
	tm := tools.New(store)
	tm.Init()

	m := model.InitializeModel(model.Options{Queue: q, Store: store, Version: "1.0.0"})
	c, err := manager.New(manager.Options{
		Service:   svc,
		Store:     store,
		Loop:      q,
		Pool:      pool,
		Tools:     tm,
		UI:        m,
		Clipboard: nopClipboard{},
		Desktop:   nopDesktop{},
		Fs:        afero.NewMemMapFs(),
	})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	require.NoError(t, c.Reload(context.Background()))
	require.True(t, q.RunUntil(func() bool { return !c.CloudUpdateInProgress() }, 2*time.Second))

	m.Attach(c)
	m, _ = Update(tea.WindowSizeMsg{Width: 140, Height: 40}, m)
	return m, q
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "f10":
		return tea.KeyMsg{Type: tea.KeyF10}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *model.Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = Update(keyMsg(k), m)
	}
	return cmd
}

func rowIndex(t *testing.T, m *model.Model, label string) int {
	t.Helper()
	for i, r := range m.Rows {
		if r.Label == label {
			return i
		}
	}
	require.Failf(t, "row not found", "%q", label)
	return -1
}

func TestFirstWindowSizeShowsMainView(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
	assert.True(t, m.Shown)
	out := view.Render(m)
	assert.Contains(t, out, "Machines")
	assert.Contains(t, out, "Ubuntu")
	assert.Contains(t, out, "Welcome")
}

func TestChooserKeysDriveSelection(t *testing.T) {
	m, _ := newTestModel(t)
	require.Equal(t, manager.SelectionGlobal, m.Manager.Selection().Kind())

	press(m, "down")
	sel := m.Manager.Selection()
	require.Equal(t, manager.SelectionSingleMachine, sel.Kind())
	assert.Equal(t, m.Rows[1].Item, sel.Items[0])

	press(m, "space", "down", "space")
	assert.Equal(t, manager.SelectionMultipleMachines, m.Manager.Selection().Kind())
	assert.Len(t, m.Manager.Selection().Items, 2)

	press(m, "esc")
	assert.Len(t, m.Manager.Selection().Items, 1)
}

func TestGroupRowSelectsGroup(t *testing.T) {
	m, _ := newTestModel(t)
	work := rowIndex(t, m, "Work")

	m.MoveCursor(work - m.Cursor)
	sel := m.Manager.Selection()
	assert.Equal(t, manager.SelectionSingleGroup, sel.Kind())
	assert.Equal(t, "/Work", sel.Group)
}

func TestTabCyclesFocus(t *testing.T) {
	m, _ := newTestModel(t)
	require.Equal(t, model.FocusChooser, m.Focus)

	press(m, "tab")
	assert.Equal(t, model.FocusTools, m.Focus)
	press(m, "tab")
	assert.Equal(t, model.FocusPane, m.Focus)
	press(m, "tab")
	assert.Equal(t, model.FocusChooser, m.Focus)
}

func TestConfirmOverlayTakesKeyboard(t *testing.T) {
	m, _ := newTestModel(t)
	var answers []bool
	m.Confirm(manager.Prompt{Title: "Question", Message: "Really?"}, func(ok bool) { answers = append(answers, ok) })
	m.Confirm(manager.Prompt{Title: "Second", Message: "Again?"}, func(ok bool) { answers = append(answers, ok) })

	assert.Contains(t, view.Render(m), "Really?")
	press(m, "down")
	assert.Equal(t, 0, m.Cursor, "keys go to the message box")

	press(m, "y")
	assert.Contains(t, view.Render(m), "Again?")
	press(m, "n")
	assert.Equal(t, []bool{true, false}, answers)
	assert.Nil(t, m.TopOverlay())
}

func TestTextOverlayEditsInitialValue(t *testing.T) {
	m, _ := newTestModel(t)
	var got string
	m.AskText(manager.Prompt{Title: "Name"}, "web", func(s string) { got = s })

	press(m, "-", "1", "enter")
	assert.Equal(t, "web-1", got)

	m.AskText(manager.Prompt{Title: "Name"}, "ignored", func(s string) { got = s })
	press(m, "x", "esc")
	assert.Equal(t, "web-1", got)
}

func TestQueueMsgRunsClosureAndListensAgain(t *testing.T) {
	m, _ := newTestModel(t)
	ran := false

	_, cmd := Update(model.QueueMsg{Fn: func() { ran = true }}, m)
	assert.True(t, ran)
	assert.NotNil(t, cmd)
}

func TestForceQuitShutsDown(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := press(m, "ctrl+c")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, model.ModeQuitting, m.CurrentAppMode)
}

func TestMenuBarAndContextMenu(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "f10")
	require.Len(t, m.Menus, 1)
	assert.True(t, m.Menus[0].Bar)
	press(m, "esc")
	assert.Empty(t, m.Menus)

	m.MoveCursor(rowIndex(t, m, "Ubuntu") - m.Cursor)
	press(m, "m")
	require.Len(t, m.Menus, 1)
	assert.Equal(t, actionpool.MenuMachine, m.Menus[0].Index)
	assert.Contains(t, view.Render(m), "Settings")
}

func TestMouseClickSelectsRowAndTool(t *testing.T) {
	m, _ := newTestModel(t)
	row := rowIndex(t, m, "Ubuntu")

	Update(tea.MouseMsg{X: 2, Y: view.ChooserRowsTop + row, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, m)
	require.Equal(t, row, m.Cursor)

	tm := m.Manager.Tools()
	require.Equal(t, defs.ToolClassMachine, tm.Class())
	var snapshots *tools.Item
	for _, it := range tm.NavigationList() {
		if it.Type == defs.ToolTypeSnapshots {
			snapshots = it
		}
	}
	require.NotNil(t, snapshots)
	y := view.ToolsTop + snapshots.Rect().Min.Y
	Update(tea.MouseMsg{X: view.ToolsLeft + 1, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, m)
	Update(tea.MouseMsg{X: view.ToolsLeft + 1, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}, m)
	assert.Equal(t, defs.ToolTypeSnapshots, tm.Type())
	assert.Equal(t, model.FocusTools, m.Focus)
}

func TestNetworkPaneTogglesDHCP(t *testing.T) {
	m, _ := newTestModel(t)
	m.Manager.Tools().SetType(defs.ToolTypeNetwork)
	m.Focus = model.FocusPane

	mgr := m.Manager.NetworkManager()
	require.NotNil(t, mgr)
	require.Len(t, mgr.Items(), 1)
	require.False(t, mgr.Items()[0].DHCPChecked())

	press(m, "space")
	assert.True(t, mgr.Items()[0].DHCPChecked())
	assert.Contains(t, view.Render(m), "vboxnet0")
}

func TestEmbeddedLogsPaneShowsPages(t *testing.T) {
	m, _ := newTestModel(t)
	m.MoveCursor(rowIndex(t, m, "Ubuntu") - m.Cursor)
	m.Manager.Tools().SetType(defs.ToolTypeLogs)

	m, _ = Update(model.ClearStatusBarMsg{}, m)
	out := view.Render(m)
	assert.Contains(t, out, "VBox.log")
	assert.Contains(t, out, "VirtualBox VM starting")
}
