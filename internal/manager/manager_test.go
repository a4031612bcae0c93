package manager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vboxmanager/internal/actionpool"
	"vboxmanager/internal/defs"
	"vboxmanager/internal/events"
	"vboxmanager/internal/extradata"
	"vboxmanager/internal/tools"
	"vboxmanager/internal/uiloop"
	"vboxmanager/internal/vmitem"
	"vboxmanager/internal/vmservice"
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
  - id: 6c1b0000-0000-4000-8000-000000000002
    name: Debian
    osType: Debian_64
    groups: ["/Work/Nested"]
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
      acpi: true
  - id: 6c1b0000-0000-4000-8000-000000000005
    name: Broken
    inaccessible: "Could not find file Broken.vbox"
cloud:
  providers:
    - shortName: OCI
      name: Oracle Cloud Infrastructure
      properties: [user, tenancy, region]
      profiles:
        - name: default
  machines:
    - id: 6c1b0000-0000-4000-8000-0000000000c1
      name: web-1
      provider: OCI
      profile: default
      state: Stopped
hostInterfaces:
  - name: vboxnet0
    hostOnly: true
    ipv4: 192.168.56.1
    mask: 255.255.255.0
`

var (
	ubuntuID  = uuid.MustParse("6c1b0000-0000-4000-8000-000000000001")
	debianID  = uuid.MustParse("6c1b0000-0000-4000-8000-000000000002")
	savedID   = uuid.MustParse("6c1b0000-0000-4000-8000-000000000003")
	windowsID = uuid.MustParse("6c1b0000-0000-4000-8000-000000000004")
	brokenID  = uuid.MustParse("6c1b0000-0000-4000-8000-000000000005")
	webID     = uuid.MustParse("6c1b0000-0000-4000-8000-0000000000c1")
)

type fakeUI struct {
	decline  bool
	text     string
	prompts  []Prompt
	requests []Request
	notices  []Notice
}

func (u *fakeUI) Confirm(p Prompt, answer func(ok bool)) {
	u.prompts = append(u.prompts, p)
	answer(!u.decline)
}

func (u *fakeUI) AskText(p Prompt, initial string, accept func(string)) {
	u.prompts = append(u.prompts, p)
	if u.decline {
		return
	}
	if u.text != "" {
		initial = u.text
	}
	accept(initial)
}

func (u *fakeUI) Open(r Request) { u.requests = append(u.requests, r) }

func (u *fakeUI) Notify(n Notice) { u.notices = append(u.notices, n) }

func (u *fakeUI) lastRequest(kind RequestKind) (Request, bool) {
	for i := len(u.requests) - 1; i >= 0; i-- {
		if u.requests[i].Kind == kind {
			return u.requests[i], true
		}
	}
	return Request{}, false
}

type fakeDesktop struct {
	urls      []string
	revealed  []string
	shortcuts []string
	executed  [][]string
}

func (d *fakeDesktop) OpenURL(url string) error {
	d.urls = append(d.urls, url)
	return nil
}

func (d *fakeDesktop) OpenInFileManager(path string) error {
	d.revealed = append(d.revealed, path)
	return nil
}

func (d *fakeDesktop) CreateMachineShortcut(settingsFile, dir, name string, id uuid.UUID) error {
	d.shortcuts = append(d.shortcuts, name)
	return nil
}

func (d *fakeDesktop) Execute(path string, args []string) error {
	d.executed = append(d.executed, append([]string{path}, args...))
	return nil
}

type fakeClipboard struct{ text string }

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

type harness struct {
	t     *testing.T
	svc   *memory.Service
	q     *uiloop.Queue
	ui    *fakeUI
	desk  *fakeDesktop
	clip  *fakeClipboard
	fs    afero.Fs
	store *extradata.Store
	c     *Controller
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	inv, err := memory.ParseInventory([]byte(testInventory))
	require.NoError(t, err)
	svc, err := memory.New(inv, events.NewBus())
	require.NoError(t, err)

	q := uiloop.NewQueue(256)
	store := extradata.NewMemory()
	pool := actionpool.New(actionpool.Options{Flavor: actionpool.FlavorManager, Loop: q, Store: store})
	tm := tools.New(store)
	tm.Resize(40)
	tm.Init()

	h := &harness{
		t:     t,
		svc:   svc,
		q:     q,
		ui:    &fakeUI{},
		desk:  &fakeDesktop{},
		clip:  &fakeClipboard{},
		fs:    afero.NewMemMapFs(),
		store: store,
	}
	h.c, err = New(Options{
		Service:              svc,
		Store:                store,
		Loop:                 q,
		Pool:                 pool,
		Tools:                tm,
		UI:                   h.ui,
		Clipboard:            h.clip,
		Desktop:              h.desk,
		Fs:                   h.fs,
		ShortcutDir:          "/desktop",
		CloudRefreshInterval: 20 * time.Millisecond,
	})
	require.NoError(t, err)
	t.Cleanup(h.c.Close)

	require.NoError(t, h.c.Reload(context.Background()))
	require.True(t, q.RunUntil(func() bool { return !h.c.CloudUpdateInProgress() }, 2*time.Second))
	return h
}

func (h *harness) action(idx actionpool.Index) *actionpool.Action {
	a := h.c.Pool().Action(idx)
	require.NotNil(h.t, a, "action %d", idx)
	return a
}

func (h *harness) selectMachines(ids ...uuid.UUID) {
	h.c.SetSelection(h.c.MachineSelection(ids...))
}

func (h *harness) machine(id uuid.UUID) vmservice.Machine {
	m, err := h.svc.Machine(context.Background(), id)
	require.NoError(h.t, err)
	return m
}

// settle runs posted work until no task is left.
func (h *harness) settle() {
	require.True(h.t, h.q.RunUntil(func() bool { return len(h.c.Tasks()) == 0 }, 2*time.Second))
	h.q.Drain()
}

func TestReloadListsLocalAndCloudRows(t *testing.T) {
	h := newHarness(t)

	var names []string
	for _, it := range h.c.Items() {
		names = append(names, it.Name())
	}
	assert.Equal(t, []string{"Ubuntu", "Debian", "Saved", "Windows", "Broken", "web-1"}, names)

	web := h.c.Item(webID)
	require.NotNil(t, web)
	assert.Equal(t, vmitem.KindCloudReal, web.Kind())
	provider, profile, ok := h.c.CloudProfile(web)
	require.True(t, ok)
	assert.Equal(t, "OCI", provider)
	assert.Equal(t, "default", profile)
}

func TestReloadMarksFailedProfileListing(t *testing.T) {
	h := newHarness(t)
	h.svc.FailNext("CloudMachines", errors.New("unauthorized"))

	require.NoError(t, h.c.Reload(context.Background()))
	require.True(t, h.q.RunUntil(func() bool { return !h.c.CloudUpdateInProgress() }, 2*time.Second))

	last := h.c.Items()[len(h.c.Items())-1]
	require.Equal(t, vmitem.KindCloudFake, last.Kind())
	assert.Equal(t, vmitem.FakeStateDone, last.(*vmitem.Cloud).FakeState())
	assert.False(t, last.Accessible())
	assert.Contains(t, last.AccessError(), "unauthorized")
}

func TestStartSingleMachineWithoutConfirmation(t *testing.T) {
	h := newHarness(t)
	h.selectMachines(ubuntuID)

	start := h.action(actionpool.MachineStartOrShowStartNormal)
	require.True(t, start.Enabled())
	require.True(t, start.Trigger())
	h.settle()

	assert.Empty(t, h.ui.prompts)
	m := h.machine(ubuntuID)
	assert.Equal(t, defs.MachineStateRunning, m.State)
	assert.Equal(t, "GUI/Qt", m.SessionName)
	assert.True(t, h.c.Item(ubuntuID).IsRunning())
}

func TestStartSeveralMachinesAsksOnce(t *testing.T) {
	h := newHarness(t)
	h.selectMachines(ubuntuID, debianID, savedID)
	require.True(t, h.action(actionpool.MenuMachineStartOrShow).Enabled())

	h.c.StartOrShow(defs.LaunchModeInvalid)
	h.settle()

	require.Len(t, h.ui.prompts, 1)
	assert.ElementsMatch(t, []string{"Ubuntu", "Debian", "Saved"}, h.ui.prompts[0].Names)
	for _, id := range []uuid.UUID{ubuntuID, debianID, savedID} {
		m := h.machine(id)
		assert.Equal(t, defs.MachineStateRunning, m.State, m.Name)
		assert.Equal(t, "GUI/Qt", m.SessionName, m.Name)
	}
}

func TestStartWithShiftLaunchesHeadless(t *testing.T) {
	h := newHarness(t)
	h.selectMachines(ubuntuID)
	h.c.SetShiftHeld(true)

	h.c.StartOrShow(defs.LaunchModeInvalid)
	h.settle()

	assert.Equal(t, "headless", h.machine(ubuntuID).SessionName)
}

func TestDeclinedStartStillShowsRunningMachines(t *testing.T) {
	h := newHarness(t)
	h.ui.decline = true
	h.selectMachines(ubuntuID, debianID, windowsID)

	h.c.StartOrShow(defs.LaunchModeInvalid)
	h.settle()

	assert.Equal(t, defs.MachineStatePoweredOff, h.machine(ubuntuID).State)
	assert.Equal(t, defs.MachineStatePoweredOff, h.machine(debianID).State)
	req, ok := h.ui.lastRequest(RequestSwitchToMachine)
	require.True(t, ok)
	assert.Equal(t, windowsID, req.MachineID)
}

func TestStartFailureIsReported(t *testing.T) {
	h := newHarness(t)
	boom := errors.New("boom")
	h.svc.FailNext("LaunchVMProcess", boom)
	h.selectMachines(ubuntuID)

	h.action(actionpool.MachineStartOrShowStartNormal).Trigger()
	h.settle()

	require.Len(t, h.ui.notices, 1)
	assert.ErrorIs(t, h.ui.notices[0].Err, boom)
	assert.Contains(t, FormatNotice(h.ui.notices[0]), "Failed to start Ubuntu")
}

func TestCloudRefreshFollowsSelection(t *testing.T) {
	h := newHarness(t)
	web, ok := h.c.Item(webID).(*vmitem.Cloud)
	require.True(t, ok)

	finished := 0
	web.OnRefreshFinished(func(*vmitem.Cloud) { finished++ })

	h.selectMachines(webID)
	assert.True(t, web.Subscribed())
	assert.True(t, web.Refreshing())

	require.True(t, h.q.RunUntil(func() bool { return finished >= 2 }, 2*time.Second))

	h.svc.SetCloudState(webID, defs.CloudMachineStateRunning)
	require.True(t, h.q.RunUntil(web.IsRunning, 2*time.Second))

	h.c.SetSelection(GlobalSelection())
	assert.False(t, web.Subscribed())
	require.True(t, h.q.RunUntil(func() bool { return !web.Refreshing() }, 2*time.Second))

	before := finished
	time.Sleep(60 * time.Millisecond)
	h.q.Drain()
	assert.LessOrEqual(t, finished, before+1)
	assert.False(t, web.Refreshing())
}

func TestShutdownGating(t *testing.T) {
	h := newHarness(t)
	h.selectMachines(windowsID, webID)

	assert.True(t, h.action(actionpool.MenuMachineClose).Enabled())
	assert.True(t, h.action(actionpool.MachineCloseShutdown).Enabled())
	assert.True(t, h.action(actionpool.MachineClosePowerOff).Enabled())
	assert.False(t, h.action(actionpool.MachineCloseDetach).Enabled())
	assert.False(t, h.action(actionpool.MachineCloseSaveState).Enabled())

	require.True(t, h.action(actionpool.MachineCloseShutdown).Trigger())
	h.settle()

	require.Len(t, h.ui.prompts, 1)
	assert.Equal(t, []string{"Windows"}, h.ui.prompts[0].Names)
	assert.Equal(t, defs.MachineStatePoweredOff, h.machine(windowsID).State)
	assert.True(t, h.c.Item(webID).IsSaved())
}

func TestShutdownFollowsACPI(t *testing.T) {
	h := newHarness(t)
	h.selectMachines(ubuntuID)
	assert.False(t, h.action(actionpool.MachineCloseShutdown).Enabled())
	h.action(actionpool.MachineStartOrShowStartHeadless).Trigger()
	h.settle()

	assert.True(t, h.action(actionpool.MachineCloseShutdown).Enabled())

	h.selectMachines(webID)
	assert.False(t, h.action(actionpool.MachineCloseShutdown).Enabled())
	assert.False(t, h.action(actionpool.MenuMachineClose).Enabled())
}

func TestActionEnablement(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name     string
		selected []uuid.UUID
		enabled  []actionpool.Index
		disabled []actionpool.Index
	}{
		{
			name:     "powered off local",
			selected: []uuid.UUID{ubuntuID},
			enabled: []actionpool.Index{
				actionpool.MachineSettings, actionpool.MachineClone, actionpool.MachineMove,
				actionpool.MachineExportToOCI, actionpool.MenuMachineMoveToGroup,
				actionpool.MachineStartOrShowStartHeadless, actionpool.MachineShowLogDialog,
				actionpool.MachineCreateShortcut, actionpool.WelcomeNew,
			},
			disabled: []actionpool.Index{
				actionpool.MachinePause, actionpool.MachineReset, actionpool.MachineDiscard,
				actionpool.MachineRefresh, actionpool.MenuMachineClose, actionpool.MenuMachineConsole,
			},
		},
		{
			name:     "saved local",
			selected: []uuid.UUID{savedID},
			enabled:  []actionpool.Index{actionpool.MachineDiscard, actionpool.MachineStartOrShowStartNormal},
			disabled: []actionpool.Index{actionpool.MachinePause, actionpool.MenuMachineClose},
		},
		{
			name:     "running local",
			selected: []uuid.UUID{windowsID},
			enabled: []actionpool.Index{
				actionpool.MachinePause, actionpool.MachineReset, actionpool.MenuMachineClose,
				actionpool.MachineCloseDetach, actionpool.MachineCloseSaveState,
				actionpool.MachineStartOrShowStartNormal,
			},
			disabled: []actionpool.Index{
				actionpool.MachineClone, actionpool.MachineMove, actionpool.MenuMachineMoveToGroup,
				actionpool.MachineDiscard,
			},
		},
		{
			name:     "inaccessible local",
			selected: []uuid.UUID{brokenID},
			enabled:  []actionpool.Index{actionpool.MachineRefresh},
			disabled: []actionpool.Index{actionpool.MachineShowLogDialog, actionpool.MachineClone},
		},
		{
			name:     "stopped cloud",
			selected: []uuid.UUID{webID},
			enabled:  []actionpool.Index{actionpool.MachineDiscard, actionpool.MachineRemove},
			disabled: []actionpool.Index{
				actionpool.MachineClone, actionpool.MachineExportToOCI, actionpool.MachineShowLogDialog,
				actionpool.MachineStartOrShowStartHeadless, actionpool.MenuMachineMoveToGroup,
			},
		},
		{
			name:     "nothing selected",
			enabled:  []actionpool.Index{actionpool.ApplicationPreferences, actionpool.FileImportAppliance},
			disabled: []actionpool.Index{actionpool.MachineSettings, actionpool.MachineRemove},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h.selectMachines(tt.selected...)
			for _, idx := range tt.enabled {
				assert.True(t, h.action(idx).Enabled(), "action %d should be enabled", idx)
			}
			for _, idx := range tt.disabled {
				assert.False(t, h.action(idx).Enabled(), "action %d should be disabled", idx)
			}
		})
	}
}

func TestActionAppearance(t *testing.T) {
	h := newHarness(t)

	h.selectMachines(webID)
	assert.Equal(t, 1, h.action(actionpool.MachineDiscard).State())

	h.selectMachines(savedID)
	assert.Equal(t, 0, h.action(actionpool.MachineDiscard).State())
	assert.Equal(t, 0, h.action(actionpool.MenuMachineStartOrShow).State())

	h.selectMachines(windowsID)
	assert.Equal(t, 1, h.action(actionpool.MenuMachineStartOrShow).State())
	assert.False(t, h.action(actionpool.MachinePause).Checked())

	require.True(t, h.action(actionpool.MachinePause).Trigger())
	h.settle()
	assert.Equal(t, defs.MachineStatePaused, h.machine(windowsID).State)
	assert.True(t, h.action(actionpool.MachinePause).Checked())

	require.True(t, h.action(actionpool.MachinePause).Trigger())
	h.settle()
	assert.Equal(t, defs.MachineStateRunning, h.machine(windowsID).State)
	assert.False(t, h.action(actionpool.MachinePause).Checked())
}

func TestMenuVisibilityFollowsSelection(t *testing.T) {
	h := newHarness(t)

	h.c.SetSelection(GlobalSelection())
	assert.True(t, h.action(actionpool.MenuWelcome).Visible())
	assert.False(t, h.action(actionpool.MenuGroup).Visible())
	assert.False(t, h.action(actionpool.MenuMachine).Visible())
	assert.Equal(t, defs.ToolClassGlobal, h.c.Tools().Class())

	h.c.SetSelection(h.c.GroupSelection("/Work"))
	assert.Equal(t, SelectionSingleGroup, h.c.Selection().Kind())
	assert.Len(t, h.c.Selection().Items, 2)
	assert.True(t, h.action(actionpool.MenuGroup).Visible())
	assert.False(t, h.action(actionpool.MenuWelcome).Visible())
	assert.Equal(t, defs.ToolClassMachine, h.c.Tools().Class())

	h.selectMachines(ubuntuID)
	assert.True(t, h.action(actionpool.MenuMachine).Visible())
	assert.False(t, h.action(actionpool.MenuGroup).Visible())

	require.True(t, h.action(actionpool.MachineToolsSnapshots).Trigger())
	assert.Equal(t, defs.ToolTypeSnapshots, h.c.Tools().Type())
	assert.True(t, h.action(actionpool.MenuSnapshot).Visible())
	assert.True(t, h.action(actionpool.GroupToolsSnapshots).Checked())
	assert.False(t, h.action(actionpool.MenuLog).Visible())
}

func TestSnapshotSelectionBlocksStart(t *testing.T) {
	h := newHarness(t)
	h.selectMachines(ubuntuID)
	h.action(actionpool.MachineToolsSnapshots).Trigger()

	h.c.SetCurrentStateItemSelected(false)
	assert.False(t, h.action(actionpool.MachineStartOrShowStartNormal).Enabled())
	assert.False(t, h.action(actionpool.MachineSettings).Enabled())

	h.c.SetCurrentStateItemSelected(true)
	assert.True(t, h.action(actionpool.MachineStartOrShowStartNormal).Enabled())
}

func TestCloudProfileGroupSelection(t *testing.T) {
	h := newHarness(t)
	sel := h.c.GroupSelection("/OCI/default")
	require.True(t, sel.CloudGroup)
	h.c.SetSelection(sel)

	assert.True(t, h.action(actionpool.GroupNew).Enabled())
	assert.False(t, h.action(actionpool.GroupRename).Enabled())

	h.action(actionpool.GroupNew).Trigger()
	req, ok := h.ui.lastRequest(RequestWizard)
	require.True(t, ok)
	assert.Equal(t, defs.WizardTypeNewCloudVM, req.Wizard)
}

func TestWizardKeepsActionOpened(t *testing.T) {
	h := newHarness(t)
	h.selectMachines(ubuntuID)

	settings := h.action(actionpool.MachineSettings)
	require.True(t, settings.Trigger())
	assert.False(t, settings.Enabled())

	req, ok := h.ui.lastRequest(RequestMachineSettings)
	require.True(t, ok)
	assert.Equal(t, ubuntuID, req.MachineID)
	require.NotNil(t, req.Done)

	req.Done()
	assert.True(t, settings.Enabled())
}

func TestMoveToGroupMenu(t *testing.T) {
	h := newHarness(t)
	h.selectMachines(savedID)

	m := h.c.Pool().PrepareMenu(actionpool.MenuMachineMoveToGroup)
	require.NotNil(t, m)
	items := m.Items()
	require.Len(t, items, 5)
	assert.Equal(t, actionpool.MachineMoveToGroupNew, items[0].Action.Index())
	assert.True(t, items[1].Separator)
	assert.Equal(t, "[Root]", items[2].Label)
	assert.Equal(t, "Work", items[3].Label)
	assert.Equal(t, "Work/Nested", items[4].Label)

	items[3].OnSelect(items[3].Data)
	assert.True(t, h.c.GroupSavingInProgress())
	assert.False(t, h.action(actionpool.MenuMachineMoveToGroup).Enabled())
	h.settle()

	assert.False(t, h.c.GroupSavingInProgress())
	assert.Equal(t, []string{"/Work"}, h.machine(savedID).Groups)
	assert.Equal(t, []string{"/Work"}, h.c.Item(savedID).(*vmitem.Local).Groups())

	// The menu is rebuilt from the new group list on every prepare.
	again := h.c.Pool().PrepareMenu(actionpool.MenuMachineMoveToGroup)
	assert.Len(t, again.Items(), 5)
}

func TestRenameAndRemoveGroup(t *testing.T) {
	h := newHarness(t)
	h.c.SetSelection(h.c.GroupSelection("/Work"))
	h.ui.text = "Office"

	require.True(t, h.action(actionpool.GroupRename).Trigger())
	h.settle()
	assert.Equal(t, []string{"/Office"}, h.machine(ubuntuID).Groups)
	assert.Equal(t, []string{"/Office/Nested"}, h.machine(debianID).Groups)
	assert.Equal(t, "/Office", h.c.Selection().Group)

	require.True(t, h.action(actionpool.GroupRemove).Trigger())
	h.settle()
	assert.Equal(t, []string{"/"}, h.machine(ubuntuID).Groups)
	assert.Equal(t, []string{"/Nested"}, h.machine(debianID).Groups)
}

func TestSortItems(t *testing.T) {
	h := newHarness(t)
	h.c.SortItems()

	var names []string
	for _, it := range h.c.Items() {
		names = append(names, it.Name())
	}
	assert.Equal(t, []string{"Broken", "Debian", "Saved", "Ubuntu", "Windows", "web-1"}, names)
}

func TestConsoleConnection(t *testing.T) {
	h := newHarness(t)
	h.selectMachines(webID)
	web := h.c.Item(webID).(*vmitem.Cloud)

	m := h.c.Pool().PrepareMenu(actionpool.MenuMachineConsole)
	require.Len(t, m.Items(), 1)
	assert.Equal(t, actionpool.MachineConsoleCreateConnection, m.Items()[0].Action.Index())

	h.ui.text = "/keys/id.pub"
	h.c.CreateConsoleConnection()
	require.Len(t, h.ui.notices, 1)
	assert.ErrorIs(t, h.ui.notices[0].Err, ErrMissingDependency)

	require.NoError(t, afero.WriteFile(h.fs, "/keys/id.pub", []byte("ssh-rsa AAAA user\n"), 0o600))
	h.c.CreateConsoleConnection()
	h.settle()
	require.True(t, h.q.RunUntil(func() bool { return web.Handle().ConsoleReady }, 2*time.Second))
	assert.Equal(t, "/keys/id.pub", h.store.Get(extradata.KeyCloudConsolePublicKeyPath))

	require.NoError(t, h.store.SetConsoleApplication(extradata.ConsoleApplication{
		ID: "xterm", Name: "XTerm", Path: "/usr/bin/xterm", Args: "-T 'Cloud Console' -e",
	}))
	require.NoError(t, h.store.SetConsoleApplication(extradata.ConsoleApplication{
		ID: "hidden", Name: "Hidden", Path: "/usr/bin/hidden",
	}))
	require.NoError(t, h.store.SetList(extradata.KeyCloudConsoleManagerRestrictions, []string{"/hidden"}))

	m = h.c.Pool().PrepareMenu(actionpool.MenuMachineConsole)
	var labels []string
	var xterm actionpool.Item
	for _, it := range m.Items() {
		switch {
		case it.Separator:
			labels = append(labels, "-")
		case it.Action != nil:
			labels = append(labels, it.Action.Name())
		default:
			labels = append(labels, it.Label)
			if it.Data == "xterm" {
				xterm = it
			}
		}
	}
	assert.Contains(t, labels, "Connect")
	assert.Contains(t, labels, "Connect with XTerm")
	assert.NotContains(t, labels, "Connect with Hidden")
	assert.Equal(t, h.action(actionpool.MachineConsoleDeleteConnection).Name(), labels[len(labels)-1])

	h.svc.SetCloudState(webID, defs.CloudMachineStateRunning)
	require.True(t, h.q.RunUntil(web.IsRunning, 2*time.Second))

	require.NotNil(t, xterm.OnSelect)
	xterm.OnSelect(xterm.Data)
	require.Len(t, h.desk.executed, 1)
	cmd := h.desk.executed[0]
	assert.Equal(t, []string{"/usr/bin/xterm", "-T", "Cloud Console", "-e"}, cmd[:4])
	assert.Contains(t, cmd[4], "ssh")

	require.True(t, h.action(actionpool.MachineConsoleCopyCommandVNCUnix).Trigger())
	assert.Contains(t, h.clip.text, "5900")
}

func TestQueuedURLsRunAfterShow(t *testing.T) {
	h := newHarness(t)
	for _, path := range []string{"/vms/Ubuntu/Ubuntu.vbox", "/incoming/Added/Added.vbox", "/incoming/Pack-7.0.10.vbox-extpack", "/incoming/appliance.ova"} {
		require.NoError(t, afero.WriteFile(h.fs, path, nil, 0o644))
	}

	h.c.QueueURLs("file:///vms/Ubuntu/Ubuntu.vbox", "/missing.vbox", "/incoming/Added/Added.vbox",
		"/incoming/notes.txt", "/incoming/Pack-7.0.10.vbox-extpack", "/incoming/appliance.ova", "/vms/Ubuntu/Ubuntu.vbox")
	h.q.Drain()
	assert.Len(t, h.c.PendingURLs(), 7)

	h.c.Shown()
	h.settle()

	assert.Empty(t, h.c.PendingURLs())
	assert.Equal(t, defs.MachineStateRunning, h.machine(ubuntuID).State)

	var added vmitem.Item
	for _, it := range h.c.Items() {
		if it.Name() == "Added" {
			added = it
		}
	}
	require.NotNil(t, added, "registered machine should be listed")

	ext, ok := h.ui.lastRequest(RequestExtensionPackInstall)
	require.True(t, ok)
	assert.Equal(t, "7.0.10", ext.Version)

	wizard, ok := h.ui.lastRequest(RequestWizard)
	require.True(t, ok)
	assert.Equal(t, defs.WizardTypeImportAppliance, wizard.Wizard)
	assert.Equal(t, "/incoming/appliance.ova", wizard.Path)
}

func TestExtensionPackVersion(t *testing.T) {
	assert.Equal(t, "7.0.10", extensionPackVersion("/tmp/Oracle_VM_VirtualBox_Extension_Pack-7.0.10.vbox-extpack"))
	assert.Equal(t, "", extensionPackVersion("/tmp/pack.vbox-extpack"))
	assert.Equal(t, "", extensionPackVersion("/tmp/pack-latest.vbox-extpack"))
}

func TestStandaloneDialogAndEmbeddedTool(t *testing.T) {
	h := newHarness(t)

	require.True(t, h.action(actionpool.FileShowHostNetworkManager).Trigger())
	assert.True(t, h.c.DialogOpen(DialogHostNetwork))
	network := h.c.NetworkManager()
	require.NotNil(t, network)
	assert.Len(t, network.Items(), 1)

	// Opening again raises the same instance.
	h.c.OpenDialog(DialogHostNetwork)
	assert.Same(t, network, h.c.NetworkManager())

	h.c.ShowGlobalTool(defs.ToolTypeNetwork)
	assert.False(t, h.c.DialogOpen(DialogHostNetwork))
	pane := h.c.NetworkManager()
	require.NotNil(t, pane)
	assert.NotSame(t, network, pane)
	assert.True(t, h.action(actionpool.MenuNetwork).Visible())

	h.c.OpenDialog(DialogHostNetwork)
	assert.True(t, h.c.DialogOpen(DialogHostNetwork))
	assert.Equal(t, defs.ToolTypeWelcome, h.c.Tools().Type())
	req, ok := h.ui.lastRequest(RequestShowDialog)
	require.True(t, ok)
	assert.Equal(t, DialogHostNetwork, req.Dialog)
}

func TestNetworkActions(t *testing.T) {
	h := newHarness(t)
	h.c.OpenDialog(DialogHostNetwork)

	require.True(t, h.action(actionpool.NetworkCreate).Trigger())
	assert.Len(t, h.c.NetworkManager().Items(), 2)

	require.True(t, h.action(actionpool.NetworkRemove).Trigger())
	require.NotEmpty(t, h.ui.prompts)
	assert.Len(t, h.c.NetworkManager().Items(), 1)
	assert.Empty(t, h.ui.notices)
}

func TestCloudProfileActions(t *testing.T) {
	h := newHarness(t)
	h.c.OpenDialog(DialogCloudProfile)
	cloud := h.c.CloudProfileManager()
	require.NotNil(t, cloud)
	cloud.Select("OCI", "")

	h.ui.text = "staging"
	require.True(t, h.action(actionpool.CloudAdd).Trigger())
	provider, profile := cloud.Current()
	require.NotNil(t, provider)
	require.NotNil(t, profile)
	assert.Equal(t, "staging", profile.Name)

	require.True(t, h.action(actionpool.CloudTryPage).Trigger())
	assert.Len(t, h.desk.urls, 1)
}

func TestLogViewerReuse(t *testing.T) {
	h := newHarness(t)
	h.selectMachines(ubuntuID)

	require.True(t, h.action(actionpool.MachineShowLogDialog).Trigger())
	require.True(t, h.action(actionpool.MachineShowLogDialog).Trigger())
	require.Len(t, h.c.LogViewers(), 1)
	v := h.c.CurrentLogViewer()
	require.NotNil(t, v)
	assert.Equal(t, "Ubuntu - Log Viewer", v.Title())
	assert.True(t, h.c.DialogOpen(DialogLogViewer))

	h.ui.text = "/saved/ubuntu.log"
	require.True(t, h.action(actionpool.LogSave).Trigger())
	data, err := afero.ReadFile(h.fs, "/saved/ubuntu.log")
	require.NoError(t, err)
	assert.Contains(t, string(data), "VirtualBox VM starting")

	h.c.CloseLogViewer(v.HardwareUUID())
	assert.Empty(t, h.c.LogViewers())
	assert.False(t, h.c.DialogOpen(DialogLogViewer))
}

func TestLogViewerFollowsStateChanges(t *testing.T) {
	h := newHarness(t)
	h.selectMachines(ubuntuID)
	h.c.ShowLogDialog()
	v := h.c.CurrentLogViewer()
	require.NotNil(t, v)

	// Other machines do not refresh the window.
	require.NoError(t, h.svc.PowerDown(context.Background(), windowsID))
	h.q.Drain()
	assert.NotContains(t, v.Current().Content(), "Changing the VM state")

	require.NoError(t, h.svc.LaunchMachine(context.Background(), ubuntuID, defs.LaunchModeHeadless))
	h.q.Drain()
	assert.Contains(t, v.Current().Content(), "VirtualBox VM starting")
	assert.Contains(t, v.Current().Content(), "to 'Running'")

	h.c.CloseLogViewer(v.HardwareUUID())
	content := v.Current().Content()
	require.NoError(t, h.svc.PowerDown(context.Background(), ubuntuID))
	h.q.Drain()
	assert.Equal(t, content, v.Current().Content())
}

func TestLogsToolClosesLogViewer(t *testing.T) {
	h := newHarness(t)
	h.selectMachines(ubuntuID)
	h.c.ShowLogDialog()
	require.True(t, h.c.DialogOpen(DialogLogViewer))

	require.True(t, h.action(actionpool.MachineToolsLogs).Trigger())
	assert.False(t, h.c.DialogOpen(DialogLogViewer))
	assert.Empty(t, h.c.LogViewers())
}

func TestRegistrationEvents(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, afero.WriteFile(h.fs, "/incoming/New/New.vbox", nil, 0o644))

	h.c.AddMachine("/incoming/New/New.vbox")
	h.q.Drain()

	var id uuid.UUID
	for _, it := range h.c.Items() {
		if it.Name() == "New" {
			id = it.ID()
		}
	}
	require.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, vmitem.KindLocal, h.c.Items()[5].Kind(), "local rows stay ahead of cloud rows")

	h.selectMachines(id, ubuntuID)
	require.True(t, h.action(actionpool.MachineRemove).Trigger())
	h.settle()

	assert.Nil(t, h.c.Item(id))
	assert.Nil(t, h.c.Item(ubuntuID))
	assert.Empty(t, h.c.Selection().Items)
}

func TestAddMachineMissingFile(t *testing.T) {
	h := newHarness(t)
	h.c.AddMachine("/nowhere.vbox")

	require.Len(t, h.ui.notices, 1)
	assert.ErrorIs(t, h.ui.notices[0].Err, ErrMissingDependency)
}

func TestSaveStateRunsAsTask(t *testing.T) {
	h := newHarness(t)
	h.selectMachines(windowsID)

	require.True(t, h.action(actionpool.MachineCloseSaveState).Trigger())
	require.Len(t, h.c.Tasks(), 1)
	h.settle()

	assert.Equal(t, defs.MachineStateSaved, h.machine(windowsID).State)
	assert.True(t, h.c.Item(windowsID).IsSaved())
}

func TestShortcutsAndFileManager(t *testing.T) {
	h := newHarness(t)
	h.selectMachines(ubuntuID, brokenID)

	require.True(t, h.action(actionpool.MachineCreateShortcut).Trigger())
	assert.Equal(t, []string{"Ubuntu"}, h.desk.shortcuts)

	require.True(t, h.action(actionpool.MachineShowInFileManager).Trigger())
	assert.Equal(t, []string{"/vms/Ubuntu/Ubuntu.vbox"}, h.desk.revealed)
}

func TestResetWarnings(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.store.Set(extradata.KeySuppressedMessages, "remindAboutAutoCapture"))

	require.True(t, h.action(actionpool.ApplicationResetWarnings).Trigger())
	assert.Empty(t, h.store.Get(extradata.KeySuppressedMessages))
}

func TestCloseStopsCloudRefresh(t *testing.T) {
	h := newHarness(t)
	web := h.c.Item(webID).(*vmitem.Cloud)
	h.selectMachines(webID)

	h.c.Close()
	assert.False(t, web.Subscribed())
	assert.Empty(t, h.c.Items())
}
