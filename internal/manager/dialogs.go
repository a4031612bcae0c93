package manager

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"vboxmanager/internal/defs"
	"vboxmanager/internal/dialogs/cloudprofile"
	"vboxmanager/internal/dialogs/hostnetwork"
	"vboxmanager/internal/dialogs/logviewer"
	"vboxmanager/internal/events"
	"vboxmanager/internal/vmitem"
	"vboxmanager/internal/vmservice"
	"vboxmanager/pkg/logging"
)

// Dialog names a standalone manager window.
type Dialog int

const (
	DialogHostNetwork Dialog = iota + 1
	DialogCloudProfile
	DialogCloudConsole
	DialogMedia
	DialogPerformance
	DialogLogViewer
)

func (d Dialog) String() string {
	switch d {
	case DialogHostNetwork:
		return "HostNetworkManager"
	case DialogCloudProfile:
		return "CloudProfileManager"
	case DialogCloudConsole:
		return "CloudConsoleManager"
	case DialogMedia:
		return "MediumManager"
	case DialogPerformance:
		return "PerformanceMonitor"
	case DialogLogViewer:
		return "LogViewer"
	default:
		return "Invalid"
	}
}

// dialogTool pairs standalone dialogs with the tool pane embedding the same
// content.
var dialogTool = map[Dialog]defs.ToolType{
	DialogHostNetwork:  defs.ToolTypeNetwork,
	DialogCloudProfile: defs.ToolTypeCloud,
	DialogMedia:        defs.ToolTypeMedia,
	DialogPerformance:  defs.ToolTypePerformance,
	DialogLogViewer:    defs.ToolTypeLogs,
}

// dialogState holds the sub-dialog instances, at most one of each kind.
// The embedded panes and the standalone windows never coexist.
type dialogState struct {
	open map[Dialog]bool

	network     *hostnetwork.Manager
	networkPane *hostnetwork.Manager
	cloud       *cloudprofile.Manager
	cloudPane   *cloudprofile.Manager

	logs       *logviewer.Registry
	currentLog uuid.UUID

	// logPane backs the embedded Logs tool.
	logPane *logviewer.Registry
}

func newDialogState(svc vmservice.Service, fs afero.Fs) dialogState {
	return dialogState{
		open:    make(map[Dialog]bool),
		logs:    logviewer.NewRegistry(svc, fs),
		logPane: logviewer.NewRegistry(svc, fs),
	}
}

// DialogOpen reports whether the standalone dialog d is shown.
func (c *Controller) DialogOpen(d Dialog) bool { return c.dialogs.open[d] }

// OpenDialog shows the standalone dialog d, raising it when it is open
// already. The embedded pane showing the same content is closed first.
func (c *Controller) OpenDialog(d Dialog) {
	if c.dialogs.open[d] {
		c.ui.Open(Request{Kind: RequestShowDialog, Dialog: d})
		return
	}
	if tool, ok := dialogTool[d]; ok && c.tools.Type() == tool {
		if tool.Class() == defs.ToolClassMachine {
			c.tools.SetType(defs.ToolTypeDetails)
		} else {
			c.tools.SetType(defs.ToolTypeWelcome)
		}
	}
	c.closeEmbedded(d)

	switch d {
	case DialogHostNetwork:
		m := hostnetwork.New(c.svc, c.pool, c.store)
		if err := m.Load(c.ctx); err != nil {
			c.report("Failed to open the host network manager", err)
			return
		}
		c.dialogs.network = m
	case DialogCloudProfile:
		m := cloudprofile.New(c.svc, c.pool, c.store, c.desktop)
		if err := m.Load(c.ctx); err != nil {
			c.report("Failed to open the cloud profile manager", err)
			return
		}
		c.dialogs.cloud = m
	}
	c.dialogs.open[d] = true
	logging.Debug(subsystem, "Opened %s", d)
	c.ui.Open(Request{Kind: RequestShowDialog, Dialog: d})
	c.update()
}

// CloseDialog closes the standalone dialog d.
func (c *Controller) CloseDialog(d Dialog) {
	if !c.dialogs.open[d] {
		return
	}
	delete(c.dialogs.open, d)
	switch d {
	case DialogHostNetwork:
		c.dialogs.network = nil
	case DialogCloudProfile:
		c.dialogs.cloud = nil
	case DialogLogViewer:
		c.dialogs.logs.CloseAll()
		c.dialogs.currentLog = uuid.Nil
	}
	logging.Debug(subsystem, "Closed %s", d)
	c.ui.Open(Request{Kind: RequestCloseDialog, Dialog: d})
	c.update()
}

func (c *Controller) closeEmbedded(d Dialog) {
	switch d {
	case DialogHostNetwork:
		c.dialogs.networkPane = nil
	case DialogCloudProfile:
		c.dialogs.cloudPane = nil
	case DialogLogViewer:
		c.dialogs.logPane.CloseAll()
	}
}

// handleToolTypeChange closes the standalone twin of the tool switched to
// and prepares the embedded pane.
func (c *Controller) handleToolTypeChange(t defs.ToolType) {
	for d, tool := range dialogTool {
		if tool == t {
			c.CloseDialog(d)
		}
	}
	switch t {
	case defs.ToolTypeNetwork:
		if c.dialogs.networkPane == nil {
			m := hostnetwork.New(c.svc, c.pool, c.store)
			c.report("Failed to load host networks", m.Load(c.ctx))
			c.dialogs.networkPane = m
		}
	case defs.ToolTypeCloud:
		if c.dialogs.cloudPane == nil {
			m := cloudprofile.New(c.svc, c.pool, c.store, c.desktop)
			c.report("Failed to load cloud profiles", m.Load(c.ctx))
			c.dialogs.cloudPane = m
		}
	}
	c.update()
}

// NetworkManager returns the live host network manager: the standalone
// one when open, else the embedded pane. It is nil when neither exists.
func (c *Controller) NetworkManager() *hostnetwork.Manager {
	if c.dialogs.network != nil {
		return c.dialogs.network
	}
	if c.tools.Type() == defs.ToolTypeNetwork {
		return c.dialogs.networkPane
	}
	return nil
}

// CloudProfileManager returns the live cloud profile manager.
func (c *Controller) CloudProfileManager() *cloudprofile.Manager {
	if c.dialogs.cloud != nil {
		return c.dialogs.cloud
	}
	if c.tools.Type() == defs.ToolTypeCloud {
		return c.dialogs.cloudPane
	}
	return nil
}

func (c *Controller) createNetwork() {
	if m := c.NetworkManager(); m != nil {
		c.report("Failed to create a host network", m.Create(c.ctx))
	}
}

func (c *Controller) removeNetwork() {
	m := c.NetworkManager()
	if m == nil || m.Current() == nil {
		return
	}
	name := m.Current().Name()
	c.ui.Confirm(Prompt{
		Title:   "Remove Host Network",
		Message: "Do you want to remove the host-only network?",
		Names:   []string{name},
		OK:      "Remove",
	}, func(ok bool) {
		if ok {
			c.report(fmt.Sprintf("Failed to remove host network %s", name), m.Remove(c.ctx))
			c.notify()
		}
	})
}

func (c *Controller) refreshNetworks() {
	if m := c.NetworkManager(); m != nil {
		c.report("Failed to refresh host networks", m.Refresh(c.ctx))
		c.notify()
	}
}

func (c *Controller) addCloudProfile() {
	m := c.CloudProfileManager()
	if m == nil {
		return
	}
	c.ui.AskText(Prompt{Title: "Add Profile", Message: "Profile name:"}, "New Profile", func(name string) {
		c.report("Failed to add the cloud profile", m.Add(c.ctx, name))
		c.notify()
	})
}

func (c *Controller) importCloudProfiles() {
	m := c.CloudProfileManager()
	if m == nil {
		return
	}
	c.ui.Confirm(Prompt{
		Title:   "Import Profiles",
		Message: "Importing profiles from the provider configuration drops every unsaved profile. Continue?",
		OK:      "Import",
	}, func(ok bool) {
		if ok {
			c.report("Failed to import cloud profiles", m.Import(c.ctx))
			c.notify()
		}
	})
}

func (c *Controller) removeCloudProfile() {
	m := c.CloudProfileManager()
	if m == nil {
		return
	}
	_, prof := m.Current()
	if prof == nil {
		return
	}
	c.ui.Confirm(Prompt{
		Title:   "Remove Profile",
		Message: "Do you want to remove the cloud profile?",
		Names:   []string{prof.Name},
		OK:      "Remove",
	}, func(ok bool) {
		if ok {
			c.report("Failed to remove the cloud profile", m.Remove(c.ctx))
			c.notify()
		}
	})
}

// ShowLogDialog opens a log window for every accessible selected local
// VM. A window already open for a VM is reused.
func (c *Controller) ShowLogDialog() {
	if c.tools.Type() == defs.ToolTypeLogs {
		c.tools.SetType(defs.ToolTypeDetails)
	}
	c.closeEmbedded(DialogLogViewer)
	opened := false
	for _, it := range vmitem.Locals(c.selection.Items) {
		if !it.Accessible() {
			continue
		}
		v, created, err := c.dialogs.logs.Open(c.ctx, it)
		if err != nil {
			c.report(fmt.Sprintf("Failed to read the logs of %s", it.Name()), err)
		}
		if created {
			c.followLog(v)
			hw := v.HardwareUUID()
			v.OnClose(func() {
				if c.dialogs.currentLog == hw {
					c.dialogs.currentLog = uuid.Nil
				}
			})
		}
		c.dialogs.currentLog = v.HardwareUUID()
		opened = true
	}
	if !opened {
		return
	}
	c.dialogs.open[DialogLogViewer] = true
	c.ui.Open(Request{Kind: RequestShowDialog, Dialog: DialogLogViewer})
	c.update()
}

// LogViewers lists the open log windows.
func (c *Controller) LogViewers() []*logviewer.Viewer { return c.dialogs.logs.Viewers() }

// CurrentLogViewer returns the log window last raised, or nil.
func (c *Controller) CurrentLogViewer() *logviewer.Viewer {
	v, _ := c.dialogs.logs.Viewer(c.dialogs.currentLog)
	return v
}

// SetCurrentLogViewer raises the log window of hardwareUUID.
func (c *Controller) SetCurrentLogViewer(hardwareUUID uuid.UUID) {
	if _, ok := c.dialogs.logs.Viewer(hardwareUUID); ok {
		c.dialogs.currentLog = hardwareUUID
		c.notify()
	}
}

// CloseLogViewer closes one log window. The log dialog closes with the
// last window.
func (c *Controller) CloseLogViewer(hardwareUUID uuid.UUID) {
	c.dialogs.logs.Close(hardwareUUID)
	if viewers := c.dialogs.logs.Viewers(); len(viewers) == 0 {
		c.CloseDialog(DialogLogViewer)
	} else if c.dialogs.currentLog == uuid.Nil {
		c.dialogs.currentLog = viewers[len(viewers)-1].HardwareUUID()
	}
	c.notify()
}

// followLog rereads the logs of v whenever its machine changes state,
// until v is closed.
func (c *Controller) followLog(v *logviewer.Viewer) {
	filter := events.CombineFilters(
		events.FilterByType(events.TypeMachineStateChange),
		events.FilterByMachine(v.MachineID()),
	)
	bus := c.svc.Events()
	sub := bus.Subscribe(filter, func(events.Event) {
		c.loop.Post(func() {
			if v.Closed() || c.closed {
				return
			}
			if err := v.Refresh(c.ctx); err != nil && !errors.Is(err, logviewer.ErrNoLogs) {
				logging.Warn(subsystem, "Failed to refresh %s: %v", v.Title(), err)
			}
			c.notify()
		})
	})
	v.OnClose(func() { bus.Unsubscribe(sub) })
}

func (c *Controller) refreshLog() {
	if v := c.CurrentLogViewer(); v != nil {
		c.report("Failed to refresh the log", v.Refresh(c.ctx))
		c.notify()
	}
}

func (c *Controller) saveLog() {
	v := c.CurrentLogViewer()
	if v == nil {
		return
	}
	initial := c.svc.SystemProperties().HomeFolder
	c.ui.AskText(Prompt{Title: "Save Log", Message: "Save the log to:"}, initial, func(path string) {
		if path == "" {
			return
		}
		c.report("Failed to save the log", v.Save(path))
	})
}

// ApplyNetwork commits the host network details editor.
func (c *Controller) ApplyNetwork() {
	m := c.NetworkManager()
	if m == nil || !m.Editor().CanApply() {
		return
	}
	c.report("Failed to apply host network settings", m.Apply(c.ctx))
	c.notify()
}

// ResetNetwork reverts the host network details editor.
func (c *Controller) ResetNetwork() {
	if m := c.NetworkManager(); m != nil {
		m.Reset()
		c.notify()
	}
}

// SetNetworkDHCP toggles the DHCP server column of row i.
func (c *Controller) SetNetworkDHCP(i int, checked bool) {
	if m := c.NetworkManager(); m != nil {
		c.report("Failed to change the DHCP server", m.SetDHCPChecked(c.ctx, i, checked))
		c.notify()
	}
}

// ApplyCloudProfile commits the cloud profile details editor.
func (c *Controller) ApplyCloudProfile() {
	m := c.CloudProfileManager()
	if m == nil || !m.Editor().CanApply() {
		return
	}
	c.report("Failed to apply the cloud profile", m.Apply(c.ctx))
	c.notify()
}

// ResetCloudProfile reverts the cloud profile details editor.
func (c *Controller) ResetCloudProfile() {
	if m := c.CloudProfileManager(); m != nil {
		m.Reset()
		c.notify()
	}
}

// EmbeddedLogViewer returns the log page set the Logs tool shows for the
// first accessible selected local VM, loading it on first use. It is nil
// while another tool is current.
func (c *Controller) EmbeddedLogViewer() *logviewer.Viewer {
	if c.tools.Type() != defs.ToolTypeLogs {
		return nil
	}
	for _, it := range vmitem.Locals(c.selection.Items) {
		if !it.Accessible() {
			continue
		}
		v, created, err := c.dialogs.logPane.Open(c.ctx, it)
		if created {
			c.followLog(v)
			if err != nil {
				logging.Warn(subsystem, "Failed to read the logs of %s: %v", it.Name(), err)
			}
		}
		return v
	}
	return nil
}
