package manager

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/afero"

	"vboxmanager/internal/actionpool"
	"vboxmanager/internal/desktop"
	"vboxmanager/internal/extradata"
	"vboxmanager/internal/progress"
	"vboxmanager/internal/vmitem"
	"vboxmanager/internal/vmservice"
	"vboxmanager/pkg/logging"
)

// defaultTerminal is the launcher of the plain "Connect" entry per OS.
var defaultTerminal = map[string]struct {
	path string
	args []string
}{
	"darwin":  {path: "open"},
	"windows": {path: "powershell"},
	"linux":   {path: "x-terminal-emulator", args: []string{"-e", "sh", "-c"}},
}

// consoleMachine returns the first selected cloud VM, or nil.
func (c *Controller) consoleMachine() *vmitem.Cloud {
	for _, it := range c.selection.Items {
		if cl, ok := it.(*vmitem.Cloud); ok && cl.Kind() == vmitem.KindCloudReal {
			return cl
		}
	}
	return nil
}

// prepareConsoleMenu fills the console submenu. Without a console
// connection only Create is offered.
func (c *Controller) prepareConsoleMenu(idx actionpool.Index, m *actionpool.Menu) {
	create, del, configure := actionpool.GroupConsoleCreateConnection, actionpool.GroupConsoleDeleteConnection,
		actionpool.GroupConsoleConfigureApplications
	if idx == actionpool.MenuMachineConsole {
		create, del, configure = actionpool.MachineConsoleCreateConnection, actionpool.MachineConsoleDeleteConnection,
			actionpool.MachineConsoleConfigureApplications
	}

	m.Clear()
	cl := c.consoleMachine()
	if cl == nil || cl.Handle() == nil || !cl.Handle().ConsoleReady {
		m.AddAction(c.pool.Action(create))
		return
	}

	if idx == actionpool.MenuMachineConsole {
		for _, copyIdx := range []actionpool.Index{
			actionpool.MachineConsoleCopyCommandSerialUnix,
			actionpool.MachineConsoleCopyCommandSerialWindows,
			actionpool.MachineConsoleCopyCommandVNCUnix,
			actionpool.MachineConsoleCopyCommandVNCWindows,
		} {
			m.AddAction(c.pool.Action(copyIdx))
		}
		m.AddSeparator()
	}

	m.AddDynamic("Connect", "", c.Connect)
	restricted := c.store.List(extradata.KeyCloudConsoleManagerRestrictions)
	for _, app := range c.store.ConsoleApplications() {
		if slices.Contains(restricted, "/"+app.ID) {
			continue
		}
		m.AddDynamic(fmt.Sprintf("Connect with %s", app.Name), app.ID, c.Connect)
	}
	m.AddAction(c.pool.Action(configure))
	m.AddSeparator()
	m.AddAction(c.pool.Action(del))
}

// CreateConsoleConnection asks for a public key file and opens a console
// connection on the selected cloud VM with it.
func (c *Controller) CreateConsoleConnection() {
	cl := c.consoleMachine()
	if cl == nil {
		return
	}
	initial := c.store.Get(extradata.KeyCloudConsolePublicKeyPath)
	c.ui.AskText(Prompt{Title: "Create Console Connection", Message: "Public key file:"}, initial, func(path string) {
		key, err := afero.ReadFile(c.fs, path)
		if err != nil {
			c.report("Failed to create the console connection",
				fmt.Errorf("%w: public key %s: %v", ErrMissingDependency, path, err))
			return
		}
		if err := c.store.Set(extradata.KeyCloudConsolePublicKeyPath, path); err != nil {
			logging.Warn(subsystem, "Failed to remember public key path: %v", err)
		}
		id := cl.ID()
		c.runTask(fmt.Sprintf("Creating console connection for %s", cl.Name()), func(ctx context.Context, _ progress.Reporter) error {
			return c.svc.CreateConsoleConnection(ctx, id, strings.TrimSpace(string(key)))
		}, func(error) { cl.UpdateInfoAsync(false, false) })
	})
}

// DeleteConsoleConnection drops the console connection of the selected
// cloud VM after confirmation.
func (c *Controller) DeleteConsoleConnection() {
	cl := c.consoleMachine()
	if cl == nil {
		return
	}
	c.ui.Confirm(Prompt{
		Title:   "Delete Console Connection",
		Message: "Do you want to delete the console connection of the following cloud virtual machine?",
		Names:   []string{cl.Name()},
		OK:      "Delete",
	}, func(ok bool) {
		if !ok {
			return
		}
		id := cl.ID()
		c.runTask(fmt.Sprintf("Deleting console connection of %s", cl.Name()), func(ctx context.Context, _ progress.Reporter) error {
			return c.svc.DeleteConsoleConnection(ctx, id)
		}, func(error) { cl.UpdateInfoAsync(false, false) })
	})
}

// CopyConsoleCommand copies a console command of the selected cloud VM to
// the clipboard.
func (c *Controller) CopyConsoleCommand(kind vmservice.ConsoleCommand) {
	cl := c.consoleMachine()
	if cl == nil || c.clipboard == nil {
		return
	}
	cmd, err := c.svc.ConsoleCommand(c.ctx, cl.ID(), kind)
	if err != nil {
		c.report("Failed to acquire the console command", err)
		return
	}
	c.report("Failed to copy the console command", c.clipboard.WriteAll(cmd))
}

// Connect launches a console application with the serial console command
// of the selected cloud VM. An empty appID uses the platform terminal.
func (c *Controller) Connect(appID string) {
	cl := c.consoleMachine()
	if cl == nil || c.desktop == nil {
		return
	}
	kind := vmservice.ConsoleSerialUnix
	if runtime.GOOS == "windows" {
		kind = vmservice.ConsoleSerialWindows
	}
	cmd, err := c.svc.ConsoleCommand(c.ctx, cl.ID(), kind)
	if err != nil {
		c.report("Failed to acquire the console command", err)
		return
	}

	var path string
	var args []string
	if appID == "" {
		term, ok := defaultTerminal[runtime.GOOS]
		if !ok {
			term = defaultTerminal["linux"]
		}
		path = term.path
		args = append(args, term.args...)
	} else {
		for _, app := range c.store.ConsoleApplications() {
			if app.ID == appID {
				path = app.Path
				args = desktop.SplitArguments(app.Args)
				break
			}
		}
		if path == "" {
			c.report("Failed to connect", fmt.Errorf("%w: console application %s", ErrMissingDependency, appID))
			return
		}
	}
	args = append(args, cmd)
	logging.Info(subsystem, "Connecting to %s with %s", cl.Name(), path)
	c.report("Failed to start the console application", c.desktop.Execute(path, args))
}
