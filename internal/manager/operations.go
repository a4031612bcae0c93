package manager

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"vboxmanager/internal/actionpool"
	"vboxmanager/internal/defs"
	"vboxmanager/internal/extradata"
	"vboxmanager/internal/progress"
	"vboxmanager/internal/vmitem"
	"vboxmanager/pkg/logging"
)

func names(items []vmitem.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name())
	}
	return out
}

func filter(items []vmitem.Item, pred func(vmitem.Item) bool) []vmitem.Item {
	var out []vmitem.Item
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

func isCloudReal(it vmitem.Item) bool { return it.Kind() == vmitem.KindCloudReal }

func isLocal(it vmitem.Item) bool { return it.Kind() == vmitem.KindLocal }

// refreshCloud asks cloud rows for fresh state once an operation on them
// has completed.
func refreshCloud(items []vmitem.Item) {
	for _, it := range items {
		if cl, ok := it.(*vmitem.Cloud); ok {
			cl.UpdateInfoAsync(false, false)
		}
	}
}

// StartOrShow starts every powered-off selected VM and raises the windows
// of running ones. mode LaunchModeInvalid picks the mode per VM.
// Starting more than one VM asks for confirmation first.
func (c *Controller) StartOrShow(mode defs.LaunchMode) {
	if c.GroupSavingInProgress() {
		return
	}
	items := c.selection.Items
	startable := filter(items, isStartable)

	run := func(confirmed bool) {
		for _, it := range items {
			switch {
			case confirmed && isStartable(it), it.Kind() == vmitem.KindLocal && it.IsRunningHeadless():
				c.launch(it, mode)
			case it.CanBeSwitchedTo():
				c.ui.Open(Request{Kind: RequestSwitchToMachine, MachineID: it.ID()})
			}
		}
		c.update()
	}
	if len(startable) <= 1 {
		run(true)
		return
	}
	c.ui.Confirm(Prompt{
		Title:   "Start Virtual Machines",
		Message: "Are you sure you want to start the following virtual machines?",
		Names:   names(startable),
		OK:      "Start",
	}, run)
}

func (c *Controller) launch(it vmitem.Item, mode defs.LaunchMode) {
	switch it.Kind() {
	case vmitem.KindLocal:
		if mode == defs.LaunchModeInvalid {
			switch {
			case it.IsRunningHeadless():
				mode = defs.LaunchModeSeparate
			case c.shiftHeld:
				mode = defs.LaunchModeHeadless
			default:
				mode = defs.LaunchModeDefault
			}
		}
		logging.Machine(logging.LevelInfo, subsystem, it.Name(), it.ID().String(), nil, "Launching in %s mode", mode)
		c.report(fmt.Sprintf("Failed to start %s", it.Name()), c.svc.LaunchMachine(c.ctx, it.ID(), mode))
	case vmitem.KindCloudReal:
		id := it.ID()
		c.runTask(fmt.Sprintf("Starting %s", it.Name()), func(ctx context.Context, _ progress.Reporter) error {
			return c.svc.StartCloudMachine(ctx, id)
		}, func(error) { refreshCloud([]vmitem.Item{it}) })
	}
}

// Discard drops the saved state of local VMs and terminates cloud VMs,
// each after its own confirmation.
func (c *Controller) Discard() {
	candidates := filter(c.selection.Items, isDiscardable)
	locals := filter(candidates, isLocal)
	clouds := filter(candidates, isCloudReal)

	terminate := func() {
		if len(clouds) == 0 {
			return
		}
		c.ui.Confirm(Prompt{
			Title:   "Terminate Cloud Machines",
			Message: "Are you sure you want to terminate the following cloud virtual machines?",
			Names:   names(clouds),
			OK:      "Terminate",
		}, func(ok bool) {
			if !ok {
				return
			}
			c.runTask("Terminating cloud machines", func(ctx context.Context, report progress.Reporter) error {
				g, ctx := errgroup.WithContext(ctx)
				for _, it := range clouds {
					id := it.ID()
					g.Go(func() error { return c.svc.TerminateCloudMachine(ctx, id) })
				}
				return g.Wait()
			}, func(error) { refreshCloud(clouds) })
		})
	}

	if len(locals) == 0 {
		terminate()
		return
	}
	c.ui.Confirm(Prompt{
		Title:   "Discard Saved State",
		Message: "Are you sure you want to discard the saved state of the following virtual machines?",
		Names:   names(locals),
		OK:      "Discard",
	}, func(ok bool) {
		if ok {
			for _, it := range locals {
				c.report(fmt.Sprintf("Failed to discard the saved state of %s", it.Name()),
					c.svc.DiscardSavedState(c.ctx, it.ID()))
			}
			c.update()
		}
		terminate()
	})
}

// SetPaused pauses or resumes the started local VMs that are not already
// in the requested state.
func (c *Controller) SetPaused(pause bool) {
	for _, it := range c.selection.Items {
		if it.Kind() != vmitem.KindLocal || !it.IsStarted() || it.IsPaused() == pause {
			continue
		}
		if pause {
			c.report(fmt.Sprintf("Failed to pause %s", it.Name()), c.svc.Pause(c.ctx, it.ID()))
		} else {
			c.report(fmt.Sprintf("Failed to resume %s", it.Name()), c.svc.Resume(c.ctx, it.ID()))
		}
	}
	c.update()
}

// Reset hard-resets the running local VMs after confirmation.
func (c *Controller) Reset() {
	running := filter(c.selection.Items, func(it vmitem.Item) bool { return isLocal(it) && it.IsRunning() })
	if len(running) == 0 {
		return
	}
	c.ui.Confirm(Prompt{
		Title:   "Reset Virtual Machines",
		Message: "Do you really want to reset the following virtual machines? Unsaved data of applications running inside will be lost.",
		Names:   names(running),
		OK:      "Reset",
	}, func(ok bool) {
		if !ok {
			return
		}
		for _, it := range running {
			c.report(fmt.Sprintf("Failed to reset %s", it.Name()), c.svc.Reset(c.ctx, it.ID()))
		}
		c.update()
	})
}

// Detach closes the windows of running local VMs and keeps them running
// in the background.
func (c *Controller) Detach() {
	for _, it := range c.selection.Items {
		if isLocal(it) && it.IsStarted() && it.CanBeSwitchedTo() {
			c.report(fmt.Sprintf("Failed to detach %s", it.Name()), c.svc.Detach(c.ctx, it.ID()))
		}
	}
	c.update()
}

// SaveState saves the started local VMs, pausing running ones first.
func (c *Controller) SaveState() {
	started := filter(c.selection.Items, func(it vmitem.Item) bool { return isLocal(it) && it.IsStarted() })
	if len(started) == 0 {
		return
	}
	type target struct {
		id     uuid.UUID
		paused bool
	}
	targets := make([]target, 0, len(started))
	for _, it := range started {
		targets = append(targets, target{id: it.ID(), paused: it.IsPaused()})
	}
	c.runTask("Saving the virtual machine state", func(ctx context.Context, report progress.Reporter) error {
		g, ctx := errgroup.WithContext(ctx)
		for _, t := range targets {
			g.Go(func() error {
				if !t.paused {
					if err := c.svc.Pause(ctx, t.id); err != nil {
						return err
					}
				}
				return c.svc.SaveState(ctx, t.id)
			})
		}
		return g.Wait()
	}, nil)
}

// Shutdown presses the ACPI power button of local VMs and shuts cloud VMs
// down, after confirmation. VMs unable to shut down are left alone.
func (c *Controller) Shutdown() {
	able := filter(c.selection.Items, isAbleToShutdown)
	if len(able) == 0 {
		return
	}
	c.ui.Confirm(Prompt{
		Title:   "ACPI Shutdown",
		Message: "Do you really want to send an ACPI shutdown signal to the following virtual machines?",
		Names:   names(able),
		OK:      "ACPI Shutdown",
	}, func(ok bool) {
		if !ok {
			return
		}
		clouds := filter(able, isCloudReal)
		for _, it := range filter(able, isLocal) {
			c.report(fmt.Sprintf("Failed to send the ACPI power button press to %s", it.Name()),
				c.svc.ACPIShutdown(c.ctx, it.ID()))
		}
		if len(clouds) > 0 {
			c.runTask("Shutting down cloud machines", func(ctx context.Context, report progress.Reporter) error {
				g, ctx := errgroup.WithContext(ctx)
				for _, it := range clouds {
					id := it.ID()
					g.Go(func() error { return c.svc.CloudShutdown(ctx, id) })
				}
				return g.Wait()
			}, func(error) { refreshCloud(clouds) })
		}
		c.update()
	})
}

// PowerOff turns the started VMs off after confirmation.
func (c *Controller) PowerOff() {
	started := filter(c.selection.Items, vmitem.Item.IsStarted)
	if len(started) == 0 {
		return
	}
	c.ui.Confirm(Prompt{
		Title:   "Power Off",
		Message: "Do you really want to power off the following virtual machines? Unsaved data of applications running inside will be lost.",
		Names:   names(started),
		OK:      "Power Off",
	}, func(ok bool) {
		if !ok {
			return
		}
		clouds := filter(started, isCloudReal)
		c.runTask("Powering off virtual machines", func(ctx context.Context, report progress.Reporter) error {
			g, ctx := errgroup.WithContext(ctx)
			for i, it := range started {
				id, local := it.ID(), isLocal(it)
				g.Go(func() error {
					defer report(100*(i+1)/len(started), fmt.Sprintf("Powering off %s", it.Name()))
					if local {
						return c.svc.PowerDown(ctx, id)
					}
					return c.svc.CloudPowerDown(ctx, id)
				})
			}
			return g.Wait()
		}, func(error) { refreshCloud(clouds) })
	})
}

// Refresh re-reads inaccessible VMs and asks cloud VMs for fresh state.
func (c *Controller) Refresh() {
	for _, it := range c.selection.Items {
		switch {
		case isCloudReal(it):
			it.(*vmitem.Cloud).UpdateInfoAsync(false, false)
		case !it.Accessible():
			it.Recache(c.ctx)
		}
	}
	c.update()
}

// Remove unregisters local VMs and terminates cloud VMs after
// confirmation.
func (c *Controller) Remove() {
	removable := filter(c.selection.Items, vmitem.Item.IsRemovable)
	if len(removable) == 0 {
		return
	}
	c.ui.Confirm(Prompt{
		Title:   "Remove Virtual Machines",
		Message: "You are about to remove the following virtual machines from the machine list:",
		Names:   names(removable),
		OK:      "Remove",
	}, func(ok bool) {
		if !ok {
			return
		}
		for _, it := range filter(removable, isLocal) {
			c.report(fmt.Sprintf("Failed to remove %s", it.Name()), c.svc.UnregisterMachine(c.ctx, it.ID()))
		}
		if clouds := filter(removable, isCloudReal); len(clouds) > 0 {
			c.runTask("Removing cloud machines", func(ctx context.Context, report progress.Reporter) error {
				g, ctx := errgroup.WithContext(ctx)
				for _, it := range clouds {
					id := it.ID()
					g.Go(func() error { return c.svc.TerminateCloudMachine(ctx, id) })
				}
				return g.Wait()
			}, func(error) { refreshCloud(clouds) })
		}
		c.update()
	})
}

// Clone asks for a name and clones the selected local VM.
func (c *Controller) Clone() {
	it := c.singleLocal()
	if it == nil {
		return
	}
	id := it.ID()
	c.ui.AskText(Prompt{Title: "Clone Virtual Machine", Message: "Name of the new machine:"}, it.Name()+" Clone", func(name string) {
		c.runTask(fmt.Sprintf("Cloning %s", it.Name()), func(ctx context.Context, _ progress.Reporter) error {
			_, err := c.svc.CloneMachine(ctx, id, name)
			return err
		}, nil)
	})
}

// Move asks for a folder and moves the selected local VM there.
func (c *Controller) Move() {
	it := c.singleLocal()
	if it == nil {
		return
	}
	id := it.ID()
	initial := c.svc.SystemProperties().DefaultMachineFolder
	c.ui.AskText(Prompt{Title: "Move Virtual Machine", Message: "Destination folder:"}, initial, func(folder string) {
		if folder == "" {
			return
		}
		c.runTask(fmt.Sprintf("Moving %s", it.Name()), func(ctx context.Context, _ progress.Reporter) error {
			return c.svc.MoveMachine(ctx, id, folder)
		}, func(err error) {
			if err == nil {
				it.Recache(c.ctx)
			}
		})
	})
}

func (c *Controller) singleLocal() *vmitem.Local {
	if len(c.selection.Items) != 1 {
		return nil
	}
	l, _ := c.selection.Items[0].(*vmitem.Local)
	return l
}

// AddMachine registers the VM whose settings file is path.
func (c *Controller) AddMachine(path string) {
	if ok, err := afero.Exists(c.fs, path); err != nil || !ok {
		c.report("Failed to add machine", fmt.Errorf("%w: settings file %s not found", ErrMissingDependency, path))
		return
	}
	m, err := c.svc.RegisterMachine(c.ctx, path)
	if err != nil {
		c.report(fmt.Sprintf("Failed to add %s", path), err)
		return
	}
	logging.Info(subsystem, "Registered machine %s from %s", m.Name, path)
}

// ShowInFileManager reveals the settings files of the accessible local
// VMs.
func (c *Controller) ShowInFileManager() {
	if c.desktop == nil {
		return
	}
	for _, it := range vmitem.Locals(c.selection.Items) {
		if it.Accessible() {
			c.report("Failed to open the file manager", c.desktop.OpenInFileManager(it.SettingsFile()))
		}
	}
}

// CreateShortcut writes desktop launchers for the selected local VMs.
func (c *Controller) CreateShortcut() {
	if c.desktop == nil {
		return
	}
	for _, it := range vmitem.Locals(c.selection.Items) {
		if supportsShortcut(it) {
			c.report(fmt.Sprintf("Failed to create a shortcut for %s", it.Name()),
				c.desktop.CreateMachineShortcut(it.SettingsFile(), c.shortcutDir, it.Name(), it.ID()))
		}
	}
}

// openWizard asks the UI to show a wizard and keeps the action that
// opened it disabled until the wizard is done.
func (c *Controller) openWizard(idx actionpool.Index, r Request) {
	r.Kind = RequestWizard
	c.openGuarded(idx, r)
}

func (c *Controller) openGuarded(idx actionpool.Index, r Request) {
	a := c.pool.Action(idx)
	if a == nil {
		c.ui.Open(r)
		return
	}
	release := a.Open()
	r.Done = func() {
		release()
		c.update()
	}
	c.update()
	c.ui.Open(r)
}

// NewMachine opens the new VM wizard in the selected group, or the cloud
// VM wizard for a cloud selection.
func (c *Controller) NewMachine(idx actionpool.Index) {
	r := Request{Wizard: defs.WizardTypeNewVM, Group: c.targetGroup()}
	if c.cloudTargeted() {
		r.Wizard = defs.WizardTypeNewCloudVM
	}
	c.openWizard(idx, r)
}

// AddExisting asks for a settings file to register, or opens the add
// cloud VM wizard for a cloud selection.
func (c *Controller) AddExisting(idx actionpool.Index) {
	if c.cloudTargeted() {
		c.openWizard(idx, Request{Wizard: defs.WizardTypeAddCloudVM})
		return
	}
	initial := c.svc.SystemProperties().DefaultMachineFolder
	c.ui.AskText(Prompt{Title: "Add Virtual Machine", Message: "Settings file:"}, initial, c.AddMachine)
}

func (c *Controller) cloudTargeted() bool {
	if c.selection.CloudGroup {
		return true
	}
	items := c.selection.Items
	return c.selection.Kind() != SelectionGlobal && len(items) > 0 && items[0].Kind() != vmitem.KindLocal
}

func (c *Controller) targetGroup() string {
	switch c.selection.Kind() {
	case SelectionSingleGroup:
		return c.selection.Group
	case SelectionSingleMachine:
		if l, ok := c.selection.Items[0].(*vmitem.Local); ok && len(l.Groups()) > 0 {
			return l.Groups()[0]
		}
	}
	return "/"
}

// ResetWarnings re-enables every suppressed message.
func (c *Controller) ResetWarnings() {
	c.report("Failed to reset warnings", c.store.Set(extradata.KeySuppressedMessages, ""))
}

// machineBySettingsFile finds a registered local VM.
func (c *Controller) machineBySettingsFile(path string) *vmitem.Local {
	for _, it := range vmitem.Locals(c.items) {
		if c.sameFile(it.SettingsFile(), path) {
			return it
		}
	}
	return nil
}

func (c *Controller) sameFile(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	ia, errA := c.fs.Stat(a)
	ib, errB := c.fs.Stat(b)
	return errA == nil && errB == nil && os.SameFile(ia, ib)
}
