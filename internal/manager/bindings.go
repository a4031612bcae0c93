package manager

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"vboxmanager/internal/actionpool"
	"vboxmanager/internal/defs"
	"vboxmanager/internal/extradata"
	"vboxmanager/internal/progress"
	"vboxmanager/internal/vmservice"
	"vboxmanager/pkg/logging"
)

// Help pages opened by the Help menu.
const (
	helpWebSiteURL    = "https://www.virtualbox.org"
	helpBugTrackerURL = "https://www.virtualbox.org/wiki/Bugtracker"
	helpForumsURL     = "https://forums.virtualbox.org"
	helpOracleURL     = "https://www.oracle.com/us/technologies/virtualization/virtualbox/index.html"
	helpContentsURL   = "https://www.virtualbox.org/manual"
)

func (c *Controller) on(idx actionpool.Index, fn func()) {
	if a := c.pool.Action(idx); a != nil {
		a.OnTrigger(func(*actionpool.Action) { fn() })
	}
}

func (c *Controller) onAction(idx actionpool.Index, fn func(a *actionpool.Action)) {
	if a := c.pool.Action(idx); a != nil {
		a.OnTrigger(fn)
	}
}

// bindActions connects every manager action to its operation.
func (c *Controller) bindActions() {
	c.on(actionpool.ApplicationPreferences, func() {
		c.openGuarded(actionpool.ApplicationPreferences, Request{Kind: RequestGlobalSettings})
	})
	c.on(actionpool.ApplicationNetworkAccessManager, func() {
		c.openGuarded(actionpool.ApplicationNetworkAccessManager, Request{Kind: RequestNetworkAccessManager})
	})
	c.on(actionpool.ApplicationCheckForUpdates, func() {
		c.openGuarded(actionpool.ApplicationCheckForUpdates, Request{Kind: RequestCheckForUpdates})
	})
	c.on(actionpool.ApplicationResetWarnings, c.ResetWarnings)
	c.on(actionpool.ApplicationClose, c.quit)
	c.on(actionpool.FileClose, c.quit)

	for idx, url := range map[actionpool.Index]string{
		actionpool.HelpContents:   helpContentsURL,
		actionpool.HelpWebSite:    helpWebSiteURL,
		actionpool.HelpBugTracker: helpBugTrackerURL,
		actionpool.HelpForums:     helpForumsURL,
		actionpool.HelpOracle:     helpOracleURL,
	} {
		c.on(idx, func() { c.openURL(url) })
	}

	c.on(actionpool.FileShowVirtualMediumManager, func() { c.OpenDialog(DialogMedia) })
	c.on(actionpool.FileShowHostNetworkManager, func() { c.OpenDialog(DialogHostNetwork) })
	c.on(actionpool.FileShowCloudProfileManager, func() { c.OpenDialog(DialogCloudProfile) })
	c.on(actionpool.FileImportAppliance, func() {
		c.openWizard(actionpool.FileImportAppliance, Request{Wizard: defs.WizardTypeImportAppliance})
	})
	c.on(actionpool.FileExportAppliance, func() {
		c.openWizard(actionpool.FileExportAppliance, Request{Wizard: defs.WizardTypeExportAppliance, MachineID: c.firstLocalID()})
	})

	for _, idx := range []actionpool.Index{actionpool.WelcomeNew, actionpool.GroupNew, actionpool.MachineNew} {
		c.on(idx, func() { c.NewMachine(idx) })
	}
	for _, idx := range []actionpool.Index{actionpool.WelcomeAdd, actionpool.GroupAdd, actionpool.MachineAdd} {
		c.on(idx, func() { c.AddExisting(idx) })
	}

	c.on(actionpool.GroupRename, c.RenameGroup)
	c.on(actionpool.GroupRemove, c.UngroupGroup)
	c.on(actionpool.MachineMoveToGroupNew, c.MoveToNewGroup)
	c.on(actionpool.GroupSort, c.SortItems)
	c.on(actionpool.MachineSortParent, c.SortItems)
	c.on(actionpool.GroupSearch, c.search)
	c.on(actionpool.MachineSearch, c.search)

	c.on(actionpool.MachineSettings, func() {
		if len(c.selection.Items) == 1 {
			c.openGuarded(actionpool.MachineSettings, Request{Kind: RequestMachineSettings, MachineID: c.selection.Items[0].ID()})
		}
	})
	c.on(actionpool.MachineClone, c.Clone)
	c.on(actionpool.MachineMove, c.Move)
	c.on(actionpool.MachineExportToOCI, func() {
		c.openWizard(actionpool.MachineExportToOCI, Request{Wizard: defs.WizardTypeExportAppliance, MachineID: c.firstLocalID()})
	})
	c.on(actionpool.MachineRemove, c.Remove)

	// The Start/Show menus themselves are not triggerable; the window
	// calls StartOrShow with LaunchModeInvalid for them.
	for _, group := range [][3]actionpool.Index{
		{actionpool.GroupStartOrShowStartNormal, actionpool.GroupStartOrShowStartHeadless, actionpool.GroupStartOrShowStartDetachable},
		{actionpool.MachineStartOrShowStartNormal, actionpool.MachineStartOrShowStartHeadless, actionpool.MachineStartOrShowStartDetachable},
	} {
		c.on(group[0], func() { c.StartOrShow(defs.LaunchModeDefault) })
		c.on(group[1], func() { c.StartOrShow(defs.LaunchModeHeadless) })
		c.on(group[2], func() { c.StartOrShow(defs.LaunchModeSeparate) })
	}

	for _, idx := range []actionpool.Index{actionpool.GroupPause, actionpool.MachinePause} {
		c.onAction(idx, func(a *actionpool.Action) { c.SetPaused(a.Checked()) })
	}
	c.on(actionpool.GroupReset, c.Reset)
	c.on(actionpool.MachineReset, c.Reset)
	c.on(actionpool.GroupCloseDetach, c.Detach)
	c.on(actionpool.MachineCloseDetach, c.Detach)
	c.on(actionpool.GroupCloseSaveState, c.SaveState)
	c.on(actionpool.MachineCloseSaveState, c.SaveState)
	c.on(actionpool.GroupCloseShutdown, c.Shutdown)
	c.on(actionpool.MachineCloseShutdown, c.Shutdown)
	c.on(actionpool.GroupClosePowerOff, c.PowerOff)
	c.on(actionpool.MachineClosePowerOff, c.PowerOff)
	c.on(actionpool.GroupDiscard, c.Discard)
	c.on(actionpool.MachineDiscard, c.Discard)
	c.on(actionpool.GroupRefresh, c.Refresh)
	c.on(actionpool.MachineRefresh, c.Refresh)
	c.on(actionpool.GroupShowLogDialog, c.ShowLogDialog)
	c.on(actionpool.MachineShowLogDialog, c.ShowLogDialog)
	c.on(actionpool.GroupShowInFileManager, c.ShowInFileManager)
	c.on(actionpool.MachineShowInFileManager, c.ShowInFileManager)
	c.on(actionpool.GroupCreateShortcut, c.CreateShortcut)
	c.on(actionpool.MachineCreateShortcut, c.CreateShortcut)

	c.on(actionpool.GroupConsoleCreateConnection, c.CreateConsoleConnection)
	c.on(actionpool.MachineConsoleCreateConnection, c.CreateConsoleConnection)
	c.on(actionpool.GroupConsoleDeleteConnection, c.DeleteConsoleConnection)
	c.on(actionpool.MachineConsoleDeleteConnection, c.DeleteConsoleConnection)
	c.on(actionpool.GroupConsoleConfigureApplications, func() { c.OpenDialog(DialogCloudConsole) })
	c.on(actionpool.MachineConsoleConfigureApplications, func() { c.OpenDialog(DialogCloudConsole) })
	for idx, kind := range map[actionpool.Index]vmservice.ConsoleCommand{
		actionpool.MachineConsoleCopyCommandSerialUnix:    vmservice.ConsoleSerialUnix,
		actionpool.MachineConsoleCopyCommandSerialWindows: vmservice.ConsoleSerialWindows,
		actionpool.MachineConsoleCopyCommandVNCUnix:       vmservice.ConsoleVNCUnix,
		actionpool.MachineConsoleCopyCommandVNCWindows:    vmservice.ConsoleVNCWindows,
	} {
		c.on(idx, func() { c.CopyConsoleCommand(kind) })
	}

	for tool, pair := range toolToggles {
		for _, idx := range pair {
			c.onAction(idx, func(a *actionpool.Action) {
				if a.Checked() {
					c.tools.SetType(tool)
				}
			})
		}
	}
	for idx, tool := range map[actionpool.Index]defs.ToolType{
		actionpool.ToolsGlobalVirtualMediaManager: defs.ToolTypeMedia,
		actionpool.ToolsGlobalHostNetworkManager:  defs.ToolTypeNetwork,
		actionpool.ToolsGlobalCloudProfileManager: defs.ToolTypeCloud,
		actionpool.ToolsGlobalVMResourceMonitor:   defs.ToolTypeResources,
	} {
		c.on(idx, func() { c.ShowGlobalTool(tool) })
	}

	c.on(actionpool.SnapshotTake, c.TakeSnapshot)

	c.on(actionpool.NetworkCreate, c.createNetwork)
	c.on(actionpool.NetworkRemove, c.removeNetwork)
	c.on(actionpool.NetworkRefresh, c.refreshNetworks)
	c.onAction(actionpool.NetworkDetails, func(a *actionpool.Action) {
		if m := c.NetworkManager(); m != nil {
			m.SetDetailsVisible(a.Checked())
		}
	})

	c.on(actionpool.CloudAdd, c.addCloudProfile)
	c.on(actionpool.CloudImport, c.importCloudProfiles)
	c.on(actionpool.CloudRemove, c.removeCloudProfile)
	c.onAction(actionpool.CloudDetails, func(a *actionpool.Action) {
		if m := c.CloudProfileManager(); m != nil {
			m.SetDetailsVisible(a.Checked())
		}
	})
	c.on(actionpool.CloudTryPage, func() {
		if m := c.CloudProfileManager(); m != nil && c.desktop != nil {
			c.report("Failed to open the try page", m.ShowTryPage())
		}
	})
	c.on(actionpool.CloudHelp, func() {
		if m := c.CloudProfileManager(); m != nil && c.desktop != nil {
			c.report("Failed to open the help page", m.ShowHelp())
		}
	})
	c.on(actionpool.CloudConsoleApplicationAdd, c.AddConsoleApplication)

	c.on(actionpool.LogRefresh, c.refreshLog)
	c.on(actionpool.LogSave, c.saveLog)
}

// prepareMenu fills the menus whose content depends on the selection.
func (c *Controller) prepareMenu(idx actionpool.Index, m *actionpool.Menu) {
	switch idx {
	case actionpool.MenuGroupMoveToGroup, actionpool.MenuMachineMoveToGroup:
		c.prepareMoveToGroupMenu(idx, m)
	case actionpool.MenuGroupConsole, actionpool.MenuMachineConsole:
		c.prepareConsoleMenu(idx, m)
	case actionpool.MenuGroupClose, actionpool.MenuMachineClose:
		// The guest may have entered ACPI mode since the last update.
		items := c.selection.Items
		for _, sidx := range []actionpool.Index{actionpool.GroupCloseShutdown, actionpool.MachineCloseShutdown} {
			c.pool.Action(sidx).SetEnabled(c.actionEnabled(sidx, items))
		}
	}
}

func (c *Controller) quit() {
	c.ui.Open(Request{Kind: RequestQuit})
}

func (c *Controller) search() {
	c.ui.Open(Request{Kind: RequestSearch, Group: c.targetGroup()})
}

func (c *Controller) openURL(url string) {
	if c.desktop == nil {
		return
	}
	c.report("Failed to open "+url, c.desktop.OpenURL(url))
}

func (c *Controller) firstLocalID() uuid.UUID {
	for _, it := range c.selection.Items {
		if isLocal(it) {
			return it.ID()
		}
	}
	return uuid.Nil
}

// ShowGlobalTool selects the global tools row and switches to tool.
func (c *Controller) ShowGlobalTool(tool defs.ToolType) {
	if c.selection.Kind() != SelectionGlobal {
		c.SetSelection(GlobalSelection())
	}
	c.tools.SetType(tool)
	c.update()
}

// TakeSnapshot asks for a name and snapshots the selected local VM.
func (c *Controller) TakeSnapshot() {
	it := c.singleLocal()
	if it == nil {
		return
	}
	id := it.ID()
	initial := fmt.Sprintf("Snapshot %d", it.Machine().SnapshotCount+1)
	c.ui.AskText(Prompt{Title: "Take Snapshot", Message: "Snapshot name:"}, initial, func(name string) {
		c.runTask(fmt.Sprintf("Taking snapshot of %s", it.Name()), func(ctx context.Context, _ progress.Reporter) error {
			return c.svc.TakeSnapshot(ctx, id, name)
		}, nil)
	})
}

// AddConsoleApplication asks for "name,path,arguments" and stores a new
// cloud console application.
func (c *Controller) AddConsoleApplication() {
	c.ui.AskText(Prompt{Title: "Add Application", Message: "Name, path and arguments separated by commas:"}, "", func(text string) {
		fields := strings.SplitN(text, ",", 3)
		if len(fields) < 2 || strings.TrimSpace(fields[0]) == "" || strings.TrimSpace(fields[1]) == "" {
			c.report("Failed to add the console application", fmt.Errorf("%w: application name and path", ErrMissingDependency))
			return
		}
		app := extradata.ConsoleApplication{
			ID:   uuid.NewString(),
			Name: strings.TrimSpace(fields[0]),
			Path: strings.TrimSpace(fields[1]),
		}
		if len(fields) == 3 {
			app.Args = strings.TrimSpace(fields[2])
		}
		if err := c.store.SetConsoleApplication(app); err != nil {
			c.report("Failed to add the console application", err)
			return
		}
		logging.Info(subsystem, "Added console application %s", app.Name)
	})
}
