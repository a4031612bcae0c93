package manager

import (
	"path/filepath"
	"strings"

	"vboxmanager/internal/actionpool"
	"vboxmanager/internal/defs"
	"vboxmanager/internal/vmitem"
)

// settingsFileSuffix is the extension of the current settings format.
const settingsFileSuffix = ".vbox"

func isItemsLocal(items []vmitem.Item) bool {
	return vmitem.AllLocal(items)
}

func isItemsPoweredOff(items []vmitem.Item) bool {
	for _, it := range items {
		if !it.IsPoweredOff() {
			return false
		}
	}
	return true
}

func anyItem(items []vmitem.Item, pred func(vmitem.Item) bool) bool {
	for _, it := range items {
		if pred(it) {
			return true
		}
	}
	return false
}

func isStartable(it vmitem.Item) bool {
	return it.IsPoweredOff() && it.IsEditable()
}

func isShowable(it vmitem.Item) bool {
	return it.CanBeSwitchedTo() || it.IsRunningHeadless() && it.Kind() == vmitem.KindLocal
}

func isDiscardable(it vmitem.Item) bool {
	return (it.IsSaved() && it.Kind() == vmitem.KindLocal || it.Kind() == vmitem.KindCloudReal) && it.IsEditable()
}

// isAbleToShutdown holds for local VMs whose guest accepts the ACPI power
// button and for running cloud VMs.
func isAbleToShutdown(it vmitem.Item) bool {
	switch it := it.(type) {
	case *vmitem.Local:
		return it.ACPIEntered()
	case *vmitem.Cloud:
		return it.Kind() == vmitem.KindCloudReal && it.IsRunning()
	}
	return false
}

func supportsShortcut(it vmitem.Item) bool {
	l, ok := it.(*vmitem.Local)
	return ok && l.Accessible() && strings.EqualFold(filepath.Ext(l.SettingsFile()), settingsFileSuffix)
}

func isAtLeastOneItemCanBeStartedOrShown(items []vmitem.Item) bool {
	return anyItem(items, func(it vmitem.Item) bool { return isStartable(it) || isShowable(it) })
}

func isAtLeastOneItemStarted(items []vmitem.Item) bool {
	return anyItem(items, vmitem.Item.IsStarted)
}

func isAtLeastOneItemRunning(items []vmitem.Item) bool {
	return anyItem(items, vmitem.Item.IsRunning)
}

func isAtLeastOneItemAccessible(items []vmitem.Item) bool {
	return anyItem(items, vmitem.Item.Accessible)
}

func isAtLeastOneItemInaccessible(items []vmitem.Item) bool {
	return anyItem(items, func(it vmitem.Item) bool { return !it.Accessible() })
}

func isAtLeastOneItemRemovable(items []vmitem.Item) bool {
	return anyItem(items, vmitem.Item.IsRemovable)
}

// firstStarted returns the first started item, or nil.
func firstStarted(items []vmitem.Item) vmitem.Item {
	for _, it := range items {
		if it.IsStarted() {
			return it
		}
	}
	return nil
}

func (c *Controller) currentMachineTool() defs.ToolType {
	if c.tools.Class() != defs.ToolClassMachine {
		return defs.ToolTypeInvalid
	}
	return c.tools.Type()
}

// snapshotsAllowStart is false while a snapshot other than the current
// state is selected in the snapshot pane.
func (c *Controller) snapshotsAllowStart() bool {
	return c.currentMachineTool() != defs.ToolTypeSnapshots || c.currentStateSelected
}

func (c *Controller) isSingleGroupSelected() bool {
	return c.selection.Kind() == SelectionSingleGroup
}

func (c *Controller) isSingleLocalGroupSelected() bool {
	return c.isSingleGroupSelected() && !c.selection.CloudGroup
}

func (c *Controller) isSingleCloudProfileGroupSelected() bool {
	return c.isSingleGroupSelected() && c.selection.CloudGroup
}

// actionEnabled computes whether the action at idx applies to items.
func (c *Controller) actionEnabled(idx actionpool.Index, items []vmitem.Item) bool {
	switch idx {
	case actionpool.ApplicationPreferences,
		actionpool.FileExportAppliance,
		actionpool.FileImportAppliance,
		actionpool.WelcomeNew,
		actionpool.WelcomeAdd:
		return true
	}

	if len(items) == 0 {
		return false
	}
	first := items[0]
	saving := c.GroupSavingInProgress()

	switch idx {
	case actionpool.GroupNew, actionpool.GroupAdd:
		return !saving && (c.isSingleLocalGroupSelected() || c.isSingleCloudProfileGroupSelected())
	case actionpool.GroupSort:
		return !saving && c.isSingleGroupSelected() && isItemsLocal(items)
	case actionpool.GroupSearch:
		return !saving && c.isSingleGroupSelected()
	case actionpool.GroupRename, actionpool.GroupRemove:
		return !saving && c.isSingleGroupSelected() && isItemsLocal(items) && isItemsPoweredOff(items)
	case actionpool.MachineNew, actionpool.MachineAdd:
		return !saving
	case actionpool.MachineSettings:
		return !saving && len(items) == 1 &&
			first.AccessLevel() != defs.ConfigurationAccessLevelNull &&
			c.snapshotsAllowStart()
	case actionpool.MachineClone, actionpool.MachineMove:
		return !saving && len(items) == 1 && first.Kind() == vmitem.KindLocal && first.IsEditable()
	case actionpool.MachineExportToOCI:
		return len(items) == 1 && first.Kind() == vmitem.KindLocal
	case actionpool.MachineRemove:
		return !saving && isAtLeastOneItemRemovable(items) && (isItemsLocal(items) || !c.CloudUpdateInProgress())
	case actionpool.MenuGroupMoveToGroup, actionpool.MenuMachineMoveToGroup, actionpool.MachineMoveToGroupNew:
		return !saving && isItemsLocal(items) && isItemsPoweredOff(items)
	case actionpool.MenuGroupStartOrShow, actionpool.MenuMachineStartOrShow,
		actionpool.GroupStartOrShowStartNormal, actionpool.MachineStartOrShowStartNormal:
		return !saving && isAtLeastOneItemCanBeStartedOrShown(items) && c.snapshotsAllowStart()
	case actionpool.GroupStartOrShowStartHeadless, actionpool.GroupStartOrShowStartDetachable,
		actionpool.MachineStartOrShowStartHeadless, actionpool.MachineStartOrShowStartDetachable:
		return !saving && isItemsLocal(items) && isAtLeastOneItemCanBeStartedOrShown(items) && c.snapshotsAllowStart()
	case actionpool.GroupDiscard, actionpool.MachineDiscard:
		return !saving && anyItem(items, isDiscardable) && c.snapshotsAllowStart()
	case actionpool.GroupShowLogDialog, actionpool.MachineShowLogDialog,
		actionpool.GroupShowInFileManager, actionpool.MachineShowInFileManager:
		return isItemsLocal(items) && isAtLeastOneItemAccessible(items)
	case actionpool.GroupPause, actionpool.MachinePause:
		return isItemsLocal(items) && isAtLeastOneItemStarted(items)
	case actionpool.GroupReset, actionpool.MachineReset:
		return isItemsLocal(items) && isAtLeastOneItemRunning(items)
	case actionpool.GroupRefresh, actionpool.MachineRefresh:
		return isAtLeastOneItemInaccessible(items)
	case actionpool.MachineSortParent:
		return !saving && isItemsLocal(items)
	case actionpool.GroupCreateShortcut, actionpool.MachineCreateShortcut:
		return anyItem(items, supportsShortcut)
	case actionpool.MenuGroupConsole, actionpool.MenuMachineConsole,
		actionpool.GroupConsoleCreateConnection, actionpool.GroupConsoleDeleteConnection,
		actionpool.GroupConsoleConfigureApplications,
		actionpool.MachineConsoleCreateConnection, actionpool.MachineConsoleDeleteConnection,
		actionpool.MachineConsoleCopyCommandSerialUnix, actionpool.MachineConsoleCopyCommandSerialWindows,
		actionpool.MachineConsoleCopyCommandVNCUnix, actionpool.MachineConsoleCopyCommandVNCWindows,
		actionpool.MachineConsoleConfigureApplications:
		return isAtLeastOneItemStarted(items)
	case actionpool.MenuGroupClose, actionpool.MenuMachineClose:
		return isAtLeastOneItemStarted(items)
	case actionpool.GroupCloseDetach, actionpool.MachineCloseDetach,
		actionpool.GroupCloseSaveState, actionpool.MachineCloseSaveState:
		return isItemsLocal(items) && isAtLeastOneItemStarted(items)
	case actionpool.GroupCloseShutdown, actionpool.MachineCloseShutdown:
		return isAtLeastOneItemStarted(items) && anyItem(items, isAbleToShutdown)
	case actionpool.GroupClosePowerOff, actionpool.MachineClosePowerOff:
		return isAtLeastOneItemStarted(items)
	}
	return false
}

// enablementActions lists every action whose enabled state follows the
// selection.
var enablementActions = []actionpool.Index{
	actionpool.ApplicationPreferences,
	actionpool.FileExportAppliance,
	actionpool.FileImportAppliance,
	actionpool.WelcomeNew,
	actionpool.WelcomeAdd,

	actionpool.GroupNew,
	actionpool.GroupAdd,
	actionpool.GroupRename,
	actionpool.GroupRemove,
	actionpool.MenuGroupMoveToGroup,
	actionpool.MenuGroupStartOrShow,
	actionpool.GroupStartOrShowStartNormal,
	actionpool.GroupStartOrShowStartHeadless,
	actionpool.GroupStartOrShowStartDetachable,
	actionpool.GroupPause,
	actionpool.GroupReset,
	actionpool.MenuGroupConsole,
	actionpool.GroupConsoleCreateConnection,
	actionpool.GroupConsoleDeleteConnection,
	actionpool.GroupConsoleConfigureApplications,
	actionpool.MenuGroupClose,
	actionpool.GroupCloseDetach,
	actionpool.GroupCloseSaveState,
	actionpool.GroupCloseShutdown,
	actionpool.GroupClosePowerOff,
	actionpool.GroupDiscard,
	actionpool.GroupShowLogDialog,
	actionpool.GroupRefresh,
	actionpool.GroupShowInFileManager,
	actionpool.GroupCreateShortcut,
	actionpool.GroupSort,
	actionpool.GroupSearch,

	actionpool.MachineNew,
	actionpool.MachineAdd,
	actionpool.MachineSettings,
	actionpool.MachineClone,
	actionpool.MachineMove,
	actionpool.MachineExportToOCI,
	actionpool.MachineRemove,
	actionpool.MenuMachineMoveToGroup,
	actionpool.MachineMoveToGroupNew,
	actionpool.MenuMachineStartOrShow,
	actionpool.MachineStartOrShowStartNormal,
	actionpool.MachineStartOrShowStartHeadless,
	actionpool.MachineStartOrShowStartDetachable,
	actionpool.MachinePause,
	actionpool.MachineReset,
	actionpool.MenuMachineConsole,
	actionpool.MachineConsoleCreateConnection,
	actionpool.MachineConsoleDeleteConnection,
	actionpool.MachineConsoleCopyCommandSerialUnix,
	actionpool.MachineConsoleCopyCommandSerialWindows,
	actionpool.MachineConsoleCopyCommandVNCUnix,
	actionpool.MachineConsoleCopyCommandVNCWindows,
	actionpool.MachineConsoleConfigureApplications,
	actionpool.MenuMachineClose,
	actionpool.MachineCloseDetach,
	actionpool.MachineCloseSaveState,
	actionpool.MachineCloseShutdown,
	actionpool.MachineClosePowerOff,
	actionpool.MachineDiscard,
	actionpool.MachineShowLogDialog,
	actionpool.MachineRefresh,
	actionpool.MachineShowInFileManager,
	actionpool.MachineCreateShortcut,
	actionpool.MachineSortParent,
}
