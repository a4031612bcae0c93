package manager

import (
	"vboxmanager/internal/actionpool"
	"vboxmanager/internal/defs"
	"vboxmanager/internal/vmitem"
)

// toolToggles pairs machine tools with their Group and Machine menu
// toggles.
var toolToggles = map[defs.ToolType][2]actionpool.Index{
	defs.ToolTypeDetails:     {actionpool.GroupToolsDetails, actionpool.MachineToolsDetails},
	defs.ToolTypeSnapshots:   {actionpool.GroupToolsSnapshots, actionpool.MachineToolsSnapshots},
	defs.ToolTypeLogs:        {actionpool.GroupToolsLogs, actionpool.MachineToolsLogs},
	defs.ToolTypePerformance: {actionpool.GroupToolsPerformance, actionpool.MachineToolsPerformance},
}

func (c *Controller) setVisible(idx actionpool.Index, visible bool) {
	if a := c.pool.Action(idx); a != nil {
		a.SetVisible(visible)
	}
}

// updateActionsVisibility shows exactly one of the Welcome, Group and
// Machine menus and the tool menus matching the current tool.
func (c *Controller) updateActionsVisibility() {
	kind := c.selection.Kind()
	globalShown := kind == SelectionGlobal
	groupShown := kind == SelectionSingleGroup
	machineShown := kind == SelectionSingleMachine || kind == SelectionMultipleMachines

	c.setVisible(actionpool.MenuWelcome, globalShown)
	c.setVisible(actionpool.MenuGroup, groupShown)
	c.setVisible(actionpool.MenuMachine, machineShown)

	globalTool := defs.ToolTypeInvalid
	if globalShown && c.tools.Class() == defs.ToolClassGlobal {
		globalTool = c.tools.Type()
	}
	c.setVisible(actionpool.MenuMedium, globalTool == defs.ToolTypeMedia)
	c.setVisible(actionpool.MenuNetwork, globalTool == defs.ToolTypeNetwork)
	c.setVisible(actionpool.MenuCloud, globalTool == defs.ToolTypeCloud)
	c.setVisible(actionpool.MenuVMResourceMonitor, globalTool == defs.ToolTypeResources)

	machineTool := defs.ToolTypeInvalid
	if groupShown || machineShown {
		machineTool = c.currentMachineTool()
	}
	c.setVisible(actionpool.MenuSnapshot, machineTool == defs.ToolTypeSnapshots)
	c.setVisible(actionpool.MenuLog, machineTool == defs.ToolTypeLogs)
	c.setVisible(actionpool.MenuPerformance, machineTool == defs.ToolTypePerformance)
}

// updateActionsAppearance recomputes enablement, visual states and toggle
// states from the selection.
func (c *Controller) updateActionsAppearance() {
	items := c.selection.Items
	for _, idx := range enablementActions {
		if a := c.pool.Action(idx); a != nil {
			a.SetEnabled(c.actionEnabled(idx, items))
		}
	}

	var first vmitem.Item
	if len(items) > 0 {
		first = items[0]
	}

	discardState := 0
	if first != nil && first.Kind() != vmitem.KindLocal {
		discardState = 1
	}
	c.pool.Action(actionpool.GroupDiscard).SetState(discardState)
	c.pool.Action(actionpool.MachineDiscard).SetState(discardState)

	startState := 0
	if first != nil && first.Accessible() && !first.IsPoweredOff() {
		startState = 1
	}
	c.pool.Action(actionpool.MenuGroupStartOrShow).SetState(startState)
	c.pool.Action(actionpool.MenuMachineStartOrShow).SetState(startState)

	paused := false
	if started := firstStarted(items); started != nil {
		paused = started.IsPaused()
	}
	c.pool.Action(actionpool.GroupPause).SetChecked(paused)
	c.pool.Action(actionpool.MachinePause).SetChecked(paused)

	if pair, ok := toolToggles[c.tools.LastType(defs.ToolClassMachine)]; ok {
		c.pool.Action(pair[0]).SetChecked(true)
		c.pool.Action(pair[1]).SetChecked(true)
	}
}
