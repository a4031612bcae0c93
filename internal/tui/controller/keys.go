package controller

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vboxmanager/internal/actionpool"
	"vboxmanager/internal/defs"
	"vboxmanager/internal/manager"
	"vboxmanager/internal/tui/model"
)

// paneMenus maps tool panes to the menu holding their widget-scoped
// actions.
var paneMenus = map[defs.ToolType]actionpool.Index{
	defs.ToolTypeMedia:     actionpool.MenuMedium,
	defs.ToolTypeNetwork:   actionpool.MenuNetwork,
	defs.ToolTypeCloud:     actionpool.MenuCloud,
	defs.ToolTypeResources: actionpool.MenuVMResourceMonitor,
	defs.ToolTypeSnapshots: actionpool.MenuSnapshot,
	defs.ToolTypeLogs:      actionpool.MenuLog,
}

var dialogMenus = map[manager.Dialog]actionpool.Index{
	manager.DialogHostNetwork:  actionpool.MenuNetwork,
	manager.DialogCloudProfile: actionpool.MenuCloud,
	manager.DialogLogViewer:    actionpool.MenuLog,
}

// handleKeyMsg routes a key press. Message boxes take the keyboard first,
// then open menus, then action shortcuts, then the focused pane.
func handleKeyMsg(m *model.Model, msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.Keys.ForceQuit) {
		m.QuitRequested = true
		return nil
	}
	if o := m.TopOverlay(); o != nil {
		return handleOverlayKey(m, o, msg)
	}
	if m.CurrentMenu() != nil {
		handleMenuKey(m, msg)
		return nil
	}
	if m.Manager == nil {
		return nil
	}

	switch {
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		m.Dirty = true
		return nil
	case key.Matches(msg, m.Keys.MenuBar):
		m.OpenMenuBar()
		return nil
	case key.Matches(msg, m.Keys.ToggleLog):
		m.ShowLog = !m.ShowLog
		m.Dirty = true
		return nil
	}

	pool := m.Manager.Pool()
	if pool.ProcessHotKey(msg) {
		return nil
	}
	if m.Dialog != 0 {
		if idx, ok := dialogMenus[m.Dialog]; ok && pool.ProcessWidgetHotKey(idx, msg) {
			return nil
		}
		return handleDialogKey(m, msg)
	}
	if m.Focus == model.FocusPane {
		if idx, ok := paneMenus[m.Manager.Tools().Type()]; ok && pool.ProcessWidgetHotKey(idx, msg) {
			return nil
		}
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		if a := pool.Action(actionpool.FileClose); a == nil || !a.Trigger() {
			m.QuitRequested = true
		}
		return nil
	case key.Matches(msg, m.Keys.Tab):
		m.NextFocus()
		return nil
	case key.Matches(msg, m.Keys.Context):
		m.OpenMenu(m.ContextMenuIndex())
		return nil
	}

	switch m.Focus {
	case model.FocusChooser:
		handleChooserKey(m, msg)
	case model.FocusTools:
		if m.Manager.Tools().HandleKey(msg) {
			m.Dirty = true
		}
	case model.FocusPane:
		return handlePaneKey(m, msg)
	}
	return nil
}

func handleOverlayKey(m *model.Model, o *model.Overlay, msg tea.KeyMsg) tea.Cmd {
	if o.Kind == model.OverlayText {
		switch msg.Type {
		case tea.KeyEnter:
			m.Answer(true)
			return nil
		case tea.KeyEsc:
			m.Answer(false)
			return nil
		}
		var cmd tea.Cmd
		m.TextInput, cmd = m.TextInput.Update(msg)
		m.Dirty = true
		return cmd
	}
	switch {
	case key.Matches(msg, m.Keys.Yes):
		m.Answer(true)
	case key.Matches(msg, m.Keys.No):
		m.Answer(false)
	}
	return nil
}

func handleMenuKey(m *model.Model, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.Keys.Up):
		m.MoveMenuCursor(-1)
	case key.Matches(msg, m.Keys.Down):
		m.MoveMenuCursor(1)
	case key.Matches(msg, m.Keys.Enter), key.Matches(msg, m.Keys.Right):
		m.ActivateMenuItem()
	case key.Matches(msg, m.Keys.Esc), key.Matches(msg, m.Keys.Left):
		m.CloseMenu()
	case key.Matches(msg, m.Keys.MenuBar):
		m.CloseMenus()
	}
}

func handleChooserKey(m *model.Model, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.Keys.Up):
		m.MoveCursor(-1)
	case key.Matches(msg, m.Keys.Down):
		m.MoveCursor(1)
	case key.Matches(msg, m.Keys.Mark):
		m.ToggleMark()
	case key.Matches(msg, m.Keys.Esc):
		m.ClearMarks()
	case key.Matches(msg, m.Keys.Enter):
		startOrShow(m, false)
	case key.Matches(msg, m.Keys.Headless):
		startOrShow(m, true)
	default:
		return
	}
	m.Dirty = true
}

// startOrShow runs Start/Show for the chooser selection the way a double
// click does; headless stands in for a held Shift key.
func startOrShow(m *model.Model, headless bool) {
	idx := actionpool.MenuMachineStartOrShow
	switch m.Manager.Selection().Kind() {
	case manager.SelectionGlobal:
		return
	case manager.SelectionSingleGroup:
		idx = actionpool.MenuGroupStartOrShow
	}
	if a := m.Manager.Pool().Action(idx); a == nil || !a.Enabled() {
		return
	}
	m.Manager.SetShiftHeld(headless)
	defer m.Manager.SetShiftHeld(false)
	m.Manager.StartOrShow(defs.LaunchModeInvalid)
	m.Refresh()
}
