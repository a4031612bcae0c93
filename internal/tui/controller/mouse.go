package controller

import (
	"image"

	tea "github.com/charmbracelet/bubbletea"

	"vboxmanager/internal/tui/model"
	"vboxmanager/internal/tui/view"
)

// handleMouseMsg routes clicks to the chooser and the tools list and
// wheel events to the activity log. Nothing reacts while a message box or
// menu is open.
func handleMouseMsg(m *model.Model, msg tea.MouseMsg) tea.Cmd {
	if m.CurrentAppMode != model.ModeMain || m.Manager == nil || m.TopOverlay() != nil || len(m.Menus) > 0 {
		return nil
	}
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		if m.ShowLog {
			var cmd tea.Cmd
			m.LogViewport, cmd = m.LogViewport.Update(msg)
			return cmd
		}
		return nil
	}
	if msg.Button != tea.MouseButtonLeft || m.Dialog != 0 {
		return nil
	}

	switch {
	case msg.X < view.ChooserOuterWidth:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		offset, visible := view.ChooserWindow(m)
		line := msg.Y - view.ChooserRowsTop
		if line < 0 || line >= visible {
			return nil
		}
		if row := offset + line; row < len(m.Rows) {
			m.Focus = model.FocusChooser
			m.MoveCursor(row - m.Cursor)
			m.Dirty = true
		}
	case msg.X < view.PaneLeft:
		p := image.Pt(msg.X-view.ToolsLeft, msg.Y-view.ToolsTop)
		tools := m.Manager.Tools()
		switch msg.Action {
		case tea.MouseActionPress:
			if tools.MousePress(p) {
				m.Focus = model.FocusTools
			}
		case tea.MouseActionRelease:
			tools.MouseRelease(p)
		}
		m.Dirty = true
	}
	return nil
}
