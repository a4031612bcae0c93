package controller

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"vboxmanager/internal/tui/design"
	"vboxmanager/internal/tui/model"
	"vboxmanager/internal/tui/view"
)

// handleWindowSizeMsg updates the model with the new terminal dimensions.
// The first size message means the window is on screen, which releases
// the URLs queued on the command line.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	if m.Manager != nil {
		m.Manager.Tools().Resize(design.ToolsWidth - 2)
	}

	if m.CurrentAppMode == model.ModeInitializing {
		m.CurrentAppMode = model.ModeMain
		if !m.Shown && m.Manager != nil {
			m.Shown = true
			m.Manager.Shown()
		}
	}
	m.Dirty = true
	return m, nil
}

// syncViewports sizes the scrolled areas to the current layout and loads
// the page of the log viewer on screen.
func syncViewports(m *model.Model) {
	if m.Width == 0 || m.Manager == nil {
		return
	}
	l := view.ComputeLayout(m)
	m.LogViewport.Width = l.LogWidth
	m.LogViewport.Height = view.LogLines
	m.DialogViewport.Width = l.PaneWidth
	m.DialogViewport.Height = l.ViewportHeight()
	if v := view.ActiveLogViewer(m); v != nil {
		if p := v.Current(); p != nil {
			m.DialogViewport.SetContent(strings.Join(p.Lines(), "\n"))
		}
	}
}
