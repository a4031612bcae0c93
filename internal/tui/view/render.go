// Package view renders the window model. Rendering never changes the
// model beyond opening the log viewer that the Logs pane shows.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"vboxmanager/internal/tui/design"
	"vboxmanager/internal/tui/model"
)

// Render draws the whole window.
func Render(m *model.Model) string {
	if m.Width == 0 || m.CurrentAppMode == model.ModeInitializing {
		return "Initializing..."
	}
	if m.CurrentAppMode == model.ModeQuitting {
		return "Shutting down..."
	}
	if m.Manager == nil {
		return "No VirtualBox service attached."
	}

	l := ComputeLayout(m)
	sections := []string{renderMenuBar(m)}
	if m.Dialog != 0 {
		sections = append(sections, renderPanel(m.Dialog.String(), renderModal(m, l, renderDialog), l.PaneWidth+4, l.BodyHeight, true))
	} else {
		focused := m.Focus == model.FocusPane && m.TopOverlay() == nil && len(m.Menus) == 0
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
			renderChooser(m, l),
			renderTools(m, l),
			renderPanel(paneTitle(m), renderModal(m, l, renderPane), l.PaneWidth+4, l.BodyHeight, focused),
		))
	}
	if m.ShowLog {
		sections = append(sections, renderPanel("Activity Log", m.LogViewport.View(), l.LogWidth+4, LogLines+3, false))
	}
	sections = append(sections, renderStatusBar(m))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderModal shows the top message box or the open menus in place of
// the pane content.
func renderModal(m *model.Model, l Layout, content func(*model.Model, Layout) string) string {
	switch {
	case m.TopOverlay() != nil:
		return lipgloss.Place(l.PaneWidth, l.PaneHeight-1, lipgloss.Center, lipgloss.Center, renderOverlay(m, l))
	case len(m.Menus) > 0:
		return renderMenus(m, l)
	case m.Help.ShowAll:
		return m.Help.View(m.Keys)
	}
	return content(m, l)
}

// renderPanel draws a bordered box of outer width w and outer height h
// with a title line.
func renderPanel(title, content string, w, h int, focused bool) string {
	style := design.PanelStyle
	if focused {
		style = design.PanelFocusedStyle
	}
	inner := max(w-4, 1)
	body := design.PanelTitleStyle.Render(truncate(title, inner)) + "\n" + clip(content, inner, max(h-3, 0))
	return style.Width(w - 2).Height(h - 2).Render(body)
}

// clip cuts content to at most height lines of at most width cells.
func clip(content string, width, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = truncateStyled(line, width)
		}
	}
	return strings.Join(lines, "\n")
}

// truncate shortens plain text to width cells.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

// truncateStyled shortens a line that may hold escape sequences.
func truncateStyled(s string, width int) string {
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}

func renderMenuBar(m *model.Model) string {
	var parts []string
	barOpen := len(m.Menus) > 0 && m.Menus[0].Bar
	for i, a := range m.Manager.Pool().MenuBar() {
		name := a.Name()
		if barOpen && m.Menus[0].Cursor == i {
			parts = append(parts, design.MenuBarActiveStyle.Render(name))
			continue
		}
		parts = append(parts, design.MenuBarStyle.Render(name))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return design.MenuBarStyle.Padding(0).Width(m.Width).MaxWidth(m.Width).Render(bar)
}
