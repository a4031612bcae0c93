package view

import (
	"strings"

	"vboxmanager/internal/tui/design"
	"vboxmanager/internal/tui/model"
)

// renderTools draws the tools list at the rows its layout assigned. The
// title sits in the top margin row.
func renderTools(m *model.Model, l Layout) string {
	tools := m.Manager.Tools()
	lines := make([]string, l.BodyHeight-2)
	lines[0] = design.PanelTitleStyle.Render("Tools")

	focused := m.Focus == model.FocusTools && m.TopOverlay() == nil && len(m.Menus) == 0
	for _, it := range tools.NavigationList() {
		y := it.Rect().Min.Y
		if y <= 0 || y >= len(lines) {
			continue
		}
		prefix := "  "
		if focused && it == tools.Focus() {
			prefix = "▸ "
		}
		text := truncate(prefix+it.Name, design.ToolsWidth-2)
		switch {
		case !it.Enabled():
			text = design.ListItemDisabledStyle.Render(text)
		case it == tools.Current():
			text = design.ListItemSelectedStyle.Render(text)
		default:
			text = design.ListItemStyle.Render(text)
		}
		lines[y] = text
	}

	style := design.PanelStyle
	if focused {
		style = design.PanelFocusedStyle
	}
	return style.Width(design.ToolsWidth).Height(l.BodyHeight - 2).Render(strings.Join(lines, "\n"))
}
