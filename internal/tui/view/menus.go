package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"vboxmanager/internal/actionpool"
	"vboxmanager/internal/tui/design"
	"vboxmanager/internal/tui/model"
)

const menuWidth = 34

// renderMenus draws the open menus side by side, the innermost last. The
// menu bar level is shown in the bar itself.
func renderMenus(m *model.Model, l Layout) string {
	var boxes []string
	for _, f := range m.Menus {
		if f.Bar {
			continue
		}
		boxes = append(boxes, renderMenu(f))
	}
	if len(boxes) == 0 {
		return design.DimStyle.Render("Select a menu with ←/→ or ↑/↓ and press enter.")
	}
	// Keep the innermost menus when they do not all fit.
	for len(boxes) > 1 && (len(boxes)*(menuWidth+4)) > l.PaneWidth {
		boxes = boxes[1:]
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func renderMenu(f *model.MenuFrame) string {
	inner := menuWidth - 2
	lines := []string{design.PanelTitleStyle.Render(truncate(f.Title, inner))}
	for i, it := range f.Items {
		if it.Separator {
			lines = append(lines, design.DimStyle.Render(strings.Repeat("─", inner)))
			continue
		}
		line := menuLine(it, inner)
		switch {
		case i == f.Cursor:
			line = design.ListItemSelectedStyle.Render(line)
		case it.Action != nil && !it.Action.Enabled():
			line = design.ListItemDisabledStyle.Render(line)
		default:
			line = design.ListItemStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return design.PanelFocusedStyle.Width(menuWidth).Render(strings.Join(lines, "\n"))
}

// menuLine lays out a check mark, the name and the shortcut or submenu
// arrow in width cells.
func menuLine(it actionpool.Item, width int) string {
	check, name, right := "  ", it.Label, ""
	if a := it.Action; a != nil {
		name = a.Name()
		if a.Checked() {
			check = "✓ "
		}
		switch {
		case it.IsSubmenu():
			right = "▸"
		case a.Shortcut() != "":
			right = a.Shortcut()
		}
	}
	avail := width - runewidth.StringWidth(check) - runewidth.StringWidth(right) - 1
	name = pad(name, max(avail, 1))
	return check + name + " " + right
}
