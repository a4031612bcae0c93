package view

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"vboxmanager/internal/tui/design"
	"vboxmanager/internal/tui/model"
	"vboxmanager/internal/vmitem"
)

// StateTone classifies the state of it for coloring.
func StateTone(it vmitem.Item) design.Tone {
	switch {
	case it.Kind() == vmitem.KindCloudFake:
		if c, ok := it.(*vmitem.Cloud); ok && c.FakeState() == vmitem.FakeStateLoading {
			return design.ToneLoading
		}
		return design.ToneNeutral
	case !it.Accessible() || it.IsStuck():
		return design.ToneFailed
	case it.IsRunning():
		return design.ToneRunning
	case it.IsPaused():
		return design.TonePaused
	case it.IsSaved() && it.Kind() == vmitem.KindLocal:
		return design.ToneSaved
	case it.IsPoweredOff(), it.IsSaved():
		return design.ToneStopped
	}
	return design.ToneNeutral
}

func renderChooser(m *model.Model, l Layout) string {
	width := design.ChooserWidth - 2
	offset, visible := ChooserWindow(m)
	lines := make([]string, 0, visible)
	for i := offset; i < len(m.Rows) && i < offset+visible; i++ {
		lines = append(lines, chooserLine(m, m.Rows[i], i == m.Cursor, width))
	}
	focused := m.Focus == model.FocusChooser && m.Dialog == 0 && m.TopOverlay() == nil && len(m.Menus) == 0
	return renderPanel("Machines", strings.Join(lines, "\n"), ChooserOuterWidth, l.BodyHeight, focused)
}

func chooserLine(m *model.Model, r model.Row, current bool, width int) string {
	indent := strings.Repeat("  ", r.Depth)
	mark := "  "
	if r.Item != nil && m.Marked[r.Item] {
		mark = "* "
	}

	var text, state string
	switch r.Kind {
	case model.RowGlobal:
		text = "⚙ " + r.Label
	case model.RowGroup:
		text = indent + "▾ " + r.Label
	case model.RowMachine:
		text = indent + r.Label
		if r.Item.Kind() != vmitem.KindCloudFake {
			state = r.Item.StateName()
		}
	}
	avail := width - len(mark)
	if state != "" {
		avail -= len(state) + 1
	}
	text = truncate(text, max(avail, 1))
	pad := max(width-len(mark)-runewidth.StringWidth(text)-len(state), 1)

	line := mark + text
	switch {
	case current:
		return design.ListItemSelectedStyle.Render(line + strings.Repeat(" ", pad) + state)
	case r.Kind == model.RowGroup:
		return design.GroupHeaderStyle.Render(line)
	case r.Item != nil && m.Marked[r.Item]:
		line = design.ListItemMarkedStyle.Render(line)
	case r.Item != nil && !r.Item.Accessible():
		line = design.ListItemDisabledStyle.Render(line)
	default:
		line = design.ListItemStyle.Render(line)
	}
	if state == "" {
		return line
	}
	return line + strings.Repeat(" ", pad) + design.StateStyle(StateTone(r.Item)).Render(state)
}
