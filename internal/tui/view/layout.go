package view

import (
	"vboxmanager/internal/tui/design"
	"vboxmanager/internal/tui/model"
)

// Screen geometry. Panels have a one cell border and one cell of
// horizontal padding.
const (
	// BodyTop is the row of the panels' top border, below the menu bar.
	BodyTop = 1
	// ChooserOuterWidth is the chooser panel including its border.
	ChooserOuterWidth = design.ChooserWidth + 2
	// ChooserRowsTop is the screen row of the first chooser row, below
	// the panel title.
	ChooserRowsTop = BodyTop + 2
	// ToolsLeft and ToolsTop locate the origin of the tools list content.
	ToolsLeft = ChooserOuterWidth + 2
	ToolsTop  = BodyTop + 1
	// PaneLeft is the first column of the tool pane.
	PaneLeft = ChooserOuterWidth + design.ToolsWidth + 2

	// LogLines is the height of the activity log content.
	LogLines = 8
	// paneHeaderLines is the title line plus the blank line under it.
	paneHeaderLines = 2
)

// Layout holds the sizes derived from the window size.
type Layout struct {
	// BodyHeight is the outer height of the panel row.
	BodyHeight int
	// PaneWidth is the content width of the tool pane or dialog.
	PaneWidth int
	// PaneHeight is the content height of the tool pane or dialog.
	PaneHeight int
	// LogWidth is the content width of the activity log.
	LogWidth int
}

// ComputeLayout splits the window of m into its panels.
func ComputeLayout(m *model.Model) Layout {
	body := m.Height - 2
	if m.ShowLog {
		body -= LogLines + 3
	}
	body = max(body, design.MinPanelHeight)
	paneLeft := PaneLeft
	if m.Dialog != 0 {
		paneLeft = 0
	}
	return Layout{
		BodyHeight: body,
		PaneWidth:  max(m.Width-paneLeft-4, design.MinPanelWidth),
		PaneHeight: max(body-2, 1),
		LogWidth:   max(m.Width-4, design.MinPanelWidth),
	}
}

// ViewportHeight is the space left for scrolled content in the pane once
// the pane header and the page tabs are drawn.
func (l Layout) ViewportHeight() int {
	return max(l.PaneHeight-paneHeaderLines-2, 1)
}

// ChooserWindow returns the first visible chooser row and the number of
// rows that fit. The window follows the cursor.
func ChooserWindow(m *model.Model) (offset, visible int) {
	visible = max(ComputeLayout(m).BodyHeight-3, 1)
	if m.Cursor >= visible {
		offset = m.Cursor - visible + 1
	}
	return offset, visible
}
