package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"vboxmanager/internal/tui/design"
	"vboxmanager/internal/tui/model"
)

// renderStatusBar shows the running tasks with a spinner, then the status
// message, or the key help when there is no message.
func renderStatusBar(m *model.Model) string {
	var left string
	if tasks := m.Manager.Tasks(); len(tasks) > 0 {
		t := tasks[0]
		left = m.Spinner.View() + " " + fmt.Sprintf("%s %d%%", t.Title, t.Percent())
		if len(tasks) > 1 {
			left += fmt.Sprintf(" (+%d)", len(tasks)-1)
		}
		left += "  "
	}

	style := design.StatusBarStyle
	msg := m.StatusBarMessage
	switch {
	case msg == "":
		msg = m.Help.ShortHelpView(m.Keys.ShortHelp())
	case m.StatusBarType == model.StatusError:
		style = design.StatusBarErrorStyle
	case m.StatusBarType == model.StatusWarning:
		style = design.StatusBarWarningStyle
	default:
		style = design.StatusBarInfoStyle
	}

	right := ""
	if m.Version != "" {
		right = design.DimStyle.Render("vboxmanager " + m.Version)
	}
	inner := m.Width - 2
	space := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	body := left + truncateStyled(msg, space)
	fill := max(inner-lipgloss.Width(body)-lipgloss.Width(right), 0)
	return style.Width(m.Width).MaxWidth(m.Width).Render(body + fmt.Sprintf("%*s", fill, "") + right)
}
