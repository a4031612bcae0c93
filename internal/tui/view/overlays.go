package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"vboxmanager/internal/converter"
	"vboxmanager/internal/manager"
	"vboxmanager/internal/tui/design"
	"vboxmanager/internal/tui/model"
)

// renderOverlay draws the top message box. Queued boxes behind it are
// counted in the footer.
func renderOverlay(m *model.Model, l Layout) string {
	o := m.TopOverlay()
	width := min(max(l.PaneWidth-8, 30), 72)

	var title, body, buttons string
	switch o.Kind {
	case model.OverlayConfirm:
		title, body = o.Prompt.Title, promptBody(o.Prompt, width)
		ok := o.Prompt.OK
		if ok == "" {
			ok = "OK"
		}
		buttons = design.ButtonStyle.Render(ok+" (y)") + " " + design.ButtonSecondaryStyle.Render("Cancel (n)")
	case model.OverlayText:
		title, body = o.Prompt.Title, promptBody(o.Prompt, width)
		input := m.TextInput
		input.Width = width - 4
		body += "\n\n" + input.View()
		buttons = design.DimStyle.Render("enter accept • esc cancel")
	case model.OverlayRequest:
		title, body = requestTitle(o.Request), requestBody(o.Request)
		buttons = design.ButtonStyle.Render("Close (y)")
	case model.OverlayNotice:
		title = "VirtualBox - Error"
		body = design.TextErrorStyle.Width(width).Render(manager.FormatNotice(o.Notice))
		buttons = design.ButtonStyle.Render("OK (y)")
	}

	if queued := len(m.Overlays) - 1; queued > 0 {
		buttons += design.DimStyle.Render(fmt.Sprintf("  +%d more", queued))
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		design.OverlayTitleStyle.Render(title),
		body,
		"",
		buttons,
	)
	return design.OverlayStyle.Width(width).Render(content)
}

func promptBody(p manager.Prompt, width int) string {
	body := design.TextStyle.Width(width).Render(p.Message)
	if len(p.Names) > 0 {
		names := make([]string, len(p.Names))
		for i, n := range p.Names {
			names[i] = "  • " + n
		}
		body += "\n" + design.TextSecondaryStyle.Render(strings.Join(names, "\n"))
	}
	return body
}

func requestTitle(r manager.Request) string {
	switch r.Kind {
	case manager.RequestWizard:
		return converter.WizardTypes.ToString(r.Wizard)
	case manager.RequestMachineSettings:
		return "Machine Settings"
	case manager.RequestGlobalSettings:
		return "Preferences"
	}
	return r.Kind.String()
}

func requestBody(r manager.Request) string {
	var b strings.Builder
	b.WriteString(design.TextSecondaryStyle.Render("This window is not available in the terminal.") + "\n")
	if r.MachineID != uuid.Nil {
		b.WriteString(field("Machine", r.MachineID))
	}
	if r.Group != "" {
		b.WriteString(field("Group", r.Group))
	}
	if r.Path != "" {
		b.WriteString(field("File", r.Path))
	}
	if r.Version != "" {
		b.WriteString(field("Version", r.Version))
	}
	return strings.TrimRight(b.String(), "\n")
}
