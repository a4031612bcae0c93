package view

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"vboxmanager/internal/converter"
	"vboxmanager/internal/defs"
	"vboxmanager/internal/dialogs/cloudprofile"
	"vboxmanager/internal/dialogs/hostnetwork"
	"vboxmanager/internal/dialogs/logviewer"
	"vboxmanager/internal/manager"
	"vboxmanager/internal/tui/design"
	"vboxmanager/internal/tui/model"
	"vboxmanager/internal/vmitem"
)

// now is replaced in tests.
var now = time.Now

func paneTitle(m *model.Model) string {
	t := m.Manager.Tools().Type()
	if t == defs.ToolTypeInvalid {
		return "Tools"
	}
	return converter.ToolTypes.ToString(t)
}

// ActiveLogViewer returns the log viewer on screen: the standalone
// dialog's current viewer or the one embedded in the Logs pane.
func ActiveLogViewer(m *model.Model) *logviewer.Viewer {
	switch {
	case m.Dialog == manager.DialogLogViewer:
		return m.Manager.CurrentLogViewer()
	case m.Dialog == 0 && m.Manager.Tools().Type() == defs.ToolTypeLogs:
		return m.Manager.EmbeddedLogViewer()
	}
	return nil
}

func renderPane(m *model.Model, l Layout) string {
	switch m.Manager.Tools().Type() {
	case defs.ToolTypeWelcome:
		return renderWelcome(m)
	case defs.ToolTypeMedia:
		return renderMedia()
	case defs.ToolTypeNetwork:
		return renderNetwork(m, m.Manager.NetworkManager(), l.PaneWidth)
	case defs.ToolTypeCloud:
		return renderCloud(m, m.Manager.CloudProfileManager())
	case defs.ToolTypeResources:
		return renderResources(m, l.PaneWidth)
	case defs.ToolTypeDetails:
		return renderDetails(m)
	case defs.ToolTypeSnapshots:
		return renderSnapshots(m)
	case defs.ToolTypeLogs:
		return renderLogViewer(m, ActiveLogViewer(m))
	case defs.ToolTypePerformance:
		return renderPerformance(m)
	}
	return design.DimStyle.Render("No tool selected.")
}

func renderDialog(m *model.Model, l Layout) string {
	switch m.Dialog {
	case manager.DialogHostNetwork:
		return renderNetwork(m, m.Manager.NetworkManager(), l.PaneWidth)
	case manager.DialogCloudProfile:
		return renderCloud(m, m.Manager.CloudProfileManager())
	case manager.DialogLogViewer:
		return renderLogViewer(m, m.Manager.CurrentLogViewer())
	}
	return design.DimStyle.Render(m.Dialog.String() + " has no terminal view.")
}

func renderWelcome(m *model.Model) string {
	var b strings.Builder
	b.WriteString(design.TextStyle.Render("Welcome to VirtualBox!"))
	b.WriteString("\n\n")
	b.WriteString(design.TextSecondaryStyle.Render(
		"The left part of the window lists all virtual machines and machine groups on your computer. " +
			"Select a machine or group and pick a tool to work with it."))
	b.WriteString("\n\n")
	if len(m.Manager.Items()) == 0 {
		b.WriteString(design.TextInfoStyle.Render("The list is empty now because you have not created any virtual machines yet."))
		b.WriteString("\n")
	}
	b.WriteString(design.DimStyle.Render("Open the menu bar with the menu key or press the context key for the selection menu."))
	return b.String()
}

func renderMedia() string {
	var b strings.Builder
	b.WriteString(design.TextSecondaryStyle.Render("Supported disk image formats:"))
	b.WriteString("\n")
	for _, f := range converter.MediumFormats.Values() {
		b.WriteString("  " + converter.MediumFormats.ToString(f) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// selectedRow styles a pane row under the cursor.
func selectedRow(m *model.Model, i int, line string) string {
	if i == m.PaneCursor {
		return design.ListItemSelectedStyle.Render(line)
	}
	return design.ListItemStyle.Render(line)
}

func pad(s string, width int) string {
	s = truncate(s, width)
	return s + strings.Repeat(" ", max(width-runewidth.StringWidth(s), 0))
}

func renderNetwork(m *model.Model, mgr *hostnetwork.Manager, width int) string {
	if mgr == nil {
		return design.DimStyle.Render("Loading host networks...")
	}
	items := mgr.Items()
	widths := hostnetwork.ColumnWidths(items, width)

	var b strings.Builder
	var header strings.Builder
	for c := hostnetwork.ColumnName; c < hostnetwork.ColumnMax; c++ {
		header.WriteString(pad(c.Title(), widths[c]))
	}
	b.WriteString(design.GroupHeaderStyle.Render(header.String()) + "\n")
	for i, it := range items {
		var row strings.Builder
		for c := hostnetwork.ColumnName; c < hostnetwork.ColumnMax; c++ {
			text := it.Text(c)
			if c == hostnetwork.ColumnDHCP {
				text = checkBox(it.DHCPChecked()) + " " + text
			}
			row.WriteString(pad(text, widths[c]))
		}
		b.WriteString(selectedRow(m, i, row.String()) + "\n")
	}
	if len(items) == 0 {
		b.WriteString(design.DimStyle.Render("No host-only networks.") + "\n")
	}

	if mgr.DetailsVisible() && mgr.Current() != nil {
		d := mgr.Editor().Data()
		b.WriteString("\n" + design.PanelTitleStyle.Render("Adapter") + "\n")
		mode := "Configure Adapter Manually"
		if d.Interface.DHCPEnabled {
			mode = "Configure Adapter Automatically"
		}
		b.WriteString(field("Mode", mode))
		b.WriteString(field("IPv4 Address", d.Interface.Address))
		b.WriteString(field("IPv4 Network Mask", d.Interface.Mask))
		if d.Interface.IPv6Supported {
			b.WriteString(field("IPv6 Address", d.Interface.Address6))
			b.WriteString(field("IPv6 Prefix Length", d.Interface.PrefixLength6))
		}
		b.WriteString(design.PanelTitleStyle.Render("DHCP Server") + "\n")
		b.WriteString(field("Enabled", checkBox(d.DHCPServer.Enabled)))
		b.WriteString(field("Server Address", d.DHCPServer.Address))
		b.WriteString(field("Server Mask", d.DHCPServer.Mask))
		b.WriteString(field("Lower Address Bound", d.DHCPServer.LowerAddress))
		b.WriteString(field("Upper Address Bound", d.DHCPServer.UpperAddress))
		b.WriteString(editorStatus(mgr.Editor().Differs(), mgr.Editor().CanApply(), mgr.Editor().Err()))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderCloud(m *model.Model, mgr *cloudprofile.Manager) string {
	if mgr == nil {
		return design.DimStyle.Render("Loading cloud providers...")
	}
	var b strings.Builder
	for i, r := range model.CloudRows(mgr) {
		var line string
		restricted := r.Provider.Restricted
		if r.Profile == nil {
			line = "▾ " + r.Provider.Name
		} else {
			line = "    " + r.Profile.Name
			restricted = r.Profile.Restricted
		}
		line = checkBox(!restricted) + " " + line
		b.WriteString(selectedRow(m, i, line) + "\n")
	}

	if _, prof := mgr.Current(); prof != nil && mgr.DetailsVisible() {
		d := mgr.Editor().Data()
		b.WriteString("\n" + design.PanelTitleStyle.Render("Profile") + "\n")
		b.WriteString(field("Name", d.Name))
		for _, k := range sortedKeys(d.Properties) {
			b.WriteString(field(k, d.Properties[k]))
		}
		b.WriteString(editorStatus(mgr.Editor().Differs(), mgr.Editor().CanApply(), mgr.Editor().Err()))
	}
	if b.Len() == 0 {
		return design.DimStyle.Render("No cloud providers.")
	}
	return strings.TrimRight(b.String(), "\n")
}

func field(label string, value any) string {
	return design.TextSecondaryStyle.Render(fmt.Sprintf("  %-22s", label+":")) + " " + design.TextStyle.Render(fmt.Sprint(value)) + "\n"
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}

func checkBox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func editorStatus(differs, canApply bool, err error) string {
	switch {
	case err != nil:
		return design.TextErrorStyle.Render(err.Error()) + "\n"
	case canApply:
		return design.TextInfoStyle.Render("Modified. Press a to apply, r to reset.") + "\n"
	case differs:
		return design.TextWarningStyle.Render("Modified.") + "\n"
	}
	return ""
}

func renderResources(m *model.Model, width int) string {
	cols := []defs.VMResourceMonitorColumn{
		defs.VMResourceMonitorColumnName,
		defs.VMResourceMonitorColumnRAMUsedAndTotal,
	}
	colWidth := max(width/(len(cols)+2), 10)

	var b strings.Builder
	var header strings.Builder
	for _, c := range cols {
		header.WriteString(pad(converter.VMResourceMonitorColumns.ToString(c), colWidth))
	}
	header.WriteString(pad("CPUs", colWidth))
	header.WriteString(pad("State", colWidth))
	b.WriteString(design.GroupHeaderStyle.Render(header.String()) + "\n")

	running := 0
	for _, l := range vmitem.Locals(m.Manager.Items()) {
		if !l.IsStarted() {
			continue
		}
		running++
		mach := l.Machine()
		row := pad(l.Name(), colWidth) +
			pad("- / "+units.BytesSize(float64(mach.MemoryBytes)), colWidth) +
			pad(fmt.Sprint(mach.CPUCount), colWidth)
		b.WriteString(design.ListItemStyle.Render(row) + design.StateStyle(StateTone(l)).Render(l.StateName()) + "\n")
	}
	if running == 0 {
		b.WriteString(design.DimStyle.Render("No running virtual machines.") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderDetails(m *model.Model) string {
	items := m.Manager.Selection().Items
	if len(items) == 0 {
		return design.DimStyle.Render("No machine selected.")
	}
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		if !it.Accessible() {
			b.WriteString(design.TextErrorStyle.Render(it.Name()+" is inaccessible") + "\n")
			b.WriteString(design.TextSecondaryStyle.Render(it.AccessError()) + "\n")
			continue
		}
		b.WriteString(design.PanelTitleStyle.Render(converter.DetailsElementTypes.ToString(defs.DetailsElementTypeGeneral)) + "\n")
		b.WriteString(field("Name", it.Name()))
		b.WriteString(field("Operating System", it.OSTypeID()))
		switch v := it.(type) {
		case *vmitem.Local:
			mach := v.Machine()
			if len(mach.Groups) > 0 && mach.Groups[0] != "/" {
				b.WriteString(field("Groups", strings.Join(mach.Groups, ", ")))
			}
			b.WriteString(field("Settings File", mach.SettingsFile))
			b.WriteString(design.PanelTitleStyle.Render(converter.DetailsElementTypes.ToString(defs.DetailsElementTypeSystem)) + "\n")
			b.WriteString(field("Base Memory", units.BytesSize(float64(mach.MemoryBytes))))
			b.WriteString(field("Processors", mach.CPUCount))
			if mach.Description != "" {
				b.WriteString(design.PanelTitleStyle.Render(converter.DetailsElementTypes.ToString(defs.DetailsElementTypeDescription)) + "\n")
				b.WriteString("  " + mach.Description + "\n")
			}
		case *vmitem.Cloud:
			if provider, profile, ok := m.Manager.CloudProfile(v); ok {
				b.WriteString(field("Provider", provider))
				b.WriteString(field("Profile", profile))
			}
			b.WriteString(field("State", v.StateName()))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func singleLocal(m *model.Model) *vmitem.Local {
	items := m.Manager.Selection().Items
	if len(items) != 1 {
		return nil
	}
	l, _ := items[0].(*vmitem.Local)
	return l
}

func renderSnapshots(m *model.Model) string {
	l := singleLocal(m)
	if l == nil {
		return design.DimStyle.Render("Select a single local machine to see its snapshots.")
	}
	var b strings.Builder
	for i, name := range model.SnapshotRows(l.SnapshotName()) {
		prefix := "  "
		if i > 0 {
			prefix = "  └ "
		}
		b.WriteString(selectedRow(m, i, prefix+name) + "\n")
	}
	b.WriteString("\n" + field("Snapshots", l.SnapshotCount()))
	b.WriteString(field("State Changed", l.LastStateChangeText(now())))
	return strings.TrimRight(b.String(), "\n")
}

func renderPerformance(m *model.Model) string {
	locals := vmitem.Locals(m.Manager.Selection().Items)
	if len(locals) == 0 {
		return design.DimStyle.Render("No local machine selected.")
	}
	var b strings.Builder
	for _, l := range locals {
		b.WriteString(design.PanelTitleStyle.Render(l.Name()) + "\n")
		if !l.IsStarted() {
			b.WriteString(design.DimStyle.Render("  Performance data is available while the machine runs.") + "\n")
			continue
		}
		b.WriteString(field("State", l.StateName()))
		b.WriteString(field("Process", l.PID()))
		b.WriteString(field("Running Since", humanize.RelTime(l.LastStateChange(), now(), "ago", "from now")))
		b.WriteString(field("Memory", units.BytesSize(float64(l.Machine().MemoryBytes))))
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderLogViewer draws the page tabs and the scrolled page. The viewport
// content is loaded by the controller before rendering.
func renderLogViewer(m *model.Model, v *logviewer.Viewer) string {
	if v == nil {
		return design.DimStyle.Render("No logs to show.")
	}
	pages := v.Pages()
	if len(pages) == 0 {
		return design.DimStyle.Render("No log files found for " + v.Title() + ".")
	}
	current := v.Current()
	var tabs []string
	for _, p := range pages {
		label := " " + p.Name + " "
		if p == current {
			tabs = append(tabs, design.MenuBarActiveStyle.Render(label))
			continue
		}
		tabs = append(tabs, design.MenuBarStyle.Render(label))
	}
	info := ""
	if current != nil {
		info = design.DimStyle.Render(fmt.Sprintf("%s, %s lines", current.Size(), humanize.Comma(int64(current.LineCount()))))
	}
	return strings.Join(tabs, "") + "\n" + info + "\n" + m.DialogViewport.View()
}
