package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vboxmanager/internal/actionpool"
	"vboxmanager/internal/defs"
	"vboxmanager/internal/dialogs/cloudprofile"
	"vboxmanager/internal/dialogs/hostnetwork"
	"vboxmanager/internal/dialogs/logviewer"
	"vboxmanager/internal/manager"
	"vboxmanager/internal/tui/model"
	"vboxmanager/internal/vmitem"
)

// handlePaneKey handles keys for the tool pane shown next to the chooser.
func handlePaneKey(m *model.Model, msg tea.KeyMsg) tea.Cmd {
	switch m.Manager.Tools().Type() {
	case defs.ToolTypeNetwork:
		handleNetworkKey(m, msg, m.Manager.NetworkManager())
	case defs.ToolTypeCloud:
		handleCloudKey(m, msg, m.Manager.CloudProfileManager())
	case defs.ToolTypeSnapshots:
		handleSnapshotKey(m, msg)
	case defs.ToolTypeLogs:
		return handleLogKey(m, msg, m.Manager.EmbeddedLogViewer())
	}
	return nil
}

// handleDialogKey handles keys while a standalone dialog covers the
// window. Esc closes it.
func handleDialogKey(m *model.Model, msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.Keys.Esc) {
		if m.Dialog == manager.DialogLogViewer {
			if v := m.Manager.CurrentLogViewer(); v != nil {
				m.Manager.CloseLogViewer(v.HardwareUUID())
				return nil
			}
		}
		m.Manager.CloseDialog(m.Dialog)
		return nil
	}
	switch m.Dialog {
	case manager.DialogHostNetwork:
		handleNetworkKey(m, msg, m.Manager.NetworkManager())
	case manager.DialogCloudProfile:
		handleCloudKey(m, msg, m.Manager.CloudProfileManager())
	case manager.DialogLogViewer:
		if key.Matches(msg, m.Keys.Tab) {
			cycleLogViewer(m)
			return nil
		}
		return handleLogKey(m, msg, m.Manager.CurrentLogViewer())
	}
	return nil
}

func handleNetworkKey(m *model.Model, msg tea.KeyMsg, mgr *hostnetwork.Manager) {
	if mgr == nil {
		return
	}
	items := mgr.Items()
	switch {
	case key.Matches(msg, m.Keys.Up), key.Matches(msg, m.Keys.Down):
		delta := 1
		if key.Matches(msg, m.Keys.Up) {
			delta = -1
		}
		m.PaneCursor += delta
		m.ClampPaneCursor(len(items))
		mgr.SetCurrent(m.PaneCursor)
	case key.Matches(msg, m.Keys.Mark):
		if it := mgr.Current(); it != nil {
			m.Manager.SetNetworkDHCP(m.PaneCursor, !it.DHCPChecked())
		}
	case key.Matches(msg, m.Keys.Enter):
		m.Manager.Pool().Action(actionpool.NetworkDetails).Trigger()
	case key.Matches(msg, m.Keys.Apply):
		m.Manager.ApplyNetwork()
	case key.Matches(msg, m.Keys.Reset):
		m.Manager.ResetNetwork()
	case key.Matches(msg, m.Keys.Edit):
		editNetworkAddress(m, mgr)
	default:
		return
	}
	m.Dirty = true
}

// editNetworkAddress asks for "address/mask" and puts it in the details
// editor. Apply stays disabled while the text does not validate.
func editNetworkAddress(m *model.Model, mgr *hostnetwork.Manager) {
	if mgr.Current() == nil {
		return
	}
	data := mgr.Editor().Data()
	initial := data.Interface.Address + "/" + data.Interface.Mask
	m.AskText(manager.Prompt{Title: "IPv4 Address", Message: "Address/mask of " + data.Interface.Name + ":"}, initial, func(text string) {
		addr, mask, _ := strings.Cut(strings.TrimSpace(text), "/")
		data := mgr.Editor().Data()
		data.Interface.DHCPEnabled = false
		data.Interface.Address = addr
		data.Interface.Mask = mask
		mgr.Editor().SetData(data)
		if err := mgr.Editor().Err(); err != nil {
			m.SetStatus(err.Error(), model.StatusWarning)
		}
		mgr.SetDetailsVisible(true)
	})
}

func handleCloudKey(m *model.Model, msg tea.KeyMsg, mgr *cloudprofile.Manager) {
	if mgr == nil {
		return
	}
	rows := model.CloudRows(mgr)
	switch {
	case key.Matches(msg, m.Keys.Up), key.Matches(msg, m.Keys.Down):
		delta := 1
		if key.Matches(msg, m.Keys.Up) {
			delta = -1
		}
		m.PaneCursor += delta
		m.ClampPaneCursor(len(rows))
		if m.PaneCursor < len(rows) {
			row := rows[m.PaneCursor]
			profile := ""
			if row.Profile != nil {
				profile = row.Profile.Name
			}
			mgr.Select(row.Provider.ShortName, profile)
		}
	case key.Matches(msg, m.Keys.Mark):
		if m.PaneCursor < len(rows) {
			toggleCloudRestriction(m, mgr, rows[m.PaneCursor])
		}
	case key.Matches(msg, m.Keys.Enter):
		m.Manager.Pool().Action(actionpool.CloudDetails).Trigger()
	case key.Matches(msg, m.Keys.Apply):
		m.Manager.ApplyCloudProfile()
	case key.Matches(msg, m.Keys.Reset):
		m.Manager.ResetCloudProfile()
	case key.Matches(msg, m.Keys.Edit):
		editProfileName(m, mgr)
	default:
		return
	}
	m.Dirty = true
}

func toggleCloudRestriction(m *model.Model, mgr *cloudprofile.Manager, row model.CloudRow) {
	definition, restricted := row.Provider.Definition(), row.Provider.Restricted
	if row.Profile != nil {
		definition, restricted = row.Profile.Definition(), row.Profile.Restricted
	}
	if err := mgr.SetRestricted(definition, !restricted); err != nil {
		m.Notify(manager.Notice{Title: fmt.Sprintf("Failed to change the restriction of %s", definition), Err: err})
	}
}

func editProfileName(m *model.Model, mgr *cloudprofile.Manager) {
	if _, prof := mgr.Current(); prof == nil {
		return
	}
	data := mgr.Editor().Data()
	m.AskText(manager.Prompt{Title: "Profile Name", Message: "New name of the profile:"}, data.Name, func(name string) {
		data := mgr.Editor().Data()
		data.Name = name
		mgr.Editor().SetData(data)
		if err := mgr.Editor().Err(); err != nil {
			m.SetStatus(err.Error(), model.StatusWarning)
		}
		mgr.SetDetailsVisible(true)
	})
}

func handleSnapshotKey(m *model.Model, msg tea.KeyMsg) {
	sel := m.Manager.Selection().Items
	if len(sel) != 1 {
		return
	}
	local, ok := sel[0].(*vmitem.Local)
	if !ok {
		return
	}
	rows := model.SnapshotRows(local.SnapshotName())
	switch {
	case key.Matches(msg, m.Keys.Up):
		m.PaneCursor--
	case key.Matches(msg, m.Keys.Down):
		m.PaneCursor++
	default:
		return
	}
	m.ClampPaneCursor(len(rows))
	m.Manager.SetCurrentStateItemSelected(m.PaneCursor == len(rows)-1)
	m.Dirty = true
}

// handleLogKey switches pages with Left/Right and scrolls the page.
func handleLogKey(m *model.Model, msg tea.KeyMsg, v *logviewer.Viewer) tea.Cmd {
	if v == nil {
		return nil
	}
	switch {
	case key.Matches(msg, m.Keys.Left), key.Matches(msg, m.Keys.Right):
		i := m.PaneCursor + 1
		if key.Matches(msg, m.Keys.Left) {
			i = m.PaneCursor - 1
		}
		if i >= 0 && i < len(v.Pages()) {
			m.PaneCursor = i
			v.SetCurrent(i)
			m.DialogViewport.GotoTop()
		}
		m.Dirty = true
		return nil
	}
	var cmd tea.Cmd
	m.DialogViewport, cmd = m.DialogViewport.Update(msg)
	m.Dirty = true
	return cmd
}

func cycleLogViewer(m *model.Model) {
	viewers := m.Manager.LogViewers()
	if len(viewers) < 2 {
		return
	}
	current := m.Manager.CurrentLogViewer()
	next := viewers[0]
	for i, v := range viewers {
		if v == current {
			next = viewers[(i+1)%len(viewers)]
		}
	}
	m.PaneCursor = 0
	m.Manager.SetCurrentLogViewer(next.HardwareUUID())
	m.Dirty = true
}
