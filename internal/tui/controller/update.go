package controller

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"vboxmanager/internal/tui/model"
	"vboxmanager/internal/tui/view"
	"vboxmanager/pkg/logging"
)

const controllerSubsystem = "TUIController"

// statusBarTimeout is how long informational notices stay visible.
const statusBarTimeout = 5 * time.Second

// Update is the central message routing function of the window. It runs
// on the UI goroutine, which is also where every closure posted to the
// UI loop queue executes.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	statusBefore := m.StatusBarMessage

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		var cmd tea.Cmd
		m, cmd = handleWindowSizeMsg(m, msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		cmds = append(cmds, handleKeyMsg(m, msg))

	case tea.MouseMsg:
		cmds = append(cmds, handleMouseMsg(m, msg))

	case model.QueueMsg:
		msg.Fn()
		m.Refresh()
		cmds = append(cmds, model.ListenForQueueCmd(m.Queue))

	case model.NewLogEntryMsg:
		model.AddRawLineToActivityLog(m, model.FormatLogEntry(msg.Entry))
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	case model.ExtraDataChangedMsg:
		logging.Debug(controllerSubsystem, "Extra-data changed on disk, reloading shortcuts")
		if m.Manager != nil {
			m.Manager.Pool().ReloadShortcuts()
		}
		m.Dirty = true
		cmds = append(cmds, model.ListenForExtraDataCmd(m.ExtraDataChanged))

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		m.Dirty = true

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.QuitRequested {
		return m, quit(m)
	}

	syncViewports(m)
	if m.ActivityLogDirty {
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))
		m.LogViewport.GotoBottom()
		m.ActivityLogDirty = false
	}
	if m.StatusBarMessage != "" && m.StatusBarMessage != statusBefore {
		cmds = append(cmds, model.ClearStatusBarAfter(statusBarTimeout))
	}
	return m, tea.Batch(cmds...)
}

// quit persists the tool choice and shuts the controller down before the
// program exits.
func quit(m *model.Model) tea.Cmd {
	m.CurrentAppMode = model.ModeQuitting
	if m.Manager != nil {
		if err := m.Manager.Tools().Deinit(); err != nil {
			logging.Error(controllerSubsystem, err, "Failed to persist the last chosen tools")
		}
		m.Manager.Close()
	}
	return tea.Quit
}
