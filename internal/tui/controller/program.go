package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"vboxmanager/internal/tui/model"
)

// NewProgram creates the Bubble Tea program hosting the manager window.
// The program's goroutine is the UI goroutine: every closure posted to the
// model's queue runs there.
func NewProgram(m *model.Model) *tea.Program {
	return tea.NewProgram(NewAppModel(m), tea.WithAltScreen(), tea.WithMouseCellMotion())
}
