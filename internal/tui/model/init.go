package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"vboxmanager/internal/extradata"
	"vboxmanager/internal/manager"
	"vboxmanager/internal/tui/design"
	"vboxmanager/internal/uiloop"
	"vboxmanager/internal/vmitem"
	"vboxmanager/pkg/logging"
)

// DefaultKeyMap returns the window's key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous page"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		Mark: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "mark"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/show"),
		),
		Headless: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "start headless"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "confirm"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "cancel"),
		),
		Apply: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "apply"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		MenuBar: key.NewBinding(
			key.WithKeys("f10", "alt+m"),
			key.WithHelp("f10", "menu"),
		),
		Context: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "actions"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "activity log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// Options configure a Model.
type Options struct {
	Queue *uiloop.Queue
	Store *extradata.Store
	// LogChannel is the TUI sink of pkg/logging. Optional.
	LogChannel <-chan logging.LogEntry
	// ExtraDataChanged fires after the extra-data file was rewritten by
	// another process. Optional.
	ExtraDataChanged <-chan struct{}
	Version          string
}

// InitializeModel builds the window model. The manager controller is
// attached afterwards since it needs the model as its UI.
func InitializeModel(opts Options) *Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 48

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = design.TextInfoStyle

	if opts.Queue == nil {
		opts.Queue = uiloop.NewQueue(256)
	}

	return &Model{
		CurrentAppMode:   ModeInitializing,
		Version:          opts.Version,
		Queue:            opts.Queue,
		Store:            opts.Store,
		Marked:           make(map[vmitem.Item]bool),
		TextInput:        ti,
		Spinner:          s,
		Help:             help.New(),
		Keys:             DefaultKeyMap(),
		LogViewport:      viewport.New(0, 0),
		DialogViewport:   viewport.New(0, 0),
		LogChannel:       opts.LogChannel,
		ExtraDataChanged: opts.ExtraDataChanged,
		ShowLog:          true,
	}
}

// Attach binds the manager controller and builds the chooser rows.
func (m *Model) Attach(c *manager.Controller) {
	m.Manager = c
	c.OnChanged(func() { m.Dirty = true })
	m.Refresh()
}
