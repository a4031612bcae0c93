package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"vboxmanager/internal/actionpool"
	"vboxmanager/internal/extradata"
	"vboxmanager/internal/manager"
	"vboxmanager/internal/uiloop"
	"vboxmanager/internal/vmitem"
	"vboxmanager/pkg/logging"
)

// AppMode is the top-level state of the window.
type AppMode int

const (
	ModeInitializing AppMode = iota
	ModeMain
	ModeQuitting
)

func (m AppMode) String() string {
	switch m {
	case ModeInitializing:
		return "Initializing"
	case ModeMain:
		return "Main"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// Focus names the pane receiving keys in ModeMain.
type Focus int

const (
	FocusChooser Focus = iota
	FocusTools
	FocusPane
	focusCount
)

// NextFocus moves keyboard focus to the next pane.
func (m *Model) NextFocus() {
	m.Focus = (m.Focus + 1) % focusCount
	m.PaneCursor = 0
	m.Dirty = true
}

// MaxActivityLogLines bounds the in-memory activity log.
const MaxActivityLogLines = 1000

// StatusType colors the status bar message.
type StatusType int

const (
	StatusInfo StatusType = iota
	StatusWarning
	StatusError
)

// KeyMap defines the window's own key bindings. Action shortcuts are
// bound by the action pool.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Tab       key.Binding
	Mark      key.Binding
	Enter     key.Binding
	Headless  key.Binding
	Esc       key.Binding
	Yes       key.Binding
	No        key.Binding
	Apply     key.Binding
	Reset     key.Binding
	Edit      key.Binding
	MenuBar   key.Binding
	Context   key.Binding
	ToggleLog key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Mark, k.Context, k.MenuBar, k.Tab, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tab, k.Mark},
		{k.Enter, k.Headless, k.Context, k.MenuBar},
		{k.Edit, k.Apply, k.Reset, k.Esc},
		{k.ToggleLog, k.Help, k.Quit, k.ForceQuit},
	}
}

// OverlayKind selects how an overlay is shown and answered.
type OverlayKind int

const (
	OverlayConfirm OverlayKind = iota
	OverlayText
	OverlayRequest
	OverlayNotice
)

// Overlay is one modal message box. Overlays queue up and the first one
// takes the keyboard.
type Overlay struct {
	Kind    OverlayKind
	Prompt  manager.Prompt
	Initial string
	Request manager.Request
	Notice  manager.Notice

	answer func(bool)
	accept func(string)
}

// MenuFrame is one open level of a menu.
type MenuFrame struct {
	Title  string
	Index  actionpool.Index
	Items  []actionpool.Item
	Cursor int
	// Bar is set for the menu bar level, whose items open menus.
	Bar bool
}

// RowKind classifies a chooser row.
type RowKind int

const (
	RowGlobal RowKind = iota
	RowGroup
	RowMachine
)

// Row is one line of the VM chooser.
type Row struct {
	Kind  RowKind
	Depth int
	// Group is the full group name of group rows.
	Group string
	Cloud bool
	Label string
	Item  vmitem.Item
}

// Model holds the window state. It is owned by the Bubble Tea goroutine,
// which is also the goroutine the manager controller belongs to.
type Model struct {
	Width  int
	Height int

	CurrentAppMode AppMode
	Focus          Focus
	Version        string

	Manager *manager.Controller
	Queue   *uiloop.Queue
	Store   *extradata.Store

	Rows   []Row
	Cursor int
	Marked map[vmitem.Item]bool
	// PaneCursor is the row cursor of the pane or dialog with focus.
	PaneCursor int

	Overlays []*Overlay
	Menus    []*MenuFrame
	// Dialog is the standalone dialog on screen, zero when none.
	Dialog manager.Dialog

	TextInput      textinput.Model
	Spinner        spinner.Model
	Help           help.Model
	Keys           KeyMap
	LogViewport    viewport.Model
	DialogViewport viewport.Model

	LogChannel       <-chan logging.LogEntry
	ExtraDataChanged <-chan struct{}
	ActivityLog      []string
	ActivityLogDirty bool
	ShowLog          bool

	StatusBarMessage string
	StatusBarType    StatusType

	Shown         bool
	QuitRequested bool
	Dirty         bool
}
