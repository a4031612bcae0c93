// Package design holds the colors, sizes and styles shared by the manager
// window.
package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Sizes in terminal cells.
const (
	SpaceXS = 1
	SpaceSM = 2

	MinPanelHeight = 5
	MinPanelWidth  = 20

	// ChooserWidth is the preferred width of the VM chooser column.
	ChooserWidth = 34
	// ToolsWidth is the width of the tools column.
	ToolsWidth = 18
)

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Palette. The accent is the hypervisor's blue; state colors follow the
// chooser's state icons.
var (
	ColorAccent      = adaptive("#183A7A", "#6FA3EF")
	ColorAccentMuted = adaptive("#DCE6F7", "#22375A")

	ColorText      = adaptive("#1B1F24", "#ECEFF3")
	ColorTextDim   = adaptive("#5E6670", "#A4ACB6")
	ColorTextFaint = adaptive("#98A0A9", "#66707B")

	ColorCanvas  = adaptive("#FFFFFF", "#121417")
	ColorRaised  = adaptive("#EEF1F4", "#23272D")
	ColorOverlay = adaptive("#FAFBFC", "#1B1E22")
	ColorBorder  = adaptive("#D0D5DB", "#3A4048")

	ColorRunning = adaptive("#1E7B34", "#4CC06A")
	ColorPaused  = adaptive("#A35E00", "#F0A733")
	ColorSaved   = adaptive("#3A5F96", "#7FA6DD")
	ColorFailed  = adaptive("#B3261E", "#F2625A")
	ColorInfo    = adaptive("#00639B", "#4FB3E8")
)

// Text styles
var (
	TextStyle          = lipgloss.NewStyle().Foreground(ColorText)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(ColorTextDim)
	TextSuccessStyle   = lipgloss.NewStyle().Foreground(ColorRunning)
	TextErrorStyle     = lipgloss.NewStyle().Foreground(ColorFailed)
	TextWarningStyle   = lipgloss.NewStyle().Foreground(ColorPaused)
	TextInfoStyle      = lipgloss.NewStyle().Foreground(ColorInfo)
	DimStyle           = lipgloss.NewStyle().Foreground(ColorTextFaint)
)

// Panels and lists
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, SpaceXS)

	// PanelFocusedStyle keeps the border width of PanelStyle so focus
	// changes never move content.
	PanelFocusedStyle = PanelStyle.
				Border(lipgloss.DoubleBorder()).
				BorderForeground(ColorAccent)

	PanelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	ListItemStyle         = lipgloss.NewStyle().Foreground(ColorText)
	ListItemSelectedStyle = lipgloss.NewStyle().Foreground(ColorText).Background(ColorAccentMuted).Bold(true)
	ListItemMarkedStyle   = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	ListItemDisabledStyle = lipgloss.NewStyle().Foreground(ColorTextFaint).Strikethrough(true)
	GroupHeaderStyle      = lipgloss.NewStyle().Foreground(ColorTextDim).Bold(true).Underline(true)
)

// Menus, message boxes and the status bar
var (
	MenuBarStyle       = lipgloss.NewStyle().Background(ColorRaised).Foreground(ColorText).Padding(0, SpaceXS)
	MenuBarActiveStyle = MenuBarStyle.Background(ColorAccent).Foreground(ColorCanvas)

	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorAccent).
			Background(ColorOverlay).
			Foreground(ColorText).
			Padding(SpaceXS, SpaceSM)

	OverlayTitleStyle = PanelTitleStyle.MarginBottom(1)

	ButtonStyle          = lipgloss.NewStyle().Foreground(ColorCanvas).Background(ColorAccent).Padding(0, SpaceSM)
	ButtonSecondaryStyle = ButtonStyle.Foreground(ColorText).Background(ColorRaised)

	StatusBarStyle        = lipgloss.NewStyle().Background(ColorRaised).Foreground(ColorText).Padding(0, SpaceXS).Height(1)
	StatusBarErrorStyle   = StatusBarStyle.Background(ColorFailed).Foreground(ColorCanvas)
	StatusBarWarningStyle = StatusBarStyle.Background(ColorPaused).Foreground(ColorCanvas)
	StatusBarInfoStyle    = StatusBarStyle.Background(ColorInfo).Foreground(ColorCanvas)
)

// Activity log lines by level
var (
	LogInfoStyle  = TextStyle
	LogWarnStyle  = TextWarningStyle
	LogErrorStyle = TextErrorStyle
	LogDebugStyle = DimStyle.Italic(true)
)

// Tone classifies a machine state for coloring.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneRunning
	TonePaused
	ToneSaved
	ToneStopped
	ToneFailed
	// ToneLoading marks placeholder rows of cloud profiles being read.
	ToneLoading
)

var toneStyles = map[Tone]lipgloss.Style{
	ToneRunning: TextSuccessStyle,
	TonePaused:  TextWarningStyle,
	ToneSaved:   lipgloss.NewStyle().Foreground(ColorSaved),
	ToneStopped: TextSecondaryStyle,
	ToneFailed:  TextErrorStyle,
	ToneLoading: DimStyle.Italic(true),
}

// StateStyle returns the text style of a state tone.
func StateStyle(t Tone) lipgloss.Style {
	if s, ok := toneStyles[t]; ok {
		return s
	}
	return TextStyle
}

// Initialize sets up the design system
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}
