package design

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		isDarkMode bool
		expected   bool
	}{
		{"set dark mode", true, true},
		{"set light mode", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Initialize(tt.isDarkMode)
			assert.Equal(t, tt.expected, lipgloss.HasDarkBackground())
		})
	}
}

func TestStateStyle(t *testing.T) {
	tests := []struct {
		tone Tone
		want lipgloss.TerminalColor
	}{
		{ToneRunning, ColorRunning},
		{TonePaused, ColorPaused},
		{ToneSaved, ColorSaved},
		{ToneFailed, ColorFailed},
		{ToneStopped, ColorTextDim},
		{ToneLoading, ColorTextFaint},
		{ToneNeutral, ColorText},
		{Tone(99), ColorText},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StateStyle(tt.tone).GetForeground(), "tone %d", tt.tone)
	}
}

func TestFocusedPanelKeepsFrameSize(t *testing.T) {
	assert.Equal(t, PanelStyle.GetHorizontalFrameSize(), PanelFocusedStyle.GetHorizontalFrameSize())
	assert.Equal(t, PanelStyle.GetVerticalFrameSize(), PanelFocusedStyle.GetVerticalFrameSize())
}
