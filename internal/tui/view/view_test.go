package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"vboxmanager/internal/tui/design"
	"vboxmanager/internal/tui/model"
	"vboxmanager/internal/vmitem"
)

func TestRenderBeforeFirstSize(t *testing.T) {
	m := model.InitializeModel(model.Options{})
	assert.Equal(t, "Initializing...", Render(m))

	m.Width, m.Height = 120, 40
	m.CurrentAppMode = model.ModeQuitting
	assert.Equal(t, "Shutting down...", Render(m))
}

func TestPrepareLogContentKeepsLines(t *testing.T) {
	lines := []string{
		"10:00:00 [INFO] [App] started",
		"10:00:01 [WARN] [Manager] slow",
		"10:00:02 [ERROR] [Manager] failed",
		"10:00:03 [DEBUG] [Pool] detail",
	}
	out := PrepareLogContent(lines)
	rendered := strings.Split(out, "\n")
	assert.Len(t, rendered, len(lines))
	for i, line := range lines {
		assert.Contains(t, rendered[i], strings.TrimPrefix(line, "10:00:0"))
	}
	assert.Empty(t, PrepareLogContent(nil))
}

func TestComputeLayout(t *testing.T) {
	m := model.InitializeModel(model.Options{})
	m.Width, m.Height = 140, 40

	m.ShowLog = false
	l := ComputeLayout(m)
	assert.Equal(t, 38, l.BodyHeight)
	assert.Equal(t, 140-PaneLeft-4, l.PaneWidth)
	assert.Equal(t, 36, l.PaneHeight)

	m.ShowLog = true
	assert.Equal(t, 38-LogLines-3, ComputeLayout(m).BodyHeight)

	m.Dialog = 1
	assert.Equal(t, 136, ComputeLayout(m).PaneWidth)
}

func TestChooserWindowFollowsCursor(t *testing.T) {
	m := model.InitializeModel(model.Options{})
	m.Width, m.Height = 140, 20
	m.ShowLog = false

	offset, visible := ChooserWindow(m)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 15, visible)

	m.Cursor = 20
	offset, _ = ChooserWindow(m)
	assert.Equal(t, 6, offset)
}

func TestClipAndTruncate(t *testing.T) {
	assert.Equal(t, "abc…", truncate("abcdefgh", 4))
	assert.Equal(t, "abc", truncate("abc", 4))

	out := clip("one\ntwo\nthree", 3, 2)
	assert.Equal(t, "one\ntwo", out)

	styled := lipgloss.NewStyle().Bold(true).Render("wide line")
	assert.LessOrEqual(t, lipgloss.Width(clip(styled, 4, 1)), 4)
}

func TestPanelHasRequestedSize(t *testing.T) {
	out := renderPanel("Title", "content", 30, 8, false)
	assert.Equal(t, 30, lipgloss.Width(out))
	assert.Equal(t, 8, lipgloss.Height(out))
	assert.Contains(t, out, "Title")
}

func TestStateToneOfCloudPlaceholders(t *testing.T) {
	assert.Equal(t, design.ToneLoading, StateTone(vmitem.NewCloudFake(vmitem.FakeStateLoading, "")))
	assert.Equal(t, design.ToneNeutral, StateTone(vmitem.NewCloudFake(vmitem.FakeStateDone, "no access")))
}
