package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		" error ": LevelError,
		"bogus":   LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestCLIModeWritesSubsystemAndError(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelDebug, &buf)

	Error("Manager", errors.New("boom"), "failed to launch %s", "vm1")

	out := buf.String()
	assert.Contains(t, out, "failed to launch vm1")
	assert.Contains(t, out, "subsystem=Manager")
	assert.Contains(t, out, "error=boom")
}

func TestTUIModeFiltersAndDelivers(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	defer CloseTUIChannel()

	Debug("ToolsModel", "hidden")
	Warn("ToolsModel", "visible %d", 1)

	select {
	case entry := <-ch:
		assert.Equal(t, LevelWarn, entry.Level)
		assert.Equal(t, "ToolsModel", entry.Subsystem)
		assert.Equal(t, "visible 1", entry.Message)
	default:
		require.Fail(t, "expected a log entry")
	}
	assert.Empty(t, ch)
}

func TestMachineAttachesAttributes(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Machine(LevelInfo, "Manager", "Ubuntu", "6c1b0000-0000-4000-8000-000000000001", nil, "Launching in %s mode", "gui")

	out := buf.String()
	assert.Contains(t, out, "Launching in gui mode")
	assert.Contains(t, out, "vm=Ubuntu")
	assert.Contains(t, out, "id=6c1b0000-0000-4000-8000-000000000001")
}

func TestCloseTUIChannelFallsBackToStderr(t *testing.T) {
	ch := InitForTUI(LevelDebug)
	CloseTUIChannel()

	_, open := <-ch
	assert.False(t, open)

	// Logging after close must not panic on the closed channel.
	assert.NotPanics(t, func() { Info("TUI", "after close") })
	CloseTUIChannel()
}

func TestLevelStrings(t *testing.T) {
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "UNKNOWN", LogLevel(9).String())
}
