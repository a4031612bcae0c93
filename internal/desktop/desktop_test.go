package desktop

import (
	"os/exec"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecordingSystem(goos string) (*System, *[][]string) {
	var started [][]string
	s := NewSystem(afero.NewMemMapFs())
	s.goos = goos
	s.start = func(cmd *exec.Cmd) error {
		started = append(started, cmd.Args)
		return nil
	}
	return s, &started
}

func TestOpenPerPlatform(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{"linux", []string{"xdg-open", "https://www.virtualbox.org"}},
		{"darwin", []string{"open", "https://www.virtualbox.org"}},
		{"windows", []string{"cmd", "/c", "start", "", "https://www.virtualbox.org"}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			s, started := newRecordingSystem(tt.goos)
			require.NoError(t, s.OpenURL("https://www.virtualbox.org"))
			assert.Equal(t, [][]string{tt.want}, *started)
		})
	}
}

func TestOpenInFileManager(t *testing.T) {
	s, started := newRecordingSystem("linux")
	require.NoError(t, s.OpenInFileManager("/vms/Ubuntu/Ubuntu.vbox"))
	assert.Equal(t, [][]string{{"xdg-open", "/vms/Ubuntu"}}, *started)

	s, started = newRecordingSystem("darwin")
	require.NoError(t, s.OpenInFileManager("/vms/Ubuntu/Ubuntu.vbox"))
	assert.Equal(t, [][]string{{"open", "-R", "/vms/Ubuntu/Ubuntu.vbox"}}, *started)
}

func TestExecute(t *testing.T) {
	s, started := newRecordingSystem("linux")
	require.NoError(t, s.Execute("xterm", []string{"-e", "ssh host"}))
	assert.Equal(t, [][]string{{"xterm", "-e", "ssh host"}}, *started)
	assert.Error(t, s.Execute("", nil))
}

func TestCreateMachineShortcut(t *testing.T) {
	s, _ := newRecordingSystem("linux")
	id := uuid.MustParse("0b4f34e4-4f8e-4b2c-9d43-2b8c0a3b6d11")

	require.NoError(t, s.CreateMachineShortcut("/vms/Ubuntu/Ubuntu.vbox", "/home/me/Desktop", "Ubuntu", id))
	data, err := afero.ReadFile(s.fs, "/home/me/Desktop/Ubuntu.desktop")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Exec=VirtualBoxVM --comment \"Ubuntu\" --startvm \"0b4f34e4-4f8e-4b2c-9d43-2b8c0a3b6d11\"")
	assert.Contains(t, string(data), "Path=/vms/Ubuntu")
}

func TestSplitArguments(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"-e sh -c", []string{"-e", "sh", "-c"}},
		{`--title "Cloud Console" -x`, []string{"--title", "Cloud Console", "-x"}},
		{`--opt='a b'c`, []string{"--opt=a bc"}},
		{`  spaced   out  `, []string{"spaced", "out"}},
		{`""`, []string{""}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitArguments(tt.in), tt.in)
	}
}
