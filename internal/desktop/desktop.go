// Package desktop talks to the host desktop: file managers, browsers,
// terminal applications, shortcuts and the clipboard.
package desktop

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"vboxmanager/pkg/logging"
)

const subsystem = "Desktop"

// System implements the desktop services with the host's native tools.
type System struct {
	goos  string
	fs    afero.Fs
	start func(cmd *exec.Cmd) error
}

// NewSystem returns the desktop of the running OS. Shortcuts are written
// to fs.
func NewSystem(fs afero.Fs) *System {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &System{goos: runtime.GOOS, fs: fs, start: (*exec.Cmd).Start}
}

// OpenURL opens url in the default browser.
func (s *System) OpenURL(url string) error {
	return s.open(url)
}

// OpenInFileManager reveals path in the file manager. Only the containing
// folder is opened where the file manager cannot select a file.
func (s *System) OpenInFileManager(path string) error {
	switch s.goos {
	case "darwin":
		return s.run("open", "-R", path)
	case "windows":
		return s.run("explorer", "/select,"+path)
	default:
		return s.open(filepath.Dir(path))
	}
}

// Execute starts an external application without waiting for it.
func (s *System) Execute(path string, args []string) error {
	if path == "" {
		return fmt.Errorf("no application configured")
	}
	return s.run(path, args...)
}

// CreateMachineShortcut writes a launcher for the VM into dir.
func (s *System) CreateMachineShortcut(settingsFile, dir, name string, id uuid.UUID) error {
	var (
		file    string
		content string
	)
	switch s.goos {
	case "windows":
		file = filepath.Join(dir, name+".bat")
		content = fmt.Sprintf("@echo off\r\nstart \"\" VirtualBoxVM --startvm %s\r\n", id)
	case "darwin":
		file = filepath.Join(dir, name+".command")
		content = fmt.Sprintf("#!/bin/sh\nexec VirtualBoxVM --startvm %s\n", id)
	default:
		file = filepath.Join(dir, name+".desktop")
		content = strings.Join([]string{
			"[Desktop Entry]",
			"Type=Application",
			"Version=1.0",
			"Name=" + name,
			"Comment=Starts the VirtualBox machine " + name,
			"Exec=VirtualBoxVM --comment \"" + name + "\" --startvm \"" + id.String() + "\"",
			"Icon=virtualbox-vbox.png",
			"Path=" + filepath.Dir(settingsFile),
			"",
		}, "\n")
	}
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := afero.WriteFile(s.fs, file, []byte(content), 0o755); err != nil {
		return fmt.Errorf("failed to write shortcut %s: %w", file, err)
	}
	logging.Info(subsystem, "Created shortcut %s", file)
	return nil
}

func (s *System) open(target string) error {
	switch s.goos {
	case "windows":
		return s.run("cmd", "/c", "start", "", target)
	case "darwin":
		return s.run("open", target)
	default:
		return s.run("xdg-open", target)
	}
}

func (s *System) run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := s.start(cmd); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	logging.Debug(subsystem, "Started %s %s", name, strings.Join(args, " "))
	return nil
}

// Clipboard writes to the system clipboard.
type Clipboard struct{}

func (Clipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }
