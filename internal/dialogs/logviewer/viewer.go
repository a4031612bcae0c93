// Package logviewer shows the log files of local VMs, one window per VM
// keyed by the VM's hardware UUID.
package logviewer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"vboxmanager/internal/vmservice"
	"vboxmanager/pkg/logging"
)

const subsystem = "LogViewer"

// ErrNoLogs is returned when a machine has no log files yet.
var ErrNoLogs = errors.New("no log files found")

// Source reads the logs of a machine.
type Source interface {
	MachineLogs(ctx context.Context, id uuid.UUID) ([]vmservice.LogFile, error)
}

// Machine identifies the VM a viewer shows.
type Machine interface {
	ID() uuid.UUID
	HardwareUUID() uuid.UUID
	Name() string
}

// Viewer is the log window of one VM.
type Viewer struct {
	machineID    uuid.UUID
	hardwareUUID uuid.UUID
	machineName  string

	src Source
	fs  afero.Fs

	pages   []*Page
	current int

	closed        bool
	closeHandlers []func()
}

func newViewer(m Machine, src Source, fs afero.Fs) *Viewer {
	return &Viewer{
		machineID:    m.ID(),
		hardwareUUID: m.HardwareUUID(),
		machineName:  m.Name(),
		src:          src,
		fs:           fs,
	}
}

func (v *Viewer) MachineID() uuid.UUID    { return v.machineID }
func (v *Viewer) HardwareUUID() uuid.UUID { return v.hardwareUUID }

// Title is the window caption.
func (v *Viewer) Title() string { return v.machineName + " - Log Viewer" }

// Pages returns the tabs, newest log first.
func (v *Viewer) Pages() []*Page { return v.pages }

// Current returns the selected tab, or nil when there are no logs.
func (v *Viewer) Current() *Page {
	if v.current < 0 || v.current >= len(v.pages) {
		return nil
	}
	return v.pages[v.current]
}

// SetCurrent selects tab i.
func (v *Viewer) SetCurrent(i int) {
	if i >= 0 && i < len(v.pages) {
		v.current = i
	}
}

// Closed reports whether the window was closed.
func (v *Viewer) Closed() bool { return v.closed }

// OnClose registers fn to run when the window closes.
func (v *Viewer) OnClose(fn func()) {
	v.closeHandlers = append(v.closeHandlers, fn)
}

// Refresh rereads the log files. Pages that still exist keep their
// bookmarks, filter and selection.
func (v *Viewer) Refresh(ctx context.Context) error {
	logs, err := v.src.MachineLogs(ctx, v.machineID)
	if err != nil {
		return fmt.Errorf("cannot read logs of %s: %w", v.machineName, err)
	}

	var selected string
	if p := v.Current(); p != nil {
		selected = p.Name
	}
	previous := make(map[string]*Page, len(v.pages))
	for _, p := range v.pages {
		previous[p.Name] = p
	}

	v.pages = v.pages[:0:0]
	v.current = 0
	for i, f := range logs {
		p, ok := previous[f.Name]
		if ok {
			p.setContent(f.Content)
		} else {
			p = newPage(f.Name, f.Content)
		}
		if f.Name == selected {
			v.current = i
		}
		v.pages = append(v.pages, p)
	}
	logging.Debug(subsystem, "Loaded %d logs for %s", len(v.pages), v.machineName)
	if len(v.pages) == 0 {
		return ErrNoLogs
	}
	return nil
}

// Save writes the selected log to path.
func (v *Viewer) Save(path string) error {
	p := v.Current()
	if p == nil {
		return ErrNoLogs
	}
	if err := afero.WriteFile(v.fs, path, []byte(p.Content()), 0o644); err != nil {
		return fmt.Errorf("cannot save log %s: %w", p.Name, err)
	}
	logging.Info(subsystem, "Saved %s (%s) to %s", p.Name, p.Size(), path)
	return nil
}

func (v *Viewer) close() {
	if v.closed {
		return
	}
	v.closed = true
	for _, fn := range v.closeHandlers {
		fn()
	}
}
