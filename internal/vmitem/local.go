package vmitem

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"vboxmanager/internal/defs"
	"vboxmanager/internal/vmservice"
	"vboxmanager/pkg/logging"
)

const localSubsystem = "LocalItem"

// MachineSource reads local machine snapshots.
type MachineSource interface {
	Machine(ctx context.Context, id uuid.UUID) (vmservice.Machine, error)
}

// Local is a VM registered with the local hypervisor.
type Local struct {
	attrs
	src     MachineSource
	machine vmservice.Machine
}

var stateIcons = map[defs.MachineState]string{
	defs.MachineStatePoweredOff:             ":/state_powered_off_16px.png",
	defs.MachineStateSaved:                  ":/state_saved_16px.png",
	defs.MachineStateTeleported:             ":/state_saved_16px.png",
	defs.MachineStateAborted:                ":/state_aborted_16px.png",
	defs.MachineStateRunning:                ":/state_running_16px.png",
	defs.MachineStatePaused:                 ":/state_paused_16px.png",
	defs.MachineStateStuck:                  ":/state_stuck_16px.png",
	defs.MachineStateTeleporting:            ":/state_running_16px.png",
	defs.MachineStateLiveSnapshotting:       ":/state_running_16px.png",
	defs.MachineStateStarting:               ":/state_running_16px.png",
	defs.MachineStateStopping:               ":/state_running_16px.png",
	defs.MachineStateSaving:                 ":/state_saving_16px.png",
	defs.MachineStateRestoring:              ":/state_restoring_16px.png",
	defs.MachineStateTeleportingPausedVM:    ":/state_saving_16px.png",
	defs.MachineStateTeleportingIn:          ":/state_restoring_16px.png",
	defs.MachineStateDeletingSnapshotOnline: ":/state_discarding_16px.png",
	defs.MachineStateDeletingSnapshotPaused: ":/state_discarding_16px.png",
	defs.MachineStateOnlineSnapshotting:     ":/state_saving_16px.png",
	defs.MachineStateRestoringSnapshot:      ":/state_discarding_16px.png",
	defs.MachineStateDeletingSnapshot:       ":/state_discarding_16px.png",
	defs.MachineStateSettingUp:              ":/vm_settings_16px.png",
	defs.MachineStateSnapshotting:           ":/state_saving_16px.png",
}

// NewLocal builds an item from an already fetched snapshot.
func NewLocal(src MachineSource, m vmservice.Machine) *Local {
	l := &Local{src: src}
	l.apply(m)
	return l
}

func (l *Local) Kind() Kind { return KindLocal }

// Machine returns the cached settings snapshot.
func (l *Local) Machine() vmservice.Machine { return l.machine }

func (l *Local) SettingsFile() string            { return l.machine.SettingsFile }
func (l *Local) Groups() []string                { return l.machine.Groups }
func (l *Local) SnapshotName() string            { return l.machine.SnapshotName }
func (l *Local) SnapshotCount() int              { return l.machine.SnapshotCount }
func (l *Local) LastStateChange() time.Time      { return l.machine.LastStateChange }
func (l *Local) SessionState() defs.SessionState { return l.machine.SessionState }
func (l *Local) State() defs.MachineState        { return l.machine.State }

// PID returns the session process id, or 0 when nothing runs.
func (l *Local) PID() int { return l.machine.SessionPID }

// ACPIEntered reports whether the running guest accepts a power button
// press.
func (l *Local) ACPIEntered() bool {
	return l.IsStarted() && l.machine.SessionState == defs.SessionStateLocked && l.machine.ACPIEntered
}

// HardwareUUID keys per-VM windows such as the log viewer.
func (l *Local) HardwareUUID() uuid.UUID {
	if l.machine.HardwareUUID == uuid.Nil {
		return l.id
	}
	return l.machine.HardwareUUID
}

// Recache re-reads the machine. A failed read keeps the previous snapshot.
func (l *Local) Recache(ctx context.Context) {
	m, err := l.src.Machine(ctx, l.id)
	if err != nil {
		logging.Error(localSubsystem, err, "Failed to recache machine %s", l.id)
		return
	}
	l.apply(m)
}

func (l *Local) apply(m vmservice.Machine) {
	l.machine = m
	l.id = m.ID
	l.accessible = m.Accessible
	if l.accessible {
		l.name = m.Name
		l.accessError = ""
		l.osTypeID = m.OSTypeID
		l.stateName = m.State.String()
		l.stateIcon = stateIcons[m.State]
		l.accessLevel = accessLevel(m.SessionState, m.State)
	} else {
		l.name = strings.TrimSuffix(filepath.Base(m.SettingsFile), filepath.Ext(m.SettingsFile))
		if l.name == "" || l.name == "." {
			l.name = m.Name
		}
		l.accessError = ""
		if m.AccessError != nil {
			l.accessError = vmservice.FormatError(m.AccessError)
		}
		l.osTypeID = osTypeOther
		l.stateName = inaccessible
		l.stateIcon = iconAborted
		l.accessLevel = defs.ConfigurationAccessLevelNull
	}
	l.hasDetails = true
	l.RecachePixmap()
	l.toolTip = l.buildToolTip()
}

func (l *Local) RecachePixmap() {
	l.pixmap = osPixmap(l.osTypeID)
}

func (l *Local) buildToolTip() string {
	if !l.accessible {
		return fmt.Sprintf("%s\n%s", l.name, inaccessible)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s", l.name, l.stateName)
	if !l.machine.LastStateChange.IsZero() {
		fmt.Fprintf(&b, " since %s", l.machine.LastStateChange.Format("2006-01-02 15:04:05"))
	}
	if l.machine.MemoryBytes > 0 {
		fmt.Fprintf(&b, "\n%s RAM, %d CPU", humanize.IBytes(uint64(l.machine.MemoryBytes)), l.machine.CPUCount)
	}
	fmt.Fprintf(&b, "\nSession %s", strings.ToLower(l.machine.SessionState.String()))
	return b.String()
}

// LastStateChangeText renders the state age relative to now.
func (l *Local) LastStateChangeText(now time.Time) string {
	if l.machine.LastStateChange.IsZero() {
		return ""
	}
	return humanize.RelTime(l.machine.LastStateChange, now, "ago", "from now")
}

// accessLevel derives how much configuration may change from the
// session and machine state.
func accessLevel(session defs.SessionState, state defs.MachineState) defs.ConfigurationAccessLevel {
	switch session {
	case defs.SessionStateUnlocked, defs.SessionStateNull:
		switch state {
		case defs.MachineStateSaved:
			return defs.ConfigurationAccessLevelPartialSaved
		case defs.MachineStatePoweredOff, defs.MachineStateAborted, defs.MachineStateTeleported:
			return defs.ConfigurationAccessLevelFull
		}
	case defs.SessionStateLocked:
		switch state {
		case defs.MachineStateRunning, defs.MachineStatePaused:
			return defs.ConfigurationAccessLevelPartialRunning
		}
	}
	return defs.ConfigurationAccessLevelNull
}

func (l *Local) sessionFree() bool {
	return l.machine.SessionState == defs.SessionStateUnlocked || l.machine.SessionState == defs.SessionStateNull
}

func (l *Local) IsEditable() bool {
	return l.accessible && l.sessionFree()
}

func (l *Local) IsRemovable() bool {
	return !l.accessible || l.sessionFree()
}

func (l *Local) IsSaved() bool {
	return l.accessible && l.machine.State == defs.MachineStateSaved
}

// IsPoweredOff also holds for saved machines since both can be started.
func (l *Local) IsPoweredOff() bool {
	if !l.accessible {
		return false
	}
	switch l.machine.State {
	case defs.MachineStatePoweredOff, defs.MachineStateSaved, defs.MachineStateTeleported, defs.MachineStateAborted:
		return true
	}
	return false
}

func (l *Local) IsStarted() bool {
	return l.IsRunning() || l.IsPaused() || l.IsStuck()
}

func (l *Local) IsRunning() bool {
	return l.accessible && l.machine.State == defs.MachineStateRunning
}

func (l *Local) IsRunningHeadless() bool {
	return l.IsRunning() && l.machine.SessionName == "headless"
}

func (l *Local) IsPaused() bool {
	return l.accessible &&
		(l.machine.State == defs.MachineStatePaused || l.machine.State == defs.MachineStateTeleportingPausedVM)
}

func (l *Local) IsStuck() bool {
	return l.accessible && l.machine.State == defs.MachineStateStuck
}

// CanBeSwitchedTo reports whether a console window exists to raise.
func (l *Local) CanBeSwitchedTo() bool {
	return l.IsStarted() && l.machine.SessionName != "headless" && l.machine.SessionPID != 0
}
