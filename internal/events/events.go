package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"vboxmanager/internal/defs"
)

// Type defines the type of event
type Type string

const (
	// Local machine events
	TypeMachineStateChange   Type = "machine.state"
	TypeMachineDataChange    Type = "machine.data"
	TypeMachineRegistered    Type = "machine.registered"
	TypeSessionStateChange   Type = "session.state"
	TypeSnapshotTaken        Type = "snapshot.taken"
	TypeSnapshotDeleted      Type = "snapshot.deleted"
	TypeSnapshotChanged      Type = "snapshot.changed"
	TypeSnapshotRestored     Type = "snapshot.restored"
	TypeCloudMachineState    Type = "cloud.state"
	TypeCloudProfileChange   Type = "cloud.profile"
	TypeMediumEnumerated     Type = "medium.enumerated"
	TypeMediumEnumerationEnd Type = "medium.enumeration.finished"
	TypeHostNetworkChange    Type = "network.host"
	TypeDHCPServerChange     Type = "network.dhcp"
)

// Event is one notification from the VM service. Only the fields that
// apply to Type are set.
type Event struct {
	ID        string
	Type      Type
	Source    string
	Timestamp time.Time

	MachineID    uuid.UUID
	State        defs.MachineState
	SessionState defs.SessionState
	CloudState   defs.CloudMachineState
	SnapshotID   uuid.UUID
	MediumID     uuid.UUID
	Registered   bool
	Name         string
}

// New stamps an event of type t with an id and the current time.
func New(t Type, source string) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		Source:    source,
		Timestamp: time.Now(),
	}
}

// MachineState returns a state-change event for a local machine.
func MachineState(source string, id uuid.UUID, state defs.MachineState) Event {
	e := New(TypeMachineStateChange, source)
	e.MachineID = id
	e.State = state
	return e
}

// MachineData returns a settings-change event for a local machine.
func MachineData(source string, id uuid.UUID) Event {
	e := New(TypeMachineDataChange, source)
	e.MachineID = id
	return e
}

// MachineRegistered reports a machine being added to or removed from the inventory.
func MachineRegistered(source string, id uuid.UUID, registered bool) Event {
	e := New(TypeMachineRegistered, source)
	e.MachineID = id
	e.Registered = registered
	return e
}

// SessionState returns a session-change event for a local machine.
func SessionState(source string, id uuid.UUID, state defs.SessionState) Event {
	e := New(TypeSessionStateChange, source)
	e.MachineID = id
	e.SessionState = state
	return e
}

// Snapshot returns a snapshot event of type t.
func Snapshot(t Type, source string, machineID, snapshotID uuid.UUID) Event {
	e := New(t, source)
	e.MachineID = machineID
	e.SnapshotID = snapshotID
	return e
}

// CloudState returns a state-change event for a cloud machine.
func CloudState(source string, id uuid.UUID, state defs.CloudMachineState) Event {
	e := New(TypeCloudMachineState, source)
	e.MachineID = id
	e.CloudState = state
	return e
}

// MediumEnumerated reports one medium finishing enumeration.
func MediumEnumerated(source string, id uuid.UUID) Event {
	e := New(TypeMediumEnumerated, source)
	e.MediumID = id
	return e
}

func (e Event) String() string {
	switch e.Type {
	case TypeMachineStateChange:
		return fmt.Sprintf("machine %s changed state to %s", e.MachineID, e.State)
	case TypeSessionStateChange:
		return fmt.Sprintf("machine %s session is %s", e.MachineID, e.SessionState)
	case TypeCloudMachineState:
		return fmt.Sprintf("cloud machine %s changed state to %s", e.MachineID, e.CloudState)
	case TypeMachineRegistered:
		if e.Registered {
			return fmt.Sprintf("machine %s registered", e.MachineID)
		}
		return fmt.Sprintf("machine %s unregistered", e.MachineID)
	}
	if e.MachineID != uuid.Nil {
		return fmt.Sprintf("%s for machine %s", e.Type, e.MachineID)
	}
	return string(e.Type)
}
