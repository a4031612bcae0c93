package defs

// StorageBus identifies a storage controller family.
type StorageBus int

const (
	StorageBusNull StorageBus = iota
	StorageBusIDE
	StorageBusSATA
	StorageBusSCSI
	StorageBusFloppy
	StorageBusSAS
	StorageBusUSB
	StorageBusPCIe
	StorageBusVirtioSCSI
)

func (b StorageBus) String() string {
	switch b {
	case StorageBusIDE:
		return "IDE"
	case StorageBusSATA:
		return "SATA"
	case StorageBusSCSI:
		return "SCSI"
	case StorageBusFloppy:
		return "Floppy"
	case StorageBusSAS:
		return "SAS"
	case StorageBusUSB:
		return "USB"
	case StorageBusPCIe:
		return "PCIe"
	case StorageBusVirtioSCSI:
		return "VirtioSCSI"
	default:
		return "Null"
	}
}

// StorageSlot addresses one attachment point on a controller.
type StorageSlot struct {
	Bus    StorageBus
	Port   int
	Device int
}

// MachineState mirrors the hypervisor's local machine state set.
type MachineState int

const (
	MachineStateNull MachineState = iota
	MachineStatePoweredOff
	MachineStateSaved
	MachineStateTeleported
	MachineStateAborted
	MachineStateRunning
	MachineStatePaused
	MachineStateStuck
	MachineStateTeleporting
	MachineStateLiveSnapshotting
	MachineStateStarting
	MachineStateStopping
	MachineStateSaving
	MachineStateRestoring
	MachineStateTeleportingPausedVM
	MachineStateTeleportingIn
	MachineStateDeletingSnapshotOnline
	MachineStateDeletingSnapshotPaused
	MachineStateOnlineSnapshotting
	MachineStateRestoringSnapshot
	MachineStateDeletingSnapshot
	MachineStateSettingUp
	MachineStateSnapshotting
)

var machineStateNames = map[MachineState]string{
	MachineStateNull:                   "Null",
	MachineStatePoweredOff:             "Powered Off",
	MachineStateSaved:                  "Saved",
	MachineStateTeleported:             "Teleported",
	MachineStateAborted:                "Aborted",
	MachineStateRunning:                "Running",
	MachineStatePaused:                 "Paused",
	MachineStateStuck:                  "Guru Meditation",
	MachineStateTeleporting:            "Teleporting",
	MachineStateLiveSnapshotting:       "Taking Live Snapshot",
	MachineStateStarting:               "Starting",
	MachineStateStopping:               "Stopping",
	MachineStateSaving:                 "Saving",
	MachineStateRestoring:              "Restoring",
	MachineStateTeleportingPausedVM:    "Teleporting Paused VM",
	MachineStateTeleportingIn:          "Teleporting",
	MachineStateDeletingSnapshotOnline: "Deleting Snapshot",
	MachineStateDeletingSnapshotPaused: "Deleting Snapshot",
	MachineStateOnlineSnapshotting:     "Taking Online Snapshot",
	MachineStateRestoringSnapshot:      "Restoring Snapshot",
	MachineStateDeletingSnapshot:       "Deleting Snapshot",
	MachineStateSettingUp:              "Setting Up",
	MachineStateSnapshotting:           "Taking Snapshot",
}

func (s MachineState) String() string {
	if name, ok := machineStateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// SessionState mirrors the lock state of a machine's session.
type SessionState int

const (
	SessionStateNull SessionState = iota
	SessionStateUnlocked
	SessionStateLocked
	SessionStateSpawning
	SessionStateUnlocking
)

func (s SessionState) String() string {
	switch s {
	case SessionStateUnlocked:
		return "Unlocked"
	case SessionStateLocked:
		return "Locked"
	case SessionStateSpawning:
		return "Spawning"
	case SessionStateUnlocking:
		return "Unlocking"
	default:
		return "Null"
	}
}

// CloudMachineState mirrors the state set reported by cloud providers.
type CloudMachineState int

const (
	CloudMachineStateInvalid CloudMachineState = iota
	CloudMachineStateProvisioning
	CloudMachineStateRunning
	CloudMachineStateStarting
	CloudMachineStateStopping
	CloudMachineStateStopped
	CloudMachineStateCreatingImage
	CloudMachineStateTerminating
	CloudMachineStateTerminated
)

func (s CloudMachineState) String() string {
	switch s {
	case CloudMachineStateProvisioning:
		return "Provisioning"
	case CloudMachineStateRunning:
		return "Running"
	case CloudMachineStateStarting:
		return "Starting"
	case CloudMachineStateStopping:
		return "Stopping"
	case CloudMachineStateStopped:
		return "Stopped"
	case CloudMachineStateCreatingImage:
		return "Creating Image"
	case CloudMachineStateTerminating:
		return "Terminating"
	case CloudMachineStateTerminated:
		return "Terminated"
	default:
		return "Invalid"
	}
}

// ConfigurationAccessLevel describes how much of a VM's configuration can
// be changed in its current state.
type ConfigurationAccessLevel int

const (
	ConfigurationAccessLevelNull ConfigurationAccessLevel = iota
	ConfigurationAccessLevelPartialSaved
	ConfigurationAccessLevelPartialRunning
	ConfigurationAccessLevelFull
)

// LaunchMode selects how a local VM is started.
type LaunchMode int

const (
	LaunchModeInvalid LaunchMode = iota
	LaunchModeDefault
	LaunchModeHeadless
	LaunchModeSeparate
)

func (m LaunchMode) String() string {
	switch m {
	case LaunchModeDefault:
		return "Default"
	case LaunchModeHeadless:
		return "Headless"
	case LaunchModeSeparate:
		return "Separate"
	default:
		return "Invalid"
	}
}
