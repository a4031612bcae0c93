package vmservice

import (
	"time"

	"github.com/google/uuid"

	"vboxmanager/internal/defs"
)

// Machine is a settings snapshot of one local VM.
type Machine struct {
	ID           uuid.UUID
	HardwareUUID uuid.UUID
	Name         string
	Accessible   bool
	AccessError  *Error
	OSTypeID     string
	State        defs.MachineState
	SettingsFile string
	Groups       []string

	SnapshotName    string
	SnapshotCount   int
	LastStateChange time.Time

	SessionState defs.SessionState
	// SessionName is "headless" when the VM runs without a frontend.
	SessionName string
	SessionPID  int
	// ACPIEntered is reported by the running session's guest.
	ACPIEntered bool

	MemoryBytes int64
	CPUCount    int
	Description string
}

// CloudMachine is the last known state of one cloud VM.
type CloudMachine struct {
	ID           uuid.UUID
	Name         string
	Provider     string
	Profile      string
	OSTypeID     string
	State        defs.CloudMachineState
	Accessible   bool
	AccessError  *Error
	ConsoleReady bool
}

// ConsoleCommand selects a cloud console command flavor.
type ConsoleCommand int

const (
	ConsoleSerialUnix ConsoleCommand = iota
	ConsoleSerialWindows
	ConsoleVNCUnix
	ConsoleVNCWindows
)

// HostInterface describes a host network interface.
type HostInterface struct {
	ID          uuid.UUID
	Name        string
	NetworkName string
	HostOnly    bool
	DHCPEnabled bool

	IPv4Address string
	IPv4Mask    string

	IPv6Supported    bool
	IPv6Address      string
	IPv6PrefixLength int
}

// DHCPServer is the configuration of a DHCP server bound to a network.
type DHCPServer struct {
	NetworkName string
	Enabled     bool
	Address     string
	Mask        string
	LowerIP     string
	UpperIP     string
}

// CloudProvider groups the profiles of one cloud vendor.
type CloudProvider struct {
	ID         uuid.UUID
	ShortName  string
	Name       string
	Properties []string
	Profiles   []CloudProfile
}

// CloudProfile is a named set of provider properties.
type CloudProfile struct {
	Name       string
	Properties map[string]string
}

// LogFile is one log of a machine, newest first in listings.
type LogFile struct {
	Name    string
	Content string
}

// SystemProperties exposes host-wide limits and folders.
type SystemProperties struct {
	DefaultMachineFolder string
	HomeFolder           string
	MaxPorts             map[defs.StorageBus]int
	MaxDevices           map[defs.StorageBus]int
}

// MaxPortCountForStorageBus returns the port limit for bus.
func (p SystemProperties) MaxPortCountForStorageBus(bus defs.StorageBus) int {
	return p.MaxPorts[bus]
}

// MaxDevicesPerPortForStorageBus returns the per-port device limit for bus.
func (p SystemProperties) MaxDevicesPerPortForStorageBus(bus defs.StorageBus) int {
	return p.MaxDevices[bus]
}

// DefaultSystemProperties returns the limits of a stock hypervisor install.
func DefaultSystemProperties() SystemProperties {
	return SystemProperties{
		MaxPorts: map[defs.StorageBus]int{
			defs.StorageBusIDE:        2,
			defs.StorageBusSATA:       30,
			defs.StorageBusSCSI:       16,
			defs.StorageBusFloppy:     1,
			defs.StorageBusSAS:        255,
			defs.StorageBusUSB:        8,
			defs.StorageBusPCIe:       255,
			defs.StorageBusVirtioSCSI: 256,
		},
		MaxDevices: map[defs.StorageBus]int{
			defs.StorageBusIDE:        2,
			defs.StorageBusSATA:       1,
			defs.StorageBusSCSI:       1,
			defs.StorageBusFloppy:     2,
			defs.StorageBusSAS:        1,
			defs.StorageBusUSB:        1,
			defs.StorageBusPCIe:       1,
			defs.StorageBusVirtioSCSI: 1,
		},
	}
}
