package memory

import (
	"fmt"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"vboxmanager/internal/defs"
	"vboxmanager/internal/vmservice"
)

// Inventory is the on-disk description of the machines, networks and
// cloud accounts the in-process service exposes.
type Inventory struct {
	MachineFolder  string              `yaml:"machineFolder,omitempty"`
	HomeFolder     string              `yaml:"homeFolder,omitempty"`
	Machines       []MachineSpec       `yaml:"machines,omitempty"`
	Cloud          CloudSpec           `yaml:"cloud,omitempty"`
	HostInterfaces []HostInterfaceSpec `yaml:"hostInterfaces,omitempty"`
	DHCPServers    []DHCPServerSpec    `yaml:"dhcpServers,omitempty"`
}

// MachineSpec describes one local VM.
type MachineSpec struct {
	ID            string       `yaml:"id,omitempty"`
	Name          string       `yaml:"name"`
	OSType        string       `yaml:"osType,omitempty"`
	State         string       `yaml:"state,omitempty"`
	SettingsFile  string       `yaml:"settingsFile,omitempty"`
	Groups        []string     `yaml:"groups,omitempty"`
	Memory        string       `yaml:"memory,omitempty"`
	CPUs          int          `yaml:"cpus,omitempty"`
	Description   string       `yaml:"description,omitempty"`
	Inaccessible  string       `yaml:"inaccessible,omitempty"`
	Snapshot      string       `yaml:"snapshot,omitempty"`
	SnapshotCount int          `yaml:"snapshotCount,omitempty"`
	Session       *SessionSpec `yaml:"session,omitempty"`
	Logs          []LogSpec    `yaml:"logs,omitempty"`
}

// SessionSpec describes the session of a running VM.
type SessionSpec struct {
	Name string `yaml:"name,omitempty"`
	PID  int    `yaml:"pid,omitempty"`
	ACPI bool   `yaml:"acpi,omitempty"`
}

// LogSpec is one machine log file.
type LogSpec struct {
	Name    string `yaml:"name"`
	Content string `yaml:"content"`
}

// CloudSpec lists cloud providers and the VMs of their profiles.
type CloudSpec struct {
	Providers []ProviderSpec     `yaml:"providers,omitempty"`
	Machines  []CloudMachineSpec `yaml:"machines,omitempty"`
}

// ProviderSpec describes one cloud provider.
type ProviderSpec struct {
	ShortName  string        `yaml:"shortName"`
	Name       string        `yaml:"name"`
	Properties []string      `yaml:"properties,omitempty"`
	Profiles   []ProfileSpec `yaml:"profiles,omitempty"`
}

// ProfileSpec is one provider profile.
type ProfileSpec struct {
	Name       string            `yaml:"name"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

// CloudMachineSpec describes one cloud VM.
type CloudMachineSpec struct {
	ID       string `yaml:"id,omitempty"`
	Name     string `yaml:"name"`
	Provider string `yaml:"provider"`
	Profile  string `yaml:"profile"`
	OSType   string `yaml:"osType,omitempty"`
	State    string `yaml:"state,omitempty"`
}

// HostInterfaceSpec describes one host network interface.
type HostInterfaceSpec struct {
	Name       string `yaml:"name"`
	HostOnly   bool   `yaml:"hostOnly,omitempty"`
	DHCP       bool   `yaml:"dhcp,omitempty"`
	IPv4       string `yaml:"ipv4,omitempty"`
	Mask       string `yaml:"mask,omitempty"`
	IPv6       string `yaml:"ipv6,omitempty"`
	IPv6Prefix int    `yaml:"ipv6Prefix,omitempty"`
}

// DHCPServerSpec describes one DHCP server.
type DHCPServerSpec struct {
	Network string `yaml:"network"`
	Enabled bool   `yaml:"enabled,omitempty"`
	Address string `yaml:"address,omitempty"`
	Mask    string `yaml:"mask,omitempty"`
	Lower   string `yaml:"lower,omitempty"`
	Upper   string `yaml:"upper,omitempty"`
}

// LoadInventory reads an inventory file from fsys.
func LoadInventory(fsys afero.Fs, path string) (*Inventory, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory %s: %w", path, err)
	}
	return ParseInventory(data)
}

// ParseInventory decodes YAML inventory data.
func ParseInventory(data []byte) (*Inventory, error) {
	var inv Inventory
	if err := yaml.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("failed to parse inventory: %w", err)
	}
	return &inv, nil
}

var machineStatesByName = map[string]defs.MachineState{
	"poweredoff":          defs.MachineStatePoweredOff,
	"saved":               defs.MachineStateSaved,
	"aborted":             defs.MachineStateAborted,
	"running":             defs.MachineStateRunning,
	"paused":              defs.MachineStatePaused,
	"stuck":               defs.MachineStateStuck,
	"teleportingpausedvm": defs.MachineStateTeleportingPausedVM,
	"starting":            defs.MachineStateStarting,
	"stopping":            defs.MachineStateStopping,
	"saving":              defs.MachineStateSaving,
	"restoring":           defs.MachineStateRestoring,
}

var cloudStatesByName = map[string]defs.CloudMachineState{
	"provisioning":  defs.CloudMachineStateProvisioning,
	"running":       defs.CloudMachineStateRunning,
	"starting":      defs.CloudMachineStateStarting,
	"stopping":      defs.CloudMachineStateStopping,
	"stopped":       defs.CloudMachineStateStopped,
	"creatingimage": defs.CloudMachineStateCreatingImage,
	"terminating":   defs.CloudMachineStateTerminating,
	"terminated":    defs.CloudMachineStateTerminated,
}

func parseID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.New(), nil
	}
	return uuid.Parse(s)
}

func (spec MachineSpec) build(folder string) (*vmservice.Machine, []vmservice.LogFile, error) {
	id, err := parseID(spec.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("machine %q: invalid id: %w", spec.Name, err)
	}

	state := defs.MachineStatePoweredOff
	if spec.State != "" {
		s, ok := machineStatesByName[strings.ToLower(spec.State)]
		if !ok {
			return nil, nil, fmt.Errorf("machine %q: unknown state %q", spec.Name, spec.State)
		}
		state = s
	}

	var memory int64
	if spec.Memory != "" {
		memory, err = units.RAMInBytes(spec.Memory)
		if err != nil {
			return nil, nil, fmt.Errorf("machine %q: invalid memory size: %w", spec.Name, err)
		}
	}

	settings := spec.SettingsFile
	if settings == "" {
		settings = fmt.Sprintf("%s/%s/%s.vbox", strings.TrimSuffix(folder, "/"), spec.Name, spec.Name)
	}
	groups := spec.Groups
	if len(groups) == 0 {
		groups = []string{"/"}
	}

	m := &vmservice.Machine{
		ID:              id,
		HardwareUUID:    id,
		Name:            spec.Name,
		Accessible:      spec.Inaccessible == "",
		OSTypeID:        spec.OSType,
		State:           state,
		SettingsFile:    settings,
		Groups:          groups,
		SnapshotName:    spec.Snapshot,
		SnapshotCount:   spec.SnapshotCount,
		LastStateChange: time.Now(),
		SessionState:    defs.SessionStateUnlocked,
		MemoryBytes:     memory,
		CPUCount:        spec.CPUs,
		Description:     spec.Description,
	}
	if !m.Accessible {
		m.AccessError = &vmservice.Error{
			Component:  "MachineWrap",
			Interface:  "IMachine",
			ResultCode: vmservice.ResultFileError,
			Message:    spec.Inaccessible,
		}
	}
	if spec.Session != nil {
		m.SessionState = defs.SessionStateLocked
		m.SessionName = spec.Session.Name
		m.SessionPID = spec.Session.PID
		m.ACPIEntered = spec.Session.ACPI
	}

	logs := make([]vmservice.LogFile, 0, len(spec.Logs))
	for _, l := range spec.Logs {
		logs = append(logs, vmservice.LogFile{Name: l.Name, Content: l.Content})
	}
	return m, logs, nil
}

func (spec CloudMachineSpec) build() (*vmservice.CloudMachine, error) {
	id, err := parseID(spec.ID)
	if err != nil {
		return nil, fmt.Errorf("cloud machine %q: invalid id: %w", spec.Name, err)
	}
	state := defs.CloudMachineStateRunning
	if spec.State != "" {
		s, ok := cloudStatesByName[strings.ToLower(spec.State)]
		if !ok {
			return nil, fmt.Errorf("cloud machine %q: unknown state %q", spec.Name, spec.State)
		}
		state = s
	}
	return &vmservice.CloudMachine{
		ID:         id,
		Name:       spec.Name,
		Provider:   spec.Provider,
		Profile:    spec.Profile,
		OSTypeID:   spec.OSType,
		State:      state,
		Accessible: true,
	}, nil
}
