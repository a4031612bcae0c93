// Package memory is an in-process implementation of the VM service backed
// by a YAML inventory. State changes are kept in memory only.
package memory

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"vboxmanager/internal/defs"
	"vboxmanager/internal/events"
	"vboxmanager/internal/vmservice"
	"vboxmanager/pkg/logging"
)

const source = "memory"

// Service implements vmservice.Service.
type Service struct {
	mu sync.RWMutex

	props vmservice.SystemProperties
	bus   events.Bus

	machines     map[uuid.UUID]*vmservice.Machine
	machineOrder []uuid.UUID
	logs         map[uuid.UUID][]vmservice.LogFile

	providers     []vmservice.CloudProvider
	savedProfiles map[string][]vmservice.CloudProfile
	cloud         map[uuid.UUID]*vmservice.CloudMachine
	cloudOrder    []uuid.UUID
	cloudConsoles map[uuid.UUID]string

	hosts     []vmservice.HostInterface
	dhcp      map[string]*vmservice.DHCPServer
	nextIndex int

	failures map[string]error
}

var _ vmservice.Service = (*Service)(nil)

// New builds a service from inv. A nil inventory yields an empty service.
func New(inv *Inventory, bus events.Bus) (*Service, error) {
	if bus == nil {
		bus = events.NewBus()
	}
	if inv == nil {
		inv = &Inventory{}
	}

	props := vmservice.DefaultSystemProperties()
	props.DefaultMachineFolder = inv.MachineFolder
	props.HomeFolder = inv.HomeFolder

	s := &Service{
		props:         props,
		bus:           bus,
		machines:      make(map[uuid.UUID]*vmservice.Machine),
		logs:          make(map[uuid.UUID][]vmservice.LogFile),
		cloud:         make(map[uuid.UUID]*vmservice.CloudMachine),
		cloudConsoles: make(map[uuid.UUID]string),
		savedProfiles: make(map[string][]vmservice.CloudProfile),
		dhcp:          make(map[string]*vmservice.DHCPServer),
		failures:      make(map[string]error),
	}

	for _, spec := range inv.Machines {
		m, logs, err := spec.build(inv.MachineFolder)
		if err != nil {
			return nil, err
		}
		s.machines[m.ID] = m
		s.machineOrder = append(s.machineOrder, m.ID)
		s.logs[m.ID] = logs
	}

	for _, p := range inv.Cloud.Providers {
		provider := vmservice.CloudProvider{
			ID:         uuid.NewSHA1(uuid.NameSpaceURL, []byte(p.ShortName)),
			ShortName:  p.ShortName,
			Name:       p.Name,
			Properties: p.Properties,
		}
		for _, prof := range p.Profiles {
			provider.Profiles = append(provider.Profiles, vmservice.CloudProfile{
				Name:       prof.Name,
				Properties: cloneProps(prof.Properties),
			})
		}
		s.providers = append(s.providers, provider)
		s.savedProfiles[p.ShortName] = cloneProfiles(provider.Profiles)
	}
	for _, spec := range inv.Cloud.Machines {
		cm, err := spec.build()
		if err != nil {
			return nil, err
		}
		s.cloud[cm.ID] = cm
		s.cloudOrder = append(s.cloudOrder, cm.ID)
	}

	for _, h := range inv.HostInterfaces {
		s.hosts = append(s.hosts, vmservice.HostInterface{
			ID:               uuid.NewSHA1(uuid.NameSpaceURL, []byte(h.Name)),
			Name:             h.Name,
			NetworkName:      networkName(h.Name),
			HostOnly:         h.HostOnly,
			DHCPEnabled:      h.DHCP,
			IPv4Address:      h.IPv4,
			IPv4Mask:         h.Mask,
			IPv6Supported:    h.IPv6 != "",
			IPv6Address:      h.IPv6,
			IPv6PrefixLength: h.IPv6Prefix,
		})
		if h.HostOnly {
			s.nextIndex++
		}
	}
	for _, d := range inv.DHCPServers {
		s.dhcp[d.Network] = &vmservice.DHCPServer{
			NetworkName: d.Network,
			Enabled:     d.Enabled,
			Address:     d.Address,
			Mask:        d.Mask,
			LowerIP:     d.Lower,
			UpperIP:     d.Upper,
		}
	}

	logging.Debug("VMService", "Loaded %d machines, %d cloud machines, %d host interfaces",
		len(s.machines), len(s.cloud), len(s.hosts))
	return s, nil
}

func networkName(iface string) string {
	return "HostInterfaceNetworking-" + iface
}

func cloneProfiles(in []vmservice.CloudProfile) []vmservice.CloudProfile {
	out := make([]vmservice.CloudProfile, 0, len(in))
	for _, p := range in {
		out = append(out, vmservice.CloudProfile{Name: p.Name, Properties: cloneProps(p.Properties)})
	}
	return out
}

func cloneProps(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// FailNext makes the next call of member return err.
func (s *Service) FailNext(member string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[member] = err
}

// SetCloudState overrides the state reported for a cloud VM.
func (s *Service) SetCloudState(id uuid.UUID, state defs.CloudMachineState) {
	s.mu.Lock()
	cm, ok := s.cloud[id]
	if ok {
		cm.State = state
	}
	s.mu.Unlock()
	if ok {
		s.bus.Publish(events.CloudState(source, id, state))
	}
}

// takeFailure must be called with s.mu held.
func (s *Service) takeFailure(member string) error {
	err, ok := s.failures[member]
	if !ok {
		return nil
	}
	delete(s.failures, member)
	return err
}

func (s *Service) SystemProperties() vmservice.SystemProperties { return s.props }

func (s *Service) Events() events.Bus { return s.bus }

func notFound(member string, what string, id any) error {
	return &vmservice.Error{
		Component:  "VirtualBoxWrap",
		Interface:  "IVirtualBox",
		Member:     member,
		ResultCode: vmservice.ResultObjectNotFound,
		Message:    fmt.Sprintf("Could not find a registered %s with UUID {%v}", what, id),
	}
}

func invalidState(member string, m *vmservice.Machine) error {
	return &vmservice.Error{
		Component:  "ConsoleWrap",
		Interface:  "IConsole",
		Member:     member,
		ResultCode: vmservice.ResultInvalidState,
		Message:    fmt.Sprintf("Invalid machine state: %s", m.State),
	}
}

func copyMachine(m *vmservice.Machine) vmservice.Machine {
	out := *m
	out.Groups = slices.Clone(m.Groups)
	return out
}

func (s *Service) Machines(ctx context.Context) ([]vmservice.Machine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("Machines"); err != nil {
		return nil, err
	}
	out := make([]vmservice.Machine, 0, len(s.machineOrder))
	for _, id := range s.machineOrder {
		out = append(out, copyMachine(s.machines[id]))
	}
	return out, nil
}

func (s *Service) Machine(ctx context.Context, id uuid.UUID) (vmservice.Machine, error) {
	if err := ctx.Err(); err != nil {
		return vmservice.Machine{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("Machine"); err != nil {
		return vmservice.Machine{}, err
	}
	m, ok := s.machines[id]
	if !ok {
		return vmservice.Machine{}, notFound("FindMachine", "machine", id)
	}
	return copyMachine(m), nil
}

func (s *Service) RegisterMachine(ctx context.Context, settingsFile string) (vmservice.Machine, error) {
	if err := ctx.Err(); err != nil {
		return vmservice.Machine{}, err
	}
	s.mu.Lock()
	for _, m := range s.machines {
		if m.SettingsFile == settingsFile {
			s.mu.Unlock()
			return vmservice.Machine{}, &vmservice.Error{
				Component:  "VirtualBoxWrap",
				Interface:  "IVirtualBox",
				Member:     "RegisterMachine",
				ResultCode: vmservice.ResultInvalidArg,
				Message:    fmt.Sprintf("Machine '%s' is already registered", m.Name),
			}
		}
	}
	name := strings.TrimSuffix(path.Base(settingsFile), path.Ext(settingsFile))
	id := uuid.New()
	m := &vmservice.Machine{
		ID:              id,
		HardwareUUID:    id,
		Name:            name,
		Accessible:      true,
		State:           defs.MachineStatePoweredOff,
		SettingsFile:    settingsFile,
		Groups:          []string{"/"},
		LastStateChange: time.Now(),
		SessionState:    defs.SessionStateUnlocked,
	}
	s.machines[id] = m
	s.machineOrder = append(s.machineOrder, id)
	out := copyMachine(m)
	s.mu.Unlock()

	s.bus.Publish(events.MachineRegistered(source, id, true))
	return out, nil
}

func (s *Service) UnregisterMachine(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	if _, ok := s.machines[id]; !ok {
		s.mu.Unlock()
		return notFound("Unregister", "machine", id)
	}
	delete(s.machines, id)
	delete(s.logs, id)
	s.machineOrder = slices.DeleteFunc(s.machineOrder, func(v uuid.UUID) bool { return v == id })
	s.mu.Unlock()

	s.bus.Publish(events.MachineRegistered(source, id, false))
	return nil
}

// transition moves a machine from one of the allowed states to next and
// publishes the resulting events.
func (s *Service) transition(ctx context.Context, member string, id uuid.UUID, allowed []defs.MachineState,
	next defs.MachineState, mutate func(m *vmservice.Machine)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	if err := s.takeFailure(member); err != nil {
		s.mu.Unlock()
		return err
	}
	m, ok := s.machines[id]
	if !ok {
		s.mu.Unlock()
		return notFound(member, "machine", id)
	}
	if !slices.Contains(allowed, m.State) {
		err := invalidState(member, m)
		s.mu.Unlock()
		return err
	}
	prevSession := m.SessionState
	s.appendLogLocked(id, fmt.Sprintf("%s Changing the VM state from '%s' to '%s'",
		time.Now().Format("15:04:05.000000"), m.State, next))
	m.State = next
	m.LastStateChange = time.Now()
	if mutate != nil {
		mutate(m)
	}
	session := m.SessionState
	s.mu.Unlock()

	s.bus.Publish(events.MachineState(source, id, next))
	if session != prevSession {
		s.bus.Publish(events.SessionState(source, id, session))
	}
	return nil
}

// appendLogLocked adds line to the current log of id, starting VBox.log
// when the machine has none.
func (s *Service) appendLogLocked(id uuid.UUID, line string) {
	logs := s.logs[id]
	if len(logs) == 0 {
		s.logs[id] = []vmservice.LogFile{{Name: "VBox.log", Content: line + "\n"}}
		return
	}
	if c := logs[0].Content; c != "" && !strings.HasSuffix(c, "\n") {
		logs[0].Content += "\n"
	}
	logs[0].Content += line + "\n"
}

func endSession(m *vmservice.Machine) {
	m.SessionState = defs.SessionStateUnlocked
	m.SessionName = ""
	m.SessionPID = 0
	m.ACPIEntered = false
}

var (
	startable = []defs.MachineState{defs.MachineStatePoweredOff, defs.MachineStateSaved, defs.MachineStateAborted, defs.MachineStateTeleported}
	running   = []defs.MachineState{defs.MachineStateRunning, defs.MachineStatePaused, defs.MachineStateStuck, defs.MachineStateTeleportingPausedVM}
)

func (s *Service) LaunchMachine(ctx context.Context, id uuid.UUID, mode defs.LaunchMode) error {
	return s.transition(ctx, "LaunchVMProcess", id, startable, defs.MachineStateRunning, func(m *vmservice.Machine) {
		m.SessionState = defs.SessionStateLocked
		m.SessionPID = 1000 + len(m.Name)
		m.ACPIEntered = true
		switch mode {
		case defs.LaunchModeHeadless:
			m.SessionName = "headless"
		case defs.LaunchModeSeparate:
			m.SessionName = "separate"
		default:
			m.SessionName = "GUI/Qt"
		}
	})
}

func (s *Service) Pause(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, "Pause", id, []defs.MachineState{defs.MachineStateRunning}, defs.MachineStatePaused, nil)
}

func (s *Service) Resume(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, "Resume", id, []defs.MachineState{defs.MachineStatePaused}, defs.MachineStateRunning, nil)
}

func (s *Service) Reset(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, "Reset", id, []defs.MachineState{defs.MachineStateRunning}, defs.MachineStateRunning, nil)
}

func (s *Service) PowerDown(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, "PowerDown", id, running, defs.MachineStatePoweredOff, endSession)
}

func (s *Service) SaveState(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, "SaveState", id,
		[]defs.MachineState{defs.MachineStateRunning, defs.MachineStatePaused}, defs.MachineStateSaved, endSession)
}

func (s *Service) DiscardSavedState(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, "DiscardSavedState", id,
		[]defs.MachineState{defs.MachineStateSaved}, defs.MachineStatePoweredOff, nil)
}

func (s *Service) ACPIShutdown(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	m, ok := s.machines[id]
	entered := ok && m.ACPIEntered
	s.mu.RUnlock()
	if ok && !entered {
		return &vmservice.Error{
			Component:  "ConsoleWrap",
			Interface:  "IConsole",
			Member:     "PowerButton",
			ResultCode: vmservice.ResultInvalidState,
			Message:    "The guest is not in ACPI mode",
		}
	}
	return s.transition(ctx, "PowerButton", id, []defs.MachineState{defs.MachineStateRunning},
		defs.MachineStatePoweredOff, endSession)
}

func (s *Service) Detach(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	m, ok := s.machines[id]
	if !ok {
		s.mu.Unlock()
		return notFound("Detach", "machine", id)
	}
	if !slices.Contains(running, m.State) {
		err := invalidState("Detach", m)
		s.mu.Unlock()
		return err
	}
	m.SessionName = "headless"
	s.mu.Unlock()

	s.bus.Publish(events.MachineData(source, id))
	return nil
}

// mutate applies fn to a machine and publishes a data-change event.
func (s *Service) mutate(ctx context.Context, member string, id uuid.UUID, fn func(m *vmservice.Machine) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	if err := s.takeFailure(member); err != nil {
		s.mu.Unlock()
		return err
	}
	m, ok := s.machines[id]
	if !ok {
		s.mu.Unlock()
		return notFound(member, "machine", id)
	}
	if err := fn(m); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.bus.Publish(events.MachineData(source, id))
	return nil
}

func (s *Service) SetGroups(ctx context.Context, id uuid.UUID, groups []string) error {
	return s.mutate(ctx, "SetGroups", id, func(m *vmservice.Machine) error {
		if len(groups) == 0 {
			groups = []string{"/"}
		}
		m.Groups = slices.Clone(groups)
		return nil
	})
}

func (s *Service) Rename(ctx context.Context, id uuid.UUID, name string) error {
	return s.mutate(ctx, "SetName", id, func(m *vmservice.Machine) error {
		if strings.TrimSpace(name) == "" {
			return &vmservice.Error{
				Component:  "MachineWrap",
				Interface:  "IMachine",
				Member:     "SetName",
				ResultCode: vmservice.ResultInvalidArg,
				Message:    "Machine name cannot be empty",
			}
		}
		m.Name = name
		return nil
	})
}

func (s *Service) MoveMachine(ctx context.Context, id uuid.UUID, folder string) error {
	return s.mutate(ctx, "MoveTo", id, func(m *vmservice.Machine) error {
		if !slices.Contains(startable, m.State) {
			return invalidState("MoveTo", m)
		}
		m.SettingsFile = path.Join(folder, m.Name, path.Base(m.SettingsFile))
		return nil
	})
}

func (s *Service) CloneMachine(ctx context.Context, id uuid.UUID, name string) (vmservice.Machine, error) {
	if err := ctx.Err(); err != nil {
		return vmservice.Machine{}, err
	}
	s.mu.Lock()
	src, ok := s.machines[id]
	if !ok {
		s.mu.Unlock()
		return vmservice.Machine{}, notFound("CloneTo", "machine", id)
	}
	clone := copyMachine(src)
	clone.ID = uuid.New()
	clone.HardwareUUID = clone.ID
	clone.Name = name
	clone.State = defs.MachineStatePoweredOff
	clone.SettingsFile = path.Join(path.Dir(path.Dir(src.SettingsFile)), name, name+".vbox")
	clone.SnapshotName = ""
	clone.SnapshotCount = 0
	endSession(&clone)
	s.machines[clone.ID] = &clone
	s.machineOrder = append(s.machineOrder, clone.ID)
	out := copyMachine(&clone)
	s.mu.Unlock()

	s.bus.Publish(events.MachineRegistered(source, out.ID, true))
	return out, nil
}

func (s *Service) TakeSnapshot(ctx context.Context, id uuid.UUID, name string) error {
	snapshot := uuid.New()
	err := s.mutate(ctx, "TakeSnapshot", id, func(m *vmservice.Machine) error {
		m.SnapshotName = name
		m.SnapshotCount++
		return nil
	})
	if err != nil {
		return err
	}
	s.bus.Publish(events.Snapshot(events.TypeSnapshotTaken, source, id, snapshot))
	return nil
}

func (s *Service) MachineLogs(ctx context.Context, id uuid.UUID) ([]vmservice.LogFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.machines[id]; !ok {
		return nil, notFound("QueryLogFilename", "machine", id)
	}
	return slices.Clone(s.logs[id]), nil
}
