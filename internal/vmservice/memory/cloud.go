package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"vboxmanager/internal/defs"
	"vboxmanager/internal/events"
	"vboxmanager/internal/vmservice"
)

func (s *Service) CloudProviders(ctx context.Context) ([]vmservice.CloudProvider, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("CloudProviders"); err != nil {
		return nil, err
	}
	out := make([]vmservice.CloudProvider, 0, len(s.providers))
	for _, p := range s.providers {
		cp := p
		cp.Properties = slices.Clone(p.Properties)
		cp.Profiles = cloneProfiles(p.Profiles)
		out = append(out, cp)
	}
	return out, nil
}

// provider must be called with s.mu held.
func (s *Service) provider(shortName string) (*vmservice.CloudProvider, error) {
	for i := range s.providers {
		if s.providers[i].ShortName == shortName {
			return &s.providers[i], nil
		}
	}
	return nil, notFound("GetProviderByShortName", "cloud provider", shortName)
}

func (s *Service) SaveCloudProfile(ctx context.Context, provider string, profile vmservice.CloudProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	if err := s.takeFailure("SaveCloudProfile"); err != nil {
		s.mu.Unlock()
		return err
	}
	p, err := s.provider(provider)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	stored := vmservice.CloudProfile{Name: profile.Name, Properties: cloneProps(profile.Properties)}
	idx := slices.IndexFunc(p.Profiles, func(c vmservice.CloudProfile) bool { return c.Name == profile.Name })
	if idx >= 0 {
		p.Profiles[idx] = stored
	} else {
		p.Profiles = append(p.Profiles, stored)
	}
	s.mu.Unlock()

	e := events.New(events.TypeCloudProfileChange, source)
	e.Name = provider + "/" + profile.Name
	s.bus.Publish(e)
	return nil
}

func (s *Service) RemoveCloudProfile(ctx context.Context, provider, profile string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	p, err := s.provider(provider)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	before := len(p.Profiles)
	p.Profiles = slices.DeleteFunc(p.Profiles, func(c vmservice.CloudProfile) bool { return c.Name == profile })
	removed := len(p.Profiles) != before
	s.mu.Unlock()

	if !removed {
		return notFound("RemoveProfile", "cloud profile", profile)
	}
	e := events.New(events.TypeCloudProfileChange, source)
	e.Name = provider + "/" + profile
	s.bus.Publish(e)
	return nil
}

// RestoreCloudProfiles brings back the profiles the inventory declared.
func (s *Service) RestoreCloudProfiles(ctx context.Context, provider string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	if err := s.takeFailure("RestoreProfiles"); err != nil {
		s.mu.Unlock()
		return err
	}
	p, err := s.provider(provider)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	p.Profiles = cloneProfiles(s.savedProfiles[provider])
	s.mu.Unlock()

	e := events.New(events.TypeCloudProfileChange, source)
	e.Name = provider
	s.bus.Publish(e)
	return nil
}

func (s *Service) CloudMachines(ctx context.Context, provider, profile string) ([]vmservice.CloudMachine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("CloudMachines"); err != nil {
		return nil, err
	}
	var out []vmservice.CloudMachine
	for _, id := range s.cloudOrder {
		cm := s.cloud[id]
		if cm.Provider == provider && cm.Profile == profile {
			out = append(out, *cm)
		}
	}
	return out, nil
}

func (s *Service) RefreshCloudMachine(ctx context.Context, id uuid.UUID) (vmservice.CloudMachine, error) {
	if err := ctx.Err(); err != nil {
		return vmservice.CloudMachine{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("Refresh"); err != nil {
		return vmservice.CloudMachine{}, err
	}
	cm, ok := s.cloud[id]
	if !ok {
		return vmservice.CloudMachine{}, notFound("Refresh", "cloud machine", id)
	}
	return *cm, nil
}

func (s *Service) cloudTransition(ctx context.Context, member string, id uuid.UUID, allowed []defs.CloudMachineState,
	next defs.CloudMachineState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	if err := s.takeFailure(member); err != nil {
		s.mu.Unlock()
		return err
	}
	cm, ok := s.cloud[id]
	if !ok {
		s.mu.Unlock()
		return notFound(member, "cloud machine", id)
	}
	if !slices.Contains(allowed, cm.State) {
		state := cm.State
		s.mu.Unlock()
		return &vmservice.Error{
			Component:  "CloudMachineWrap",
			Interface:  "ICloudMachine",
			Member:     member,
			ResultCode: vmservice.ResultInvalidState,
			Message:    fmt.Sprintf("Invalid cloud machine state: %s", state),
		}
	}
	cm.State = next
	s.mu.Unlock()

	s.bus.Publish(events.CloudState(source, id, next))
	return nil
}

func (s *Service) StartCloudMachine(ctx context.Context, id uuid.UUID) error {
	return s.cloudTransition(ctx, "PowerUp", id,
		[]defs.CloudMachineState{defs.CloudMachineStateStopped}, defs.CloudMachineStateRunning)
}

func (s *Service) CloudPowerDown(ctx context.Context, id uuid.UUID) error {
	return s.cloudTransition(ctx, "PowerDown", id,
		[]defs.CloudMachineState{defs.CloudMachineStateRunning}, defs.CloudMachineStateStopped)
}

func (s *Service) CloudShutdown(ctx context.Context, id uuid.UUID) error {
	return s.cloudTransition(ctx, "Shutdown", id,
		[]defs.CloudMachineState{defs.CloudMachineStateRunning}, defs.CloudMachineStateStopped)
}

func (s *Service) TerminateCloudMachine(ctx context.Context, id uuid.UUID) error {
	return s.cloudTransition(ctx, "Terminate", id,
		[]defs.CloudMachineState{defs.CloudMachineStateRunning, defs.CloudMachineStateStopped},
		defs.CloudMachineStateTerminated)
}

func (s *Service) CreateConsoleConnection(ctx context.Context, id uuid.UUID, publicKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if publicKey == "" {
		return &vmservice.Error{
			Component:  "CloudMachineWrap",
			Interface:  "ICloudMachine",
			Member:     "CreateConsoleConnection",
			ResultCode: vmservice.ResultInvalidArg,
			Message:    "Public key is empty",
		}
	}
	s.mu.Lock()
	cm, ok := s.cloud[id]
	if !ok {
		s.mu.Unlock()
		return notFound("CreateConsoleConnection", "cloud machine", id)
	}
	cm.ConsoleReady = true
	state := cm.State
	s.cloudConsoles[id] = fmt.Sprintf("ocid1.instanceconsoleconnection.%s", id)
	s.mu.Unlock()

	s.bus.Publish(events.CloudState(source, id, state))
	return nil
}

func (s *Service) DeleteConsoleConnection(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	cm, ok := s.cloud[id]
	if !ok {
		s.mu.Unlock()
		return notFound("DeleteConsoleConnection", "cloud machine", id)
	}
	cm.ConsoleReady = false
	state := cm.State
	delete(s.cloudConsoles, id)
	s.mu.Unlock()

	s.bus.Publish(events.CloudState(source, id, state))
	return nil
}

func (s *Service) ConsoleCommand(ctx context.Context, id uuid.UUID, kind vmservice.ConsoleCommand) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	conn, ok := s.cloudConsoles[id]
	s.mu.RUnlock()
	if !ok {
		return "", &vmservice.Error{
			Component:  "CloudMachineWrap",
			Interface:  "ICloudMachine",
			Member:     "ConsoleConnectionFingerprint",
			ResultCode: vmservice.ResultInvalidState,
			Message:    "No console connection exists for this machine",
		}
	}
	host := "instance-console.cloud.example.com"
	switch kind {
	case vmservice.ConsoleSerialUnix:
		return fmt.Sprintf("ssh -o ProxyCommand='ssh -W %%h:%%p -p 443 %s@%s' %s", conn, host, id), nil
	case vmservice.ConsoleSerialWindows:
		return fmt.Sprintf("Start-Job { Echo N | plink -ssh -N -P 443 %s@%s }", conn, host), nil
	case vmservice.ConsoleVNCUnix:
		return fmt.Sprintf("ssh -o ProxyCommand='ssh -W %%h:%%p -p 443 %s@%s' -N -L localhost:5900:%s:5900", conn, host, id), nil
	case vmservice.ConsoleVNCWindows:
		return fmt.Sprintf("Start-Job { Echo N | plink -ssh -N -P 443 -L 5900:localhost:5900 %s@%s }", conn, host), nil
	}
	return "", fmt.Errorf("unknown console command kind %d", kind)
}
