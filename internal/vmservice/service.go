// Package vmservice defines the hypervisor automation API the manager
// front-end depends on.
package vmservice

import (
	"context"

	"github.com/google/uuid"

	"vboxmanager/internal/defs"
	"vboxmanager/internal/events"
)

// Machines covers local VM enumeration and control.
type Machines interface {
	Machines(ctx context.Context) ([]Machine, error)
	Machine(ctx context.Context, id uuid.UUID) (Machine, error)
	RegisterMachine(ctx context.Context, settingsFile string) (Machine, error)
	UnregisterMachine(ctx context.Context, id uuid.UUID) error

	LaunchMachine(ctx context.Context, id uuid.UUID, mode defs.LaunchMode) error
	Pause(ctx context.Context, id uuid.UUID) error
	Resume(ctx context.Context, id uuid.UUID) error
	Reset(ctx context.Context, id uuid.UUID) error
	PowerDown(ctx context.Context, id uuid.UUID) error
	SaveState(ctx context.Context, id uuid.UUID) error
	DiscardSavedState(ctx context.Context, id uuid.UUID) error
	ACPIShutdown(ctx context.Context, id uuid.UUID) error
	Detach(ctx context.Context, id uuid.UUID) error

	SetGroups(ctx context.Context, id uuid.UUID, groups []string) error
	Rename(ctx context.Context, id uuid.UUID, name string) error
	MoveMachine(ctx context.Context, id uuid.UUID, folder string) error
	CloneMachine(ctx context.Context, id uuid.UUID, name string) (Machine, error)
	TakeSnapshot(ctx context.Context, id uuid.UUID, name string) error
	MachineLogs(ctx context.Context, id uuid.UUID) ([]LogFile, error)
}

// Cloud covers cloud providers, profiles and cloud VMs.
type Cloud interface {
	CloudProviders(ctx context.Context) ([]CloudProvider, error)
	SaveCloudProfile(ctx context.Context, provider string, profile CloudProfile) error
	RemoveCloudProfile(ctx context.Context, provider, profile string) error
	// RestoreCloudProfiles rereads the provider's profiles from its
	// configuration file, dropping unsaved ones.
	RestoreCloudProfiles(ctx context.Context, provider string) error

	CloudMachines(ctx context.Context, provider, profile string) ([]CloudMachine, error)
	RefreshCloudMachine(ctx context.Context, id uuid.UUID) (CloudMachine, error)
	StartCloudMachine(ctx context.Context, id uuid.UUID) error
	CloudPowerDown(ctx context.Context, id uuid.UUID) error
	CloudShutdown(ctx context.Context, id uuid.UUID) error
	TerminateCloudMachine(ctx context.Context, id uuid.UUID) error
	CreateConsoleConnection(ctx context.Context, id uuid.UUID, publicKey string) error
	DeleteConsoleConnection(ctx context.Context, id uuid.UUID) error
	ConsoleCommand(ctx context.Context, id uuid.UUID, kind ConsoleCommand) (string, error)
}

// Network covers host interfaces and DHCP servers.
type Network interface {
	HostInterfaces(ctx context.Context) ([]HostInterface, error)
	CreateHostOnlyInterface(ctx context.Context) (HostInterface, error)
	RemoveHostOnlyInterface(ctx context.Context, id uuid.UUID) error
	EnableDynamicIPConfig(ctx context.Context, id uuid.UUID) error
	EnableStaticIPConfig(ctx context.Context, id uuid.UUID, address, mask string) error
	EnableStaticIPConfigV6(ctx context.Context, id uuid.UUID, address string, prefixLength int) error

	DHCPServers(ctx context.Context) ([]DHCPServer, error)
	FindDHCPServer(ctx context.Context, networkName string) (DHCPServer, error)
	CreateDHCPServer(ctx context.Context, networkName string) (DHCPServer, error)
	RemoveDHCPServer(ctx context.Context, networkName string) error
	SetDHCPServerEnabled(ctx context.Context, networkName string, enabled bool) error
	SetDHCPServerConfiguration(ctx context.Context, networkName, address, mask, lower, upper string) error
}

// Service is the full automation API.
type Service interface {
	Machines
	Cloud
	Network

	SystemProperties() SystemProperties
	// Events returns the bus on which the service publishes notifications.
	Events() events.Bus
}
