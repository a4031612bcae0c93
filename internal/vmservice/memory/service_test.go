package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vboxmanager/internal/defs"
	"vboxmanager/internal/events"
	"vboxmanager/internal/vmservice"
)

var (
	ubuntuID  = uuid.MustParse("0b6d3e2a-1c8f-4a53-9a0c-3f4f2b8c1d01")
	windowsID = uuid.MustParse("0b6d3e2a-1c8f-4a53-9a0c-3f4f2b8c1d02")
	webID     = uuid.MustParse("9a1f1e00-0000-4000-8000-000000000001")
)

func newTestService(t *testing.T) (*Service, *events.DefaultBus) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/inventory.yaml", []byte(testInventory), 0o644))

	inv, err := LoadInventory(fs, "/inventory.yaml")
	require.NoError(t, err)

	bus := events.NewBus()
	svc, err := New(inv, bus)
	require.NoError(t, err)
	return svc, bus
}

func TestLoadInventory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	machines, err := svc.Machines(ctx)
	require.NoError(t, err)
	require.Len(t, machines, 3)

	ubuntu := machines[0]
	assert.Equal(t, "Ubuntu", ubuntu.Name)
	assert.Equal(t, int64(4<<30), ubuntu.MemoryBytes)
	assert.Equal(t, defs.MachineStatePoweredOff, ubuntu.State)
	assert.Equal(t, "/home/user/VirtualBox VMs/Ubuntu/Ubuntu.vbox", ubuntu.SettingsFile)
	assert.Equal(t, []string{"/Work"}, ubuntu.Groups)

	windows := machines[1]
	assert.Equal(t, defs.SessionStateLocked, windows.SessionState)
	assert.True(t, windows.ACPIEntered)

	broken := machines[2]
	assert.False(t, broken.Accessible)
	require.NotNil(t, broken.AccessError)
	assert.Contains(t, broken.AccessError.Message, "Broken.vbox")
}

func TestLoadInventory_Errors(t *testing.T) {
	_, err := LoadInventory(afero.NewMemMapFs(), "/missing.yaml")
	assert.Error(t, err)

	inv, err := ParseInventory([]byte("machines:\n  - name: x\n    state: Flying\n"))
	require.NoError(t, err)
	_, err = New(inv, nil)
	assert.ErrorContains(t, err, "unknown state")

	inv, err = ParseInventory([]byte("machines:\n  - name: x\n    memory: lots\n"))
	require.NoError(t, err)
	_, err = New(inv, nil)
	assert.ErrorContains(t, err, "invalid memory size")
}

func TestMachineLifecycle(t *testing.T) {
	svc, bus := newTestService(t)
	ctx := context.Background()

	var got []events.Type
	bus.Subscribe(events.FilterByMachine(ubuntuID), func(e events.Event) { got = append(got, e.Type) })

	require.NoError(t, svc.LaunchMachine(ctx, ubuntuID, defs.LaunchModeHeadless))
	m, err := svc.Machine(ctx, ubuntuID)
	require.NoError(t, err)
	assert.Equal(t, defs.MachineStateRunning, m.State)
	assert.Equal(t, "headless", m.SessionName)

	require.NoError(t, svc.Pause(ctx, ubuntuID))
	require.NoError(t, svc.Resume(ctx, ubuntuID))
	require.NoError(t, svc.SaveState(ctx, ubuntuID))
	m, _ = svc.Machine(ctx, ubuntuID)
	assert.Equal(t, defs.MachineStateSaved, m.State)
	assert.Equal(t, defs.SessionStateUnlocked, m.SessionState)

	require.NoError(t, svc.DiscardSavedState(ctx, ubuntuID))
	assert.Equal(t, []events.Type{
		events.TypeMachineStateChange, events.TypeSessionStateChange,
		events.TypeMachineStateChange,
		events.TypeMachineStateChange,
		events.TypeMachineStateChange, events.TypeSessionStateChange,
		events.TypeMachineStateChange,
	}, got)
}

func TestTransitionsAreLogged(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.LaunchMachine(ctx, ubuntuID, defs.LaunchModeHeadless))
	logs, err := svc.MachineLogs(ctx, ubuntuID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Content, "VirtualBox VM starting\n")
	assert.Contains(t, logs[0].Content, "Changing the VM state from 'Powered Off' to 'Running'\n")

	// A machine without logs gets a fresh VBox.log.
	require.NoError(t, svc.PowerDown(ctx, windowsID))
	logs, err = svc.MachineLogs(ctx, windowsID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "VBox.log", logs[0].Name)
	assert.Contains(t, logs[0].Content, "from 'Running' to 'Powered Off'")
}

func TestInvalidTransition(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Pause(context.Background(), ubuntuID)
	var se *vmservice.Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, vmservice.ResultInvalidState, se.ResultCode)
	assert.Equal(t, "Pause", se.Member)
}

func TestACPIShutdown(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.ACPIShutdown(ctx, windowsID))
	m, _ := svc.Machine(ctx, windowsID)
	assert.Equal(t, defs.MachineStatePoweredOff, m.State)
}

func TestMachineNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Machine(context.Background(), uuid.New())
	assert.ErrorIs(t, err, vmservice.ErrNotFound)
}

func TestFailNext(t *testing.T) {
	svc, _ := newTestService(t)
	boom := errors.New("boom")

	svc.FailNext("Refresh", boom)
	_, err := svc.RefreshCloudMachine(context.Background(), webID)
	assert.ErrorIs(t, err, boom)

	cm, err := svc.RefreshCloudMachine(context.Background(), webID)
	require.NoError(t, err)
	assert.Equal(t, defs.CloudMachineStateStopped, cm.State)
}

func TestRegisterCloneAndGroups(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	m, err := svc.RegisterMachine(ctx, "/vms/Fedora/Fedora.vbox")
	require.NoError(t, err)
	assert.Equal(t, "Fedora", m.Name)

	_, err = svc.RegisterMachine(ctx, "/vms/Fedora/Fedora.vbox")
	assert.Error(t, err)

	clone, err := svc.CloneMachine(ctx, ubuntuID, "Ubuntu Clone")
	require.NoError(t, err)
	assert.NotEqual(t, ubuntuID, clone.ID)
	assert.Equal(t, defs.MachineStatePoweredOff, clone.State)

	require.NoError(t, svc.SetGroups(ctx, clone.ID, []string{"/Clones"}))
	got, _ := svc.Machine(ctx, clone.ID)
	assert.Equal(t, []string{"/Clones"}, got.Groups)

	require.NoError(t, svc.UnregisterMachine(ctx, clone.ID))
	machines, _ := svc.Machines(ctx)
	assert.Len(t, machines, 4)
}

func TestCloudConsole(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.ConsoleCommand(ctx, webID, vmservice.ConsoleSerialUnix)
	assert.Error(t, err)

	assert.Error(t, svc.CreateConsoleConnection(ctx, webID, ""))
	require.NoError(t, svc.CreateConsoleConnection(ctx, webID, "ssh-rsa AAAA"))
	cmd, err := svc.ConsoleCommand(ctx, webID, vmservice.ConsoleVNCUnix)
	require.NoError(t, err)
	assert.Contains(t, cmd, "5900")

	require.NoError(t, svc.DeleteConsoleConnection(ctx, webID))
	_, err = svc.ConsoleCommand(ctx, webID, vmservice.ConsoleSerialWindows)
	assert.Error(t, err)
}

func TestHostNetworks(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	h, err := svc.CreateHostOnlyInterface(ctx)
	require.NoError(t, err)
	assert.Equal(t, "vboxnet1", h.Name)
	assert.Equal(t, "192.168.57.1", h.IPv4Address)

	assert.Error(t, svc.EnableStaticIPConfig(ctx, h.ID, "not-an-ip", "255.255.255.0"))
	require.NoError(t, svc.EnableStaticIPConfig(ctx, h.ID, "10.0.0.1", "255.0.0.0"))
	assert.Error(t, svc.EnableStaticIPConfigV6(ctx, h.ID, "fe80::1", 64))

	_, err = svc.FindDHCPServer(ctx, h.NetworkName)
	assert.ErrorIs(t, err, vmservice.ErrNotFound)
	_, err = svc.CreateDHCPServer(ctx, h.NetworkName)
	require.NoError(t, err)
	require.NoError(t, svc.SetDHCPServerConfiguration(ctx, h.NetworkName, "10.0.0.100", "255.0.0.0", "10.0.0.101", "10.0.0.254"))
	require.NoError(t, svc.SetDHCPServerEnabled(ctx, h.NetworkName, true))

	servers, err := svc.DHCPServers(ctx)
	require.NoError(t, err)
	assert.Len(t, servers, 2)

	require.NoError(t, svc.RemoveDHCPServer(ctx, h.NetworkName))
	assert.ErrorIs(t, svc.RemoveDHCPServer(ctx, h.NetworkName), vmservice.ErrNotFound)
	require.NoError(t, svc.RemoveHostOnlyInterface(ctx, h.ID))
	hosts, _ := svc.HostInterfaces(ctx)
	assert.Len(t, hosts, 1)
}

func TestCloudProfiles(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SaveCloudProfile(ctx, "OCI", vmservice.CloudProfile{
		Name:       "staging",
		Properties: map[string]string{"region": "us-ashburn-1"},
	}))
	providers, err := svc.CloudProviders(ctx)
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Len(t, providers[0].Profiles, 2)

	require.NoError(t, svc.RemoveCloudProfile(ctx, "OCI", "staging"))
	assert.ErrorIs(t, svc.RemoveCloudProfile(ctx, "OCI", "staging"), vmservice.ErrNotFound)

	require.NoError(t, svc.RemoveCloudProfile(ctx, "OCI", "default"))
	require.NoError(t, svc.RestoreCloudProfiles(ctx, "OCI"))
	providers, err = svc.CloudProviders(ctx)
	require.NoError(t, err)
	require.Len(t, providers[0].Profiles, 1)
	assert.Equal(t, "eu-frankfurt-1", providers[0].Profiles[0].Properties["region"])
	assert.Error(t, svc.SaveCloudProfile(ctx, "AWS", vmservice.CloudProfile{Name: "x"}))
}
