package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vboxmanager/internal/defs"
)

func assertRoundTrip[E comparable](t *testing.T, c *Converter[E]) {
	t.Helper()
	for _, v := range c.Values() {
		key := c.ToInternalString(v)
		if key == "" {
			continue
		}
		assert.Equal(t, v, c.FromInternalString(key), "%s: %q", c.Name(), key)
	}
}

func TestInternalStringRoundTrip(t *testing.T) {
	assertRoundTrip(t, DialogTypes)
	assertRoundTrip(t, MenuTypes)
	assertRoundTrip(t, MenuApplicationActionTypes)
	assertRoundTrip(t, MenuHelpActionTypes)
	assertRoundTrip(t, MenuWindowActionTypes)
	assertRoundTrip(t, RuntimeMenuMachineActionTypes)
	assertRoundTrip(t, RuntimeMenuViewActionTypes)
	assertRoundTrip(t, RuntimeMenuInputActionTypes)
	assertRoundTrip(t, RuntimeMenuDevicesActionTypes)
	assertRoundTrip(t, RuntimeMenuDebuggerActionTypes)
	assertRoundTrip(t, DetailsElementTypes)
	assertRoundTrip(t, InformationElementTypes)
	assertRoundTrip(t, DetailsElementOptionTypesGeneral)
	assertRoundTrip(t, DetailsElementOptionTypesSystem)
	assertRoundTrip(t, DetailsElementOptionTypesDisplay)
	assertRoundTrip(t, DetailsElementOptionTypesStorage)
	assertRoundTrip(t, DetailsElementOptionTypesAudio)
	assertRoundTrip(t, DetailsElementOptionTypesNetwork)
	assertRoundTrip(t, DetailsElementOptionTypesSerial)
	assertRoundTrip(t, DetailsElementOptionTypesUsb)
	assertRoundTrip(t, DetailsElementOptionTypesUserInterface)
	assertRoundTrip(t, ToolTypes)
	assertRoundTrip(t, VisualStateTypes)
	assertRoundTrip(t, PreviewUpdateIntervals)
	assertRoundTrip(t, GUIFeatureTypes)
	assertRoundTrip(t, GlobalSettingsPageTypes)
	assertRoundTrip(t, MachineSettingsPageTypes)
	assertRoundTrip(t, WizardTypes)
	assertRoundTrip(t, IndicatorTypes)
	assertRoundTrip(t, MachineCloseActions)
	assertRoundTrip(t, MouseCapturePolicies)
	assertRoundTrip(t, GuruMeditationHandlerTypes)
	assertRoundTrip(t, ScalingOptimizationTypes)
	assertRoundTrip(t, MiniToolbarAlignments)
	assertRoundTrip(t, MaxGuestResolutionPolicies)
	assertRoundTrip(t, MediumFormats)
	assertRoundTrip(t, VMResourceMonitorColumns)
}

func TestFromInternalStringIgnoresCase(t *testing.T) {
	assert.Equal(t, defs.DetailsElementTypeSerial, DetailsElementTypes.FromInternalString("SERIALPORTS"))
	assert.Equal(t, defs.ToolTypeSnapshots, ToolTypes.FromInternalString("snapshots"))
	assert.Equal(t, defs.DetailsElementOptionTypeAudioIO, DetailsElementOptionTypesAudio.FromString("input/output"))
}

func TestUnknownInput(t *testing.T) {
	tests := []struct {
		name string
		got  any
		want any
	}{
		{"tool", ToolTypes.FromInternalString("Nope"), defs.ToolTypeInvalid},
		{"details", DetailsElementTypes.FromInternalString("nope"), defs.DetailsElementTypeInvalid},
		{"mouse capture", MouseCapturePolicies.FromInternalString("nope"), defs.MouseCapturePolicyDefault},
		{"guru meditation", GuruMeditationHandlerTypes.FromInternalString("nope"), defs.GuruMeditationHandlerTypeDefault},
		{"scaling", ScalingOptimizationTypes.FromInternalString("nope"), defs.ScalingOptimizationTypeNone},
		{"mini toolbar", MiniToolbarAlignments.FromInternalString("nope"), defs.MiniToolbarAlignmentBottom},
		{"preview", PreviewUpdateIntervals.FromInternalString("7"), defs.PreviewUpdateIntervalType1000ms},
		{"medium format", MediumFormats.FromInternalString("raw"), defs.MediumFormatVDI},
		{"shared folders options", DetailsElementOptionTypesSharedFolders.FromInternalString("anything"), defs.DetailsElementOptionTypeSharedFoldersInvalid},
		{"description options", DetailsElementOptionTypesDescription.FromInternalString(""), defs.DetailsElementOptionTypeDescriptionInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestMaxGuestResolutionPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want defs.MaxGuestResolutionPolicy
	}{
		{"", defs.MaxGuestResolutionPolicyAutomatic},
		{"auto", defs.MaxGuestResolutionPolicyAutomatic},
		{"any", defs.MaxGuestResolutionPolicyAny},
		{"1920,1080", defs.MaxGuestResolutionPolicyFixed},
		{FixedResolution(800, 600), defs.MaxGuestResolutionPolicyFixed},
		{"0,1080", defs.MaxGuestResolutionPolicyAny},
		{"foo", defs.MaxGuestResolutionPolicyAny},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxGuestResolutionPolicies.FromInternalString(tt.in))
		})
	}
}

func TestPreviewUpdateIntervalIntegers(t *testing.T) {
	assert.Equal(t, defs.PreviewUpdateIntervalTypeDisabled, PreviewUpdateIntervals.FromInternalInteger(0))
	assert.Equal(t, defs.PreviewUpdateIntervalType1000ms, PreviewUpdateIntervals.FromInternalInteger(1000))
	assert.Equal(t, defs.PreviewUpdateIntervalType1000ms, PreviewUpdateIntervals.FromInternalInteger(7))
	assert.Equal(t, 10000, PreviewUpdateIntervals.ToInternalInteger(defs.PreviewUpdateIntervalType10000ms))
}

func TestIconsAndPixmaps(t *testing.T) {
	assert.Equal(t, ":/chipset_16px.png", DetailsElementTypes.ToIcon(defs.DetailsElementTypeSystem))
	assert.Equal(t, ":/state_running_16px.png", InformationElementTypes.ToIcon(defs.InformationElementTypeRuntimeAttributes))
	assert.Equal(t, ":/hostkey_16px.png", IndicatorTypes.ToIcon(defs.IndicatorTypeKeyboard))
	assert.Equal(t, ":/extension_pack_warning_16px.png", GlobalSettingsPageTypes.ToWarningPixmap(defs.GlobalSettingsPageTypeExtensions))
	assert.Equal(t, ":/sf_warning_16px.png", MachineSettingsPageTypes.ToWarningPixmap(defs.MachineSettingsPageTypeSF))
	assert.Empty(t, ToolTypes.ToIcon(defs.ToolTypeWelcome))
}

func TestCanConvert(t *testing.T) {
	assert.True(t, CanConvert[defs.ToolType]())
	assert.True(t, CanConvert[defs.VisualStateType]())
	assert.False(t, CanConvert[defs.LaunchMode]())

	NewStorageSlots(fixedLimits{})
	assert.True(t, CanConvert[defs.StorageSlot]())
}

type fixedLimits struct{}

func (fixedLimits) MaxPortCountForStorageBus(bus defs.StorageBus) int {
	switch bus {
	case defs.StorageBusIDE:
		return 2
	case defs.StorageBusFloppy:
		return 1
	case defs.StorageBusSATA:
		return 30
	default:
		return 16
	}
}

func (fixedLimits) MaxDevicesPerPortForStorageBus(bus defs.StorageBus) int {
	switch bus {
	case defs.StorageBusIDE, defs.StorageBusFloppy:
		return 2
	default:
		return 1
	}
}

func TestStorageSlotToString(t *testing.T) {
	slots := NewStorageSlots(fixedLimits{})

	tests := []struct {
		slot defs.StorageSlot
		want string
	}{
		{defs.StorageSlot{Bus: defs.StorageBusIDE, Port: 0, Device: 0}, "IDE Primary Master"},
		{defs.StorageSlot{Bus: defs.StorageBusIDE, Port: 0, Device: 1}, "IDE Primary Slave"},
		{defs.StorageSlot{Bus: defs.StorageBusIDE, Port: 1, Device: 1}, "IDE Secondary Slave"},
		{defs.StorageSlot{Bus: defs.StorageBusIDE, Port: 3, Device: 0}, ""},
		{defs.StorageSlot{Bus: defs.StorageBusSATA, Port: 5}, "SATA Port 5"},
		{defs.StorageSlot{Bus: defs.StorageBusSATA, Port: 5, Device: 1}, ""},
		{defs.StorageSlot{Bus: defs.StorageBusPCIe, Port: 2}, "NVMe Port 2"},
		{defs.StorageSlot{Bus: defs.StorageBusVirtioSCSI, Port: 3}, "virtio-scsi Port 3"},
		{defs.StorageSlot{Bus: defs.StorageBusFloppy, Port: 0, Device: 1}, "Floppy Device 1"},
		{defs.StorageSlot{Bus: defs.StorageBusFloppy, Port: 1, Device: 0}, ""},
		{defs.StorageSlot{Bus: defs.StorageBusNull}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slots.ToString(tt.slot), "%+v", tt.slot)
	}
}

func TestStorageSlotFromString(t *testing.T) {
	slots := NewStorageSlots(fixedLimits{})

	assert.Equal(t, defs.StorageSlot{Bus: defs.StorageBusIDE, Port: 0, Device: 1}, slots.FromString("IDE Primary Slave"))
	assert.Equal(t, defs.StorageSlot{Bus: defs.StorageBusIDE, Port: 1, Device: 0}, slots.FromString("IDE Secondary Master"))
	assert.Equal(t, defs.StorageSlot{Bus: defs.StorageBusSAS, Port: 7}, slots.FromString("SAS Port 7"))
	assert.Equal(t, defs.StorageSlot{Bus: defs.StorageBusUSB, Port: 4}, slots.FromString("USB Port 4"))
	// Floppy labels carry the device number, which parses back as the port.
	assert.Equal(t, defs.StorageSlot{Bus: defs.StorageBusFloppy, Port: 1}, slots.FromString("Floppy Device 1"))
	assert.Equal(t, defs.StorageSlot{Bus: defs.StorageBusNull}, slots.FromString("Tape Drive 1"))

	// Out-of-range ports keep the bus but leave the address zero.
	assert.Equal(t, defs.StorageSlot{Bus: defs.StorageBusSATA}, slots.FromString("SATA Port 99"))
}

func TestRestrictionMask(t *testing.T) {
	mask := defs.RuntimeMenuViewActionTypeSeamless | defs.RuntimeMenuViewActionTypeFullscreen
	list := FormatMask(RuntimeMenuViewActionTypes, mask)
	assert.Equal(t, "Fullscreen,Seamless", list)

	assert.Equal(t, mask, ParseMask(RuntimeMenuViewActionTypes, "Seamless, Fullscreen"))
	assert.Equal(t, mask, ParseMask(RuntimeMenuViewActionTypes, "Fullscreen,Bogus,Seamless"))
	assert.Equal(t, defs.RuntimeMenuViewActionTypeInvalid, ParseMask(RuntimeMenuViewActionTypes, ""))

	all := ParseMask(MenuTypes, "All")
	require.Equal(t, defs.MenuTypeAll, all)
	assert.Equal(t, "Application,Machine,View,Input,Devices,Debug,Window,Help", FormatMask(MenuTypes, all))
}
