package converter

import (
	"fmt"
	"regexp"

	"vboxmanager/internal/defs"
)

var ToolTypes = register(&Converter[defs.ToolType]{
	name:    "ToolType",
	invalid: defs.ToolTypeInvalid,
	entries: []Entry[defs.ToolType]{
		{Value: defs.ToolTypeWelcome, Internal: "Welcome", Display: "Welcome"},
		{Value: defs.ToolTypeMedia, Internal: "Media", Display: "Media"},
		{Value: defs.ToolTypeNetwork, Internal: "Network", Display: "Network"},
		{Value: defs.ToolTypeCloud, Internal: "Cloud", Display: "Cloud"},
		{Value: defs.ToolTypeResources, Internal: "Resources", Display: "Resources"},
		{Value: defs.ToolTypeDetails, Internal: "Details", Display: "Details"},
		{Value: defs.ToolTypeSnapshots, Internal: "Snapshots", Display: "Snapshots"},
		{Value: defs.ToolTypeLogs, Internal: "Logs", Display: "Logs"},
		{Value: defs.ToolTypePerformance, Internal: "Performance", Display: "Performance"},
	},
})

var VisualStateTypes = register(&Converter[defs.VisualStateType]{
	name:    "VisualStateType",
	invalid: defs.VisualStateTypeInvalid,
	entries: []Entry[defs.VisualStateType]{
		{Value: defs.VisualStateTypeNormal, Internal: "Normal", Display: "Normal (window)"},
		{Value: defs.VisualStateTypeFullscreen, Internal: "Fullscreen", Display: "Full-screen"},
		{Value: defs.VisualStateTypeSeamless, Internal: "Seamless", Display: "Seamless"},
		{Value: defs.VisualStateTypeScale, Internal: "Scale", Display: "Scaled"},
		{Value: defs.VisualStateTypeAll, Internal: "All"},
	},
})

var PreviewUpdateIntervals = register(&Converter[defs.PreviewUpdateIntervalType]{
	name:    "PreviewUpdateIntervalType",
	invalid: defs.PreviewUpdateIntervalTypeInvalid,
	entries: []Entry[defs.PreviewUpdateIntervalType]{
		{Value: defs.PreviewUpdateIntervalTypeDisabled, Internal: "disabled", Display: "Update disabled"},
		{Value: defs.PreviewUpdateIntervalType500ms, Internal: "500", Display: "Every 0.5 s"},
		{Value: defs.PreviewUpdateIntervalType1000ms, Internal: "1000", Display: "Every 1 s"},
		{Value: defs.PreviewUpdateIntervalType2000ms, Internal: "2000", Display: "Every 2 s"},
		{Value: defs.PreviewUpdateIntervalType5000ms, Internal: "5000", Display: "Every 5 s"},
		{Value: defs.PreviewUpdateIntervalType10000ms, Internal: "10000", Display: "Every 10 s"},
	},
	integers: map[defs.PreviewUpdateIntervalType]int{
		defs.PreviewUpdateIntervalTypeDisabled: 0,
		defs.PreviewUpdateIntervalType500ms:    500,
		defs.PreviewUpdateIntervalType1000ms:   1000,
		defs.PreviewUpdateIntervalType2000ms:   2000,
		defs.PreviewUpdateIntervalType5000ms:   5000,
		defs.PreviewUpdateIntervalType10000ms:  10000,
	},
	fallback: defaultTo(defs.PreviewUpdateIntervalType1000ms),
})

var GUIFeatureTypes = register(&Converter[defs.GUIFeatureType]{
	name:    "GUIFeatureType",
	invalid: defs.GUIFeatureTypeNone,
	entries: []Entry[defs.GUIFeatureType]{
		{Value: defs.GUIFeatureTypeNoSelector, Internal: "noSelector"},
		{Value: defs.GUIFeatureTypeNoUserElements, Internal: "noUserElements"},
		{Value: defs.GUIFeatureTypeNoMenuBar, Internal: "noMenuBar"},
		{Value: defs.GUIFeatureTypeNoStatusBar, Internal: "noStatusBar"},
	},
})

var GlobalSettingsPageTypes = register(&Converter[defs.GlobalSettingsPageType]{
	name:    "GlobalSettingsPageType",
	invalid: defs.GlobalSettingsPageTypeInvalid,
	entries: []Entry[defs.GlobalSettingsPageType]{
		{Value: defs.GlobalSettingsPageTypeGeneral, Internal: "General", Warning: ":/machine_warning_16px.png"},
		{Value: defs.GlobalSettingsPageTypeInput, Internal: "Input", Warning: ":/hostkey_warning_16px.png"},
		{Value: defs.GlobalSettingsPageTypeUpdate, Internal: "Update", Warning: ":/refresh_warning_16px.png"},
		{Value: defs.GlobalSettingsPageTypeLanguage, Internal: "Language", Warning: ":/site_warning_16px.png"},
		{Value: defs.GlobalSettingsPageTypeDisplay, Internal: "Display", Warning: ":/vrdp_warning_16px.png"},
		{Value: defs.GlobalSettingsPageTypeNetwork, Internal: "Network", Warning: ":/nw_warning_16px.png"},
		{Value: defs.GlobalSettingsPageTypeExtensions, Internal: "Extensions", Warning: ":/extension_pack_warning_16px.png"},
		{Value: defs.GlobalSettingsPageTypeProxy, Internal: "Proxy", Warning: ":/proxy_warning_16px.png"},
	},
})

var MachineSettingsPageTypes = register(&Converter[defs.MachineSettingsPageType]{
	name:    "MachineSettingsPageType",
	invalid: defs.MachineSettingsPageTypeInvalid,
	entries: []Entry[defs.MachineSettingsPageType]{
		{Value: defs.MachineSettingsPageTypeGeneral, Internal: "General", Warning: ":/machine_warning_16px.png"},
		{Value: defs.MachineSettingsPageTypeSystem, Internal: "System", Warning: ":/chipset_warning_16px.png"},
		{Value: defs.MachineSettingsPageTypeDisplay, Internal: "Display", Warning: ":/vrdp_warning_16px.png"},
		{Value: defs.MachineSettingsPageTypeStorage, Internal: "Storage", Warning: ":/hd_warning_16px.png"},
		{Value: defs.MachineSettingsPageTypeAudio, Internal: "Audio", Warning: ":/sound_warning_16px.png"},
		{Value: defs.MachineSettingsPageTypeNetwork, Internal: "Network", Warning: ":/nw_warning_16px.png"},
		{Value: defs.MachineSettingsPageTypePorts, Internal: "Ports", Warning: ":/serial_port_warning_16px.png"},
		{Value: defs.MachineSettingsPageTypeSerial, Internal: "Serial", Warning: ":/serial_port_warning_16px.png"},
		{Value: defs.MachineSettingsPageTypeUSB, Internal: "USB", Warning: ":/usb_warning_16px.png"},
		{Value: defs.MachineSettingsPageTypeSF, Internal: "SharedFolders", Warning: ":/sf_warning_16px.png"},
		{Value: defs.MachineSettingsPageTypeInterface, Internal: "Interface", Warning: ":/interface_warning_16px.png"},
	},
})

var WizardTypes = register(&Converter[defs.WizardType]{
	name:    "WizardType",
	invalid: defs.WizardTypeInvalid,
	entries: []Entry[defs.WizardType]{
		{Value: defs.WizardTypeNewVM, Internal: "NewVM"},
		{Value: defs.WizardTypeCloneVM, Internal: "CloneVM"},
		{Value: defs.WizardTypeExportAppliance, Internal: "ExportAppliance"},
		{Value: defs.WizardTypeImportAppliance, Internal: "ImportAppliance"},
		{Value: defs.WizardTypeNewCloudVM, Internal: "NewCloudVM"},
		{Value: defs.WizardTypeAddCloudVM, Internal: "AddCloudVM"},
		{Value: defs.WizardTypeFirstRun, Internal: "FirstRun"},
		{Value: defs.WizardTypeNewVD, Internal: "NewVD"},
		{Value: defs.WizardTypeCloneVD, Internal: "CloneVD"},
	},
})

var IndicatorTypes = register(&Converter[defs.IndicatorType]{
	name:    "IndicatorType",
	invalid: defs.IndicatorTypeInvalid,
	entries: []Entry[defs.IndicatorType]{
		{Value: defs.IndicatorTypeHardDisks, Internal: "HardDisks", Display: "Hard Disks", Icon: ":/hd_16px.png"},
		{Value: defs.IndicatorTypeOpticalDisks, Internal: "OpticalDisks", Display: "Optical Disks", Icon: ":/cd_16px.png"},
		{Value: defs.IndicatorTypeFloppyDisks, Internal: "FloppyDisks", Display: "Floppy Disks", Icon: ":/fd_16px.png"},
		{Value: defs.IndicatorTypeAudio, Internal: "Audio", Display: "Audio", Icon: ":/audio_16px.png"},
		{Value: defs.IndicatorTypeNetwork, Internal: "Network", Display: "Network", Icon: ":/nw_16px.png"},
		{Value: defs.IndicatorTypeUSB, Internal: "USB", Display: "USB", Icon: ":/usb_16px.png"},
		{Value: defs.IndicatorTypeSharedFolders, Internal: "SharedFolders", Display: "Shared Folders", Icon: ":/sf_16px.png"},
		{Value: defs.IndicatorTypeDisplay, Internal: "Display", Display: "Display", Icon: ":/display_software_16px.png"},
		{Value: defs.IndicatorTypeRecording, Internal: "Recording", Display: "Recording", Icon: ":/video_capture_16px.png"},
		{Value: defs.IndicatorTypeFeatures, Internal: "Features", Display: "Features", Icon: ":/vtx_amdv_16px.png"},
		{Value: defs.IndicatorTypeMouse, Internal: "Mouse", Display: "Mouse", Icon: ":/mouse_16px.png"},
		{Value: defs.IndicatorTypeKeyboard, Internal: "Keyboard", Display: "Keyboard", Icon: ":/hostkey_16px.png"},
	},
})

var MachineCloseActions = register(&Converter[defs.MachineCloseAction]{
	name:    "MachineCloseAction",
	invalid: defs.MachineCloseActionInvalid,
	entries: []Entry[defs.MachineCloseAction]{
		{Value: defs.MachineCloseActionDetach, Internal: "Detach"},
		{Value: defs.MachineCloseActionSaveState, Internal: "SaveState"},
		{Value: defs.MachineCloseActionShutdown, Internal: "Shutdown"},
		{Value: defs.MachineCloseActionPowerOff, Internal: "PowerOff"},
		{Value: defs.MachineCloseActionPowerOffRestoringSnapshot, Internal: "PowerOffRestoringSnapshot"},
	},
})

var MouseCapturePolicies = register(&Converter[defs.MouseCapturePolicy]{
	name:    "MouseCapturePolicy",
	invalid: defs.MouseCapturePolicyDefault,
	entries: []Entry[defs.MouseCapturePolicy]{
		{Value: defs.MouseCapturePolicyDefault, Internal: "Default", Display: "Default"},
		{Value: defs.MouseCapturePolicyHostComboOnly, Internal: "HostComboOnly", Display: "Host Combination"},
		{Value: defs.MouseCapturePolicyDisabled, Internal: "Disabled", Display: "Disabled"},
	},
	fallback: defaultTo(defs.MouseCapturePolicyDefault),
})

var GuruMeditationHandlerTypes = register(&Converter[defs.GuruMeditationHandlerType]{
	name:    "GuruMeditationHandlerType",
	invalid: defs.GuruMeditationHandlerTypeDefault,
	entries: []Entry[defs.GuruMeditationHandlerType]{
		{Value: defs.GuruMeditationHandlerTypeDefault, Internal: "Default"},
		{Value: defs.GuruMeditationHandlerTypePowerOff, Internal: "PowerOff"},
		{Value: defs.GuruMeditationHandlerTypeIgnore, Internal: "Ignore"},
	},
	fallback: defaultTo(defs.GuruMeditationHandlerTypeDefault),
})

var ScalingOptimizationTypes = register(&Converter[defs.ScalingOptimizationType]{
	name:    "ScalingOptimizationType",
	invalid: defs.ScalingOptimizationTypeNone,
	entries: []Entry[defs.ScalingOptimizationType]{
		{Value: defs.ScalingOptimizationTypeNone, Internal: "None"},
		{Value: defs.ScalingOptimizationTypePerformance, Internal: "Performance"},
	},
	fallback: defaultTo(defs.ScalingOptimizationTypeNone),
})

var MiniToolbarAlignments = register(&Converter[defs.MiniToolbarAlignment]{
	name:    "MiniToolbarAlignment",
	invalid: defs.MiniToolbarAlignmentDisabled,
	entries: []Entry[defs.MiniToolbarAlignment]{
		{Value: defs.MiniToolbarAlignmentBottom, Internal: "Bottom"},
		{Value: defs.MiniToolbarAlignmentTop, Internal: "Top"},
	},
	fallback: defaultTo(defs.MiniToolbarAlignmentBottom),
})

var fixedResolution = regexp.MustCompile(`[1-9]\d*,[1-9]\d*`)

var MaxGuestResolutionPolicies = register(&Converter[defs.MaxGuestResolutionPolicy]{
	name:    "MaxGuestResolutionPolicy",
	invalid: defs.MaxGuestResolutionPolicyAutomatic,
	entries: []Entry[defs.MaxGuestResolutionPolicy]{
		{Value: defs.MaxGuestResolutionPolicyAutomatic, Internal: ""},
		{Value: defs.MaxGuestResolutionPolicyAny, Internal: "any"},
	},
	preParse: func(s string) (defs.MaxGuestResolutionPolicy, bool) {
		switch {
		case s == "", fold(s) == "auto":
			return defs.MaxGuestResolutionPolicyAutomatic, true
		case fixedResolution.MatchString(s):
			return defs.MaxGuestResolutionPolicyFixed, true
		}
		return 0, false
	},
	fallback: defaultTo(defs.MaxGuestResolutionPolicyAny),
})

// FixedResolution renders the persisted form of a Fixed max guest
// resolution.
func FixedResolution(width, height int) string {
	return fmt.Sprintf("%d,%d", width, height)
}

var MediumFormats = register(&Converter[defs.MediumFormat]{
	name:    "MediumFormat",
	invalid: defs.MediumFormatInvalid,
	entries: []Entry[defs.MediumFormat]{
		{Value: defs.MediumFormatVDI, Internal: "VDI", Display: "VDI (VirtualBox Disk Image)"},
		{Value: defs.MediumFormatVMDK, Internal: "VMDK", Display: "VMDK (Virtual Machine Disk)"},
		{Value: defs.MediumFormatVHD, Internal: "VHD", Display: "VHD (Virtual Hard Disk)"},
		{Value: defs.MediumFormatParallels, Internal: "Parallels", Display: "HDD (Parallels Hard Disk)"},
		{Value: defs.MediumFormatQED, Internal: "QED", Display: "QED (QEMU enhanced disk)"},
		{Value: defs.MediumFormatQCOW, Internal: "QCOW", Display: "QCOW (QEMU Copy-On-Write)"},
	},
	fallback: defaultTo(defs.MediumFormatVDI),
})

var RecordingModes = register(&Converter[defs.RecordingMode]{
	name:    "RecordingMode",
	invalid: defs.RecordingModeNone,
	entries: []Entry[defs.RecordingMode]{
		{Value: defs.RecordingModeVideoAudio, Display: "Video/Audio"},
		{Value: defs.RecordingModeVideoOnly, Display: "Video Only"},
		{Value: defs.RecordingModeAudioOnly, Display: "Audio Only"},
	},
})

var VMResourceMonitorColumns = register(&Converter[defs.VMResourceMonitorColumn]{
	name:    "VMResourceMonitorColumn",
	invalid: defs.VMResourceMonitorColumnInvalid,
	entries: []Entry[defs.VMResourceMonitorColumn]{
		{Value: defs.VMResourceMonitorColumnName, Internal: "VMName", Display: "VM Name"},
		{Value: defs.VMResourceMonitorColumnCPUGuestLoad, Internal: "CPUGuestLoad", Display: "CPU Guest"},
		{Value: defs.VMResourceMonitorColumnCPUVMMLoad, Internal: "CPUVMMLoad", Display: "CPU VMM"},
		{Value: defs.VMResourceMonitorColumnRAMUsedAndTotal, Internal: "RAMUsedAndTotal", Display: "RAM Used/Total"},
		{Value: defs.VMResourceMonitorColumnRAMUsedPercentage, Internal: "RAMUsedPercentage", Display: "RAM %"},
		{Value: defs.VMResourceMonitorColumnNetworkUpRate, Internal: "NetworkUpRate", Display: "Network Up Rate"},
		{Value: defs.VMResourceMonitorColumnNetworkDownRate, Internal: "NetworkDownRate", Display: "Network Down Rate"},
		{Value: defs.VMResourceMonitorColumnNetworkUpTotal, Internal: "NetworkUpTotal", Display: "Network Up Total"},
		{Value: defs.VMResourceMonitorColumnNetworkDownTotal, Internal: "NetworkDownTotal", Display: "Network Down Total"},
		{Value: defs.VMResourceMonitorColumnDiskIOReadRate, Internal: "DiskIOReadRate", Display: "Disk Read Rate"},
		{Value: defs.VMResourceMonitorColumnDiskIOWriteRate, Internal: "DiskIOWriteRate", Display: "Disk Write Rate"},
		{Value: defs.VMResourceMonitorColumnDiskIOReadTotal, Internal: "DiskIOReadTotal", Display: "Disk Read Total"},
		{Value: defs.VMResourceMonitorColumnDiskIOWriteTotal, Internal: "DiskIOWriteTotal", Display: "Disk Write Total"},
		{Value: defs.VMResourceMonitorColumnVMExits, Internal: "VMExits", Display: "VM Exits"},
	},
})

var SizeSuffixes = register(&Converter[defs.SizeSuffix]{
	name:    "SizeSuffix",
	invalid: defs.SizeSuffixMax,
	entries: []Entry[defs.SizeSuffix]{
		{Value: defs.SizeSuffixByte, Display: "B"},
		{Value: defs.SizeSuffixKiloByte, Display: "KB"},
		{Value: defs.SizeSuffixMegaByte, Display: "MB"},
		{Value: defs.SizeSuffixGigaByte, Display: "GB"},
		{Value: defs.SizeSuffixTeraByte, Display: "TB"},
		{Value: defs.SizeSuffixPetaByte, Display: "PB"},
	},
})
