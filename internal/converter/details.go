package converter

import "vboxmanager/internal/defs"

var DetailsElementTypes = register(&Converter[defs.DetailsElementType]{
	name:    "DetailsElementType",
	invalid: defs.DetailsElementTypeInvalid,
	entries: []Entry[defs.DetailsElementType]{
		{Value: defs.DetailsElementTypeGeneral, Internal: "general", Display: "General", Icon: ":/machine_16px.png"},
		{Value: defs.DetailsElementTypePreview, Internal: "preview", Display: "Preview", Icon: ":/machine_16px.png"},
		{Value: defs.DetailsElementTypeSystem, Internal: "system", Display: "System", Icon: ":/chipset_16px.png"},
		{Value: defs.DetailsElementTypeDisplay, Internal: "display", Display: "Display", Icon: ":/vrdp_16px.png"},
		{Value: defs.DetailsElementTypeStorage, Internal: "storage", Display: "Storage", Icon: ":/hd_16px.png"},
		{Value: defs.DetailsElementTypeAudio, Internal: "audio", Display: "Audio", Icon: ":/sound_16px.png"},
		{Value: defs.DetailsElementTypeNetwork, Internal: "network", Display: "Network", Icon: ":/nw_16px.png"},
		{Value: defs.DetailsElementTypeSerial, Internal: "serialPorts", Display: "Serial ports", Icon: ":/serial_port_16px.png"},
		{Value: defs.DetailsElementTypeUSB, Internal: "usb", Display: "USB", Icon: ":/usb_16px.png"},
		{Value: defs.DetailsElementTypeSF, Internal: "sharedFolders", Display: "Shared folders", Icon: ":/sf_16px.png"},
		{Value: defs.DetailsElementTypeUI, Internal: "userInterface", Display: "User interface", Icon: ":/interface_16px.png"},
		{Value: defs.DetailsElementTypeDescription, Internal: "description", Display: "Description", Icon: ":/description_16px.png"},
	},
})

var InformationElementTypes = register(&Converter[defs.InformationElementType]{
	name:    "InformationElementType",
	invalid: defs.InformationElementTypeInvalid,
	entries: []Entry[defs.InformationElementType]{
		{Value: defs.InformationElementTypeGeneral, Internal: "general", Display: "General", Icon: ":/machine_16px.png"},
		{Value: defs.InformationElementTypePreview, Internal: "preview", Display: "Preview", Icon: ":/machine_16px.png"},
		{Value: defs.InformationElementTypeSystem, Internal: "system", Display: "System", Icon: ":/chipset_16px.png"},
		{Value: defs.InformationElementTypeDisplay, Internal: "display", Display: "Display", Icon: ":/vrdp_16px.png"},
		{Value: defs.InformationElementTypeStorage, Internal: "storage", Display: "Storage", Icon: ":/hd_16px.png"},
		{Value: defs.InformationElementTypeAudio, Internal: "audio", Display: "Audio", Icon: ":/sound_16px.png"},
		{Value: defs.InformationElementTypeNetwork, Internal: "network", Display: "Network", Icon: ":/nw_16px.png"},
		{Value: defs.InformationElementTypeSerial, Internal: "serialPorts", Display: "Serial ports", Icon: ":/serial_port_16px.png"},
		{Value: defs.InformationElementTypeUSB, Internal: "usb", Display: "USB", Icon: ":/usb_16px.png"},
		{Value: defs.InformationElementTypeSharedFolders, Internal: "sharedFolders", Display: "Shared folders", Icon: ":/sf_16px.png"},
		{Value: defs.InformationElementTypeUI, Internal: "userInterface", Display: "User interface", Icon: ":/interface_16px.png"},
		{Value: defs.InformationElementTypeDescription, Internal: "description", Display: "Description", Icon: ":/description_16px.png"},
		{Value: defs.InformationElementTypeRuntimeAttributes, Internal: "runtime-attributes", Display: "Runtime attributes", Icon: ":/state_running_16px.png"},
		// Statistics blocks are never persisted.
		{Value: defs.InformationElementTypeStorageStatistics, Display: "Storage statistics", Icon: ":/hd_16px.png"},
		{Value: defs.InformationElementTypeNetworkStatistics, Display: "Network statistics", Icon: ":/nw_16px.png"},
	},
})

var DetailsElementOptionTypesGeneral = register(&Converter[defs.DetailsElementOptionTypeGeneral]{
	name:    "DetailsElementOptionTypeGeneral",
	invalid: defs.DetailsElementOptionTypeGeneralInvalid,
	entries: []Entry[defs.DetailsElementOptionTypeGeneral]{
		{Value: defs.DetailsElementOptionTypeGeneralName, Internal: "Name", Display: "Name"},
		{Value: defs.DetailsElementOptionTypeGeneralOS, Internal: "OS", Display: "OS"},
		{Value: defs.DetailsElementOptionTypeGeneralLocation, Internal: "Location", Display: "Location"},
		{Value: defs.DetailsElementOptionTypeGeneralGroups, Internal: "Groups", Display: "Groups"},
	},
})

var DetailsElementOptionTypesSystem = register(&Converter[defs.DetailsElementOptionTypeSystem]{
	name:    "DetailsElementOptionTypeSystem",
	invalid: defs.DetailsElementOptionTypeSystemInvalid,
	entries: []Entry[defs.DetailsElementOptionTypeSystem]{
		{Value: defs.DetailsElementOptionTypeSystemRAM, Internal: "RAM", Display: "RAM"},
		{Value: defs.DetailsElementOptionTypeSystemCPUCount, Internal: "CPUCount", Display: "CPU Count"},
		{Value: defs.DetailsElementOptionTypeSystemCPUExecutionCap, Internal: "CPUExecutionCap", Display: "CPU Execution Cap"},
		{Value: defs.DetailsElementOptionTypeSystemBootOrder, Internal: "BootOrder", Display: "Boot Order"},
		{Value: defs.DetailsElementOptionTypeSystemChipsetType, Internal: "ChipsetType", Display: "Chipset Type"},
		{Value: defs.DetailsElementOptionTypeSystemFirmware, Internal: "Firmware", Display: "Firmware"},
		{Value: defs.DetailsElementOptionTypeSystemAcceleration, Internal: "Acceleration", Display: "Acceleration"},
	},
})

var DetailsElementOptionTypesDisplay = register(&Converter[defs.DetailsElementOptionTypeDisplay]{
	name:    "DetailsElementOptionTypeDisplay",
	invalid: defs.DetailsElementOptionTypeDisplayInvalid,
	entries: []Entry[defs.DetailsElementOptionTypeDisplay]{
		{Value: defs.DetailsElementOptionTypeDisplayVRAM, Internal: "VRAM", Display: "VRAM"},
		{Value: defs.DetailsElementOptionTypeDisplayScreenCount, Internal: "ScreenCount", Display: "Screen Count"},
		{Value: defs.DetailsElementOptionTypeDisplayScaleFactor, Internal: "ScaleFactor", Display: "Scale Factor"},
		{Value: defs.DetailsElementOptionTypeDisplayGraphicsController, Internal: "GraphicsController", Display: "Graphics Controller"},
		{Value: defs.DetailsElementOptionTypeDisplayAcceleration, Internal: "Acceleration", Display: "Acceleration"},
		{Value: defs.DetailsElementOptionTypeDisplayVRDE, Internal: "VRDE", Display: "VRDE"},
		{Value: defs.DetailsElementOptionTypeDisplayRecording, Internal: "Recording", Display: "Recording"},
	},
})

var DetailsElementOptionTypesStorage = register(&Converter[defs.DetailsElementOptionTypeStorage]{
	name:    "DetailsElementOptionTypeStorage",
	invalid: defs.DetailsElementOptionTypeStorageInvalid,
	entries: []Entry[defs.DetailsElementOptionTypeStorage]{
		{Value: defs.DetailsElementOptionTypeStorageHardDisks, Internal: "HardDisks", Display: "Hard Disks"},
		{Value: defs.DetailsElementOptionTypeStorageOpticalDevices, Internal: "OpticalDevices", Display: "Optical Devices"},
		{Value: defs.DetailsElementOptionTypeStorageFloppyDevices, Internal: "FloppyDevices", Display: "Floppy Devices"},
	},
})

var DetailsElementOptionTypesAudio = register(&Converter[defs.DetailsElementOptionTypeAudio]{
	name:    "DetailsElementOptionTypeAudio",
	invalid: defs.DetailsElementOptionTypeAudioInvalid,
	entries: []Entry[defs.DetailsElementOptionTypeAudio]{
		{Value: defs.DetailsElementOptionTypeAudioDriver, Internal: "Driver", Display: "Driver"},
		{Value: defs.DetailsElementOptionTypeAudioController, Internal: "Controller", Display: "Controller"},
		{Value: defs.DetailsElementOptionTypeAudioIO, Internal: "IO", Display: "Input/Output"},
	},
})

var DetailsElementOptionTypesNetwork = register(&Converter[defs.DetailsElementOptionTypeNetwork]{
	name:    "DetailsElementOptionTypeNetwork",
	invalid: defs.DetailsElementOptionTypeNetworkInvalid,
	entries: []Entry[defs.DetailsElementOptionTypeNetwork]{
		{Value: defs.DetailsElementOptionTypeNetworkNotAttached, Internal: "NotAttached", Display: "Not Attached"},
		{Value: defs.DetailsElementOptionTypeNetworkNAT, Internal: "NAT", Display: "NAT"},
		{Value: defs.DetailsElementOptionTypeNetworkBridgetAdapter, Internal: "BridgetAdapter", Display: "Bridget Adapter"},
		{Value: defs.DetailsElementOptionTypeNetworkInternalNetwork, Internal: "InternalNetwork", Display: "Internal Network"},
		{Value: defs.DetailsElementOptionTypeNetworkHostOnlyAdapter, Internal: "HostOnlyAdapter", Display: "Host Only Adapter"},
		{Value: defs.DetailsElementOptionTypeNetworkGenericDriver, Internal: "GenericDriver", Display: "Generic Driver"},
		{Value: defs.DetailsElementOptionTypeNetworkNATNetwork, Internal: "NATNetwork", Display: "NAT Network"},
		{Value: defs.DetailsElementOptionTypeNetworkCloudNetwork, Internal: "CloudNetwork", Display: "Cloud Network"},
	},
})

var DetailsElementOptionTypesSerial = register(&Converter[defs.DetailsElementOptionTypeSerial]{
	name:    "DetailsElementOptionTypeSerial",
	invalid: defs.DetailsElementOptionTypeSerialInvalid,
	entries: []Entry[defs.DetailsElementOptionTypeSerial]{
		{Value: defs.DetailsElementOptionTypeSerialDisconnected, Internal: "Disconnected", Display: "Disconnected"},
		{Value: defs.DetailsElementOptionTypeSerialHostPipe, Internal: "HostPipe", Display: "Host Pipe"},
		{Value: defs.DetailsElementOptionTypeSerialHostDevice, Internal: "HostDevice", Display: "Host Device"},
		{Value: defs.DetailsElementOptionTypeSerialRawFile, Internal: "RawFile", Display: "Raw File"},
		{Value: defs.DetailsElementOptionTypeSerialTCP, Internal: "TCP", Display: "TCP"},
	},
})

var DetailsElementOptionTypesUsb = register(&Converter[defs.DetailsElementOptionTypeUsb]{
	name:    "DetailsElementOptionTypeUsb",
	invalid: defs.DetailsElementOptionTypeUsbInvalid,
	entries: []Entry[defs.DetailsElementOptionTypeUsb]{
		{Value: defs.DetailsElementOptionTypeUsbController, Internal: "Controller", Display: "Controller"},
		{Value: defs.DetailsElementOptionTypeUsbDeviceFilters, Internal: "DeviceFilters", Display: "Device Filters"},
	},
})

// Shared folders and description have no options; every lookup resolves to
// the invalid value.
var DetailsElementOptionTypesSharedFolders = register(&Converter[defs.DetailsElementOptionTypeSharedFolders]{
	name:    "DetailsElementOptionTypeSharedFolders",
	invalid: defs.DetailsElementOptionTypeSharedFoldersInvalid,
})

var DetailsElementOptionTypesUserInterface = register(&Converter[defs.DetailsElementOptionTypeUserInterface]{
	name:    "DetailsElementOptionTypeUserInterface",
	invalid: defs.DetailsElementOptionTypeUserInterfaceInvalid,
	entries: []Entry[defs.DetailsElementOptionTypeUserInterface]{
		{Value: defs.DetailsElementOptionTypeUserInterfaceVisualState, Internal: "VisualState", Display: "Visual State"},
		{Value: defs.DetailsElementOptionTypeUserInterfaceMenuBar, Internal: "MenuBar", Display: "Menu Bar"},
		{Value: defs.DetailsElementOptionTypeUserInterfaceStatusBar, Internal: "StatusBar", Display: "Status Bar"},
		{Value: defs.DetailsElementOptionTypeUserInterfaceMiniToolbar, Internal: "MiniToolbar", Display: "Mini Toolbar"},
	},
})

var DetailsElementOptionTypesDescription = register(&Converter[defs.DetailsElementOptionTypeDescription]{
	name:    "DetailsElementOptionTypeDescription",
	invalid: defs.DetailsElementOptionTypeDescriptionInvalid,
})
