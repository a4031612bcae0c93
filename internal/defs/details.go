package defs

// DetailsElementType enumerates the blocks of the machine Details pane.
type DetailsElementType int

const (
	DetailsElementTypeInvalid DetailsElementType = iota
	DetailsElementTypeGeneral
	DetailsElementTypePreview
	DetailsElementTypeSystem
	DetailsElementTypeDisplay
	DetailsElementTypeStorage
	DetailsElementTypeAudio
	DetailsElementTypeNetwork
	DetailsElementTypeSerial
	DetailsElementTypeUSB
	DetailsElementTypeSF
	DetailsElementTypeUI
	DetailsElementTypeDescription
)

// InformationElementType enumerates the blocks of the session information dialog.
type InformationElementType int

const (
	InformationElementTypeInvalid InformationElementType = iota
	InformationElementTypeGeneral
	InformationElementTypePreview
	InformationElementTypeSystem
	InformationElementTypeDisplay
	InformationElementTypeStorage
	InformationElementTypeAudio
	InformationElementTypeNetwork
	InformationElementTypeSerial
	InformationElementTypeUSB
	InformationElementTypeSharedFolders
	InformationElementTypeUI
	InformationElementTypeDescription
	InformationElementTypeRuntimeAttributes
	InformationElementTypeStorageStatistics
	InformationElementTypeNetworkStatistics
)

// Per-element option masks.

type DetailsElementOptionTypeGeneral int

const (
	DetailsElementOptionTypeGeneralInvalid  DetailsElementOptionTypeGeneral = 0
	DetailsElementOptionTypeGeneralName     DetailsElementOptionTypeGeneral = 1 << 0
	DetailsElementOptionTypeGeneralOS       DetailsElementOptionTypeGeneral = 1 << 1
	DetailsElementOptionTypeGeneralLocation DetailsElementOptionTypeGeneral = 1 << 2
	DetailsElementOptionTypeGeneralGroups   DetailsElementOptionTypeGeneral = 1 << 3
)

type DetailsElementOptionTypeSystem int

const (
	DetailsElementOptionTypeSystemInvalid         DetailsElementOptionTypeSystem = 0
	DetailsElementOptionTypeSystemRAM             DetailsElementOptionTypeSystem = 1 << 0
	DetailsElementOptionTypeSystemCPUCount        DetailsElementOptionTypeSystem = 1 << 1
	DetailsElementOptionTypeSystemCPUExecutionCap DetailsElementOptionTypeSystem = 1 << 2
	DetailsElementOptionTypeSystemBootOrder       DetailsElementOptionTypeSystem = 1 << 3
	DetailsElementOptionTypeSystemChipsetType     DetailsElementOptionTypeSystem = 1 << 4
	DetailsElementOptionTypeSystemFirmware        DetailsElementOptionTypeSystem = 1 << 5
	DetailsElementOptionTypeSystemAcceleration    DetailsElementOptionTypeSystem = 1 << 6
)

type DetailsElementOptionTypeDisplay int

const (
	DetailsElementOptionTypeDisplayInvalid            DetailsElementOptionTypeDisplay = 0
	DetailsElementOptionTypeDisplayVRAM               DetailsElementOptionTypeDisplay = 1 << 0
	DetailsElementOptionTypeDisplayScreenCount        DetailsElementOptionTypeDisplay = 1 << 1
	DetailsElementOptionTypeDisplayScaleFactor        DetailsElementOptionTypeDisplay = 1 << 2
	DetailsElementOptionTypeDisplayGraphicsController DetailsElementOptionTypeDisplay = 1 << 3
	DetailsElementOptionTypeDisplayAcceleration       DetailsElementOptionTypeDisplay = 1 << 4
	DetailsElementOptionTypeDisplayVRDE               DetailsElementOptionTypeDisplay = 1 << 5
	DetailsElementOptionTypeDisplayRecording          DetailsElementOptionTypeDisplay = 1 << 6
)

type DetailsElementOptionTypeStorage int

const (
	DetailsElementOptionTypeStorageInvalid        DetailsElementOptionTypeStorage = 0
	DetailsElementOptionTypeStorageHardDisks      DetailsElementOptionTypeStorage = 1 << 0
	DetailsElementOptionTypeStorageOpticalDevices DetailsElementOptionTypeStorage = 1 << 1
	DetailsElementOptionTypeStorageFloppyDevices  DetailsElementOptionTypeStorage = 1 << 2
)

type DetailsElementOptionTypeAudio int

const (
	DetailsElementOptionTypeAudioInvalid    DetailsElementOptionTypeAudio = 0
	DetailsElementOptionTypeAudioDriver     DetailsElementOptionTypeAudio = 1 << 0
	DetailsElementOptionTypeAudioController DetailsElementOptionTypeAudio = 1 << 1
	DetailsElementOptionTypeAudioIO         DetailsElementOptionTypeAudio = 1 << 2
)

type DetailsElementOptionTypeNetwork int

const (
	DetailsElementOptionTypeNetworkInvalid         DetailsElementOptionTypeNetwork = 0
	DetailsElementOptionTypeNetworkNotAttached     DetailsElementOptionTypeNetwork = 1 << 0
	DetailsElementOptionTypeNetworkNAT             DetailsElementOptionTypeNetwork = 1 << 1
	DetailsElementOptionTypeNetworkBridgetAdapter  DetailsElementOptionTypeNetwork = 1 << 2
	DetailsElementOptionTypeNetworkInternalNetwork DetailsElementOptionTypeNetwork = 1 << 3
	DetailsElementOptionTypeNetworkHostOnlyAdapter DetailsElementOptionTypeNetwork = 1 << 4
	DetailsElementOptionTypeNetworkGenericDriver   DetailsElementOptionTypeNetwork = 1 << 5
	DetailsElementOptionTypeNetworkNATNetwork      DetailsElementOptionTypeNetwork = 1 << 6
	DetailsElementOptionTypeNetworkCloudNetwork    DetailsElementOptionTypeNetwork = 1 << 7
)

type DetailsElementOptionTypeSerial int

const (
	DetailsElementOptionTypeSerialInvalid      DetailsElementOptionTypeSerial = 0
	DetailsElementOptionTypeSerialDisconnected DetailsElementOptionTypeSerial = 1 << 0
	DetailsElementOptionTypeSerialHostPipe     DetailsElementOptionTypeSerial = 1 << 1
	DetailsElementOptionTypeSerialHostDevice   DetailsElementOptionTypeSerial = 1 << 2
	DetailsElementOptionTypeSerialRawFile      DetailsElementOptionTypeSerial = 1 << 3
	DetailsElementOptionTypeSerialTCP          DetailsElementOptionTypeSerial = 1 << 4
)

type DetailsElementOptionTypeUsb int

const (
	DetailsElementOptionTypeUsbInvalid       DetailsElementOptionTypeUsb = 0
	DetailsElementOptionTypeUsbController    DetailsElementOptionTypeUsb = 1 << 0
	DetailsElementOptionTypeUsbDeviceFilters DetailsElementOptionTypeUsb = 1 << 1
)

// DetailsElementOptionTypeSharedFolders has no options yet.
type DetailsElementOptionTypeSharedFolders int

const DetailsElementOptionTypeSharedFoldersInvalid DetailsElementOptionTypeSharedFolders = 0

type DetailsElementOptionTypeUserInterface int

const (
	DetailsElementOptionTypeUserInterfaceInvalid     DetailsElementOptionTypeUserInterface = 0
	DetailsElementOptionTypeUserInterfaceVisualState DetailsElementOptionTypeUserInterface = 1 << 0
	DetailsElementOptionTypeUserInterfaceMenuBar     DetailsElementOptionTypeUserInterface = 1 << 1
	DetailsElementOptionTypeUserInterfaceStatusBar   DetailsElementOptionTypeUserInterface = 1 << 2
	DetailsElementOptionTypeUserInterfaceMiniToolbar DetailsElementOptionTypeUserInterface = 1 << 3
)

// DetailsElementOptionTypeDescription has no options yet.
type DetailsElementOptionTypeDescription int

const DetailsElementOptionTypeDescriptionInvalid DetailsElementOptionTypeDescription = 0
