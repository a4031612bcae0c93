package defs

// VisualStateType enumerates the runtime window modes. It is a mask so a
// set of restricted modes fits in one value.
type VisualStateType int

const (
	VisualStateTypeInvalid    VisualStateType = 0
	VisualStateTypeNormal     VisualStateType = 1 << 0
	VisualStateTypeFullscreen VisualStateType = 1 << 1
	VisualStateTypeSeamless   VisualStateType = 1 << 2
	VisualStateTypeScale      VisualStateType = 1 << 3
	VisualStateTypeAll        VisualStateType = 0xFF
)

// PreviewUpdateIntervalType enumerates the preview refresh periods.
type PreviewUpdateIntervalType int

const (
	PreviewUpdateIntervalTypeInvalid PreviewUpdateIntervalType = iota
	PreviewUpdateIntervalTypeDisabled
	PreviewUpdateIntervalType500ms
	PreviewUpdateIntervalType1000ms
	PreviewUpdateIntervalType2000ms
	PreviewUpdateIntervalType5000ms
	PreviewUpdateIntervalType10000ms
)

// GUIFeatureType enumerates features that can be switched off per VM.
type GUIFeatureType int

const (
	GUIFeatureTypeNone           GUIFeatureType = 0
	GUIFeatureTypeNoSelector     GUIFeatureType = 1 << 0
	GUIFeatureTypeNoUserElements GUIFeatureType = 1 << 1
	GUIFeatureTypeNoMenuBar      GUIFeatureType = 1 << 2
	GUIFeatureTypeNoStatusBar    GUIFeatureType = 1 << 3
)

// GlobalSettingsPageType enumerates pages of the preferences dialog.
type GlobalSettingsPageType int

const (
	GlobalSettingsPageTypeInvalid GlobalSettingsPageType = iota
	GlobalSettingsPageTypeGeneral
	GlobalSettingsPageTypeInput
	GlobalSettingsPageTypeUpdate
	GlobalSettingsPageTypeLanguage
	GlobalSettingsPageTypeDisplay
	GlobalSettingsPageTypeNetwork
	GlobalSettingsPageTypeExtensions
	GlobalSettingsPageTypeProxy
)

// MachineSettingsPageType enumerates pages of the machine settings dialog.
type MachineSettingsPageType int

const (
	MachineSettingsPageTypeInvalid MachineSettingsPageType = iota
	MachineSettingsPageTypeGeneral
	MachineSettingsPageTypeSystem
	MachineSettingsPageTypeDisplay
	MachineSettingsPageTypeStorage
	MachineSettingsPageTypeAudio
	MachineSettingsPageTypeNetwork
	MachineSettingsPageTypePorts
	MachineSettingsPageTypeSerial
	MachineSettingsPageTypeUSB
	MachineSettingsPageTypeSF
	MachineSettingsPageTypeInterface
)

// WizardType enumerates the wizards the manager can open.
type WizardType int

const (
	WizardTypeInvalid WizardType = iota
	WizardTypeNewVM
	WizardTypeCloneVM
	WizardTypeExportAppliance
	WizardTypeImportAppliance
	WizardTypeNewCloudVM
	WizardTypeAddCloudVM
	WizardTypeFirstRun
	WizardTypeNewVD
	WizardTypeCloneVD
)

// IndicatorType enumerates status-bar indicators.
type IndicatorType int

const (
	IndicatorTypeInvalid IndicatorType = iota
	IndicatorTypeHardDisks
	IndicatorTypeOpticalDisks
	IndicatorTypeFloppyDisks
	IndicatorTypeAudio
	IndicatorTypeNetwork
	IndicatorTypeUSB
	IndicatorTypeSharedFolders
	IndicatorTypeDisplay
	IndicatorTypeRecording
	IndicatorTypeFeatures
	IndicatorTypeMouse
	IndicatorTypeKeyboard
)

// MachineCloseAction enumerates choices of the close-VM dialog.
type MachineCloseAction int

const (
	MachineCloseActionInvalid                   MachineCloseAction = 0
	MachineCloseActionDetach                    MachineCloseAction = 1 << 0
	MachineCloseActionSaveState                 MachineCloseAction = 1 << 1
	MachineCloseActionShutdown                  MachineCloseAction = 1 << 2
	MachineCloseActionPowerOff                  MachineCloseAction = 1 << 3
	MachineCloseActionPowerOffRestoringSnapshot MachineCloseAction = 1 << 4
)

type MouseCapturePolicy int

const (
	MouseCapturePolicyDefault MouseCapturePolicy = iota
	MouseCapturePolicyHostComboOnly
	MouseCapturePolicyDisabled
)

type GuruMeditationHandlerType int

const (
	GuruMeditationHandlerTypeDefault GuruMeditationHandlerType = iota
	GuruMeditationHandlerTypePowerOff
	GuruMeditationHandlerTypeIgnore
)

type ScalingOptimizationType int

const (
	ScalingOptimizationTypeNone ScalingOptimizationType = iota
	ScalingOptimizationTypePerformance
)

type MiniToolbarAlignment int

const (
	MiniToolbarAlignmentDisabled MiniToolbarAlignment = iota
	MiniToolbarAlignmentBottom
	MiniToolbarAlignmentTop
)

// MaxGuestResolutionPolicy controls how large the guest screen may grow.
type MaxGuestResolutionPolicy int

const (
	MaxGuestResolutionPolicyAutomatic MaxGuestResolutionPolicy = iota
	MaxGuestResolutionPolicyAny
	MaxGuestResolutionPolicyFixed
)

// MediumFormat enumerates virtual disk image formats offered by the wizards.
type MediumFormat int

const (
	MediumFormatInvalid MediumFormat = iota
	MediumFormatVDI
	MediumFormatVMDK
	MediumFormatVHD
	MediumFormatParallels
	MediumFormatQED
	MediumFormatQCOW
)

// RecordingMode enumerates what a recording captures.
type RecordingMode int

const (
	RecordingModeNone RecordingMode = iota
	RecordingModeVideoAudio
	RecordingModeVideoOnly
	RecordingModeAudioOnly
)

// SizeSuffix enumerates binary size units.
type SizeSuffix int

const (
	SizeSuffixByte SizeSuffix = iota
	SizeSuffixKiloByte
	SizeSuffixMegaByte
	SizeSuffixGigaByte
	SizeSuffixTeraByte
	SizeSuffixPetaByte
	SizeSuffixMax
)
