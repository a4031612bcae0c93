package actionpool

// Index identifies an action. Menu indices are prefixed with Menu and a
// sub-index repeats its parent's name.
type Index int

// Shared by both flavors.
const (
	IndexInvalid Index = iota

	MenuApplication
	ApplicationAbout
	ApplicationPreferences
	ApplicationNetworkAccessManager
	ApplicationCheckForUpdates
	ApplicationResetWarnings
	ApplicationClose

	MenuWindow
	WindowMinimize

	MenuHelp
	HelpContents
	HelpWebSite
	HelpBugTracker
	HelpForums
	HelpOracle
	HelpAbout

	MenuLogWindow
	MenuLog
	LogFind
	LogFilter
	LogBookmark
	LogOptions
	LogRefresh
	LogSave

	MenuPerformance
	PerformanceExport

	MenuFileManager
	MenuFileManagerHostSubmenu
	MenuFileManagerGuestSubmenu
	FileManagerCopyToGuest
	FileManagerCopyToHost
	FileManagerOptions
	FileManagerLog
	FileManagerOperations
	FileManagerSession
	FileManagerHostGoUp
	FileManagerGuestGoUp
	FileManagerHostGoHome
	FileManagerGuestGoHome
	FileManagerHostRefresh
	FileManagerGuestRefresh
	FileManagerHostDelete
	FileManagerGuestDelete
	FileManagerHostRename
	FileManagerGuestRename
	FileManagerHostCreateNewDirectory
	FileManagerGuestCreateNewDirectory
	FileManagerHostCopy
	FileManagerGuestCopy
	FileManagerHostCut
	FileManagerGuestCut
	FileManagerHostPaste
	FileManagerGuestPaste
	FileManagerHostSelectAll
	FileManagerGuestSelectAll
	FileManagerHostInvertSelection
	FileManagerGuestInvertSelection
	FileManagerHostShowProperties
	FileManagerGuestShowProperties

	indexBaseMax
)

// Manager flavor only.
const (
	MenuFile Index = indexBaseMax + 1 + iota
	FileShowVirtualMediumManager
	FileShowHostNetworkManager
	FileShowCloudProfileManager
	FileImportAppliance
	FileExportAppliance
	FileClose

	MenuWelcome
	WelcomeNew
	WelcomeAdd

	MenuGroup
	GroupNew
	GroupAdd
	GroupRename
	GroupRemove
	MenuGroupMoveToGroup
	MenuGroupStartOrShow
	GroupStartOrShowStartNormal
	GroupStartOrShowStartHeadless
	GroupStartOrShowStartDetachable
	GroupPause
	GroupReset
	MenuGroupConsole
	GroupConsoleCreateConnection
	GroupConsoleDeleteConnection
	GroupConsoleConfigureApplications
	MenuGroupClose
	GroupCloseDetach
	GroupCloseSaveState
	GroupCloseShutdown
	GroupClosePowerOff
	MenuGroupTools
	GroupToolsDetails
	GroupToolsSnapshots
	GroupToolsLogs
	GroupToolsPerformance
	GroupDiscard
	GroupShowLogDialog
	GroupRefresh
	GroupShowInFileManager
	GroupCreateShortcut
	GroupSort
	GroupSearch

	MenuMachine
	MachineNew
	MachineAdd
	MachineSettings
	MachineClone
	MachineMove
	MachineExportToOCI
	MachineRemove
	MenuMachineMoveToGroup
	MachineMoveToGroupNew
	MenuMachineStartOrShow
	MachineStartOrShowStartNormal
	MachineStartOrShowStartHeadless
	MachineStartOrShowStartDetachable
	MachinePause
	MachineReset
	MenuMachineConsole
	MachineConsoleCreateConnection
	MachineConsoleDeleteConnection
	MachineConsoleCopyCommandSerialUnix
	MachineConsoleCopyCommandSerialWindows
	MachineConsoleCopyCommandVNCUnix
	MachineConsoleCopyCommandVNCWindows
	MachineConsoleConfigureApplications
	MenuMachineClose
	MachineCloseDetach
	MachineCloseSaveState
	MachineCloseShutdown
	MachineClosePowerOff
	MenuMachineTools
	MachineToolsDetails
	MachineToolsSnapshots
	MachineToolsLogs
	MachineToolsPerformance
	MachineDiscard
	MachineShowLogDialog
	MachineRefresh
	MachineShowInFileManager
	MachineCreateShortcut
	MachineSortParent
	MachineSearch

	MenuToolsGlobal
	ToolsGlobalVirtualMediaManager
	ToolsGlobalHostNetworkManager
	ToolsGlobalCloudProfileManager
	ToolsGlobalVMResourceMonitor

	MenuSnapshot
	SnapshotTake
	SnapshotDelete
	SnapshotRestore
	SnapshotProperties
	SnapshotClone

	MenuMediumWindow
	MenuMedium
	MediumAdd
	MediumCreate
	MediumCopy
	MediumMove
	MediumRemove
	MediumRelease
	MediumDetails
	MediumSearch
	MediumRefresh

	MenuNetworkWindow
	MenuNetwork
	NetworkCreate
	NetworkRemove
	NetworkDetails
	NetworkRefresh

	MenuCloudWindow
	MenuCloud
	CloudAdd
	CloudImport
	CloudRemove
	CloudDetails
	CloudTryPage
	CloudHelp

	MenuCloudConsoleWindow
	MenuCloudConsole
	CloudConsoleApplicationAdd
	CloudConsoleApplicationRemove
	CloudConsoleProfileAdd
	CloudConsoleProfileRemove
	CloudConsoleDetails

	MenuVMResourceMonitor
	MenuVMResourceMonitorColumns
	VMResourceMonitorSwitchToMachinePerformance

	indexManagerMax
)

// Runtime flavor only.
const (
	MenuView Index = indexManagerMax + 1 + iota
	ViewFullscreen
	ViewSeamless
	ViewScale
	ViewMinimizeWindow
	ViewAdjustWindow
	ViewGuestAutoresize
	ViewTakeScreenshot
	ViewVRDEServer

	indexRuntimeMax
)
