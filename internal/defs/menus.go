package defs

// Menu and menu-item enumerations are bitmasks so a restriction can be
// expressed as a single value. The zero value is always Invalid and All
// covers every bit.

// MenuType enumerates top-level menus of the menu bar.
type MenuType int

const (
	MenuTypeInvalid     MenuType = 0
	MenuTypeApplication MenuType = 1 << 0
	MenuTypeMachine     MenuType = 1 << 1
	MenuTypeView        MenuType = 1 << 2
	MenuTypeInput       MenuType = 1 << 3
	MenuTypeDevices     MenuType = 1 << 4
	MenuTypeDebug       MenuType = 1 << 5
	MenuTypeWindow      MenuType = 1 << 6
	MenuTypeHelp        MenuType = 1 << 7
	MenuTypeAll         MenuType = 0xFF
)

// MenuApplicationActionType enumerates items of the Application menu.
type MenuApplicationActionType int

const (
	MenuApplicationActionTypeInvalid              MenuApplicationActionType = 0
	MenuApplicationActionTypeAbout                MenuApplicationActionType = 1 << 0
	MenuApplicationActionTypePreferences          MenuApplicationActionType = 1 << 1
	MenuApplicationActionTypeNetworkAccessManager MenuApplicationActionType = 1 << 2
	MenuApplicationActionTypeCheckForUpdates      MenuApplicationActionType = 1 << 3
	MenuApplicationActionTypeResetWarnings        MenuApplicationActionType = 1 << 4
	MenuApplicationActionTypeClose                MenuApplicationActionType = 1 << 5
	MenuApplicationActionTypeAll                  MenuApplicationActionType = 0xFFFF
)

// MenuHelpActionType enumerates items of the Help menu.
type MenuHelpActionType int

const (
	MenuHelpActionTypeInvalid    MenuHelpActionType = 0
	MenuHelpActionTypeContents   MenuHelpActionType = 1 << 0
	MenuHelpActionTypeWebSite    MenuHelpActionType = 1 << 1
	MenuHelpActionTypeBugTracker MenuHelpActionType = 1 << 2
	MenuHelpActionTypeForums     MenuHelpActionType = 1 << 3
	MenuHelpActionTypeOracle     MenuHelpActionType = 1 << 4
	MenuHelpActionTypeAbout      MenuHelpActionType = 1 << 5
	MenuHelpActionTypeAll        MenuHelpActionType = 0xFFFF
)

// MenuWindowActionType enumerates items of the macOS Window menu.
type MenuWindowActionType int

const (
	MenuWindowActionTypeInvalid  MenuWindowActionType = 0
	MenuWindowActionTypeMinimize MenuWindowActionType = 1 << 0
	MenuWindowActionTypeSwitch   MenuWindowActionType = 1 << 1
	MenuWindowActionTypeAll      MenuWindowActionType = 0xFFFF
)

// RuntimeMenuMachineActionType enumerates items of the runtime Machine menu.
type RuntimeMenuMachineActionType int

const (
	RuntimeMenuMachineActionTypeInvalid                   RuntimeMenuMachineActionType = 0
	RuntimeMenuMachineActionTypeSettingsDialog            RuntimeMenuMachineActionType = 1 << 0
	RuntimeMenuMachineActionTypeTakeSnapshot              RuntimeMenuMachineActionType = 1 << 1
	RuntimeMenuMachineActionTypeInformationDialog         RuntimeMenuMachineActionType = 1 << 2
	RuntimeMenuMachineActionTypeFileManagerDialog         RuntimeMenuMachineActionType = 1 << 3
	RuntimeMenuMachineActionTypeGuestProcessControlDialog RuntimeMenuMachineActionType = 1 << 4
	RuntimeMenuMachineActionTypePause                     RuntimeMenuMachineActionType = 1 << 5
	RuntimeMenuMachineActionTypeReset                     RuntimeMenuMachineActionType = 1 << 6
	RuntimeMenuMachineActionTypeDetach                    RuntimeMenuMachineActionType = 1 << 7
	RuntimeMenuMachineActionTypeSaveState                 RuntimeMenuMachineActionType = 1 << 8
	RuntimeMenuMachineActionTypeShutdown                  RuntimeMenuMachineActionType = 1 << 9
	RuntimeMenuMachineActionTypePowerOff                  RuntimeMenuMachineActionType = 1 << 10
	RuntimeMenuMachineActionTypeNothing                   RuntimeMenuMachineActionType = 1 << 11
	RuntimeMenuMachineActionTypeAll                       RuntimeMenuMachineActionType = 0xFFFF
)

// RuntimeMenuViewActionType enumerates items of the runtime View menu.
type RuntimeMenuViewActionType int

const (
	RuntimeMenuViewActionTypeInvalid           RuntimeMenuViewActionType = 0
	RuntimeMenuViewActionTypeFullscreen        RuntimeMenuViewActionType = 1 << 0
	RuntimeMenuViewActionTypeSeamless          RuntimeMenuViewActionType = 1 << 1
	RuntimeMenuViewActionTypeScale             RuntimeMenuViewActionType = 1 << 2
	RuntimeMenuViewActionTypeMinimizeWindow    RuntimeMenuViewActionType = 1 << 3
	RuntimeMenuViewActionTypeAdjustWindow      RuntimeMenuViewActionType = 1 << 4
	RuntimeMenuViewActionTypeGuestAutoresize   RuntimeMenuViewActionType = 1 << 5
	RuntimeMenuViewActionTypeTakeScreenshot    RuntimeMenuViewActionType = 1 << 6
	RuntimeMenuViewActionTypeRecording         RuntimeMenuViewActionType = 1 << 7
	RuntimeMenuViewActionTypeRecordingSettings RuntimeMenuViewActionType = 1 << 8
	RuntimeMenuViewActionTypeStartRecording    RuntimeMenuViewActionType = 1 << 9
	RuntimeMenuViewActionTypeVRDEServer        RuntimeMenuViewActionType = 1 << 10
	RuntimeMenuViewActionTypeMenuBar           RuntimeMenuViewActionType = 1 << 11
	RuntimeMenuViewActionTypeMenuBarSettings   RuntimeMenuViewActionType = 1 << 12
	RuntimeMenuViewActionTypeToggleMenuBar     RuntimeMenuViewActionType = 1 << 13
	RuntimeMenuViewActionTypeStatusBar         RuntimeMenuViewActionType = 1 << 14
	RuntimeMenuViewActionTypeStatusBarSettings RuntimeMenuViewActionType = 1 << 15
	RuntimeMenuViewActionTypeToggleStatusBar   RuntimeMenuViewActionType = 1 << 16
	RuntimeMenuViewActionTypeResize            RuntimeMenuViewActionType = 1 << 17
	RuntimeMenuViewActionTypeRemap             RuntimeMenuViewActionType = 1 << 18
	RuntimeMenuViewActionTypeRescale           RuntimeMenuViewActionType = 1 << 19
	RuntimeMenuViewActionTypeAll               RuntimeMenuViewActionType = 0xFFFFF
)

// RuntimeMenuInputActionType enumerates items of the runtime Input menu.
type RuntimeMenuInputActionType int

const (
	RuntimeMenuInputActionTypeInvalid            RuntimeMenuInputActionType = 0
	RuntimeMenuInputActionTypeKeyboard           RuntimeMenuInputActionType = 1 << 0
	RuntimeMenuInputActionTypeKeyboardSettings   RuntimeMenuInputActionType = 1 << 1
	RuntimeMenuInputActionTypeSoftKeyboard       RuntimeMenuInputActionType = 1 << 2
	RuntimeMenuInputActionTypeTypeCAD            RuntimeMenuInputActionType = 1 << 3
	RuntimeMenuInputActionTypeTypeCABS           RuntimeMenuInputActionType = 1 << 4
	RuntimeMenuInputActionTypeTypeCtrlBreak      RuntimeMenuInputActionType = 1 << 5
	RuntimeMenuInputActionTypeTypeInsert         RuntimeMenuInputActionType = 1 << 6
	RuntimeMenuInputActionTypeTypePrintScreen    RuntimeMenuInputActionType = 1 << 7
	RuntimeMenuInputActionTypeTypeAltPrintScreen RuntimeMenuInputActionType = 1 << 8
	RuntimeMenuInputActionTypeMouse              RuntimeMenuInputActionType = 1 << 9
	RuntimeMenuInputActionTypeMouseIntegration   RuntimeMenuInputActionType = 1 << 10
	RuntimeMenuInputActionTypeTypeHostKeyCombo   RuntimeMenuInputActionType = 1 << 11
	RuntimeMenuInputActionTypeAll                RuntimeMenuInputActionType = 0xFFFF
)

// RuntimeMenuDevicesActionType enumerates items of the runtime Devices menu.
type RuntimeMenuDevicesActionType int

const (
	RuntimeMenuDevicesActionTypeInvalid               RuntimeMenuDevicesActionType = 0
	RuntimeMenuDevicesActionTypeHardDrives            RuntimeMenuDevicesActionType = 1 << 0
	RuntimeMenuDevicesActionTypeHardDrivesSettings    RuntimeMenuDevicesActionType = 1 << 1
	RuntimeMenuDevicesActionTypeOpticalDevices        RuntimeMenuDevicesActionType = 1 << 2
	RuntimeMenuDevicesActionTypeFloppyDevices         RuntimeMenuDevicesActionType = 1 << 3
	RuntimeMenuDevicesActionTypeAudio                 RuntimeMenuDevicesActionType = 1 << 4
	RuntimeMenuDevicesActionTypeAudioOutput           RuntimeMenuDevicesActionType = 1 << 5
	RuntimeMenuDevicesActionTypeAudioInput            RuntimeMenuDevicesActionType = 1 << 6
	RuntimeMenuDevicesActionTypeNetwork               RuntimeMenuDevicesActionType = 1 << 7
	RuntimeMenuDevicesActionTypeNetworkSettings       RuntimeMenuDevicesActionType = 1 << 8
	RuntimeMenuDevicesActionTypeUSBDevices            RuntimeMenuDevicesActionType = 1 << 9
	RuntimeMenuDevicesActionTypeUSBDevicesSettings    RuntimeMenuDevicesActionType = 1 << 10
	RuntimeMenuDevicesActionTypeWebCams               RuntimeMenuDevicesActionType = 1 << 11
	RuntimeMenuDevicesActionTypeSharedClipboard       RuntimeMenuDevicesActionType = 1 << 12
	RuntimeMenuDevicesActionTypeDragAndDrop           RuntimeMenuDevicesActionType = 1 << 13
	RuntimeMenuDevicesActionTypeSharedFolders         RuntimeMenuDevicesActionType = 1 << 14
	RuntimeMenuDevicesActionTypeSharedFoldersSettings RuntimeMenuDevicesActionType = 1 << 15
	RuntimeMenuDevicesActionTypeInstallGuestTools     RuntimeMenuDevicesActionType = 1 << 16
	RuntimeMenuDevicesActionTypeNothing               RuntimeMenuDevicesActionType = 1 << 17
	RuntimeMenuDevicesActionTypeAll                   RuntimeMenuDevicesActionType = 0xFFFFF
)

// RuntimeMenuDebuggerActionType enumerates items of the runtime Debug menu.
type RuntimeMenuDebuggerActionType int

const (
	RuntimeMenuDebuggerActionTypeInvalid             RuntimeMenuDebuggerActionType = 0
	RuntimeMenuDebuggerActionTypeStatistics          RuntimeMenuDebuggerActionType = 1 << 0
	RuntimeMenuDebuggerActionTypeCommandLine         RuntimeMenuDebuggerActionType = 1 << 1
	RuntimeMenuDebuggerActionTypeLogging             RuntimeMenuDebuggerActionType = 1 << 2
	RuntimeMenuDebuggerActionTypeLogDialog           RuntimeMenuDebuggerActionType = 1 << 3
	RuntimeMenuDebuggerActionTypeGuestControlConsole RuntimeMenuDebuggerActionType = 1 << 4
	RuntimeMenuDebuggerActionTypeAll                 RuntimeMenuDebuggerActionType = 0xFFFF
)

// DialogType enumerates restrictable standalone dialogs.
type DialogType int

const (
	DialogTypeInvalid     DialogType = 0
	DialogTypeVISOCreator DialogType = 1 << 0
	DialogTypeAll         DialogType = 0xFF
)
