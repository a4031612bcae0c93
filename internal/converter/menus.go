package converter

import "vboxmanager/internal/defs"

// Restriction enums only have a persisted representation.

var DialogTypes = register(&Converter[defs.DialogType]{
	name:    "DialogType",
	invalid: defs.DialogTypeInvalid,
	entries: []Entry[defs.DialogType]{
		{Value: defs.DialogTypeVISOCreator, Internal: "VISOCreator"},
		{Value: defs.DialogTypeAll, Internal: "All"},
	},
})

var MenuTypes = register(&Converter[defs.MenuType]{
	name:    "MenuType",
	invalid: defs.MenuTypeInvalid,
	entries: []Entry[defs.MenuType]{
		{Value: defs.MenuTypeApplication, Internal: "Application"},
		{Value: defs.MenuTypeMachine, Internal: "Machine"},
		{Value: defs.MenuTypeView, Internal: "View"},
		{Value: defs.MenuTypeInput, Internal: "Input"},
		{Value: defs.MenuTypeDevices, Internal: "Devices"},
		{Value: defs.MenuTypeDebug, Internal: "Debug"},
		{Value: defs.MenuTypeWindow, Internal: "Window"},
		{Value: defs.MenuTypeHelp, Internal: "Help"},
		{Value: defs.MenuTypeAll, Internal: "All"},
	},
})

var MenuApplicationActionTypes = register(&Converter[defs.MenuApplicationActionType]{
	name:    "MenuApplicationActionType",
	invalid: defs.MenuApplicationActionTypeInvalid,
	entries: []Entry[defs.MenuApplicationActionType]{
		{Value: defs.MenuApplicationActionTypeAbout, Internal: "About"},
		{Value: defs.MenuApplicationActionTypePreferences, Internal: "Preferences"},
		{Value: defs.MenuApplicationActionTypeNetworkAccessManager, Internal: "NetworkAccessManager"},
		{Value: defs.MenuApplicationActionTypeCheckForUpdates, Internal: "CheckForUpdates"},
		{Value: defs.MenuApplicationActionTypeResetWarnings, Internal: "ResetWarnings"},
		{Value: defs.MenuApplicationActionTypeClose, Internal: "Close"},
		{Value: defs.MenuApplicationActionTypeAll, Internal: "All"},
	},
})

var MenuHelpActionTypes = register(&Converter[defs.MenuHelpActionType]{
	name:    "MenuHelpActionType",
	invalid: defs.MenuHelpActionTypeInvalid,
	entries: []Entry[defs.MenuHelpActionType]{
		{Value: defs.MenuHelpActionTypeContents, Internal: "Contents"},
		{Value: defs.MenuHelpActionTypeWebSite, Internal: "WebSite"},
		{Value: defs.MenuHelpActionTypeBugTracker, Internal: "BugTracker"},
		{Value: defs.MenuHelpActionTypeForums, Internal: "Forums"},
		{Value: defs.MenuHelpActionTypeOracle, Internal: "Oracle"},
		{Value: defs.MenuHelpActionTypeAbout, Internal: "About"},
		{Value: defs.MenuHelpActionTypeAll, Internal: "All"},
	},
})

var MenuWindowActionTypes = register(&Converter[defs.MenuWindowActionType]{
	name:    "MenuWindowActionType",
	invalid: defs.MenuWindowActionTypeInvalid,
	entries: []Entry[defs.MenuWindowActionType]{
		{Value: defs.MenuWindowActionTypeMinimize, Internal: "Minimize"},
		{Value: defs.MenuWindowActionTypeSwitch, Internal: "Switch"},
		{Value: defs.MenuWindowActionTypeAll, Internal: "All"},
	},
})

var RuntimeMenuMachineActionTypes = register(&Converter[defs.RuntimeMenuMachineActionType]{
	name:    "RuntimeMenuMachineActionType",
	invalid: defs.RuntimeMenuMachineActionTypeInvalid,
	entries: []Entry[defs.RuntimeMenuMachineActionType]{
		{Value: defs.RuntimeMenuMachineActionTypeSettingsDialog, Internal: "SettingsDialog"},
		{Value: defs.RuntimeMenuMachineActionTypeTakeSnapshot, Internal: "TakeSnapshot"},
		{Value: defs.RuntimeMenuMachineActionTypeInformationDialog, Internal: "InformationDialog"},
		{Value: defs.RuntimeMenuMachineActionTypeFileManagerDialog, Internal: "FileManagerDialog"},
		{Value: defs.RuntimeMenuMachineActionTypeGuestProcessControlDialog, Internal: "GuestProcessControlDialog"},
		{Value: defs.RuntimeMenuMachineActionTypePause, Internal: "Pause"},
		{Value: defs.RuntimeMenuMachineActionTypeReset, Internal: "Reset"},
		{Value: defs.RuntimeMenuMachineActionTypeDetach, Internal: "Detach"},
		{Value: defs.RuntimeMenuMachineActionTypeSaveState, Internal: "SaveState"},
		{Value: defs.RuntimeMenuMachineActionTypeShutdown, Internal: "Shutdown"},
		{Value: defs.RuntimeMenuMachineActionTypePowerOff, Internal: "PowerOff"},
		{Value: defs.RuntimeMenuMachineActionTypeNothing, Internal: "Nothing"},
		{Value: defs.RuntimeMenuMachineActionTypeAll, Internal: "All"},
	},
})

var RuntimeMenuViewActionTypes = register(&Converter[defs.RuntimeMenuViewActionType]{
	name:    "RuntimeMenuViewActionType",
	invalid: defs.RuntimeMenuViewActionTypeInvalid,
	entries: []Entry[defs.RuntimeMenuViewActionType]{
		{Value: defs.RuntimeMenuViewActionTypeFullscreen, Internal: "Fullscreen"},
		{Value: defs.RuntimeMenuViewActionTypeSeamless, Internal: "Seamless"},
		{Value: defs.RuntimeMenuViewActionTypeScale, Internal: "Scale"},
		{Value: defs.RuntimeMenuViewActionTypeMinimizeWindow, Internal: "MinimizeWindow"},
		{Value: defs.RuntimeMenuViewActionTypeAdjustWindow, Internal: "AdjustWindow"},
		{Value: defs.RuntimeMenuViewActionTypeGuestAutoresize, Internal: "GuestAutoresize"},
		{Value: defs.RuntimeMenuViewActionTypeTakeScreenshot, Internal: "TakeScreenshot"},
		{Value: defs.RuntimeMenuViewActionTypeRecording, Internal: "Recording"},
		{Value: defs.RuntimeMenuViewActionTypeRecordingSettings, Internal: "RecordingSettings"},
		{Value: defs.RuntimeMenuViewActionTypeStartRecording, Internal: "StartRecording"},
		{Value: defs.RuntimeMenuViewActionTypeVRDEServer, Internal: "VRDEServer"},
		{Value: defs.RuntimeMenuViewActionTypeMenuBar, Internal: "MenuBar"},
		{Value: defs.RuntimeMenuViewActionTypeMenuBarSettings, Internal: "MenuBarSettings"},
		{Value: defs.RuntimeMenuViewActionTypeToggleMenuBar, Internal: "ToggleMenuBar"},
		{Value: defs.RuntimeMenuViewActionTypeStatusBar, Internal: "StatusBar"},
		{Value: defs.RuntimeMenuViewActionTypeStatusBarSettings, Internal: "StatusBarSettings"},
		{Value: defs.RuntimeMenuViewActionTypeToggleStatusBar, Internal: "ToggleStatusBar"},
		{Value: defs.RuntimeMenuViewActionTypeResize, Internal: "Resize"},
		{Value: defs.RuntimeMenuViewActionTypeRemap, Internal: "Remap"},
		{Value: defs.RuntimeMenuViewActionTypeRescale, Internal: "Rescale"},
		{Value: defs.RuntimeMenuViewActionTypeAll, Internal: "All"},
	},
})

var RuntimeMenuInputActionTypes = register(&Converter[defs.RuntimeMenuInputActionType]{
	name:    "RuntimeMenuInputActionType",
	invalid: defs.RuntimeMenuInputActionTypeInvalid,
	entries: []Entry[defs.RuntimeMenuInputActionType]{
		{Value: defs.RuntimeMenuInputActionTypeKeyboard, Internal: "Keyboard"},
		{Value: defs.RuntimeMenuInputActionTypeKeyboardSettings, Internal: "KeyboardSettings"},
		{Value: defs.RuntimeMenuInputActionTypeSoftKeyboard, Internal: "SoftKeyboard"},
		{Value: defs.RuntimeMenuInputActionTypeTypeCAD, Internal: "TypeCAD"},
		{Value: defs.RuntimeMenuInputActionTypeTypeCABS, Internal: "TypeCABS"},
		{Value: defs.RuntimeMenuInputActionTypeTypeCtrlBreak, Internal: "TypeCtrlBreak"},
		{Value: defs.RuntimeMenuInputActionTypeTypeInsert, Internal: "TypeInsert"},
		{Value: defs.RuntimeMenuInputActionTypeTypePrintScreen, Internal: "TypePrintScreen"},
		{Value: defs.RuntimeMenuInputActionTypeTypeAltPrintScreen, Internal: "TypeAltPrintScreen"},
		{Value: defs.RuntimeMenuInputActionTypeMouse, Internal: "Mouse"},
		{Value: defs.RuntimeMenuInputActionTypeMouseIntegration, Internal: "MouseIntegration"},
		{Value: defs.RuntimeMenuInputActionTypeTypeHostKeyCombo, Internal: "TypeHostKeyCombo"},
		{Value: defs.RuntimeMenuInputActionTypeAll, Internal: "All"},
	},
})

var RuntimeMenuDevicesActionTypes = register(&Converter[defs.RuntimeMenuDevicesActionType]{
	name:    "RuntimeMenuDevicesActionType",
	invalid: defs.RuntimeMenuDevicesActionTypeInvalid,
	entries: []Entry[defs.RuntimeMenuDevicesActionType]{
		{Value: defs.RuntimeMenuDevicesActionTypeHardDrives, Internal: "HardDrives"},
		{Value: defs.RuntimeMenuDevicesActionTypeHardDrivesSettings, Internal: "HardDrivesSettings"},
		{Value: defs.RuntimeMenuDevicesActionTypeOpticalDevices, Internal: "OpticalDevices"},
		{Value: defs.RuntimeMenuDevicesActionTypeFloppyDevices, Internal: "FloppyDevices"},
		{Value: defs.RuntimeMenuDevicesActionTypeAudio, Internal: "Audio"},
		{Value: defs.RuntimeMenuDevicesActionTypeAudioOutput, Internal: "AudioOutput"},
		{Value: defs.RuntimeMenuDevicesActionTypeAudioInput, Internal: "AudioInput"},
		{Value: defs.RuntimeMenuDevicesActionTypeNetwork, Internal: "Network"},
		{Value: defs.RuntimeMenuDevicesActionTypeNetworkSettings, Internal: "NetworkSettings"},
		{Value: defs.RuntimeMenuDevicesActionTypeUSBDevices, Internal: "USBDevices"},
		{Value: defs.RuntimeMenuDevicesActionTypeUSBDevicesSettings, Internal: "USBDevicesSettings"},
		{Value: defs.RuntimeMenuDevicesActionTypeWebCams, Internal: "WebCams"},
		{Value: defs.RuntimeMenuDevicesActionTypeSharedClipboard, Internal: "SharedClipboard"},
		{Value: defs.RuntimeMenuDevicesActionTypeDragAndDrop, Internal: "DragAndDrop"},
		{Value: defs.RuntimeMenuDevicesActionTypeSharedFolders, Internal: "SharedFolders"},
		{Value: defs.RuntimeMenuDevicesActionTypeSharedFoldersSettings, Internal: "SharedFoldersSettings"},
		{Value: defs.RuntimeMenuDevicesActionTypeInstallGuestTools, Internal: "InstallGuestTools"},
		{Value: defs.RuntimeMenuDevicesActionTypeNothing, Internal: "Nothing"},
		{Value: defs.RuntimeMenuDevicesActionTypeAll, Internal: "All"},
	},
})

var RuntimeMenuDebuggerActionTypes = register(&Converter[defs.RuntimeMenuDebuggerActionType]{
	name:    "RuntimeMenuDebuggerActionType",
	invalid: defs.RuntimeMenuDebuggerActionTypeInvalid,
	entries: []Entry[defs.RuntimeMenuDebuggerActionType]{
		{Value: defs.RuntimeMenuDebuggerActionTypeStatistics, Internal: "Statistics"},
		{Value: defs.RuntimeMenuDebuggerActionTypeCommandLine, Internal: "CommandLine"},
		{Value: defs.RuntimeMenuDebuggerActionTypeLogging, Internal: "Logging"},
		{Value: defs.RuntimeMenuDebuggerActionTypeLogDialog, Internal: "LogDialog"},
		{Value: defs.RuntimeMenuDebuggerActionTypeGuestControlConsole, Internal: "GuestControlConsole"},
		{Value: defs.RuntimeMenuDebuggerActionTypeAll, Internal: "All"},
	},
})
