package actionpool

func managerSpecs() []Spec {
	startOrShow := func(idx Index) Spec {
		s := simple(idx, "Start", "vm_start", "StartVM")
		s.Names = []string{"Start", "Show"}
		s.Default = onManager("ctrl+shift+s")
		return s
	}
	startOrShowMenu := func(idx Index) Spec {
		s := menu(idx, "Start")
		s.Names = []string{"Start", "Show"}
		s.Icons = icons("vm_start")
		return s
	}
	pause := func(idx Index) Spec {
		s := toggle(idx, "Pause", "vm_pause", "TogglePauseVM")
		s.Default = onManager("ctrl+p")
		return s
	}
	tool := func(idx Index, name, icon, shortcutID string) Spec {
		s := toggle(idx, name, icon, shortcutID)
		s.Scope = ScopeWidget
		return s
	}
	key := func(s Spec, seq string) Spec {
		s.Default = onManager(seq)
		return s
	}
	// Pane actions answer hot keys only while their pane has focus.
	pane := func(s Spec, seq string) Spec {
		s.Default = onManager(seq)
		s.Scope = ScopeWidget
		return s
	}
	tips := func(s Spec) Spec {
		s.ShowToolTip = true
		return s
	}

	return []Spec{
		menu(MenuFile, "File"),
		key(simple(FileShowVirtualMediumManager, "Virtual Media Manager...", "media_manager", "VirtualMediaManager"), "ctrl+d"),
		key(simple(FileShowHostNetworkManager, "Host Network Manager...", "host_iface_manager", "HostNetworkManager"), "ctrl+h"),
		simple(FileShowCloudProfileManager, "Cloud Profile Manager...", "cloud_profile_manager", "CloudProfileManager"),
		key(simple(FileImportAppliance, "Import Appliance...", "import", "ImportAppliance"), "ctrl+i"),
		key(simple(FileExportAppliance, "Export Appliance...", "export", "ExportAppliance"), "ctrl+e"),
		key(simple(FileClose, "Exit", "exit", "Exit"), "ctrl+q"),

		menu(MenuWelcome, "Machine"),
		key(simple(WelcomeNew, "New...", "vm_new", "NewVM"), "ctrl+n"),
		key(simple(WelcomeAdd, "Add...", "vm_add", "AddVM"), "ctrl+a"),

		menu(MenuGroup, "Group"),
		simple(GroupNew, "New...", "vm_new", "NewVM"),
		simple(GroupAdd, "Add...", "vm_add", "AddVM"),
		key(simple(GroupRename, "Rename Group...", "vm_group_name", "RenameVMGroup"), "ctrl+m"),
		key(simple(GroupRemove, "Ungroup", "vm_group_remove", "AddVMGroup"), "ctrl+u"),
		tips(menu(MenuGroupMoveToGroup, "Move to Group")),
		startOrShowMenu(MenuGroupStartOrShow),
		startOrShow(GroupStartOrShowStartNormal),
		simple(GroupStartOrShowStartHeadless, "Headless Start", "vm_start_headless", "StartVMHeadless"),
		simple(GroupStartOrShowStartDetachable, "Detachable Start", "vm_start_separate", "StartVMDetachable"),
		pause(GroupPause),
		key(simple(GroupReset, "Reset", "vm_reset", "ResetVM"), "ctrl+t"),
		menu(MenuGroupConsole, "Console"),
		simple(GroupConsoleCreateConnection, "Create Connection", "cloud_console_connection_create", "CreateConsoleConnection"),
		simple(GroupConsoleDeleteConnection, "Delete Connection", "cloud_console_connection_delete", "DeleteConsoleConnection"),
		simple(GroupConsoleConfigureApplications, "Configure Console Applications...", "cloud_console_application", "ConfigureConsoleApplications"),
		menu(MenuGroupClose, "Close"),
		simple(GroupCloseDetach, "Detach GUI", "vm_create_shortcut", "DetachUIVM"),
		key(simple(GroupCloseSaveState, "Save State", "vm_save_state", "SaveVM"), "ctrl+v"),
		simple(GroupCloseShutdown, "ACPI Shutdown", "vm_shutdown", "ACPIShutdownVM"),
		key(simple(GroupClosePowerOff, "Power Off", "vm_poweroff", "PowerOffVM"), "ctrl+f"),
		menu(MenuGroupTools, "Tools"),
		tool(GroupToolsDetails, "Details", "machine_details_manager", "ToolsMachineDetails"),
		tool(GroupToolsSnapshots, "Snapshots", "snapshot_manager", "ToolsMachineSnapshots"),
		tool(GroupToolsLogs, "Logs", "vm_show_logs", "ToolsMachineLogViewer"),
		tool(GroupToolsPerformance, "Performance", "performance_monitor", "ToolsMachinePerformanceMonitor"),
		key(simple(GroupDiscard, "Discard Saved State...", "vm_discard", "DiscardVM"), "ctrl+j"),
		key(simple(GroupShowLogDialog, "Show Log...", "vm_show_logs", "LogViewer"), "ctrl+l"),
		simple(GroupRefresh, "Refresh", "refresh", "RefreshVM"),
		key(simple(GroupShowInFileManager, "Show in File Manager", "vm_open_filemanager", "ShowVMInFileManager"), "ctrl+r"),
		simple(GroupCreateShortcut, "Create Shortcut on Desktop", "vm_create_shortcut", "CreateVMAlias"),
		simple(GroupSort, "Sort", "sort", "SortGroup"),
		toggle(GroupSearch, "Search", "search", "SearchVM"),

		menu(MenuMachine, "Machine"),
		key(simple(MachineNew, "New...", "vm_new", "NewVM"), "ctrl+n"),
		key(simple(MachineAdd, "Add...", "vm_add", "AddVM"), "ctrl+a"),
		key(simple(MachineSettings, "Settings...", "vm_settings", "SettingsVM"), "ctrl+s"),
		key(simple(MachineClone, "Clone...", "vm_clone", "CloneVM"), "ctrl+o"),
		simple(MachineMove, "Move...", "vm_move", "MoveVM"),
		simple(MachineExportToOCI, "Export to OCI...", "cloud_profile_manager", "ExportToOCI"),
		key(simple(MachineRemove, "Remove...", "vm_delete", "RemoveVM"), "ctrl+r"),
		tips(menu(MenuMachineMoveToGroup, "Move to Group")),
		simple(MachineMoveToGroupNew, "[New]", "", "MoveToGroupNew"),
		startOrShowMenu(MenuMachineStartOrShow),
		startOrShow(MachineStartOrShowStartNormal),
		simple(MachineStartOrShowStartHeadless, "Headless Start", "vm_start_headless", "StartVMHeadless"),
		simple(MachineStartOrShowStartDetachable, "Detachable Start", "vm_start_separate", "StartVMDetachable"),
		pause(MachinePause),
		key(simple(MachineReset, "Reset", "vm_reset", "ResetVM"), "ctrl+t"),
		menu(MenuMachineConsole, "Console"),
		simple(MachineConsoleCreateConnection, "Create Connection", "cloud_console_connection_create", "CreateConsoleConnection"),
		simple(MachineConsoleDeleteConnection, "Delete Connection", "cloud_console_connection_delete", "DeleteConsoleConnection"),
		simple(MachineConsoleCopyCommandSerialUnix, "Copy Command (serial) for Unix", "cloud_console_command", "CopyConsoleCommandSerialUnix"),
		simple(MachineConsoleCopyCommandSerialWindows, "Copy Command (serial) for Windows", "cloud_console_command", "CopyConsoleCommandSerialWindows"),
		simple(MachineConsoleCopyCommandVNCUnix, "Copy Command (VNC) for Unix", "cloud_console_command", "CopyConsoleCommandVNCUnix"),
		simple(MachineConsoleCopyCommandVNCWindows, "Copy Command (VNC) for Windows", "cloud_console_command", "CopyConsoleCommandVNCWindows"),
		simple(MachineConsoleConfigureApplications, "Configure Console Applications...", "cloud_console_application", "ConfigureConsoleApplications"),
		menu(MenuMachineClose, "Close"),
		simple(MachineCloseDetach, "Detach GUI", "vm_create_shortcut", "DetachUIVM"),
		key(simple(MachineCloseSaveState, "Save State", "vm_save_state", "SaveVM"), "ctrl+v"),
		simple(MachineCloseShutdown, "ACPI Shutdown", "vm_shutdown", "ACPIShutdownVM"),
		key(simple(MachineClosePowerOff, "Power Off", "vm_poweroff", "PowerOffVM"), "ctrl+f"),
		menu(MenuMachineTools, "Tools"),
		tool(MachineToolsDetails, "Details", "machine_details_manager", "ToolsMachineDetails"),
		tool(MachineToolsSnapshots, "Snapshots", "snapshot_manager", "ToolsMachineSnapshots"),
		tool(MachineToolsLogs, "Logs", "vm_show_logs", "ToolsMachineLogViewer"),
		tool(MachineToolsPerformance, "Performance", "performance_monitor", "ToolsMachinePerformanceMonitor"),
		key(simple(MachineDiscard, "Discard Saved State...", "vm_discard", "DiscardVM"), "ctrl+j"),
		key(simple(MachineShowLogDialog, "Show Log...", "vm_show_logs", "LogViewer"), "ctrl+l"),
		simple(MachineRefresh, "Refresh", "refresh", "RefreshVM"),
		simple(MachineShowInFileManager, "Show in File Manager", "vm_open_filemanager", "ShowVMInFileManager"),
		simple(MachineCreateShortcut, "Create Shortcut on Desktop", "vm_create_shortcut", "CreateVMAlias"),
		simple(MachineSortParent, "Sort", "sort", "SortGroup"),
		toggle(MachineSearch, "Search", "search", "SearchVM"),

		menu(MenuToolsGlobal, "Tools"),
		simple(ToolsGlobalVirtualMediaManager, "Virtual Media Manager", "media_manager", "ToolsGlobalVirtualMediaManager"),
		simple(ToolsGlobalHostNetworkManager, "Host Network Manager", "host_iface_manager", "ToolsGlobalHostNetworkManager"),
		simple(ToolsGlobalCloudProfileManager, "Cloud Profile Manager", "cloud_profile_manager", "ToolsGlobalCloudProfileManager"),
		simple(ToolsGlobalVMResourceMonitor, "VM Resource Monitor", "resources_monitor", "ToolsGlobalVMResourceMonitor"),

		menu(MenuSnapshot, "Snapshot"),
		pane(simple(SnapshotTake, "Take...", "snapshot_take", "TakeSnapshot"), "ctrl+shift+t"),
		pane(simple(SnapshotDelete, "Delete...", "snapshot_delete", "DeleteSnapshot"), "ctrl+shift+d"),
		pane(simple(SnapshotRestore, "Restore...", "snapshot_restore", "RestoreSnapshot"), "ctrl+shift+r"),
		pane(toggle(SnapshotProperties, "Properties", "snapshot_show_details", "ToggleSnapshotProperties"), "ctrl+space"),
		pane(simple(SnapshotClone, "Clone...", "vm_clone", "CloneSnapshot"), "ctrl+shift+c"),

		menu(MenuMediumWindow, "Medium"),
		menu(MenuMedium, "Medium"),
		simple(MediumAdd, "Add...", "medium_add", "AddMedium"),
		simple(MediumCreate, "Create...", "medium_add", "CreateMedium"),
		pane(simple(MediumCopy, "Copy...", "copy", "CopyMedium"), "ctrl+shift+c"),
		pane(simple(MediumMove, "Move...", "vm_move", "MoveMedium"), "ctrl+shift+m"),
		pane(simple(MediumRemove, "Remove...", "medium_remove", "RemoveMedium"), "ctrl+shift+r"),
		pane(simple(MediumRelease, "Release...", "medium_release", "ReleaseMedium"), "ctrl+shift+l"),
		pane(toggle(MediumDetails, "Properties", "medium_details", "ToggleMediumProperties"), "ctrl+space"),
		pane(toggle(MediumSearch, "Search", "search", "ToggleMediumSearch"), "ctrl+shift+f"),
		pane(simple(MediumRefresh, "Refresh...", "refresh", "RefreshMediumList"), "f5"),

		menu(MenuNetworkWindow, "Network"),
		menu(MenuNetwork, "Network"),
		pane(simple(NetworkCreate, "Create...", "host_iface_add", "CreateNetwork"), "ctrl+shift+c"),
		pane(simple(NetworkRemove, "Remove...", "host_iface_remove", "RemoveNetwork"), "ctrl+shift+r"),
		pane(toggle(NetworkDetails, "Properties", "host_iface_edit", "ToggleNetworkProperties"), "ctrl+space"),
		pane(simple(NetworkRefresh, "Refresh...", "refresh", "RefreshNetworks"), "f5"),

		menu(MenuCloudWindow, "Cloud"),
		menu(MenuCloud, "Cloud"),
		pane(simple(CloudAdd, "Add...", "cloud_profile_add", "AddCloudProfile"), "ctrl+shift+a"),
		pane(simple(CloudImport, "Import", "cloud_profile_restore", "ImportCloudProfiles"), "ctrl+shift+i"),
		pane(simple(CloudRemove, "Remove...", "cloud_profile_remove", "RemoveCloudProfile"), "ctrl+shift+r"),
		pane(toggle(CloudDetails, "Properties", "cloud_profile_edit", "ToggleCloudProfileProperties"), "ctrl+space"),
		pane(simple(CloudTryPage, "Try Oracle Cloud for Free...", "cloud_profile_try", "ShowCloudProfileTryPage"), "ctrl+shift+t"),
		pane(simple(CloudHelp, "Help...", "cloud_profile_help", "ShowCloudProfileHelp"), "ctrl+shift+h"),

		menu(MenuCloudConsoleWindow, "Console"),
		menu(MenuCloudConsole, "Console"),
		simple(CloudConsoleApplicationAdd, "Add Application...", "cloud_console_application_add", "AddCloudConsoleApplication"),
		simple(CloudConsoleApplicationRemove, "Remove Application", "cloud_console_application_remove", "RemoveCloudConsoleApplication"),
		simple(CloudConsoleProfileAdd, "Add Profile...", "cloud_console_profile_add", "AddCloudConsoleProfile"),
		simple(CloudConsoleProfileRemove, "Remove Profile", "cloud_console_profile_remove", "RemoveCloudConsoleProfile"),
		pane(toggle(CloudConsoleDetails, "Properties", "cloud_console_edit", "ToggleCloudConsoleProperties"), "ctrl+space"),

		menu(MenuVMResourceMonitor, "Resources"),
		menu(MenuVMResourceMonitorColumns, "Columns"),
		simple(VMResourceMonitorSwitchToMachinePerformance, "Switch to Machine Performance", "performance_monitor", "SwitchToMachinePerformance"),
	}
}

func (p *Pool) prepareManagerMenus() {
	if p.mac {
		p.handlers[MenuFile] = layoutHandler(
			[]Index{FileShowVirtualMediumManager, FileShowHostNetworkManager, FileShowCloudProfileManager},
			[]Index{FileImportAppliance, FileExportAppliance},
		)
	} else {
		p.handlers[MenuFile] = layoutHandler(
			[]Index{ApplicationPreferences},
			[]Index{FileShowVirtualMediumManager, FileShowHostNetworkManager, FileShowCloudProfileManager},
			[]Index{FileImportAppliance, FileExportAppliance},
			[]Index{ApplicationNetworkAccessManager, ApplicationCheckForUpdates, ApplicationResetWarnings},
			[]Index{FileClose},
		)
	}

	p.handlers[MenuWelcome] = layoutHandler([]Index{WelcomeNew, WelcomeAdd})
	p.handlers[MenuGroup] = layoutHandler(
		[]Index{GroupNew, GroupAdd},
		[]Index{GroupRename, GroupRemove, MenuGroupMoveToGroup},
		[]Index{MenuGroupStartOrShow, GroupPause, GroupReset, MenuGroupConsole, MenuGroupClose},
		[]Index{MenuGroupTools},
		[]Index{GroupDiscard, GroupShowLogDialog, GroupRefresh},
		[]Index{GroupShowInFileManager, GroupCreateShortcut},
		[]Index{GroupSort, GroupSearch},
	)
	p.handlers[MenuMachine] = layoutHandler(
		[]Index{MachineNew, MachineAdd},
		[]Index{MachineSettings, MachineClone, MachineMove, MachineExportToOCI, MachineRemove, MenuMachineMoveToGroup},
		[]Index{MenuMachineStartOrShow, MachinePause, MachineReset, MenuMachineConsole, MenuMachineClose},
		[]Index{MenuMachineTools},
		[]Index{MachineDiscard, MachineShowLogDialog, MachineRefresh},
		[]Index{MachineShowInFileManager, MachineCreateShortcut},
		[]Index{MachineSortParent, MachineSearch},
	)

	p.handlers[MenuGroupStartOrShow] = layoutHandler([]Index{GroupStartOrShowStartNormal, GroupStartOrShowStartHeadless, GroupStartOrShowStartDetachable})
	p.handlers[MenuMachineStartOrShow] = layoutHandler([]Index{MachineStartOrShowStartNormal, MachineStartOrShowStartHeadless, MachineStartOrShowStartDetachable})
	p.handlers[MenuGroupClose] = layoutHandler([]Index{GroupCloseDetach, GroupCloseSaveState, GroupCloseShutdown, GroupClosePowerOff})
	p.handlers[MenuMachineClose] = layoutHandler([]Index{MachineCloseDetach, MachineCloseSaveState, MachineCloseShutdown, MachineClosePowerOff})
	p.handlers[MenuGroupTools] = layoutHandler([]Index{GroupToolsDetails, GroupToolsSnapshots, GroupToolsLogs, GroupToolsPerformance})
	p.handlers[MenuMachineTools] = layoutHandler([]Index{MachineToolsDetails, MachineToolsSnapshots, MachineToolsLogs, MachineToolsPerformance})

	// Group names, console applications and monitor columns come from live
	// data. Their owners append to these menus on prepare.
	p.handlers[MenuGroupMoveToGroup] = dynamicHandler()
	p.handlers[MenuMachineMoveToGroup] = dynamicHandler([]Index{MachineMoveToGroupNew})
	p.handlers[MenuGroupConsole] = dynamicHandler(
		[]Index{GroupConsoleCreateConnection, GroupConsoleDeleteConnection},
		[]Index{GroupConsoleConfigureApplications},
	)
	p.handlers[MenuMachineConsole] = dynamicHandler(
		[]Index{MachineConsoleCreateConnection, MachineConsoleDeleteConnection},
		[]Index{MachineConsoleCopyCommandSerialUnix, MachineConsoleCopyCommandSerialWindows},
		[]Index{MachineConsoleCopyCommandVNCUnix, MachineConsoleCopyCommandVNCWindows},
		[]Index{MachineConsoleConfigureApplications},
	)
	p.handlers[MenuVMResourceMonitorColumns] = dynamicHandler()

	p.handlers[MenuToolsGlobal] = layoutHandler([]Index{ToolsGlobalVirtualMediaManager, ToolsGlobalHostNetworkManager, ToolsGlobalCloudProfileManager, ToolsGlobalVMResourceMonitor})
	p.handlers[MenuSnapshot] = layoutHandler(
		[]Index{SnapshotTake, SnapshotDelete},
		[]Index{SnapshotRestore, SnapshotProperties},
		[]Index{SnapshotClone},
	)
	medium := [][]Index{
		{MediumAdd, MediumCreate},
		{MediumCopy, MediumMove, MediumRemove, MediumRelease},
		{MediumDetails, MediumSearch, MediumRefresh},
	}
	p.handlers[MenuMediumWindow] = layoutHandler(medium...)
	p.handlers[MenuMedium] = layoutHandler(medium...)
	network := [][]Index{{NetworkCreate, NetworkRemove}, {NetworkDetails, NetworkRefresh}}
	p.handlers[MenuNetworkWindow] = layoutHandler(network...)
	p.handlers[MenuNetwork] = layoutHandler(network...)
	cloud := [][]Index{{CloudAdd, CloudImport, CloudRemove}, {CloudDetails}, {CloudTryPage, CloudHelp}}
	p.handlers[MenuCloudWindow] = layoutHandler(cloud...)
	p.handlers[MenuCloud] = layoutHandler(cloud...)
	console := [][]Index{
		{CloudConsoleApplicationAdd, CloudConsoleApplicationRemove},
		{CloudConsoleProfileAdd, CloudConsoleProfileRemove},
		{CloudConsoleDetails},
	}
	p.handlers[MenuCloudConsoleWindow] = layoutHandler(console...)
	p.handlers[MenuCloudConsole] = layoutHandler(console...)
	p.handlers[MenuVMResourceMonitor] = layoutHandler(
		[]Index{MenuVMResourceMonitorColumns},
		[]Index{VMResourceMonitorSwitchToMachinePerformance},
	)
}

func (p *Pool) prepareManagerGroups() {
	p.group(MenuGroupTools, true, GroupToolsDetails, GroupToolsSnapshots, GroupToolsLogs, GroupToolsPerformance)
	p.group(MenuMachineTools, true, MachineToolsDetails, MachineToolsSnapshots, MachineToolsLogs, MachineToolsPerformance)
}
