package actionpool

import (
	"vboxmanager/internal/defs"
)

func icons(name string) IconSet {
	if name == "" {
		return IconSet{}
	}
	return IconSet{
		Large:         name + "_24px.png",
		Small:         name + "_16px.png",
		DisabledLarge: name + "_disabled_24px.png",
		DisabledSmall: name + "_disabled_16px.png",
	}
}

func toggleIcons(name string) IconSet {
	set := icons(name)
	set.On = name + "_on_16px.png"
	set.Off = name + "_off_16px.png"
	return set
}

func onManager(seq string) map[Flavor]string { return map[Flavor]string{FlavorManager: seq} }
func onRuntime(seq string) map[Flavor]string { return map[Flavor]string{FlavorRuntime: seq} }

func menu(idx Index, name string) Spec {
	return Spec{Index: idx, Kind: KindMenu, Names: []string{name}}
}

func simple(idx Index, name, icon, shortcutID string) Spec {
	return Spec{Index: idx, Kind: KindSimple, Names: []string{name}, Icons: icons(icon), ShortcutID: shortcutID}
}

func toggle(idx Index, name, icon, shortcutID string) Spec {
	return Spec{Index: idx, Kind: KindToggle, Names: []string{name}, Icons: toggleIcons(icon), ShortcutID: shortcutID}
}

func baseSpecs(mac bool) []Spec {
	app := menu(MenuApplication, "VirtualBox")
	app.Allowed = allowedInMenuBar(defs.MenuTypeApplication)

	about := simple(ApplicationAbout, "About VirtualBox...", "about", "About")
	if mac {
		about.Role = RoleAbout
		about.Allowed = allowedInApplication(defs.MenuApplicationActionTypeAbout)
	} else {
		about.Allowed = allowedInHelp(defs.MenuHelpActionTypeAbout)
	}

	prefs := simple(ApplicationPreferences, "Preferences...", "global_settings", "Preferences")
	prefs.Role = RolePreferences
	prefs.Default = onManager("ctrl+g")
	prefs.Allowed = allowedInApplication(defs.MenuApplicationActionTypePreferences)

	nam := simple(ApplicationNetworkAccessManager, "Network Operations Manager...", "download_manager", "NetworkAccessManager")
	nam.Allowed = allowedInApplication(defs.MenuApplicationActionTypeNetworkAccessManager)

	updates := simple(ApplicationCheckForUpdates, "Check for Updates...", "refresh", "Update")
	updates.Role = RoleApplicationSpecific
	updates.Allowed = allowedInApplication(defs.MenuApplicationActionTypeCheckForUpdates)

	warnings := simple(ApplicationResetWarnings, "Reset All Warnings", "reset_warnings", "ResetWarnings")
	warnings.Allowed = allowedInApplication(defs.MenuApplicationActionTypeResetWarnings)

	closeApp := simple(ApplicationClose, "Close...", "exit", "Close")
	closeApp.Role = RoleQuit
	closeApp.Default = onRuntime("q")
	closeApp.Allowed = allowedInApplication(defs.MenuApplicationActionTypeClose)

	window := menu(MenuWindow, "Window")
	window.Allowed = allowedInMenuBar(defs.MenuTypeWindow)
	minimize := simple(WindowMinimize, "Minimize", "", "Minimize")
	minimize.Default = map[Flavor]string{FlavorManager: "ctrl+m", FlavorRuntime: "ctrl+m"}
	minimize.Allowed = allowedInWindow(defs.MenuWindowActionTypeMinimize)

	help := menu(MenuHelp, "Help")
	help.Allowed = allowedInMenuBar(defs.MenuTypeHelp)
	contents := simple(HelpContents, "Contents...", "help", "Help")
	contents.Default = onManager("f1")
	contents.Standard = map[Flavor]string{FlavorManager: "f1", FlavorRuntime: "f1"}
	contents.Allowed = allowedInHelp(defs.MenuHelpActionTypeContents)
	web := simple(HelpWebSite, "VirtualBox Web Site...", "site", "Web")
	web.Allowed = allowedInHelp(defs.MenuHelpActionTypeWebSite)
	bugs := simple(HelpBugTracker, "VirtualBox Bug Tracker...", "site_bugtracker", "BugTracker")
	bugs.Allowed = allowedInHelp(defs.MenuHelpActionTypeBugTracker)
	forums := simple(HelpForums, "VirtualBox Forums...", "site_forum", "Forums")
	forums.Allowed = allowedInHelp(defs.MenuHelpActionTypeForums)
	oracle := simple(HelpOracle, "Oracle Web Site...", "site_oracle", "Oracle")
	oracle.Allowed = allowedInHelp(defs.MenuHelpActionTypeOracle)
	helpAbout := simple(HelpAbout, "About VirtualBox...", "about", "HelpAbout")
	helpAbout.Allowed = allowedInHelp(defs.MenuHelpActionTypeAbout)

	logRefresh := simple(LogRefresh, "Refresh", "log_viewer_refresh", "RefreshLog")
	logRefresh.Default = onManager("ctrl+shift+r")
	logRefresh.Standard = onManager("f5")
	logRefresh.Scope = ScopeWidget

	specs := []Spec{
		app, about, prefs, nam, updates, warnings, closeApp,
		window, minimize,
		help, contents, web, bugs, forums, oracle, helpAbout,

		menu(MenuLogWindow, "Log"),
		menu(MenuLog, "Log"),
		withKey(toggle(LogFind, "Find", "log_viewer_find", "FindTextInLog"), "ctrl+shift+f"),
		withKey(toggle(LogFilter, "Filter", "log_viewer_filter", "FilterLog"), "ctrl+shift+t"),
		withKey(toggle(LogBookmark, "Bookmark", "log_viewer_bookmark", "ShowLogBookmarks"), "ctrl+shift+d"),
		withKey(toggle(LogOptions, "Options", "log_viewer_options", "ShowLogOptions"), "ctrl+shift+p"),
		logRefresh,
		withKey(simple(LogSave, "Save...", "log_viewer_save", "SaveLog"), "ctrl+shift+s"),

		menu(MenuPerformance, "Performance"),
		simple(PerformanceExport, "Export...", "performance_monitor_export", "PerformanceExport"),

		menu(MenuFileManager, "File Manager"),
		menu(MenuFileManagerHostSubmenu, "Host"),
		menu(MenuFileManagerGuestSubmenu, "Guest"),
		simple(FileManagerCopyToGuest, "Copy to guest", "file_manager_copy_to_guest", "FileManagerCopyToGuest"),
		simple(FileManagerCopyToHost, "Copy to host", "file_manager_copy_to_host", "FileManagerCopyToHost"),
		toggle(FileManagerOptions, "Options", "file_manager_options", "FileManagerOptions"),
		toggle(FileManagerLog, "Log", "file_manager_log", "FileManagerLog"),
		toggle(FileManagerOperations, "Operations", "file_manager_operations", "FileManagerOperations"),
		toggle(FileManagerSession, "Session", "file_manager_session", "FileManagerSession"),
	}

	// Host and guest panes share one list of file operations.
	fileOps := []struct {
		host, guest Index
		name, icon  string
	}{
		{FileManagerHostGoUp, FileManagerGuestGoUp, "Go Up", "file_manager_go_up"},
		{FileManagerHostGoHome, FileManagerGuestGoHome, "Go Home", "file_manager_go_home"},
		{FileManagerHostRefresh, FileManagerGuestRefresh, "Refresh", "file_manager_refresh"},
		{FileManagerHostDelete, FileManagerGuestDelete, "Delete", "file_manager_delete"},
		{FileManagerHostRename, FileManagerGuestRename, "Rename", "file_manager_rename"},
		{FileManagerHostCreateNewDirectory, FileManagerGuestCreateNewDirectory, "Create New Directory", "file_manager_new_directory"},
		{FileManagerHostCopy, FileManagerGuestCopy, "Copy", "file_manager_copy"},
		{FileManagerHostCut, FileManagerGuestCut, "Cut", "file_manager_cut"},
		{FileManagerHostPaste, FileManagerGuestPaste, "Paste", "file_manager_paste"},
		{FileManagerHostSelectAll, FileManagerGuestSelectAll, "Select All", "file_manager_select_all"},
		{FileManagerHostInvertSelection, FileManagerGuestInvertSelection, "Invert Selection", "file_manager_invert_selection"},
		{FileManagerHostShowProperties, FileManagerGuestShowProperties, "Show Properties", "file_manager_properties"},
	}
	for _, op := range fileOps {
		host := simple(op.host, op.name, op.icon, "")
		host.Scope = ScopeWidget
		guest := simple(op.guest, op.name, op.icon, "")
		guest.Scope = ScopeWidget
		specs = append(specs, host, guest)
	}
	return specs
}

func withKey(s Spec, seq string) Spec {
	s.Default = onManager(seq)
	s.Scope = ScopeWidget
	return s
}

func (p *Pool) prepareBaseMenus() {
	if p.mac {
		p.actions[MenuApplication].menu.consumable = true
		p.handlers[MenuApplication] = layoutHandler(
			[]Index{ApplicationAbout},
			[]Index{ApplicationPreferences},
			[]Index{ApplicationNetworkAccessManager, ApplicationCheckForUpdates, ApplicationResetWarnings},
			p.closeItems(),
		)
		p.handlers[MenuWindow] = dynamicHandler([]Index{WindowMinimize})
		p.handlers[MenuHelp] = layoutHandler(
			[]Index{HelpContents},
			[]Index{HelpWebSite, HelpBugTracker, HelpForums, HelpOracle},
		)
	} else {
		p.handlers[MenuApplication] = layoutHandler(
			[]Index{ApplicationPreferences},
			[]Index{ApplicationNetworkAccessManager, ApplicationCheckForUpdates, ApplicationResetWarnings},
			p.closeItems(),
		)
		p.handlers[MenuHelp] = layoutHandler(
			[]Index{HelpContents},
			[]Index{HelpWebSite, HelpBugTracker, HelpForums, HelpOracle},
			[]Index{HelpAbout},
		)
		// The Window menu is a macOS concept.
		delete(p.actions, MenuWindow)
		delete(p.actions, WindowMinimize)
	}
	if p.mac {
		delete(p.actions, HelpAbout)
	} else {
		delete(p.actions, ApplicationAbout)
	}

	p.handlers[MenuLogWindow] = layoutHandler([]Index{LogSave})
	p.handlers[MenuLog] = layoutHandler(
		[]Index{LogFind, LogFilter, LogBookmark, LogOptions},
		[]Index{LogRefresh, LogSave},
	)
	p.handlers[MenuPerformance] = layoutHandler([]Index{PerformanceExport})
	p.handlers[MenuFileManager] = layoutHandler(
		[]Index{MenuFileManagerHostSubmenu, MenuFileManagerGuestSubmenu},
		[]Index{FileManagerCopyToGuest, FileManagerCopyToHost},
		[]Index{FileManagerOptions, FileManagerLog, FileManagerOperations, FileManagerSession},
	)
	p.handlers[MenuFileManagerHostSubmenu] = layoutHandler(fileManagerPane(true)...)
	p.handlers[MenuFileManagerGuestSubmenu] = layoutHandler(fileManagerPane(false)...)
}

// closeItems is the trailing group of the Application menu. The manager
// closes through its File menu instead.
func (p *Pool) closeItems() []Index {
	if p.flavor == FlavorRuntime {
		return []Index{ApplicationClose}
	}
	return nil
}

func fileManagerPane(host bool) [][]Index {
	pick := func(h, g Index) Index {
		if host {
			return h
		}
		return g
	}
	return [][]Index{
		{pick(FileManagerHostGoUp, FileManagerGuestGoUp), pick(FileManagerHostGoHome, FileManagerGuestGoHome), pick(FileManagerHostRefresh, FileManagerGuestRefresh)},
		{pick(FileManagerHostDelete, FileManagerGuestDelete), pick(FileManagerHostRename, FileManagerGuestRename), pick(FileManagerHostCreateNewDirectory, FileManagerGuestCreateNewDirectory)},
		{pick(FileManagerHostCopy, FileManagerGuestCopy), pick(FileManagerHostCut, FileManagerGuestCut), pick(FileManagerHostPaste, FileManagerGuestPaste)},
		{pick(FileManagerHostSelectAll, FileManagerGuestSelectAll), pick(FileManagerHostInvertSelection, FileManagerGuestInvertSelection)},
		{pick(FileManagerHostShowProperties, FileManagerGuestShowProperties)},
	}
}
