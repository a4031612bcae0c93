package extradata

import (
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"vboxmanager/internal/converter"
	"vboxmanager/internal/defs"
)

// Global keys.
const (
	KeyRestrictedRuntimeMenus          = "GUI/RestrictedRuntimeMenus"
	KeyRestrictedApplicationMenu       = "GUI/RestrictedRuntimeApplicationMenuActions"
	KeyRestrictedMachineMenu           = "GUI/RestrictedRuntimeMachineMenuActions"
	KeyRestrictedViewMenu              = "GUI/RestrictedRuntimeViewMenuActions"
	KeyRestrictedInputMenu             = "GUI/RestrictedRuntimeInputMenuActions"
	KeyRestrictedDevicesMenu           = "GUI/RestrictedRuntimeDevicesMenuActions"
	KeyRestrictedDebuggerMenu          = "GUI/RestrictedRuntimeDebuggerMenuActions"
	KeyRestrictedWindowMenu            = "GUI/RestrictedRuntimeWindowMenuActions"
	KeyRestrictedHelpMenu              = "GUI/RestrictedRuntimeHelpMenuActions"
	KeyRestrictedDialogs               = "GUI/RestrictedDialogs"
	KeyToolsLastItemsChosen            = "GUI/Tools/LastItemsSelected"
	KeyShortcutsPrefix                 = "GUI/Shortcuts/"
	KeyHostNetworkManagerDetails       = "GUI/HostNetworkManager/Details/Expanded"
	KeyCloudProfileManagerDetails      = "GUI/CloudProfileManager/Details/Expanded"
	KeyCloudConsolePublicKeyPath       = "GUI/CloudConsole/PublicKey/Path"
	KeyCloudConsoleApplications        = "GUI/CloudConsoleManager/Applications"
	KeyCloudConsoleApplicationPrefix   = "GUI/CloudConsoleManager/Application/"
	KeyCloudConsoleManagerRestrictions = "GUI/CloudConsoleManager/Restrictions"
	KeyCloudProfileManagerRestrictions = "GUI/CloudProfileManager/Restrictions"
	KeyUpdateCheckEnabled              = "GUI/UpdateCheckEnabled"
	KeySuppressedMessages              = "GUI/SuppressMessages"
	KeySelectorWindowGeometry          = "GUI/LastWindowPosition"
)

// Per-machine keys.
const (
	KeyPreviewUpdate       = "GUI/PreviewUpdate"
	KeyLastVisualState     = "GUI/LastVisualState"
	KeyShowMiniToolBar     = "GUI/ShowMiniToolBar"
	KeyMiniToolBarAlign    = "GUI/MiniToolBarAlignment"
	KeyMenuBarEnabled      = "GUI/MenuBar/Enabled"
	KeyStatusBarEnabled    = "GUI/StatusBar/Enabled"
	KeyMaxGuestResolution  = "GUI/MaxGuestResolution"
	KeyGuruMeditationMode  = "GUI/GuruMeditationHandler"
	KeyMouseCapturePolicy  = "GUI/MouseCapturePolicy"
	KeyScalingOptimization = "GUI/ScalingOptimization"
)

func isTrue(v string) bool {
	switch strings.ToLower(v) {
	case "true", "yes", "on", "1":
		return true
	}
	return false
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// Flag reads a boolean global key, def when unset.
func (s *Store) Flag(key string, def bool) bool {
	v := s.Get(key)
	if v == "" {
		return def
	}
	return isTrue(v)
}

// SetFlag stores a boolean global key.
func (s *Store) SetFlag(key string, value bool) error {
	return s.Set(key, boolString(value))
}

// List reads a comma-separated global key.
func (s *Store) List(key string) []string {
	v := s.Get(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SetList stores a comma-separated global key.
func (s *Store) SetList(key string, values []string) error {
	return s.Set(key, strings.Join(values, ","))
}

// ToolsLastItemsChosen returns the persisted Global and Machine tools.
func (s *Store) ToolsLastItemsChosen() (defs.ToolType, defs.ToolType) {
	var global, machine defs.ToolType
	for _, item := range s.List(KeyToolsLastItemsChosen) {
		t := converter.ToolTypes.FromInternalString(item)
		switch t.Class() {
		case defs.ToolClassGlobal:
			if global == defs.ToolTypeInvalid {
				global = t
			}
		case defs.ToolClassMachine:
			if machine == defs.ToolTypeInvalid {
				machine = t
			}
		}
	}
	return global, machine
}

// SetToolsLastItemsChosen persists the last Global and Machine tools.
func (s *Store) SetToolsLastItemsChosen(global, machine defs.ToolType) error {
	return s.SetList(KeyToolsLastItemsChosen, []string{
		converter.ToolTypes.ToInternalString(global),
		converter.ToolTypes.ToInternalString(machine),
	})
}

// Shortcuts returns the user overrides of one action-pool flavor, keyed by
// shortcut id.
func (s *Store) Shortcuts(flavor string) map[string]string {
	out := make(map[string]string)
	for _, item := range s.List(KeyShortcutsPrefix + flavor) {
		id, seq, ok := strings.Cut(item, "=")
		if ok {
			out[id] = seq
		}
	}
	return out
}

// SetShortcuts persists the user overrides of one action-pool flavor.
func (s *Store) SetShortcuts(flavor string, overrides map[string]string) error {
	items := make([]string, 0, len(overrides))
	for id, seq := range overrides {
		items = append(items, id+"="+seq)
	}
	slices.Sort(items)
	return s.SetList(KeyShortcutsPrefix+flavor, items)
}

// RestrictedViewMenu returns the restricted View menu actions.
func (s *Store) RestrictedViewMenu() defs.RuntimeMenuViewActionType {
	return converter.ParseMask(converter.RuntimeMenuViewActionTypes, s.Get(KeyRestrictedViewMenu))
}

// SetRestrictedViewMenu persists the restricted View menu actions.
func (s *Store) SetRestrictedViewMenu(mask defs.RuntimeMenuViewActionType) error {
	return s.Set(KeyRestrictedViewMenu, converter.FormatMask(converter.RuntimeMenuViewActionTypes, mask))
}

// RestrictedMenuBar returns the restricted top-level menus.
func (s *Store) RestrictedMenuBar() defs.MenuType {
	return converter.ParseMask(converter.MenuTypes, s.Get(KeyRestrictedRuntimeMenus))
}

// SetRestrictedMenuBar persists the restricted top-level menus.
func (s *Store) SetRestrictedMenuBar(mask defs.MenuType) error {
	return s.Set(KeyRestrictedRuntimeMenus, converter.FormatMask(converter.MenuTypes, mask))
}

// RestrictedApplicationMenu returns the restricted Application menu actions.
func (s *Store) RestrictedApplicationMenu() defs.MenuApplicationActionType {
	return converter.ParseMask(converter.MenuApplicationActionTypes, s.Get(KeyRestrictedApplicationMenu))
}

// SetRestrictedApplicationMenu persists the restricted Application menu actions.
func (s *Store) SetRestrictedApplicationMenu(mask defs.MenuApplicationActionType) error {
	return s.Set(KeyRestrictedApplicationMenu, converter.FormatMask(converter.MenuApplicationActionTypes, mask))
}

// RestrictedHelpMenu returns the restricted Help menu actions.
func (s *Store) RestrictedHelpMenu() defs.MenuHelpActionType {
	return converter.ParseMask(converter.MenuHelpActionTypes, s.Get(KeyRestrictedHelpMenu))
}

// SetRestrictedHelpMenu persists the restricted Help menu actions.
func (s *Store) SetRestrictedHelpMenu(mask defs.MenuHelpActionType) error {
	return s.Set(KeyRestrictedHelpMenu, converter.FormatMask(converter.MenuHelpActionTypes, mask))
}

// RestrictedMachineMenu returns the restricted runtime Machine menu actions.
func (s *Store) RestrictedMachineMenu() defs.RuntimeMenuMachineActionType {
	return converter.ParseMask(converter.RuntimeMenuMachineActionTypes, s.Get(KeyRestrictedMachineMenu))
}

// RestrictedWindowMenu returns the restricted Window menu actions.
func (s *Store) RestrictedWindowMenu() defs.MenuWindowActionType {
	return converter.ParseMask(converter.MenuWindowActionTypes, s.Get(KeyRestrictedWindowMenu))
}

// SetRestrictedWindowMenu persists the restricted Window menu actions.
func (s *Store) SetRestrictedWindowMenu(mask defs.MenuWindowActionType) error {
	return s.Set(KeyRestrictedWindowMenu, converter.FormatMask(converter.MenuWindowActionTypes, mask))
}

// RestrictedDialogs returns the dialogs that may not be opened.
func (s *Store) RestrictedDialogs() defs.DialogType {
	return converter.ParseMask(converter.DialogTypes, s.Get(KeyRestrictedDialogs))
}

// DetailsExpanded reports whether a sub-dialog shows its details pane.
func (s *Store) DetailsExpanded(key string) bool {
	return s.Flag(key, false)
}

// UpdateCheckEnabled reports whether automatic update checks are allowed.
func (s *Store) UpdateCheckEnabled() bool {
	return s.Flag(KeyUpdateCheckEnabled, true)
}

// PreviewUpdateInterval returns the per-machine preview refresh period.
func (s *Store) PreviewUpdateInterval(id uuid.UUID) defs.PreviewUpdateIntervalType {
	v := s.GetMachine(id, KeyPreviewUpdate)
	if n, err := strconv.Atoi(v); err == nil {
		return converter.PreviewUpdateIntervals.FromInternalInteger(n)
	}
	return converter.PreviewUpdateIntervals.FromInternalString(v)
}

// SetPreviewUpdateInterval persists the preview refresh period as milliseconds.
func (s *Store) SetPreviewUpdateInterval(id uuid.UUID, v defs.PreviewUpdateIntervalType) error {
	return s.SetMachine(id, KeyPreviewUpdate, strconv.Itoa(converter.PreviewUpdateIntervals.ToInternalInteger(v)))
}

// RequestedVisualState returns the visual state a machine last asked for.
func (s *Store) RequestedVisualState(id uuid.UUID) defs.VisualStateType {
	v := converter.VisualStateTypes.FromInternalString(s.GetMachine(id, KeyLastVisualState))
	if v == defs.VisualStateTypeInvalid {
		return defs.VisualStateTypeNormal
	}
	return v
}

// SetRequestedVisualState persists the requested visual state.
func (s *Store) SetRequestedVisualState(id uuid.UUID, v defs.VisualStateType) error {
	return s.SetMachine(id, KeyLastVisualState, converter.VisualStateTypes.ToInternalString(v))
}

// MiniToolbar returns whether the mini-toolbar is shown and where.
func (s *Store) MiniToolbar(id uuid.UUID) (bool, defs.MiniToolbarAlignment) {
	enabled := s.GetMachine(id, KeyShowMiniToolBar)
	align := converter.MiniToolbarAlignments.FromInternalString(s.GetMachine(id, KeyMiniToolBarAlign))
	return enabled == "" || isTrue(enabled), align
}

// SetMiniToolbar persists the mini-toolbar settings.
func (s *Store) SetMiniToolbar(id uuid.UUID, enabled bool, align defs.MiniToolbarAlignment) error {
	if err := s.SetMachine(id, KeyShowMiniToolBar, boolString(enabled)); err != nil {
		return err
	}
	return s.SetMachine(id, KeyMiniToolBarAlign, converter.MiniToolbarAlignments.ToInternalString(align))
}

// MenuBarEnabled reports whether the runtime menu bar is shown.
func (s *Store) MenuBarEnabled(id uuid.UUID) bool {
	v := s.GetMachine(id, KeyMenuBarEnabled)
	return v == "" || isTrue(v)
}

// StatusBarEnabled reports whether the runtime status bar is shown.
func (s *Store) StatusBarEnabled(id uuid.UUID) bool {
	v := s.GetMachine(id, KeyStatusBarEnabled)
	return v == "" || isTrue(v)
}

// MaxGuestResolution returns the max guest resolution policy of a machine.
func (s *Store) MaxGuestResolution(id uuid.UUID) defs.MaxGuestResolutionPolicy {
	return converter.MaxGuestResolutionPolicies.FromInternalString(s.GetMachine(id, KeyMaxGuestResolution))
}

// ConsoleApplication is a user-configured cloud console launcher.
type ConsoleApplication struct {
	ID   string
	Name string
	Path string
	Args string
}

// ConsoleApplications returns the configured cloud console applications.
func (s *Store) ConsoleApplications() []ConsoleApplication {
	var out []ConsoleApplication
	for _, id := range s.List(KeyCloudConsoleApplications) {
		fields := strings.SplitN(s.Get(KeyCloudConsoleApplicationPrefix+id), ",", 3)
		app := ConsoleApplication{ID: id}
		if len(fields) > 0 {
			app.Name = fields[0]
		}
		if len(fields) > 1 {
			app.Path = fields[1]
		}
		if len(fields) > 2 {
			app.Args = fields[2]
		}
		out = append(out, app)
	}
	return out
}

// SetConsoleApplication stores a console application and adds it to the list.
func (s *Store) SetConsoleApplication(app ConsoleApplication) error {
	if err := s.Set(KeyCloudConsoleApplicationPrefix+app.ID, strings.Join([]string{app.Name, app.Path, app.Args}, ",")); err != nil {
		return err
	}
	ids := s.List(KeyCloudConsoleApplications)
	if slices.Contains(ids, app.ID) {
		return nil
	}
	return s.SetList(KeyCloudConsoleApplications, append(ids, app.ID))
}
