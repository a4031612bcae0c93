package actionpool

import (
	"github.com/charmbracelet/bubbles/key"
)

// Kind is the variant of an action.
type Kind int

const (
	KindMenu Kind = iota
	KindSimple
	KindToggle
)

// Role tells the platform menu bar where an action belongs.
type Role int

const (
	RoleNone Role = iota
	RolePreferences
	RoleQuit
	RoleAbout
	RoleApplicationSpecific
)

// Scope is where a shortcut is active.
type Scope int

const (
	// ScopeManager shortcuts work anywhere in the window.
	ScopeManager Scope = iota
	// ScopeWidget shortcuts work only while the owning pane has focus.
	ScopeWidget
)

// IconSet names the icon resources of an action.
type IconSet struct {
	Large         string
	Small         string
	DisabledLarge string
	DisabledSmall string
	// On and Off are used by toggles.
	On  string
	Off string
}

// Spec is the immutable description of one action.
type Spec struct {
	Index Index
	Kind  Kind
	// Names holds one display name per visual state; most actions have one.
	Names []string
	Icons IconSet
	Role  Role
	// ShortcutID is the persistence key of the user's shortcut override.
	ShortcutID string
	// Default is the default key sequence per flavor.
	Default map[Flavor]string
	// Standard is an OS-standard alternative sequence.
	Standard map[Flavor]string
	Scope    Scope
	// Allowed reports whether restrictions permit the action. Nil means
	// always allowed.
	Allowed func(p *Pool) bool
	// ShowToolTip marks menus that show item tooltips on hover.
	ShowToolTip bool
}

// Action is the live state of one action in a pool.
type Action struct {
	spec *Spec
	pool *Pool

	enabled bool
	visible bool
	checked bool
	opened  int
	state   int

	shortcut string
	binding  key.Binding

	menu     *Menu
	group    *Group
	handlers []func(*Action)
}

func (a *Action) Index() Index         { return a.spec.Index }
func (a *Action) Kind() Kind           { return a.spec.Kind }
func (a *Action) Role() Role           { return a.spec.Role }
func (a *Action) Icons() IconSet       { return a.spec.Icons }
func (a *Action) Scope() Scope         { return a.spec.Scope }
func (a *Action) ShortcutID() string   { return a.spec.ShortcutID }
func (a *Action) Menu() *Menu          { return a.menu }
func (a *Action) Group() *Group        { return a.group }
func (a *Action) Visible() bool        { return a.visible }
func (a *Action) Opened() bool         { return a.opened > 0 }
func (a *Action) Checked() bool        { return a.checked }
func (a *Action) State() int           { return a.state }
func (a *Action) Shortcut() string     { return a.shortcut }
func (a *Action) Binding() key.Binding { return a.binding }

// Name returns the display name for the current visual state.
func (a *Action) Name() string {
	if len(a.spec.Names) == 0 {
		return ""
	}
	if a.state < len(a.spec.Names) {
		return a.spec.Names[a.state]
	}
	return a.spec.Names[len(a.spec.Names)-1]
}

// ToolTip is the name followed by the shortcut, if any.
func (a *Action) ToolTip() string {
	if a.shortcut == "" {
		return a.Name()
	}
	return a.Name() + " (" + a.shortcut + ")"
}

// Allowed reports whether no restriction level hides the action.
func (a *Action) Allowed() bool {
	if a.spec.Allowed == nil {
		return true
	}
	return a.spec.Allowed(a.pool)
}

// Enabled holds only while the action is requested enabled, is not opened
// and is allowed.
func (a *Action) Enabled() bool {
	return a.enabled && a.opened == 0 && a.Allowed()
}

// SetEnabled requests the enabled state.
func (a *Action) SetEnabled(enabled bool) { a.enabled = enabled }

// SetVisible shows or hides the action in menus.
func (a *Action) SetVisible(visible bool) { a.visible = visible }

// SetState selects the visual state, which picks the display name.
func (a *Action) SetState(state int) { a.state = state }

// SetChecked sets a toggle's checked state without triggering it. In an
// exclusive group checking one action unchecks the others.
func (a *Action) SetChecked(checked bool) {
	if a.spec.Kind != KindToggle {
		return
	}
	a.checked = checked
	if checked && a.group != nil && a.group.Exclusive {
		for _, other := range a.group.Actions {
			if other != a {
				other.checked = false
			}
		}
	}
}

// OnTrigger registers fn to run whenever the action is triggered.
func (a *Action) OnTrigger(fn func(*Action)) {
	a.handlers = append(a.handlers, fn)
}

// Trigger activates the action synchronously. Toggles flip their checked
// state first. Disabled actions are ignored.
func (a *Action) Trigger() bool {
	if a.spec.Kind == KindMenu || !a.Enabled() {
		return false
	}
	if a.spec.Kind == KindToggle {
		if a.group != nil && a.group.Exclusive {
			a.SetChecked(true)
		} else {
			a.checked = !a.checked
		}
	}
	for _, fn := range a.handlers {
		fn(a)
	}
	return true
}

// Open marks the action's dialog as live and returns the function that
// clears the mark. The action reports disabled until every release
// returned by Open has run:
//
//	release := a.Open()
//	defer release()
func (a *Action) Open() (release func()) {
	a.opened++
	done := false
	return func() {
		if done {
			return
		}
		done = true
		a.opened--
	}
}

// Group is a set of toggles that behave like radio buttons when Exclusive.
type Group struct {
	Index     Index
	Actions   []*Action
	Exclusive bool
}

// Checked returns the checked action of the group, if any.
func (g *Group) Checked() *Action {
	for _, a := range g.Actions {
		if a.checked {
			return a
		}
	}
	return nil
}
