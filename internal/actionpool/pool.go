// Package actionpool owns every user-invocable action of the manager or
// runtime UI, builds menus from them, applies restrictions and binds
// keyboard shortcuts.
package actionpool

import (
	"fmt"
	"maps"
	"slices"

	"github.com/charmbracelet/bubbles/key"

	"vboxmanager/internal/defs"
	"vboxmanager/internal/extradata"
	"vboxmanager/internal/uiloop"
	"vboxmanager/pkg/logging"
)

const subsystem = "ActionPool"

// Flavor selects which action set a pool carries.
type Flavor int

const (
	FlavorManager Flavor = iota
	FlavorRuntime
)

func (f Flavor) String() string {
	if f == FlavorRuntime {
		return "Runtime"
	}
	return "Manager"
}

// Options configure a pool.
type Options struct {
	Flavor Flavor
	// Mac enables the macOS menu bar conventions.
	Mac bool
	// Loop receives deferred activations from ProcessHotKey.
	Loop uiloop.Poster
	// Store persists shortcut overrides and restrictions. Optional.
	Store *extradata.Store
	// UpdateCheckDisabled hides the update check action.
	UpdateCheckDisabled bool
}

// menuHandler rebuilds one menu from groups of actions. Menus with
// keepInvalid are rebuilt on every prepare since their owners append live
// data to them.
type menuHandler struct {
	groups      [][]Index
	keepInvalid bool
}

// Pool is the registry of actions. It is owned by the UI goroutine.
type Pool struct {
	flavor Flavor
	mac    bool
	loop   uiloop.Poster

	specs   map[Index]*Spec
	actions map[Index]*Action
	order   []Index
	groups  map[Index]*Group

	handlers      map[Index]menuHandler
	parents       map[Index][]Index
	invalidations map[Index]struct{}
	restrictions  restrictions

	shortcuts       *ShortcutPool
	prepareHandlers []func(Index, *Menu)
}

// New builds the pool of the requested flavor. Every menu starts out
// invalidated so it is built on first show.
func New(opts Options) *Pool {
	p := &Pool{
		flavor:        opts.Flavor,
		mac:           opts.Mac,
		loop:          opts.Loop,
		specs:         make(map[Index]*Spec),
		actions:       make(map[Index]*Action),
		groups:        make(map[Index]*Group),
		handlers:      make(map[Index]menuHandler),
		parents:       make(map[Index][]Index),
		invalidations: make(map[Index]struct{}),
	}
	if p.loop == nil {
		p.loop = uiloop.Immediate{}
	}

	p.preparePool()
	p.shortcuts = newShortcutPool(p.flavor, opts.Store)
	p.applyShortcuts()

	if opts.UpdateCheckDisabled {
		p.restrictions[targetApplication][LevelBase] |= int(defs.MenuApplicationActionTypeCheckForUpdates)
	}
	if opts.Store != nil {
		p.restrictions[targetMenuBar][LevelSession] = int(opts.Store.RestrictedMenuBar())
		p.restrictions[targetApplication][LevelSession] = int(opts.Store.RestrictedApplicationMenu())
		p.restrictions[targetWindow][LevelSession] = int(opts.Store.RestrictedWindowMenu())
		p.restrictions[targetHelp][LevelSession] = int(opts.Store.RestrictedHelpMenu())
		p.restrictions[targetView][LevelSession] = int(opts.Store.RestrictedViewMenu())
	}

	for idx := range p.handlers {
		p.invalidations[idx] = struct{}{}
	}
	logging.Debug(subsystem, "Prepared %s pool with %d actions", p.flavor, len(p.actions))
	return p
}

func (p *Pool) preparePool() {
	for _, spec := range baseSpecs(p.mac) {
		p.add(spec)
	}
	p.prepareBaseMenus()

	switch p.flavor {
	case FlavorManager:
		for _, spec := range managerSpecs() {
			p.add(spec)
		}
		p.prepareManagerMenus()
		p.prepareManagerGroups()
	case FlavorRuntime:
		for _, spec := range runtimeSpecs() {
			p.add(spec)
		}
		p.prepareRuntimeMenus()
	}

	p.order = slices.Sorted(maps.Keys(p.actions))
	for idx, h := range p.handlers {
		for _, group := range h.groups {
			for _, child := range group {
				p.parents[child] = append(p.parents[child], idx)
			}
		}
	}
}

func (p *Pool) add(spec Spec) {
	s := spec
	a := &Action{spec: &s, pool: p, enabled: true, visible: true}
	if s.Kind == KindMenu {
		a.menu = &Menu{index: s.Index, ShowToolTip: s.ShowToolTip}
	}
	p.specs[s.Index] = &s
	p.actions[s.Index] = a
}

func (p *Pool) group(idx Index, exclusive bool, members ...Index) {
	g := &Group{Index: idx, Exclusive: exclusive}
	for _, m := range members {
		if a := p.actions[m]; a != nil {
			a.group = g
			g.Actions = append(g.Actions, a)
		}
	}
	p.groups[idx] = g
}

func (p *Pool) Flavor() Flavor { return p.flavor }

// IsMac reports whether macOS menu conventions apply.
func (p *Pool) IsMac() bool { return p.mac }

// Action returns the action at idx, or nil when the flavor has none.
func (p *Pool) Action(idx Index) *Action {
	a, ok := p.actions[idx]
	if !ok {
		logging.Warn(subsystem, "No action with index %d in %s pool", idx, p.flavor)
		return nil
	}
	return a
}

// Actions lists every action in index order.
func (p *Pool) Actions() []*Action {
	out := make([]*Action, 0, len(p.order))
	for _, idx := range p.order {
		out = append(out, p.actions[idx])
	}
	return out
}

// ActionGroup returns the group keyed by idx, or nil.
func (p *Pool) ActionGroup(idx Index) *Group {
	g, ok := p.groups[idx]
	if !ok {
		logging.Warn(subsystem, "No action group with index %d", idx)
		return nil
	}
	return g
}

// Menus lists the menus of every menu action in index order.
func (p *Pool) Menus() []*Menu {
	var out []*Menu
	for _, idx := range p.order {
		if m := p.actions[idx].menu; m != nil {
			out = append(out, m)
		}
	}
	return out
}

// MenuBar lists the top-level menus of the flavor that are visible and
// allowed, in menu bar order.
func (p *Pool) MenuBar() []*Action {
	var order []Index
	switch p.flavor {
	case FlavorManager:
		order = []Index{MenuFile, MenuWelcome, MenuGroup, MenuMachine, MenuSnapshot, MenuLog, MenuPerformance,
			MenuMedium, MenuNetwork, MenuCloud, MenuVMResourceMonitor, MenuWindow, MenuHelp}
		if p.mac {
			order = append([]Index{MenuApplication}, order...)
		}
	case FlavorRuntime:
		order = []Index{MenuApplication, MenuView, MenuWindow, MenuHelp}
	}
	var out []*Action
	for _, idx := range order {
		if a, ok := p.actions[idx]; ok && a.visible && a.Allowed() {
			out = append(out, a)
		}
	}
	return out
}

// Shortcuts exposes the shortcut pool.
func (p *Pool) Shortcuts() *ShortcutPool { return p.shortcuts }

// Invalidate marks a menu for rebuild on its next update.
func (p *Pool) Invalidate(idx Index) {
	if _, ok := p.handlers[idx]; ok {
		p.invalidations[idx] = struct{}{}
	}
}

// Invalidated reports whether a menu waits for a rebuild.
func (p *Pool) Invalidated(idx Index) bool {
	_, ok := p.invalidations[idx]
	return ok
}

// Invalidations returns the invalidated menus in index order.
func (p *Pool) Invalidations() []Index {
	return slices.Sorted(maps.Keys(p.invalidations))
}

// UpdateMenu rebuilds the menu at idx if it is invalidated.
func (p *Pool) UpdateMenu(idx Index) {
	h, ok := p.handlers[idx]
	if !ok {
		return
	}
	if _, invalid := p.invalidations[idx]; !invalid {
		return
	}
	m := p.actions[idx].menu
	p.layout(m, h.groups...)
	m.consume()
	if !h.keepInvalid {
		delete(p.invalidations, idx)
	}
}

// UpdateMenus rebuilds every menu.
func (p *Pool) UpdateMenus() {
	for idx := range p.handlers {
		p.invalidations[idx] = struct{}{}
	}
	for _, idx := range slices.Sorted(maps.Keys(p.handlers)) {
		p.UpdateMenu(idx)
	}
}

// OnMenuPrepare registers fn to run each time a menu is about to show,
// after the pool has rebuilt it.
func (p *Pool) OnMenuPrepare(fn func(Index, *Menu)) {
	p.prepareHandlers = append(p.prepareHandlers, fn)
}

// PrepareMenu is called right before a menu is shown.
func (p *Pool) PrepareMenu(idx Index) *Menu {
	a, ok := p.actions[idx]
	if !ok || a.menu == nil {
		logging.Warn(subsystem, "No menu with index %d", idx)
		return nil
	}
	p.UpdateMenu(idx)
	for _, fn := range p.prepareHandlers {
		fn(idx, a.menu)
	}
	return a.menu
}

// SetShortcut overrides the sequence of the action at idx and persists it.
func (p *Pool) SetShortcut(idx Index, seq string) error {
	a := p.Action(idx)
	if a == nil || a.spec.ShortcutID == "" {
		return fmt.Errorf("action %d has no shortcut id", idx)
	}
	if err := p.shortcuts.SetSequence(a.spec.ShortcutID, seq); err != nil {
		return err
	}
	p.applyShortcuts()
	return nil
}

// ResetShortcut restores the default sequence of the action at idx.
func (p *Pool) ResetShortcut(idx Index) error {
	a := p.Action(idx)
	if a == nil || a.spec.ShortcutID == "" {
		return fmt.Errorf("action %d has no shortcut id", idx)
	}
	if err := p.shortcuts.Reset(a.spec.ShortcutID); err != nil {
		return err
	}
	p.applyShortcuts()
	return nil
}

// ReloadShortcuts re-reads overrides after an external change.
func (p *Pool) ReloadShortcuts() {
	p.shortcuts.Reload()
	p.applyShortcuts()
}

func (p *Pool) applyShortcuts() {
	for _, a := range p.actions {
		if a.spec.Kind == KindMenu {
			continue
		}
		a.shortcut, a.binding = p.shortcuts.binding(a)
	}
}

// Bindings returns the active bindings of enabled actions, for help views.
func (p *Pool) Bindings() []key.Binding {
	var out []key.Binding
	for _, idx := range p.order {
		a := p.actions[idx]
		if a.spec.Kind != KindMenu && a.shortcut != "" && a.Enabled() && a.visible {
			out = append(out, a.binding)
		}
	}
	return out
}

// ProcessHotKey looks for an enabled, reachable action of manager scope
// bound to k. On a match the activation is posted to the UI loop, so the
// key event finishes before the action runs, and true is returned. The
// first match in index order wins.
func (p *Pool) ProcessHotKey(k fmt.Stringer) bool {
	for _, idx := range p.order {
		a := p.actions[idx]
		if a.spec.Scope != ScopeManager || !p.reachable(idx) {
			continue
		}
		if p.activate(a, k) {
			return true
		}
	}
	return false
}

// ProcessWidgetHotKey is ProcessHotKey for the widget-scoped actions of
// one menu, used while the pane owning that menu has focus.
func (p *Pool) ProcessWidgetHotKey(menu Index, k fmt.Stringer) bool {
	h, ok := p.handlers[menu]
	if !ok {
		return false
	}
	for _, group := range h.groups {
		for _, idx := range group {
			if a, ok := p.actions[idx]; ok && p.activate(a, k) {
				return true
			}
		}
	}
	return false
}

func (p *Pool) activate(a *Action, k fmt.Stringer) bool {
	if a.spec.Kind == KindMenu || a.shortcut == "" && len(a.binding.Keys()) == 0 {
		return false
	}
	if !a.Enabled() || !key.Matches(k, a.binding) {
		return false
	}
	logging.Debug(subsystem, "Hot key %s activates %q", k, a.Name())
	p.loop.Post(func() { a.Trigger() })
	return true
}

// reachable reports whether some chain of visible menus leads to idx.
// Actions of hidden menus do not answer hot keys.
func (p *Pool) reachable(idx Index) bool {
	a := p.actions[idx]
	if a == nil || !a.visible || !a.Allowed() {
		return false
	}
	parents := p.parents[idx]
	if len(parents) == 0 {
		return true
	}
	for _, parent := range parents {
		if p.reachable(parent) {
			return true
		}
	}
	return false
}

// addAction puts a into m when allowed and reports whether it was
// allowed. Consumable menus take every action until consumed.
func (p *Pool) addAction(m *Menu, a *Action) bool {
	allowed := a.Allowed()
	if a.spec.Kind == KindMenu {
		a.visible = allowed && !a.menu.consumable
	} else {
		a.visible = allowed
	}
	switch {
	case m.consumable:
		if !m.consumed {
			m.AddAction(a)
		}
	case allowed:
		m.AddAction(a)
	}
	return allowed
}

// layout fills m with groups of actions separated where both sides are
// non-empty.
func (p *Pool) layout(m *Menu, groups ...[]Index) {
	m.Clear()
	if m.consumed {
		return
	}
	for _, group := range groups {
		added := false
		for _, idx := range group {
			if a, ok := p.actions[idx]; ok {
				added = p.addAction(m, a) || added
			}
		}
		if added {
			m.AddSeparator()
		}
	}
	m.trimSeparator()
}

func layoutHandler(groups ...[]Index) menuHandler {
	return menuHandler{groups: groups}
}

func dynamicHandler(groups ...[]Index) menuHandler {
	return menuHandler{groups: groups, keepInvalid: true}
}
