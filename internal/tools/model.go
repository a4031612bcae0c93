// Package tools models the list of tool panes next to the VM chooser. Tools
// come in two classes and only the class matching the current selection is
// shown.
package tools

import (
	"fmt"
	"image"
	"slices"

	"github.com/charmbracelet/bubbles/key"

	"vboxmanager/internal/converter"
	"vboxmanager/internal/defs"
	"vboxmanager/internal/extradata"
	"vboxmanager/pkg/logging"
)

const subsystem = "ToolsModel"

// Layout metrics in terminal cells.
const (
	Margin     = 1
	Spacing    = 0
	ItemHeight = 1
)

// Item is one tool entry.
type Item struct {
	Type  defs.ToolType
	Class defs.ToolClass
	Name  string
	Icon  string

	visible bool
	enabled bool
	rect    image.Rectangle
}

func (i *Item) Visible() bool { return i.visible }

// Enabled reports whether the item can be activated.
func (i *Item) Enabled() bool { return i.enabled }

// Rect is the area assigned by the last layout. Hidden items keep their
// previous rect.
func (i *Item) Rect() image.Rectangle { return i.rect }

// KeyMap binds keyboard navigation of the list.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
}

// DefaultKeyMap returns the standard navigation keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous tool"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next tool"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "open tool"),
		),
	}
}

// Model holds the tool items, the current class and the current and focus
// items. It belongs to the UI goroutine.
type Model struct {
	store *extradata.Store
	keys  KeyMap

	items      []*Item
	navigation []*Item
	class      defs.ToolClass
	enabled    map[defs.ToolClass]bool
	restricted []defs.ToolType

	current *Item
	focus   *Item
	last    map[defs.ToolClass]*Item
	pressed *Item

	width int

	selectionHandlers []func(defs.ToolType)
	focusHandlers     []func(defs.ToolType)
}

// New creates the model with the static tool inventory. The store may be
// nil, in which case nothing is persisted.
func New(store *extradata.Store) *Model {
	m := &Model{
		store:   store,
		keys:    DefaultKeyMap(),
		class:   defs.ToolClassGlobal,
		enabled: map[defs.ToolClass]bool{defs.ToolClassGlobal: true, defs.ToolClassMachine: true},
		last:    make(map[defs.ToolClass]*Item),
	}
	for _, t := range []defs.ToolType{
		defs.ToolTypeWelcome, defs.ToolTypeMedia, defs.ToolTypeNetwork, defs.ToolTypeCloud, defs.ToolTypeResources,
		defs.ToolTypeDetails, defs.ToolTypeSnapshots, defs.ToolTypeLogs, defs.ToolTypePerformance,
	} {
		m.items = append(m.items, &Item{
			Type:    t,
			Class:   t.Class(),
			Name:    converter.ToolTypes.ToString(t),
			Icon:    converter.ToolTypes.ToInternalString(t),
			enabled: true,
		})
	}
	return m
}

// Init restores the last chosen tools and lays the items out.
func (m *Model) Init() {
	m.loadLastSelected()
	m.updateLayout()
	m.updateNavigation()
}

// Deinit persists the last chosen tool of each class.
func (m *Model) Deinit() error {
	if m.store == nil {
		return nil
	}
	global, machine := m.LastType(defs.ToolClassGlobal), m.LastType(defs.ToolClassMachine)
	if err := m.store.SetToolsLastItemsChosen(global, machine); err != nil {
		return fmt.Errorf("saving last chosen tools: %w", err)
	}
	return nil
}

func (m *Model) loadLastSelected() {
	global, machine := defs.ToolTypeInvalid, defs.ToolTypeInvalid
	if m.store != nil {
		global, machine = m.store.ToolsLastItemsChosen()
	}
	if global.Class() != defs.ToolClassGlobal {
		global = defs.ToolTypeWelcome
	}
	if machine.Class() != defs.ToolClassMachine {
		machine = defs.ToolTypeDetails
	}
	m.last[defs.ToolClassGlobal] = m.Item(global)
	m.last[defs.ToolClassMachine] = m.Item(machine)
	logging.Debug(subsystem, "Restored last tools %s and %s", global, machine)
}

// OnSelectionChanged registers fn to run when the current item changes.
func (m *Model) OnSelectionChanged(fn func(defs.ToolType)) {
	m.selectionHandlers = append(m.selectionHandlers, fn)
}

// OnFocusChanged registers fn to run when the focus item changes.
func (m *Model) OnFocusChanged(fn func(defs.ToolType)) {
	m.focusHandlers = append(m.focusHandlers, fn)
}

// Items returns every item, hidden ones included.
func (m *Model) Items() []*Item { return m.items }

// Item returns the item of type t, or nil.
func (m *Model) Item(t defs.ToolType) *Item {
	for _, it := range m.items {
		if it.Type == t {
			return it
		}
	}
	return nil
}

// NavigationList returns the visible items in display order.
func (m *Model) NavigationList() []*Item { return m.navigation }

func (m *Model) Class() defs.ToolClass { return m.class }

// SetClass reveals the items of c and hides the others. The last item of
// c becomes current when it is visible.
func (m *Model) SetClass(c defs.ToolClass) {
	if m.class == c {
		return
	}
	m.class = c
	m.updateLayout()
	m.updateNavigation()
}

// Current returns the current item, or nil.
func (m *Model) Current() *Item { return m.current }

// Type returns the type of the current item.
func (m *Model) Type() defs.ToolType {
	if m.current == nil {
		return defs.ToolTypeInvalid
	}
	return m.current.Type
}

// LastType returns the last chosen tool of class c, falling back to the
// class default.
func (m *Model) LastType(c defs.ToolClass) defs.ToolType {
	if it := m.last[c]; it != nil {
		return it.Type
	}
	if c == defs.ToolClassMachine {
		return defs.ToolTypeDetails
	}
	return defs.ToolTypeWelcome
}

// SetType makes the item of type t current if it is visible.
func (m *Model) SetType(t defs.ToolType) {
	if m.current != nil && m.current.Type == t {
		return
	}
	if it := m.Item(t); it != nil && slices.Contains(m.navigation, it) {
		m.SetCurrent(it)
	}
}

// SetCurrent makes it the current item when it is in the navigation list.
// A nil item clears the current item.
func (m *Model) SetCurrent(it *Item) {
	if m.current == it {
		return
	}
	if it != nil {
		if !slices.Contains(m.navigation, it) {
			logging.Debug(subsystem, "Ignoring current item %s outside the navigation list", it.Type)
			return
		}
		m.last[it.Class] = it
	}
	m.current = it
	for _, fn := range m.selectionHandlers {
		fn(m.Type())
	}
	m.SetFocus(it)
}

// Focus returns the item receiving keyboard navigation, or nil.
func (m *Model) Focus() *Item { return m.focus }

// SetFocus moves keyboard focus to it when it is in the navigation list.
func (m *Model) SetFocus(it *Item) {
	if m.focus == it {
		return
	}
	if it != nil && !slices.Contains(m.navigation, it) {
		logging.Warn(subsystem, "Focus item %s is not in the navigation list", it.Type)
		return
	}
	m.focus = it
	t := defs.ToolTypeInvalid
	if it != nil {
		t = it.Type
	}
	for _, fn := range m.focusHandlers {
		fn(t)
	}
}

// SetEnabled enables or disables a whole class. Disabled items stay
// visible but cannot be activated.
func (m *Model) SetEnabled(c defs.ToolClass, enabled bool) {
	m.enabled[c] = enabled
	for _, it := range m.items {
		if it.Class == c {
			it.enabled = enabled
		}
	}
}

// Enabled reports whether class c is enabled.
func (m *Model) Enabled(c defs.ToolClass) bool { return m.enabled[c] }

// SetRestrictedTypes hides the given types regardless of class.
func (m *Model) SetRestrictedTypes(types []defs.ToolType) {
	if slices.Equal(m.restricted, types) {
		return
	}
	m.restricted = slices.Clone(types)
	m.updateLayout()
	m.updateNavigation()
}

// RestrictedTypes returns the hidden types.
func (m *Model) RestrictedTypes() []defs.ToolType { return slices.Clone(m.restricted) }

// RemoveItem drops the item of type t for good.
func (m *Model) RemoveItem(t defs.ToolType) {
	it := m.Item(t)
	if it == nil {
		return
	}
	m.items = slices.DeleteFunc(m.items, func(x *Item) bool { return x == it })
	if m.last[it.Class] == it {
		delete(m.last, it.Class)
	}
	if m.pressed == it {
		m.pressed = nil
	}
	m.updateLayout()
	m.updateNavigation()
}

// Resize lays the items out for a new width.
func (m *Model) Resize(width int) {
	m.width = width
	m.updateLayout()
}

func (m *Model) updateLayout() {
	y := Margin
	for _, it := range m.items {
		if it.Class != m.class || slices.Contains(m.restricted, it.Type) {
			it.visible = false
			continue
		}
		it.rect = image.Rect(Margin, y, max(Margin, m.width-Margin), y+ItemHeight)
		it.visible = true
		y += ItemHeight + Spacing
	}
}

// updateNavigation rebuilds the navigation list and keeps the current and
// focus items inside it.
func (m *Model) updateNavigation() {
	m.navigation = nil
	for _, it := range m.items {
		if it.visible {
			m.navigation = append(m.navigation, it)
		}
	}

	if last := m.last[m.class]; last != nil && slices.Contains(m.navigation, last) {
		m.SetCurrent(last)
	} else if m.current != nil && !slices.Contains(m.navigation, m.current) {
		if len(m.navigation) > 0 {
			m.SetCurrent(m.navigation[0])
		} else {
			m.SetCurrent(nil)
		}
	}
	if m.focus != nil && !slices.Contains(m.navigation, m.focus) {
		m.SetFocus(m.current)
	}
}

// ItemAt returns the visible item covering p, or nil.
func (m *Model) ItemAt(p image.Point) *Item {
	for _, it := range m.navigation {
		if p.Y >= it.rect.Min.Y && p.Y < it.rect.Max.Y {
			return it
		}
	}
	return nil
}

// MousePress remembers the enabled item under p.
func (m *Model) MousePress(p image.Point) bool {
	it := m.ItemAt(p)
	if it == nil || !it.enabled {
		m.pressed = nil
		return false
	}
	m.pressed = it
	return true
}

// MouseRelease activates the pressed item if p is still over it.
func (m *Model) MouseRelease(p image.Point) bool {
	pressed := m.pressed
	m.pressed = nil
	if pressed == nil || m.ItemAt(p) != pressed {
		return false
	}
	m.SetCurrent(pressed)
	return true
}

// HandleKey moves focus with Up and Down and activates the focus item on
// Enter or Space. It reports whether the key was consumed.
func (m *Model) HandleKey(k fmt.Stringer) bool {
	switch {
	case key.Matches(k, m.keys.Up):
		m.moveFocus(-1)
		return true
	case key.Matches(k, m.keys.Down):
		m.moveFocus(1)
		return true
	case key.Matches(k, m.keys.Activate):
		if m.focus != nil && m.focus.enabled {
			m.SetCurrent(m.focus)
		}
		return true
	}
	return false
}

func (m *Model) moveFocus(delta int) {
	if len(m.navigation) == 0 {
		return
	}
	i := slices.Index(m.navigation, m.focus)
	if i < 0 {
		m.SetFocus(m.navigation[0])
		return
	}
	i += delta
	if i < 0 || i >= len(m.navigation) {
		return
	}
	m.SetFocus(m.navigation[i])
}

// KeyMap returns the navigation bindings, for help views.
func (m *Model) KeyMap() KeyMap { return m.keys }
