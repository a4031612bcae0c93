package model

import (
	"vboxmanager/internal/actionpool"
	"vboxmanager/internal/manager"
)

// OpenMenuBar shows the top-level menus of the pool.
func (m *Model) OpenMenuBar() {
	bar := &MenuFrame{Title: "Menu", Bar: true}
	for _, a := range m.Manager.Pool().MenuBar() {
		bar.Items = append(bar.Items, actionpool.Item{Action: a})
	}
	m.Menus = []*MenuFrame{bar}
	m.Dirty = true
}

// ContextMenuIndex returns the menu matching the chooser selection.
func (m *Model) ContextMenuIndex() actionpool.Index {
	switch m.Manager.Selection().Kind() {
	case manager.SelectionGlobal:
		return actionpool.MenuWelcome
	case manager.SelectionSingleGroup:
		return actionpool.MenuGroup
	default:
		return actionpool.MenuMachine
	}
}

// OpenMenu prepares the menu idx and pushes it on the menu stack.
func (m *Model) OpenMenu(idx actionpool.Index) {
	menu := m.Manager.Pool().PrepareMenu(idx)
	if menu == nil || menu.Empty() {
		return
	}
	frame := &MenuFrame{Index: idx, Items: menu.Items()}
	if a := m.Manager.Pool().Action(idx); a != nil {
		frame.Title = a.Name()
	}
	frame.Cursor = nextSelectable(frame.Items, -1, 1)
	m.Menus = append(m.Menus, frame)
	m.Dirty = true
}

// CurrentMenu returns the innermost open menu, or nil.
func (m *Model) CurrentMenu() *MenuFrame {
	if len(m.Menus) == 0 {
		return nil
	}
	return m.Menus[len(m.Menus)-1]
}

// CloseMenu pops one menu level.
func (m *Model) CloseMenu() {
	if len(m.Menus) > 0 {
		m.Menus = m.Menus[:len(m.Menus)-1]
		m.Dirty = true
	}
}

// CloseMenus closes every open menu.
func (m *Model) CloseMenus() {
	m.Menus = nil
	m.Dirty = true
}

// MoveMenuCursor moves the cursor of the innermost menu, skipping
// separators.
func (m *Model) MoveMenuCursor(delta int) {
	f := m.CurrentMenu()
	if f == nil {
		return
	}
	if next := nextSelectable(f.Items, f.Cursor, delta); next >= 0 {
		f.Cursor = next
		m.Dirty = true
	}
}

func nextSelectable(items []actionpool.Item, from, delta int) int {
	for i := from + delta; i >= 0 && i < len(items); i += delta {
		if !items[i].Separator {
			return i
		}
	}
	return -1
}

// ActivateMenuItem opens the submenu under the cursor or runs its entry.
// Menus close once an entry ran.
func (m *Model) ActivateMenuItem() {
	f := m.CurrentMenu()
	if f == nil || f.Cursor < 0 || f.Cursor >= len(f.Items) {
		return
	}
	it := f.Items[f.Cursor]
	switch {
	case it.Separator:
		return
	case it.IsSubmenu() || f.Bar:
		if it.Action != nil {
			m.OpenMenu(it.Action.Index())
		}
		return
	case it.Action != nil:
		if !it.Action.Enabled() {
			return
		}
		m.CloseMenus()
		it.Action.Trigger()
	case it.OnSelect != nil:
		m.CloseMenus()
		it.OnSelect(it.Data)
	}
	m.Refresh()
}
