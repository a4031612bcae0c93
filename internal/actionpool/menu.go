package actionpool

// Item is one entry of a menu: an action, a separator or a dynamic entry
// built from data at prepare time.
type Item struct {
	Action    *Action
	Separator bool

	// Label and Data describe dynamic entries, which trigger OnSelect.
	Label    string
	Data     string
	OnSelect func(data string)
}

// IsSubmenu reports whether the item opens another menu.
func (it Item) IsSubmenu() bool {
	return it.Action != nil && it.Action.Kind() == KindMenu
}

// Menu is the ordered content of a menu action. Menus hold non-owning
// references; the pool owns every action.
type Menu struct {
	index Index
	items []Item

	// ShowToolTip shows item tooltips on hover.
	ShowToolTip bool

	consumable bool
	consumed   bool
	absorbed   []Item
}

func (m *Menu) Index() Index { return m.index }

// Items returns the entries currently in the menu.
func (m *Menu) Items() []Item { return m.items }

// Consumable reports whether the platform menu bar absorbs the items.
func (m *Menu) Consumable() bool { return m.consumable }

// Consumed reports whether the items were absorbed already.
func (m *Menu) Consumed() bool { return m.consumed }

// Absorbed returns the entries handed to the platform menu bar.
func (m *Menu) Absorbed() []Item { return m.absorbed }

// Clear empties the menu. A consumed menu stays as it is.
func (m *Menu) Clear() {
	if m.consumed {
		return
	}
	m.items = nil
}

// Empty reports whether the menu has no entries.
func (m *Menu) Empty() bool { return len(m.items) == 0 }

// AddSeparator appends a separator unless the menu is consumed, empty or
// already ends with one.
func (m *Menu) AddSeparator() {
	if m.consumed || len(m.items) == 0 || m.items[len(m.items)-1].Separator {
		return
	}
	m.items = append(m.items, Item{Separator: true})
}

// AddDynamic appends a data-driven entry.
func (m *Menu) AddDynamic(label, data string, onSelect func(string)) {
	m.items = append(m.items, Item{Label: label, Data: data, OnSelect: onSelect})
}

// AddAction appends a regardless of restrictions.
func (m *Menu) AddAction(a *Action) {
	m.items = append(m.items, Item{Action: a})
}

// Actions lists the actions of the menu in order, skipping separators and
// dynamic entries.
func (m *Menu) Actions() []*Action {
	var out []*Action
	for _, it := range m.items {
		if it.Action != nil {
			out = append(out, it.Action)
		}
	}
	return out
}

// consume moves the items to the platform menu bar.
func (m *Menu) consume() {
	if !m.consumable || m.consumed {
		return
	}
	m.absorbed = m.items
	m.items = nil
	m.consumed = true
}

func (m *Menu) trimSeparator() {
	if n := len(m.items); n > 0 && m.items[n-1].Separator {
		m.items = m.items[:n-1]
	}
}
