package model

import (
	"slices"
	"strings"

	"vboxmanager/internal/manager"
	"vboxmanager/internal/vmitem"
)

// groupPath splits "/Work/Nested" into its components. The root group has
// none.
func groupPath(group string) []string {
	group = strings.Trim(group, "/")
	if group == "" {
		return nil
	}
	return strings.Split(group, "/")
}

func primaryGroup(l *vmitem.Local) string {
	if gs := l.Groups(); len(gs) > 0 && gs[0] != "" {
		return gs[0]
	}
	return "/"
}

// BuildRows lays out the chooser: the global tools row, local machines
// under their group headers, then one header per cloud profile with its
// machines. Machines keep their relative order inside a group.
func BuildRows(c *manager.Controller) []Row {
	rows := []Row{{Kind: RowGlobal, Label: "Tools"}}

	type localRow struct {
		item vmitem.Item
		path []string
	}
	var locals []localRow
	var clouds []vmitem.Item
	for _, it := range c.Items() {
		if l, ok := it.(*vmitem.Local); ok {
			locals = append(locals, localRow{item: it, path: groupPath(primaryGroup(l))})
			continue
		}
		clouds = append(clouds, it)
	}
	slices.SortStableFunc(locals, func(a, b localRow) int { return slices.Compare(a.path, b.path) })

	emitted := make(map[string]bool)
	for _, lr := range locals {
		for depth := range lr.path {
			group := "/" + strings.Join(lr.path[:depth+1], "/")
			if emitted[group] {
				continue
			}
			emitted[group] = true
			rows = append(rows, Row{Kind: RowGroup, Depth: depth, Group: group, Label: lr.path[depth]})
		}
		rows = append(rows, Row{Kind: RowMachine, Depth: len(lr.path), Item: lr.item, Label: lr.item.Name()})
	}

	for _, it := range clouds {
		provider, profile, ok := c.CloudProfile(it)
		if !ok {
			continue
		}
		group := "/" + provider + "/" + profile
		if !emitted[group] {
			emitted[group] = true
			rows = append(rows, Row{Kind: RowGroup, Group: group, Cloud: true, Label: provider + ": " + profile})
		}
		label := it.Name()
		if it.Kind() == vmitem.KindCloudFake {
			label = it.StateName()
		}
		rows = append(rows, Row{Kind: RowMachine, Depth: 1, Cloud: true, Item: it, Label: label})
	}
	return rows
}

// Refresh rebuilds the chooser rows from the controller, keeps the cursor
// in range and drops marks of rows that went away. When the selected
// machines all disappeared the row under the cursor becomes the
// selection.
func (m *Model) Refresh() {
	if m.Manager == nil {
		return
	}
	var current vmitem.Item
	if m.Cursor >= 0 && m.Cursor < len(m.Rows) {
		current = m.Rows[m.Cursor].Item
	}
	m.Rows = BuildRows(m.Manager)

	if current != nil {
		if i := slices.IndexFunc(m.Rows, func(r Row) bool { return r.Item == current }); i >= 0 {
			m.Cursor = i
		}
	}
	m.Cursor = min(max(m.Cursor, 0), len(m.Rows)-1)

	for it := range m.Marked {
		if !slices.ContainsFunc(m.Rows, func(r Row) bool { return r.Item == it }) {
			delete(m.Marked, it)
		}
	}

	sel := m.Manager.Selection()
	if sel.Kind() == manager.SelectionMultipleMachines && len(sel.Items) == 0 {
		m.SyncSelection()
	}
	m.Dirty = true
}

// CurrentRow returns the row under the cursor.
func (m *Model) CurrentRow() (Row, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Rows) {
		return Row{}, false
	}
	return m.Rows[m.Cursor], true
}

// Selection derives the chooser selection: marked machines when there are
// any, else the row under the cursor.
func (m *Model) Selection() manager.Selection {
	row, ok := m.CurrentRow()
	if !ok {
		return manager.GlobalSelection()
	}
	switch row.Kind {
	case RowGlobal:
		return manager.GlobalSelection()
	case RowGroup:
		return m.Manager.GroupSelection(row.Group)
	}
	var sel manager.Selection
	for _, r := range m.Rows {
		if r.Item != nil && m.Marked[r.Item] {
			sel.Items = append(sel.Items, r.Item)
		}
	}
	if len(sel.Items) == 0 {
		sel.Items = []vmitem.Item{row.Item}
	}
	return sel
}

// SyncSelection pushes the chooser selection to the controller.
func (m *Model) SyncSelection() {
	if m.Manager == nil {
		return
	}
	m.Manager.SetSelection(m.Selection())
}

// MoveCursor moves the chooser cursor by delta rows and selects the new
// row.
func (m *Model) MoveCursor(delta int) {
	next := min(max(m.Cursor+delta, 0), len(m.Rows)-1)
	if next == m.Cursor {
		return
	}
	m.Cursor = next
	m.SyncSelection()
}

// ToggleMark adds the machine under the cursor to the multi-selection or
// takes it out.
func (m *Model) ToggleMark() {
	row, ok := m.CurrentRow()
	if !ok || row.Kind != RowMachine {
		return
	}
	if m.Marked[row.Item] {
		delete(m.Marked, row.Item)
	} else {
		m.Marked[row.Item] = true
	}
	m.SyncSelection()
}

// ClearMarks drops the multi-selection.
func (m *Model) ClearMarks() {
	if len(m.Marked) == 0 {
		return
	}
	clear(m.Marked)
	m.SyncSelection()
}
