package model

import (
	"vboxmanager/internal/dialogs/cloudprofile"
)

// CloudRow is one line of the flattened provider/profile tree.
type CloudRow struct {
	Provider *cloudprofile.Provider
	// Profile is nil for provider rows.
	Profile *cloudprofile.Profile
}

// CloudRows flattens the tree of m, providers first, each followed by its
// profiles.
func CloudRows(m *cloudprofile.Manager) []CloudRow {
	if m == nil {
		return nil
	}
	var rows []CloudRow
	for _, p := range m.Providers() {
		rows = append(rows, CloudRow{Provider: p})
		for _, prof := range p.Profiles {
			rows = append(rows, CloudRow{Provider: p, Profile: prof})
		}
	}
	return rows
}

// SnapshotRows lists the rows of the snapshot pane: the current snapshot,
// when there is one, followed by the current state.
func SnapshotRows(snapshot string) []string {
	if snapshot == "" {
		return []string{"Current State"}
	}
	return []string{snapshot, "Current State"}
}

// ClampPaneCursor keeps the pane cursor inside n rows.
func (m *Model) ClampPaneCursor(n int) {
	m.PaneCursor = min(max(m.PaneCursor, 0), max(n-1, 0))
}
