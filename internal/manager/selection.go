package manager

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"vboxmanager/internal/vmitem"
)

// SelectionKind classifies what the chooser has selected.
type SelectionKind int

const (
	SelectionGlobal SelectionKind = iota
	SelectionSingleGroup
	SelectionSingleMachine
	SelectionMultipleMachines
)

func (k SelectionKind) String() string {
	switch k {
	case SelectionGlobal:
		return "Global"
	case SelectionSingleGroup:
		return "SingleGroup"
	case SelectionSingleMachine:
		return "SingleMachine"
	default:
		return "MultipleMachines"
	}
}

// Selection is the chooser selection. A group selection carries the items
// inside the group.
type Selection struct {
	Global bool
	// Group is the full name of the selected group, like "/Work", or
	// "/provider/profile" for a cloud profile.
	Group      string
	CloudGroup bool
	Items      []vmitem.Item
}

// Kind derives the selection kind. No selection counts as an empty
// machine selection.
func (s Selection) Kind() SelectionKind {
	switch {
	case s.Global:
		return SelectionGlobal
	case s.Group != "":
		return SelectionSingleGroup
	case len(s.Items) == 1:
		return SelectionSingleMachine
	default:
		return SelectionMultipleMachines
	}
}

// retain drops items that are no longer listed.
func (s Selection) retain(items []vmitem.Item) Selection {
	s.Items = slices.DeleteFunc(slices.Clone(s.Items), func(it vmitem.Item) bool {
		return !slices.Contains(items, it)
	})
	return s
}

// GlobalSelection selects the global tools row.
func GlobalSelection() Selection { return Selection{Global: true} }

// MachineSelection selects the rows of the given machines.
func (c *Controller) MachineSelection(ids ...uuid.UUID) Selection {
	var sel Selection
	for _, id := range ids {
		if it := c.Item(id); it != nil {
			sel.Items = append(sel.Items, it)
		}
	}
	return sel
}

// GroupSelection selects a group with every machine inside it, nested
// groups included. A "/provider/profile" name selects a cloud profile
// when such a profile is listed.
func (c *Controller) GroupSelection(group string) Selection {
	sel := Selection{Group: group}
	for _, it := range c.items {
		if provider, profile, ok := c.CloudProfile(it); ok {
			if group == "/"+provider+"/"+profile {
				sel.CloudGroup = true
				sel.Items = append(sel.Items, it)
			}
			continue
		}
		if l, ok := it.(*vmitem.Local); ok && inGroup(l.Groups(), group) {
			sel.Items = append(sel.Items, it)
		}
	}
	return sel
}

func inGroup(groups []string, group string) bool {
	for _, g := range groups {
		if g == group || group == "/" || strings.HasPrefix(g, group+"/") {
			return true
		}
	}
	return false
}
