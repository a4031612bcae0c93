package manager

import (
	"context"
	"path"
	"slices"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"vboxmanager/internal/actionpool"
	"vboxmanager/internal/progress"
	"vboxmanager/internal/vmitem"
	"vboxmanager/pkg/logging"
)

const rootGroup = "/"

func groupParent(group string) string {
	if group == rootGroup || group == "" {
		return rootGroup
	}
	return path.Dir(group)
}

func groupBase(group string) string {
	return path.Base(group)
}

func joinGroup(parent, name string) string {
	return path.Join(rootGroup, parent, name)
}

// replaceGroupPrefix moves g from below old to below repl. Groups outside
// old are returned as they are.
func replaceGroupPrefix(g, old, repl string) string {
	switch {
	case g == old:
		return repl
	case strings.HasPrefix(g, old+"/"):
		return joinGroup(repl, strings.TrimPrefix(g, old+"/"))
	}
	return g
}

// possibleGroups lists every group known to the local VMs, parents
// included, sorted.
func (c *Controller) possibleGroups() []string {
	set := map[string]struct{}{rootGroup: {}}
	for _, it := range vmitem.Locals(c.items) {
		for _, g := range it.Groups() {
			for ; g != rootGroup; g = groupParent(g) {
				set[g] = struct{}{}
			}
		}
	}
	groups := make([]string, 0, len(set))
	for g := range set {
		groups = append(groups, g)
	}
	slices.Sort(groups)
	return groups
}

func groupLabel(group string) string {
	if group == rootGroup {
		return "[Root]"
	}
	return strings.TrimPrefix(group, rootGroup)
}

// prepareMoveToGroupMenu lists the groups the selection can move to. The
// selected group itself and groups below it are left out.
func (c *Controller) prepareMoveToGroupMenu(idx actionpool.Index, m *actionpool.Menu) {
	var groups []string
	for _, g := range c.possibleGroups() {
		if c.isSingleGroupSelected() {
			own := c.selection.Group
			if g == own || strings.HasPrefix(g, own+"/") || g == groupParent(own) {
				continue
			}
		}
		groups = append(groups, g)
	}
	if idx == actionpool.MenuMachineMoveToGroup && len(groups) > 0 {
		m.AddSeparator()
	}
	for _, g := range groups {
		m.AddDynamic(groupLabel(g), g, c.MoveToGroup)
	}
}

// MoveToGroup moves the selection into target. Selected machines are
// placed directly in target; a selected group is moved below target along
// with its subgroups.
func (c *Controller) MoveToGroup(target string) {
	if target == "" {
		return
	}
	target = joinGroup(target, "")
	changes := map[uuid.UUID][]string{}
	if c.isSingleLocalGroupSelected() {
		own := c.selection.Group
		dest := joinGroup(target, groupBase(own))
		for _, it := range vmitem.Locals(c.selection.Items) {
			changes[it.ID()] = mapGroups(it.Groups(), func(g string) string { return replaceGroupPrefix(g, own, dest) })
		}
	} else {
		for _, it := range vmitem.Locals(c.selection.Items) {
			changes[it.ID()] = []string{target}
		}
	}
	c.setGroups("Moving to group "+groupLabel(target), changes)
}

// MoveToNewGroup asks for a group name and moves the selected machines
// into it.
func (c *Controller) MoveToNewGroup() {
	c.ui.AskText(Prompt{Title: "New Group", Message: "Group name:"}, "New group", func(name string) {
		name = strings.Trim(name, "/ ")
		if name == "" {
			return
		}
		c.MoveToGroup(joinGroup(rootGroup, name))
	})
}

// RenameGroup asks for a new name of the selected group.
func (c *Controller) RenameGroup() {
	if !c.isSingleLocalGroupSelected() {
		return
	}
	own := c.selection.Group
	c.ui.AskText(Prompt{Title: "Rename Group", Message: "Group name:"}, groupBase(own), func(name string) {
		name = strings.Trim(name, "/ ")
		if name == "" || name == groupBase(own) {
			return
		}
		dest := joinGroup(groupParent(own), name)
		changes := map[uuid.UUID][]string{}
		for _, it := range vmitem.Locals(c.selection.Items) {
			changes[it.ID()] = mapGroups(it.Groups(), func(g string) string { return replaceGroupPrefix(g, own, dest) })
		}
		c.selection.Group = dest
		c.setGroups("Renaming group "+groupLabel(own), changes)
	})
}

// UngroupGroup removes the selected group, lifting its machines and
// subgroups into the parent.
func (c *Controller) UngroupGroup() {
	if !c.isSingleLocalGroupSelected() {
		return
	}
	own := c.selection.Group
	parent := groupParent(own)
	changes := map[uuid.UUID][]string{}
	for _, it := range vmitem.Locals(c.selection.Items) {
		changes[it.ID()] = mapGroups(it.Groups(), func(g string) string {
			switch {
			case g == own:
				return parent
			case strings.HasPrefix(g, own+"/"):
				return joinGroup(parent, strings.TrimPrefix(g, own+"/"))
			}
			return g
		})
	}
	c.setGroups("Removing group "+groupLabel(own), changes)
}

func mapGroups(groups []string, fn func(string) string) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		if mapped := fn(g); !slices.Contains(out, mapped) {
			out = append(out, mapped)
		}
	}
	return out
}

// setGroups saves group changes in the background. Group-changing actions
// stay disabled until the save finishes.
func (c *Controller) setGroups(title string, changes map[uuid.UUID][]string) {
	if len(changes) == 0 {
		return
	}
	c.groupSaves++
	c.update()
	c.runTask(title, func(ctx context.Context, report progress.Reporter) error {
		g, ctx := errgroup.WithContext(ctx)
		for id, groups := range changes {
			g.Go(func() error { return c.svc.SetGroups(ctx, id, groups) })
		}
		return g.Wait()
	}, func(error) {
		c.groupSaves--
		for id := range changes {
			if it := c.Item(id); it != nil {
				it.Recache(c.ctx)
			}
		}
		if c.isSingleGroupSelected() && !c.selection.CloudGroup {
			c.selection = c.GroupSelection(c.selection.Group)
		}
	})
}

// SortItems orders the local rows by name. Cloud rows keep their place
// after the local ones.
func (c *Controller) SortItems() {
	locals := make([]vmitem.Item, 0, len(c.items))
	var rest []vmitem.Item
	for _, it := range c.items {
		if it.Kind() == vmitem.KindLocal {
			locals = append(locals, it)
		} else {
			rest = append(rest, it)
		}
	}
	slices.SortStableFunc(locals, func(a, b vmitem.Item) int {
		return strings.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name()))
	})
	c.items = append(locals, rest...)
	logging.Debug(subsystem, "Sorted %d machines", len(locals))
	c.notify()
}
