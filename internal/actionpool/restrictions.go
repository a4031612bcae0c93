package actionpool

import (
	"vboxmanager/internal/defs"
	"vboxmanager/internal/extradata"
)

// Level is a restriction layer. An action is allowed only when no level
// restricts it.
type Level int

const (
	LevelBase Level = iota
	LevelRuntime
	LevelSession
	levelCount
)

type target int

const (
	targetMenuBar target = iota
	targetApplication
	targetWindow
	targetHelp
	targetView
	targetCount
)

// menuOf maps a restriction target to the menu it invalidates.
var menuOf = [targetCount]Index{
	targetApplication: MenuApplication,
	targetWindow:      MenuWindow,
	targetHelp:        MenuHelp,
	targetView:        MenuView,
}

type restrictions [targetCount][levelCount]int

func (p *Pool) allowedIn(t target, bit int) bool {
	for _, mask := range p.restrictions[t] {
		if mask&bit != 0 {
			return false
		}
	}
	return true
}

func (p *Pool) setRestriction(t target, level Level, mask int) {
	if level < 0 || level >= levelCount {
		return
	}
	p.restrictions[t][level] = mask
	if t == targetMenuBar {
		p.UpdateMenus()
		return
	}
	p.Invalidate(menuOf[t])
}

func allowedInMenuBar(m defs.MenuType) func(*Pool) bool {
	return func(p *Pool) bool { return p.IsAllowedInMenuBar(m) }
}

func allowedInApplication(m defs.MenuApplicationActionType) func(*Pool) bool {
	return func(p *Pool) bool { return p.IsAllowedInMenuApplication(m) }
}

func allowedInWindow(m defs.MenuWindowActionType) func(*Pool) bool {
	return func(p *Pool) bool { return p.IsAllowedInMenuWindow(m) }
}

func allowedInHelp(m defs.MenuHelpActionType) func(*Pool) bool {
	return func(p *Pool) bool { return p.IsAllowedInMenuHelp(m) }
}

func allowedInView(m defs.RuntimeMenuViewActionType) func(*Pool) bool {
	return func(p *Pool) bool { return p.IsAllowedInMenuView(m) }
}

func (p *Pool) IsAllowedInMenuBar(m defs.MenuType) bool {
	return p.allowedIn(targetMenuBar, int(m))
}

// SetRestrictionForMenuBar restricts top-level menus and rebuilds every
// menu.
func (p *Pool) SetRestrictionForMenuBar(level Level, m defs.MenuType) {
	p.setRestriction(targetMenuBar, level, int(m))
}

func (p *Pool) IsAllowedInMenuApplication(m defs.MenuApplicationActionType) bool {
	return p.allowedIn(targetApplication, int(m))
}

func (p *Pool) SetRestrictionForMenuApplication(level Level, m defs.MenuApplicationActionType) {
	p.setRestriction(targetApplication, level, int(m))
}

func (p *Pool) IsAllowedInMenuWindow(m defs.MenuWindowActionType) bool {
	return p.allowedIn(targetWindow, int(m))
}

func (p *Pool) SetRestrictionForMenuWindow(level Level, m defs.MenuWindowActionType) {
	p.setRestriction(targetWindow, level, int(m))
}

func (p *Pool) IsAllowedInMenuHelp(m defs.MenuHelpActionType) bool {
	return p.allowedIn(targetHelp, int(m))
}

func (p *Pool) SetRestrictionForMenuHelp(level Level, m defs.MenuHelpActionType) {
	p.setRestriction(targetHelp, level, int(m))
}

func (p *Pool) IsAllowedInMenuView(m defs.RuntimeMenuViewActionType) bool {
	return p.allowedIn(targetView, int(m))
}

func (p *Pool) SetRestrictionForMenuView(level Level, m defs.RuntimeMenuViewActionType) {
	p.setRestriction(targetView, level, int(m))
}

// RestrictionForMenuView returns the View mask of one level.
func (p *Pool) RestrictionForMenuView(level Level) defs.RuntimeMenuViewActionType {
	return defs.RuntimeMenuViewActionType(p.restrictions[targetView][level])
}

// LoadRestrictions reads the persisted restrictions into the session level.
func (p *Pool) LoadRestrictions(store *extradata.Store) {
	p.restrictions[targetMenuBar][LevelSession] = int(store.RestrictedMenuBar())
	p.SetRestrictionForMenuApplication(LevelSession, store.RestrictedApplicationMenu())
	p.SetRestrictionForMenuWindow(LevelSession, store.RestrictedWindowMenu())
	p.SetRestrictionForMenuHelp(LevelSession, store.RestrictedHelpMenu())
	p.SetRestrictionForMenuView(LevelSession, store.RestrictedViewMenu())
	p.UpdateMenus()
}

// SaveRestrictions persists the session level.
func (p *Pool) SaveRestrictions(store *extradata.Store) error {
	if err := store.SetRestrictedMenuBar(defs.MenuType(p.restrictions[targetMenuBar][LevelSession])); err != nil {
		return err
	}
	if err := store.SetRestrictedApplicationMenu(defs.MenuApplicationActionType(p.restrictions[targetApplication][LevelSession])); err != nil {
		return err
	}
	if err := store.SetRestrictedWindowMenu(defs.MenuWindowActionType(p.restrictions[targetWindow][LevelSession])); err != nil {
		return err
	}
	if err := store.SetRestrictedHelpMenu(defs.MenuHelpActionType(p.restrictions[targetHelp][LevelSession])); err != nil {
		return err
	}
	return store.SetRestrictedViewMenu(p.RestrictionForMenuView(LevelSession))
}
