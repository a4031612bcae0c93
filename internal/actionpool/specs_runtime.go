package actionpool

import (
	"vboxmanager/internal/defs"
)

func runtimeSpecs() []Spec {
	view := func(s Spec, m defs.RuntimeMenuViewActionType, seq string) Spec {
		s.Allowed = allowedInView(m)
		if seq != "" {
			s.Default = onRuntime(seq)
		}
		return s
	}

	viewMenu := menu(MenuView, "View")
	viewMenu.Allowed = allowedInMenuBar(defs.MenuTypeView)

	return []Spec{
		viewMenu,
		view(toggle(ViewFullscreen, "Full-screen Mode", "fullscreen", "FullscreenMode"), defs.RuntimeMenuViewActionTypeFullscreen, "alt+ctrl+f"),
		view(toggle(ViewSeamless, "Seamless Mode", "seamless", "SeamlessMode"), defs.RuntimeMenuViewActionTypeSeamless, "alt+ctrl+l"),
		view(toggle(ViewScale, "Scaled Mode", "scale", "ScaleMode"), defs.RuntimeMenuViewActionTypeScale, "alt+ctrl+c"),
		view(simple(ViewMinimizeWindow, "Minimize Window", "minimize", "WindowMinimize"), defs.RuntimeMenuViewActionTypeMinimizeWindow, "alt+ctrl+m"),
		view(simple(ViewAdjustWindow, "Adjust Window Size", "adjust_win_size", "WindowAdjust"), defs.RuntimeMenuViewActionTypeAdjustWindow, "alt+ctrl+a"),
		view(toggle(ViewGuestAutoresize, "Auto-resize Guest Display", "auto_resize", "GuestAutoresize"), defs.RuntimeMenuViewActionTypeGuestAutoresize, "alt+ctrl+g"),
		view(simple(ViewTakeScreenshot, "Take Screenshot...", "screenshot_take", "TakeScreenshot"), defs.RuntimeMenuViewActionTypeTakeScreenshot, "alt+ctrl+e"),
		view(toggle(ViewVRDEServer, "Remote Display", "vrdp", "VRDPServer"), defs.RuntimeMenuViewActionTypeVRDEServer, ""),
	}
}

func (p *Pool) prepareRuntimeMenus() {
	p.handlers[MenuView] = layoutHandler(
		[]Index{ViewFullscreen, ViewSeamless, ViewScale},
		[]Index{ViewMinimizeWindow, ViewAdjustWindow, ViewGuestAutoresize},
		[]Index{ViewTakeScreenshot, ViewVRDEServer},
	)
}
