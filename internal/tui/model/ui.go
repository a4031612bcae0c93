package model

import (
	"vboxmanager/internal/manager"
	"vboxmanager/pkg/logging"
)

const uiSubsystem = "TUI"

var _ manager.UI = (*Model)(nil)

// Confirm queues a yes/no message box.
func (m *Model) Confirm(p manager.Prompt, answer func(ok bool)) {
	m.pushOverlay(&Overlay{Kind: OverlayConfirm, Prompt: p, answer: answer})
}

// AskText queues a line input box.
func (m *Model) AskText(p manager.Prompt, initial string, accept func(string)) {
	m.pushOverlay(&Overlay{Kind: OverlayText, Prompt: p, Initial: initial, accept: accept})
}

// Open shows what the controller asks for. Standalone dialogs replace the
// main view; wizards and settings windows are shown as message boxes whose
// dismissal counts as the window closing.
func (m *Model) Open(r manager.Request) {
	logging.Debug(uiSubsystem, "Open %s", r.Kind)
	switch r.Kind {
	case manager.RequestQuit:
		m.QuitRequested = true
		m.CurrentAppMode = ModeQuitting
	case manager.RequestShowDialog:
		m.Dialog = r.Dialog
		m.Menus = nil
	case manager.RequestCloseDialog:
		if m.Dialog == r.Dialog {
			m.Dialog = 0
		}
	default:
		m.pushOverlay(&Overlay{Kind: OverlayRequest, Request: r})
	}
	m.Dirty = true
}

// Notify shows errors as message boxes and other notices in the status
// bar.
func (m *Model) Notify(n manager.Notice) {
	if n.Err == nil {
		m.SetStatus(n.Title, StatusInfo)
		return
	}
	m.pushOverlay(&Overlay{Kind: OverlayNotice, Notice: n})
}

// SetStatus replaces the status bar message.
func (m *Model) SetStatus(msg string, t StatusType) {
	m.StatusBarMessage = msg
	m.StatusBarType = t
	m.Dirty = true
}

// TopOverlay returns the message box holding the keyboard, or nil.
func (m *Model) TopOverlay() *Overlay {
	if len(m.Overlays) == 0 {
		return nil
	}
	return m.Overlays[0]
}

func (m *Model) pushOverlay(o *Overlay) {
	m.Overlays = append(m.Overlays, o)
	if len(m.Overlays) == 1 {
		m.activate(o)
	}
	m.Dirty = true
}

func (m *Model) activate(o *Overlay) {
	if o.Kind != OverlayText {
		m.TextInput.Blur()
		return
	}
	m.TextInput.SetValue(o.Initial)
	m.TextInput.CursorEnd()
	m.TextInput.Focus()
}

// popOverlay removes the top message box before its callback runs, so a
// callback may queue the next one.
func (m *Model) popOverlay() *Overlay {
	o := m.TopOverlay()
	if o == nil {
		return nil
	}
	m.Overlays = m.Overlays[1:]
	if next := m.TopOverlay(); next != nil {
		m.activate(next)
	} else {
		m.TextInput.Blur()
	}
	m.Dirty = true
	return o
}

// Answer closes the top message box with ok. Confirmations get ok as
// their answer, line inputs the current text when ok, request boxes call
// their Done hook.
func (m *Model) Answer(ok bool) {
	o := m.popOverlay()
	if o == nil {
		return
	}
	switch o.Kind {
	case OverlayConfirm:
		if o.answer != nil {
			o.answer(ok)
		}
	case OverlayText:
		if ok && o.accept != nil {
			o.accept(m.TextInput.Value())
		}
	case OverlayRequest:
		if o.Request.Done != nil {
			o.Request.Done()
		}
	}
	m.Refresh()
}
