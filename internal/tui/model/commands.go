package model

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"vboxmanager/internal/uiloop"
	"vboxmanager/pkg/logging"
)

// ListenForQueueCmd waits for the next closure posted to q. The handler
// runs it and listens again, which makes the Bubble Tea loop the UI loop.
func ListenForQueueCmd(q *uiloop.Queue) tea.Cmd {
	if q == nil {
		return nil
	}
	return func() tea.Msg {
		fn, ok := q.Next()
		if !ok {
			return channelClosedMsg{}
		}
		return QueueMsg{Fn: fn}
	}
}

// ListenForLogEntriesCmd waits for the next log entry.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return channelClosedMsg{}
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// ListenForExtraDataCmd waits for the next extra-data change signal.
func ListenForExtraDataCmd(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return channelClosedMsg{}
		}
		return ExtraDataChangedMsg{}
	}
}

// ClearStatusBarAfter clears the status bar once d has passed.
func ClearStatusBarAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return ClearStatusBarMsg{} })
}
