package model

import (
	"vboxmanager/pkg/logging"
)

// QueueMsg carries one closure posted to the UI loop queue.
type QueueMsg struct {
	Fn func()
}

// NewLogEntryMsg carries an entry from the logging TUI sink.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ExtraDataChangedMsg reports that another process rewrote the
// extra-data file and the store was reloaded.
type ExtraDataChangedMsg struct{}

// ClearStatusBarMsg clears the status bar message.
type ClearStatusBarMsg struct{}

// channelClosedMsg ends a listener whose channel was closed.
type channelClosedMsg struct{}
