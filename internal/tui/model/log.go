package model

import (
	"fmt"

	"vboxmanager/pkg/logging"
)

// AddRawLineToActivityLog adds a pre-formatted line to the activity log,
// keeping at most MaxActivityLogLines.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}

// FormatLogEntry renders a log entry as one activity log line.
func FormatLogEntry(e logging.LogEntry) string {
	line := fmt.Sprintf("%s [%s] [%s] %s", e.Timestamp.Format("15:04:05"), e.Level, e.Subsystem, e.Message)
	for _, a := range e.Attributes {
		if a.Key == "vm" {
			line += " (" + a.Value.String() + ")"
		}
	}
	if e.Err != nil {
		line += ": " + e.Err.Error()
	}
	return line
}
