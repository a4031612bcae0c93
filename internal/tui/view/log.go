package view

import (
	"strings"

	"vboxmanager/internal/tui/design"
)

// PrepareLogContent colors activity log lines by their level marker.
func PrepareLogContent(lines []string) string {
	styled := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case strings.Contains(line, "[ERROR]"):
			styled[i] = design.LogErrorStyle.Render(line)
		case strings.Contains(line, "[WARN]"):
			styled[i] = design.LogWarnStyle.Render(line)
		case strings.Contains(line, "[DEBUG]"):
			styled[i] = design.LogDebugStyle.Render(line)
		default:
			styled[i] = design.LogInfoStyle.Render(line)
		}
	}
	return strings.Join(styled, "\n")
}
