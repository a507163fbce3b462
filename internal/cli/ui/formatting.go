package ui

import (
	"fmt"
	"time"
)

// FormatStatus returns the icon, colour and label of a scenario or run status.
func FormatStatus(status string) (icon, color, text string) {
	switch status {
	case "passed":
		return IconCheckmark, ColorGreen, "passed"
	case "failed":
		return IconCross, ColorRed, "failed"
	case "running":
		return IconPlay, ColorCyan, "running"
	default:
		return IconPlay, ColorYellow, status
	}
}

func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(10 * time.Millisecond).String()
}
