package display

import (
	"fmt"
	"time"
)

// FormatDuration returns a human-readable duration: "1h 2m 3s", "2m 5s",
// "5.000s", or "500ms" depending on magnitude.
func FormatDuration(d time.Duration) string {
	total := int64(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	millis := d.Milliseconds() % 1000

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	case seconds > 0:
		return fmt.Sprintf("%d.%03ds", seconds, millis)
	default:
		return fmt.Sprintf("%dms", millis)
	}
}
