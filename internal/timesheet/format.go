package timesheet

import (
	"fmt"
	"math"
	"time"
)

// FormatHours renders fractional hours as "3h 20m", "45m" or "2h".
// Minutes are rounded; a result of 60 minutes carries into the hour, so
// 1.999 hours prints as "2h", never "1h 60m".
func FormatHours(hours float64) string {
	h := int(math.Floor(hours))
	m := int(math.Round((hours - float64(h)) * 60))
	if m >= 60 {
		return FormatHours(float64(h + 1))
	}
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatElapsed renders a running duration as hh:mm:ss.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
