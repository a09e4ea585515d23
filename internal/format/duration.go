package format

import (
	"strconv"
	"time"
)

// FormatDuration renders a duration for display: microseconds below one
// millisecond, milliseconds below one second, Go's default form otherwise.
// Short durations dominate here, so the sub-second forms come first.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return strconv.FormatInt(d.Microseconds(), 10) + "µs"
	case d < time.Second:
		return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
	default:
		return d.String()
	}
}
