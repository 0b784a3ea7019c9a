// Package util holds small formatting helpers for log lines and user messages.
package util

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders a size in binary units with at most one decimal, e.g. "5MB" or "1.5KB".
func FormatBytes(size int64) string {
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}

	return oneDecimal(value) + byteUnits[unit]
}

// FormatDuration renders an elapsed time at a precision that fits its magnitude:
// "850ms", "1.2s", "3m5s" or "2h15m".
func FormatDuration(elapsed time.Duration) string {
	switch {
	case elapsed < time.Second:
		return strconv.FormatInt(elapsed.Milliseconds(), 10) + "ms"
	case elapsed < time.Minute:
		return oneDecimal(elapsed.Seconds()) + "s"
	case elapsed < time.Hour:
		elapsed = elapsed.Round(time.Second)

		return fmt.Sprintf("%dm%ds", int(elapsed.Minutes()), int(elapsed.Seconds())%60)
	default:
		elapsed = elapsed.Round(time.Minute)

		return fmt.Sprintf("%dh%dm", int(elapsed.Hours()), int(elapsed.Minutes())%60)
	}
}

func oneDecimal(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
