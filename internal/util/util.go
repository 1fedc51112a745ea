// Package util holds small formatting helpers for operator-facing output.
package util

import (
	"fmt"
	"time"
)

// FormatBytes renders a size with binary units, e.g. "1.5 KB".
func FormatBytes(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%d B", size)
	}

	value := float64(size)
	for _, unit := range []string{"KB", "MB", "GB", "TB"} {
		value /= 1024
		if value < 1024 || unit == "TB" {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
	}

	return fmt.Sprintf("%d B", size)
}

// FormatExpiry renders a URL lifetime given in seconds, e.g. "1h0m" or "45s".
func FormatExpiry(seconds int) string {
	d := time.Duration(seconds) * time.Second

	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", seconds)
	case d < time.Hour:
		return fmt.Sprintf("%dm%ds", seconds/60, seconds%60)
	default:
		return fmt.Sprintf("%dh%dm", seconds/3600, (seconds%3600)/60)
	}
}

// Plural picks the singular or plural noun for n, e.g. "1 client" or "3 clients".
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}

	return fmt.Sprintf("%d %s", n, plural)
}
