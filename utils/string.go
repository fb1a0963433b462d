package utils

import (
	"fmt"
	"strings"
)

// FormatHours renders decimal hours with two places, e.g. 4.5 -> "4.50".
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.2f", hours)
}

// ContainsFold reports whether substr is within s, ignoring case.
// An empty substr always matches.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func OrDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
