package duration

import (
	"fmt"
	"math"
	"strings"
)

// MinSummarySeconds is the shortest session that gets a summary line.
const MinSummarySeconds = 5.0

// FewSeconds is the phrase used for anything under one minute.
const FewSeconds = "few seconds"

// maxSeconds caps absurd inputs so the int64 conversion stays defined.
const maxSeconds = 1 << 62

// Format renders elapsed seconds as a phrase like "1 hour 12 minutes".
// Seconds within the minute are dropped, so 80 seconds is "1 minute".
// Negative and NaN input is treated as zero.
func Format(seconds float64) string {
	total := truncate(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60

	if hours == 0 && minutes == 0 {
		return FewSeconds
	}

	parts := make([]string, 0, 2)
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, plural(minutes, "minute"))
	}
	return strings.Join(parts, " ")
}

// Summary applies the minimum-duration gate. The bool is false when the
// session was too short to report.
func Summary(elapsed float64) (string, bool) {
	if elapsed < MinSummarySeconds {
		return "", false
	}
	return Format(elapsed), true
}

func truncate(seconds float64) int64 {
	switch {
	case math.IsNaN(seconds), seconds <= 0:
		return 0
	case seconds >= maxSeconds:
		return maxSeconds
	}
	return int64(math.Floor(seconds))
}

func plural(n int64, unit string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss", n, unit)
	}
	return fmt.Sprintf("%d %s", n, unit)
}
