package report

import (
	"math"
	"time"
)

const timeLayout = "15:04"

// ComputeDuration derives worked hours from a start/end time-of-day pair
// and a break, both on the same calendar day (overnight shifts are not
// handled). A positive manual override is authoritative and returned
// unchanged. Negative spans, and breaks longer than the worked span,
// clamp to zero rather than erroring. The result is rounded to two
// decimal places.
func ComputeDuration(start, end string, breakHours float64, manualOverride *float64) float64 {
	if manualOverride != nil && *manualOverride > 0 {
		return *manualOverride
	}
	if start == "" || end == "" {
		return 0
	}

	from, err := time.Parse(timeLayout, start)
	if err != nil {
		return 0
	}
	to, err := time.Parse(timeLayout, end)
	if err != nil {
		return 0
	}

	hours := to.Sub(from).Hours() - breakHours
	if hours < 0 {
		hours = 0
	}
	return round2(hours)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
