package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestComputeDuration(t *testing.T) {
	tests := []struct {
		name       string
		start      string
		end        string
		breakHours float64
		manual     *float64
		expected   float64
	}{
		{
			name:       "full day with lunch break",
			start:      "08:00",
			end:        "17:00",
			breakHours: 1,
			expected:   8,
		},
		{
			name:       "break exceeds span clamps to zero",
			start:      "09:00",
			end:        "09:30",
			breakHours: 1,
			expected:   0,
		},
		{
			name:     "end before start clamps to zero",
			start:    "17:00",
			end:      "08:00",
			expected: 0,
		},
		{
			name:     "missing start",
			start:    "",
			end:      "17:00",
			expected: 0,
		},
		{
			name:     "missing end",
			start:    "08:00",
			end:      "",
			expected: 0,
		},
		{
			name:     "unparseable time treated as missing",
			start:    "8 o'clock",
			end:      "17:00",
			expected: 0,
		},
		{
			name:       "rounded to two decimals",
			start:      "08:00",
			end:        "08:50",
			breakHours: 0,
			expected:   0.83,
		},
		{
			name:       "manual override wins over computed hours",
			start:      "08:00",
			end:        "17:00",
			breakHours: 1,
			manual:     floatPtr(6.5),
			expected:   6.5,
		},
		{
			name:     "manual override wins over nonsensical times",
			start:    "banana",
			end:      "",
			manual:   floatPtr(3.25),
			expected: 3.25,
		},
		{
			name:       "zero manual override is ignored",
			start:      "08:00",
			end:        "12:00",
			breakHours: 0,
			manual:     floatPtr(0),
			expected:   4,
		},
		{
			name:       "negative manual override is ignored",
			start:      "08:00",
			end:        "12:00",
			breakHours: 0,
			manual:     floatPtr(-2),
			expected:   4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDuration(tt.start, tt.end, tt.breakHours, tt.manual)
			assert.Equal(t, tt.expected, got)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestComputeDuration_ManualOverrideReturnedUnchanged(t *testing.T) {
	// The override is the authoritative value, not re-derived or rounded.
	got := ComputeDuration("08:00", "17:00", 1, floatPtr(7.125))
	assert.Equal(t, 7.125, got)
}
