package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusDerivation(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	breakStart := now.Add(3 * time.Hour)
	breakEnd := breakStart.Add(30 * time.Minute)
	clockOut := now.Add(8 * time.Hour)

	tests := []struct {
		name string
		att  Attendance
		want Status
	}{
		{"fresh clock in", Attendance{ClockIn: now}, StatusClockedIn},
		{"on break", Attendance{ClockIn: now, BreakStart: &breakStart}, StatusOnBreak},
		{"back from break", Attendance{ClockIn: now, BreakStart: &breakStart, BreakEnd: &breakEnd}, StatusBackFromBreak},
		{"clocked out", Attendance{ClockIn: now, BreakStart: &breakStart, BreakEnd: &breakEnd, ClockOut: &clockOut}, StatusClockedOut},
		{"clocked out without break", Attendance{ClockIn: now, ClockOut: &clockOut}, StatusClockedOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.att.Status())
			assert.Equal(t, tt.want == StatusClockedOut, tt.att.Terminal())
		})
	}
}
