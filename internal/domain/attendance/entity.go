package attendance

import (
	"time"
)

// Status of a day's attendance record. A missing record is the implicit
// initial state; a record always starts at CLOCKED_IN.
type Status string

const (
	StatusClockedIn     Status = "CLOCKED_IN"
	StatusOnBreak       Status = "ON_BREAK"
	StatusBackFromBreak Status = "BACK_FROM_BREAK"
	StatusClockedOut    Status = "CLOCKED_OUT"
)

// Attendance is one employee's ledger entry for one calendar day.
// ClockIn is set at creation and never rewritten; the optional timestamps
// are each set at most once, in order: break start, break end, clock out.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ClockIn    time.Time
	BreakStart *time.Time
	BreakEnd   *time.Time
	ClockOut   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

// Status derives the state from which timestamps are populated. The persisted
// status column is written from this, so the two cannot drift apart.
func (a Attendance) Status() Status {
	switch {
	case a.ClockOut != nil:
		return StatusClockedOut
	case a.BreakEnd != nil:
		return StatusBackFromBreak
	case a.BreakStart != nil:
		return StatusOnBreak
	default:
		return StatusClockedIn
	}
}

// Terminal reports whether the day is closed for further clock actions.
func (a Attendance) Terminal() bool {
	return a.ClockOut != nil
}
