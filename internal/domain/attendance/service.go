package attendance

import (
	"context"
)

// AttendanceService defines business logic for the clock state machine.
//
// Only two operations exist; the service infers which of the four transitions
// applies from the current status, so a stale client can never force an
// invalid transition. An action that does not apply is a no-op returning the
// current record unchanged.
type AttendanceService interface {
	// ClockIn starts the day (no record yet) or ends a break (ON_BREAK).
	ClockIn(ctx context.Context) (AttendanceResponse, error)

	// ClockOut starts a break (CLOCKED_IN) or closes the day (BACK_FROM_BREAK).
	ClockOut(ctx context.Context) (AttendanceResponse, error)

	// GetToday returns today's record, or nil when none exists.
	GetToday(ctx context.Context) (*AttendanceResponse, error)

	// GetHistory returns the authenticated employee's most recent records.
	GetHistory(ctx context.Context, filter HistoryFilter) ([]AttendanceResponse, error)

	// ListAttendance retrieves records with filters (admin).
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
