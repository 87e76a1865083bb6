package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for the attendance ledger.
// Exactly one row exists per (employee, date); creation happens only through
// the first clock-in of a day.
type AttendanceRepository interface {
	// Create inserts the day's record. The unique (employee_id, date)
	// constraint makes a racing double-insert fail instead of duplicating.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns the record for the given day, or nil when
	// the employee has not clocked in yet (nil is a valid state, not an error).
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// GetByEmployeeAndDateForUpdate is GetByEmployeeAndDate with a row lock.
	// Must run inside a transaction; concurrent clock actions for the same day
	// serialize on this lock.
	GetByEmployeeAndDateForUpdate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update persists the record's optional timestamps and derived status.
	Update(ctx context.Context, att Attendance) error

	// ListRecent returns the employee's most recent records, date descending.
	ListRecent(ctx context.Context, employeeID string, limit int) ([]Attendance, error)

	// ListByEmployeePeriod returns all records with from <= date <= to.
	ListByEmployeePeriod(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// List retrieves records with filters and pagination (admin view).
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
}
