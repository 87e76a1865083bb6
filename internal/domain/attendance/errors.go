package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrConcurrencyConflict = errors.New("concurrent clock action detected, please retry")
	ErrUnauthorized        = errors.New("unauthorized to access this attendance record")
)
