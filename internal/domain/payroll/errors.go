package payroll

import "errors"

var (
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrInvalidPeriod              = errors.New("invalid payroll period")
	ErrStandardHoursNotConfigured = errors.New("standard work hours resolve to zero, refusing to run payroll")
	ErrPayrollRecordAlreadyPaid   = errors.New("payroll record already paid, cannot modify")
	ErrNothingToUpdate            = errors.New("no updatable fields provided")
)
