package payroll

import "context"

// PayrollService defines business logic for payroll generation and overrides.
type PayrollService interface {
	// RunPayroll generates one payroll record per EMPLOYEE-role employee for
	// the given period. The employee set and the standard-hours setting are
	// snapshotted at run start; per-employee failures are collected in the
	// result instead of aborting the batch. Re-running a period updates the
	// computed figures in place.
	RunPayroll(ctx context.Context, req RunPayrollRequest) (RunResult, error)

	// GetPayrollHistory lists records. Admins see every employee (optionally
	// filtered); employees only ever see their own rows.
	GetPayrollHistory(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)

	// GetPayrollRecord retrieves one record by ID, enforcing ownership.
	GetPayrollRecord(ctx context.Context, id string) (PayrollResponse, error)

	// UpdatePayrollRecord is the admin-only manual override and the only path
	// that can set status to PAID.
	UpdatePayrollRecord(ctx context.Context, req UpdatePayrollRecordRequest) (PayrollResponse, error)

	// GetRunSummary aggregates a generated period (admin).
	GetRunSummary(ctx context.Context, month string, year int) (RunSummary, error)
}
