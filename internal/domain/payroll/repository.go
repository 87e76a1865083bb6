package payroll

import "context"

// PayrollRepository defines data access for generated payroll records.
type PayrollRepository interface {
	// UpsertGenerated inserts or, keyed on (employee_id, month, year), updates
	// a record with freshly computed figures. On update only base_salary,
	// total_hours, net_salary and payment_date are rewritten; bonuses,
	// deductions and status keep their stored values. The write is atomic.
	UpsertGenerated(ctx context.Context, record Payroll) (Payroll, error)

	// GetByID retrieves a payroll record by ID.
	GetByID(ctx context.Context, id string) (Payroll, error)

	// GetByEmployeePeriod retrieves the record for one employee and period.
	GetByEmployeePeriod(ctx context.Context, employeeID, month string, year int) (Payroll, error)

	// List retrieves payroll records with filters and pagination.
	List(ctx context.Context, filter PayrollFilter) ([]Payroll, int64, error)

	// UpdateOverride applies the admin override fields to an existing record.
	UpdateOverride(ctx context.Context, req UpdatePayrollRecordRequest) error

	// GetRunSummary aggregates the generated records of one period.
	GetRunSummary(ctx context.Context, month string, year int) (RunSummary, error)
}
