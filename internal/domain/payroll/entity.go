package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusPending PayrollStatus = "PENDING"
	PayrollStatusPaid    PayrollStatus = "PAID"
)

// Payroll is one employee's payout for one (month, year) period.
// BaseSalary is a snapshot of the contracted salary at generation time, not a
// live reference. Bonuses, Deductions and a manually overridden NetSalary are
// admin edits layered on top; a generation re-run rewrites TotalHours,
// NetSalary, BaseSalary and PaymentDate but never touches the admin fields.
type Payroll struct {
	ID          string
	EmployeeID  string
	Month       string // English month name, e.g. "March"
	Year        int
	BaseSalary  decimal.Decimal
	TotalHours  decimal.Decimal
	Bonuses     decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
	Status      PayrollStatus
	PaymentDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
}

// RunFailure identifies one employee whose pipeline errored during a run.
type RunFailure struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

// RunResult reports the outcome of a payroll run. A run with failures is a
// partial success: the other employees' records are committed and the admin
// can re-trigger the period (the upsert is idempotent).
type RunResult struct {
	Month     string       `json:"month"`
	Year      int          `json:"year"`
	Processed int          `json:"processed"`
	Failed    []RunFailure `json:"failed,omitempty"`
	// Skipped lists employees not attempted because the run was cancelled.
	Skipped []string `json:"skipped,omitempty"`
}

// RunSummary aggregates the generated records of one period.
type RunSummary struct {
	Month         string          `json:"month"`
	Year          int             `json:"year"`
	EmployeeCount int             `json:"employee_count"`
	PaidCount     int             `json:"paid_count"`
	TotalNet      decimal.Decimal `json:"total_net"`
	TotalHours    decimal.Decimal `json:"total_hours"`
}
