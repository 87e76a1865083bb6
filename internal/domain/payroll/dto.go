package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/staffhub-dev/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// PAYROLL DTOs
// ========================================

type RunPayrollRequest struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.ParseMonthName(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be an English month name, e.g. \"March\"",
		})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdatePayrollRecordRequest is the narrow admin override: it replaces exactly
// these fields and never touches total_hours or base_salary.
type UpdatePayrollRecordRequest struct {
	ID         string           `json:"-"`
	Bonuses    *decimal.Decimal `json:"bonuses"`
	Deductions *decimal.Decimal `json:"deductions"`
	NetSalary  *decimal.Decimal `json:"net_salary"`
	Status     *string          `json:"status"`
}

func (r *UpdatePayrollRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	} else if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}
	if r.Bonuses == nil && r.Deductions == nil && r.NetSalary == nil && r.Status == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one of bonuses, deductions, net_salary, status is required",
		})
	}
	if r.Bonuses != nil && r.Bonuses.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "bonuses",
			Message: "bonuses must not be negative",
		})
	}
	if r.Deductions != nil && r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "deductions",
			Message: "deductions must not be negative",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(PayrollStatusPending), string(PayrollStatusPaid)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be PENDING or PAID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PayrollFilter selects payroll records for listing.
type PayrollFilter struct {
	EmployeeID *string
	Month      *string
	Year       *int
	Status     *string
	Page       int
	Limit      int
}

func (f *PayrollFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != nil && *f.Month != "" {
		if _, ok := validator.ParseMonthName(*f.Month); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be an English month name",
			})
		}
	}
	if f.Status != nil && *f.Status != "" &&
		!validator.IsInSlice(*f.Status, []string{string(PayrollStatusPending), string(PayrollStatusPaid)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be PENDING or PAID",
		})
	}
	if f.Page < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be at least 1",
		})
	}
	if f.Limit < 1 || f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be between 1 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Month        string          `json:"month"`
	Year         int             `json:"year"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	TotalHours   decimal.Decimal `json:"total_hours"`
	Bonuses      decimal.Decimal `json:"bonuses"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	Status       string          `json:"status"`
	PaymentDate  string          `json:"payment_date"`
}

type ListPayrollResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Payrolls   []PayrollResponse `json:"payrolls"`
}
