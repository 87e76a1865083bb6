package payroll

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/staffhub-dev/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhub-dev/attendance-backend-go/internal/domain/employee"
	"github.com/staffhub-dev/attendance-backend-go/internal/domain/payroll"
	"github.com/staffhub-dev/attendance-backend-go/internal/domain/setting"
	"github.com/staffhub-dev/attendance-backend-go/internal/pkg/validator"
)

// runWorkers bounds the payroll run fan-out. Per-employee pipelines touch
// disjoint rows, so they may run concurrently.
const runWorkers = 8

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	settingRepo    setting.SettingRepository
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	settingRepo setting.SettingRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		settingRepo:    settingRepo,
	}
}

// identityFromContext reads the caller's employee ID and role from JWT claims.
func identityFromContext(ctx context.Context) (employeeID string, role employee.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, _ = claims["employee_id"].(string)
	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return "", "", fmt.Errorf("role claim is missing or invalid")
	}

	return employeeID, employee.Role(roleStr), nil
}

// resolveStandardHours reads the standard_hours setting once. It is called a
// single time per run and the value is held constant for the run's duration,
// so a mid-run admin change can never tear the configuration.
func (s *PayrollServiceImpl) resolveStandardHours(ctx context.Context) (int, error) {
	raw, err := s.settingRepo.Get(ctx, setting.KeyStandardHours)
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return setting.DefaultStandardHours, nil
		}
		return 0, fmt.Errorf("failed to read standard hours setting: %w", err)
	}

	hours, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || hours <= 0 {
		return 0, payroll.ErrStandardHoursNotConfigured
	}

	return hours, nil
}

// RunPayroll implements payroll.PayrollService.
//
// The employee snapshot and the standard-hours value are both taken before
// any write; an employee added mid-run is not retroactively included. Each
// employee's pipeline is isolated: a failure is collected into the result and
// the batch carries on. Cancellation stops scheduling further employees and
// reports them as skipped; records already upserted stay in place.
func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, req payroll.RunPayrollRequest) (payroll.RunResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunResult{}, err
	}

	month, ok := validator.ParseMonthName(req.Month)
	if !ok {
		return payroll.RunResult{}, payroll.ErrInvalidPeriod
	}
	monthName := month.String()

	hoursPerDay, err := s.resolveStandardHours(ctx)
	if err != nil {
		return payroll.RunResult{}, err
	}
	standardHours := StandardHoursForPeriod(req.Year, month, hoursPerDay)
	if !standardHours.IsPositive() {
		return payroll.RunResult{}, payroll.ErrStandardHoursNotConfigured
	}

	employees, err := s.employeeRepo.ListByRole(ctx, employee.RoleEmployee)
	if err != nil {
		return payroll.RunResult{}, fmt.Errorf("failed to snapshot employee list: %w", err)
	}

	from, to := PeriodBounds(req.Year, month)
	paymentDate := LastDayOfMonth(req.Year, month)

	result := payroll.RunResult{Month: monthName, Year: req.Year}
	var mu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(runWorkers)

	for _, emp := range employees {
		emp := emp
		// In-flight workers append to the result under mu; the scheduling
		// loop must hold it for its own skip bookkeeping too.
		if ctx.Err() != nil {
			mu.Lock()
			result.Skipped = append(result.Skipped, emp.ID)
			mu.Unlock()
			continue
		}

		g.Go(func() error {
			if ctx.Err() != nil {
				mu.Lock()
				result.Skipped = append(result.Skipped, emp.ID)
				mu.Unlock()
				return nil
			}

			err := s.generateForEmployee(ctx, emp, monthName, req.Year, from, to, paymentDate, standardHours)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed = append(result.Failed, payroll.RunFailure{
					EmployeeID: emp.ID,
					Reason:     err.Error(),
				})
				return nil
			}
			result.Processed++
			return nil
		})
	}

	_ = g.Wait()

	return result, nil
}

func (s *PayrollServiceImpl) generateForEmployee(
	ctx context.Context,
	emp employee.Employee,
	monthName string,
	year int,
	from, to, paymentDate time.Time,
	standardHours decimal.Decimal,
) error {
	records, err := s.attendanceRepo.ListByEmployeePeriod(ctx, emp.ID, from, to)
	if err != nil {
		return fmt.Errorf("failed to fetch attendance: %w", err)
	}

	workedHours := AggregateWorkedHours(records)

	netSalary, _, err := ComputeNetSalary(emp.MonthlySalary, workedHours, standardHours)
	if err != nil {
		return err
	}

	_, err = s.payrollRepo.UpsertGenerated(ctx, payroll.Payroll{
		EmployeeID:  emp.ID,
		Month:       monthName,
		Year:        year,
		BaseSalary:  emp.MonthlySalary,
		TotalHours:  workedHours,
		NetSalary:   netSalary,
		PaymentDate: paymentDate,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert payroll record: %w", err)
	}

	return nil
}

// GetPayrollHistory implements payroll.PayrollService. Non-admin callers are
// always scoped to their own records regardless of the requested filter.
func (s *PayrollServiceImpl) GetPayrollHistory(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	callerID, role, err := identityFromContext(ctx)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	if role != employee.RoleAdmin {
		filter.EmployeeID = &callerID
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	if err := filter.Validate(); err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	if filter.Month != nil && *filter.Month != "" {
		if m, ok := validator.ParseMonthName(*filter.Month); ok {
			canonical := m.String()
			filter.Month = &canonical
		}
	}

	records, total, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, fmt.Errorf("failed to list payroll records: %w", err)
	}

	return payroll.ListPayrollResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Payrolls:   mapToRecordResponses(records),
	}, nil
}

// GetPayrollRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayrollRecord(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	callerID, role, err := identityFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	// Employees must not learn whether records belonging to others exist.
	if role != employee.RoleAdmin && record.EmployeeID != callerID {
		return payroll.PayrollResponse{}, payroll.ErrPayrollRecordNotFound
	}

	return mapToRecordResponse(record), nil
}

// UpdatePayrollRecord implements payroll.PayrollService. The override
// replaces exactly bonuses, deductions, net salary and status; it is the only
// path that can mark a record PAID. Amount edits on an already-paid record
// are rejected unless the same request also moves the status.
func (s *PayrollServiceImpl) UpdatePayrollRecord(ctx context.Context, req payroll.UpdatePayrollRecordRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	record, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	if record.Status == payroll.PayrollStatusPaid && req.Status == nil {
		return payroll.PayrollResponse{}, payroll.ErrPayrollRecordAlreadyPaid
	}

	if err := s.payrollRepo.UpdateOverride(ctx, req); err != nil {
		return payroll.PayrollResponse{}, err
	}

	updated, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to reload payroll record: %w", err)
	}

	return mapToRecordResponse(updated), nil
}

// GetRunSummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetRunSummary(ctx context.Context, month string, year int) (payroll.RunSummary, error) {
	m, ok := validator.ParseMonthName(month)
	if !ok {
		return payroll.RunSummary{}, payroll.ErrInvalidPeriod
	}

	return s.payrollRepo.GetRunSummary(ctx, m.String(), year)
}

// ========== HELPERS ==========

func mapToRecordResponse(r payroll.Payroll) payroll.PayrollResponse {
	employeeName := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}

	return payroll.PayrollResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: employeeName,
		Month:        r.Month,
		Year:         r.Year,
		BaseSalary:   r.BaseSalary,
		TotalHours:   r.TotalHours,
		Bonuses:      r.Bonuses,
		Deductions:   r.Deductions,
		NetSalary:    r.NetSalary,
		Status:       string(r.Status),
		PaymentDate:  r.PaymentDate.Format("2006-01-02"),
	}
}

func mapToRecordResponses(records []payroll.Payroll) []payroll.PayrollResponse {
	result := make([]payroll.PayrollResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToRecordResponse(r))
	}
	return result
}
