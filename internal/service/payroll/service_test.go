package payroll

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub-dev/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhub-dev/attendance-backend-go/internal/domain/employee"
	"github.com/staffhub-dev/attendance-backend-go/internal/domain/payroll"
	"github.com/staffhub-dev/attendance-backend-go/internal/domain/setting"
)

// ---- fakes ----

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListByRole(_ context.Context, role employee.Role) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, e := range f.employees {
		if e.Role == role {
			result = append(result, e)
		}
	}
	return result, nil
}

type fakeSettingRepo struct {
	values map[string]string
}

func (f *fakeSettingRepo) Get(_ context.Context, key string) (string, error) {
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return "", setting.ErrSettingNotFound
}

func (f *fakeSettingRepo) Upsert(_ context.Context, key, value string) error {
	if f.values == nil {
		f.values = make(map[string]string)
	}
	f.values[key] = value
	return nil
}

type fakePeriodAttendanceRepo struct {
	byEmployee map[string][]attendance.Attendance
	failFor    map[string]error
	beforeList func(employeeID string)
}

func (f *fakePeriodAttendanceRepo) ListByEmployeePeriod(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	if f.beforeList != nil {
		f.beforeList(employeeID)
	}
	if err, ok := f.failFor[employeeID]; ok {
		return nil, err
	}
	var result []attendance.Attendance
	for _, att := range f.byEmployee[employeeID] {
		if !att.Date.Before(from) && !att.Date.After(to) {
			result = append(result, att)
		}
	}
	return result, nil
}

func (f *fakePeriodAttendanceRepo) Create(context.Context, attendance.Attendance) (attendance.Attendance, error) {
	panic("not used")
}
func (f *fakePeriodAttendanceRepo) GetByEmployeeAndDate(context.Context, string, time.Time) (*attendance.Attendance, error) {
	panic("not used")
}
func (f *fakePeriodAttendanceRepo) GetByEmployeeAndDateForUpdate(context.Context, string, time.Time) (*attendance.Attendance, error) {
	panic("not used")
}
func (f *fakePeriodAttendanceRepo) Update(context.Context, attendance.Attendance) error {
	panic("not used")
}
func (f *fakePeriodAttendanceRepo) ListRecent(context.Context, string, int) ([]attendance.Attendance, error) {
	panic("not used")
}
func (f *fakePeriodAttendanceRepo) List(context.Context, attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	panic("not used")
}

type fakePayrollRepo struct {
	mu      sync.Mutex
	records map[string]payroll.Payroll // keyed employeeID|month|year
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{records: make(map[string]payroll.Payroll)}
}

func (f *fakePayrollRepo) key(employeeID, month string, year int) string {
	return fmt.Sprintf("%s|%s|%d", employeeID, month, year)
}

func (f *fakePayrollRepo) UpsertGenerated(_ context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	k := f.key(record.EmployeeID, record.Month, record.Year)
	if existing, ok := f.records[k]; ok {
		existing.BaseSalary = record.BaseSalary
		existing.TotalHours = record.TotalHours
		existing.NetSalary = record.NetSalary
		existing.PaymentDate = record.PaymentDate
		f.records[k] = existing
		return existing, nil
	}

	record.ID = uuid.NewString()
	record.Bonuses = decimal.Zero
	record.Deductions = decimal.Zero
	record.Status = payroll.PayrollStatusPending
	f.records[k] = record
	return record, nil
}

func (f *fakePayrollRepo) GetByID(_ context.Context, id string) (payroll.Payroll, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return payroll.Payroll{}, payroll.ErrPayrollRecordNotFound
}

func (f *fakePayrollRepo) GetByEmployeePeriod(_ context.Context, employeeID, month string, year int) (payroll.Payroll, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.records[f.key(employeeID, month, year)]; ok {
		return r, nil
	}
	return payroll.Payroll{}, payroll.ErrPayrollRecordNotFound
}

func (f *fakePayrollRepo) List(_ context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []payroll.Payroll
	for _, r := range f.records {
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		result = append(result, r)
	}
	return result, int64(len(result)), nil
}

func (f *fakePayrollRepo) UpdateOverride(_ context.Context, req payroll.UpdatePayrollRecordRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, r := range f.records {
		if r.ID != req.ID {
			continue
		}
		if req.Bonuses != nil {
			r.Bonuses = *req.Bonuses
		}
		if req.Deductions != nil {
			r.Deductions = *req.Deductions
		}
		if req.NetSalary != nil {
			r.NetSalary = *req.NetSalary
		}
		if req.Status != nil {
			r.Status = payroll.PayrollStatus(*req.Status)
		}
		f.records[k] = r
		return nil
	}
	return payroll.ErrPayrollRecordNotFound
}

func (f *fakePayrollRepo) GetRunSummary(_ context.Context, month string, year int) (payroll.RunSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	summary := payroll.RunSummary{Month: month, Year: year, TotalNet: decimal.Zero, TotalHours: decimal.Zero}
	for _, r := range f.records {
		if r.Month != month || r.Year != year {
			continue
		}
		summary.EmployeeCount++
		if r.Status == payroll.PayrollStatusPaid {
			summary.PaidCount++
		}
		summary.TotalNet = summary.TotalNet.Add(r.NetSalary)
		summary.TotalHours = summary.TotalHours.Add(r.TotalHours)
	}
	return summary, nil
}

// ---- helpers ----

func roleContext(t *testing.T, employeeID string, role employee.Role) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"role":        string(role),
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func fullDay(employeeID string, date time.Time, hours int) attendance.Attendance {
	clockIn := date.Add(9 * time.Hour)
	clockOut := clockIn.Add(time.Duration(hours) * time.Hour)
	return attendance.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		ClockIn:    clockIn,
		ClockOut:   &clockOut,
	}
}

func testOrchestrator(employees []employee.Employee, attRepo *fakePeriodAttendanceRepo, settingValues map[string]string) (*PayrollServiceImpl, *fakePayrollRepo) {
	payRepo := newFakePayrollRepo()
	svc := &PayrollServiceImpl{
		payrollRepo:    payRepo,
		attendanceRepo: attRepo,
		employeeRepo:   &fakeEmployeeRepo{employees: employees},
		settingRepo:    &fakeSettingRepo{values: settingValues},
	}
	return svc, payRepo
}

func salariedEmployee(id string, salary string) employee.Employee {
	return employee.Employee{
		ID:            id,
		FullName:      "Employee " + id,
		Role:          employee.RoleEmployee,
		MonthlySalary: decimal.RequireFromString(salary),
	}
}

// ---- tests ----

func TestRunPayroll_GeneratesRecordPerEmployee(t *testing.T) {
	march10 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	attRepo := &fakePeriodAttendanceRepo{
		byEmployee: map[string][]attendance.Attendance{
			"emp-1": {fullDay("emp-1", march10, 8), fullDay("emp-1", march10.AddDate(0, 0, 1), 8)},
			// emp-2 has no attendance at all
		},
	}
	svc, payRepo := testOrchestrator(
		[]employee.Employee{salariedEmployee("emp-1", "3360"), salariedEmployee("emp-2", "5000")},
		attRepo, nil,
	)

	result, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{Month: "March", Year: 2025})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Empty(t, result.Failed)
	assert.Empty(t, result.Skipped)
	assert.Equal(t, "March", result.Month)

	// standard hours March 2025 = 21 weekdays * 8 = 168; rate = 3360/168 = 20
	rec1, err := payRepo.GetByEmployeePeriod(context.Background(), "emp-1", "March", 2025)
	require.NoError(t, err)
	assert.True(t, rec1.TotalHours.Equal(decimal.NewFromInt(16)), "hours %s", rec1.TotalHours)
	assert.True(t, rec1.NetSalary.Equal(decimal.NewFromInt(320)), "net %s", rec1.NetSalary)
	assert.Equal(t, payroll.PayrollStatusPending, rec1.Status)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), rec1.PaymentDate)

	// No attendance still yields a record, at zero
	rec2, err := payRepo.GetByEmployeePeriod(context.Background(), "emp-2", "March", 2025)
	require.NoError(t, err)
	assert.True(t, rec2.TotalHours.IsZero())
	assert.True(t, rec2.NetSalary.IsZero())
}

func TestRunPayroll_NormalizesMonthCase(t *testing.T) {
	svc, payRepo := testOrchestrator(
		[]employee.Employee{salariedEmployee("emp-1", "3000")},
		&fakePeriodAttendanceRepo{}, nil,
	)

	result, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{Month: "march", Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, "March", result.Month)

	_, err = payRepo.GetByEmployeePeriod(context.Background(), "emp-1", "March", 2025)
	assert.NoError(t, err)
}

func TestRunPayroll_AdminsExcluded(t *testing.T) {
	admin := employee.Employee{ID: "adm-1", Role: employee.RoleAdmin, MonthlySalary: decimal.NewFromInt(9000)}
	svc, payRepo := testOrchestrator(
		[]employee.Employee{admin, salariedEmployee("emp-1", "3000")},
		&fakePeriodAttendanceRepo{}, nil,
	)

	result, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{Month: "March", Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)

	_, err = payRepo.GetByEmployeePeriod(context.Background(), "adm-1", "March", 2025)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestRunPayroll_PerEmployeeFailureDoesNotAbort(t *testing.T) {
	attRepo := &fakePeriodAttendanceRepo{
		failFor: map[string]error{"emp-2": errors.New("connection reset")},
	}
	svc, payRepo := testOrchestrator(
		[]employee.Employee{
			salariedEmployee("emp-1", "3000"),
			salariedEmployee("emp-2", "3000"),
			salariedEmployee("emp-3", "3000"),
		},
		attRepo, nil,
	)

	result, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{Month: "March", Year: 2025})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "emp-2", result.Failed[0].EmployeeID)
	assert.Contains(t, result.Failed[0].Reason, "connection reset")

	_, err = payRepo.GetByEmployeePeriod(context.Background(), "emp-1", "March", 2025)
	assert.NoError(t, err)
	_, err = payRepo.GetByEmployeePeriod(context.Background(), "emp-2", "March", 2025)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestRunPayroll_MisconfiguredStandardHoursWritesNothing(t *testing.T) {
	svc, payRepo := testOrchestrator(
		[]employee.Employee{salariedEmployee("emp-1", "3000")},
		&fakePeriodAttendanceRepo{},
		map[string]string{setting.KeyStandardHours: "0"},
	)

	_, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{Month: "March", Year: 2025})
	assert.ErrorIs(t, err, payroll.ErrStandardHoursNotConfigured)
	assert.Empty(t, payRepo.records)
}

func TestRunPayroll_MissingSettingUsesDefault(t *testing.T) {
	march10 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	attRepo := &fakePeriodAttendanceRepo{
		byEmployee: map[string][]attendance.Attendance{
			"emp-1": {fullDay("emp-1", march10, 8)},
		},
	}
	svc, payRepo := testOrchestrator(
		[]employee.Employee{salariedEmployee("emp-1", "3360")},
		attRepo, nil,
	)

	_, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{Month: "March", Year: 2025})
	require.NoError(t, err)

	// default 8h/day, 21 weekdays: rate 20/h, one 8h day
	rec, err := payRepo.GetByEmployeePeriod(context.Background(), "emp-1", "March", 2025)
	require.NoError(t, err)
	assert.True(t, rec.NetSalary.Equal(decimal.NewFromInt(160)), "net %s", rec.NetSalary)
}

func TestRunPayroll_RerunPreservesManualFields(t *testing.T) {
	march10 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	attRepo := &fakePeriodAttendanceRepo{
		byEmployee: map[string][]attendance.Attendance{
			"emp-1": {fullDay("emp-1", march10, 8)},
		},
	}
	svc, payRepo := testOrchestrator([]employee.Employee{salariedEmployee("emp-1", "3360")}, attRepo, nil)

	_, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{Month: "March", Year: 2025})
	require.NoError(t, err)

	rec, err := payRepo.GetByEmployeePeriod(context.Background(), "emp-1", "March", 2025)
	require.NoError(t, err)

	// Admin grants a bonus, then attendance changes and the period is re-run.
	bonus := decimal.NewFromInt(500)
	require.NoError(t, payRepo.UpdateOverride(context.Background(), payroll.UpdatePayrollRecordRequest{ID: rec.ID, Bonuses: &bonus}))

	attRepo.byEmployee["emp-1"] = append(attRepo.byEmployee["emp-1"], fullDay("emp-1", march10.AddDate(0, 0, 1), 8))
	_, err = svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{Month: "March", Year: 2025})
	require.NoError(t, err)

	rerun, err := payRepo.GetByEmployeePeriod(context.Background(), "emp-1", "March", 2025)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, rerun.ID)
	assert.True(t, rerun.Bonuses.Equal(bonus), "bonuses %s", rerun.Bonuses)
	assert.True(t, rerun.TotalHours.Equal(decimal.NewFromInt(16)), "hours %s", rerun.TotalHours)
}

func TestRunPayroll_CancelledContextSkipsEmployees(t *testing.T) {
	svc, payRepo := testOrchestrator(
		[]employee.Employee{salariedEmployee("emp-1", "3000"), salariedEmployee("emp-2", "3000")},
		&fakePeriodAttendanceRepo{}, nil,
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.RunPayroll(ctx, payroll.RunPayrollRequest{Month: "March", Year: 2025})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Processed)
	assert.Len(t, result.Skipped, 2)
	assert.Empty(t, payRepo.records)
}

func TestRunPayroll_CancelMidRunAccountsForEveryEmployee(t *testing.T) {
	const total = 200
	employees := make([]employee.Employee, 0, total)
	for i := 0; i < total; i++ {
		employees = append(employees, salariedEmployee(fmt.Sprintf("emp-%03d", i), "3000"))
	}

	// The first employee's pipeline cancels the run while the scheduling loop
	// and other workers are still going; every employee must still land in
	// exactly one of processed, failed or skipped.
	ctx, cancel := context.WithCancel(context.Background())
	var once sync.Once
	attRepo := &fakePeriodAttendanceRepo{
		beforeList: func(string) { once.Do(cancel) },
	}
	svc, _ := testOrchestrator(employees, attRepo, nil)

	result, err := svc.RunPayroll(ctx, payroll.RunPayrollRequest{Month: "March", Year: 2025})
	require.NoError(t, err)

	accounted := result.Processed + len(result.Failed) + len(result.Skipped)
	assert.Equal(t, total, accounted)
	assert.NotEmpty(t, result.Skipped)

	seen := make(map[string]bool, total)
	for _, id := range result.Skipped {
		assert.False(t, seen[id], "employee %s reported twice", id)
		seen[id] = true
	}
	for _, f := range result.Failed {
		assert.False(t, seen[f.EmployeeID], "employee %s reported twice", f.EmployeeID)
		seen[f.EmployeeID] = true
	}
}

func TestRunPayroll_InvalidPeriod(t *testing.T) {
	svc, _ := testOrchestrator(nil, &fakePeriodAttendanceRepo{}, nil)

	_, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{Month: "Marchtober", Year: 2025})
	assert.Error(t, err)

	_, err = svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{Month: "March", Year: 1987})
	assert.Error(t, err)
}

func TestUpdatePayrollRecord_PaidGuard(t *testing.T) {
	svc, payRepo := testOrchestrator([]employee.Employee{salariedEmployee("emp-1", "3000")}, &fakePeriodAttendanceRepo{}, nil)

	_, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{Month: "March", Year: 2025})
	require.NoError(t, err)
	rec, err := payRepo.GetByEmployeePeriod(context.Background(), "emp-1", "March", 2025)
	require.NoError(t, err)

	ctx := roleContext(t, "adm-1", employee.RoleAdmin)

	paid := string(payroll.PayrollStatusPaid)
	_, err = svc.UpdatePayrollRecord(ctx, payroll.UpdatePayrollRecordRequest{ID: rec.ID, Status: &paid})
	require.NoError(t, err)

	// Amount-only edits on a PAID record are rejected.
	bonus := decimal.NewFromInt(100)
	_, err = svc.UpdatePayrollRecord(ctx, payroll.UpdatePayrollRecordRequest{ID: rec.ID, Bonuses: &bonus})
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordAlreadyPaid)

	// Reverting the status in the same request is allowed.
	pending := string(payroll.PayrollStatusPending)
	updated, err := svc.UpdatePayrollRecord(ctx, payroll.UpdatePayrollRecordRequest{ID: rec.ID, Bonuses: &bonus, Status: &pending})
	require.NoError(t, err)
	assert.Equal(t, string(payroll.PayrollStatusPending), updated.Status)
	assert.True(t, updated.Bonuses.Equal(bonus))
}

func TestUpdatePayrollRecord_RejectsMalformedID(t *testing.T) {
	svc, _ := testOrchestrator(nil, &fakePeriodAttendanceRepo{}, nil)
	ctx := roleContext(t, "adm-1", employee.RoleAdmin)

	bonus := decimal.NewFromInt(100)
	_, err := svc.UpdatePayrollRecord(ctx, payroll.UpdatePayrollRecordRequest{ID: "not-a-uuid", Bonuses: &bonus})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id")
}

func TestGetPayrollRecord_OwnershipHidesOtherRecords(t *testing.T) {
	svc, payRepo := testOrchestrator(
		[]employee.Employee{salariedEmployee("emp-1", "3000"), salariedEmployee("emp-2", "3000")},
		&fakePeriodAttendanceRepo{}, nil,
	)
	_, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{Month: "March", Year: 2025})
	require.NoError(t, err)
	rec, err := payRepo.GetByEmployeePeriod(context.Background(), "emp-2", "March", 2025)
	require.NoError(t, err)

	// The owner sees it.
	owner := roleContext(t, "emp-2", employee.RoleEmployee)
	got, err := svc.GetPayrollRecord(owner, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)

	// Another employee gets not-found, not forbidden.
	stranger := roleContext(t, "emp-1", employee.RoleEmployee)
	_, err = svc.GetPayrollRecord(stranger, rec.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)

	// Admins see everything.
	admin := roleContext(t, "adm-1", employee.RoleAdmin)
	_, err = svc.GetPayrollRecord(admin, rec.ID)
	assert.NoError(t, err)
}

func TestGetPayrollHistory_EmployeeAlwaysScopedToSelf(t *testing.T) {
	svc, _ := testOrchestrator(
		[]employee.Employee{salariedEmployee("emp-1", "3000"), salariedEmployee("emp-2", "3000")},
		&fakePeriodAttendanceRepo{}, nil,
	)
	_, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{Month: "March", Year: 2025})
	require.NoError(t, err)

	// An employee asking for someone else's records still only gets their own.
	other := "emp-2"
	ctx := roleContext(t, "emp-1", employee.RoleEmployee)
	result, err := svc.GetPayrollHistory(ctx, payroll.PayrollFilter{EmployeeID: &other})
	require.NoError(t, err)

	require.Len(t, result.Payrolls, 1)
	assert.Equal(t, "emp-1", result.Payrolls[0].EmployeeID)

	// Admin with the same filter sees the requested employee.
	adminCtx := roleContext(t, "adm-1", employee.RoleAdmin)
	adminResult, err := svc.GetPayrollHistory(adminCtx, payroll.PayrollFilter{EmployeeID: &other})
	require.NoError(t, err)
	require.Len(t, adminResult.Payrolls, 1)
	assert.Equal(t, "emp-2", adminResult.Payrolls[0].EmployeeID)
}

func TestGetRunSummary(t *testing.T) {
	march10 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	attRepo := &fakePeriodAttendanceRepo{
		byEmployee: map[string][]attendance.Attendance{
			"emp-1": {fullDay("emp-1", march10, 8)},
			"emp-2": {fullDay("emp-2", march10, 4)},
		},
	}
	svc, _ := testOrchestrator(
		[]employee.Employee{salariedEmployee("emp-1", "3360"), salariedEmployee("emp-2", "3360")},
		attRepo, nil,
	)

	_, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{Month: "March", Year: 2025})
	require.NoError(t, err)

	summary, err := svc.GetRunSummary(context.Background(), "march", 2025)
	require.NoError(t, err)

	assert.Equal(t, "March", summary.Month)
	assert.Equal(t, 2, summary.EmployeeCount)
	assert.Equal(t, 0, summary.PaidCount)
	assert.True(t, summary.TotalHours.Equal(decimal.NewFromInt(12)), "hours %s", summary.TotalHours)
	assert.True(t, summary.TotalNet.Equal(decimal.NewFromInt(240)), "net %s", summary.TotalNet)
}
