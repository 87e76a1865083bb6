package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub-dev/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhub-dev/attendance-backend-go/internal/pkg/database"
	"github.com/staffhub-dev/attendance-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
	withTx         func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewAttendanceService(db *database.DB, attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		now:            time.Now,
		withTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

// dayOf truncates a timestamp to its UTC calendar day.
func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ClockIn implements attendance.AttendanceService.
//
// No record today creates one (CLOCKED_IN); ON_BREAK records a return from
// break (BACK_FROM_BREAK). Every other state is a no-op returning the record
// unchanged: the button of a stale client must not force a transition.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := a.now().UTC()
	today := dayOf(nowUTC)

	var result attendance.Attendance
	err = a.withTx(ctx, func(txCtx context.Context) error {
		current, err := a.attendanceRepo.GetByEmployeeAndDateForUpdate(txCtx, employeeID, today)
		if err != nil {
			return err
		}

		if current == nil {
			created, err := a.attendanceRepo.Create(txCtx, attendance.Attendance{
				EmployeeID: employeeID,
				Date:       today,
				ClockIn:    nowUTC,
			})
			if err != nil {
				return err
			}
			result = created
			return nil
		}

		if current.Status() == attendance.StatusOnBreak {
			current.BreakEnd = &nowUTC
			if err := a.attendanceRepo.Update(txCtx, *current); err != nil {
				return err
			}
		}

		result = *current
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(result), nil
}

// ClockOut implements attendance.AttendanceService.
//
// CLOCKED_IN starts the break (ON_BREAK); BACK_FROM_BREAK closes the day
// (CLOCKED_OUT, terminal). Every other state is a no-op; in particular a
// clock-out with no record today does nothing and reports not-found.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := a.now().UTC()
	today := dayOf(nowUTC)

	var result attendance.Attendance
	err = a.withTx(ctx, func(txCtx context.Context) error {
		current, err := a.attendanceRepo.GetByEmployeeAndDateForUpdate(txCtx, employeeID, today)
		if err != nil {
			return err
		}
		if current == nil {
			return attendance.ErrAttendanceNotFound
		}

		switch current.Status() {
		case attendance.StatusClockedIn:
			current.BreakStart = &nowUTC
			if err := a.attendanceRepo.Update(txCtx, *current); err != nil {
				return err
			}
		case attendance.StatusBackFromBreak:
			current.ClockOut = &nowUTC
			if err := a.attendanceRepo.Update(txCtx, *current); err != nil {
				return err
			}
		}

		result = *current
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(result), nil
}

// GetToday implements attendance.AttendanceService. A nil response means the
// employee has not clocked in yet; that is a common, valid state.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context) (*attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	current, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, dayOf(a.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if current == nil {
		return nil, nil
	}

	resp := mapAttendanceToResponse(*current)
	return &resp, nil
}

// GetHistory implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetHistory(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 30
	}

	records, err := a.attendanceRepo.ListRecent(ctx, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance history: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	return responses, nil
}

// ListAttendance implements attendance.AttendanceService (admin view).
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		Attendances: responses,
	}, nil
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}

func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var employeeName string
	if att.EmployeeName != nil {
		employeeName = *att.EmployeeName
	}

	return attendance.AttendanceResponse{
		ID:             att.ID,
		EmployeeID:     att.EmployeeID,
		EmployeeName:   employeeName,
		Date:           att.Date.Format("2006-01-02"),
		ClockInTime:    att.ClockIn.Format(time.RFC3339),
		BreakStartTime: timePtrToString(att.BreakStart),
		BreakEndTime:   timePtrToString(att.BreakEnd),
		ClockOutTime:   timePtrToString(att.ClockOut),
		Status:         string(att.Status()),
	}
}
