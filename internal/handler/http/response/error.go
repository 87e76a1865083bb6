package response

import (
	"errors"
	"net/http"

	"github.com/staffhub-dev/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhub-dev/attendance-backend-go/internal/domain/employee"
	"github.com/staffhub-dev/attendance-backend-go/internal/domain/payroll"
	"github.com/staffhub-dev/attendance-backend-go/internal/domain/setting"
	"github.com/staffhub-dev/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "No attendance record found for today")
	case errors.Is(err, attendance.ErrConcurrencyConflict):
		Conflict(w, "Attendance record was modified concurrently, please retry")
	case errors.Is(err, attendance.ErrUnauthorized):
		Unauthorized(w, "Authentication required")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrStandardHoursNotConfigured):
		BadRequest(w, "Standard working hours are not configured correctly", nil)
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyPaid):
		Conflict(w, "Payroll record is already paid")
	case errors.Is(err, payroll.ErrNothingToUpdate):
		BadRequest(w, "No fields to update", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Setting domain errors
	case errors.Is(err, setting.ErrSettingNotFound):
		NotFound(w, "Setting not found")
	case errors.Is(err, setting.ErrInvalidValue):
		BadRequest(w, "Invalid setting value", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
