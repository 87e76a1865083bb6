package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub-dev/attendance-backend-go/internal/domain/payroll"
)

// WeekdayCount returns the number of Monday-Friday days in the given month.
func WeekdayCount(year int, month time.Month) int {
	count := 0
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

// StandardHoursForPeriod derives the expected full-time hour count for a
// month: weekday count times the configured hours per day.
func StandardHoursForPeriod(year int, month time.Month, hoursPerDay int) decimal.Decimal {
	return decimal.NewFromInt(int64(WeekdayCount(year, month) * hoursPerDay))
}

// ComputeNetSalary derives the hourly rate from the contracted monthly salary
// and the period's standard hours, then prices the actually worked hours.
// The rate is never rounded before the multiplication; rounding happens only
// at the persistence boundary so error does not compound across employees.
// Zero worked hours yields a zero net salary, which is a valid result.
func ComputeNetSalary(monthlySalary, workedHours, standardHours decimal.Decimal) (netSalary, hourlyRate decimal.Decimal, err error) {
	if !standardHours.IsPositive() {
		return decimal.Zero, decimal.Zero, payroll.ErrStandardHoursNotConfigured
	}
	hourlyRate = monthlySalary.Div(standardHours)
	netSalary = workedHours.Mul(hourlyRate)
	return netSalary, hourlyRate, nil
}

// LastDayOfMonth returns the payment date for a period: its final calendar day.
func LastDayOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}

// PeriodBounds returns the first and last calendar day of a month.
func PeriodBounds(year int, month time.Month) (from, to time.Time) {
	from = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, LastDayOfMonth(year, month)
}
