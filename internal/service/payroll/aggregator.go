package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub-dev/attendance-backend-go/internal/domain/attendance"
)

var secondsPerHour = decimal.NewFromInt(3600)

// AggregateWorkedHours sums net worked time across a period's ledger records
// and expresses it in hours, unrounded.
//
// A record still open (no clock-out) contributes zero: payroll must not book
// hours that are still accruing, and a re-run after the day closes picks them
// up. A break with only one end recorded is ignored entirely; the subtraction
// applies only when both break timestamps are present.
func AggregateWorkedHours(records []attendance.Attendance) decimal.Decimal {
	totalSeconds := int64(0)
	for _, att := range records {
		if att.ClockOut == nil {
			continue
		}
		worked := att.ClockOut.Sub(att.ClockIn)
		if att.BreakStart != nil && att.BreakEnd != nil {
			worked -= att.BreakEnd.Sub(*att.BreakStart)
		}
		if worked > 0 {
			totalSeconds += int64(worked / time.Second)
		}
	}
	return decimal.NewFromInt(totalSeconds).Div(secondsPerHour)
}
