package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workbridge/hrms-backend-go/internal/domain/attendance"
	"github.com/workbridge/hrms-backend-go/internal/domain/leave"
	"github.com/workbridge/hrms-backend-go/internal/domain/payroll"
)

// WorkingDays returns the number of calendar days in the month.
func WorkingDays(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// PeriodBounds returns the first and last calendar day of the month.
func PeriodBounds(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// AggregateAttendance reduces session rows to per-period day counts. Sessions
// are grouped by calendar day; a day counts once, at the maximum weight among
// its sessions (present/late = 1, half_day = 0.5, absent/on_leave = 0).
func AggregateAttendance(sessions []attendance.Attendance) payroll.AttendanceSummary {
	dayWeights := make(map[string]float64)
	totalMinutes := 0
	for _, s := range sessions {
		day := s.Date.Format("2006-01-02")
		if w := s.Status.DayWeight(); w > dayWeights[day] {
			dayWeights[day] = w
		}
		totalMinutes += s.WorkMinutes
	}

	var presentDays float64
	for _, w := range dayWeights {
		presentDays += w
	}

	return payroll.AttendanceSummary{
		PresentDays: presentDays,
		TotalHours:  float64(totalMinutes) / 60.0,
	}
}

// AggregateLeave counts approved leave days falling within [periodStart,
// periodEnd], split into paid and unpaid by the leave type. A request
// entirely inside the period contributes its recorded total days (keeps
// half-day precision); a request crossing a period boundary contributes the
// calendar-day count of the intersection.
func AggregateLeave(requests []leave.LeaveRequest, periodStart, periodEnd time.Time) (paidDays, unpaidDays float64) {
	for _, lr := range requests {
		if lr.StartDate.After(periodEnd) || lr.EndDate.Before(periodStart) {
			continue
		}

		var days float64
		if !lr.StartDate.Before(periodStart) && !lr.EndDate.After(periodEnd) {
			days = lr.TotalDays
		} else {
			start := lr.StartDate
			if start.Before(periodStart) {
				start = periodStart
			}
			end := lr.EndDate
			if end.After(periodEnd) {
				end = periodEnd
			}
			days = end.Sub(start).Hours()/24 + 1
		}

		if lr.IsPaid {
			paidDays += days
		} else {
			unpaidDays += days
		}
	}
	return paidDays, unpaidDays
}

// PayableDays derives the payable and unpaid day counts for a period.
// payable is not capped at workingDays.
func PayableDays(presentDays, paidLeaveDays float64, workingDays int) (payable, unpaid float64) {
	payable = presentDays + paidLeaveDays
	unpaid = float64(workingDays) - payable
	if unpaid < 0 {
		unpaid = 0
	}
	return payable, unpaid
}

// ProrateComponents applies the attendance factor to an employee's salary
// structure. Earnings scale by payable/working days; deductions keep their
// full amount. Every component is rounded to 2 decimals before summation.
func ProrateComponents(components []payroll.EmployeeSalaryComponent, payableDays float64, workingDays int) (details []payroll.PayrollDetail, gross, deductions, net decimal.Decimal) {
	factor := decimal.NewFromFloat(payableDays).Div(decimal.NewFromInt(int64(workingDays)))

	for _, c := range components {
		var amount decimal.Decimal
		if c.ComponentType == payroll.ComponentEarning {
			amount = c.Amount.Mul(factor).Round(2)
			gross = gross.Add(amount)
		} else {
			amount = c.Amount.Round(2)
			deductions = deductions.Add(amount)
		}
		details = append(details, payroll.PayrollDetail{
			ComponentID:   c.ComponentID,
			ComponentName: c.ComponentName,
			ComponentType: c.ComponentType,
			Amount:        amount,
		})
	}

	net = gross.Sub(deductions)
	return details, gross, deductions, net
}
