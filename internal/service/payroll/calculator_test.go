package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workbridge/hrms-backend-go/internal/domain/attendance"
	"github.com/workbridge/hrms-backend-go/internal/domain/leave"
	"github.com/workbridge/hrms-backend-go/internal/domain/payroll"
)

func TestWorkingDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		month int
		year  int
		want  int
	}{
		{"january", 1, 2025, 31},
		{"february leap year", 2, 2024, 29},
		{"february non-leap year", 2, 2025, 28},
		{"april", 4, 2025, 30},
		{"december", 12, 2025, 31},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, WorkingDays(tt.month, tt.year))
		})
	}
}

func TestPeriodBounds(t *testing.T) {
	t.Parallel()

	start, end := PeriodBounds(2, 2024)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), end)
}

func TestAggregateAttendance(t *testing.T) {
	t.Parallel()

	day := func(d int) time.Time {
		return time.Date(2025, 9, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("day counts once at maximum session weight", func(t *testing.T) {
		t.Parallel()

		sessions := []attendance.Attendance{
			{Date: day(1), Status: attendance.StatusHalfDay, WorkMinutes: 240},
			{Date: day(1), Status: attendance.StatusPresent, WorkMinutes: 240},
			{Date: day(2), Status: attendance.StatusLate, WorkMinutes: 420},
			{Date: day(3), Status: attendance.StatusHalfDay, WorkMinutes: 210},
			{Date: day(4), Status: attendance.StatusAbsent},
			{Date: day(5), Status: attendance.StatusOnLeave},
		}

		summary := AggregateAttendance(sessions)
		assert.Equal(t, 2.5, summary.PresentDays)
		assert.InDelta(t, (240+240+420+210)/60.0, summary.TotalHours, 0.001)
	})

	t.Run("no sessions", func(t *testing.T) {
		t.Parallel()

		summary := AggregateAttendance(nil)
		assert.Zero(t, summary.PresentDays)
		assert.Zero(t, summary.TotalHours)
	})
}

func TestAggregateLeave(t *testing.T) {
	t.Parallel()

	periodStart := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)
	d := func(month, dayOfMonth int) time.Time {
		return time.Date(2025, time.Month(month), dayOfMonth, 0, 0, 0, 0, time.UTC)
	}

	t.Run("splits paid and unpaid by leave type", func(t *testing.T) {
		t.Parallel()

		requests := []leave.LeaveRequest{
			{StartDate: d(9, 10), EndDate: d(9, 11), TotalDays: 2, IsPaid: true},
			{StartDate: d(9, 15), EndDate: d(9, 15), TotalDays: 1, IsPaid: false},
		}

		paid, unpaid := AggregateLeave(requests, periodStart, periodEnd)
		assert.Equal(t, 2.0, paid)
		assert.Equal(t, 1.0, unpaid)
	})

	t.Run("request inside the period keeps half-day precision", func(t *testing.T) {
		t.Parallel()

		requests := []leave.LeaveRequest{
			{StartDate: d(9, 8), EndDate: d(9, 9), TotalDays: 1.5, IsPaid: true},
		}

		paid, unpaid := AggregateLeave(requests, periodStart, periodEnd)
		assert.Equal(t, 1.5, paid)
		assert.Zero(t, unpaid)
	})

	t.Run("boundary-crossing request is clipped to the period", func(t *testing.T) {
		t.Parallel()

		requests := []leave.LeaveRequest{
			// Aug 28 - Sep 3: only Sep 1-3 fall inside
			{StartDate: d(8, 28), EndDate: d(9, 3), TotalDays: 7, IsPaid: true},
			// Sep 29 - Oct 2: only Sep 29-30 fall inside
			{StartDate: d(9, 29), EndDate: d(10, 2), TotalDays: 4, IsPaid: false},
		}

		paid, unpaid := AggregateLeave(requests, periodStart, periodEnd)
		assert.Equal(t, 3.0, paid)
		assert.Equal(t, 2.0, unpaid)
	})

	t.Run("request outside the period is ignored", func(t *testing.T) {
		t.Parallel()

		requests := []leave.LeaveRequest{
			{StartDate: d(8, 1), EndDate: d(8, 5), TotalDays: 5, IsPaid: true},
			{StartDate: d(10, 1), EndDate: d(10, 2), TotalDays: 2, IsPaid: false},
		}

		paid, unpaid := AggregateLeave(requests, periodStart, periodEnd)
		assert.Zero(t, paid)
		assert.Zero(t, unpaid)
	})
}

func TestPayableDays(t *testing.T) {
	t.Parallel()

	t.Run("unmarked days count as unpaid", func(t *testing.T) {
		t.Parallel()

		payable, unpaid := PayableDays(25, 2, 30)
		assert.Equal(t, 27.0, payable)
		assert.Equal(t, 3.0, unpaid)
	})

	t.Run("unpaid never goes negative", func(t *testing.T) {
		t.Parallel()

		payable, unpaid := PayableDays(29, 3, 30)
		assert.Equal(t, 32.0, payable)
		assert.Zero(t, unpaid)
	})
}

func TestProrateComponents(t *testing.T) {
	t.Parallel()

	components := []payroll.EmployeeSalaryComponent{
		{ComponentID: "c-basic", ComponentName: "Basic", ComponentType: payroll.ComponentEarning, Amount: decimal.NewFromInt(20000)},
		{ComponentID: "c-hra", ComponentName: "HRA", ComponentType: payroll.ComponentEarning, Amount: decimal.NewFromInt(8000)},
		{ComponentID: "c-pf", ComponentName: "PF", ComponentType: payroll.ComponentDeduction, Amount: decimal.NewFromInt(2400)},
	}

	t.Run("earnings prorate, deductions do not", func(t *testing.T) {
		t.Parallel()

		details, gross, deductions, net := ProrateComponents(components, 27, 30)

		require.Len(t, details, 3)
		assert.Equal(t, "18000.00", details[0].Amount.StringFixed(2))
		assert.Equal(t, "7200.00", details[1].Amount.StringFixed(2))
		assert.Equal(t, "2400.00", details[2].Amount.StringFixed(2))
		assert.Equal(t, "25200.00", gross.StringFixed(2))
		assert.Equal(t, "2400.00", deductions.StringFixed(2))
		assert.Equal(t, "22800.00", net.StringFixed(2))
	})

	t.Run("full attendance keeps full amounts", func(t *testing.T) {
		t.Parallel()

		_, gross, deductions, net := ProrateComponents(components, 30, 30)
		assert.Equal(t, "28000.00", gross.StringFixed(2))
		assert.Equal(t, "2400.00", deductions.StringFixed(2))
		assert.Equal(t, "25600.00", net.StringFixed(2))
	})

	t.Run("factor above 1 scales earnings up, deductions stay fixed", func(t *testing.T) {
		t.Parallel()

		_, gross, deductions, _ := ProrateComponents(components, 33, 30)
		assert.Equal(t, "30800.00", gross.StringFixed(2))
		assert.Equal(t, "2400.00", deductions.StringFixed(2))
	})

	t.Run("deterministic across repeated runs", func(t *testing.T) {
		t.Parallel()

		_, gross, _, net := ProrateComponents(components, 21.5, 31)
		for i := 0; i < 100; i++ {
			_, g, _, n := ProrateComponents(components, 21.5, 31)
			require.True(t, gross.Equal(g))
			require.True(t, net.Equal(n))
		}
	})
}
