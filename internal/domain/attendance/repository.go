package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetOpenSession returns the employee's session with no clock_out, or
	// ErrNoOpenSession.
	GetOpenSession(ctx context.Context, employeeID string) (Attendance, error)

	CloseSession(ctx context.Context, id string, clockOut time.Time, workMinutes int) (Attendance, error)

	// ListByEmployeeAndPeriod returns all sessions whose date falls within
	// [from, to], ordered by date then clock_in.
	ListByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]Attendance, error)
}
