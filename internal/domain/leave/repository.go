package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	// ListApprovedOverlapping returns approved requests whose date range
	// overlaps [periodStart, periodEnd]
	// (start_date <= periodEnd AND end_date >= periodStart), with the paid
	// flag of the leave type joined in.
	ListApprovedOverlapping(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time) ([]LeaveRequest, error)
}
