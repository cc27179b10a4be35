package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/workbridge/hrms-backend-go/internal/domain/leave"
	"github.com/workbridge/hrms-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// ListApprovedOverlapping implements leave.LeaveRepository.
func (r *leaveRepository) ListApprovedOverlapping(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.company_id, lr.leave_type_id, lt.is_paid,
		       lr.start_date, lr.end_date, lr.total_days, lr.status,
		       lr.created_at, lr.updated_at
		FROM leave_requests lr
		JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE lr.company_id = $1
		  AND lr.employee_id = $2
		  AND lr.status = 'approved'
		  AND lr.start_date <= $3
		  AND lr.end_date >= $4
		ORDER BY lr.start_date
	`

	rows, err := q.Query(ctx, query, companyID, employeeID, periodEnd, periodStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var result []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		if err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.CompanyID, &lr.LeaveTypeID, &lr.IsPaid,
			&lr.StartDate, &lr.EndDate, &lr.TotalDays, &lr.Status,
			&lr.CreatedAt, &lr.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		result = append(result, lr)
	}

	return result, rows.Err()
}
