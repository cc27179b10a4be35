package leave

import "time"

type RequestStatus string

const (
	StatusWaitingApproval RequestStatus = "waiting_approval"
	StatusApproved        RequestStatus = "approved"
	StatusRejected        RequestStatus = "rejected"
)

type LeaveType struct {
	ID        string
	CompanyID string
	Name      string
	IsPaid    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type LeaveRequest struct {
	ID          string
	EmployeeID  string
	CompanyID   string
	LeaveTypeID string
	IsPaid      bool // joined from the leave type
	StartDate   time.Time
	EndDate     time.Time
	TotalDays   float64
	Status      RequestStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
