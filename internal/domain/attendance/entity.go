package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half_day"
	StatusLate    Status = "late"
	StatusOnLeave Status = "on_leave"
)

func ValidStatuses() []string {
	return []string{
		string(StatusPresent),
		string(StatusAbsent),
		string(StatusHalfDay),
		string(StatusLate),
		string(StatusOnLeave),
	}
}

// DayWeight returns the payable-day contribution of a session status.
// A day with several sessions counts once, at the maximum weight among them.
func (s Status) DayWeight() float64 {
	switch s {
	case StatusPresent, StatusLate:
		return 1.0
	case StatusHalfDay:
		return 0.5
	default:
		return 0.0
	}
}

// Attendance is one work session. An employee may have several sessions per
// date, but at most one open session (clock_out IS NULL) at a time.
type Attendance struct {
	ID          string
	EmployeeID  string
	CompanyID   string
	Date        time.Time
	Status      Status
	ClockIn     time.Time
	ClockOut    *time.Time
	WorkMinutes int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
