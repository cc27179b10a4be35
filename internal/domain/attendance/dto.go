package attendance

import (
	"github.com/workbridge/hrms-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	Status string `json:"status,omitempty"` // defaults to "present"
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != "" && !validator.IsInSlice(r.Status, ValidStatuses()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, absent, half_day, late, on_leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
	ClockIn     string  `json:"clock_in"`
	ClockOut    *string `json:"clock_out,omitempty"`
	WorkMinutes int     `json:"work_minutes"`
}
