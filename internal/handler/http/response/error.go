package response

import (
	"errors"
	"net/http"

	"github.com/workbridge/hrms-backend-go/internal/domain/attendance"
	"github.com/workbridge/hrms-backend-go/internal/domain/auth"
	"github.com/workbridge/hrms-backend-go/internal/domain/employee"
	"github.com/workbridge/hrms-backend-go/internal/domain/payroll"
	"github.com/workbridge/hrms-backend-go/internal/domain/payrun"
	"github.com/workbridge/hrms-backend-go/internal/domain/user"
	"github.com/workbridge/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "You have an open session, clock out first")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "You have not clocked in yet", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrComponentNotFound):
		NotFound(w, "Salary component not found")
	case errors.Is(err, payroll.ErrComponentNameExists):
		Conflict(w, "Salary component name already exists")
	case errors.Is(err, payroll.ErrNoSalaryStructure):
		BadRequest(w, "Employee has no active salary structure", nil)
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyExists):
		Conflict(w, "Payroll record already exists for this period")

	// Payrun domain errors
	case errors.Is(err, payrun.ErrPayrunNotFound):
		NotFound(w, "Payrun not found")
	case errors.Is(err, payrun.ErrNoAttendanceForPeriod):
		BadRequest(w, "No attendance recorded for this period", nil)
	case errors.Is(err, payrun.ErrInvalidStatusTransition):
		BadRequest(w, "Invalid payrun status transition", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
