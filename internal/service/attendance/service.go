package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workbridge/hrms-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{attendanceRepo: attendanceRepo}
}

// Helper to get company_id and employee_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, employeeID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok = claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return companyID, employeeID, nil
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	companyID, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// At most one open session per employee
	_, err = s.attendanceRepo.GetOpenSession(ctx, employeeID)
	if err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, attendance.ErrNoOpenSession) {
		return attendance.AttendanceResponse{}, err
	}

	status := attendance.StatusPresent
	if req.Status != "" {
		status = attendance.Status(req.Status)
	}

	now := time.Now()
	att, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Status:     status,
		ClockIn:    now,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(att), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	_, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	open, err := s.attendanceRepo.GetOpenSession(ctx, employeeID)
	if err != nil {
		if errors.Is(err, attendance.ErrNoOpenSession) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	workMinutes := int(now.Sub(open.ClockIn).Minutes())

	closed, err := s.attendanceRepo.CloseSession(ctx, open.ID, now, workMinutes)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(closed), nil
}

// ListMy implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListMy(ctx context.Context, month, year int) ([]attendance.AttendanceResponse, error) {
	companyID, employeeID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if month < 1 || month > 12 {
		now := time.Now()
		month = int(now.Month())
		year = now.Year()
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	sessions, err := s.attendanceRepo.ListByEmployeeAndPeriod(ctx, companyID, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(sessions))
	for _, att := range sessions {
		result = append(result, toResponse(att))
	}

	return result, nil
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:          att.ID,
		EmployeeID:  att.EmployeeID,
		Date:        att.Date.Format("2006-01-02"),
		Status:      string(att.Status),
		ClockIn:     att.ClockIn.Format(time.RFC3339),
		WorkMinutes: att.WorkMinutes,
	}
	if att.ClockOut != nil {
		clockOut := att.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &clockOut
	}
	return resp
}
