package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workbridge/hrms-backend-go/internal/domain/attendance"
)

type fakeAttendanceRepo struct {
	sessions []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	att.ID = fmt.Sprintf("att-%d", len(f.sessions)+1)
	f.sessions = append(f.sessions, att)
	return att, nil
}

func (f *fakeAttendanceRepo) GetOpenSession(_ context.Context, employeeID string) (attendance.Attendance, error) {
	for _, s := range f.sessions {
		if s.EmployeeID == employeeID && s.ClockOut == nil {
			return s, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrNoOpenSession
}

func (f *fakeAttendanceRepo) CloseSession(_ context.Context, id string, clockOut time.Time, workMinutes int) (attendance.Attendance, error) {
	for i, s := range f.sessions {
		if s.ID == id {
			f.sessions[i].ClockOut = &clockOut
			f.sessions[i].WorkMinutes = workMinutes
			return f.sessions[i], nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByEmployeeAndPeriod(_ context.Context, companyID, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, s := range f.sessions {
		if s.CompanyID == companyID && s.EmployeeID == employeeID &&
			!s.Date.Before(from) && !s.Date.After(to) {
			result = append(result, s)
		}
	}
	return result, nil
}

func employeeContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":     "user-1",
		"company_id":  "company-1",
		"employee_id": "emp-1",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestClockIn(t *testing.T) {
	t.Parallel()

	t.Run("opens a session with default status", func(t *testing.T) {
		t.Parallel()

		repo := &fakeAttendanceRepo{}
		svc := NewAttendanceService(repo)

		resp, err := svc.ClockIn(employeeContext(t), attendance.ClockInRequest{})
		require.NoError(t, err)
		assert.Equal(t, "present", resp.Status)
		assert.Equal(t, "emp-1", resp.EmployeeID)
		assert.Nil(t, resp.ClockOut)
	})

	t.Run("second clock-in while a session is open", func(t *testing.T) {
		t.Parallel()

		repo := &fakeAttendanceRepo{}
		svc := NewAttendanceService(repo)

		_, err := svc.ClockIn(employeeContext(t), attendance.ClockInRequest{})
		require.NoError(t, err)

		_, err = svc.ClockIn(employeeContext(t), attendance.ClockInRequest{})
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
		assert.Len(t, repo.sessions, 1)
	})

	t.Run("closed session admits a new one the same day", func(t *testing.T) {
		t.Parallel()

		repo := &fakeAttendanceRepo{}
		svc := NewAttendanceService(repo)
		ctx := employeeContext(t)

		_, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
		require.NoError(t, err)
		_, err = svc.ClockOut(ctx)
		require.NoError(t, err)

		_, err = svc.ClockIn(ctx, attendance.ClockInRequest{Status: "half_day"})
		require.NoError(t, err)
		assert.Len(t, repo.sessions, 2)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		t.Parallel()

		svc := NewAttendanceService(&fakeAttendanceRepo{})
		_, err := svc.ClockIn(employeeContext(t), attendance.ClockInRequest{Status: "remote"})
		assert.Error(t, err)
	})
}

func TestClockOut(t *testing.T) {
	t.Parallel()

	t.Run("closes the open session", func(t *testing.T) {
		t.Parallel()

		repo := &fakeAttendanceRepo{}
		svc := NewAttendanceService(repo)
		ctx := employeeContext(t)

		_, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
		require.NoError(t, err)

		resp, err := svc.ClockOut(ctx)
		require.NoError(t, err)
		assert.NotNil(t, resp.ClockOut)
	})

	t.Run("without an open session", func(t *testing.T) {
		t.Parallel()

		svc := NewAttendanceService(&fakeAttendanceRepo{})
		_, err := svc.ClockOut(employeeContext(t))
		assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
	})
}

func TestListMy(t *testing.T) {
	t.Parallel()

	repo := &fakeAttendanceRepo{sessions: []attendance.Attendance{
		{ID: "att-1", EmployeeID: "emp-1", CompanyID: "company-1", Date: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent, ClockIn: time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)},
		{ID: "att-2", EmployeeID: "emp-1", CompanyID: "company-1", Date: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent, ClockIn: time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)},
		{ID: "att-3", EmployeeID: "emp-2", CompanyID: "company-1", Date: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent, ClockIn: time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)},
	}}
	svc := NewAttendanceService(repo)

	result, err := svc.ListMy(employeeContext(t), 9, 2025)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "att-1", result[0].ID)
}
