package payroll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workbridge/hrms-backend-go/internal/domain/attendance"
	"github.com/workbridge/hrms-backend-go/internal/domain/employee"
	"github.com/workbridge/hrms-backend-go/internal/domain/leave"
	"github.com/workbridge/hrms-backend-go/internal/domain/payroll"
)

// ========== FAKES ==========

type fakeTxManager struct{}

func (f *fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id, companyID string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok || emp.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context, companyID string) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range f.employees {
		if emp.CompanyID == companyID && emp.Status == employee.StatusActive {
			result = append(result, emp)
		}
	}
	return result, nil
}

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

type fakeLeaveRepo struct {
	requests []leave.LeaveRequest
}

func (f *fakeLeaveRepo) ListApprovedOverlapping(_ context.Context, companyID, employeeID string, periodStart, periodEnd time.Time) ([]leave.LeaveRequest, error) {
	var result []leave.LeaveRequest
	for _, lr := range f.requests {
		if lr.CompanyID == companyID && lr.EmployeeID == employeeID &&
			lr.Status == leave.StatusApproved &&
			!lr.StartDate.After(periodEnd) && !lr.EndDate.Before(periodStart) {
			result = append(result, lr)
		}
	}
	return result, nil
}

type recordKey struct {
	companyID, employeeID string
	month, year           int
}

type fakePayrollRepo struct {
	components map[string]payroll.SalaryComponent
	assigned   map[string][]payroll.EmployeeSalaryComponent
	records    map[recordKey]payroll.PayrollRecord
	details    []payroll.PayrollDetail
	nextID     int
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{
		components: make(map[string]payroll.SalaryComponent),
		assigned:   make(map[string][]payroll.EmployeeSalaryComponent),
		records:    make(map[recordKey]payroll.PayrollRecord),
	}
}

func (f *fakePayrollRepo) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *fakePayrollRepo) CreateComponent(_ context.Context, c payroll.SalaryComponent) (payroll.SalaryComponent, error) {
	for _, existing := range f.components {
		if existing.CompanyID == c.CompanyID && existing.Name == c.Name {
			return payroll.SalaryComponent{}, payroll.ErrComponentNameExists
		}
	}
	c.ID = f.id("comp")
	f.components[c.ID] = c
	return c, nil
}

func (f *fakePayrollRepo) GetComponent(_ context.Context, id, companyID string) (payroll.SalaryComponent, error) {
	c, ok := f.components[id]
	if !ok || c.CompanyID != companyID {
		return payroll.SalaryComponent{}, payroll.ErrComponentNotFound
	}
	return c, nil
}

func (f *fakePayrollRepo) ListComponents(_ context.Context, companyID string, activeOnly bool) ([]payroll.SalaryComponent, error) {
	var result []payroll.SalaryComponent
	for _, c := range f.components {
		if c.CompanyID == companyID && (!activeOnly || c.IsActive) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakePayrollRepo) AssignComponent(_ context.Context, ec payroll.EmployeeSalaryComponent) (payroll.EmployeeSalaryComponent, error) {
	ec.ID = f.id("esc")
	f.assigned[ec.EmployeeID] = append(f.assigned[ec.EmployeeID], ec)
	return ec, nil
}

func (f *fakePayrollRepo) ListEmployeeComponents(_ context.Context, employeeID string, activeOnly bool) ([]payroll.EmployeeSalaryComponent, error) {
	var result []payroll.EmployeeSalaryComponent
	for _, ec := range f.assigned[employeeID] {
		if !activeOnly || ec.IsActive {
			result = append(result, ec)
		}
	}
	return result, nil
}

func (f *fakePayrollRepo) CreateRecord(_ context.Context, rec payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	key := recordKey{rec.CompanyID, rec.EmployeeID, rec.PeriodMonth, rec.PeriodYear}
	if _, exists := f.records[key]; exists {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
	}
	rec.ID = f.id("rec")
	f.records[key] = rec
	return rec, nil
}

func (f *fakePayrollRepo) CreateDetail(_ context.Context, d payroll.PayrollDetail) (payroll.PayrollDetail, error) {
	d.ID = f.id("det")
	f.details = append(f.details, d)
	return d, nil
}

func (f *fakePayrollRepo) GetRecordByID(_ context.Context, id, companyID string) (payroll.PayrollRecord, error) {
	for _, rec := range f.records {
		if rec.ID == id && rec.CompanyID == companyID {
			return rec, nil
		}
	}
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

func (f *fakePayrollRepo) ListDetailsByRecord(_ context.Context, recordID string) ([]payroll.PayrollDetail, error) {
	var result []payroll.PayrollDetail
	for _, d := range f.details {
		if d.PayrollRecordID == recordID {
			result = append(result, d)
		}
	}
	return result, nil
}

func (f *fakePayrollRepo) ListRecordsByPeriod(_ context.Context, companyID string, month, year int) ([]payroll.PayrollRecord, error) {
	var result []payroll.PayrollRecord
	for _, rec := range f.records {
		if rec.CompanyID == companyID && rec.PeriodMonth == month && rec.PeriodYear == year {
			result = append(result, rec)
		}
	}
	return result, nil
}

// ========== HELPERS ==========

func authedContext(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func adminContext(t *testing.T) context.Context {
	t.Helper()
	return authedContext(t, map[string]interface{}{
		"user_id":    "user-1",
		"company_id": "company-1",
		"is_admin":   true,
	})
}

type payrollFixture struct {
	svc      payroll.PayrollService
	repo     *fakePayrollRepo
	empRepo  *fakeEmployeeRepo
	attRepo  *fakeAttendanceRepo
	leaves   *fakeLeaveRepo
	employee employee.Employee
}

func newPayrollFixture() *payrollFixture {
	emp := employee.Employee{
		ID:        "emp-1",
		CompanyID: "company-1",
		Name:      "Ana Putri",
		Code:      "EMP001",
		Status:    employee.StatusActive,
	}
	repo := newFakePayrollRepo()
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{emp.ID: emp}}
	attRepo := &fakeAttendanceRepo{}
	leaves := &fakeLeaveRepo{}

	return &payrollFixture{
		svc:      NewPayrollService(&fakeTxManager{}, repo, empRepo, attRepo, leaves),
		repo:     repo,
		empRepo:  empRepo,
		attRepo:  attRepo,
		leaves:   leaves,
		employee: emp,
	}
}

func (fx *payrollFixture) assignStructure() {
	fx.repo.assigned[fx.employee.ID] = []payroll.EmployeeSalaryComponent{
		{ID: "esc-1", EmployeeID: fx.employee.ID, ComponentID: "c-basic", ComponentName: "Basic", ComponentType: payroll.ComponentEarning, Amount: decimal.NewFromInt(20000), IsActive: true},
		{ID: "esc-2", EmployeeID: fx.employee.ID, ComponentID: "c-hra", ComponentName: "HRA", ComponentType: payroll.ComponentEarning, Amount: decimal.NewFromInt(8000), IsActive: true},
		{ID: "esc-3", EmployeeID: fx.employee.ID, ComponentID: "c-pf", ComponentName: "PF", ComponentType: payroll.ComponentDeduction, Amount: decimal.NewFromInt(2400), IsActive: true},
	}
}

// markPresent records one full present session per day in September 2025.
func (fx *payrollFixture) markPresent(days ...int) {
	for _, d := range days {
		fx.attRepo.sessions = append(fx.attRepo.sessions, attendance.Attendance{
			ID:          fmt.Sprintf("att-%d", d),
			EmployeeID:  fx.employee.ID,
			CompanyID:   fx.employee.CompanyID,
			Date:        time.Date(2025, 9, d, 0, 0, 0, 0, time.UTC),
			Status:      attendance.StatusPresent,
			WorkMinutes: 480,
		})
	}
}

// ========== TESTS ==========

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("prorates earnings by payable days", func(t *testing.T) {
		t.Parallel()

		fx := newPayrollFixture()
		fx.assignStructure()
		for d := 1; d <= 25; d++ {
			fx.markPresent(d)
		}
		// 2 paid leave days on top of 25 present: payable 27 of 30
		fx.leaves.requests = []leave.LeaveRequest{{
			EmployeeID: fx.employee.ID,
			CompanyID:  fx.employee.CompanyID,
			IsPaid:     true,
			StartDate:  time.Date(2025, 9, 26, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2025, 9, 27, 0, 0, 0, 0, time.UTC),
			TotalDays:  2,
			Status:     leave.StatusApproved,
		}}

		resp, err := fx.svc.Generate(adminContext(t), payroll.GenerateRequest{
			EmployeeID:  fx.employee.ID,
			PeriodMonth: 9,
			PeriodYear:  2025,
		})
		require.NoError(t, err)

		assert.Equal(t, 30, resp.WorkingDays)
		assert.Equal(t, 25.0, resp.PresentDays)
		assert.Equal(t, 2.0, resp.PaidLeaveDays)
		assert.Equal(t, 27.0, resp.PayableDays)
		assert.Equal(t, 3.0, resp.UnpaidDays)
		assert.Equal(t, 200.0, resp.TotalHours)
		assert.Equal(t, "25200.00", resp.GrossEarnings.StringFixed(2))
		assert.Equal(t, "2400.00", resp.TotalDeductions.StringFixed(2))
		assert.Equal(t, "22800.00", resp.NetPay.StringFixed(2))
		assert.Equal(t, "pending", resp.PaymentStatus)
		assert.Equal(t, "Ana Putri", resp.EmployeeName)
		require.Len(t, resp.Details, 3)
		assert.Equal(t, "18000.00", resp.Details[0].Amount.StringFixed(2))
		assert.Equal(t, "7200.00", resp.Details[1].Amount.StringFixed(2))
		assert.Equal(t, "2400.00", resp.Details[2].Amount.StringFixed(2))
	})

	t.Run("no salary structure writes nothing", func(t *testing.T) {
		t.Parallel()

		fx := newPayrollFixture()
		fx.markPresent(1, 2, 3)

		_, err := fx.svc.Generate(adminContext(t), payroll.GenerateRequest{
			EmployeeID:  fx.employee.ID,
			PeriodMonth: 9,
			PeriodYear:  2025,
		})
		assert.ErrorIs(t, err, payroll.ErrNoSalaryStructure)
		assert.Empty(t, fx.repo.records)
		assert.Empty(t, fx.repo.details)
	})

	t.Run("duplicate period is rejected", func(t *testing.T) {
		t.Parallel()

		fx := newPayrollFixture()
		fx.assignStructure()
		fx.markPresent(1)

		req := payroll.GenerateRequest{EmployeeID: fx.employee.ID, PeriodMonth: 9, PeriodYear: 2025}
		_, err := fx.svc.Generate(adminContext(t), req)
		require.NoError(t, err)

		_, err = fx.svc.Generate(adminContext(t), req)
		assert.ErrorIs(t, err, payroll.ErrPayrollRecordAlreadyExists)
	})

	t.Run("unknown employee", func(t *testing.T) {
		t.Parallel()

		fx := newPayrollFixture()
		_, err := fx.svc.Generate(adminContext(t), payroll.GenerateRequest{
			EmployeeID:  "emp-missing",
			PeriodMonth: 9,
			PeriodYear:  2025,
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("invalid period", func(t *testing.T) {
		t.Parallel()

		fx := newPayrollFixture()
		_, err := fx.svc.Generate(adminContext(t), payroll.GenerateRequest{
			EmployeeID:  fx.employee.ID,
			PeriodMonth: 13,
			PeriodYear:  2025,
		})
		assert.Error(t, err)
	})
}

func TestAssignComponent(t *testing.T) {
	t.Parallel()

	t.Run("verifies employee and component exist", func(t *testing.T) {
		t.Parallel()

		fx := newPayrollFixture()
		fx.repo.components["c-basic"] = payroll.SalaryComponent{
			ID: "c-basic", CompanyID: "company-1", Name: "Basic", Type: payroll.ComponentEarning, IsActive: true,
		}

		resp, err := fx.svc.AssignComponent(adminContext(t), payroll.AssignComponentRequest{
			EmployeeID:  fx.employee.ID,
			ComponentID: "c-basic",
			Amount:      decimal.NewFromInt(20000),
		})
		require.NoError(t, err)
		assert.Equal(t, "Basic", resp.ComponentName)
		assert.True(t, resp.IsActive)
	})

	t.Run("unknown employee", func(t *testing.T) {
		t.Parallel()

		fx := newPayrollFixture()
		_, err := fx.svc.AssignComponent(adminContext(t), payroll.AssignComponentRequest{
			EmployeeID:  "emp-missing",
			ComponentID: "c-basic",
			Amount:      decimal.NewFromInt(100),
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("unknown component", func(t *testing.T) {
		t.Parallel()

		fx := newPayrollFixture()
		_, err := fx.svc.AssignComponent(adminContext(t), payroll.AssignComponentRequest{
			EmployeeID:  fx.employee.ID,
			ComponentID: "c-missing",
			Amount:      decimal.NewFromInt(100),
		})
		assert.ErrorIs(t, err, payroll.ErrComponentNotFound)
	})
}

func TestCreateComponent(t *testing.T) {
	t.Parallel()

	t.Run("duplicate name within company", func(t *testing.T) {
		t.Parallel()

		fx := newPayrollFixture()
		req := payroll.CreateComponentRequest{Name: "Basic", Type: "earning"}

		_, err := fx.svc.CreateComponent(adminContext(t), req)
		require.NoError(t, err)

		_, err = fx.svc.CreateComponent(adminContext(t), req)
		assert.ErrorIs(t, err, payroll.ErrComponentNameExists)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		t.Parallel()

		fx := newPayrollFixture()
		_, err := fx.svc.CreateComponent(adminContext(t), payroll.CreateComponentRequest{Name: "Bonus", Type: "reward"})
		assert.Error(t, err)
	})
}
