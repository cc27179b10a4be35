package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workbridge/hrms-backend-go/internal/domain/attendance"
	"github.com/workbridge/hrms-backend-go/internal/domain/employee"
	"github.com/workbridge/hrms-backend-go/internal/domain/leave"
	"github.com/workbridge/hrms-backend-go/internal/domain/payroll"
	"github.com/workbridge/hrms-backend-go/internal/pkg/database"
)

type PayrollServiceImpl struct {
	tx             database.TxManager
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
}

func NewPayrollService(
	tx database.TxManager,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		tx:             tx,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
	}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

// ========== COMPONENTS ==========

// CreateComponent implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreateComponent(ctx context.Context, req payroll.CreateComponentRequest) (payroll.ComponentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ComponentResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ComponentResponse{}, err
	}

	isTaxable := false
	if req.IsTaxable != nil {
		isTaxable = *req.IsTaxable
	}

	created, err := s.payrollRepo.CreateComponent(ctx, payroll.SalaryComponent{
		CompanyID: companyID,
		Name:      req.Name,
		Type:      payroll.ComponentType(req.Type),
		IsTaxable: isTaxable,
		IsActive:  true,
	})
	if err != nil {
		return payroll.ComponentResponse{}, err
	}

	return toComponentResponse(created), nil
}

// ListComponents implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListComponents(ctx context.Context, activeOnly bool) ([]payroll.ComponentResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	components, err := s.payrollRepo.ListComponents(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.ComponentResponse, 0, len(components))
	for _, c := range components {
		result = append(result, toComponentResponse(c))
	}

	return result, nil
}

// ========== EMPLOYEE COMPONENTS ==========

// AssignComponent implements payroll.PayrollService.
func (s *PayrollServiceImpl) AssignComponent(ctx context.Context, req payroll.AssignComponentRequest) (payroll.EmployeeComponentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.EmployeeComponentResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.EmployeeComponentResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return payroll.EmployeeComponentResponse{}, err
	}

	component, err := s.payrollRepo.GetComponent(ctx, req.ComponentID, companyID)
	if err != nil {
		return payroll.EmployeeComponentResponse{}, err
	}

	assigned, err := s.payrollRepo.AssignComponent(ctx, payroll.EmployeeSalaryComponent{
		EmployeeID:  req.EmployeeID,
		ComponentID: component.ID,
		Amount:      req.Amount,
		IsActive:    true,
	})
	if err != nil {
		return payroll.EmployeeComponentResponse{}, err
	}

	assigned.ComponentName = component.Name
	assigned.ComponentType = component.Type

	return toEmployeeComponentResponse(assigned), nil
}

// ListEmployeeComponents implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListEmployeeComponents(ctx context.Context, employeeID string) ([]payroll.EmployeeComponentResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID, companyID); err != nil {
		return nil, err
	}

	components, err := s.payrollRepo.ListEmployeeComponents(ctx, employeeID, false)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.EmployeeComponentResponse, 0, len(components))
	for _, ec := range components {
		result = append(result, toEmployeeComponentResponse(ec))
	}

	return result, nil
}

// ========== RECORDS ==========

// Generate implements payroll.PayrollService. The whole generation runs in
// one transaction: any failure leaves no header and no detail rows behind.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GenerateRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	var resp payroll.PayrollRecordResponse
	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		emp, err := s.employeeRepo.GetByID(txCtx, req.EmployeeID, companyID)
		if err != nil {
			return err
		}

		components, err := s.payrollRepo.ListEmployeeComponents(txCtx, emp.ID, true)
		if err != nil {
			return err
		}
		if len(components) == 0 {
			return payroll.ErrNoSalaryStructure
		}

		periodStart, periodEnd := PeriodBounds(req.PeriodMonth, req.PeriodYear)

		sessions, err := s.attendanceRepo.ListByEmployeeAndPeriod(txCtx, companyID, emp.ID, periodStart, periodEnd)
		if err != nil {
			return err
		}
		leaves, err := s.leaveRepo.ListApprovedOverlapping(txCtx, companyID, emp.ID, periodStart, periodEnd)
		if err != nil {
			return err
		}

		attSummary := AggregateAttendance(sessions)
		paidLeaveDays, _ := AggregateLeave(leaves, periodStart, periodEnd)
		workingDays := WorkingDays(req.PeriodMonth, req.PeriodYear)
		payableDays, unpaidDays := PayableDays(attSummary.PresentDays, paidLeaveDays, workingDays)

		details, gross, deductions, net := ProrateComponents(components, payableDays, workingDays)

		rec, err := s.payrollRepo.CreateRecord(txCtx, payroll.PayrollRecord{
			CompanyID:       companyID,
			EmployeeID:      emp.ID,
			PeriodMonth:     req.PeriodMonth,
			PeriodYear:      req.PeriodYear,
			WorkingDays:     workingDays,
			PresentDays:     attSummary.PresentDays,
			PaidLeaveDays:   paidLeaveDays,
			UnpaidDays:      unpaidDays,
			PayableDays:     payableDays,
			TotalHours:      attSummary.TotalHours,
			GrossEarnings:   gross,
			TotalDeductions: deductions,
			NetPay:          net,
			PaymentStatus:   payroll.PaymentPending,
			PaymentMethod:   req.PaymentMethod,
			Remarks:         req.Remarks,
			GeneratedBy:     userID,
		})
		if err != nil {
			return err
		}

		for i := range details {
			details[i].PayrollRecordID = rec.ID
			if details[i], err = s.payrollRepo.CreateDetail(txCtx, details[i]); err != nil {
				return err
			}
		}

		rec.EmployeeName = emp.Name
		rec.EmployeeCode = emp.Code
		resp = toRecordResponse(rec, details)
		return nil
	})
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return resp, nil
}

// GetRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	rec, err := s.payrollRepo.GetRecordByID(ctx, id, companyID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	details, err := s.payrollRepo.ListDetailsByRecord(ctx, rec.ID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return toRecordResponse(rec, details), nil
}

// ListRecords implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.ListRecordsFilter) ([]payroll.PayrollRecordResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if filter.PeriodMonth < 1 || filter.PeriodMonth > 12 {
		now := time.Now()
		filter.PeriodMonth = int(now.Month())
		filter.PeriodYear = now.Year()
	}

	records, err := s.payrollRepo.ListRecordsByPeriod(ctx, companyID, filter.PeriodMonth, filter.PeriodYear)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, toRecordResponse(rec, nil))
	}

	return result, nil
}

// GeneratePayslipPDF implements payroll.PayrollService.
func (s *PayrollServiceImpl) GeneratePayslipPDF(ctx context.Context, recordID string) ([]byte, error) {
	rec, err := s.GetRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}

	return buildPayslipPDF(rec)
}

func toComponentResponse(c payroll.SalaryComponent) payroll.ComponentResponse {
	return payroll.ComponentResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		Type:      string(c.Type),
		IsTaxable: c.IsTaxable,
		IsActive:  c.IsActive,
	}
}

func toEmployeeComponentResponse(ec payroll.EmployeeSalaryComponent) payroll.EmployeeComponentResponse {
	return payroll.EmployeeComponentResponse{
		ID:            ec.ID,
		EmployeeID:    ec.EmployeeID,
		ComponentID:   ec.ComponentID,
		ComponentName: ec.ComponentName,
		ComponentType: string(ec.ComponentType),
		Amount:        ec.Amount,
		IsActive:      ec.IsActive,
	}
}

func toRecordResponse(rec payroll.PayrollRecord, details []payroll.PayrollDetail) payroll.PayrollRecordResponse {
	resp := payroll.PayrollRecordResponse{
		ID:              rec.ID,
		EmployeeID:      rec.EmployeeID,
		EmployeeName:    rec.EmployeeName,
		EmployeeCode:    rec.EmployeeCode,
		PeriodMonth:     rec.PeriodMonth,
		PeriodYear:      rec.PeriodYear,
		WorkingDays:     rec.WorkingDays,
		PresentDays:     rec.PresentDays,
		PaidLeaveDays:   rec.PaidLeaveDays,
		UnpaidDays:      rec.UnpaidDays,
		PayableDays:     rec.PayableDays,
		TotalHours:      rec.TotalHours,
		GrossEarnings:   rec.GrossEarnings,
		TotalDeductions: rec.TotalDeductions,
		NetPay:          rec.NetPay,
		PaymentStatus:   string(rec.PaymentStatus),
		PaymentMethod:   rec.PaymentMethod,
		Remarks:         rec.Remarks,
	}
	for _, d := range details {
		resp.Details = append(resp.Details, payroll.PayrollDetailResponse{
			ComponentID:   d.ComponentID,
			ComponentName: d.ComponentName,
			ComponentType: string(d.ComponentType),
			Amount:        d.Amount,
		})
	}
	return resp
}
