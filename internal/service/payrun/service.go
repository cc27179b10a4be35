package payrun

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/workbridge/hrms-backend-go/internal/domain/leave"
	"github.com/workbridge/hrms-backend-go/internal/domain/payrun"
	"github.com/workbridge/hrms-backend-go/internal/pkg/database"
	payrollcalc "github.com/workbridge/hrms-backend-go/internal/service/payroll"
)

var (
	defaultPFRate         = decimal.NewFromFloat(0.12)
	defaultFixedTaxAmount = decimal.NewFromInt(200)
)

type PayrunServiceImpl struct {
	tx         database.TxManager
	payrunRepo payrun.PayrunRepository
	leaveRepo  leave.LeaveRepository
}

func NewPayrunService(
	tx database.TxManager,
	payrunRepo payrun.PayrunRepository,
	leaveRepo leave.LeaveRepository,
) payrun.PayrunService {
	return &PayrunServiceImpl{
		tx:         tx,
		payrunRepo: payrunRepo,
		leaveRepo:  leaveRepo,
	}
}

// Helper to get company_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// Run implements payrun.PayrunService. The whole batch runs in one
// transaction: a re-run for an existing period replaces its payslips, and a
// mid-batch failure leaves the previous state untouched.
func (s *PayrunServiceImpl) Run(ctx context.Context, req payrun.RunRequest) (payrun.PayrunResponse, error) {
	if err := req.Validate(); err != nil {
		return payrun.PayrunResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrun.PayrunResponse{}, err
	}

	periodStart, periodEnd := payrollcalc.PeriodBounds(req.PeriodMonth, req.PeriodYear)
	workingDays := payrollcalc.WorkingDays(req.PeriodMonth, req.PeriodYear)

	var resp payrun.PayrunResponse
	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		rows, err := s.payrunRepo.ListEmployeePeriodDays(txCtx, companyID, periodStart, periodEnd)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return payrun.ErrNoAttendanceForPeriod
		}

		settings, err := s.settingsOrDefaults(txCtx, companyID)
		if err != nil {
			return err
		}

		run, err := s.payrunRepo.GetByPeriod(txCtx, companyID, req.PeriodMonth, req.PeriodYear)
		switch {
		case err == nil:
			// Regeneration: replace the previous payslips
			if err := s.payrunRepo.DeletePayslipsByPayrun(txCtx, run.ID); err != nil {
				return err
			}
		case errors.Is(err, payrun.ErrPayrunNotFound):
			run, err = s.payrunRepo.Create(txCtx, payrun.Payrun{
				CompanyID:   companyID,
				PeriodMonth: req.PeriodMonth,
				PeriodYear:  req.PeriodYear,
				TotalCost:   decimal.Zero,
				Status:      payrun.StatusPending,
			})
			if err != nil {
				return err
			}
		default:
			return err
		}

		totalCost := decimal.Zero
		var slips []payrun.Payslip
		for _, row := range rows {
			// Employees without a configured basic salary are skipped
			if !row.BasicSalary.Valid {
				continue
			}
			hra := decimal.Zero
			if row.HRA.Valid {
				hra = row.HRA.Decimal
			}

			leaves, err := s.leaveRepo.ListApprovedOverlapping(txCtx, companyID, row.EmployeeID, periodStart, periodEnd)
			if err != nil {
				return err
			}
			paidLeaveDays, unpaidLeaveDays := payrollcalc.AggregateLeave(leaves, periodStart, periodEnd)

			slip := ComputePayslip(row.BasicSalary.Decimal, hra, workingDays, row.PresentDays, paidLeaveDays, unpaidLeaveDays, settings)
			slip.PayrunID = run.ID
			slip.EmployeeID = row.EmployeeID
			slip.PeriodMonth = req.PeriodMonth
			slip.PeriodYear = req.PeriodYear

			saved, err := s.payrunRepo.UpsertPayslip(txCtx, slip)
			if err != nil {
				return err
			}
			saved.EmployeeName = row.EmployeeName
			saved.EmployeeCode = row.EmployeeCode

			slips = append(slips, saved)
			totalCost = totalCost.Add(saved.NetPay)
		}

		if err := s.payrunRepo.UpdateTotals(txCtx, run.ID, len(slips), totalCost, payrun.StatusDone); err != nil {
			return err
		}

		run.TotalEmployees = len(slips)
		run.TotalCost = totalCost
		run.Status = payrun.StatusDone
		resp = toPayrunResponse(run, slips)
		return nil
	})
	if err != nil {
		return payrun.PayrunResponse{}, err
	}

	return resp, nil
}

// Get implements payrun.PayrunService.
func (s *PayrunServiceImpl) Get(ctx context.Context, id string) (payrun.PayrunResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrun.PayrunResponse{}, err
	}

	run, err := s.payrunRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return payrun.PayrunResponse{}, err
	}

	slips, err := s.payrunRepo.ListPayslipsByPayrun(ctx, run.ID)
	if err != nil {
		return payrun.PayrunResponse{}, err
	}

	return toPayrunResponse(run, slips), nil
}

// UpdateStatus implements payrun.PayrunService. Only pending→done and
// done→validated are accepted.
func (s *PayrunServiceImpl) UpdateStatus(ctx context.Context, id string, req payrun.UpdateStatusRequest) (payrun.PayrunResponse, error) {
	if err := req.Validate(); err != nil {
		return payrun.PayrunResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrun.PayrunResponse{}, err
	}

	run, err := s.payrunRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return payrun.PayrunResponse{}, err
	}

	target := payrun.Status(req.Status)
	if !run.Status.CanTransitionTo(target) {
		return payrun.PayrunResponse{}, payrun.ErrInvalidStatusTransition
	}

	if err := s.payrunRepo.UpdateStatus(ctx, run.ID, target); err != nil {
		return payrun.PayrunResponse{}, err
	}

	run.Status = target
	return toPayrunResponse(run, nil), nil
}

// GenerateRegisterXLSX implements payrun.PayrunService.
func (s *PayrunServiceImpl) GenerateRegisterXLSX(ctx context.Context, id string) ([]byte, string, error) {
	resp, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	return buildRegisterXLSX(resp)
}

// GetSettings implements payrun.PayrunService.
func (s *PayrunServiceImpl) GetSettings(ctx context.Context) (payrun.SettingsResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrun.SettingsResponse{}, err
	}

	settings, err := s.settingsOrDefaults(ctx, companyID)
	if err != nil {
		return payrun.SettingsResponse{}, err
	}

	return toSettingsResponse(settings), nil
}

// UpdateSettings implements payrun.PayrunService.
func (s *PayrunServiceImpl) UpdateSettings(ctx context.Context, req payrun.UpdateSettingsRequest) (payrun.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payrun.SettingsResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrun.SettingsResponse{}, err
	}

	current, err := s.settingsOrDefaults(ctx, companyID)
	if err != nil {
		return payrun.SettingsResponse{}, err
	}

	if req.PFRate != nil {
		current.PFRate = *req.PFRate
	}
	if req.FixedTaxAmount != nil {
		current.FixedTaxAmount = *req.FixedTaxAmount
	}

	updated, err := s.payrunRepo.UpsertSettings(ctx, current)
	if err != nil {
		return payrun.SettingsResponse{}, err
	}

	return toSettingsResponse(updated), nil
}

func (s *PayrunServiceImpl) settingsOrDefaults(ctx context.Context, companyID string) (payrun.PayrunSettings, error) {
	settings, err := s.payrunRepo.GetSettings(ctx, companyID)
	if err != nil {
		if errors.Is(err, payrun.ErrPayrunSettingsNotFound) {
			return payrun.PayrunSettings{
				CompanyID:      companyID,
				PFRate:         defaultPFRate,
				FixedTaxAmount: defaultFixedTaxAmount,
			}, nil
		}
		return payrun.PayrunSettings{}, err
	}
	return settings, nil
}

func toSettingsResponse(s payrun.PayrunSettings) payrun.SettingsResponse {
	return payrun.SettingsResponse{
		ID:             s.ID,
		CompanyID:      s.CompanyID,
		PFRate:         s.PFRate,
		FixedTaxAmount: s.FixedTaxAmount,
	}
}

func toPayrunResponse(run payrun.Payrun, slips []payrun.Payslip) payrun.PayrunResponse {
	resp := payrun.PayrunResponse{
		ID:             run.ID,
		PeriodMonth:    run.PeriodMonth,
		PeriodYear:     run.PeriodYear,
		TotalEmployees: run.TotalEmployees,
		TotalCost:      run.TotalCost,
		Status:         string(run.Status),
	}
	for _, slip := range slips {
		resp.Payslips = append(resp.Payslips, payrun.PayslipResponse{
			ID:              slip.ID,
			EmployeeID:      slip.EmployeeID,
			EmployeeName:    slip.EmployeeName,
			EmployeeCode:    slip.EmployeeCode,
			WorkingDays:     slip.WorkingDays,
			PresentDays:     slip.PresentDays,
			PaidLeaveDays:   slip.PaidLeaveDays,
			UnpaidDays:      slip.UnpaidDays,
			EarnedBasic:     slip.EarnedBasic,
			EarnedHRA:       slip.EarnedHRA,
			GrossEarnings:   slip.GrossEarnings,
			PFDeduction:     slip.PFDeduction,
			TaxDeduction:    slip.TaxDeduction,
			UnpaidDeduction: slip.UnpaidDeduction,
			TotalDeductions: slip.TotalDeductions,
			NetPay:          slip.NetPay,
		})
	}
	return resp
}
