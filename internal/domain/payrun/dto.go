package payrun

import (
	"github.com/shopspring/decimal"
	"github.com/workbridge/hrms-backend-go/internal/pkg/validator"
)

type RunRequest struct {
	PeriodMonth int `json:"period_month"`
	PeriodYear  int `json:"period_year"`
}

func (r *RunRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if r.PeriodYear < 2000 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	valid := []string{string(StatusPending), string(StatusDone), string(StatusValidated)}
	if !validator.IsInSlice(r.Status, valid) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of pending, done, validated"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSettingsRequest struct {
	PFRate         *decimal.Decimal `json:"pf_rate,omitempty"`
	FixedTaxAmount *decimal.Decimal `json:"fixed_tax_amount,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PFRate != nil && (r.PFRate.IsNegative() || r.PFRate.GreaterThan(decimal.NewFromInt(1))) {
		errs = append(errs, validator.ValidationError{Field: "pf_rate", Message: "must be between 0 and 1"})
	}
	if r.FixedTaxAmount != nil && r.FixedTaxAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "fixed_tax_amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SettingsResponse struct {
	ID             string          `json:"id,omitempty"`
	CompanyID      string          `json:"company_id"`
	PFRate         decimal.Decimal `json:"pf_rate"`
	FixedTaxAmount decimal.Decimal `json:"fixed_tax_amount"`
}

type PayslipResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	EmployeeCode    string          `json:"employee_code"`
	WorkingDays     int             `json:"working_days"`
	PresentDays     float64         `json:"present_days"`
	PaidLeaveDays   float64         `json:"paid_leave_days"`
	UnpaidDays      float64         `json:"unpaid_days"`
	EarnedBasic     decimal.Decimal `json:"earned_basic"`
	EarnedHRA       decimal.Decimal `json:"earned_hra"`
	GrossEarnings   decimal.Decimal `json:"gross_earnings"`
	PFDeduction     decimal.Decimal `json:"pf_deduction"`
	TaxDeduction    decimal.Decimal `json:"tax_deduction"`
	UnpaidDeduction decimal.Decimal `json:"unpaid_deduction"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
}

type PayrunResponse struct {
	ID             string            `json:"id"`
	PeriodMonth    int               `json:"period_month"`
	PeriodYear     int               `json:"period_year"`
	TotalEmployees int               `json:"total_employees"`
	TotalCost      decimal.Decimal   `json:"total_cost"`
	Status         string            `json:"status"`
	Payslips       []PayslipResponse `json:"payslips,omitempty"`
}
