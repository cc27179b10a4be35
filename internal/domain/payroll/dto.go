package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/workbridge/hrms-backend-go/internal/pkg/validator"
)

// ========== COMPONENT DTOs ==========

type CreateComponentRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"` // "earning" or "deduction"
	IsTaxable *bool  `json:"is_taxable,omitempty"`
}

func (r *CreateComponentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Type != string(ComponentEarning) && r.Type != string(ComponentDeduction) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'earning' or 'deduction'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ComponentResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	IsTaxable bool   `json:"is_taxable"`
	IsActive  bool   `json:"is_active"`
}

// ========== EMPLOYEE COMPONENT DTOs ==========

type AssignComponentRequest struct {
	EmployeeID  string          `json:"-"`
	ComponentID string          `json:"component_id"`
	Amount      decimal.Decimal `json:"amount"`
}

func (r *AssignComponentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ComponentID == "" {
		errs = append(errs, validator.ValidationError{Field: "component_id", Message: "is required"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeComponentResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	ComponentID   string          `json:"component_id"`
	ComponentName string          `json:"component_name"`
	ComponentType string          `json:"component_type"`
	Amount        decimal.Decimal `json:"amount"`
	IsActive      bool            `json:"is_active"`
}

// ========== PAYROLL RECORD DTOs ==========

type GenerateRequest struct {
	EmployeeID    string  `json:"employee_id"`
	PeriodMonth   int     `json:"period_month"`
	PeriodYear    int     `json:"period_year"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	Remarks       *string `json:"remarks,omitempty"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
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

type PayrollDetailResponse struct {
	ComponentID   string          `json:"component_id"`
	ComponentName string          `json:"component_name"`
	ComponentType string          `json:"component_type"`
	Amount        decimal.Decimal `json:"amount"`
}

type PayrollRecordResponse struct {
	ID              string                  `json:"id"`
	EmployeeID      string                  `json:"employee_id"`
	EmployeeName    string                  `json:"employee_name"`
	EmployeeCode    string                  `json:"employee_code"`
	PeriodMonth     int                     `json:"period_month"`
	PeriodYear      int                     `json:"period_year"`
	WorkingDays     int                     `json:"working_days"`
	PresentDays     float64                 `json:"present_days"`
	PaidLeaveDays   float64                 `json:"paid_leave_days"`
	UnpaidDays      float64                 `json:"unpaid_days"`
	PayableDays     float64                 `json:"payable_days"`
	TotalHours      float64                 `json:"total_hours"`
	GrossEarnings   decimal.Decimal         `json:"gross_earnings"`
	TotalDeductions decimal.Decimal         `json:"total_deductions"`
	NetPay          decimal.Decimal         `json:"net_pay"`
	PaymentStatus   string                  `json:"payment_status"`
	PaymentMethod   *string                 `json:"payment_method,omitempty"`
	Remarks         *string                 `json:"remarks,omitempty"`
	Details         []PayrollDetailResponse `json:"details,omitempty"`
}

type ListRecordsFilter struct {
	PeriodMonth int
	PeriodYear  int
}
