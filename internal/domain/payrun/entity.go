package payrun

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusDone      Status = "done"
	StatusValidated Status = "validated"
)

// CanTransitionTo reports whether a payrun may move to the target status.
// Only pending→done and done→validated are allowed.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusDone
	case StatusDone:
		return target == StatusValidated
	default:
		return false
	}
}

// Payrun is one whole-organization batch for a period. One payrun per
// (company, month, year); re-running regenerates its payslips.
type Payrun struct {
	ID             string
	CompanyID      string
	PeriodMonth    int
	PeriodYear     int
	TotalEmployees int
	TotalCost      decimal.Decimal
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Payslip is the per-employee output of a payrun, keyed (payrun, employee).
type Payslip struct {
	ID              string
	PayrunID        string
	EmployeeID      string
	EmployeeName    string
	EmployeeCode    string
	PeriodMonth     int
	PeriodYear      int
	WorkingDays     int
	PresentDays     float64
	PaidLeaveDays   float64
	UnpaidDays      float64
	BasicSalary     decimal.Decimal
	HRA             decimal.Decimal
	EarnedBasic     decimal.Decimal
	EarnedHRA       decimal.Decimal
	GrossEarnings   decimal.Decimal
	PFDeduction     decimal.Decimal
	TaxDeduction    decimal.Decimal
	UnpaidDeduction decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PayrunSettings holds the per-company batch formula inputs.
type PayrunSettings struct {
	ID             string
	CompanyID      string
	PFRate         decimal.Decimal
	FixedTaxAmount decimal.Decimal
}

// EmployeePeriodDays is the per-employee aggregation row the batch consumes:
// one row per active employee with at least one session in the period.
type EmployeePeriodDays struct {
	EmployeeID   string
	EmployeeName string
	EmployeeCode string
	BasicSalary  decimal.NullDecimal
	HRA          decimal.NullDecimal
	PresentDays  float64
}
