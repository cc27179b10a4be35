package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type ComponentType string

const (
	ComponentEarning   ComponentType = "earning"
	ComponentDeduction ComponentType = "deduction"
)

// SalaryComponent is a company-level catalog entry (e.g. Basic, HRA, PF).
type SalaryComponent struct {
	ID        string
	CompanyID string
	Name      string
	Type      ComponentType
	IsTaxable bool
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeeSalaryComponent assigns a monthly amount of a catalog component to
// an employee. The amount is the full-attendance value; earnings are prorated
// at generation time, deductions are not.
type EmployeeSalaryComponent struct {
	ID            string
	EmployeeID    string
	ComponentID   string
	ComponentName string
	ComponentType ComponentType
	Amount        decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// PayrollRecord is the per-employee, per-period header. One record per
// (company, employee, month, year).
type PayrollRecord struct {
	ID              string
	CompanyID       string
	EmployeeID      string
	EmployeeName    string
	EmployeeCode    string
	PeriodMonth     int
	PeriodYear      int
	WorkingDays     int
	PresentDays     float64
	PaidLeaveDays   float64
	UnpaidDays      float64
	PayableDays     float64
	TotalHours      float64
	GrossEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	PaymentStatus   PaymentStatus
	PaymentMethod   *string
	Remarks         *string
	GeneratedBy     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PayrollDetail is one component line of a record. Earning lines sum to the
// header gross, deduction lines to the header total deductions.
type PayrollDetail struct {
	ID              string
	PayrollRecordID string
	ComponentID     string
	ComponentName   string
	ComponentType   ComponentType
	Amount          decimal.Decimal
}

// AttendanceSummary is the derived per-period aggregation of session rows.
// Computed on read, never stored.
type AttendanceSummary struct {
	PresentDays float64
	TotalHours  float64
}
