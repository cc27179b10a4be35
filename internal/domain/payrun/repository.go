package payrun

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PayrunRepository interface {
	Create(ctx context.Context, p Payrun) (Payrun, error)
	GetByID(ctx context.Context, id, companyID string) (Payrun, error)
	GetByPeriod(ctx context.Context, companyID string, month, year int) (Payrun, error)
	UpdateTotals(ctx context.Context, id string, totalEmployees int, totalCost decimal.Decimal, status Status) error
	UpdateStatus(ctx context.Context, id string, status Status) error

	// Payslips. Upsert overwrites the existing row for (payrun, employee).
	UpsertPayslip(ctx context.Context, slip Payslip) (Payslip, error)
	DeletePayslipsByPayrun(ctx context.Context, payrunID string) error
	ListPayslipsByPayrun(ctx context.Context, payrunID string) ([]Payslip, error)

	// ListEmployeePeriodDays returns one row per active employee that has at
	// least one attendance session dated within [periodStart, periodEnd],
	// with present days already aggregated (one count per day, at the
	// maximum session weight).
	ListEmployeePeriodDays(ctx context.Context, companyID string, periodStart, periodEnd time.Time) ([]EmployeePeriodDays, error)

	// Settings
	GetSettings(ctx context.Context, companyID string) (PayrunSettings, error)
	UpsertSettings(ctx context.Context, s PayrunSettings) (PayrunSettings, error)
}
