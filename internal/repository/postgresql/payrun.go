package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/workbridge/hrms-backend-go/internal/domain/payrun"
	"github.com/workbridge/hrms-backend-go/internal/pkg/database"
)

type payrunRepository struct {
	db *database.DB
}

func NewPayrunRepository(db *database.DB) payrun.PayrunRepository {
	return &payrunRepository{db: db}
}

// Create implements payrun.PayrunRepository.
func (r *payrunRepository) Create(ctx context.Context, p payrun.Payrun) (payrun.Payrun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payruns (company_id, period_month, period_year, total_employees, total_cost, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.CompanyID, p.PeriodMonth, p.PeriodYear, p.TotalEmployees, p.TotalCost, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return payrun.Payrun{}, fmt.Errorf("failed to create payrun: %w", err)
	}

	return p, nil
}

// GetByID implements payrun.PayrunRepository.
func (r *payrunRepository) GetByID(ctx context.Context, id, companyID string) (payrun.Payrun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, period_month, period_year, total_employees, total_cost, status,
		       created_at, updated_at
		FROM payruns
		WHERE id = $1 AND company_id = $2
	`

	var p payrun.Payrun
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&p.ID, &p.CompanyID, &p.PeriodMonth, &p.PeriodYear,
		&p.TotalEmployees, &p.TotalCost, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrun.Payrun{}, payrun.ErrPayrunNotFound
		}
		return payrun.Payrun{}, fmt.Errorf("failed to get payrun: %w", err)
	}

	return p, nil
}

// GetByPeriod implements payrun.PayrunRepository.
func (r *payrunRepository) GetByPeriod(ctx context.Context, companyID string, month, year int) (payrun.Payrun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, period_month, period_year, total_employees, total_cost, status,
		       created_at, updated_at
		FROM payruns
		WHERE company_id = $1 AND period_month = $2 AND period_year = $3
	`

	var p payrun.Payrun
	err := q.QueryRow(ctx, query, companyID, month, year).Scan(
		&p.ID, &p.CompanyID, &p.PeriodMonth, &p.PeriodYear,
		&p.TotalEmployees, &p.TotalCost, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrun.Payrun{}, payrun.ErrPayrunNotFound
		}
		return payrun.Payrun{}, fmt.Errorf("failed to get payrun by period: %w", err)
	}

	return p, nil
}

// UpdateTotals implements payrun.PayrunRepository.
func (r *payrunRepository) UpdateTotals(ctx context.Context, id string, totalEmployees int, totalCost decimal.Decimal, status payrun.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payruns
		SET total_employees = $2, total_cost = $3, status = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, totalEmployees, totalCost, status)
	if err != nil {
		return fmt.Errorf("failed to update payrun totals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payrun.ErrPayrunNotFound
	}

	return nil
}

// UpdateStatus implements payrun.PayrunRepository.
func (r *payrunRepository) UpdateStatus(ctx context.Context, id string, status payrun.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE payruns SET status = $2, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update payrun status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payrun.ErrPayrunNotFound
	}

	return nil
}

// UpsertPayslip implements payrun.PayrunRepository.
func (r *payrunRepository) UpsertPayslip(ctx context.Context, slip payrun.Payslip) (payrun.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			payrun_id, employee_id, period_month, period_year,
			working_days, present_days, paid_leave_days, unpaid_days,
			basic_salary, hra, earned_basic, earned_hra, gross_earnings,
			pf_deduction, tax_deduction, unpaid_deduction, total_deductions, net_pay
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
		)
		ON CONFLICT ON CONSTRAINT uq_payslips_payrun_employee
		DO UPDATE SET
			period_month = EXCLUDED.period_month,
			period_year = EXCLUDED.period_year,
			working_days = EXCLUDED.working_days,
			present_days = EXCLUDED.present_days,
			paid_leave_days = EXCLUDED.paid_leave_days,
			unpaid_days = EXCLUDED.unpaid_days,
			basic_salary = EXCLUDED.basic_salary,
			hra = EXCLUDED.hra,
			earned_basic = EXCLUDED.earned_basic,
			earned_hra = EXCLUDED.earned_hra,
			gross_earnings = EXCLUDED.gross_earnings,
			pf_deduction = EXCLUDED.pf_deduction,
			tax_deduction = EXCLUDED.tax_deduction,
			unpaid_deduction = EXCLUDED.unpaid_deduction,
			total_deductions = EXCLUDED.total_deductions,
			net_pay = EXCLUDED.net_pay,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		slip.PayrunID, slip.EmployeeID, slip.PeriodMonth, slip.PeriodYear,
		slip.WorkingDays, slip.PresentDays, slip.PaidLeaveDays, slip.UnpaidDays,
		slip.BasicSalary, slip.HRA, slip.EarnedBasic, slip.EarnedHRA, slip.GrossEarnings,
		slip.PFDeduction, slip.TaxDeduction, slip.UnpaidDeduction, slip.TotalDeductions, slip.NetPay,
	).Scan(&slip.ID, &slip.CreatedAt, &slip.UpdatedAt)
	if err != nil {
		return payrun.Payslip{}, fmt.Errorf("failed to upsert payslip: %w", err)
	}

	return slip, nil
}

// DeletePayslipsByPayrun implements payrun.PayrunRepository.
func (r *payrunRepository) DeletePayslipsByPayrun(ctx context.Context, payrunID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM payslips WHERE payrun_id = $1`, payrunID); err != nil {
		return fmt.Errorf("failed to delete payslips: %w", err)
	}

	return nil
}

// ListPayslipsByPayrun implements payrun.PayrunRepository.
func (r *payrunRepository) ListPayslipsByPayrun(ctx context.Context, payrunID string) ([]payrun.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.payrun_id, p.employee_id, e.name, e.code, p.period_month, p.period_year,
		       p.working_days, p.present_days, p.paid_leave_days, p.unpaid_days,
		       p.basic_salary, p.hra, p.earned_basic, p.earned_hra, p.gross_earnings,
		       p.pf_deduction, p.tax_deduction, p.unpaid_deduction, p.total_deductions, p.net_pay,
		       p.created_at, p.updated_at
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.payrun_id = $1
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, payrunID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var slips []payrun.Payslip
	for rows.Next() {
		var s payrun.Payslip
		if err := rows.Scan(
			&s.ID, &s.PayrunID, &s.EmployeeID, &s.EmployeeName, &s.EmployeeCode,
			&s.PeriodMonth, &s.PeriodYear,
			&s.WorkingDays, &s.PresentDays, &s.PaidLeaveDays, &s.UnpaidDays,
			&s.BasicSalary, &s.HRA, &s.EarnedBasic, &s.EarnedHRA, &s.GrossEarnings,
			&s.PFDeduction, &s.TaxDeduction, &s.UnpaidDeduction, &s.TotalDeductions, &s.NetPay,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		slips = append(slips, s)
	}

	return slips, rows.Err()
}

// ListEmployeePeriodDays implements payrun.PayrunRepository.
// A day with several sessions counts once, at the maximum session weight.
func (r *payrunRepository) ListEmployeePeriodDays(ctx context.Context, companyID string, periodStart, periodEnd time.Time) ([]payrun.EmployeePeriodDays, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.name, e.code, e.basic_salary, e.hra, a.present_days
		FROM employees e
		JOIN (
			SELECT employee_id, SUM(day_weight) AS present_days
			FROM (
				SELECT employee_id, date,
				       MAX(CASE status
				           WHEN 'present' THEN 1.0
				           WHEN 'late' THEN 1.0
				           WHEN 'half_day' THEN 0.5
				           ELSE 0.0
				       END) AS day_weight
				FROM attendances
				WHERE company_id = $1 AND date BETWEEN $2 AND $3
				GROUP BY employee_id, date
			) days
			GROUP BY employee_id
		) a ON a.employee_id = e.id
		WHERE e.company_id = $1 AND e.status = 'active'
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, companyID, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee period days: %w", err)
	}
	defer rows.Close()

	var result []payrun.EmployeePeriodDays
	for rows.Next() {
		var row payrun.EmployeePeriodDays
		if err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName, &row.EmployeeCode,
			&row.BasicSalary, &row.HRA, &row.PresentDays,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee period days: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// GetSettings implements payrun.PayrunRepository.
func (r *payrunRepository) GetSettings(ctx context.Context, companyID string) (payrun.PayrunSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, pf_rate, fixed_tax_amount
		FROM payrun_settings
		WHERE company_id = $1
	`

	var s payrun.PayrunSettings
	err := q.QueryRow(ctx, query, companyID).Scan(&s.ID, &s.CompanyID, &s.PFRate, &s.FixedTaxAmount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrun.PayrunSettings{}, payrun.ErrPayrunSettingsNotFound
		}
		return payrun.PayrunSettings{}, fmt.Errorf("failed to get payrun settings: %w", err)
	}

	return s, nil
}

// UpsertSettings implements payrun.PayrunRepository.
func (r *payrunRepository) UpsertSettings(ctx context.Context, s payrun.PayrunSettings) (payrun.PayrunSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrun_settings (company_id, pf_rate, fixed_tax_amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (company_id)
		DO UPDATE SET pf_rate = EXCLUDED.pf_rate, fixed_tax_amount = EXCLUDED.fixed_tax_amount, updated_at = NOW()
		RETURNING id
	`

	err := q.QueryRow(ctx, query, s.CompanyID, s.PFRate, s.FixedTaxAmount).Scan(&s.ID)
	if err != nil {
		return payrun.PayrunSettings{}, fmt.Errorf("failed to upsert payrun settings: %w", err)
	}

	return s, nil
}
