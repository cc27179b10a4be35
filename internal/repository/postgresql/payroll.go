package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/workbridge/hrms-backend-go/internal/domain/payroll"
	"github.com/workbridge/hrms-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== COMPONENTS ==========

// CreateComponent implements payroll.PayrollRepository.
func (r *payrollRepository) CreateComponent(ctx context.Context, c payroll.SalaryComponent) (payroll.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_components (company_id, name, type, is_taxable, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.CompanyID, c.Name, c.Type, c.IsTaxable, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uq_salary_components_company_name") {
			return payroll.SalaryComponent{}, payroll.ErrComponentNameExists
		}
		return payroll.SalaryComponent{}, fmt.Errorf("failed to create salary component: %w", err)
	}

	return c, nil
}

// GetComponent implements payroll.PayrollRepository.
func (r *payrollRepository) GetComponent(ctx context.Context, id, companyID string) (payroll.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, type, is_taxable, is_active, created_at, updated_at
		FROM salary_components
		WHERE id = $1 AND company_id = $2
	`

	var c payroll.SalaryComponent
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Type, &c.IsTaxable, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.SalaryComponent{}, payroll.ErrComponentNotFound
		}
		return payroll.SalaryComponent{}, fmt.Errorf("failed to get salary component: %w", err)
	}

	return c, nil
}

// ListComponents implements payroll.PayrollRepository.
func (r *payrollRepository) ListComponents(ctx context.Context, companyID string, activeOnly bool) ([]payroll.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, type, is_taxable, is_active, created_at, updated_at
		FROM salary_components
		WHERE company_id = $1
	`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary components: %w", err)
	}
	defer rows.Close()

	var components []payroll.SalaryComponent
	for rows.Next() {
		var c payroll.SalaryComponent
		if err := rows.Scan(
			&c.ID, &c.CompanyID, &c.Name, &c.Type, &c.IsTaxable, &c.IsActive,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary component: %w", err)
		}
		components = append(components, c)
	}

	return components, rows.Err()
}

// ========== EMPLOYEE COMPONENTS ==========

// AssignComponent implements payroll.PayrollRepository.
func (r *payrollRepository) AssignComponent(ctx context.Context, ec payroll.EmployeeSalaryComponent) (payroll.EmployeeSalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_salary_components (employee_id, component_id, amount, is_active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT uq_employee_salary_components_employee_component
		DO UPDATE SET amount = EXCLUDED.amount, is_active = EXCLUDED.is_active, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ec.EmployeeID, ec.ComponentID, ec.Amount, ec.IsActive,
	).Scan(&ec.ID, &ec.CreatedAt, &ec.UpdatedAt)
	if err != nil {
		return payroll.EmployeeSalaryComponent{}, fmt.Errorf("failed to assign salary component: %w", err)
	}

	return ec, nil
}

// ListEmployeeComponents implements payroll.PayrollRepository.
func (r *payrollRepository) ListEmployeeComponents(ctx context.Context, employeeID string, activeOnly bool) ([]payroll.EmployeeSalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ec.id, ec.employee_id, ec.component_id, sc.name, sc.type,
		       ec.amount, ec.is_active, ec.created_at, ec.updated_at
		FROM employee_salary_components ec
		JOIN salary_components sc ON sc.id = ec.component_id
		WHERE ec.employee_id = $1
	`
	if activeOnly {
		query += ` AND ec.is_active = TRUE AND sc.is_active = TRUE`
	}
	query += ` ORDER BY sc.type, sc.name`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee salary components: %w", err)
	}
	defer rows.Close()

	var components []payroll.EmployeeSalaryComponent
	for rows.Next() {
		var ec payroll.EmployeeSalaryComponent
		if err := rows.Scan(
			&ec.ID, &ec.EmployeeID, &ec.ComponentID, &ec.ComponentName, &ec.ComponentType,
			&ec.Amount, &ec.IsActive, &ec.CreatedAt, &ec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee salary component: %w", err)
		}
		components = append(components, ec)
	}

	return components, rows.Err()
}

// ========== RECORDS ==========

// CreateRecord implements payroll.PayrollRepository.
func (r *payrollRepository) CreateRecord(ctx context.Context, rec payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			company_id, employee_id, period_month, period_year,
			working_days, present_days, paid_leave_days, unpaid_days, payable_days, total_hours,
			gross_earnings, total_deductions, net_pay,
			payment_status, payment_method, remarks, generated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.CompanyID, rec.EmployeeID, rec.PeriodMonth, rec.PeriodYear,
		rec.WorkingDays, rec.PresentDays, rec.PaidLeaveDays, rec.UnpaidDays, rec.PayableDays, rec.TotalHours,
		rec.GrossEarnings, rec.TotalDeductions, rec.NetPay,
		rec.PaymentStatus, rec.PaymentMethod, rec.Remarks, rec.GeneratedBy,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uq_payroll_records_company_employee_period") {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return rec, nil
}

// CreateDetail implements payroll.PayrollRepository.
func (r *payrollRepository) CreateDetail(ctx context.Context, d payroll.PayrollDetail) (payroll.PayrollDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_details (payroll_record_id, component_id, component_name, component_type, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		d.PayrollRecordID, d.ComponentID, d.ComponentName, d.ComponentType, d.Amount,
	).Scan(&d.ID)
	if err != nil {
		return payroll.PayrollDetail{}, fmt.Errorf("failed to create payroll detail: %w", err)
	}

	return d, nil
}

// GetRecordByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetRecordByID(ctx context.Context, id, companyID string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pr.id, pr.company_id, pr.employee_id, e.name, e.code,
		       pr.period_month, pr.period_year,
		       pr.working_days, pr.present_days, pr.paid_leave_days, pr.unpaid_days, pr.payable_days, pr.total_hours,
		       pr.gross_earnings, pr.total_deductions, pr.net_pay,
		       pr.payment_status, pr.payment_method, pr.remarks, pr.generated_by,
		       pr.created_at, pr.updated_at
		FROM payroll_records pr
		JOIN employees e ON e.id = pr.employee_id
		WHERE pr.id = $1 AND pr.company_id = $2
	`

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&rec.ID, &rec.CompanyID, &rec.EmployeeID, &rec.EmployeeName, &rec.EmployeeCode,
		&rec.PeriodMonth, &rec.PeriodYear,
		&rec.WorkingDays, &rec.PresentDays, &rec.PaidLeaveDays, &rec.UnpaidDays, &rec.PayableDays, &rec.TotalHours,
		&rec.GrossEarnings, &rec.TotalDeductions, &rec.NetPay,
		&rec.PaymentStatus, &rec.PaymentMethod, &rec.Remarks, &rec.GeneratedBy,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

// ListDetailsByRecord implements payroll.PayrollRepository.
func (r *payrollRepository) ListDetailsByRecord(ctx context.Context, recordID string) ([]payroll.PayrollDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payroll_record_id, component_id, component_name, component_type, amount
		FROM payroll_details
		WHERE payroll_record_id = $1
		ORDER BY component_type, component_name
	`

	rows, err := q.Query(ctx, query, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll details: %w", err)
	}
	defer rows.Close()

	var details []payroll.PayrollDetail
	for rows.Next() {
		var d payroll.PayrollDetail
		if err := rows.Scan(
			&d.ID, &d.PayrollRecordID, &d.ComponentID, &d.ComponentName, &d.ComponentType, &d.Amount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll detail: %w", err)
		}
		details = append(details, d)
	}

	return details, rows.Err()
}

// ListRecordsByPeriod implements payroll.PayrollRepository.
func (r *payrollRepository) ListRecordsByPeriod(ctx context.Context, companyID string, month, year int) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pr.id, pr.company_id, pr.employee_id, e.name, e.code,
		       pr.period_month, pr.period_year,
		       pr.working_days, pr.present_days, pr.paid_leave_days, pr.unpaid_days, pr.payable_days, pr.total_hours,
		       pr.gross_earnings, pr.total_deductions, pr.net_pay,
		       pr.payment_status, pr.payment_method, pr.remarks, pr.generated_by,
		       pr.created_at, pr.updated_at
		FROM payroll_records pr
		JOIN employees e ON e.id = pr.employee_id
		WHERE pr.company_id = $1 AND pr.period_month = $2 AND pr.period_year = $3
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, companyID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var rec payroll.PayrollRecord
		if err := rows.Scan(
			&rec.ID, &rec.CompanyID, &rec.EmployeeID, &rec.EmployeeName, &rec.EmployeeCode,
			&rec.PeriodMonth, &rec.PeriodYear,
			&rec.WorkingDays, &rec.PresentDays, &rec.PaidLeaveDays, &rec.UnpaidDays, &rec.PayableDays, &rec.TotalHours,
			&rec.GrossEarnings, &rec.TotalDeductions, &rec.NetPay,
			&rec.PaymentStatus, &rec.PaymentMethod, &rec.Remarks, &rec.GeneratedBy,
			&rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
