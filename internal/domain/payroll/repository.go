package payroll

import "context"

type PayrollRepository interface {
	// Components
	CreateComponent(ctx context.Context, c SalaryComponent) (SalaryComponent, error)
	GetComponent(ctx context.Context, id, companyID string) (SalaryComponent, error)
	ListComponents(ctx context.Context, companyID string, activeOnly bool) ([]SalaryComponent, error)

	// Employee components
	AssignComponent(ctx context.Context, ec EmployeeSalaryComponent) (EmployeeSalaryComponent, error)
	ListEmployeeComponents(ctx context.Context, employeeID string, activeOnly bool) ([]EmployeeSalaryComponent, error)

	// Records. CreateRecord returns ErrPayrollRecordAlreadyExists when a
	// record for the (company, employee, period) key is already present.
	CreateRecord(ctx context.Context, rec PayrollRecord) (PayrollRecord, error)
	CreateDetail(ctx context.Context, d PayrollDetail) (PayrollDetail, error)
	GetRecordByID(ctx context.Context, id, companyID string) (PayrollRecord, error)
	ListDetailsByRecord(ctx context.Context, recordID string) ([]PayrollDetail, error)
	ListRecordsByPeriod(ctx context.Context, companyID string, month, year int) ([]PayrollRecord, error)
}
