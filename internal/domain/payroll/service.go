package payroll

import "context"

type PayrollService interface {
	// Components
	CreateComponent(ctx context.Context, req CreateComponentRequest) (ComponentResponse, error)
	ListComponents(ctx context.Context, activeOnly bool) ([]ComponentResponse, error)

	// Employee components
	AssignComponent(ctx context.Context, req AssignComponentRequest) (EmployeeComponentResponse, error)
	ListEmployeeComponents(ctx context.Context, employeeID string) ([]EmployeeComponentResponse, error)

	// Records
	Generate(ctx context.Context, req GenerateRequest) (PayrollRecordResponse, error)
	GetRecord(ctx context.Context, id string) (PayrollRecordResponse, error)
	ListRecords(ctx context.Context, filter ListRecordsFilter) ([]PayrollRecordResponse, error)
	GeneratePayslipPDF(ctx context.Context, recordID string) ([]byte, error)
}
