package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	ListActive(ctx context.Context, companyID string) ([]Employee, error)
}
