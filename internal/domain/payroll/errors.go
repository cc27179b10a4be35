package payroll

import "errors"

var (
	ErrComponentNotFound          = errors.New("salary component not found")
	ErrComponentNameExists        = errors.New("salary component name already exists")
	ErrNoSalaryStructure          = errors.New("employee has no active salary structure")
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record already exists for this period")
)
