package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Employee struct {
	ID          string
	CompanyID   string
	Name        string
	Code        string
	BasicSalary decimal.NullDecimal
	HRA         decimal.NullDecimal
	Status      Status
	JoinDate    time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
