package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

// Employee is the slice of the externally-owned directory this subsystem
// reads: identity, role and the contracted monthly salary.
type Employee struct {
	ID            string
	FullName      string
	Role          Role
	MonthlySalary decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
