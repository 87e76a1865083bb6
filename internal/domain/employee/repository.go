package employee

import "context"

// EmployeeRepository reads the externally-owned employee directory.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	ListByRole(ctx context.Context, role Role) ([]Employee, error)
}
