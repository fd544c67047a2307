package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetActiveByBranchID returns every employee currently assigned to the
	// branch with employment_status = active.
	GetActiveByBranchID(ctx context.Context, branchID string) ([]Employee, error)
	List(ctx context.Context, branchID *string, activeOnly bool) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error
}
