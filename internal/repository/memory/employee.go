package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/glowpoint/salon-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]employee.Employee)}
}

func (r *EmployeeRepository) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	emp.ID = uuid.NewString()
	emp.EmploymentStatus = employee.EmploymentStatusActive
	emp.CreatedAt = now
	emp.UpdatedAt = now
	r.employees[emp.ID] = emp

	return emp, nil
}

func (r *EmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *EmployeeRepository) GetActiveByBranchID(_ context.Context, branchID string) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []employee.Employee
	for _, emp := range r.employees {
		if emp.BranchID == branchID && emp.EmploymentStatus == employee.EmploymentStatusActive {
			result = append(result, emp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].FullName < result[j].FullName })

	return result, nil
}

func (r *EmployeeRepository) List(_ context.Context, branchID *string, activeOnly bool) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []employee.Employee
	for _, emp := range r.employees {
		if branchID != nil && emp.BranchID != *branchID {
			continue
		}
		if activeOnly && emp.EmploymentStatus != employee.EmploymentStatusActive {
			continue
		}
		result = append(result, emp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].FullName < result[j].FullName })

	return result, nil
}

func (r *EmployeeRepository) Update(_ context.Context, req employee.UpdateEmployeeRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	emp, ok := r.employees[req.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}

	if req.BranchID != nil {
		emp.BranchID = *req.BranchID
	}
	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.Position != nil {
		emp.Position = employee.Position(*req.Position)
	}
	if req.EmploymentStatus != nil {
		emp.EmploymentStatus = employee.EmploymentStatus(*req.EmploymentStatus)
	}
	if req.ResignationDate != nil {
		if date, err := time.Parse("2006-01-02", *req.ResignationDate); err == nil {
			emp.ResignationDate = &date
		}
	}
	emp.UpdatedAt = time.Now()
	r.employees[emp.ID] = emp

	return nil
}

func (r *EmployeeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.employees, id)

	return nil
}
