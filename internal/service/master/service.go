// Package master implements branch and employee administration.
package master

import (
	"context"
	"time"

	"github.com/glowpoint/salon-backend-go/internal/domain/branch"
	"github.com/glowpoint/salon-backend-go/internal/domain/employee"
)

type MasterServiceImpl struct {
	branchRepo   branch.BranchRepository
	employeeRepo employee.EmployeeRepository
}

func NewMasterService(branchRepo branch.BranchRepository, employeeRepo employee.EmployeeRepository) *MasterServiceImpl {
	return &MasterServiceImpl{
		branchRepo:   branchRepo,
		employeeRepo: employeeRepo,
	}
}

// ========== BRANCHES ==========

func (s *MasterServiceImpl) CreateBranch(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
	if err := req.Validate(); err != nil {
		return branch.BranchResponse{}, err
	}

	b, err := s.branchRepo.Create(ctx, branch.Branch{
		Name:    req.Name,
		Code:    req.Code,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return branch.BranchResponse{}, err
	}

	return toBranchResponse(b), nil
}

func (s *MasterServiceImpl) GetBranch(ctx context.Context, id string) (branch.BranchResponse, error) {
	b, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return branch.BranchResponse{}, err
	}
	return toBranchResponse(b), nil
}

func (s *MasterServiceImpl) ListBranches(ctx context.Context, activeOnly bool) ([]branch.BranchResponse, error) {
	branches, err := s.branchRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]branch.BranchResponse, 0, len(branches))
	for _, b := range branches {
		result = append(result, toBranchResponse(b))
	}
	return result, nil
}

func (s *MasterServiceImpl) UpdateBranch(ctx context.Context, req branch.UpdateBranchRequest) (branch.BranchResponse, error) {
	if err := req.Validate(); err != nil {
		return branch.BranchResponse{}, err
	}

	if err := s.branchRepo.Update(ctx, req); err != nil {
		return branch.BranchResponse{}, err
	}

	return s.GetBranch(ctx, req.ID)
}

// DeactivateBranch takes a branch out of the bonus sync cycle without
// touching its history.
func (s *MasterServiceImpl) DeactivateBranch(ctx context.Context, id string) error {
	inactive := false
	return s.branchRepo.Update(ctx, branch.UpdateBranchRequest{ID: id, IsActive: &inactive})
}

func toBranchResponse(b branch.Branch) branch.BranchResponse {
	return branch.BranchResponse{
		ID:       b.ID,
		Name:     b.Name,
		Code:     b.Code,
		Address:  b.Address,
		Phone:    b.Phone,
		IsActive: b.IsActive,
	}
}

// ========== EMPLOYEES ==========

func (s *MasterServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// The branch must exist and be active before anyone is assigned to it.
	b, err := s.branchRepo.GetByID(ctx, req.BranchID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !b.IsActive {
		return employee.EmployeeResponse{}, branch.ErrBranchNotFound
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)

	emp, err := s.employeeRepo.Create(ctx, employee.Employee{
		BranchID: req.BranchID,
		FullName: req.FullName,
		Phone:    req.Phone,
		Position: employee.Position(req.Position),
		HireDate: hireDate,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

func (s *MasterServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

func (s *MasterServiceImpl) ListEmployees(ctx context.Context, branchID *string, activeOnly bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, branchID, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, toEmployeeResponse(emp))
	}
	return result, nil
}

func (s *MasterServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.BranchID != nil {
		if _, err := s.branchRepo.GetByID(ctx, *req.BranchID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetEmployee(ctx, req.ID)
}

// ResignEmployee marks an employee resigned as of the given date. The
// employee drops out of future bonus computations but keeps all history.
func (s *MasterServiceImpl) ResignEmployee(ctx context.Context, id string, resignationDate string) error {
	status := string(employee.EmploymentStatusResigned)
	req := employee.UpdateEmployeeRequest{
		ID:               id,
		EmploymentStatus: &status,
		ResignationDate:  &resignationDate,
	}
	if err := req.Validate(); err != nil {
		return err
	}
	return s.employeeRepo.Update(ctx, req)
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:               emp.ID,
		BranchID:         emp.BranchID,
		BranchName:       emp.BranchName,
		FullName:         emp.FullName,
		Phone:            emp.Phone,
		Position:         string(emp.Position),
		EmploymentStatus: string(emp.EmploymentStatus),
		HireDate:         emp.HireDate.Format("2006-01-02"),
	}
}
