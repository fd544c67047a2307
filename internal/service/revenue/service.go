package revenue

import (
	"context"
	"time"

	"github.com/glowpoint/salon-backend-go/internal/domain/employee"
	"github.com/glowpoint/salon-backend-go/internal/domain/revenue"
)

type RevenueServiceImpl struct {
	revenueRepo  revenue.RevenueRepository
	employeeRepo employee.EmployeeRepository
}

func NewRevenueService(revenueRepo revenue.RevenueRepository, employeeRepo employee.EmployeeRepository) *RevenueServiceImpl {
	return &RevenueServiceImpl{
		revenueRepo:  revenueRepo,
		employeeRepo: employeeRepo,
	}
}

// Record stores one employee's revenue for one day. The branch is taken from
// the employee's current assignment at recording time.
func (s *RevenueServiceImpl) Record(ctx context.Context, req revenue.RecordDailyRevenueRequest) (revenue.DailyRevenueResponse, error) {
	if err := req.Validate(); err != nil {
		return revenue.DailyRevenueResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return revenue.DailyRevenueResponse{}, err
	}
	if emp.EmploymentStatus != employee.EmploymentStatusActive {
		return revenue.DailyRevenueResponse{}, employee.ErrEmployeeNotActive
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	rev, err := s.revenueRepo.Create(ctx, revenue.DailyRevenue{
		EmployeeID:  req.EmployeeID,
		BranchID:    emp.BranchID,
		Date:        date,
		TotalAmount: req.TotalAmount,
		Notes:       req.Notes,
	})
	if err != nil {
		return revenue.DailyRevenueResponse{}, err
	}

	rev.EmployeeName = &emp.FullName

	return toRevenueResponse(rev), nil
}

func (s *RevenueServiceImpl) Get(ctx context.Context, id string) (revenue.DailyRevenueResponse, error) {
	rev, err := s.revenueRepo.GetByID(ctx, id)
	if err != nil {
		return revenue.DailyRevenueResponse{}, err
	}
	return toRevenueResponse(rev), nil
}

func (s *RevenueServiceImpl) List(ctx context.Context, filter revenue.ListRevenueFilter) ([]revenue.DailyRevenueResponse, int64, error) {
	revenues, totalCount, err := s.revenueRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]revenue.DailyRevenueResponse, 0, len(revenues))
	for _, rev := range revenues {
		result = append(result, toRevenueResponse(rev))
	}
	return result, totalCount, nil
}

func (s *RevenueServiceImpl) Delete(ctx context.Context, id string) error {
	return s.revenueRepo.Delete(ctx, id)
}

func toRevenueResponse(rev revenue.DailyRevenue) revenue.DailyRevenueResponse {
	return revenue.DailyRevenueResponse{
		ID:           rev.ID,
		EmployeeID:   rev.EmployeeID,
		EmployeeName: rev.EmployeeName,
		BranchID:     rev.BranchID,
		Date:         rev.Date.Format("2006-01-02"),
		TotalAmount:  rev.TotalAmount,
		Notes:        rev.Notes,
	}
}
