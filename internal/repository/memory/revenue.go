package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/glowpoint/salon-backend-go/internal/domain/revenue"
)

type RevenueRepository struct {
	mu       sync.RWMutex
	revenues map[string]revenue.DailyRevenue
}

func NewRevenueRepository() *RevenueRepository {
	return &RevenueRepository{revenues: make(map[string]revenue.DailyRevenue)}
}

func (r *RevenueRepository) Create(_ context.Context, rev revenue.DailyRevenue) (revenue.DailyRevenue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.revenues {
		if existing.EmployeeID == rev.EmployeeID && existing.Date.Equal(rev.Date) {
			return revenue.DailyRevenue{}, revenue.ErrRevenueExists
		}
	}

	now := time.Now()
	rev.ID = uuid.NewString()
	rev.CreatedAt = now
	rev.UpdatedAt = now
	r.revenues[rev.ID] = rev

	return rev, nil
}

func (r *RevenueRepository) GetByID(_ context.Context, id string) (revenue.DailyRevenue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rev, ok := r.revenues[id]
	if !ok {
		return revenue.DailyRevenue{}, revenue.ErrRevenueNotFound
	}
	return rev, nil
}

func (r *RevenueRepository) List(_ context.Context, filter revenue.ListRevenueFilter) ([]revenue.DailyRevenue, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []revenue.DailyRevenue
	for _, rev := range r.revenues {
		if filter.EmployeeID != nil && rev.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.BranchID != nil && rev.BranchID != *filter.BranchID {
			continue
		}
		if filter.DateFrom != nil {
			if from, err := time.Parse("2006-01-02", *filter.DateFrom); err == nil && rev.Date.Before(from) {
				continue
			}
		}
		if filter.DateTo != nil {
			if to, err := time.Parse("2006-01-02", *filter.DateTo); err == nil && rev.Date.After(to) {
				continue
			}
		}
		matched = append(matched, rev)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Date.After(matched[j].Date) })

	totalCount := int64(len(matched))

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit
	if offset >= len(matched) {
		return nil, totalCount, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], totalCount, nil
}

func (r *RevenueRepository) SumByEmployeeDateRange(_ context.Context, employeeIDs []string, from, to time.Time) (map[string]decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		wanted[id] = true
	}

	sums := make(map[string]decimal.Decimal)
	for _, rev := range r.revenues {
		if !wanted[rev.EmployeeID] {
			continue
		}
		if rev.Date.Before(from) || rev.Date.After(to) {
			continue
		}
		sums[rev.EmployeeID] = sums[rev.EmployeeID].Add(rev.TotalAmount)
	}

	return sums, nil
}

func (r *RevenueRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.revenues[id]; !ok {
		return revenue.ErrRevenueNotFound
	}
	delete(r.revenues, id)

	return nil
}
