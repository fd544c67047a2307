package revenue

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type RevenueRepository interface {
	Create(ctx context.Context, rev DailyRevenue) (DailyRevenue, error)
	GetByID(ctx context.Context, id string) (DailyRevenue, error)
	List(ctx context.Context, filter ListRevenueFilter) ([]DailyRevenue, int64, error)
	// SumByEmployeeDateRange sums revenue totals per employee over the
	// inclusive date range. The lookup is keyed by employee id and date
	// only; the branch stored on the revenue row is deliberately ignored.
	// Employees with no rows in range are absent from the result map.
	SumByEmployeeDateRange(ctx context.Context, employeeIDs []string, from, to time.Time) (map[string]decimal.Decimal, error)
	Delete(ctx context.Context, id string) error
}
