package revenue

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyRevenue is one employee's service revenue for one calendar day.
// BranchID records where the revenue was taken, but weekly aggregation joins
// on the employee, not on this branch id: if an employee moves branches their
// revenue follows them into their current branch's bonus week.
type DailyRevenue struct {
	ID          string
	EmployeeID  string
	BranchID    string
	Date        time.Time
	TotalAmount decimal.Decimal
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships (for responses)
	EmployeeName *string
}
