package revenue

import (
	"github.com/glowpoint/salon-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type DailyRevenueResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	BranchID     string          `json:"branch_id"`
	Date         string          `json:"date"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Notes        *string         `json:"notes,omitempty"`
}

type RecordDailyRevenueRequest struct {
	EmployeeID  string          `json:"employee_id"`
	Date        string          `json:"date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Notes       *string         `json:"notes,omitempty"`
}

func (r *RecordDailyRevenueRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.TotalAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "total_amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListRevenueFilter struct {
	EmployeeID *string
	BranchID   *string
	DateFrom   *string
	DateTo     *string
	Limit      int
	Page       int
}
