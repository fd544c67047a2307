package bonus

import (
	"github.com/glowpoint/salon-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== COMPUTE DTOs ==========

type ComputeWeeklyBonusRequest struct {
	BranchID   string `json:"branch_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	WeekNumber int    `json:"week_number"`
}

func (r *ComputeWeeklyBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BranchID == "" {
		errs = append(errs, validator.ValidationError{Field: "branch_id", Message: "is required"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.WeekNumber < 1 || r.WeekNumber > 4 {
		errs = append(errs, validator.ValidationError{Field: "week_number", Message: "must be between 1 and 4"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== WORKFLOW DTOs ==========

type TransitionRequest struct {
	Action  string `json:"action"` // "request", "approve", "reject", "pay"
	Details string `json:"details,omitempty"`
}

func (r *TransitionRequest) Validate() error {
	var errs validator.ValidationErrors

	switch AuditAction(r.Action) {
	case AuditActionRequest, AuditActionApprove, AuditActionReject, AuditActionPay:
	default:
		errs = append(errs, validator.ValidationError{Field: "action", Message: "must be one of request, approve, reject, pay"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== FILTERS ==========

type ListFilter struct {
	BranchID *string
	Year     *int
	Month    *int
	Status   *string
	Limit    int
	Page     int
}

type AuditLogFilter struct {
	BranchID      *string
	WeeklyBonusID *string
	Limit         int
	Offset        int
}

// ========== RESPONSES ==========

type BonusDetailResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	WeeklyRevenue decimal.Decimal `json:"weekly_revenue"`
	BonusTier     string          `json:"bonus_tier"`
	BonusAmount   decimal.Decimal `json:"bonus_amount"`
	IsEligible    bool            `json:"is_eligible"`
}

type WeeklyBonusResponse struct {
	ID          string                `json:"id"`
	BranchID    string                `json:"branch_id"`
	BranchName  *string               `json:"branch_name,omitempty"`
	Year        int                   `json:"year"`
	Month       int                   `json:"month"`
	WeekNumber  int                   `json:"week_number"`
	WeekStart   string                `json:"week_start"`
	WeekEnd     string                `json:"week_end"`
	TotalAmount decimal.Decimal       `json:"total_amount"`
	Status      string                `json:"status"`
	Details     []BonusDetailResponse `json:"details,omitempty"`
}

type ListWeeklyBonusResponse struct {
	Data       []WeeklyBonusResponse `json:"data"`
	TotalCount int64                 `json:"total_count"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
}

type AuditLogResponse struct {
	ID            string  `json:"id"`
	WeeklyBonusID string  `json:"weekly_bonus_id"`
	Action        string  `json:"action"`
	OldStatus     *string `json:"old_status,omitempty"`
	NewStatus     *string `json:"new_status,omitempty"`
	PerformedBy   string  `json:"performed_by"`
	PerformedAt   string  `json:"performed_at"`
	Details       string  `json:"details"`
}

type ListAuditLogResponse struct {
	Data       []AuditLogResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}

type DiscrepancyEntryResponse struct {
	EmployeeID        string          `json:"employee_id"`
	EmployeeName      string          `json:"employee_name"`
	RegisteredRevenue decimal.Decimal `json:"registered_revenue"`
	ActualRevenue     decimal.Decimal `json:"actual_revenue"`
	RevenueDiff       decimal.Decimal `json:"revenue_diff"`
	RegisteredBonus   decimal.Decimal `json:"registered_bonus"`
	ExpectedBonus     decimal.Decimal `json:"expected_bonus"`
	BonusDiff         decimal.Decimal `json:"bonus_diff"`
}

type DiscrepancyReportResponse struct {
	WeeklyBonusID   string                     `json:"weekly_bonus_id"`
	BranchID        string                     `json:"branch_id"`
	BranchName      string                     `json:"branch_name,omitempty"`
	Year            int                        `json:"year"`
	Month           int                        `json:"month"`
	WeekNumber      int                        `json:"week_number"`
	HasDiscrepancy  bool                       `json:"has_discrepancy"`
	Discrepancies   []DiscrepancyEntryResponse `json:"discrepancies"`
	RegisteredTotal decimal.Decimal            `json:"registered_total"`
	ExpectedTotal   decimal.Decimal            `json:"expected_total"`
	CheckedAt       string                     `json:"checked_at"`
	AlertSent       bool                       `json:"alert_sent"`
}
