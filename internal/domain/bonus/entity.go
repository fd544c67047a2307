package bonus

import (
	"time"

	"github.com/shopspring/decimal"
)

type BonusStatus string

const (
	BonusStatusPending   BonusStatus = "pending"
	BonusStatusRequested BonusStatus = "requested"
	BonusStatusApproved  BonusStatus = "approved"
	BonusStatusRejected  BonusStatus = "rejected"
	BonusStatusPaid      BonusStatus = "paid"
)

// WeeklyBonus is the computed incentive payout record for one branch for one
// calendar week. (branch_id, year, month, week_number) is logically unique.
type WeeklyBonus struct {
	ID          string
	BranchID    string
	Year        int
	Month       int
	WeekNumber  int
	WeekStart   time.Time
	WeekEnd     time.Time
	TotalAmount decimal.Decimal
	Status      BonusStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships (for responses)
	BranchName *string
	Details    []BonusDetail
}

// BonusDetail holds one employee's share of a WeeklyBonus.
// (weekly_bonus_id, employee_id) is unique.
type BonusDetail struct {
	ID            string
	WeeklyBonusID string
	EmployeeID    string
	WeeklyRevenue decimal.Decimal
	BonusTier     BonusTier
	BonusAmount   decimal.Decimal
	IsEligible    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Relationships (for responses)
	EmployeeName *string
}

type AuditAction string

const (
	AuditActionSync                 AuditAction = "sync"
	AuditActionDiscrepancyAlertSent AuditAction = "discrepancy_alert_sent"
	AuditActionRequest              AuditAction = "request"
	AuditActionApprove              AuditAction = "approve"
	AuditActionReject               AuditAction = "reject"
	AuditActionPay                  AuditAction = "pay"
)

// AuditLog is an append-only record of every state-changing action on a
// WeeklyBonus. Status fields are nil for non-transition actions where no
// status was involved.
type AuditLog struct {
	ID            string
	WeeklyBonusID string
	Action        AuditAction
	OldStatus     *BonusStatus
	NewStatus     *BonusStatus
	PerformedBy   string
	PerformedAt   time.Time
	Details       string
}

// DiscrepancyEntry describes one employee whose stored bonus record no longer
// matches a fresh recomputation from raw revenue.
type DiscrepancyEntry struct {
	EmployeeID        string
	EmployeeName      string
	RegisteredRevenue decimal.Decimal
	ActualRevenue     decimal.Decimal
	RevenueDiff       decimal.Decimal
	RegisteredBonus   decimal.Decimal
	ExpectedBonus     decimal.Decimal
	BonusDiff         decimal.Decimal
}

// DiscrepancyReport is derived on demand and never persisted.
type DiscrepancyReport struct {
	WeeklyBonusID   string
	BranchID        string
	BranchName      string
	Year            int
	Month           int
	WeekNumber      int
	WeekStart       time.Time
	WeekEnd         time.Time
	HasDiscrepancy  bool
	Discrepancies   []DiscrepancyEntry
	RegisteredTotal decimal.Decimal
	ExpectedTotal   decimal.Decimal
	CheckedAt       time.Time
	AlertSent       bool
}

// transitions maps a workflow action to the status it requires and the status
// it produces. paid and rejected are terminal: no action leads out of them.
var transitions = map[AuditAction]struct {
	From BonusStatus
	To   BonusStatus
}{
	AuditActionRequest: {From: BonusStatusPending, To: BonusStatusRequested},
	AuditActionApprove: {From: BonusStatusRequested, To: BonusStatusApproved},
	AuditActionReject:  {From: BonusStatusRequested, To: BonusStatusRejected},
	AuditActionPay:     {From: BonusStatusApproved, To: BonusStatusPaid},
}

// NextStatus returns the status produced by applying action to current.
func NextStatus(current BonusStatus, action AuditAction) (BonusStatus, error) {
	t, ok := transitions[action]
	if !ok {
		return "", ErrUnknownAction
	}
	if t.From != current {
		return "", &InvalidTransitionError{Action: action, Current: current, Expected: t.From}
	}
	return t.To, nil
}

// TransitionActions lists the workflow actions in ladder order.
func TransitionActions() []AuditAction {
	return []AuditAction{AuditActionRequest, AuditActionApprove, AuditActionReject, AuditActionPay}
}
