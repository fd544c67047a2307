package bonus

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository defines data access for weekly bonuses, their detail rows and
// the audit log. Implementations must enforce uniqueness of
// (weekly_bonus_id, employee_id) on details and surface a violation as
// ErrDetailConflict so callers can retry as an update.
type Repository interface {
	// Weekly bonuses
	Create(ctx context.Context, wb WeeklyBonus) (WeeklyBonus, error)
	GetByID(ctx context.Context, id string) (WeeklyBonus, error)
	GetByBranchWeek(ctx context.Context, branchID string, year, month, weekNumber int) (WeeklyBonus, error)
	List(ctx context.Context, filter ListFilter) ([]WeeklyBonus, int64, error)
	UpdateTotal(ctx context.Context, id string, total decimal.Decimal) error
	UpdateStatus(ctx context.Context, id string, status BonusStatus) error
	// Delete removes a weekly bonus and cascades to its details. Audit log
	// rows are left in place.
	Delete(ctx context.Context, id string) error

	// Details
	GetDetails(ctx context.Context, weeklyBonusID string) ([]BonusDetail, error)
	InsertDetail(ctx context.Context, detail BonusDetail) (BonusDetail, error)
	UpdateDetail(ctx context.Context, detail BonusDetail) error
	SumDetailAmounts(ctx context.Context, weeklyBonusID string) (decimal.Decimal, error)

	// Audit log (append-only)
	InsertAuditLog(ctx context.Context, entry AuditLog) (AuditLog, error)
	ListAuditLogs(ctx context.Context, filter AuditLogFilter) ([]AuditLog, int64, error)
}
