package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/glowpoint/salon-backend-go/internal/domain/bonus"
	"github.com/glowpoint/salon-backend-go/internal/pkg/database"
)

type bonusRepositoryImpl struct {
	db *database.DB
}

func NewBonusRepository(db *database.DB) bonus.Repository {
	return &bonusRepositoryImpl{db: db}
}

const weeklyBonusColumns = `
	wb.id, wb.branch_id, wb.year, wb.month, wb.week_number, wb.week_start, wb.week_end,
	wb.total_amount, wb.status, wb.created_at, wb.updated_at, b.name AS branch_name
`

func scanWeeklyBonus(row pgx.Row) (bonus.WeeklyBonus, error) {
	var wb bonus.WeeklyBonus
	err := row.Scan(
		&wb.ID,
		&wb.BranchID,
		&wb.Year,
		&wb.Month,
		&wb.WeekNumber,
		&wb.WeekStart,
		&wb.WeekEnd,
		&wb.TotalAmount,
		&wb.Status,
		&wb.CreatedAt,
		&wb.UpdatedAt,
		&wb.BranchName,
	)
	return wb, err
}

// Create implements bonus.Repository.
func (r *bonusRepositoryImpl) Create(ctx context.Context, wb bonus.WeeklyBonus) (bonus.WeeklyBonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO weekly_bonuses (id, branch_id, year, month, week_number, week_start, week_end, total_amount, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, branch_id, year, month, week_number, week_start, week_end, total_amount, status, created_at, updated_at
	`

	var result bonus.WeeklyBonus
	err := q.QueryRow(ctx, query,
		wb.BranchID,
		wb.Year,
		wb.Month,
		wb.WeekNumber,
		wb.WeekStart,
		wb.WeekEnd,
		wb.TotalAmount,
		wb.Status,
	).Scan(
		&result.ID,
		&result.BranchID,
		&result.Year,
		&result.Month,
		&result.WeekNumber,
		&result.WeekStart,
		&result.WeekEnd,
		&result.TotalAmount,
		&result.Status,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return bonus.WeeklyBonus{}, fmt.Errorf("failed to create weekly bonus: %w", err)
	}

	return result, nil
}

// GetByID implements bonus.Repository.
func (r *bonusRepositoryImpl) GetByID(ctx context.Context, id string) (bonus.WeeklyBonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + weeklyBonusColumns + `
		FROM weekly_bonuses wb
		JOIN branches b ON b.id = wb.branch_id
		WHERE wb.id = $1
	`

	result, err := scanWeeklyBonus(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return bonus.WeeklyBonus{}, bonus.ErrWeeklyBonusNotFound
		}
		return bonus.WeeklyBonus{}, fmt.Errorf("failed to get weekly bonus: %w", err)
	}

	return result, nil
}

// GetByBranchWeek implements bonus.Repository.
func (r *bonusRepositoryImpl) GetByBranchWeek(ctx context.Context, branchID string, year, month, weekNumber int) (bonus.WeeklyBonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + weeklyBonusColumns + `
		FROM weekly_bonuses wb
		JOIN branches b ON b.id = wb.branch_id
		WHERE wb.branch_id = $1 AND wb.year = $2 AND wb.month = $3 AND wb.week_number = $4
	`

	result, err := scanWeeklyBonus(q.QueryRow(ctx, query, branchID, year, month, weekNumber))
	if err != nil {
		if err == pgx.ErrNoRows {
			return bonus.WeeklyBonus{}, bonus.ErrWeeklyBonusNotFound
		}
		return bonus.WeeklyBonus{}, fmt.Errorf("failed to get weekly bonus: %w", err)
	}

	return result, nil
}

// List implements bonus.Repository.
func (r *bonusRepositoryImpl) List(ctx context.Context, filter bonus.ListFilter) ([]bonus.WeeklyBonus, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.BranchID != nil {
		where += fmt.Sprintf(" AND wb.branch_id = $%d", argIdx)
		args = append(args, *filter.BranchID)
		argIdx++
	}
	if filter.Year != nil {
		where += fmt.Sprintf(" AND wb.year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Month != nil {
		where += fmt.Sprintf(" AND wb.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND wb.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM weekly_bonuses wb` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count weekly bonuses: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := `
		SELECT ` + weeklyBonusColumns + `
		FROM weekly_bonuses wb
		JOIN branches b ON b.id = wb.branch_id
	` + where + fmt.Sprintf(" ORDER BY wb.year DESC, wb.month DESC, wb.week_number DESC, b.name ASC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list weekly bonuses: %w", err)
	}
	defer rows.Close()

	var bonuses []bonus.WeeklyBonus
	for rows.Next() {
		wb, err := scanWeeklyBonus(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan weekly bonus: %w", err)
		}
		bonuses = append(bonuses, wb)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return bonuses, totalCount, nil
}

// UpdateTotal implements bonus.Repository.
func (r *bonusRepositoryImpl) UpdateTotal(ctx context.Context, id string, total decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE weekly_bonuses SET total_amount = $1, updated_at = NOW() WHERE id = $2`, total, id)
	if err != nil {
		return fmt.Errorf("failed to update weekly bonus total: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bonus.ErrWeeklyBonusNotFound
	}

	return nil
}

// UpdateStatus implements bonus.Repository.
func (r *bonusRepositoryImpl) UpdateStatus(ctx context.Context, id string, status bonus.BonusStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE weekly_bonuses SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update weekly bonus status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bonus.ErrWeeklyBonusNotFound
	}

	return nil
}

// Delete implements bonus.Repository. Details go with the bonus via the
// ON DELETE CASCADE on bonus_details; audit log rows are kept.
func (r *bonusRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM weekly_bonuses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete weekly bonus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bonus.ErrWeeklyBonusNotFound
	}

	return nil
}

// GetDetails implements bonus.Repository.
func (r *bonusRepositoryImpl) GetDetails(ctx context.Context, weeklyBonusID string) ([]bonus.BonusDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT bd.id, bd.weekly_bonus_id, bd.employee_id, bd.weekly_revenue, bd.bonus_tier,
		       bd.bonus_amount, bd.is_eligible, bd.created_at, bd.updated_at, e.full_name AS employee_name
		FROM bonus_details bd
		JOIN employees e ON e.id = bd.employee_id
		WHERE bd.weekly_bonus_id = $1
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, weeklyBonusID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bonus details: %w", err)
	}
	defer rows.Close()

	var details []bonus.BonusDetail
	for rows.Next() {
		var d bonus.BonusDetail
		err := rows.Scan(
			&d.ID,
			&d.WeeklyBonusID,
			&d.EmployeeID,
			&d.WeeklyRevenue,
			&d.BonusTier,
			&d.BonusAmount,
			&d.IsEligible,
			&d.CreatedAt,
			&d.UpdatedAt,
			&d.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bonus detail: %w", err)
		}
		details = append(details, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return details, nil
}

// InsertDetail implements bonus.Repository.
func (r *bonusRepositoryImpl) InsertDetail(ctx context.Context, detail bonus.BonusDetail) (bonus.BonusDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bonus_details (id, weekly_bonus_id, employee_id, weekly_revenue, bonus_tier, bonus_amount, is_eligible, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, weekly_bonus_id, employee_id, weekly_revenue, bonus_tier, bonus_amount, is_eligible, created_at, updated_at
	`

	var result bonus.BonusDetail
	err := q.QueryRow(ctx, query,
		detail.WeeklyBonusID,
		detail.EmployeeID,
		detail.WeeklyRevenue,
		detail.BonusTier,
		detail.BonusAmount,
		detail.IsEligible,
	).Scan(
		&result.ID,
		&result.WeeklyBonusID,
		&result.EmployeeID,
		&result.WeeklyRevenue,
		&result.BonusTier,
		&result.BonusAmount,
		&result.IsEligible,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if strings.Contains(err.Error(), "uk_bonus_details_bonus_employee") {
			return bonus.BonusDetail{}, bonus.ErrDetailConflict
		}
		return bonus.BonusDetail{}, fmt.Errorf("failed to insert bonus detail: %w", err)
	}

	return result, nil
}

// UpdateDetail implements bonus.Repository.
func (r *bonusRepositoryImpl) UpdateDetail(ctx context.Context, detail bonus.BonusDetail) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bonus_details
		SET weekly_revenue = $1, bonus_tier = $2, bonus_amount = $3, is_eligible = $4, updated_at = NOW()
		WHERE weekly_bonus_id = $5 AND employee_id = $6
	`

	tag, err := q.Exec(ctx, query,
		detail.WeeklyRevenue,
		detail.BonusTier,
		detail.BonusAmount,
		detail.IsEligible,
		detail.WeeklyBonusID,
		detail.EmployeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update bonus detail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bonus.ErrWeeklyBonusNotFound
	}

	return nil
}

// SumDetailAmounts implements bonus.Repository.
func (r *bonusRepositoryImpl) SumDetailAmounts(ctx context.Context, weeklyBonusID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var total decimal.Decimal
	err := q.QueryRow(ctx,
		`SELECT COALESCE(SUM(bonus_amount), 0) FROM bonus_details WHERE weekly_bonus_id = $1`,
		weeklyBonusID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum bonus details: %w", err)
	}

	return total, nil
}

// InsertAuditLog implements bonus.Repository.
func (r *bonusRepositoryImpl) InsertAuditLog(ctx context.Context, entry bonus.AuditLog) (bonus.AuditLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bonus_audit_logs (id, weekly_bonus_id, action, old_status, new_status, performed_by, performed_at, details)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW(), $6)
		RETURNING id, weekly_bonus_id, action, old_status, new_status, performed_by, performed_at, details
	`

	var result bonus.AuditLog
	err := q.QueryRow(ctx, query,
		entry.WeeklyBonusID,
		entry.Action,
		entry.OldStatus,
		entry.NewStatus,
		entry.PerformedBy,
		entry.Details,
	).Scan(
		&result.ID,
		&result.WeeklyBonusID,
		&result.Action,
		&result.OldStatus,
		&result.NewStatus,
		&result.PerformedBy,
		&result.PerformedAt,
		&result.Details,
	)

	if err != nil {
		return bonus.AuditLog{}, fmt.Errorf("failed to insert audit log: %w", err)
	}

	return result, nil
}

// ListAuditLogs implements bonus.Repository.
func (r *bonusRepositoryImpl) ListAuditLogs(ctx context.Context, filter bonus.AuditLogFilter) ([]bonus.AuditLog, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.WeeklyBonusID != nil {
		where += fmt.Sprintf(" AND al.weekly_bonus_id = $%d", argIdx)
		args = append(args, *filter.WeeklyBonusID)
		argIdx++
	}
	if filter.BranchID != nil {
		where += fmt.Sprintf(" AND al.weekly_bonus_id IN (SELECT id FROM weekly_bonuses WHERE branch_id = $%d)", argIdx)
		args = append(args, *filter.BranchID)
		argIdx++
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM bonus_audit_logs al` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT al.id, al.weekly_bonus_id, al.action, al.old_status, al.new_status, al.performed_by, al.performed_at, al.details
		FROM bonus_audit_logs al
	` + where + fmt.Sprintf(" ORDER BY al.performed_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	var entries []bonus.AuditLog
	for rows.Next() {
		var e bonus.AuditLog
		err := rows.Scan(
			&e.ID,
			&e.WeeklyBonusID,
			&e.Action,
			&e.OldStatus,
			&e.NewStatus,
			&e.PerformedBy,
			&e.PerformedAt,
			&e.Details,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan audit log: %w", err)
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, totalCount, nil
}
