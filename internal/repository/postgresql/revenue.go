package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/glowpoint/salon-backend-go/internal/domain/revenue"
	"github.com/glowpoint/salon-backend-go/internal/pkg/database"
)

type revenueRepositoryImpl struct {
	db *database.DB
}

func NewRevenueRepository(db *database.DB) revenue.RevenueRepository {
	return &revenueRepositoryImpl{db: db}
}

// Create implements revenue.RevenueRepository.
func (r *revenueRepositoryImpl) Create(ctx context.Context, rev revenue.DailyRevenue) (revenue.DailyRevenue, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_revenues (id, employee_id, branch_id, revenue_date, total_amount, notes, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, employee_id, branch_id, revenue_date, total_amount, notes, created_at, updated_at
	`

	var result revenue.DailyRevenue
	err := q.QueryRow(ctx, query,
		rev.EmployeeID,
		rev.BranchID,
		rev.Date,
		rev.TotalAmount,
		rev.Notes,
	).Scan(
		&result.ID,
		&result.EmployeeID,
		&result.BranchID,
		&result.Date,
		&result.TotalAmount,
		&result.Notes,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if strings.Contains(err.Error(), "uk_daily_revenues_employee_date") {
			return revenue.DailyRevenue{}, revenue.ErrRevenueExists
		}
		return revenue.DailyRevenue{}, fmt.Errorf("failed to create daily revenue: %w", err)
	}

	return result, nil
}

// GetByID implements revenue.RevenueRepository.
func (r *revenueRepositoryImpl) GetByID(ctx context.Context, id string) (revenue.DailyRevenue, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT dr.id, dr.employee_id, dr.branch_id, dr.revenue_date, dr.total_amount, dr.notes,
		       dr.created_at, dr.updated_at, e.full_name AS employee_name
		FROM daily_revenues dr
		JOIN employees e ON e.id = dr.employee_id
		WHERE dr.id = $1
	`

	var result revenue.DailyRevenue
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.EmployeeID,
		&result.BranchID,
		&result.Date,
		&result.TotalAmount,
		&result.Notes,
		&result.CreatedAt,
		&result.UpdatedAt,
		&result.EmployeeName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return revenue.DailyRevenue{}, revenue.ErrRevenueNotFound
		}
		return revenue.DailyRevenue{}, fmt.Errorf("failed to get daily revenue: %w", err)
	}

	return result, nil
}

// List implements revenue.RevenueRepository.
func (r *revenueRepositoryImpl) List(ctx context.Context, filter revenue.ListRevenueFilter) ([]revenue.DailyRevenue, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND dr.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.BranchID != nil {
		where += fmt.Sprintf(" AND dr.branch_id = $%d", argIdx)
		args = append(args, *filter.BranchID)
		argIdx++
	}
	if filter.DateFrom != nil {
		where += fmt.Sprintf(" AND dr.revenue_date >= $%d", argIdx)
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		where += fmt.Sprintf(" AND dr.revenue_date <= $%d", argIdx)
		args = append(args, *filter.DateTo)
		argIdx++
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM daily_revenues dr` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count daily revenues: %w", err)
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
		SELECT dr.id, dr.employee_id, dr.branch_id, dr.revenue_date, dr.total_amount, dr.notes,
		       dr.created_at, dr.updated_at, e.full_name AS employee_name
		FROM daily_revenues dr
		JOIN employees e ON e.id = dr.employee_id
	` + where + fmt.Sprintf(" ORDER BY dr.revenue_date DESC, e.full_name ASC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list daily revenues: %w", err)
	}
	defer rows.Close()

	var revenues []revenue.DailyRevenue
	for rows.Next() {
		var rev revenue.DailyRevenue
		err := rows.Scan(
			&rev.ID,
			&rev.EmployeeID,
			&rev.BranchID,
			&rev.Date,
			&rev.TotalAmount,
			&rev.Notes,
			&rev.CreatedAt,
			&rev.UpdatedAt,
			&rev.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan daily revenue: %w", err)
		}
		revenues = append(revenues, rev)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return revenues, totalCount, nil
}

// SumByEmployeeDateRange implements revenue.RevenueRepository.
// The join is on employee id and date only; the branch id stored on each row
// is ignored so that revenue follows an employee across branch transfers.
func (r *revenueRepositoryImpl) SumByEmployeeDateRange(ctx context.Context, employeeIDs []string, from, to time.Time) (map[string]decimal.Decimal, error) {
	if len(employeeIDs) == 0 {
		return map[string]decimal.Decimal{}, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, COALESCE(SUM(total_amount), 0)
		FROM daily_revenues
		WHERE employee_id = ANY($1) AND revenue_date >= $2 AND revenue_date <= $3
		GROUP BY employee_id
	`

	rows, err := q.Query(ctx, query, employeeIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum daily revenues: %w", err)
	}
	defer rows.Close()

	sums := make(map[string]decimal.Decimal, len(employeeIDs))
	for rows.Next() {
		var employeeID string
		var total decimal.Decimal
		if err := rows.Scan(&employeeID, &total); err != nil {
			return nil, fmt.Errorf("failed to scan revenue sum: %w", err)
		}
		sums[employeeID] = total
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return sums, nil
}

// Delete implements revenue.RevenueRepository.
func (r *revenueRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM daily_revenues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete daily revenue: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return revenue.ErrRevenueNotFound
	}

	return nil
}
