package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/glowpoint/salon-backend-go/internal/domain/employee"
	"github.com/glowpoint/salon-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.branch_id, e.full_name, e.phone, e.position, e.employment_status,
	e.hire_date, e.resignation_date, e.created_at, e.updated_at, b.name AS branch_name
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.BranchID,
		&e.FullName,
		&e.Phone,
		&e.Position,
		&e.EmploymentStatus,
		&e.HireDate,
		&e.ResignationDate,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.BranchName,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, branch_id, full_name, phone, position, employment_status, hire_date, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, 'active', $5, NOW(), NOW())
		RETURNING id, branch_id, full_name, phone, position, employment_status, hire_date, resignation_date, created_at, updated_at
	`

	var result employee.Employee
	err := q.QueryRow(ctx, query,
		emp.BranchID,
		emp.FullName,
		emp.Phone,
		emp.Position,
		emp.HireDate,
	).Scan(
		&result.ID,
		&result.BranchID,
		&result.FullName,
		&result.Phone,
		&result.Position,
		&result.EmploymentStatus,
		&result.HireDate,
		&result.ResignationDate,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return result, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN branches b ON b.id = e.branch_id
		WHERE e.id = $1
	`

	result, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return result, nil
}

// GetActiveByBranchID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActiveByBranchID(ctx context.Context, branchID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN branches b ON b.id = e.branch_id
		WHERE e.branch_id = $1 AND e.employment_status = 'active'
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, branchID *string, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN branches b ON b.id = e.branch_id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if branchID != nil {
		query += fmt.Sprintf(" AND e.branch_id = $%d", argIdx)
		args = append(args, *branchID)
		argIdx++
	}
	if activeOnly {
		query += " AND e.employment_status = 'active'"
	}
	query += " ORDER BY e.full_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	// Build dynamic update query
	query := `UPDATE employees SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.BranchID != nil {
		query += fmt.Sprintf(", branch_id = $%d", argIdx)
		args = append(args, *req.BranchID)
		argIdx++
	}
	if req.FullName != nil {
		query += fmt.Sprintf(", full_name = $%d", argIdx)
		args = append(args, *req.FullName)
		argIdx++
	}
	if req.Phone != nil {
		query += fmt.Sprintf(", phone = $%d", argIdx)
		args = append(args, *req.Phone)
		argIdx++
	}
	if req.Position != nil {
		query += fmt.Sprintf(", position = $%d", argIdx)
		args = append(args, *req.Position)
		argIdx++
	}
	if req.EmploymentStatus != nil {
		query += fmt.Sprintf(", employment_status = $%d", argIdx)
		args = append(args, *req.EmploymentStatus)
		argIdx++
	}
	if req.ResignationDate != nil {
		query += fmt.Sprintf(", resignation_date = $%d", argIdx)
		args = append(args, *req.ResignationDate)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		if strings.Contains(err.Error(), "fk_daily_revenues_employee") {
			return employee.ErrEmployeeHasRevenues
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
