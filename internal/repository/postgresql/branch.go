package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/glowpoint/salon-backend-go/internal/domain/branch"
	"github.com/glowpoint/salon-backend-go/internal/pkg/database"
)

type branchRepositoryImpl struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) branch.BranchRepository {
	return &branchRepositoryImpl{db: db}
}

// Create implements branch.BranchRepository.
func (r *branchRepositoryImpl) Create(ctx context.Context, b branch.Branch) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO branches (id, name, code, address, phone, is_active, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, TRUE, NOW(), NOW())
		RETURNING id, name, code, address, phone, is_active, created_at, updated_at
	`

	var result branch.Branch
	err := q.QueryRow(ctx, query, b.Name, b.Code, b.Address, b.Phone).Scan(
		&result.ID,
		&result.Name,
		&result.Code,
		&result.Address,
		&result.Phone,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if strings.Contains(err.Error(), "uk_branches_code") {
			return branch.Branch{}, branch.ErrBranchCodeExists
		}
		return branch.Branch{}, fmt.Errorf("failed to create branch: %w", err)
	}

	return result, nil
}

// GetByID implements branch.BranchRepository.
func (r *branchRepositoryImpl) GetByID(ctx context.Context, id string) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, code, address, phone, is_active, created_at, updated_at
		FROM branches
		WHERE id = $1
	`

	var result branch.Branch
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.Code,
		&result.Address,
		&result.Phone,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, fmt.Errorf("failed to get branch: %w", err)
	}

	return result, nil
}

// List implements branch.BranchRepository.
func (r *branchRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, code, address, phone, is_active, created_at, updated_at
		FROM branches
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var branches []branch.Branch
	for rows.Next() {
		var b branch.Branch
		err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.Code,
			&b.Address,
			&b.Phone,
			&b.IsActive,
			&b.CreatedAt,
			&b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return branches, nil
}

// Update implements branch.BranchRepository.
func (r *branchRepositoryImpl) Update(ctx context.Context, req branch.UpdateBranchRequest) error {
	q := GetQuerier(ctx, r.db)

	// Build dynamic update query
	query := `UPDATE branches SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		query += fmt.Sprintf(", name = $%d", argIdx)
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Address != nil {
		query += fmt.Sprintf(", address = $%d", argIdx)
		args = append(args, *req.Address)
		argIdx++
	}
	if req.Phone != nil {
		query += fmt.Sprintf(", phone = $%d", argIdx)
		args = append(args, *req.Phone)
		argIdx++
	}
	if req.IsActive != nil {
		query += fmt.Sprintf(", is_active = $%d", argIdx)
		args = append(args, *req.IsActive)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return branch.ErrBranchNotFound
	}

	return nil
}

// Delete implements branch.BranchRepository.
func (r *branchRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return branch.ErrBranchNotFound
	}

	return nil
}
