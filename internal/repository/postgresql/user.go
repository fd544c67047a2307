package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/glowpoint/salon-backend-go/internal/domain/user"
	"github.com/glowpoint/salon-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, u *user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, email, password_hash, full_name, role, branch_id, is_active, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.Email,
		u.PasswordHash,
		u.FullName,
		u.Role,
		u.BranchID,
		u.IsActive,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "uk_users_email") {
			return user.ErrEmailExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (*user.User, error) {
	return r.getByField(ctx, "id", id)
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.getByField(ctx, "email", email)
}

func (r *userRepositoryImpl) getByField(ctx context.Context, field, value string) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, email, password_hash, full_name, role, branch_id, is_active, created_at, updated_at
		FROM users
		WHERE %s = $1
	`, field)

	var u user.User
	err := q.QueryRow(ctx, query, value).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.Role,
		&u.BranchID,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}
