package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"      // Head office - approves, rejects, pays out
	RoleSupervisor Role = "supervisor" // Branch supervisor - computes, requests payout
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	// BranchID is set for supervisors and nil for head-office admins.
	BranchID  *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin checks if user holds head-office privileges.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
