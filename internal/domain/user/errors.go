package user

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailExists   = errors.New("email already registered")
	ErrUserInactive  = errors.New("user account is inactive")
	ErrAdminRequired = errors.New("admin privilege required")
)
