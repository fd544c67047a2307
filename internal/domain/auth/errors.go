package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or malformed token")
	ErrTokenExpired       = errors.New("token has expired")
)
