package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmployeeNotActive   = errors.New("employee is not active")
	ErrEmployeeHasRevenues = errors.New("employee has revenue records and cannot be deleted")
)
