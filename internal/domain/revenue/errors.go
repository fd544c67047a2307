package revenue

import "errors"

var (
	ErrRevenueNotFound = errors.New("daily revenue record not found")
	ErrRevenueExists   = errors.New("daily revenue already recorded for this employee and date")
)
