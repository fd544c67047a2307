package bonus

import (
	"errors"
	"fmt"
)

var (
	ErrWeeklyBonusNotFound  = errors.New("weekly bonus not found")
	ErrDetailConflict       = errors.New("bonus detail already exists for this employee")
	ErrUnknownAction        = errors.New("unknown bonus workflow action")
	ErrRejectReasonRequired = errors.New("rejection requires a non-empty reason")
	ErrLadderNotMonotonic   = errors.New("tier ladder thresholds must be strictly descending")
	ErrLadderAmountOrder    = errors.New("tier ladder amounts must not increase down the ladder")
	ErrLadderEmpty          = errors.New("tier ladder must contain at least one level")
	ErrInvalidWeekNumber    = errors.New("week number must be between 1 and 4")
	ErrInvalidPeriod        = errors.New("invalid bonus period")
)

// ErrInvalidTransition is the sentinel matched by errors.Is for any rejected
// workflow transition; the concrete error carries the attempted action and
// both statuses.
var ErrInvalidTransition = errors.New("invalid bonus status transition")

type InvalidTransitionError struct {
	Action   AuditAction
	Current  BonusStatus
	Expected BonusStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid bonus status transition: cannot %s a bonus with status %q (requires %q)",
		e.Action, e.Current, e.Expected)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
