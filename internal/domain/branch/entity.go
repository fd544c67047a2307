package branch

import "time"

// Branch is a physical salon location. It owns employees and, through them,
// revenue records and weekly bonuses.
type Branch struct {
	ID        string
	Name      string
	Code      string
	Address   *string
	Phone     *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
