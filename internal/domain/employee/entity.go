package employee

import "time"

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusResigned EmploymentStatus = "resigned"
)

type Position string

const (
	PositionStylist      Position = "stylist"
	PositionTherapist    Position = "therapist"
	PositionReceptionist Position = "receptionist"
	PositionSupervisor   Position = "supervisor"
)

// Employee belongs to exactly one branch at a time. Weekly revenue is always
// aggregated by employee id, so an employee transferred mid-week keeps the
// revenue they produced at their previous branch.
type Employee struct {
	ID               string
	BranchID         string
	FullName         string
	Phone            *string
	Position         Position
	EmploymentStatus EmploymentStatus
	HireDate         time.Time
	ResignationDate  *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Relationships (for responses)
	BranchName *string
}
