package employee

import (
	"github.com/glowpoint/salon-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID               string  `json:"id"`
	BranchID         string  `json:"branch_id"`
	BranchName       *string `json:"branch_name,omitempty"`
	FullName         string  `json:"full_name"`
	Phone            *string `json:"phone,omitempty"`
	Position         string  `json:"position"`
	EmploymentStatus string  `json:"employment_status"`
	HireDate         string  `json:"hire_date"`
}

type CreateEmployeeRequest struct {
	BranchID string  `json:"branch_id"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone,omitempty"`
	Position string  `json:"position"`
	HireDate string  `json:"hire_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{Field: "branch_id", Message: "branch_id is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}
	switch Position(r.Position) {
	case PositionStylist, PositionTherapist, PositionReceptionist, PositionSupervisor:
	default:
		errs = append(errs, validator.ValidationError{Field: "position", Message: "must be one of stylist, therapist, receptionist, supervisor"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID               string  `json:"id"`
	BranchID         *string `json:"branch_id,omitempty"`
	FullName         *string `json:"full_name,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Position         *string `json:"position,omitempty"`
	EmploymentStatus *string `json:"employment_status,omitempty"`
	ResignationDate  *string `json:"resignation_date,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name must not be empty"})
	}
	if r.EmploymentStatus != nil {
		switch EmploymentStatus(*r.EmploymentStatus) {
		case EmploymentStatusActive, EmploymentStatusResigned:
		default:
			errs = append(errs, validator.ValidationError{Field: "employment_status", Message: "must be active or resigned"})
		}
	}
	if r.ResignationDate != nil {
		if _, ok := validator.IsValidDate(*r.ResignationDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "resignation_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
