package branch

import (
	"github.com/glowpoint/salon-backend-go/internal/pkg/validator"
)

// BranchResponse represents the response structure for a branch.
type BranchResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Code     string  `json:"code"`
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive bool    `json:"is_active"`
}

// CreateBranchRequest represents the request structure for creating a branch.
type CreateBranchRequest struct {
	Name    string  `json:"name"`
	Code    string  `json:"code"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

func (r *CreateBranchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}
	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}
	if !validator.IsEmpty(r.Code) && !validator.IsValidBranchCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 2-10 uppercase letters or digits",
		})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone number format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateBranchRequest represents the request structure for updating a branch.
type UpdateBranchRequest struct {
	ID       string  `json:"id"`
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateBranchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 100 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
