package response

import (
	"errors"
	"net/http"

	"github.com/glowpoint/salon-backend-go/internal/domain/auth"
	"github.com/glowpoint/salon-backend-go/internal/domain/bonus"
	"github.com/glowpoint/salon-backend-go/internal/domain/branch"
	"github.com/glowpoint/salon-backend-go/internal/domain/employee"
	"github.com/glowpoint/salon-backend-go/internal/domain/revenue"
	"github.com/glowpoint/salon-backend-go/internal/domain/user"
	"github.com/glowpoint/salon-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Master data errors
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, branch.ErrBranchCodeExists):
		Conflict(w, "Branch code already exists")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNotActive):
		BadRequest(w, "Employee is not active", nil)
	case errors.Is(err, employee.ErrEmployeeHasRevenues):
		Conflict(w, "Employee has revenue records and cannot be deleted")

	// Revenue errors
	case errors.Is(err, revenue.ErrRevenueNotFound):
		NotFound(w, "Daily revenue not found")
	case errors.Is(err, revenue.ErrRevenueExists):
		Conflict(w, "Revenue already recorded for this employee and date")

	// Bonus errors
	case errors.Is(err, bonus.ErrWeeklyBonusNotFound):
		NotFound(w, "Weekly bonus not found")
	case errors.Is(err, bonus.ErrInvalidTransition):
		Conflict(w, err.Error())
	case errors.Is(err, bonus.ErrUnknownAction):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, bonus.ErrRejectReasonRequired):
		ValidationError(w, map[string]string{"details": "rejection requires a non-empty reason"})
	case errors.Is(err, bonus.ErrDetailConflict):
		Conflict(w, err.Error())
	case errors.Is(err, bonus.ErrInvalidWeekNumber), errors.Is(err, bonus.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
