/*
errors.go - Centralized error types for the HR domain

PURPOSE:
  All domain error types in one place. Every operation signals failure the
  same way: sentinel errors usable with errors.Is(), plus structured errors
  carrying context that unwrap to the sentinels.

ERROR CATEGORIES:
  1. Not-found errors  - Referenced record does not exist
  2. Conflict errors   - Uniqueness violations translated by the store
  3. Validation errors - Business rule violations (hours range, leave type)
  4. State errors      - Illegal status transitions (PTO already decided)

SEE ALSO:
  - store/sqlite/sqlite.go: Translates UNIQUE violations into these errors
  - api/handlers.go: Maps these errors to HTTP status codes
*/
package hr

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmployeeNotFound is returned by any operation that references an
	// employee id with no matching record.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrDepartmentNotFound is returned when a department lookup by name
	// is required to succeed but the department does not exist.
	ErrDepartmentNotFound = errors.New("department not found")

	// ErrPTORequestNotFound is returned when a PTO request id has no
	// matching record.
	ErrPTORequestNotFound = errors.New("pto request not found")

	// ErrDuplicateEmail is returned when hiring with an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrDuplicateDepartment is returned when creating a department whose
	// name already exists.
	ErrDuplicateDepartment = errors.New("department already exists")

	// ErrInvalidHours is returned when a time entry's hours fall outside
	// the half-open interval (0, 24].
	ErrInvalidHours = errors.New("hours must be greater than 0 and at most 24")

	// ErrInvalidPTOType is returned for an unknown leave type.
	ErrInvalidPTOType = errors.New("invalid pto type")

	// ErrPTONotPending is returned when approving or denying a request
	// that has already been decided.
	ErrPTONotPending = errors.New("pto request is not pending")
)

// InvalidHoursError reports the rejected value.
type InvalidHoursError struct {
	Hours decimal.Decimal
}

func (e *InvalidHoursError) Error() string {
	return fmt.Sprintf("invalid hours %s: must be greater than 0 and at most 24", e.Hours)
}

func (e *InvalidHoursError) Unwrap() error {
	return ErrInvalidHours
}

// PTOStateError reports an attempted transition on a non-pending request.
type PTOStateError struct {
	RequestID string
	Status    PTOStatus
}

func (e *PTOStateError) Error() string {
	return fmt.Sprintf("pto request %s is %s, not pending", e.RequestID, e.Status)
}

func (e *PTOStateError) Unwrap() error {
	return ErrPTONotPending
}

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrDepartmentNotFound) ||
		errors.Is(err, ErrPTORequestNotFound)
}

// IsConflict returns true if the error indicates a uniqueness or state
// conflict that a retry with the same input will not fix.
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateEmail) ||
		errors.Is(err, ErrDuplicateDepartment) ||
		errors.Is(err, ErrPTONotPending)
}

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidHours) ||
		errors.Is(err, ErrInvalidPTOType) ||
		IsNotFound(err) ||
		IsConflict(err)
}
