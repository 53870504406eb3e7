package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in company"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NoCurrentPositionError is raised when an employee exists but has no open
// position assignment. Kept distinct from NotFoundError: the entity is there,
// its temporal state is what's missing.
type NoCurrentPositionError struct {
	EmployeeID string
}

func (e *NoCurrentPositionError) Error() string {
	if e.EmployeeID != "" {
		return fmt.Sprintf("employee %s has no current position", e.EmployeeID)
	}
	return "employee has no current position"
}

// Is enables errors.Is() comparison for NoCurrentPositionError regardless of
// which employee it was raised for.
func (e *NoCurrentPositionError) Is(target error) bool {
	_, ok := target.(*NoCurrentPositionError)
	return ok
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrCompanyNotFound            = &NotFoundError{Entity: "company"}
	ErrEmployeeNotFound           = &NotFoundError{Entity: "employee"}
	ErrPostNotFound               = &NotFoundError{Entity: "post"}
	ErrPositionNotFound           = &NotFoundError{Entity: "position"}
	ErrParentPositionNotFound     = &NotFoundError{Entity: "parent position"}
	ErrPositionAssignmentNotFound = &NotFoundError{Entity: "position assignment"}
	ErrPostAssignmentNotFound     = &NotFoundError{Entity: "post assignment"}
	ErrScoreNotFound              = &NotFoundError{Entity: "score"}
	ErrPositionVacant             = &NotFoundError{Entity: "current holder"}
)

// Already Exists Errors
var (
	ErrCompanyExists           = &AlreadyExistsError{Entity: "company", Context: "with this name"}
	ErrEmployeeExists          = &AlreadyExistsError{Entity: "employee", Context: "with this email"}
	ErrPostExists              = &AlreadyExistsError{Entity: "post", Context: "with this name in the company"}
	ErrOpenPositionAssignment  = &AlreadyExistsError{Entity: "open position assignment", Context: "for this employee"}
	ErrOpenPostAssignment      = &AlreadyExistsError{Entity: "open post assignment", Context: "for this employee"}
	ErrPositionAlreadyOccupied = &AlreadyExistsError{Entity: "open position assignment", Context: "for this position"}
)

// Business Logic Errors
var (
	ErrCyclicParent          = &ValidationError{Field: "parent_id", Message: "position cannot become its own ancestor"}
	ErrSelfParent            = &ValidationError{Field: "parent_id", Message: "position cannot be its own parent"}
	ErrParentCompanyMismatch = &ValidationError{Field: "parent_id", Message: "parent position belongs to a different company"}
	ErrStartAfterEnd         = &ValidationError{Field: "end_date", Message: "end date precedes start date"}
	ErrDateInFuture          = &ValidationError{Field: "start_date", Message: "assignment dates cannot be in the future"}
	ErrScoreOutOfRange       = &ValidationError{Field: "score", Message: "sub-scores must be within [1,5]"}
	ErrInvalidScoreWindow    = &ValidationError{Field: "window", Message: "window start must not be after window end"}
	ErrInvalidReparentMode   = &ValidationError{Field: "mode", Message: "mode must be with-subordinates or without-subordinates"}
	ErrNoCurrentPosition     = &NoCurrentPositionError{}
)

// Authentication Errors
var (
	ErrInvalidToken = &AuthenticationError{Message: "invalid or expired token"}
	ErrMissingToken = &AuthenticationError{Message: "authorization token is required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsNoCurrentPosition checks if an error is a NoCurrentPositionError
func IsNoCurrentPosition(err error) bool {
	var ncpErr *NoCurrentPositionError
	return errors.As(err, &ncpErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewNoCurrentPositionError creates a NoCurrentPositionError for an employee
func NewNoCurrentPositionError(employeeID string) error {
	return &NoCurrentPositionError{EmployeeID: employeeID}
}
