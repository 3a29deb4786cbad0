package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error so callers can branch on the outcome
// without inspecting concrete types.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindStore
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindStore:
		return "store"
	}
	return "unknown"
}

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

// ConflictError represents a uniqueness violation or a delete blocked by
// dependent rows
type ConflictError struct {
	Entity string
	Reason string
}

func (e *ConflictError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %s", e.Entity, e.Reason)
	}
	return fmt.Sprintf("%s conflict", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Reason == t.Reason
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

// StoreError wraps a failure reported by the record store
type StoreError struct {
	Op    string
	Inner error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error: %s: %v", e.Op, e.Inner)
}

func (e *StoreError) Unwrap() error {
	return e.Inner
}

// Entity Not Found Errors
var (
	ErrProjectNotFound     = &NotFoundError{Entity: "project"}
	ErrComponentNotFound   = &NotFoundError{Entity: "component"}
	ErrTestCaseNotFound    = &NotFoundError{Entity: "test case"}
	ErrUserNotFound        = &NotFoundError{Entity: "user"}
	ErrUserRoleNotFound    = &NotFoundError{Entity: "user role"}
	ErrTestStatusNotFound  = &NotFoundError{Entity: "test status"}
	ErrTestReportNotFound  = &NotFoundError{Entity: "test report"}
	ErrTestHistoryNotFound = &NotFoundError{Entity: "test history entry"}
)

// Duplicate name errors
var (
	ErrProjectExists    = &ConflictError{Entity: "project", Reason: "with this name already exists"}
	ErrComponentExists  = &ConflictError{Entity: "component", Reason: "with this name already exists in the project"}
	ErrUserExists       = &ConflictError{Entity: "user", Reason: "with this email already exists"}
	ErrUserRoleExists   = &ConflictError{Entity: "user role", Reason: "with this name already exists"}
	ErrTestStatusExists = &ConflictError{Entity: "test status", Reason: "with this name already exists"}
)

// Dependent rows block the delete
var (
	ErrProjectHasComponents  = &ConflictError{Entity: "project", Reason: "has existing components; delete them first or use cascade"}
	ErrComponentHasTestCases = &ConflictError{Entity: "component", Reason: "has existing test cases"}
	ErrUserHasTestCases      = &ConflictError{Entity: "user", Reason: "has assigned test cases; reassign or delete them first"}
	ErrUserRoleHasUsers      = &ConflictError{Entity: "user role", Reason: "has assigned users; reassign or delete them first"}
	ErrTestStatusInUse       = &ConflictError{Entity: "test status", Reason: "is in use by test cases"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsStore checks if an error is a StoreError
func IsStore(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}

// KindOf reports the kind of err. A nil error has KindUnknown.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case IsValidation(err):
		return KindValidation
	case IsNotFound(err):
		return KindNotFound
	case IsConflict(err):
		return KindConflict
	case IsStore(err):
		return KindStore
	}
	return KindUnknown
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewStoreError wraps a store failure. Returns nil when err is nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Inner: err}
}
