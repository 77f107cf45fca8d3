package domain

import "errors"

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// ErrDataIntegrity marks stored data that violates an invariant the
	// application relies on (e.g. a parent reference pointing nowhere).
	ErrDataIntegrity = errors.New("data integrity violation")
)

// Problem codes carried by ValidationError
const (
	CodeCyclicAccount    = "cyclic_account"
	CodeInvalidParent    = "invalid_parent"
	CodeInvalidReference = "invalid_reference"
	CodeConstraint       = "constraint_violation"
)

// ValidationError is a rejected request with a stable, machine-readable Code
// so clients can tell a cycle from an unknown parent without parsing Message.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is lets errors.Is(err, ErrValidation) match
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// UnauthorizedError is an authentication failure with a client-safe message
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string { return e.Message }

func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }

// ConflictError represents a resource conflict with details about the existing resource
type ConflictError struct {
	Message      string // Human-readable error message
	ResourceType string // account, bank_account, operational_year, ...
	ResourceID   int64  // ID of the existing/conflicting resource, 0 if unknown
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return e.Message
}

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
