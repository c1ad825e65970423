package error

import (
	"errors"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidationFailed    = 4000
	CodeInvalidID           = 4001
	CodeUserNotFound        = 4040
	CodeTransactionNotFound = 4041
	CodeEmailInUse          = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidID is returned when a path identifier is not an integer
	ErrInvalidID = errors.New("id must be an integer")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrEmailInUse is returned when creating or updating a user with an email
	// that another user already owns
	ErrEmailInUse = errors.New("email already in use")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidID):
		return CodeInvalidID
	case errors.Is(err, ErrInvalidRequest):
		return CodeValidationFailed
	case errors.Is(err, ErrEmailInUse):
		return CodeEmailInUse
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	default:
		return CodeInternalServer
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsConflictError checks if the error is a uniqueness conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrEmailInUse)
}
