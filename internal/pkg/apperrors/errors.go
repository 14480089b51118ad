package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Company errors
var (
	ErrCompanyNotFound = errors.New("company not found")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Slot errors
var (
	ErrSlotNotFound     = errors.New("interview slot not found")
	ErrSlotBooked       = errors.New("interview slot is booked")
	ErrSlotNotAvailable = errors.New("interview slot is not available for booking")
	ErrSlotNotBooked    = errors.New("interview slot is not booked")
	ErrInvalidDate      = errors.New("invalid date format")
	ErrInvalidTime      = errors.New("invalid time format")
)

// Import errors
var (
	ErrEmptyImport = errors.New("no valid records found in import data")
)

// Offer errors
var (
	ErrInvalidOfferStatus = errors.New("invalid offer status")
)

// Storage errors
var (
	// ErrStorage wraps persistence failures. A mutation that fails with
	// ErrStorage has not been applied to the in-memory state.
	ErrStorage = errors.New("storage failure")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
