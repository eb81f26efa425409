// Package error defines domain-specific errors for the goat farm application.
package error

import "errors"

// Goat domain errors.
var (
	// ErrGoatNotFound is returned when a goat is not found in the registry.
	ErrGoatNotFound = errors.New("goat not found")

	// ErrDuplicateTagNumber is returned when the tag number is already in use.
	ErrDuplicateTagNumber = errors.New("tag number already in use")

	// ErrInvalidGoatStatus is returned when the goat status is not a known value.
	ErrInvalidGoatStatus = errors.New("invalid goat status")

	// ErrInvalidGoatSex is returned when the goat sex is not a known value.
	ErrInvalidGoatSex = errors.New("invalid goat sex")

	// ErrBirthDateInFuture is returned when the birth date is after today.
	ErrBirthDateInFuture = errors.New("birth date must not be in the future")

	// ErrPurchaseDateInFuture is returned when the purchase date is after today.
	ErrPurchaseDateInFuture = errors.New("purchase date must not be in the future")

	// ErrNegativeWeight is returned when the weight is negative.
	ErrNegativeWeight = errors.New("weight must not be negative")

	// ErrNegativePurchasePrice is returned when the purchase price is negative.
	ErrNegativePurchasePrice = errors.New("purchase price must not be negative")

	// ErrMissingTagNumber is returned when the tag number is empty.
	ErrMissingTagNumber = errors.New("tag number is required")

	// ErrMissingBreed is returned when the breed is empty.
	ErrMissingBreed = errors.New("breed is required")
)

// GoatErrorCode defines error codes for goat errors.
// Format: GOAT-XXYYYY where XX is category and YYYY is specific error.
type GoatErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoatNotFound          GoatErrorCode = "GOAT-010001"
	ErrCodeDuplicateTagNumber    GoatErrorCode = "GOAT-010002"
	ErrCodeInvalidGoatStatus     GoatErrorCode = "GOAT-010003"
	ErrCodeInvalidGoatSex        GoatErrorCode = "GOAT-010004"
	ErrCodeBirthDateInFuture     GoatErrorCode = "GOAT-010005"
	ErrCodePurchaseDateInFuture  GoatErrorCode = "GOAT-010006"
	ErrCodeNegativeWeight        GoatErrorCode = "GOAT-010007"
	ErrCodeNegativePurchasePrice GoatErrorCode = "GOAT-010008"
	ErrCodeMissingTagNumber      GoatErrorCode = "GOAT-010009"
	ErrCodeMissingBreed          GoatErrorCode = "GOAT-010010"
)

// GoatError represents a goat error with code and message.
type GoatError struct {
	Code    GoatErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoatError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoatError) Unwrap() error {
	return e.Err
}

// NewGoatError creates a new GoatError with the given code and message.
func NewGoatError(code GoatErrorCode, message string, err error) *GoatError {
	return &GoatError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
