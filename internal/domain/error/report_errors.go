// Package error defines domain-specific errors for the goat farm application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidStartDate is returned when the start date cannot be parsed.
	ErrInvalidStartDate = errors.New("invalid start date")

	// ErrInvalidEndDate is returned when the end date cannot be parsed.
	ErrInvalidEndDate = errors.New("invalid end date")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidStartDate ReportErrorCode = "RPT-010001"
	ErrCodeInvalidEndDate   ReportErrorCode = "RPT-010002"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
