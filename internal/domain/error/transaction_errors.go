// Package error defines domain-specific errors for the goat farm application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the ledger.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionCategory is returned when the category is not part of the closed set.
	ErrInvalidTransactionCategory = errors.New("invalid transaction category")

	// ErrInvalidTransactionAmount is returned when the amount is zero or negative.
	ErrInvalidTransactionAmount = errors.New("amount must be greater than zero")

	// ErrTransactionDateInFuture is returned when the transaction date is after today.
	ErrTransactionDateInFuture = errors.New("transaction date must not be in the future")

	// ErrMissingDescription is returned when the description is empty.
	ErrMissingDescription = errors.New("description is required")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrGoatNotFoundForTransaction is returned when the referenced goat does not exist.
	ErrGoatNotFoundForTransaction = errors.New("referenced goat not found")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTransactionNotFound        TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionType     TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionCategory TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidTransactionAmount   TransactionErrorCode = "TXN-010004"
	ErrCodeTransactionDateInFuture    TransactionErrorCode = "TXN-010005"
	ErrCodeMissingDescription         TransactionErrorCode = "TXN-010006"
	ErrCodeDescriptionTooLong         TransactionErrorCode = "TXN-010007"
	ErrCodeTxnGoatNotFound            TransactionErrorCode = "TXN-010008"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
