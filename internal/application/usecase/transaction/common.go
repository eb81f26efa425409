// Package transaction contains transaction ledger use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for descriptions.
	MaxDescriptionLength = 255
)

// GoatRefOutput identifies the goat a transaction is linked to.
type GoatRefOutput struct {
	ID        uuid.UUID
	TagNumber string
	Breed     string
}

// TransactionOutput represents a transaction in use case outputs.
type TransactionOutput struct {
	ID          uuid.UUID
	Date        time.Time
	Type        entity.TransactionType
	Category    entity.TransactionCategory
	Label       string
	Description string
	Amount      decimal.Decimal
	Reference   string
	Goat        *GoatRefOutput
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// toTransactionOutput converts a transaction entity and its optional goat to
// an output representation.
func toTransactionOutput(txn *entity.Transaction, goat *entity.Goat) *TransactionOutput {
	out := &TransactionOutput{
		ID:          txn.ID,
		Date:        txn.Date,
		Type:        txn.Type,
		Category:    txn.Category,
		Label:       txn.Category.Label(),
		Description: txn.Description,
		Amount:      txn.Amount,
		Reference:   txn.Reference,
		Notes:       txn.Notes,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}

	if goat != nil {
		out.Goat = &GoatRefOutput{
			ID:        goat.ID,
			TagNumber: goat.TagNumber,
			Breed:     goat.Breed,
		}
	}

	return out
}

// transactionFields holds the writable attributes shared by create and update.
type transactionFields struct {
	Date        time.Time
	Type        entity.TransactionType
	Category    entity.TransactionCategory
	Description string
	Amount      decimal.Decimal
	Reference   string
	GoatID      *uuid.UUID
	Notes       string
}

// validateTransactionFields checks the field-level invariants shared by
// create and update.
func validateTransactionFields(fields transactionFields) error {
	if !fields.Type.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !fields.Category.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionCategory,
			fmt.Sprintf("unknown category %q", fields.Category),
			domainerror.ErrInvalidTransactionCategory,
		)
	}

	if fields.Description == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingDescription,
			"description is required",
			domainerror.ErrMissingDescription,
		)
	}
	if len(fields.Description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if !fields.Amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if fields.Date.After(endOfToday()) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionDateInFuture,
			"transaction date must not be in the future",
			domainerror.ErrTransactionDateInFuture,
		)
	}

	return nil
}

// resolveGoatRef loads the referenced goat, if any, translating a missing
// goat into a transaction validation error.
func resolveGoatRef(ctx context.Context, goatRepo adapter.GoatRepository, goatID *uuid.UUID) (*entity.Goat, error) {
	if goatID == nil {
		return nil, nil
	}

	goat, err := goatRepo.FindByID(ctx, *goatID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoatNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnGoatNotFound,
				"referenced goat not found",
				domainerror.ErrGoatNotFoundForTransaction,
			)
		}
		return nil, fmt.Errorf("failed to find referenced goat: %w", err)
	}

	return goat, nil
}

// endOfToday returns the last instant of the current UTC day.
func endOfToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
}
