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

// UpdateTransactionInput represents the input for transaction updates. All
// writable fields are replaced.
type UpdateTransactionInput struct {
	ID          uuid.UUID
	Date        time.Time
	Type        entity.TransactionType
	Category    entity.TransactionCategory
	Description string
	Amount      decimal.Decimal
	Reference   string
	GoatID      *uuid.UUID
	Notes       string
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	goatRepo        adapter.GoatRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	goatRepo adapter.GoatRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		goatRepo:        goatRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	txn, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	fields := transactionFields{
		Date:        input.Date,
		Type:        input.Type,
		Category:    input.Category,
		Description: input.Description,
		Amount:      input.Amount,
		Reference:   input.Reference,
		GoatID:      input.GoatID,
		Notes:       input.Notes,
	}
	if err := validateTransactionFields(fields); err != nil {
		return nil, err
	}

	goat, err := resolveGoatRef(ctx, uc.goatRepo, input.GoatID)
	if err != nil {
		return nil, err
	}

	txn.Date = input.Date
	txn.Type = input.Type
	txn.Category = input.Category
	txn.Description = input.Description
	txn.Amount = input.Amount
	txn.Reference = input.Reference
	txn.GoatID = input.GoatID
	txn.Notes = input.Notes
	txn.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: toTransactionOutput(txn, goat)}, nil
}
