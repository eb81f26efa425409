// Package transaction contains transaction ledger use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Date        time.Time
	Type        entity.TransactionType
	Category    entity.TransactionCategory
	Description string
	Amount      decimal.Decimal
	Reference   string
	GoatID      *uuid.UUID
	Notes       string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	goatRepo        adapter.GoatRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	goatRepo adapter.GoatRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		goatRepo:        goatRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(transactionFields(input)); err != nil {
		return nil, err
	}

	goat, err := resolveGoatRef(ctx, uc.goatRepo, input.GoatID)
	if err != nil {
		return nil, err
	}

	txn := entity.NewTransaction(
		input.Date,
		input.Type,
		input.Category,
		input.Description,
		input.Amount,
		input.Reference,
		input.GoatID,
		input.Notes,
	)

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: toTransactionOutput(txn, goat)}, nil
}
