// Package goat contains goat registry use cases.
package goat

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

// GetGoatInput represents the input for retrieving a goat.
type GetGoatInput struct {
	ID uuid.UUID
}

// GoatTransactionOutput represents a ledger entry linked to the goat.
type GoatTransactionOutput struct {
	ID          uuid.UUID
	Date        time.Time
	Type        entity.TransactionType
	Category    entity.TransactionCategory
	Label       string
	Description string
	Amount      decimal.Decimal
	Reference   string
}

// GetGoatOutput represents the output of retrieving a goat, including its
// transaction history, newest first.
type GetGoatOutput struct {
	Goat         *GoatOutput
	Transactions []GoatTransactionOutput
}

// GetGoatUseCase handles retrieving a single goat with its ledger history.
type GetGoatUseCase struct {
	goatRepo        adapter.GoatRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetGoatUseCase creates a new GetGoatUseCase instance.
func NewGetGoatUseCase(
	goatRepo adapter.GoatRepository,
	transactionRepo adapter.TransactionRepository,
) *GetGoatUseCase {
	return &GetGoatUseCase{
		goatRepo:        goatRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves the goat and its linked transactions.
func (uc *GetGoatUseCase) Execute(ctx context.Context, input GetGoatInput) (*GetGoatOutput, error) {
	goat, err := uc.goatRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoatNotFound) {
			return nil, domainerror.NewGoatError(
				domainerror.ErrCodeGoatNotFound,
				"goat not found",
				domainerror.ErrGoatNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goat: %w", err)
	}

	transactions, err := uc.transactionRepo.FindByGoat(ctx, goat.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goat transactions: %w", err)
	}

	history := make([]GoatTransactionOutput, 0, len(transactions))
	for _, txn := range transactions {
		history = append(history, GoatTransactionOutput{
			ID:          txn.ID,
			Date:        txn.Date,
			Type:        txn.Type,
			Category:    txn.Category,
			Label:       txn.Category.Label(),
			Description: txn.Description,
			Amount:      txn.Amount,
			Reference:   txn.Reference,
		})
	}

	return &GetGoatOutput{
		Goat:         toGoatOutput(goat),
		Transactions: history,
	}, nil
}
