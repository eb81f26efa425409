// Package transaction contains transaction ledger use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Type      *entity.TransactionType
	Category  *entity.TransactionCategory
	StartDate *time.Time
	EndDate   *time.Time
	GoatID    *uuid.UUID
	Page      int
	Limit     int
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// ListTransactionsUseCase handles listing ledger entries, newest date first.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves a page of transactions matching the filters.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Page < 1 {
		input.Page = defaultPage
	}
	if input.Limit < 1 {
		input.Limit = defaultLimit
	}
	if input.Limit > maxLimit {
		input.Limit = maxLimit
	}

	result, err := uc.transactionRepo.FindByFilter(
		ctx,
		adapter.TransactionFilter{
			Type:      input.Type,
			Category:  input.Category,
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
			GoatID:    input.GoatID,
		},
		adapter.TransactionPagination{
			Page:  input.Page,
			Limit: input.Limit,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	transactions := make([]*TransactionOutput, 0, len(result.Transactions))
	for _, item := range result.Transactions {
		transactions = append(transactions, toTransactionOutput(item.Transaction, item.Goat))
	}

	return &ListTransactionsOutput{
		Transactions: transactions,
		Total:        result.Total,
		Page:         result.Page,
		Limit:        result.Limit,
		TotalPages:   result.TotalPages,
	}, nil
}
