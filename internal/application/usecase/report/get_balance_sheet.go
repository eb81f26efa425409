// Package report contains the financial report use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
)

// GetBalanceSheetOutput represents the point-in-time balance sheet.
//
// The equity total is defined to equal the asset total; Balanced reports the
// |assets - equity| < 1 check so the consumer can display it.
type GetBalanceSheetOutput struct {
	AsOf             time.Time
	Cash             decimal.Decimal
	Inventory        decimal.Decimal
	TotalAssets      decimal.Decimal
	InitialCapital   decimal.Decimal
	RetainedEarnings decimal.Decimal
	TotalEquity      decimal.Decimal
	Balanced         bool
}

// GetBalanceSheetUseCase builds the simple balance sheet as of now: cash from
// the all-time ledger, inventory from the live herd's purchase prices.
type GetBalanceSheetUseCase struct {
	reportingRepo adapter.ReportingRepository
	now           func() time.Time
}

// NewGetBalanceSheetUseCase creates a new GetBalanceSheetUseCase instance.
func NewGetBalanceSheetUseCase(reportingRepo adapter.ReportingRepository) *GetBalanceSheetUseCase {
	return &GetBalanceSheetUseCase{
		reportingRepo: reportingRepo,
		now:           time.Now,
	}
}

// Execute computes the balance sheet.
func (uc *GetBalanceSheetUseCase) Execute(ctx context.Context) (*GetBalanceSheetOutput, error) {
	incomeType := entity.TransactionTypeIncome
	expenseType := entity.TransactionTypeExpense

	totalIncome, err := uc.reportingRepo.SumTransactionAmount(ctx, adapter.TransactionSumFilter{
		Type: &incomeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sum all-time income: %w", err)
	}

	totalExpense, err := uc.reportingRepo.SumTransactionAmount(ctx, adapter.TransactionSumFilter{
		Type: &expenseType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sum all-time expense: %w", err)
	}

	cash := totalIncome.Sub(totalExpense)

	inventory, err := uc.reportingRepo.SumGoatPurchasePrice(ctx, entity.AliveStatuses())
	if err != nil {
		return nil, fmt.Errorf("failed to sum inventory value: %w", err)
	}

	totalAssets := cash.Add(inventory)

	initialCapitalCategory := entity.CategoryInitialCapital
	initialCapital, err := uc.reportingRepo.SumTransactionAmount(ctx, adapter.TransactionSumFilter{
		Category: &initialCapitalCategory,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sum initial capital: %w", err)
	}

	retainedEarnings := cash.Sub(initialCapital)
	totalEquity := totalAssets

	return &GetBalanceSheetOutput{
		AsOf:             uc.now().UTC(),
		Cash:             cash,
		Inventory:        inventory,
		TotalAssets:      totalAssets,
		InitialCapital:   initialCapital,
		RetainedEarnings: retainedEarnings,
		TotalEquity:      totalEquity,
		Balanced:         totalAssets.Sub(totalEquity).Abs().LessThan(decimal.NewFromInt(1)),
	}, nil
}
