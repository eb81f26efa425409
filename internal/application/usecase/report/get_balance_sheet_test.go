// Package report contains the financial report use cases.
package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
)

func newBalanceSheetUseCase(repo adapter.ReportingRepository, now time.Time) *GetBalanceSheetUseCase {
	uc := NewGetBalanceSheetUseCase(repo)
	uc.now = func() time.Time { return now }
	return uc
}

func TestGetBalanceSheetUseCase_Execute_InitialCapitalOnly(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
	repo := &fakeReportingRepository{
		entries: []fakeLedgerEntry{
			{Date: day(2025, time.August, 20), Type: entity.TransactionTypeIncome, Category: entity.CategoryInitialCapital, Amount: decimal.NewFromInt(50_000_000)},
		},
	}

	uc := newBalanceSheetUseCase(repo, now)
	output, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.True(t, output.Cash.Equal(decimal.NewFromInt(50_000_000)))
	assert.True(t, output.Inventory.IsZero())
	assert.True(t, output.TotalAssets.Equal(decimal.NewFromInt(50_000_000)))
	assert.True(t, output.InitialCapital.Equal(decimal.NewFromInt(50_000_000)))
	assert.True(t, output.RetainedEarnings.IsZero())
	assert.True(t, output.TotalEquity.Equal(decimal.NewFromInt(50_000_000)))
	assert.True(t, output.Balanced)
}

func TestGetBalanceSheetUseCase_Execute_GoatPurchase(t *testing.T) {
	// A single goat purchase with no income: the cash leaves the ledger and
	// reappears as herd inventory.
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
	repo := &fakeReportingRepository{
		entries: []fakeLedgerEntry{
			{Date: day(2026, time.March, 5), Type: entity.TransactionTypeExpense, Category: entity.CategoryPurchaseOfGoat, Amount: decimal.NewFromInt(2_000_000)},
		},
		goats: []fakeGoat{
			{Status: entity.GoatStatusHealthy, PurchasePrice: decimal.NewFromInt(2_000_000)},
		},
	}

	uc := newBalanceSheetUseCase(repo, now)
	output, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.True(t, output.Cash.Equal(decimal.NewFromInt(-2_000_000)))
	assert.True(t, output.Inventory.Equal(decimal.NewFromInt(2_000_000)))
	assert.True(t, output.TotalAssets.IsZero())
	assert.True(t, output.InitialCapital.IsZero())
	assert.True(t, output.RetainedEarnings.Equal(decimal.NewFromInt(-2_000_000)))
}

func TestGetBalanceSheetUseCase_Execute_MixedActivity(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
	repo := &fakeReportingRepository{
		entries: []fakeLedgerEntry{
			{Date: day(2025, time.August, 20), Type: entity.TransactionTypeIncome, Category: entity.CategoryInitialCapital, Amount: decimal.NewFromInt(50_000_000)},
			{Date: day(2026, time.January, 10), Type: entity.TransactionTypeExpense, Category: entity.CategoryPurchaseOfGoat, Amount: decimal.NewFromInt(3_000_000)},
			{Date: day(2026, time.April, 2), Type: entity.TransactionTypeIncome, Category: entity.CategorySaleOfMilk, Amount: decimal.NewFromInt(1_200_000)},
			{Date: day(2026, time.May, 15), Type: entity.TransactionTypeExpense, Category: entity.CategoryPurchaseOfFeed, Amount: decimal.NewFromInt(700_000)},
		},
		goats: []fakeGoat{
			{Status: entity.GoatStatusHealthy, PurchasePrice: decimal.NewFromInt(3_000_000)},
			// Sold and deceased goats never count toward inventory
			{Status: entity.GoatStatusSold, PurchasePrice: decimal.NewFromInt(2_500_000)},
			{Status: entity.GoatStatusDeceased, PurchasePrice: decimal.NewFromInt(1_800_000)},
		},
	}

	uc := newBalanceSheetUseCase(repo, now)
	output, err := uc.Execute(context.Background())
	require.NoError(t, err)

	// cash = 51,200,000 - 3,700,000
	assert.True(t, output.Cash.Equal(decimal.NewFromInt(47_500_000)))
	assert.True(t, output.Inventory.Equal(decimal.NewFromInt(3_000_000)))
	assert.True(t, output.TotalAssets.Equal(decimal.NewFromInt(50_500_000)))
	assert.True(t, output.InitialCapital.Equal(decimal.NewFromInt(50_000_000)))
	assert.True(t, output.RetainedEarnings.Equal(decimal.NewFromInt(-2_500_000)))
	assert.Equal(t, now, output.AsOf)
}

func TestGetBalanceSheetUseCase_Execute_AlwaysBalanced(t *testing.T) {
	// Equity is defined off the asset total, so the equation holds for any
	// ledger contents.
	repos := []*fakeReportingRepository{
		{},
		{entries: []fakeLedgerEntry{
			{Date: day(2026, time.June, 1), Type: entity.TransactionTypeExpense, Category: entity.CategoryOther, Amount: decimal.NewFromFloat(123.45)},
		}},
		{
			entries: []fakeLedgerEntry{
				{Date: day(2026, time.June, 1), Type: entity.TransactionTypeIncome, Category: entity.CategorySaleOfGoat, Amount: decimal.NewFromFloat(9_999_999.99)},
			},
			goats: []fakeGoat{{Status: entity.GoatStatusSick, PurchasePrice: decimal.NewFromFloat(0.01)}},
		},
	}

	for _, repo := range repos {
		uc := newBalanceSheetUseCase(repo, time.Now().UTC())
		output, err := uc.Execute(context.Background())
		require.NoError(t, err)

		diff := output.TotalAssets.Sub(output.TotalEquity).Abs()
		assert.True(t, diff.LessThan(decimal.NewFromInt(1)), "diff = %s", diff)
		assert.True(t, output.Balanced)
	}
}
