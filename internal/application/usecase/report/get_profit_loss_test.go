// Package report contains the financial report use cases.
package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// fakeLedgerEntry is a transaction row held by the fake repository.
type fakeLedgerEntry struct {
	Date     time.Time
	Type     entity.TransactionType
	Category entity.TransactionCategory
	Amount   decimal.Decimal
}

// fakeReportingRepository serves aggregates from in-memory data.
type fakeReportingRepository struct {
	entries []fakeLedgerEntry
	goats   []fakeGoat
}

type fakeGoat struct {
	Status        entity.GoatStatus
	PurchasePrice decimal.Decimal
}

func (f *fakeReportingRepository) CountGoats(_ context.Context) (int64, error) {
	return int64(len(f.goats)), nil
}

func (f *fakeReportingRepository) CountGoatsByStatus(_ context.Context, status entity.GoatStatus) (int64, error) {
	var count int64
	for _, goat := range f.goats {
		if goat.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeReportingRepository) SumGoatPurchasePrice(_ context.Context, statuses []entity.GoatStatus) (decimal.Decimal, error) {
	allowed := map[entity.GoatStatus]bool{}
	for _, status := range statuses {
		allowed[status] = true
	}

	total := decimal.Zero
	for _, goat := range f.goats {
		if allowed[goat.Status] {
			total = total.Add(goat.PurchasePrice)
		}
	}
	return total, nil
}

func (f *fakeReportingRepository) SumTransactionAmount(_ context.Context, filter adapter.TransactionSumFilter) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, entry := range f.entries {
		if filter.Type != nil && entry.Type != *filter.Type {
			continue
		}
		if filter.Category != nil && entry.Category != *filter.Category {
			continue
		}
		if filter.From != nil && entry.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && entry.Date.After(*filter.To) {
			continue
		}
		total = total.Add(entry.Amount)
	}
	return total, nil
}

func (f *fakeReportingRepository) SumTransactionAmountByCategory(_ context.Context, transactionType entity.TransactionType, from, to time.Time) ([]adapter.CategoryTotal, error) {
	totals := map[entity.TransactionCategory]decimal.Decimal{}
	var order []entity.TransactionCategory
	for _, entry := range f.entries {
		if entry.Type != transactionType || entry.Date.Before(from) || entry.Date.After(to) {
			continue
		}
		if _, seen := totals[entry.Category]; !seen {
			order = append(order, entry.Category)
		}
		totals[entry.Category] = totals[entry.Category].Add(entry.Amount)
	}

	result := make([]adapter.CategoryTotal, 0, len(order))
	for _, category := range order {
		result = append(result, adapter.CategoryTotal{Category: category, Total: totals[category]})
	}
	return result, nil
}

func (f *fakeReportingRepository) FindRecentTransactions(_ context.Context, _ int) ([]adapter.RecentTransaction, error) {
	return nil, nil
}

func newProfitLossUseCase(repo adapter.ReportingRepository, now time.Time) *GetProfitLossUseCase {
	uc := NewGetProfitLossUseCase(repo)
	uc.now = func() time.Time { return now }
	return uc
}

func TestGetProfitLossUseCase_Execute(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)

	repo := &fakeReportingRepository{
		entries: []fakeLedgerEntry{
			{Date: day(2026, time.March, 1), Type: entity.TransactionTypeIncome, Category: entity.CategorySaleOfGoat, Amount: decimal.NewFromInt(2_000_000)},
			{Date: day(2026, time.April, 10), Type: entity.TransactionTypeIncome, Category: entity.CategorySaleOfMilk, Amount: decimal.NewFromInt(500_000)},
			{Date: day(2026, time.April, 11), Type: entity.TransactionTypeIncome, Category: entity.CategorySaleOfMilk, Amount: decimal.NewFromInt(250_000)},
			{Date: day(2026, time.May, 2), Type: entity.TransactionTypeExpense, Category: entity.CategoryPurchaseOfFeed, Amount: decimal.NewFromInt(300_000)},
			{Date: day(2026, time.May, 20), Type: entity.TransactionTypeExpense, Category: entity.CategoryHealthCost, Amount: decimal.NewFromInt(200_000)},
		},
	}

	uc := newProfitLossUseCase(repo, now)
	output, err := uc.Execute(context.Background(), GetProfitLossInput{
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
	})
	require.NoError(t, err)

	t.Run("line totals reconcile with grand totals", func(t *testing.T) {
		incomeSum := decimal.Zero
		for _, line := range output.IncomeLines {
			incomeSum = incomeSum.Add(line.Amount)
		}
		expenseSum := decimal.Zero
		for _, line := range output.ExpenseLines {
			expenseSum = expenseSum.Add(line.Amount)
		}

		assert.True(t, incomeSum.Equal(output.TotalIncome))
		assert.True(t, expenseSum.Equal(output.TotalExpense))
		assert.True(t, output.TotalIncome.Equal(decimal.NewFromInt(2_750_000)))
		assert.True(t, output.TotalExpense.Equal(decimal.NewFromInt(500_000)))
	})

	t.Run("net profit and margin", func(t *testing.T) {
		assert.True(t, output.NetProfit.Equal(decimal.NewFromInt(2_250_000)))

		// 2,250,000 / 2,750,000 * 100 rounded to 2 places
		wantMargin := decimal.NewFromFloat(81.82)
		assert.True(t, output.ProfitMargin.Equal(wantMargin), "margin = %s", output.ProfitMargin)
	})

	t.Run("same-category entries collapse into one line", func(t *testing.T) {
		var milkLine *ReportLine
		for i := range output.IncomeLines {
			if output.IncomeLines[i].Category == entity.CategorySaleOfMilk {
				milkLine = &output.IncomeLines[i]
			}
		}
		require.NotNil(t, milkLine)
		assert.True(t, milkLine.Amount.Equal(decimal.NewFromInt(750_000)))
		assert.Equal(t, "Milk Sale", milkLine.Label)
	})
}

func TestGetProfitLossUseCase_Execute_Defaults(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
	repo := &fakeReportingRepository{
		entries: []fakeLedgerEntry{
			// Inside the default year-to-date window
			{Date: day(2026, time.February, 1), Type: entity.TransactionTypeIncome, Category: entity.CategorySaleOfMilk, Amount: decimal.NewFromInt(100_000)},
			// Before January 1st of the current year
			{Date: day(2025, time.December, 31), Type: entity.TransactionTypeIncome, Category: entity.CategorySaleOfMilk, Amount: decimal.NewFromInt(999_999)},
		},
	}

	uc := newProfitLossUseCase(repo, now)
	output, err := uc.Execute(context.Background(), GetProfitLossInput{})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), output.StartDate)
	assert.Equal(t, 20, output.EndDate.Day())
	assert.True(t, output.TotalIncome.Equal(decimal.NewFromInt(100_000)),
		"entries before the year start must be excluded, got %s", output.TotalIncome)
}

func TestGetProfitLossUseCase_Execute_InvalidDates(t *testing.T) {
	uc := newProfitLossUseCase(&fakeReportingRepository{}, time.Now().UTC())

	t.Run("invalid start date", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetProfitLossInput{StartDate: "not-a-date"})
		var reportErr *domainerror.ReportError
		require.True(t, errors.As(err, &reportErr))
		assert.Equal(t, domainerror.ErrCodeInvalidStartDate, reportErr.Code)
	})

	t.Run("invalid end date", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetProfitLossInput{EndDate: "31/12/2026"})
		var reportErr *domainerror.ReportError
		require.True(t, errors.As(err, &reportErr))
		assert.Equal(t, domainerror.ErrCodeInvalidEndDate, reportErr.Code)
	})
}

func TestGetProfitLossUseCase_Execute_StartAfterEnd(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
	repo := &fakeReportingRepository{
		entries: []fakeLedgerEntry{
			{Date: day(2026, time.June, 1), Type: entity.TransactionTypeIncome, Category: entity.CategorySaleOfMilk, Amount: decimal.NewFromInt(100_000)},
		},
	}

	uc := newProfitLossUseCase(repo, now)
	output, err := uc.Execute(context.Background(), GetProfitLossInput{
		StartDate: "2026-07-01",
		EndDate:   "2026-06-01",
	})
	require.NoError(t, err, "an inverted range is empty, not an error")

	assert.Empty(t, output.IncomeLines)
	assert.Empty(t, output.ExpenseLines)
	assert.True(t, output.TotalIncome.IsZero())
	assert.True(t, output.TotalExpense.IsZero())
	assert.True(t, output.NetProfit.IsZero())
	assert.True(t, output.ProfitMargin.IsZero())
}

func TestGetProfitLossUseCase_Execute_ZeroIncomeMargin(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
	repo := &fakeReportingRepository{
		entries: []fakeLedgerEntry{
			{Date: day(2026, time.June, 1), Type: entity.TransactionTypeExpense, Category: entity.CategoryOperationalCost, Amount: decimal.NewFromInt(750_000)},
		},
	}

	uc := newProfitLossUseCase(repo, now)
	output, err := uc.Execute(context.Background(), GetProfitLossInput{})
	require.NoError(t, err)

	assert.True(t, output.NetProfit.Equal(decimal.NewFromInt(-750_000)))
	assert.True(t, output.ProfitMargin.IsZero(), "margin must be zero when there is no income")
}

func TestGetProfitLossUseCase_Execute_Idempotent(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
	repo := &fakeReportingRepository{
		entries: []fakeLedgerEntry{
			{Date: day(2026, time.April, 10), Type: entity.TransactionTypeIncome, Category: entity.CategorySaleOfMilk, Amount: decimal.NewFromInt(500_000)},
			{Date: day(2026, time.May, 2), Type: entity.TransactionTypeExpense, Category: entity.CategoryPurchaseOfFeed, Amount: decimal.NewFromInt(300_000)},
		},
	}

	uc := newProfitLossUseCase(repo, now)
	input := GetProfitLossInput{StartDate: "2026-01-01", EndDate: "2026-12-31"}

	first, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.True(t, first.TotalIncome.Equal(second.TotalIncome))
	assert.True(t, first.TotalExpense.Equal(second.TotalExpense))
	assert.True(t, first.NetProfit.Equal(second.NetProfit))
	require.Equal(t, len(first.IncomeLines), len(second.IncomeLines))
	for i := range first.IncomeLines {
		assert.Equal(t, first.IncomeLines[i].Category, second.IncomeLines[i].Category)
		assert.True(t, first.IncomeLines[i].Amount.Equal(second.IncomeLines[i].Amount))
	}
}

func TestGetProfitLossUseCase_Execute_UnknownCategoryLabel(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
	repo := &fakeReportingRepository{
		entries: []fakeLedgerEntry{
			{Date: day(2026, time.June, 1), Type: entity.TransactionTypeIncome, Category: entity.TransactionCategory("legacy_income"), Amount: decimal.NewFromInt(50_000)},
		},
	}

	uc := newProfitLossUseCase(repo, now)
	output, err := uc.Execute(context.Background(), GetProfitLossInput{})
	require.NoError(t, err)

	require.Len(t, output.IncomeLines, 1)
	assert.Equal(t, "legacy_income", output.IncomeLines[0].Label,
		"unknown categories keep their raw key as label")
	assert.True(t, output.TotalIncome.Equal(decimal.NewFromInt(50_000)))
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}
