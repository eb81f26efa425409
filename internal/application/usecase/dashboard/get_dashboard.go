// Package dashboard contains the farm overview use case.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
)

const (
	// TrendMonths is the number of calendar months in the trend series.
	TrendMonths = 6

	// RecentTransactionLimit is the number of ledger entries shown on the
	// dashboard.
	RecentTransactionLimit = 5
)

// HerdStats holds goat counts by status.
type HerdStats struct {
	Total   int64
	Healthy int64
	Sick    int64
	Sold    int64
}

// FinanceStats holds the month-to-date money figures and the inventory value.
type FinanceStats struct {
	MonthlyIncome  decimal.Decimal
	MonthlyExpense decimal.Decimal
	MonthlyProfit  decimal.Decimal
	InventoryValue decimal.Decimal
}

// RecentTransactionOutput is a dashboard ledger entry with its goat identity.
type RecentTransactionOutput struct {
	ID          uuid.UUID
	Date        time.Time
	Type        entity.TransactionType
	Category    entity.TransactionCategory
	Label       string
	Description string
	Amount      decimal.Decimal
	GoatID      *uuid.UUID
	GoatTag     *string
	GoatBreed   *string
}

// MonthlyTrendPoint is one month of the income/expense trend series.
type MonthlyTrendPoint struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Profit  decimal.Decimal
}

// GetDashboardOutput represents the full farm overview.
type GetDashboardOutput struct {
	Herd               HerdStats
	Finance            FinanceStats
	RecentTransactions []RecentTransactionOutput
	MonthlyTrend       []MonthlyTrendPoint
}

// GetDashboardUseCase assembles the farm overview: herd counts, month-to-date
// finances, inventory value, recent ledger entries and the 6-month trend.
type GetDashboardUseCase struct {
	reportingRepo adapter.ReportingRepository
	now           func() time.Time
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(reportingRepo adapter.ReportingRepository) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		reportingRepo: reportingRepo,
		now:           time.Now,
	}
}

// Execute computes the dashboard. Any repository failure aborts the whole
// computation: no partial overview is returned.
func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*GetDashboardOutput, error) {
	now := uc.now().UTC()

	herd, err := uc.herdStats(ctx)
	if err != nil {
		return nil, err
	}

	finance, err := uc.financeStats(ctx, now)
	if err != nil {
		return nil, err
	}

	recent, err := uc.recentTransactions(ctx)
	if err != nil {
		return nil, err
	}

	trend, err := uc.monthlyTrend(ctx, now)
	if err != nil {
		return nil, err
	}

	return &GetDashboardOutput{
		Herd:               herd,
		Finance:            finance,
		RecentTransactions: recent,
		MonthlyTrend:       trend,
	}, nil
}

func (uc *GetDashboardUseCase) herdStats(ctx context.Context) (HerdStats, error) {
	total, err := uc.reportingRepo.CountGoats(ctx)
	if err != nil {
		return HerdStats{}, fmt.Errorf("failed to count goats: %w", err)
	}

	counts := make(map[entity.GoatStatus]int64, 3)
	for _, status := range []entity.GoatStatus{entity.GoatStatusHealthy, entity.GoatStatusSick, entity.GoatStatusSold} {
		count, err := uc.reportingRepo.CountGoatsByStatus(ctx, status)
		if err != nil {
			return HerdStats{}, fmt.Errorf("failed to count %s goats: %w", status, err)
		}
		counts[status] = count
	}

	return HerdStats{
		Total:   total,
		Healthy: counts[entity.GoatStatusHealthy],
		Sick:    counts[entity.GoatStatusSick],
		Sold:    counts[entity.GoatStatusSold],
	}, nil
}

// financeStats sums the month-to-date income and expense. The window is
// open-ended on purpose: everything dated on or after the first of the
// current month counts, matching how the trend's current month fills in as
// days pass.
func (uc *GetDashboardUseCase) financeStats(ctx context.Context, now time.Time) (FinanceStats, error) {
	monthStart := startOfMonth(now)
	incomeType := entity.TransactionTypeIncome
	expenseType := entity.TransactionTypeExpense

	income, err := uc.reportingRepo.SumTransactionAmount(ctx, adapter.TransactionSumFilter{
		Type: &incomeType,
		From: &monthStart,
	})
	if err != nil {
		return FinanceStats{}, fmt.Errorf("failed to sum monthly income: %w", err)
	}

	expense, err := uc.reportingRepo.SumTransactionAmount(ctx, adapter.TransactionSumFilter{
		Type: &expenseType,
		From: &monthStart,
	})
	if err != nil {
		return FinanceStats{}, fmt.Errorf("failed to sum monthly expense: %w", err)
	}

	inventory, err := uc.reportingRepo.SumGoatPurchasePrice(ctx, entity.AliveStatuses())
	if err != nil {
		return FinanceStats{}, fmt.Errorf("failed to sum inventory value: %w", err)
	}

	return FinanceStats{
		MonthlyIncome:  income,
		MonthlyExpense: expense,
		MonthlyProfit:  income.Sub(expense),
		InventoryValue: inventory,
	}, nil
}

func (uc *GetDashboardUseCase) recentTransactions(ctx context.Context) ([]RecentTransactionOutput, error) {
	rows, err := uc.reportingRepo.FindRecentTransactions(ctx, RecentTransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	recent := make([]RecentTransactionOutput, 0, len(rows))
	for _, row := range rows {
		recent = append(recent, RecentTransactionOutput{
			ID:          row.ID,
			Date:        row.Date,
			Type:        row.Type,
			Category:    row.Category,
			Label:       row.Category.Label(),
			Description: row.Description,
			Amount:      row.Amount,
			GoatID:      row.GoatID,
			GoatTag:     row.GoatTag,
			GoatBreed:   row.GoatBreed,
		})
	}

	return recent, nil
}

// monthlyTrend builds the income/expense series over closed calendar-month
// windows, oldest first, ending with the current month.
func (uc *GetDashboardUseCase) monthlyTrend(ctx context.Context, now time.Time) ([]MonthlyTrendPoint, error) {
	incomeType := entity.TransactionTypeIncome
	expenseType := entity.TransactionTypeExpense

	windows := monthWindows(now, TrendMonths)
	trend := make([]MonthlyTrendPoint, 0, len(windows))
	for _, window := range windows {
		from, to := window.Start, window.End

		income, err := uc.reportingRepo.SumTransactionAmount(ctx, adapter.TransactionSumFilter{
			Type: &incomeType,
			From: &from,
			To:   &to,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to sum income for %s: %w", window.Label, err)
		}

		expense, err := uc.reportingRepo.SumTransactionAmount(ctx, adapter.TransactionSumFilter{
			Type: &expenseType,
			From: &from,
			To:   &to,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to sum expense for %s: %w", window.Label, err)
		}

		trend = append(trend, MonthlyTrendPoint{
			Month:   window.Label,
			Income:  income,
			Expense: expense,
			Profit:  income.Sub(expense),
		})
	}

	return trend, nil
}
