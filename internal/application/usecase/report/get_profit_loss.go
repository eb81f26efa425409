// Package report contains the financial report use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// GetProfitLossInput represents the requested date range. Empty strings take
// the defaults: start of the current year and today.
type GetProfitLossInput struct {
	StartDate string
	EndDate   string
}

// ReportLine is one category's total within the range.
type ReportLine struct {
	Category entity.TransactionCategory
	Label    string
	Amount   decimal.Decimal
}

// GetProfitLossOutput represents the profit and loss statement.
type GetProfitLossOutput struct {
	StartDate    time.Time
	EndDate      time.Time
	IncomeLines  []ReportLine
	ExpenseLines []ReportLine
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetProfit    decimal.Decimal
	ProfitMargin decimal.Decimal // Percent of income kept as profit; 0 when there is no income
}

// GetProfitLossUseCase builds the categorized profit and loss statement over
// an inclusive date range.
type GetProfitLossUseCase struct {
	reportingRepo adapter.ReportingRepository
	now           func() time.Time
}

// NewGetProfitLossUseCase creates a new GetProfitLossUseCase instance.
func NewGetProfitLossUseCase(reportingRepo adapter.ReportingRepository) *GetProfitLossUseCase {
	return &GetProfitLossUseCase{
		reportingRepo: reportingRepo,
		now:           time.Now,
	}
}

// Execute computes the statement. An unparseable boundary fails before any
// query runs; a start after the end simply yields an empty statement.
func (uc *GetProfitLossUseCase) Execute(ctx context.Context, input GetProfitLossInput) (*GetProfitLossOutput, error) {
	now := uc.now().UTC()

	start := startOfYear(now)
	if input.StartDate != "" {
		parsed, err := parseReportDate(input.StartDate)
		if err != nil {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeInvalidStartDate,
				fmt.Sprintf("invalid start date %q, expected YYYY-MM-DD", input.StartDate),
				domainerror.ErrInvalidStartDate,
			)
		}
		start = parsed
	}

	end := now
	if input.EndDate != "" {
		parsed, err := parseReportDate(input.EndDate)
		if err != nil {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeInvalidEndDate,
				fmt.Sprintf("invalid end date %q, expected YYYY-MM-DD", input.EndDate),
				domainerror.ErrInvalidEndDate,
			)
		}
		end = parsed
	}
	end = endOfDay(end)

	incomeLines, totalIncome, err := uc.categoryLines(ctx, entity.TransactionTypeIncome, start, end)
	if err != nil {
		return nil, err
	}

	expenseLines, totalExpense, err := uc.categoryLines(ctx, entity.TransactionTypeExpense, start, end)
	if err != nil {
		return nil, err
	}

	netProfit := totalIncome.Sub(totalExpense)

	// Margin guards the zero denominator: a farm with no income has 0% margin,
	// not an error.
	margin := decimal.Zero
	if totalIncome.IsPositive() {
		margin = netProfit.Div(totalIncome).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return &GetProfitLossOutput{
		StartDate:    start,
		EndDate:      end,
		IncomeLines:  incomeLines,
		ExpenseLines: expenseLines,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		NetProfit:    netProfit,
		ProfitMargin: margin,
	}, nil
}

// categoryLines loads the per-category sums for one transaction type and
// totals them. Every transaction in range lands in exactly one line, so the
// line total and the direct sum agree by construction.
func (uc *GetProfitLossUseCase) categoryLines(
	ctx context.Context,
	transactionType entity.TransactionType,
	start, end time.Time,
) ([]ReportLine, decimal.Decimal, error) {
	totals, err := uc.reportingRepo.SumTransactionAmountByCategory(ctx, transactionType, start, end)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to sum %s by category: %w", transactionType, err)
	}

	lines := make([]ReportLine, 0, len(totals))
	grandTotal := decimal.Zero
	for _, item := range totals {
		lines = append(lines, ReportLine{
			Category: item.Category,
			Label:    item.Category.Label(),
			Amount:   item.Total,
		})
		grandTotal = grandTotal.Add(item.Total)
	}

	return lines, grandTotal, nil
}
