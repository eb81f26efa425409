// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/goat-farm/backend/internal/application/usecase/dashboard"
)

// HerdStatsResponse holds goat counts by status.
type HerdStatsResponse struct {
	Total   int64 `json:"total"`
	Healthy int64 `json:"healthy"`
	Sick    int64 `json:"sick"`
	Sold    int64 `json:"sold"`
}

// FinanceStatsResponse holds the month-to-date figures and inventory value.
type FinanceStatsResponse struct {
	MonthlyIncome  string `json:"monthly_income"`
	MonthlyExpense string `json:"monthly_expense"`
	MonthlyProfit  string `json:"monthly_profit"`
	InventoryValue string `json:"inventory_value"`
}

// DashboardTransactionResponse represents a recent ledger entry.
type DashboardTransactionResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Amount      string  `json:"amount"`
	GoatID      *string `json:"goat_id,omitempty"`
	GoatTag     *string `json:"goat_tag,omitempty"`
	GoatBreed   *string `json:"goat_breed,omitempty"`
}

// MonthlyTrendResponse is one month of the income/expense trend series.
type MonthlyTrendResponse struct {
	Month   string `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Profit  string `json:"profit"`
}

// DashboardResponse represents the full farm overview.
type DashboardResponse struct {
	Herd               HerdStatsResponse              `json:"herd"`
	Finance            FinanceStatsResponse           `json:"finance"`
	RecentTransactions []DashboardTransactionResponse `json:"recent_transactions"`
	MonthlyTrend       []MonthlyTrendResponse         `json:"monthly_trend"`
}

// ToDashboardResponse converts a GetDashboardOutput to a DashboardResponse.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	recent := make([]DashboardTransactionResponse, len(output.RecentTransactions))
	for i, txn := range output.RecentTransactions {
		item := DashboardTransactionResponse{
			ID:          txn.ID.String(),
			Date:        txn.Date.Format("2006-01-02"),
			Type:        string(txn.Type),
			Category:    string(txn.Category),
			Label:       txn.Label,
			Description: txn.Description,
			Amount:      txn.Amount.String(),
			GoatTag:     txn.GoatTag,
			GoatBreed:   txn.GoatBreed,
		}
		if txn.GoatID != nil {
			goatID := txn.GoatID.String()
			item.GoatID = &goatID
		}
		recent[i] = item
	}

	trend := make([]MonthlyTrendResponse, len(output.MonthlyTrend))
	for i, point := range output.MonthlyTrend {
		trend[i] = MonthlyTrendResponse{
			Month:   point.Month,
			Income:  point.Income.String(),
			Expense: point.Expense.String(),
			Profit:  point.Profit.String(),
		}
	}

	return DashboardResponse{
		Herd: HerdStatsResponse{
			Total:   output.Herd.Total,
			Healthy: output.Herd.Healthy,
			Sick:    output.Herd.Sick,
			Sold:    output.Herd.Sold,
		},
		Finance: FinanceStatsResponse{
			MonthlyIncome:  output.Finance.MonthlyIncome.String(),
			MonthlyExpense: output.Finance.MonthlyExpense.String(),
			MonthlyProfit:  output.Finance.MonthlyProfit.String(),
			InventoryValue: output.Finance.InventoryValue.String(),
		},
		RecentTransactions: recent,
		MonthlyTrend:       trend,
	}
}
