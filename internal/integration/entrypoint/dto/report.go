// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/goat-farm/backend/internal/application/usecase/report"
)

// ReportLineResponse is one category's total within the report range.
type ReportLineResponse struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Amount   string `json:"amount"`
}

// ProfitLossResponse represents the profit and loss statement.
type ProfitLossResponse struct {
	StartDate    string               `json:"start_date"`
	EndDate      string               `json:"end_date"`
	Income       []ReportLineResponse `json:"income"`
	Expenses     []ReportLineResponse `json:"expenses"`
	TotalIncome  string               `json:"total_income"`
	TotalExpense string               `json:"total_expense"`
	NetProfit    string               `json:"net_profit"`
	ProfitMargin string               `json:"profit_margin"`
}

// BalanceSheetResponse represents the point-in-time balance sheet.
type BalanceSheetResponse struct {
	AsOf             string `json:"as_of"`
	Cash             string `json:"cash"`
	Inventory        string `json:"inventory"`
	TotalAssets      string `json:"total_assets"`
	InitialCapital   string `json:"initial_capital"`
	RetainedEarnings string `json:"retained_earnings"`
	TotalEquity      string `json:"total_equity"`
	Balanced         bool   `json:"balanced"`
}

// ToProfitLossResponse converts a GetProfitLossOutput to a ProfitLossResponse.
func ToProfitLossResponse(output *report.GetProfitLossOutput) ProfitLossResponse {
	return ProfitLossResponse{
		StartDate:    output.StartDate.Format("2006-01-02"),
		EndDate:      output.EndDate.Format("2006-01-02"),
		Income:       toReportLines(output.IncomeLines),
		Expenses:     toReportLines(output.ExpenseLines),
		TotalIncome:  output.TotalIncome.String(),
		TotalExpense: output.TotalExpense.String(),
		NetProfit:    output.NetProfit.String(),
		ProfitMargin: output.ProfitMargin.String(),
	}
}

// ToBalanceSheetResponse converts a GetBalanceSheetOutput to a BalanceSheetResponse.
func ToBalanceSheetResponse(output *report.GetBalanceSheetOutput) BalanceSheetResponse {
	return BalanceSheetResponse{
		AsOf:             output.AsOf.Format(time.RFC3339),
		Cash:             output.Cash.String(),
		Inventory:        output.Inventory.String(),
		TotalAssets:      output.TotalAssets.String(),
		InitialCapital:   output.InitialCapital.String(),
		RetainedEarnings: output.RetainedEarnings.String(),
		TotalEquity:      output.TotalEquity.String(),
		Balanced:         output.Balanced,
	}
}

func toReportLines(lines []report.ReportLine) []ReportLineResponse {
	result := make([]ReportLineResponse, len(lines))
	for i, line := range lines {
		result[i] = ReportLineResponse{
			Category: string(line.Category),
			Label:    line.Label,
			Amount:   line.Amount.String(),
		}
	}
	return result
}
