// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goat-farm/backend/internal/application/usecase/report"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
	"github.com/goat-farm/backend/internal/integration/entrypoint/dto"
)

// ReportController handles financial report endpoints.
type ReportController struct {
	profitLossUseCase   *report.GetProfitLossUseCase
	balanceSheetUseCase *report.GetBalanceSheetUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	profitLossUseCase *report.GetProfitLossUseCase,
	balanceSheetUseCase *report.GetBalanceSheetUseCase,
) *ReportController {
	return &ReportController{
		profitLossUseCase:   profitLossUseCase,
		balanceSheetUseCase: balanceSheetUseCase,
	}
}

// ProfitLoss handles GET /reports/profit-loss requests.
func (c *ReportController) ProfitLoss(ctx *gin.Context) {
	input := report.GetProfitLossInput{
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
	}

	output, err := c.profitLossUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfitLossResponse(output))
}

// BalanceSheet handles GET /reports/balance-sheet requests.
func (c *ReportController) BalanceSheet(ctx *gin.Context) {
	output, err := c.balanceSheetUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceSheetResponse(output))
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := c.getStatusCodeForReportError(reportErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidStartDate,
		domainerror.ErrCodeInvalidEndDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
