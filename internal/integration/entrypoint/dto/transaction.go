// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/goat-farm/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	Reference   string  `json:"reference,omitempty" binding:"omitempty,max=255"`
	GoatID      *string `json:"goat_id,omitempty"`
	Notes       string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	Reference   string  `json:"reference,omitempty" binding:"omitempty,max=255"`
	GoatID      *string `json:"goat_id,omitempty"`
	Notes       string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// TransactionGoatResponse identifies the linked goat in transaction responses.
type TransactionGoatResponse struct {
	ID        string `json:"id"`
	TagNumber string `json:"tag_number"`
	Breed     string `json:"breed"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string                   `json:"id"`
	Date        string                   `json:"date"`
	Type        string                   `json:"type"`
	Category    string                   `json:"category"`
	Label       string                   `json:"label"`
	Description string                   `json:"description"`
	Amount      string                   `json:"amount"`
	Reference   string                   `json:"reference,omitempty"`
	Goat        *TransactionGoatResponse `json:"goat,omitempty"`
	Notes       string                   `json:"notes"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.ID.String(),
		Date:        txn.Date.Format("2006-01-02"),
		Type:        string(txn.Type),
		Category:    string(txn.Category),
		Label:       txn.Label,
		Description: txn.Description,
		Amount:      txn.Amount.String(),
		Reference:   txn.Reference,
		Notes:       txn.Notes,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}

	if txn.Goat != nil {
		response.Goat = &TransactionGoatResponse{
			ID:        txn.Goat.ID.String(),
			TagNumber: txn.Goat.TagNumber,
			Breed:     txn.Goat.Breed,
		}
	}

	return response
}

// ToTransactionListResponse converts a ListTransactionsOutput to TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Pagination: PaginationResponse{
			Page:       output.Page,
			Limit:      output.Limit,
			Total:      output.Total,
			TotalPages: output.TotalPages,
		},
	}
}
