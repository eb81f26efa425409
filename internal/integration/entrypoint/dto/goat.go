// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/goat-farm/backend/internal/application/usecase/goat"
)

// CreateGoatRequest represents the request body for goat creation.
type CreateGoatRequest struct {
	TagNumber     string   `json:"tag_number" binding:"required,min=1,max=255"`
	Breed         string   `json:"breed" binding:"required,min=1,max=255"`
	Sex           string   `json:"sex" binding:"required,oneof=male female"`
	BirthDate     *string  `json:"birth_date,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Status        string   `json:"status,omitempty" binding:"omitempty,oneof=healthy sick sold deceased"`
	PurchasePrice *float64 `json:"purchase_price,omitempty"`
	PurchaseDate  *string  `json:"purchase_date,omitempty"`
	Notes         string   `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateGoatRequest represents the request body for goat update.
type UpdateGoatRequest struct {
	TagNumber     string   `json:"tag_number" binding:"required,min=1,max=255"`
	Breed         string   `json:"breed" binding:"required,min=1,max=255"`
	Sex           string   `json:"sex" binding:"required,oneof=male female"`
	BirthDate     *string  `json:"birth_date,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Status        string   `json:"status,omitempty" binding:"omitempty,oneof=healthy sick sold deceased"`
	PurchasePrice *float64 `json:"purchase_price,omitempty"`
	PurchaseDate  *string  `json:"purchase_date,omitempty"`
	Notes         string   `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// GoatResponse represents a single goat in API responses.
type GoatResponse struct {
	ID            string    `json:"id"`
	TagNumber     string    `json:"tag_number"`
	Breed         string    `json:"breed"`
	Sex           string    `json:"sex"`
	BirthDate     *string   `json:"birth_date,omitempty"`
	Weight        *string   `json:"weight,omitempty"`
	Status        string    `json:"status"`
	PurchasePrice *string   `json:"purchase_price,omitempty"`
	PurchaseDate  *string   `json:"purchase_date,omitempty"`
	AgeInMonths   *int      `json:"age_in_months,omitempty"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GoatTransactionResponse represents a ledger entry in the goat detail response.
type GoatTransactionResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Reference   string `json:"reference,omitempty"`
}

// GoatDetailResponse represents the goat detail with its transaction history.
type GoatDetailResponse struct {
	Goat         GoatResponse              `json:"goat"`
	Transactions []GoatTransactionResponse `json:"transactions"`
}

// GoatListResponse represents the response for listing goats.
type GoatListResponse struct {
	Goats      []GoatResponse     `json:"goats"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToGoatResponse converts a GoatOutput to a GoatResponse DTO.
func ToGoatResponse(g *goat.GoatOutput) GoatResponse {
	response := GoatResponse{
		ID:          g.ID.String(),
		TagNumber:   g.TagNumber,
		Breed:       g.Breed,
		Sex:         string(g.Sex),
		Status:      string(g.Status),
		AgeInMonths: g.AgeInMonths,
		Notes:       g.Notes,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}

	if g.BirthDate != nil {
		birthDate := g.BirthDate.Format("2006-01-02")
		response.BirthDate = &birthDate
	}
	if g.Weight != nil {
		weight := g.Weight.String()
		response.Weight = &weight
	}
	if g.PurchasePrice != nil {
		price := g.PurchasePrice.String()
		response.PurchasePrice = &price
	}
	if g.PurchaseDate != nil {
		purchaseDate := g.PurchaseDate.Format("2006-01-02")
		response.PurchaseDate = &purchaseDate
	}

	return response
}

// ToGoatDetailResponse converts a GetGoatOutput to a GoatDetailResponse.
func ToGoatDetailResponse(output *goat.GetGoatOutput) GoatDetailResponse {
	transactions := make([]GoatTransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = GoatTransactionResponse{
			ID:          txn.ID.String(),
			Date:        txn.Date.Format("2006-01-02"),
			Type:        string(txn.Type),
			Category:    string(txn.Category),
			Label:       txn.Label,
			Description: txn.Description,
			Amount:      txn.Amount.String(),
			Reference:   txn.Reference,
		}
	}

	return GoatDetailResponse{
		Goat:         ToGoatResponse(output.Goat),
		Transactions: transactions,
	}
}

// ToGoatListResponse converts a ListGoatsOutput to GoatListResponse.
func ToGoatListResponse(output *goat.ListGoatsOutput) GoatListResponse {
	goats := make([]GoatResponse, len(output.Goats))
	for i, g := range output.Goats {
		goats[i] = ToGoatResponse(g)
	}

	return GoatListResponse{
		Goats: goats,
		Pagination: PaginationResponse{
			Page:       output.Page,
			Limit:      output.Limit,
			Total:      output.Total,
			TotalPages: output.TotalPages,
		},
	}
}
