// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a money movement.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether the type is one of the known values.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// TransactionCategory classifies a transaction within the farm's bookkeeping.
// The set is closed at write time; the label lookup tolerates unknown keys so
// reports keep working if new categories appear before this layer learns them.
type TransactionCategory string

const (
	CategorySaleOfGoat      TransactionCategory = "sale_of_goat"
	CategorySaleOfMilk      TransactionCategory = "sale_of_milk"
	CategoryPurchaseOfGoat  TransactionCategory = "purchase_of_goat"
	CategoryPurchaseOfFeed  TransactionCategory = "purchase_of_feed"
	CategoryHealthCost      TransactionCategory = "health_cost"
	CategoryOperationalCost TransactionCategory = "operational_cost"
	CategoryInitialCapital  TransactionCategory = "initial_capital"
	CategoryOther           TransactionCategory = "other"
)

// categoryLabels maps category keys to their display labels.
var categoryLabels = map[TransactionCategory]string{
	CategorySaleOfGoat:      "Goat Sale",
	CategorySaleOfMilk:      "Milk Sale",
	CategoryPurchaseOfGoat:  "Goat Purchase",
	CategoryPurchaseOfFeed:  "Feed Purchase",
	CategoryHealthCost:      "Health Cost",
	CategoryOperationalCost: "Operational Cost",
	CategoryInitialCapital:  "Initial Capital",
	CategoryOther:           "Other",
}

// AllCategories returns every known category key.
func AllCategories() []TransactionCategory {
	return []TransactionCategory{
		CategorySaleOfGoat,
		CategorySaleOfMilk,
		CategoryPurchaseOfGoat,
		CategoryPurchaseOfFeed,
		CategoryHealthCost,
		CategoryOperationalCost,
		CategoryInitialCapital,
		CategoryOther,
	}
}

// IsValid reports whether the category is part of the closed set.
func (c TransactionCategory) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the human-readable label for the category. Unknown keys fall
// back to the raw key.
func (c TransactionCategory) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Transaction represents a dated money movement in the farm ledger, optionally
// linked to a goat. The goat reference is weak: deleting the goat clears the
// reference but never touches the transaction.
type Transaction struct {
	ID          uuid.UUID
	Date        time.Time
	Type        TransactionType
	Category    TransactionCategory
	Description string
	Amount      decimal.Decimal // Always positive; direction is carried by Type
	Reference   string
	GoatID      *uuid.UUID
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	date time.Time,
	transactionType TransactionType,
	category TransactionCategory,
	description string,
	amount decimal.Decimal,
	reference string,
	goatID *uuid.UUID,
	notes string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		Date:        date,
		Type:        transactionType,
		Category:    category,
		Description: description,
		Amount:      amount,
		Reference:   reference,
		GoatID:      goatID,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionWithGoat represents a transaction with its linked goat, if any.
type TransactionWithGoat struct {
	Transaction *Transaction
	Goat        *Goat
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*TransactionWithGoat
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}
