// Package entity contains domain entities.
package entity

import (
	"testing"
)

func TestTransactionCategory_Label(t *testing.T) {
	tests := []struct {
		category TransactionCategory
		want     string
	}{
		{CategorySaleOfGoat, "Goat Sale"},
		{CategorySaleOfMilk, "Milk Sale"},
		{CategoryPurchaseOfGoat, "Goat Purchase"},
		{CategoryPurchaseOfFeed, "Feed Purchase"},
		{CategoryHealthCost, "Health Cost"},
		{CategoryOperationalCost, "Operational Cost"},
		{CategoryInitialCapital, "Initial Capital"},
		{CategoryOther, "Other"},
	}

	for _, tt := range tests {
		if got := tt.category.Label(); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.category, got, tt.want)
		}
	}

	// Unknown keys fall back to the raw key so legacy rows stay displayable
	t.Run("unknown category falls back to raw key", func(t *testing.T) {
		if got := TransactionCategory("legacy_category").Label(); got != "legacy_category" {
			t.Errorf("expected raw key fallback, got %q", got)
		}
	})
}

func TestTransactionCategory_IsValid(t *testing.T) {
	for _, category := range AllCategories() {
		if !category.IsValid() {
			t.Errorf("expected category %q to be valid", category)
		}
	}

	if TransactionCategory("sale_of_wool").IsValid() {
		t.Error("expected unknown category to be invalid")
	}
}

func TestTransactionType_IsValid(t *testing.T) {
	if !TransactionTypeIncome.IsValid() || !TransactionTypeExpense.IsValid() {
		t.Error("expected income and expense to be valid")
	}
	if TransactionType("transfer").IsValid() {
		t.Error("expected unknown type to be invalid")
	}
}
