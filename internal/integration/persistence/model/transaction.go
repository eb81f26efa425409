// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// The goat reference is weak: deleting the goat sets it to NULL.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Category    string          `gorm:"type:varchar(32);not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Reference   string          `gorm:"type:varchar(255)"`
	GoatID      *uuid.UUID      `gorm:"type:uuid;index"`
	Notes       string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	Goat *GoatModel `gorm:"foreignKey:GoatID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		Date:        m.Date,
		Type:        entity.TransactionType(m.Type),
		Category:    entity.TransactionCategory(m.Category),
		Description: m.Description,
		Amount:      m.Amount,
		Reference:   m.Reference,
		GoatID:      m.GoatID,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToEntityWithGoat converts a TransactionModel with its Goat to a
// TransactionWithGoat entity.
func (m *TransactionModel) ToEntityWithGoat() *entity.TransactionWithGoat {
	result := &entity.TransactionWithGoat{
		Transaction: m.ToEntity(),
	}

	if m.Goat != nil {
		result.Goat = m.Goat.ToEntity()
	}

	return result
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(txn *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          txn.ID,
		Date:        txn.Date,
		Type:        string(txn.Type),
		Category:    string(txn.Category),
		Description: txn.Description,
		Amount:      txn.Amount,
		Reference:   txn.Reference,
		GoatID:      txn.GoatID,
		Notes:       txn.Notes,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
}
