// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/domain/entity"
)

// GoatModel represents the goats table in the database.
type GoatModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	TagNumber     string           `gorm:"type:varchar(255);not null;uniqueIndex"`
	Breed         string           `gorm:"type:varchar(255);not null"`
	Sex           string           `gorm:"type:varchar(10);not null"`
	BirthDate     *time.Time       `gorm:"type:date"`
	Weight        *decimal.Decimal `gorm:"type:decimal(8,2)"`
	Status        string           `gorm:"type:varchar(10);not null;index"`
	PurchasePrice *decimal.Decimal `gorm:"type:decimal(15,2)"`
	PurchaseDate  *time.Time       `gorm:"type:date"`
	Notes         string           `gorm:"type:text"`
	CreatedAt     time.Time        `gorm:"not null"`
	UpdatedAt     time.Time        `gorm:"not null"`
}

// TableName returns the table name for the GoatModel.
func (GoatModel) TableName() string {
	return "goats"
}

// ToEntity converts a GoatModel to a domain Goat entity.
func (m *GoatModel) ToEntity() *entity.Goat {
	return &entity.Goat{
		ID:            m.ID,
		TagNumber:     m.TagNumber,
		Breed:         m.Breed,
		Sex:           entity.GoatSex(m.Sex),
		BirthDate:     m.BirthDate,
		Weight:        m.Weight,
		Status:        entity.GoatStatus(m.Status),
		PurchasePrice: m.PurchasePrice,
		PurchaseDate:  m.PurchaseDate,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// GoatFromEntity creates a GoatModel from a domain Goat entity.
func GoatFromEntity(goat *entity.Goat) *GoatModel {
	return &GoatModel{
		ID:            goat.ID,
		TagNumber:     goat.TagNumber,
		Breed:         goat.Breed,
		Sex:           string(goat.Sex),
		BirthDate:     goat.BirthDate,
		Weight:        goat.Weight,
		Status:        string(goat.Status),
		PurchasePrice: goat.PurchasePrice,
		PurchaseDate:  goat.PurchaseDate,
		Notes:         goat.Notes,
		CreatedAt:     goat.CreatedAt,
		UpdatedAt:     goat.UpdatedAt,
	}
}
