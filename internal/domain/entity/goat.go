// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoatStatus represents the lifecycle status of a goat.
type GoatStatus string

const (
	GoatStatusHealthy  GoatStatus = "healthy"
	GoatStatusSick     GoatStatus = "sick"
	GoatStatusSold     GoatStatus = "sold"
	GoatStatusDeceased GoatStatus = "deceased"
)

// IsValid reports whether the status is one of the known values.
func (s GoatStatus) IsValid() bool {
	switch s {
	case GoatStatusHealthy, GoatStatusSick, GoatStatusSold, GoatStatusDeceased:
		return true
	}
	return false
}

// AliveStatuses returns the statuses counted toward inventory value,
// i.e. goats still on the farm.
func AliveStatuses() []GoatStatus {
	return []GoatStatus{GoatStatusHealthy, GoatStatusSick}
}

// GoatSex represents the sex of a goat.
type GoatSex string

const (
	GoatSexMale   GoatSex = "male"
	GoatSexFemale GoatSex = "female"
)

// IsValid reports whether the sex is one of the known values.
func (s GoatSex) IsValid() bool {
	return s == GoatSexMale || s == GoatSexFemale
}

// Goat represents a single animal in the herd.
type Goat struct {
	ID            uuid.UUID
	TagNumber     string // Unique business key, immutable in practice
	Breed         string
	Sex           GoatSex
	BirthDate     *time.Time
	Weight        *decimal.Decimal // Live weight in kg
	Status        GoatStatus
	PurchasePrice *decimal.Decimal
	PurchaseDate  *time.Time
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoat creates a new Goat entity.
func NewGoat(
	tagNumber string,
	breed string,
	sex GoatSex,
	birthDate *time.Time,
	weight *decimal.Decimal,
	status GoatStatus,
	purchasePrice *decimal.Decimal,
	purchaseDate *time.Time,
	notes string,
) *Goat {
	now := time.Now().UTC()

	return &Goat{
		ID:            uuid.New(),
		TagNumber:     tagNumber,
		Breed:         breed,
		Sex:           sex,
		BirthDate:     birthDate,
		Weight:        weight,
		Status:        status,
		PurchasePrice: purchasePrice,
		PurchaseDate:  purchaseDate,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// AgeInMonths returns the goat's age in whole calendar months at the given
// instant, or nil if the birth date is unknown.
func (g *Goat) AgeInMonths(now time.Time) *int {
	if g.BirthDate == nil {
		return nil
	}

	birth := *g.BirthDate
	if birth.After(now) {
		zero := 0
		return &zero
	}

	months := (now.Year()-birth.Year())*12 + int(now.Month()) - int(birth.Month())
	if now.Day() < birth.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}

	return &months
}

// GoatListResult represents the result of listing goats.
type GoatListResult struct {
	Goats      []*Goat
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
