// Package goat contains goat registry use cases.
package goat

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// GoatOutput represents a goat in use case outputs.
type GoatOutput struct {
	ID            uuid.UUID
	TagNumber     string
	Breed         string
	Sex           entity.GoatSex
	BirthDate     *time.Time
	Weight        *decimal.Decimal
	Status        entity.GoatStatus
	PurchasePrice *decimal.Decimal
	PurchaseDate  *time.Time
	AgeInMonths   *int
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// toGoatOutput converts a goat entity to its output representation.
func toGoatOutput(goat *entity.Goat) *GoatOutput {
	return &GoatOutput{
		ID:            goat.ID,
		TagNumber:     goat.TagNumber,
		Breed:         goat.Breed,
		Sex:           goat.Sex,
		BirthDate:     goat.BirthDate,
		Weight:        goat.Weight,
		Status:        goat.Status,
		PurchasePrice: goat.PurchasePrice,
		PurchaseDate:  goat.PurchaseDate,
		AgeInMonths:   goat.AgeInMonths(time.Now().UTC()),
		Notes:         goat.Notes,
		CreatedAt:     goat.CreatedAt,
		UpdatedAt:     goat.UpdatedAt,
	}
}

// goatFields holds the writable attributes shared by create and update.
type goatFields struct {
	TagNumber     string
	Breed         string
	Sex           entity.GoatSex
	BirthDate     *time.Time
	Weight        *decimal.Decimal
	Status        entity.GoatStatus
	PurchasePrice *decimal.Decimal
	PurchaseDate  *time.Time
	Notes         string
}

// validateGoatFields checks the field-level invariants shared by create and
// update. Tag uniqueness is checked separately against the repository.
func validateGoatFields(fields goatFields) error {
	if fields.TagNumber == "" {
		return domainerror.NewGoatError(
			domainerror.ErrCodeMissingTagNumber,
			"tag number is required",
			domainerror.ErrMissingTagNumber,
		)
	}

	if fields.Breed == "" {
		return domainerror.NewGoatError(
			domainerror.ErrCodeMissingBreed,
			"breed is required",
			domainerror.ErrMissingBreed,
		)
	}

	if !fields.Sex.IsValid() {
		return domainerror.NewGoatError(
			domainerror.ErrCodeInvalidGoatSex,
			"sex must be 'male' or 'female'",
			domainerror.ErrInvalidGoatSex,
		)
	}

	if !fields.Status.IsValid() {
		return domainerror.NewGoatError(
			domainerror.ErrCodeInvalidGoatStatus,
			"status must be one of: healthy, sick, sold, deceased",
			domainerror.ErrInvalidGoatStatus,
		)
	}

	today := endOfToday()
	if fields.BirthDate != nil && fields.BirthDate.After(today) {
		return domainerror.NewGoatError(
			domainerror.ErrCodeBirthDateInFuture,
			"birth date must not be in the future",
			domainerror.ErrBirthDateInFuture,
		)
	}
	if fields.PurchaseDate != nil && fields.PurchaseDate.After(today) {
		return domainerror.NewGoatError(
			domainerror.ErrCodePurchaseDateInFuture,
			"purchase date must not be in the future",
			domainerror.ErrPurchaseDateInFuture,
		)
	}

	if fields.Weight != nil && fields.Weight.IsNegative() {
		return domainerror.NewGoatError(
			domainerror.ErrCodeNegativeWeight,
			"weight must not be negative",
			domainerror.ErrNegativeWeight,
		)
	}
	if fields.PurchasePrice != nil && fields.PurchasePrice.IsNegative() {
		return domainerror.NewGoatError(
			domainerror.ErrCodeNegativePurchasePrice,
			"purchase price must not be negative",
			domainerror.ErrNegativePurchasePrice,
		)
	}

	return nil
}

// endOfToday returns the last instant of the current UTC day. Date-only
// inputs parsed at midnight compare correctly against it.
func endOfToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
}
