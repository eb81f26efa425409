// Package goat contains goat registry use cases.
package goat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// UpdateGoatInput represents the input for goat updates. All writable fields
// are replaced.
type UpdateGoatInput struct {
	ID            uuid.UUID
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

// UpdateGoatOutput represents the output of a goat update.
type UpdateGoatOutput struct {
	Goat *GoatOutput
}

// UpdateGoatUseCase handles goat update logic.
type UpdateGoatUseCase struct {
	goatRepo adapter.GoatRepository
}

// NewUpdateGoatUseCase creates a new UpdateGoatUseCase instance.
func NewUpdateGoatUseCase(goatRepo adapter.GoatRepository) *UpdateGoatUseCase {
	return &UpdateGoatUseCase{
		goatRepo: goatRepo,
	}
}

// Execute performs the goat update. Status transitions are unrestricted: any
// of the four values may follow any other.
func (uc *UpdateGoatUseCase) Execute(ctx context.Context, input UpdateGoatInput) (*UpdateGoatOutput, error) {
	goat, err := uc.goatRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoatNotFound) {
			return nil, domainerror.NewGoatError(
				domainerror.ErrCodeGoatNotFound,
				"goat not found",
				domainerror.ErrGoatNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goat: %w", err)
	}

	if input.Status == "" {
		input.Status = goat.Status
	}

	fields := goatFields{
		TagNumber:     input.TagNumber,
		Breed:         input.Breed,
		Sex:           input.Sex,
		BirthDate:     input.BirthDate,
		Weight:        input.Weight,
		Status:        input.Status,
		PurchasePrice: input.PurchasePrice,
		PurchaseDate:  input.PurchaseDate,
		Notes:         input.Notes,
	}
	if err := validateGoatFields(fields); err != nil {
		return nil, err
	}

	// The tag must stay unique, ignoring the goat being updated
	exists, err := uc.goatRepo.ExistsByTagNumber(ctx, input.TagNumber, &goat.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check tag number: %w", err)
	}
	if exists {
		return nil, domainerror.NewGoatError(
			domainerror.ErrCodeDuplicateTagNumber,
			fmt.Sprintf("tag number %q is already in use", input.TagNumber),
			domainerror.ErrDuplicateTagNumber,
		)
	}

	goat.TagNumber = input.TagNumber
	goat.Breed = input.Breed
	goat.Sex = input.Sex
	goat.BirthDate = input.BirthDate
	goat.Weight = input.Weight
	goat.Status = input.Status
	goat.PurchasePrice = input.PurchasePrice
	goat.PurchaseDate = input.PurchaseDate
	goat.Notes = input.Notes
	goat.UpdatedAt = time.Now().UTC()

	if err := uc.goatRepo.Update(ctx, goat); err != nil {
		return nil, fmt.Errorf("failed to update goat: %w", err)
	}

	return &UpdateGoatOutput{Goat: toGoatOutput(goat)}, nil
}
