// Package goat contains goat registry use cases.
package goat

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// CreateGoatInput represents the input for goat creation.
type CreateGoatInput struct {
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

// CreateGoatOutput represents the output of goat creation.
type CreateGoatOutput struct {
	Goat *GoatOutput
}

// CreateGoatUseCase handles goat creation logic.
type CreateGoatUseCase struct {
	goatRepo adapter.GoatRepository
}

// NewCreateGoatUseCase creates a new CreateGoatUseCase instance.
func NewCreateGoatUseCase(goatRepo adapter.GoatRepository) *CreateGoatUseCase {
	return &CreateGoatUseCase{
		goatRepo: goatRepo,
	}
}

// Execute performs the goat creation.
func (uc *CreateGoatUseCase) Execute(ctx context.Context, input CreateGoatInput) (*CreateGoatOutput, error) {
	// New animals are healthy unless stated otherwise
	if input.Status == "" {
		input.Status = entity.GoatStatusHealthy
	}

	if err := validateGoatFields(goatFields(input)); err != nil {
		return nil, err
	}

	// Enforce tag uniqueness before writing
	exists, err := uc.goatRepo.ExistsByTagNumber(ctx, input.TagNumber, nil)
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

	goat := entity.NewGoat(
		input.TagNumber,
		input.Breed,
		input.Sex,
		input.BirthDate,
		input.Weight,
		input.Status,
		input.PurchasePrice,
		input.PurchaseDate,
		input.Notes,
	)

	if err := uc.goatRepo.Create(ctx, goat); err != nil {
		return nil, fmt.Errorf("failed to create goat: %w", err)
	}

	return &CreateGoatOutput{Goat: toGoatOutput(goat)}, nil
}
