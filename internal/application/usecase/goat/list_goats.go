// Package goat contains goat registry use cases.
package goat

import (
	"context"
	"fmt"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ListGoatsInput represents the input for listing goats.
type ListGoatsInput struct {
	Status string
	Page   int
	Limit  int
}

// ListGoatsOutput represents the output of listing goats.
type ListGoatsOutput struct {
	Goats      []*GoatOutput
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListGoatsUseCase handles listing goats ordered by tag number.
type ListGoatsUseCase struct {
	goatRepo adapter.GoatRepository
}

// NewListGoatsUseCase creates a new ListGoatsUseCase instance.
func NewListGoatsUseCase(goatRepo adapter.GoatRepository) *ListGoatsUseCase {
	return &ListGoatsUseCase{
		goatRepo: goatRepo,
	}
}

// Execute retrieves a page of goats.
func (uc *ListGoatsUseCase) Execute(ctx context.Context, input ListGoatsInput) (*ListGoatsOutput, error) {
	if input.Page < 1 {
		input.Page = defaultPage
	}
	if input.Limit < 1 {
		input.Limit = defaultLimit
	}
	if input.Limit > maxLimit {
		input.Limit = maxLimit
	}

	var status *entity.GoatStatus
	if input.Status != "" {
		parsed := entity.GoatStatus(input.Status)
		if !parsed.IsValid() {
			return nil, domainerror.NewGoatError(
				domainerror.ErrCodeInvalidGoatStatus,
				fmt.Sprintf("invalid goat status %q", input.Status),
				domainerror.ErrInvalidGoatStatus,
			)
		}
		status = &parsed
	}

	result, err := uc.goatRepo.FindPage(ctx, status, adapter.GoatPagination{
		Page:  input.Page,
		Limit: input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list goats: %w", err)
	}

	goats := make([]*GoatOutput, 0, len(result.Goats))
	for _, goat := range result.Goats {
		goats = append(goats, toGoatOutput(goat))
	}

	return &ListGoatsOutput{
		Goats:      goats,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}, nil
}
