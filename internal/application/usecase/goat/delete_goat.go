// Package goat contains goat registry use cases.
package goat

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/goat-farm/backend/internal/application/adapter"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// DeleteGoatInput represents the input for goat deletion.
type DeleteGoatInput struct {
	ID uuid.UUID
}

// DeleteGoatUseCase handles goat deletion. The goat's transactions survive:
// only their goat reference is cleared.
type DeleteGoatUseCase struct {
	goatRepo        adapter.GoatRepository
	transactionRepo adapter.TransactionRepository
}

// NewDeleteGoatUseCase creates a new DeleteGoatUseCase instance.
func NewDeleteGoatUseCase(
	goatRepo adapter.GoatRepository,
	transactionRepo adapter.TransactionRepository,
) *DeleteGoatUseCase {
	return &DeleteGoatUseCase{
		goatRepo:        goatRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the goat deletion.
func (uc *DeleteGoatUseCase) Execute(ctx context.Context, input DeleteGoatInput) error {
	if _, err := uc.goatRepo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrGoatNotFound) {
			return domainerror.NewGoatError(
				domainerror.ErrCodeGoatNotFound,
				"goat not found",
				domainerror.ErrGoatNotFound,
			)
		}
		return fmt.Errorf("failed to find goat: %w", err)
	}

	// Detach ledger entries first so the history is preserved
	if err := uc.transactionRepo.ClearGoatReference(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to detach transactions: %w", err)
	}

	if err := uc.goatRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete goat: %w", err)
	}

	return nil
}
