// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goat-farm/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	Type      *entity.TransactionType
	Category  *entity.TransactionCategory
	StartDate *time.Time
	EndDate   *time.Time
	GoatID    *uuid.UUID
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByIDWithGoat retrieves a transaction with its linked goat by ID.
	FindByIDWithGoat(ctx context.Context, id uuid.UUID) (*entity.TransactionWithGoat, error)

	// FindByFilter retrieves transactions ordered by date descending,
	// based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*entity.TransactionListResult, error)

	// FindByGoat retrieves all transactions linked to a goat, newest first.
	FindByGoat(ctx context.Context, goatID uuid.UUID) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ClearGoatReference detaches all transactions from the given goat.
	// The transactions themselves are kept.
	ClearGoatReference(ctx context.Context, goatID uuid.UUID) error
}
