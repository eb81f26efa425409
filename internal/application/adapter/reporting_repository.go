// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/domain/entity"
)

// TransactionSumFilter narrows a transaction amount sum. Nil fields are not
// applied. From is inclusive and may be set without To (open-ended window).
type TransactionSumFilter struct {
	Type     *entity.TransactionType
	Category *entity.TransactionCategory
	From     *time.Time
	To       *time.Time
}

// CategoryTotal is a per-category amount sum.
type CategoryTotal struct {
	Category entity.TransactionCategory
	Total    decimal.Decimal
}

// RecentTransaction is a ledger entry with its linked goat's identity,
// as shown on the dashboard.
type RecentTransaction struct {
	ID          uuid.UUID
	Date        time.Time
	Type        entity.TransactionType
	Category    entity.TransactionCategory
	Description string
	Amount      decimal.Decimal
	GoatID      *uuid.UUID
	GoatTag     *string
	GoatBreed   *string
}

// ReportingRepository defines the read-only aggregate queries the reporting
// engine performs against the registry and the ledger. Implementations never
// mutate state.
type ReportingRepository interface {
	// CountGoats returns the total number of goats.
	CountGoats(ctx context.Context) (int64, error)

	// CountGoatsByStatus returns the number of goats with the given status.
	CountGoatsByStatus(ctx context.Context, status entity.GoatStatus) (int64, error)

	// SumGoatPurchasePrice sums the purchase price of goats whose status is
	// in the given set. Goats without a purchase price contribute zero.
	SumGoatPurchasePrice(ctx context.Context, statuses []entity.GoatStatus) (decimal.Decimal, error)

	// SumTransactionAmount sums transaction amounts matching the filter.
	SumTransactionAmount(ctx context.Context, filter TransactionSumFilter) (decimal.Decimal, error)

	// SumTransactionAmountByCategory sums amounts per category for the given
	// type within [from, to], ordered by category key for determinism.
	SumTransactionAmountByCategory(ctx context.Context, transactionType entity.TransactionType, from, to time.Time) ([]CategoryTotal, error)

	// FindRecentTransactions returns the most recent transactions with their
	// linked goat identity, ordered by transaction date descending.
	FindRecentTransactions(ctx context.Context, limit int) ([]RecentTransaction, error)
}
