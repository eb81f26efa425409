// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
	"github.com/goat-farm/backend/internal/integration/persistence/model"
)

// reportingRepository implements the adapter.ReportingRepository interface.
// All queries are read-only aggregates over the goats and transactions tables.
type reportingRepository struct {
	db *gorm.DB
}

// NewReportingRepository creates a new reporting repository instance.
func NewReportingRepository(db *gorm.DB) adapter.ReportingRepository {
	return &reportingRepository{
		db: db,
	}
}

// CountGoats returns the total number of goats.
func (r *reportingRepository) CountGoats(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.GoatModel{}).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count goats: %w", err)
	}
	return count, nil
}

// CountGoatsByStatus returns the number of goats with the given status.
func (r *reportingRepository) CountGoatsByStatus(ctx context.Context, status entity.GoatStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.GoatModel{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count goats by status: %w", err)
	}
	return count, nil
}

// SumGoatPurchasePrice sums the purchase price of goats in the given statuses.
// Goats without a recorded purchase price contribute nothing.
func (r *reportingRepository) SumGoatPurchasePrice(ctx context.Context, statuses []entity.GoatStatus) (decimal.Decimal, error) {
	if len(statuses) == 0 {
		return decimal.Zero, nil
	}

	statusValues := make([]string, len(statuses))
	for i, status := range statuses {
		statusValues[i] = string(status)
	}

	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}
	err := r.db.WithContext(ctx).
		Model(&model.GoatModel{}).
		Select("COALESCE(SUM(purchase_price), 0) as total").
		Where("status IN ?", statusValues).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum goat purchase price: %w", err)
	}

	return result.Total, nil
}

// SumTransactionAmount sums transaction amounts matching the filter.
func (r *reportingRepository) SumTransactionAmount(ctx context.Context, filter adapter.TransactionSumFilter) (decimal.Decimal, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{})

	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Category != nil {
		query = query.Where("category = ?", string(*filter.Category))
	}
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}

	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}
	err := query.
		Select("COALESCE(SUM(amount), 0) as total").
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transaction amounts: %w", err)
	}

	return result.Total, nil
}

// SumTransactionAmountByCategory sums amounts per category for one type
// within the inclusive [from, to] window.
func (r *reportingRepository) SumTransactionAmountByCategory(
	ctx context.Context,
	transactionType entity.TransactionType,
	from, to time.Time,
) ([]adapter.CategoryTotal, error) {
	var results []struct {
		Category string          `gorm:"column:category"`
		Total    decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("category, COALESCE(SUM(amount), 0) as total").
		Where("type = ?", string(transactionType)).
		Where("date >= ?", from).
		Where("date <= ?", to).
		Group("category").
		Order("category ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum transactions by category: %w", err)
	}

	totals := make([]adapter.CategoryTotal, len(results))
	for i, res := range results {
		totals[i] = adapter.CategoryTotal{
			Category: entity.TransactionCategory(res.Category),
			Total:    res.Total,
		}
	}

	return totals, nil
}

// FindRecentTransactions returns the newest transactions together with the
// identity of the goat they reference, if any.
func (r *reportingRepository) FindRecentTransactions(ctx context.Context, limit int) ([]adapter.RecentTransaction, error) {
	var results []struct {
		ID          uuid.UUID       `gorm:"column:id"`
		Date        time.Time       `gorm:"column:date"`
		Type        string          `gorm:"column:type"`
		Category    string          `gorm:"column:category"`
		Description string          `gorm:"column:description"`
		Amount      decimal.Decimal `gorm:"column:amount"`
		GoatID      *uuid.UUID      `gorm:"column:goat_id"`
		GoatTag     *string         `gorm:"column:goat_tag"`
		GoatBreed   *string         `gorm:"column:goat_breed"`
	}

	query := `
		SELECT
			t.id,
			t.date,
			t.type,
			t.category,
			t.description,
			t.amount,
			t.goat_id,
			g.tag_number as goat_tag,
			g.breed as goat_breed
		FROM transactions t
		LEFT JOIN goats g ON t.goat_id = g.id
		ORDER BY t.date DESC, t.created_at DESC
		LIMIT ?
	`

	err := r.db.WithContext(ctx).
		Raw(query, limit).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recent transactions: %w", err)
	}

	recent := make([]adapter.RecentTransaction, len(results))
	for i, res := range results {
		recent[i] = adapter.RecentTransaction{
			ID:          res.ID,
			Date:        res.Date,
			Type:        entity.TransactionType(res.Type),
			Category:    entity.TransactionCategory(res.Category),
			Description: res.Description,
			Amount:      res.Amount,
			GoatID:      res.GoatID,
			GoatTag:     res.GoatTag,
			GoatBreed:   res.GoatBreed,
		}
	}

	return recent, nil
}
