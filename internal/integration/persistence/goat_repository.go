// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
	"github.com/goat-farm/backend/internal/integration/persistence/model"
)

// goatRepository implements the adapter.GoatRepository interface.
type goatRepository struct {
	db *gorm.DB
}

// NewGoatRepository creates a new goat repository instance.
func NewGoatRepository(db *gorm.DB) adapter.GoatRepository {
	return &goatRepository{
		db: db,
	}
}

// Create creates a new goat in the database.
func (r *goatRepository) Create(ctx context.Context, goat *entity.Goat) error {
	goatModel := model.GoatFromEntity(goat)
	result := r.db.WithContext(ctx).Create(goatModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrDuplicateTagNumber
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves a goat by its ID.
func (r *goatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goat, error) {
	var goatModel model.GoatModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goatModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoatNotFound
		}
		return nil, result.Error
	}
	return goatModel.ToEntity(), nil
}

// ExistsByTagNumber checks whether the tag number is already taken,
// optionally excluding one goat (used on update).
func (r *goatRepository) ExistsByTagNumber(ctx context.Context, tagNumber string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.GoatModel{}).
		Where("tag_number = ?", tagNumber)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindPage retrieves goats with optional status filter and pagination.
func (r *goatRepository) FindPage(ctx context.Context, status *entity.GoatStatus, pagination adapter.GoatPagination) (*entity.GoatListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.GoatModel{})

	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	var goatModels []model.GoatModel
	result := query.
		Order("tag_number ASC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&goatModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goats := make([]*entity.Goat, len(goatModels))
	for i, gm := range goatModels {
		goats[i] = gm.ToEntity()
	}

	return &entity.GoatListResult{
		Goats:      goats,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update updates an existing goat in the database.
func (r *goatRepository) Update(ctx context.Context, goat *entity.Goat) error {
	goatModel := model.GoatFromEntity(goat)
	result := r.db.WithContext(ctx).Save(goatModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrDuplicateTagNumber
		}
		return result.Error
	}
	return nil
}

// Delete removes a goat from the database.
func (r *goatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GoatModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// isUniqueViolation reports whether the error is a unique constraint
// violation from either the postgres driver or gorm's translated error.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
