// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goat-farm/backend/internal/domain/entity"
)

// GoatPagination defines pagination options for listing goats.
type GoatPagination struct {
	Page  int
	Limit int
}

// GoatRepository defines the interface for goat persistence operations.
type GoatRepository interface {
	// Create creates a new goat in the database.
	Create(ctx context.Context, goat *entity.Goat) error

	// FindByID retrieves a goat by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goat, error)

	// ExistsByTagNumber checks whether a tag number is already in use.
	// The optional excludeID skips one goat, for uniqueness checks on update.
	ExistsByTagNumber(ctx context.Context, tagNumber string, excludeID *uuid.UUID) (bool, error)

	// FindPage retrieves goats ordered by tag number with pagination.
	// A non-nil status narrows the page to goats in that status.
	FindPage(ctx context.Context, status *entity.GoatStatus, pagination GoatPagination) (*entity.GoatListResult, error)

	// Update updates an existing goat in the database.
	Update(ctx context.Context, goat *entity.Goat) error

	// Delete removes a goat from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
