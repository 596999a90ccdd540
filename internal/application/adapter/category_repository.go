// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// CreateBatch creates several categories in one statement.
	CreateBatch(ctx context.Context, categories []*entity.Category) error

	// Count returns the number of stored categories.
	Count(ctx context.Context) (int64, error)

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindAll retrieves all categories, predefined first, then by name.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// ExistsByName checks if a category with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// DeleteWithExpenses removes a category and every expense referencing it in one transaction.
	// Returns the number of expenses removed.
	DeleteWithExpenses(ctx context.Context, id uuid.UUID) (int64, error)
}
