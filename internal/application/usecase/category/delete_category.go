// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/expense-tracker/internal/application/adapter"
	domainerror "github.com/finance-tracker/expense-tracker/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Success         bool
	DeletedExpenses int64
}

// DeleteCategoryUseCase handles category deletion logic.
// Deleting a category also deletes every expense filed under it.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, categoryNotFoundError()
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	// Predefined categories are permanent
	if !category.IsCustom {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCannotDeletePredefined,
			"cannot delete predefined categories",
			domainerror.ErrCannotDeletePredefined,
		)
	}

	deleted, err := uc.categoryRepo.DeleteWithExpenses(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &DeleteCategoryOutput{
		Success:         true,
		DeletedExpenses: deleted,
	}, nil
}
