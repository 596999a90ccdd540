// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/finance-tracker/expense-tracker/internal/application/adapter"
	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
)

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
	Seeded     bool // True when the predefined set was inserted by this call
}

// ListCategoriesUseCase handles listing categories, seeding the predefined set into an empty store.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	seeded, err := SeedPredefined(ctx, uc.categoryRepo)
	if err != nil {
		return nil, err
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesOutput{
		Categories: categories,
		Seeded:     seeded,
	}, nil
}

// SeedPredefined inserts the predefined categories when no category exists yet.
// It reports whether anything was inserted.
func SeedPredefined(ctx context.Context, categoryRepo adapter.CategoryRepository) (bool, error) {
	count, err := categoryRepo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	if err := categoryRepo.CreateBatch(ctx, entity.NewPredefinedCategories()); err != nil {
		return false, fmt.Errorf("failed to seed categories: %w", err)
	}
	return true, nil
}
