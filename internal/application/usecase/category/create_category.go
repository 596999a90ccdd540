// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/finance-tracker/expense-tracker/internal/application/adapter"
	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
	domainerror "github.com/finance-tracker/expense-tracker/internal/domain/error"
)

const (
	// MaxCategoryNameLength is the maximum allowed length for category names.
	MaxCategoryNameLength = 50
	// MaxIconLength is the maximum allowed length for icons.
	MaxIconLength = 50
)

// hexColorRegex is compiled once at package level for performance.
var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name     string
	Color    string  // Optional, defaults to DefaultCategoryColor
	Icon     *string // Optional
	IsCustom *bool   // Optional, defaults to true
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	// Validate color format if provided
	if input.Color != "" && !isValidHexColor(input.Color) {
		return nil, invalidColorError()
	}

	// Apply default values for optional fields (Application layer responsibility)
	color := input.Color
	if color == "" {
		color = entity.DefaultCategoryColor
	}
	isCustom := true
	if input.IsCustom != nil {
		isCustom = *input.IsCustom
	}

	// Check if category name already exists
	exists, err := uc.categoryRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			"a category with this name already exists",
			domainerror.ErrCategoryNameExists,
		)
	}

	category := entity.NewCategory(name, color, normalizeIcon(input.Icon), isCustom)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// validateName checks the presence and length of a category name.
func validateName(name string) error {
	if name == "" {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}
	if utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	return nil
}

// normalizeIcon drops empty icons and truncates overly long ones.
func normalizeIcon(icon *string) *string {
	if icon == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*icon)
	if trimmed == "" {
		return nil
	}
	if r := []rune(trimmed); len(r) > MaxIconLength {
		trimmed = string(r[:MaxIconLength])
	}
	return &trimmed
}

func invalidColorError() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeInvalidColorFormat,
		"color must be a valid hex format (#XXXXXX)",
		domainerror.ErrInvalidColorFormat,
	)
}

// isValidHexColor validates hex color format (#XXXXXX or #XXX).
func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}
