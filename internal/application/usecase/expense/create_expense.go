// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/expense-tracker/internal/application/adapter"
	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
	domainerror "github.com/finance-tracker/expense-tracker/internal/domain/error"
)

// DateLayout is the wire format of expense dates.
const DateLayout = "2006-01-02"

// MaxDescriptionLength is the maximum allowed length for expense descriptions.
const MaxDescriptionLength = 255

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Amount      decimal.Decimal
	CategoryID  uuid.UUID
	Date        time.Time
	Description *string // Optional
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.ExpenseWithCategory
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, invalidDateError()
	}

	category, err := findCategory(ctx, uc.categoryRepo, input.CategoryID)
	if err != nil {
		return nil, err
	}

	expense := entity.NewExpense(input.Amount, input.CategoryID, input.Date, normalizeDescription(input.Description))

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{
		Expense: &entity.ExpenseWithCategory{Expense: expense, Category: category},
	}, nil
}

// ParseDate parses a YYYY-MM-DD expense date.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, invalidDateError()
	}
	return date, nil
}

// ParseAmount parses a decimal amount and rejects negative values.
func ParseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be a valid number",
			domainerror.ErrInvalidAmount,
		)
	}
	if err := validateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidAmount,
			"amount must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}
	return nil
}

func invalidDateError() error {
	return domainerror.NewExpenseError(
		domainerror.ErrCodeInvalidExpenseDate,
		"date must be in YYYY-MM-DD format",
		domainerror.ErrInvalidExpenseDate,
	)
}

// findCategory loads the referenced category, mapping a miss to a validation error.
func findCategory(ctx context.Context, categoryRepo adapter.CategoryRepository, id uuid.UUID) (*entity.Category, error) {
	if id == uuid.Nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseCategoryRequired,
			"category_id is required",
			domainerror.ErrExpenseCategoryRequired,
		)
	}

	category, err := categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseCategoryNotFound,
				"referenced category does not exist",
				domainerror.ErrExpenseCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}

// normalizeDescription trims the description, dropping it when blank.
func normalizeDescription(description *string) *string {
	if description == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil
	}
	if r := []rune(trimmed); len(r) > MaxDescriptionLength {
		trimmed = string(r[:MaxDescriptionLength])
	}
	return &trimmed
}
