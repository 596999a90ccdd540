// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/expense-tracker/internal/application/adapter"
	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
)

// UpdateExpenseInput represents the input for a full expense update.
type UpdateExpenseInput struct {
	ExpenseID   uuid.UUID
	Amount      decimal.Decimal
	CategoryID  uuid.UUID
	Date        time.Time
	Description *string
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.ExpenseWithCategory
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	existing, err := findExpense(ctx, uc.expenseRepo, input.ExpenseID)
	if err != nil {
		return nil, err
	}

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

	expense := existing.Expense
	expense.Amount = input.Amount
	expense.CategoryID = input.CategoryID
	expense.Date = entity.CalendarDay(input.Date)
	expense.Description = normalizeDescription(input.Description)
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{
		Expense: &entity.ExpenseWithCategory{Expense: expense, Category: category},
	}, nil
}
