// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/finance-tracker/expense-tracker/internal/application/adapter"
	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
	"github.com/finance-tracker/expense-tracker/internal/domain/valueobject"
)

// ListExpensesInput represents the input for listing a month's expenses.
type ListExpensesInput struct {
	Month int
	Year  int
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Period   valueobject.Period
	Expenses []*entity.ExpenseWithCategory
}

// ListExpensesUseCase handles listing the expenses of a month, newest first.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the listing.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	period, err := valueobject.NewPeriod(input.Month, input.Year)
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.FindByDateRange(ctx, period.Start, period.NextStart())
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &ListExpensesOutput{
		Period:   period,
		Expenses: expenses,
	}, nil
}
