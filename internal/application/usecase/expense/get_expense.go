// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/expense-tracker/internal/application/adapter"
	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
	domainerror "github.com/finance-tracker/expense-tracker/internal/domain/error"
)

// GetExpenseUseCase handles retrieving a single expense.
type GetExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute retrieves the expense with the given ID.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.ExpenseWithCategory, error) {
	return findExpense(ctx, uc.expenseRepo, id)
}

func findExpense(ctx context.Context, expenseRepo adapter.ExpenseRepository, id uuid.UUID) (*entity.ExpenseWithCategory, error) {
	expense, err := expenseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	return expense, nil
}
