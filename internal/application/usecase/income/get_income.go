// Package income contains monthly income use cases.
package income

import (
	"context"
	"fmt"

	"github.com/finance-tracker/expense-tracker/internal/application/adapter"
	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
	"github.com/finance-tracker/expense-tracker/internal/domain/valueobject"
)

// GetIncomeInput represents the input for reading a month's income.
type GetIncomeInput struct {
	Month int
	Year  int
}

// GetIncomeOutput represents the output of reading income. Income is nil when none is recorded.
type GetIncomeOutput struct {
	Period valueobject.Period
	Income *entity.Income
}

// GetIncomeUseCase handles reading the income of a month.
type GetIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewGetIncomeUseCase creates a new GetIncomeUseCase instance.
func NewGetIncomeUseCase(incomeRepo adapter.IncomeRepository) *GetIncomeUseCase {
	return &GetIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute reads the income.
func (uc *GetIncomeUseCase) Execute(ctx context.Context, input GetIncomeInput) (*GetIncomeOutput, error) {
	period, err := valueobject.NewPeriod(input.Month, input.Year)
	if err != nil {
		return nil, err
	}

	income, err := uc.incomeRepo.FindByPeriod(ctx, period.Month, period.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to find income: %w", err)
	}

	return &GetIncomeOutput{
		Period: period,
		Income: income,
	}, nil
}
