// Package income contains monthly income use cases.
package income

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/expense-tracker/internal/application/adapter"
	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
	domainerror "github.com/finance-tracker/expense-tracker/internal/domain/error"
	"github.com/finance-tracker/expense-tracker/internal/domain/valueobject"
)

// SetIncomeInput represents the input for recording a month's income.
type SetIncomeInput struct {
	Month  int
	Year   int
	Amount decimal.Decimal
	Source string // Optional, defaults to DefaultIncomeSource
}

// SetIncomeOutput represents the stored income.
type SetIncomeOutput struct {
	Income *entity.Income
}

// SetIncomeUseCase handles creating or replacing the income of a month.
type SetIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewSetIncomeUseCase creates a new SetIncomeUseCase instance.
func NewSetIncomeUseCase(incomeRepo adapter.IncomeRepository) *SetIncomeUseCase {
	return &SetIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute upserts the income on (month, year).
func (uc *SetIncomeUseCase) Execute(ctx context.Context, input SetIncomeInput) (*SetIncomeOutput, error) {
	period, err := valueobject.NewPeriod(input.Month, input.Year)
	if err != nil {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomePeriod,
			"month must be 1-12 and year must be positive",
			err,
		)
	}

	if input.Amount.IsNegative() {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeAmount,
			"income amount must not be negative",
			domainerror.ErrInvalidIncomeAmount,
		)
	}

	existing, err := uc.incomeRepo.FindByPeriod(ctx, period.Month, period.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to find income: %w", err)
	}

	income := entity.NewIncome(period.Month, period.Year, input.Amount, strings.TrimSpace(input.Source))
	if existing != nil {
		// Keep identity and creation time of the stored row
		income.ID = existing.ID
		income.CreatedAt = existing.CreatedAt
		income.UpdatedAt = time.Now().UTC()
	}

	if err := uc.incomeRepo.Upsert(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to save income: %w", err)
	}

	return &SetIncomeOutput{
		Income: income,
	}, nil
}
