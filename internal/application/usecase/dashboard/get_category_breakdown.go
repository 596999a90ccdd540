// Package dashboard contains the monthly aggregation use cases behind the dashboard charts.
package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/expense-tracker/internal/domain/valueobject"
)

// GetCategoryBreakdownOutput represents the output of getting the category breakdown.
type GetCategoryBreakdownOutput struct {
	Period        valueobject.Period
	TotalExpenses decimal.Decimal
	Categories    []CategoryTotal
}

// GetCategoryBreakdownUseCase handles computing per-category spending for a month.
type GetCategoryBreakdownUseCase struct {
	fetcher RecordFetcher
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(fetcher RecordFetcher) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		fetcher: fetcher,
	}
}

// Execute computes the category breakdown for the given month.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input PeriodInput) (*GetCategoryBreakdownOutput, error) {
	period, records, err := fetchExpenses(ctx, uc.fetcher, input)
	if err != nil {
		return nil, err
	}

	categories := BuildCategoryBreakdown(records)

	total := decimal.Zero
	for _, c := range categories {
		total = total.Add(c.Total)
	}

	return &GetCategoryBreakdownOutput{
		Period:        period,
		TotalExpenses: total,
		Categories:    categories,
	}, nil
}
