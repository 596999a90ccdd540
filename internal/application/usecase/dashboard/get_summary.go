// Package dashboard contains the monthly aggregation use cases behind the dashboard charts.
package dashboard

import (
	"context"

	"github.com/finance-tracker/expense-tracker/internal/domain/valueobject"
)

// GetSummaryOutput represents the output of getting the monthly summary.
type GetSummaryOutput struct {
	Period  valueobject.Period
	Summary Summary
}

// GetSummaryUseCase handles computing total income, total expenses and balance for a month.
type GetSummaryUseCase struct {
	fetcher RecordFetcher
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(fetcher RecordFetcher) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		fetcher: fetcher,
	}
}

// Execute computes the summary for the given month.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input PeriodInput) (*GetSummaryOutput, error) {
	period, records, err := fetchExpenses(ctx, uc.fetcher, input)
	if err != nil {
		return nil, err
	}

	income, err := fetchIncome(ctx, uc.fetcher, period)
	if err != nil {
		return nil, err
	}

	return &GetSummaryOutput{
		Period:  period,
		Summary: CalculateSummary(income, records),
	}, nil
}
