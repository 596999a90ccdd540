// Package dashboard contains the monthly aggregation use cases behind the dashboard charts.
package dashboard

import (
	"context"

	"github.com/finance-tracker/expense-tracker/internal/domain/valueobject"
)

// GetOverviewOutput bundles every dashboard view of a month, computed from one fetch.
type GetOverviewOutput struct {
	Period     valueobject.Period
	Summary    Summary
	Categories []CategoryTotal
	Trend      DailyTrend
	Expenses   []ExpenseRecord
}

// GetOverviewUseCase handles computing summary, breakdown and trend together.
type GetOverviewUseCase struct {
	fetcher RecordFetcher
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(fetcher RecordFetcher) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		fetcher: fetcher,
	}
}

// Execute computes all dashboard views for the given month.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input PeriodInput) (*GetOverviewOutput, error) {
	period, records, err := fetchExpenses(ctx, uc.fetcher, input)
	if err != nil {
		return nil, err
	}

	income, err := fetchIncome(ctx, uc.fetcher, period)
	if err != nil {
		return nil, err
	}

	return &GetOverviewOutput{
		Period:     period,
		Summary:    CalculateSummary(income, records),
		Categories: BuildCategoryBreakdown(records),
		Trend:      BuildDailyTrend(records),
		Expenses:   records,
	}, nil
}
