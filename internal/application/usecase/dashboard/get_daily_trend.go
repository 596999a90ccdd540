// Package dashboard contains the monthly aggregation use cases behind the dashboard charts.
package dashboard

import (
	"context"

	"github.com/finance-tracker/expense-tracker/internal/domain/valueobject"
)

// GetDailyTrendOutput represents the output of getting the daily trend.
type GetDailyTrendOutput struct {
	Period valueobject.Period
	Trend  DailyTrend
}

// GetDailyTrendUseCase handles computing the per-day spending series for a month.
type GetDailyTrendUseCase struct {
	fetcher RecordFetcher
}

// NewGetDailyTrendUseCase creates a new GetDailyTrendUseCase instance.
func NewGetDailyTrendUseCase(fetcher RecordFetcher) *GetDailyTrendUseCase {
	return &GetDailyTrendUseCase{
		fetcher: fetcher,
	}
}

// Execute computes the daily trend for the given month.
func (uc *GetDailyTrendUseCase) Execute(ctx context.Context, input PeriodInput) (*GetDailyTrendOutput, error) {
	period, records, err := fetchExpenses(ctx, uc.fetcher, input)
	if err != nil {
		return nil, err
	}

	return &GetDailyTrendOutput{
		Period: period,
		Trend:  BuildDailyTrend(records),
	}, nil
}
