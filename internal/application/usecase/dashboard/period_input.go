package dashboard

import (
	"context"
	"fmt"

	"github.com/finance-tracker/expense-tracker/internal/domain/valueobject"
)

// PeriodInput identifies the calendar month to aggregate.
type PeriodInput struct {
	Month int
	Year  int
}

// fetchExpenses resolves the period and loads its expenses.
func fetchExpenses(ctx context.Context, fetcher RecordFetcher, input PeriodInput) (valueobject.Period, []ExpenseRecord, error) {
	period, err := valueobject.NewPeriod(input.Month, input.Year)
	if err != nil {
		return valueobject.Period{}, nil, err
	}

	records, err := fetcher.FetchExpenses(ctx, period.Start, period.End)
	if err != nil {
		return valueobject.Period{}, nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	return period, records, nil
}

// fetchIncome loads the income recorded for a resolved period.
func fetchIncome(ctx context.Context, fetcher RecordFetcher, period valueobject.Period) (*IncomeRecord, error) {
	income, err := fetcher.FetchIncome(ctx, period.Month, period.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch income: %w", err)
	}
	return income, nil
}
