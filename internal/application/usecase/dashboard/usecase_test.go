package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/finance-tracker/expense-tracker/internal/domain/error"
)

// stubFetcher serves fixed records and remembers the range it was asked for.
type stubFetcher struct {
	expenses   []ExpenseRecord
	income     *IncomeRecord
	expenseErr error
	incomeErr  error

	gotStart time.Time
	gotEnd   time.Time
	calls    int
}

func (f *stubFetcher) FetchExpenses(_ context.Context, start, end time.Time) ([]ExpenseRecord, error) {
	f.calls++
	f.gotStart = start
	f.gotEnd = end
	if f.expenseErr != nil {
		return nil, f.expenseErr
	}
	return f.expenses, nil
}

func (f *stubFetcher) FetchIncome(_ context.Context, _, _ int) (*IncomeRecord, error) {
	if f.incomeErr != nil {
		return nil, f.incomeErr
	}
	return f.income, nil
}

func TestGetSummaryUseCase_Execute(t *testing.T) {
	fetcher := &stubFetcher{
		expenses: march2024(),
		income:   &IncomeRecord{Month: 3, Year: 2024, Amount: dec("3000.00"), Source: "Salary"},
	}
	uc := NewGetSummaryUseCase(fetcher)

	out, err := uc.Execute(context.Background(), PeriodInput{Month: 3, Year: 2024})

	require.NoError(t, err)
	assert.True(t, fetcher.gotStart.Equal(day(2024, time.March, 1)))
	assert.True(t, fetcher.gotEnd.Equal(day(2024, time.March, 31)))
	assert.True(t, out.Summary.TotalIncome.Equal(dec("3000")))
	assert.True(t, out.Summary.TotalExpenses.Equal(dec("170")))
	assert.True(t, out.Summary.Balance.Equal(dec("2830")))
	assert.Equal(t, "Salary", out.Summary.IncomeSource)
	assert.Equal(t, 3, out.Period.Month)
}

func TestDashboardUseCases_InvalidPeriod(t *testing.T) {
	fetcher := &stubFetcher{}
	ctx := context.Background()
	input := PeriodInput{Month: 13, Year: 2024}

	executors := map[string]func() error{
		"summary": func() error {
			_, err := NewGetSummaryUseCase(fetcher).Execute(ctx, input)
			return err
		},
		"breakdown": func() error {
			_, err := NewGetCategoryBreakdownUseCase(fetcher).Execute(ctx, input)
			return err
		},
		"trend": func() error {
			_, err := NewGetDailyTrendUseCase(fetcher).Execute(ctx, input)
			return err
		},
		"overview": func() error {
			_, err := NewGetOverviewUseCase(fetcher).Execute(ctx, input)
			return err
		},
	}

	for name, exec := range executors {
		t.Run(name, func(t *testing.T) {
			err := exec()
			require.Error(t, err)
			var dashErr *domainerror.DashboardError
			require.True(t, errors.As(err, &dashErr))
			assert.Equal(t, domainerror.ErrCodeInvalidPeriod, dashErr.Code)
		})
	}
	assert.Zero(t, fetcher.calls, "fetcher must not be called for an invalid period")
}

func TestDashboardUseCases_FetchErrorsPropagate(t *testing.T) {
	boom := errors.New("connection refused")

	t.Run("expenses", func(t *testing.T) {
		_, err := NewGetCategoryBreakdownUseCase(&stubFetcher{expenseErr: boom}).
			Execute(context.Background(), PeriodInput{Month: 1, Year: 2024})
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("income", func(t *testing.T) {
		_, err := NewGetSummaryUseCase(&stubFetcher{incomeErr: boom}).
			Execute(context.Background(), PeriodInput{Month: 1, Year: 2024})
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})
}

func TestGetCategoryBreakdownUseCase_Execute(t *testing.T) {
	uc := NewGetCategoryBreakdownUseCase(&stubFetcher{expenses: march2024()})

	out, err := uc.Execute(context.Background(), PeriodInput{Month: 3, Year: 2024})

	require.NoError(t, err)
	assert.True(t, out.TotalExpenses.Equal(dec("170")))
	require.Len(t, out.Categories, 2)
	assert.Equal(t, "Groceries", out.Categories[0].Name)
}

func TestGetDailyTrendUseCase_Execute(t *testing.T) {
	uc := NewGetDailyTrendUseCase(&stubFetcher{expenses: march2024()})

	out, err := uc.Execute(context.Background(), PeriodInput{Month: 3, Year: 2024})

	require.NoError(t, err)
	require.Len(t, out.Trend.Days, 3)
	assert.Equal(t, "Mar 02", out.Trend.Days[0].Label)
	assert.Equal(t, "Mar 10", out.Trend.Days[2].Label)
}

func TestGetOverviewUseCase_Execute(t *testing.T) {
	fetcher := &stubFetcher{expenses: march2024()}
	uc := NewGetOverviewUseCase(fetcher)

	out, err := uc.Execute(context.Background(), PeriodInput{Month: 3, Year: 2024})

	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)
	assert.False(t, out.Summary.HasIncome)
	assert.True(t, out.Summary.Balance.Equal(dec("-170")))
	assert.Len(t, out.Categories, 2)
	assert.Len(t, out.Trend.Days, 3)
	assert.Len(t, out.Expenses, 3)
}

func TestGetOverviewUseCase_EmptyMonth(t *testing.T) {
	uc := NewGetOverviewUseCase(&stubFetcher{})

	out, err := uc.Execute(context.Background(), PeriodInput{Month: 2, Year: 2024})

	require.NoError(t, err)
	assert.True(t, out.Summary.TotalExpenses.IsZero())
	assert.Empty(t, out.Categories)
	assert.Empty(t, out.Trend.Days)
}
