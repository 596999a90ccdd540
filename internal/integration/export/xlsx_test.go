package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/finance-tracker/expense-tracker/internal/application/usecase/dashboard"
	"github.com/finance-tracker/expense-tracker/internal/domain/valueobject"
)

func strPtr(s string) *string { return &s }

func record(amount string, day int, name, color *string) dashboard.ExpenseRecord {
	id := uuid.New()
	return dashboard.ExpenseRecord{
		ID:            uuid.New(),
		Amount:        decimal.RequireFromString(amount),
		Date:          time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC),
		CategoryID:    &id,
		CategoryName:  name,
		CategoryColor: color,
	}
}

func overview(t *testing.T, withIncome bool) *dashboard.GetOverviewOutput {
	t.Helper()
	period, err := valueobject.NewPeriod(3, 2024)
	require.NoError(t, err)

	records := []dashboard.ExpenseRecord{
		record("50.00", 5, strPtr("Food"), strPtr("#EF4444")),
		record("20.50", 5, strPtr("Transport"), strPtr("#10B981")),
		record("30.00", 31, nil, nil),
	}
	records[0].Description = strPtr("Groceries")

	var income *dashboard.IncomeRecord
	if withIncome {
		income = &dashboard.IncomeRecord{Month: 3, Year: 2024, Amount: decimal.NewFromInt(1000), Source: "Salary"}
	}

	return &dashboard.GetOverviewOutput{
		Period:     period,
		Summary:    dashboard.CalculateSummary(income, records),
		Categories: dashboard.BuildCategoryBreakdown(records),
		Trend:      dashboard.BuildDailyTrend(records),
		Expenses:   records,
	}
}

func open(t *testing.T, content []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func rows(t *testing.T, f *excelize.File, sheet string) [][]string {
	t.Helper()
	out, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return out
}

func TestRenderMonthly_Sheets(t *testing.T) {
	content, err := NewXLSXRenderer().RenderMonthly(overview(t, true))
	require.NoError(t, err)

	f := open(t, content)
	assert.Equal(t, []string{SheetSummary, SheetExpenses, SheetCategories, SheetDaily}, f.GetSheetList())
}

func TestRenderMonthly_Summary(t *testing.T) {
	content, err := NewXLSXRenderer().RenderMonthly(overview(t, true))
	require.NoError(t, err)

	got := rows(t, open(t, content), SheetSummary)
	require.GreaterOrEqual(t, len(got), 7)
	assert.Equal(t, "Expense report - Mar 2024", got[0][0])
	assert.Equal(t, []string{"Period", "2024-03"}, got[2])
	assert.Equal(t, []string{"Income", "1000"}, got[3])
	assert.Equal(t, []string{"Expenses", "100.5"}, got[4])
	assert.Equal(t, []string{"Balance", "899.5"}, got[5])
	assert.Equal(t, []string{"Expense count", "3"}, got[6])
}

func TestRenderMonthly_NoIncome(t *testing.T) {
	content, err := NewXLSXRenderer().RenderMonthly(overview(t, false))
	require.NoError(t, err)

	got := rows(t, open(t, content), SheetSummary)
	assert.Equal(t, []string{"Income", "not set"}, got[3])
	assert.Equal(t, []string{"Balance", "-100.5"}, got[5])
}

func TestRenderMonthly_ExpensesAndCategories(t *testing.T) {
	content, err := NewXLSXRenderer().RenderMonthly(overview(t, true))
	require.NoError(t, err)
	f := open(t, content)

	expenses := rows(t, f, SheetExpenses)
	require.Len(t, expenses, 4)
	assert.Equal(t, []string{"Date", "Category", "Description", "Amount"}, expenses[0])
	assert.Equal(t, []string{"2024-03-05", "Food", "Groceries", "50"}, expenses[1])
	assert.Equal(t, "Unknown", expenses[3][1])

	categories := rows(t, f, SheetCategories)
	require.Len(t, categories, 4)
	assert.Equal(t, []string{"Food", "#EF4444", "1", "50"}, categories[1][:4])
	assert.Equal(t, []string{"Unknown", "#3B82F6", "1", "30"}, categories[3][:4])
}

func TestRenderMonthly_DailyPivot(t *testing.T) {
	content, err := NewXLSXRenderer().RenderMonthly(overview(t, true))
	require.NoError(t, err)

	daily := rows(t, open(t, content), SheetDaily)
	require.Len(t, daily, 3)
	assert.Equal(t, []string{"Day", "Total", "Food", "Transport", "Unknown"}, daily[0])
	assert.Equal(t, []string{"2024-03-05", "70.5", "50", "20.5", "0"}, daily[1])
	assert.Equal(t, []string{"2024-03-31", "30", "0", "0", "30"}, daily[2])
}

func TestRenderMonthly_EmptyMonth(t *testing.T) {
	period, err := valueobject.NewPeriod(2, 2024)
	require.NoError(t, err)

	content, err := NewXLSXRenderer().RenderMonthly(&dashboard.GetOverviewOutput{
		Period:  period,
		Summary: dashboard.CalculateSummary(nil, nil),
		Trend:   dashboard.BuildDailyTrend(nil),
	})
	require.NoError(t, err)

	f := open(t, content)
	assert.Len(t, rows(t, f, SheetExpenses), 1)
	assert.Equal(t, []string{"Day", "Total"}, rows(t, f, SheetDaily)[0])
}
