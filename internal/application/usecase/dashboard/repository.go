// Package dashboard contains the monthly aggregation use cases behind the dashboard charts.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordFetcher defines the read-only data source the aggregation works from.
type RecordFetcher interface {
	// FetchExpenses returns every expense dated within [start, end], both calendar days inclusive.
	FetchExpenses(ctx context.Context, start, end time.Time) ([]ExpenseRecord, error)

	// FetchIncome returns the income recorded for a month, or nil when none exists.
	FetchIncome(ctx context.Context, month, year int) (*IncomeRecord, error)
}

// ExpenseRecord is an expense joined with whatever is known about its category.
// The category fields are nil when the reference cannot be resolved.
type ExpenseRecord struct {
	ID            uuid.UUID
	Amount        decimal.Decimal
	Date          time.Time
	Description   *string
	CategoryID    *uuid.UUID
	CategoryName  *string
	CategoryColor *string
	CategoryIcon  *string
}

// IncomeRecord is the income recorded for one month.
type IncomeRecord struct {
	Month  int
	Year   int
	Amount decimal.Decimal
	Source string
}
