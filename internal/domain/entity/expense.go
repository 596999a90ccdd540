// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single spending entry logged against a category.
type Expense struct {
	ID          uuid.UUID
	Amount      decimal.Decimal // Always non-negative
	CategoryID  uuid.UUID
	Date        time.Time // Calendar date, midnight UTC
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity. The date is truncated to its calendar day.
func NewExpense(amount decimal.Decimal, categoryID uuid.UUID, date time.Time, description *string) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		Amount:      amount,
		CategoryID:  categoryID,
		Date:        CalendarDay(date),
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ExpenseWithCategory pairs an expense with its resolved category.
// Category is nil when the reference is dangling.
type ExpenseWithCategory struct {
	Expense  *Expense
	Category *Category
}

// CalendarDay returns midnight UTC of the date's calendar day.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
