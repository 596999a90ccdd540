// Package valueobject contains domain value objects for the Expense Tracker system.
package valueobject

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	domainerror "github.com/finance-tracker/expense-tracker/internal/domain/error"
)

// Bounds accepted for the year component of a period.
const (
	MinPeriodYear = 1
	MaxPeriodYear = 9999
)

// Period is a resolved calendar month: the inclusive range from its first to its last day.
type Period struct {
	Month int
	Year  int
	Start time.Time // First day of the month, midnight UTC
	End   time.Time // Last day of the month, midnight UTC (inclusive)
}

// NewPeriod resolves a month (1-12) and year into a Period.
func NewPeriod(month, year int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidPeriod,
			fmt.Sprintf("month must be between 1 and 12, got %d", month),
			domainerror.ErrInvalidPeriod,
		)
	}
	if year < MinPeriodYear || year > MaxPeriodYear {
		return Period{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidPeriod,
			fmt.Sprintf("year must be between %d and %d, got %d", MinPeriodYear, MaxPeriodYear, year),
			domainerror.ErrInvalidPeriod,
		)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// Day 0 of the next month normalizes to the last day of this one.
	end := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)

	return Period{
		Month: month,
		Year:  year,
		Start: start,
		End:   end,
	}, nil
}

// ParsePeriod resolves textual month and year values, as received from query strings.
func ParsePeriod(month, year string) (Period, error) {
	month = strings.TrimSpace(month)
	year = strings.TrimSpace(year)
	if month == "" || year == "" {
		return Period{}, domainerror.NewDashboardError(
			domainerror.ErrCodeMissingPeriod,
			"month and year are required",
			domainerror.ErrInvalidPeriod,
		)
	}

	m, err := strconv.Atoi(month)
	if err != nil {
		return Period{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidPeriod,
			fmt.Sprintf("month must be an integer, got %q", month),
			domainerror.ErrInvalidPeriod,
		)
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return Period{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidPeriod,
			fmt.Sprintf("year must be an integer, got %q", year),
			domainerror.ErrInvalidPeriod,
		)
	}

	return NewPeriod(m, y)
}

// NextStart returns the first day of the following month, the exclusive upper bound
// used for range queries.
func (p Period) NextStart() time.Time {
	return p.Start.AddDate(0, 1, 0)
}

// Contains reports whether the calendar day of t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	y, m, _ := t.Date()
	return y == p.Year && int(m) == p.Month
}

// Days returns the number of calendar days in the period.
func (p Period) Days() int {
	return p.End.Day()
}

// Label returns a short human label such as "Mar 2024".
func (p Period) Label() string {
	return p.Start.Format("Jan 2006")
}

// String implements fmt.Stringer.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}
