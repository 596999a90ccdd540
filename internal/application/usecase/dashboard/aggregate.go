// Package dashboard contains the monthly aggregation use cases behind the dashboard charts.
package dashboard

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
)

// dayKeyLayout keys the daily accumulator by calendar day.
const dayKeyLayout = "2006-01-02"

// DayLabelLayout is the display label of a trend entry, e.g. "Mar 05".
const DayLabelLayout = "Jan 02"

var hundred = decimal.NewFromInt(100)

// CategoryTotal is the amount spent in one category over a period.
type CategoryTotal struct {
	CategoryID *uuid.UUID // First ID seen for this name; nil for the Unknown bucket
	Name       string
	Color      string
	Total      decimal.Decimal
	Count      int
	Percentage decimal.Decimal // Share of all expenses, 0-100
}

// CategoryAmount is a category's total on a single day.
type CategoryAmount struct {
	Name  string
	Total decimal.Decimal
}

// DayEntry is one point of the daily trend.
type DayEntry struct {
	Date       time.Time
	Label      string
	Total      decimal.Decimal
	Categories []CategoryAmount // Only categories with expenses on this day, first-seen order
}

// LegendEntry names a category series of the trend chart.
type LegendEntry struct {
	Name  string
	Color string
}

// DailyTrend is the per-day, per-category series for a period.
type DailyTrend struct {
	Days       []DayEntry    // Chronological
	Categories []LegendEntry // Every category appearing in Days, first-seen order
}

// Summary holds the headline figures for a period.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal // May be negative
	HasIncome     bool
	IncomeSource  string
	ExpenseCount  int
}

// resolvedCategory is the display identity of a record's category.
type resolvedCategory struct {
	id    *uuid.UUID
	name  string
	color string
}

// resolveCategory maps a record to its category display fields, substituting the
// Unknown bucket when the reference is dangling.
func resolveCategory(r ExpenseRecord) resolvedCategory {
	if r.CategoryName == nil || *r.CategoryName == "" {
		return resolvedCategory{
			name:  entity.UnknownCategoryName,
			color: entity.DefaultCategoryColor,
		}
	}

	color := entity.DefaultCategoryColor
	if r.CategoryColor != nil && *r.CategoryColor != "" {
		color = *r.CategoryColor
	}

	return resolvedCategory{
		id:    r.CategoryID,
		name:  *r.CategoryName,
		color: color,
	}
}

// BuildCategoryBreakdown groups expenses by category name. Totals are exact; the
// first color seen for a name wins and categories keep first-seen order.
func BuildCategoryBreakdown(records []ExpenseRecord) []CategoryTotal {
	totals := make([]CategoryTotal, 0)
	index := make(map[string]int)
	sum := decimal.Zero

	for _, r := range records {
		cat := resolveCategory(r)
		sum = sum.Add(r.Amount)

		i, ok := index[cat.name]
		if !ok {
			i = len(totals)
			index[cat.name] = i
			totals = append(totals, CategoryTotal{
				CategoryID: cat.id,
				Name:       cat.name,
				Color:      cat.color,
				Total:      decimal.Zero,
			})
		}
		totals[i].Total = totals[i].Total.Add(r.Amount)
		totals[i].Count++
	}

	if !sum.IsZero() {
		for i := range totals {
			totals[i].Percentage = totals[i].Total.Mul(hundred).Div(sum).Round(2)
		}
	}

	return totals
}

// dayAccumulator collects one calendar day's totals.
type dayAccumulator struct {
	date  time.Time
	total decimal.Decimal
	index map[string]int
	cats  []CategoryAmount
}

// BuildDailyTrend groups expenses by calendar day and, within a day, by category name.
// Days are ordered by their actual date, never by label.
func BuildDailyTrend(records []ExpenseRecord) DailyTrend {
	days := make(map[string]*dayAccumulator)
	legend := make([]LegendEntry, 0)
	seen := make(map[string]bool)

	for _, r := range records {
		cat := resolveCategory(r)
		if !seen[cat.name] {
			seen[cat.name] = true
			legend = append(legend, LegendEntry{Name: cat.name, Color: cat.color})
		}

		day := entity.CalendarDay(r.Date)
		key := day.Format(dayKeyLayout)
		acc, ok := days[key]
		if !ok {
			acc = &dayAccumulator{
				date:  day,
				total: decimal.Zero,
				index: make(map[string]int),
			}
			days[key] = acc
		}

		acc.total = acc.total.Add(r.Amount)
		i, ok := acc.index[cat.name]
		if !ok {
			i = len(acc.cats)
			acc.index[cat.name] = i
			acc.cats = append(acc.cats, CategoryAmount{Name: cat.name, Total: decimal.Zero})
		}
		acc.cats[i].Total = acc.cats[i].Total.Add(r.Amount)
	}

	entries := make([]DayEntry, 0, len(days))
	for _, acc := range days {
		entries = append(entries, DayEntry{
			Date:       acc.date,
			Label:      acc.date.Format(DayLabelLayout),
			Total:      acc.total,
			Categories: acc.cats,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	return DailyTrend{
		Days:       entries,
		Categories: legend,
	}
}

// CalculateSummary derives income, expense and balance totals. A nil income means
// no income was recorded and counts as zero.
func CalculateSummary(income *IncomeRecord, records []ExpenseRecord) Summary {
	totalExpenses := decimal.Zero
	for _, r := range records {
		totalExpenses = totalExpenses.Add(r.Amount)
	}

	s := Summary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: totalExpenses,
		ExpenseCount:  len(records),
	}

	if income != nil {
		s.TotalIncome = income.Amount
		s.HasIncome = true
		s.IncomeSource = income.Source
	}

	s.Balance = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}
