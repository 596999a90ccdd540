package dto

import (
	"github.com/finance-tracker/expense-tracker/internal/application/usecase/dashboard"
	"github.com/finance-tracker/expense-tracker/internal/domain/valueobject"
)

// SummaryData carries the headline figures of a month.
type SummaryData struct {
	TotalIncome   string `json:"total_income"`
	TotalExpenses string `json:"total_expenses"`
	Balance       string `json:"balance"`
	HasIncome     bool   `json:"has_income"`
	IncomeSource  string `json:"income_source,omitempty"`
	ExpenseCount  int    `json:"expense_count"`
}

// SummaryResponse represents the response for the summary API.
type SummaryResponse struct {
	Period PeriodResponse `json:"period"`
	SummaryData
}

// CategoryTotalResponse represents one slice of the category breakdown.
type CategoryTotalResponse struct {
	CategoryID *string `json:"category_id"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Total      string  `json:"total"`
	Count      int     `json:"count"`
	Percentage string  `json:"percentage"`
}

// CategoryBreakdownResponse represents the response for the category breakdown API.
type CategoryBreakdownResponse struct {
	Period        PeriodResponse          `json:"period"`
	TotalExpenses string                  `json:"total_expenses"`
	Categories    []CategoryTotalResponse `json:"categories"`
}

// CategoryAmountResponse is a category's total on one day.
type CategoryAmountResponse struct {
	Name  string `json:"name"`
	Total string `json:"total"`
}

// DayResponse is one point of the daily trend.
type DayResponse struct {
	Date       string                   `json:"date"`
	Label      string                   `json:"label"`
	Total      string                   `json:"total"`
	Categories []CategoryAmountResponse `json:"categories"`
}

// LegendResponse names one series of the trend chart.
type LegendResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// DailyTrendData carries the chronological per-day series.
type DailyTrendData struct {
	Days       []DayResponse    `json:"days"`
	Categories []LegendResponse `json:"categories"`
}

// DailyTrendResponse represents the response for the daily trend API.
type DailyTrendResponse struct {
	Period PeriodResponse `json:"period"`
	DailyTrendData
}

// OverviewResponse bundles every dashboard view of a month.
type OverviewResponse struct {
	Period     PeriodResponse          `json:"period"`
	Summary    SummaryData             `json:"summary"`
	Categories []CategoryTotalResponse `json:"categories"`
	Trend      DailyTrendData          `json:"trend"`
}

// ToSummaryData converts a Summary to its wire form.
func ToSummaryData(s dashboard.Summary) SummaryData {
	return SummaryData{
		TotalIncome:   Money(s.TotalIncome),
		TotalExpenses: Money(s.TotalExpenses),
		Balance:       Money(s.Balance),
		HasIncome:     s.HasIncome,
		IncomeSource:  s.IncomeSource,
		ExpenseCount:  s.ExpenseCount,
	}
}

// ToSummaryResponse converts a GetSummaryOutput to a SummaryResponse DTO.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		Period:      ToPeriodResponse(output.Period),
		SummaryData: ToSummaryData(output.Summary),
	}
}

// ToCategoryTotals converts breakdown entries to their wire form.
func ToCategoryTotals(categories []dashboard.CategoryTotal) []CategoryTotalResponse {
	items := make([]CategoryTotalResponse, len(categories))
	for i, c := range categories {
		var id *string
		if c.CategoryID != nil {
			s := c.CategoryID.String()
			id = &s
		}
		items[i] = CategoryTotalResponse{
			CategoryID: id,
			Name:       c.Name,
			Color:      c.Color,
			Total:      Money(c.Total),
			Count:      c.Count,
			Percentage: Money(c.Percentage),
		}
	}
	return items
}

// ToCategoryBreakdownResponse converts a GetCategoryBreakdownOutput to a CategoryBreakdownResponse DTO.
func ToCategoryBreakdownResponse(output *dashboard.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	return CategoryBreakdownResponse{
		Period:        ToPeriodResponse(output.Period),
		TotalExpenses: Money(output.TotalExpenses),
		Categories:    ToCategoryTotals(output.Categories),
	}
}

// ToDailyTrendData converts a DailyTrend to its wire form.
func ToDailyTrendData(trend dashboard.DailyTrend) DailyTrendData {
	days := make([]DayResponse, len(trend.Days))
	for i, d := range trend.Days {
		cats := make([]CategoryAmountResponse, len(d.Categories))
		for j, c := range d.Categories {
			cats[j] = CategoryAmountResponse{Name: c.Name, Total: Money(c.Total)}
		}
		days[i] = DayResponse{
			Date:       d.Date.Format(DateLayout),
			Label:      d.Label,
			Total:      Money(d.Total),
			Categories: cats,
		}
	}

	legend := make([]LegendResponse, len(trend.Categories))
	for i, l := range trend.Categories {
		legend[i] = LegendResponse{Name: l.Name, Color: l.Color}
	}

	return DailyTrendData{Days: days, Categories: legend}
}

// ToDailyTrendResponse converts a period and trend to a DailyTrendResponse DTO.
func ToDailyTrendResponse(period valueobject.Period, trend dashboard.DailyTrend) DailyTrendResponse {
	return DailyTrendResponse{
		Period:         ToPeriodResponse(period),
		DailyTrendData: ToDailyTrendData(trend),
	}
}

// ToOverviewResponse converts a GetOverviewOutput to an OverviewResponse DTO.
func ToOverviewResponse(output *dashboard.GetOverviewOutput) OverviewResponse {
	return OverviewResponse{
		Period:     ToPeriodResponse(output.Period),
		Summary:    ToSummaryData(output.Summary),
		Categories: ToCategoryTotals(output.Categories),
		Trend:      ToDailyTrendData(output.Trend),
	}
}
