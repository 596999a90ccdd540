// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/expense-tracker/internal/domain/valueobject"
)

// DateLayout is the wire format of calendar days.
const DateLayout = "2006-01-02"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// PeriodResponse represents a resolved calendar month.
type PeriodResponse struct {
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Label     string `json:"label"`
}

// ToPeriodResponse converts a Period value object to a PeriodResponse DTO.
func ToPeriodResponse(p valueobject.Period) PeriodResponse {
	return PeriodResponse{
		Month:     p.Month,
		Year:      p.Year,
		StartDate: p.Start.Format(DateLayout),
		EndDate:   p.End.Format(DateLayout),
		Label:     p.Label(),
	}
}

// Money renders an amount with exactly two decimals.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
