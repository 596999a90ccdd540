package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
	"github.com/finance-tracker/expense-tracker/internal/domain/valueobject"
)

// SetIncomeRequest represents the request body for setting a month's income.
type SetIncomeRequest struct {
	Month  int              `json:"month" binding:"required"`
	Year   int              `json:"year" binding:"required"`
	Amount *decimal.Decimal `json:"amount" binding:"required"`
	Source string           `json:"source,omitempty"`
}

// IncomeResponse represents a month's income in API responses.
type IncomeResponse struct {
	ID        string    `json:"id"`
	Month     int       `json:"month"`
	Year      int       `json:"year"`
	Amount    string    `json:"amount"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IncomeEnvelope wraps a possibly absent income; Income is null when none was recorded.
type IncomeEnvelope struct {
	Period PeriodResponse  `json:"period"`
	Income *IncomeResponse `json:"income"`
}

// ToIncomeResponse converts a domain Income entity to an IncomeResponse DTO.
func ToIncomeResponse(income *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:        income.ID.String(),
		Month:     income.Month,
		Year:      income.Year,
		Amount:    Money(income.Amount),
		Source:    income.Source,
		CreatedAt: income.CreatedAt,
		UpdatedAt: income.UpdatedAt,
	}
}

// ToIncomeEnvelope converts a period and its optional income to an IncomeEnvelope.
func ToIncomeEnvelope(period valueobject.Period, income *entity.Income) IncomeEnvelope {
	env := IncomeEnvelope{Period: ToPeriodResponse(period)}
	if income != nil {
		resp := ToIncomeResponse(income)
		env.Income = &resp
	}
	return env
}
