package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
	"github.com/finance-tracker/expense-tracker/internal/domain/valueobject"
)

// ExpenseRequest is the body of both expense creation and full update.
// Amount accepts a JSON number or a numeric string.
type ExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	CategoryID  string           `json:"category_id" binding:"required"`
	Date        string           `json:"date" binding:"required"`
	Description *string          `json:"description,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string            `json:"id"`
	Amount      string            `json:"amount"`
	Date        string            `json:"date"`
	Description *string           `json:"description"`
	CategoryID  string            `json:"category_id"`
	Category    *CategoryResponse `json:"category"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ExpenseListResponse represents the expenses of one month.
type ExpenseListResponse struct {
	Period   PeriodResponse    `json:"period"`
	Expenses []ExpenseResponse `json:"expenses"`
	Total    string            `json:"total"`
}

// SuggestCategoryRequest represents the request body for a category suggestion.
type SuggestCategoryRequest struct {
	Description string           `json:"description" binding:"required"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
}

// SuggestCategoryResponse represents the suggested category.
type SuggestCategoryResponse struct {
	Category   CategoryResponse `json:"category"`
	Confidence float64          `json:"confidence"`
	Reasoning  string           `json:"reasoning,omitempty"`
}

// ToExpenseResponse converts an expense and its category to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.ExpenseWithCategory) ExpenseResponse {
	exp := e.Expense
	resp := ExpenseResponse{
		ID:          exp.ID.String(),
		Amount:      Money(exp.Amount),
		Date:        exp.Date.Format(DateLayout),
		Description: exp.Description,
		CategoryID:  exp.CategoryID.String(),
		CreatedAt:   exp.CreatedAt,
		UpdatedAt:   exp.UpdatedAt,
	}
	if e.Category != nil {
		cat := ToCategoryResponse(e.Category)
		resp.Category = &cat
	}
	return resp
}

// ToExpenseListResponse converts a month of expenses to an ExpenseListResponse DTO.
func ToExpenseListResponse(period valueobject.Period, expenses []*entity.ExpenseWithCategory) ExpenseListResponse {
	items := make([]ExpenseResponse, len(expenses))
	total := decimal.Zero
	for i, e := range expenses {
		items[i] = ToExpenseResponse(e)
		total = total.Add(e.Expense.Amount)
	}
	return ExpenseListResponse{
		Period:   ToPeriodResponse(period),
		Expenses: items,
		Total:    Money(total),
	}
}
