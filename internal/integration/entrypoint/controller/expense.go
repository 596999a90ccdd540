// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/expense-tracker/internal/application/usecase/expense"
	domainerror "github.com/finance-tracker/expense-tracker/internal/domain/error"
	"github.com/finance-tracker/expense-tracker/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase    *expense.ListExpensesUseCase
	getUseCase     *expense.GetExpenseUseCase
	createUseCase  *expense.CreateExpenseUseCase
	updateUseCase  *expense.UpdateExpenseUseCase
	deleteUseCase  *expense.DeleteExpenseUseCase
	suggestUseCase *expense.SuggestCategoryUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	getUseCase *expense.GetExpenseUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	suggestUseCase *expense.SuggestCategoryUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		suggestUseCase: suggestUseCase,
	}
}

// List handles GET /expenses?month=&year= requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	period, ok := periodFromQuery(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{
		Month: period.Month,
		Year:  period.Year,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Period, output.Expenses))
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	expenseID, ok := parseExpenseID(ctx)
	if !ok {
		return
	}

	found, err := c.getUseCase.Execute(ctx.Request.Context(), expenseID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(found))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	fields, ok := bindExpense(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		Amount:      fields.amount,
		CategoryID:  fields.categoryID,
		Date:        fields.date,
		Description: fields.description,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Update handles PUT /expenses/:id requests. Every field is replaced.
func (c *ExpenseController) Update(ctx *gin.Context) {
	expenseID, ok := parseExpenseID(ctx)
	if !ok {
		return
	}

	fields, ok := bindExpense(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), expense.UpdateExpenseInput{
		ExpenseID:   expenseID,
		Amount:      fields.amount,
		CategoryID:  fields.categoryID,
		Date:        fields.date,
		Description: fields.description,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	expenseID, ok := parseExpenseID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{ExpenseID: expenseID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SuggestCategory handles POST /expenses/suggest-category requests.
func (c *ExpenseController) SuggestCategory(ctx *gin.Context) {
	var req dto.SuggestCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeDescriptionRequired), err)
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), expense.SuggestCategoryInput{
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestCategoryResponse{
		Category:   dto.ToCategoryResponse(output.Category),
		Confidence: output.Confidence,
		Reasoning:  output.Reasoning,
	})
}

// expenseFields is a validated expense request body.
type expenseFields struct {
	amount      decimal.Decimal
	categoryID  uuid.UUID
	date        time.Time
	description *string
}

// bindExpense decodes and validates the shared create/update body, answering 400 on failure.
func bindExpense(ctx *gin.Context) (expenseFields, bool) {
	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "", err)
		return expenseFields{}, false
	}

	categoryID, err := uuid.Parse(strings.TrimSpace(req.CategoryID))
	if err != nil {
		handleError(ctx, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseCategoryNotFound,
			"category_id is not a valid ID",
			domainerror.ErrExpenseCategoryNotFound,
		))
		return expenseFields{}, false
	}

	date, err := expense.ParseDate(req.Date)
	if err != nil {
		handleError(ctx, err)
		return expenseFields{}, false
	}

	return expenseFields{
		amount:      *req.Amount,
		categoryID:  categoryID,
		date:        date,
		description: req.Description,
	}, true
}

func parseExpenseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
