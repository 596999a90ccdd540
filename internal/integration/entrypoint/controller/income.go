// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/expense-tracker/internal/application/usecase/income"
	domainerror "github.com/finance-tracker/expense-tracker/internal/domain/error"
	"github.com/finance-tracker/expense-tracker/internal/integration/entrypoint/dto"
)

// IncomeController handles monthly income endpoints.
type IncomeController struct {
	getUseCase *income.GetIncomeUseCase
	setUseCase *income.SetIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(getUseCase *income.GetIncomeUseCase, setUseCase *income.SetIncomeUseCase) *IncomeController {
	return &IncomeController{
		getUseCase: getUseCase,
		setUseCase: setUseCase,
	}
}

// Get handles GET /income?month=&year= requests. A month without income answers {"income": null}.
func (c *IncomeController) Get(ctx *gin.Context) {
	period, ok := periodFromQuery(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), income.GetIncomeInput{
		Month: period.Month,
		Year:  period.Year,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeEnvelope(output.Period, output.Income))
}

// Set handles POST /income requests, creating or replacing the month's income.
func (c *IncomeController) Set(ctx *gin.Context) {
	var req dto.SetIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidIncomeAmount), err)
		return
	}

	output, err := c.setUseCase.Execute(ctx.Request.Context(), income.SetIncomeInput{
		Month:  req.Month,
		Year:   req.Year,
		Amount: *req.Amount,
		Source: req.Source,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeResponse(output.Income))
}
