// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/expense-tracker/internal/domain/error"
	"github.com/finance-tracker/expense-tracker/internal/domain/valueobject"
	"github.com/finance-tracker/expense-tracker/internal/integration/entrypoint/dto"
)

// handleError maps domain errors to HTTP responses. Anything unrecognized is a 500.
func handleError(ctx *gin.Context, err error) {
	status, code, message := classifyError(err)
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
	}
	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func classifyError(err error) (status int, code string, message string) {
	var dashErr *domainerror.DashboardError
	var catErr *domainerror.CategoryError
	var expErr *domainerror.ExpenseError
	var incErr *domainerror.IncomeError
	var rptErr *domainerror.ReportError
	var mailErr *domainerror.EmailError

	switch {
	case errors.As(err, &dashErr):
		return getStatusCodeForDashboardError(dashErr.Code), string(dashErr.Code), dashErr.Message
	case errors.As(err, &catErr):
		return getStatusCodeForCategoryError(catErr.Code), string(catErr.Code), catErr.Message
	case errors.As(err, &expErr):
		return getStatusCodeForExpenseError(expErr.Code), string(expErr.Code), expErr.Message
	case errors.As(err, &incErr):
		return getStatusCodeForIncomeError(incErr.Code), string(incErr.Code), incErr.Message
	case errors.As(err, &rptErr):
		return getStatusCodeForReportError(rptErr.Code), string(rptErr.Code), rptErr.Message
	case errors.As(err, &mailErr):
		return http.StatusInternalServerError, string(mailErr.Code), mailErr.Message
	}
	return http.StatusInternalServerError, "", "An internal error occurred"
}

func getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidPeriod, domainerror.ErrCodeMissingPeriod:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNameExists:
		return http.StatusConflict
	case domainerror.ErrCodeCategoryNameTooLong,
		domainerror.ErrCodeInvalidColorFormat,
		domainerror.ErrCodeCategoryNameRequired,
		domainerror.ErrCodeCannotDeletePredefined:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeSuggestionUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidExpenseDate,
		domainerror.ErrCodeExpenseCategoryRequired,
		domainerror.ErrCodeExpenseCategoryNotFound,
		domainerror.ErrCodeDescriptionRequired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func getStatusCodeForIncomeError(code domainerror.IncomeErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidIncomeAmount, domainerror.ErrCodeInvalidIncomePeriod:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecipientRequired, domainerror.ErrCodeInvalidRecipient:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// periodFromQuery resolves the month and year query parameters, answering 400 when they are unusable.
func periodFromQuery(ctx *gin.Context) (valueobject.Period, bool) {
	period, err := valueobject.ParsePeriod(ctx.Query("month"), ctx.Query("year"))
	if err != nil {
		handleError(ctx, err)
		return valueobject.Period{}, false
	}
	return period, true
}

// badRequest answers 400 for a body that failed binding.
func badRequest(ctx *gin.Context, code string, err error) {
	resp := dto.ErrorResponse{
		Error: "Invalid request body",
		Code:  code,
	}
	if err != nil {
		resp.Details = err.Error()
	}
	ctx.JSON(http.StatusBadRequest, resp)
}
