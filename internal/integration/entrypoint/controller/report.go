// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/expense-tracker/internal/application/usecase/dashboard"
	"github.com/finance-tracker/expense-tracker/internal/application/usecase/report"
	domainerror "github.com/finance-tracker/expense-tracker/internal/domain/error"
	"github.com/finance-tracker/expense-tracker/internal/integration/entrypoint/dto"
)

// ReportController handles the monthly report endpoints.
type ReportController struct {
	sendSummaryUseCase *report.SendMonthlySummaryUseCase
	exportUseCase      *report.ExportMonthlyUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	sendSummaryUseCase *report.SendMonthlySummaryUseCase,
	exportUseCase *report.ExportMonthlyUseCase,
) *ReportController {
	return &ReportController{
		sendSummaryUseCase: sendSummaryUseCase,
		exportUseCase:      exportUseCase,
	}
}

// SendMonthlySummary handles POST /reports/monthly/email requests.
func (c *ReportController) SendMonthlySummary(ctx *gin.Context) {
	var req dto.SendMonthlyReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingPeriod), err)
		return
	}

	output, err := c.sendSummaryUseCase.Execute(ctx.Request.Context(), report.SendMonthlySummaryInput{
		Month: req.Month,
		Year:  req.Year,
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.SendMonthlyReportResponse{
		Message:   "Monthly summary queued",
		Recipient: output.Recipient,
		Period:    output.PeriodLabel,
	})
}

// Export handles GET /reports/monthly/export requests with an xlsx download.
func (c *ReportController) Export(ctx *gin.Context) {
	period, ok := periodFromQuery(ctx)
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), dashboard.PeriodInput{
		Month: period.Month,
		Year:  period.Year,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}
