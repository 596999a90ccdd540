// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/expense-tracker/internal/application/usecase/dashboard"
	"github.com/finance-tracker/expense-tracker/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getSummaryUseCase           *dashboard.GetSummaryUseCase
	getCategoryBreakdownUseCase *dashboard.GetCategoryBreakdownUseCase
	getDailyTrendUseCase        *dashboard.GetDailyTrendUseCase
	getOverviewUseCase          *dashboard.GetOverviewUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getSummaryUseCase *dashboard.GetSummaryUseCase,
	getCategoryBreakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
	getDailyTrendUseCase *dashboard.GetDailyTrendUseCase,
	getOverviewUseCase *dashboard.GetOverviewUseCase,
) *DashboardController {
	return &DashboardController{
		getSummaryUseCase:           getSummaryUseCase,
		getCategoryBreakdownUseCase: getCategoryBreakdownUseCase,
		getDailyTrendUseCase:        getDailyTrendUseCase,
		getOverviewUseCase:          getOverviewUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	input, ok := dashboardInput(ctx)
	if !ok {
		return
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// GetCategoryBreakdown handles GET /dashboard/category-breakdown requests.
func (c *DashboardController) GetCategoryBreakdown(ctx *gin.Context) {
	input, ok := dashboardInput(ctx)
	if !ok {
		return
	}

	output, err := c.getCategoryBreakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// GetDailyTrend handles GET /dashboard/daily-trend requests.
func (c *DashboardController) GetDailyTrend(ctx *gin.Context) {
	input, ok := dashboardInput(ctx)
	if !ok {
		return
	}

	output, err := c.getDailyTrendUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailyTrendResponse(output.Period, output.Trend))
}

// GetOverview handles GET /dashboard/overview requests.
func (c *DashboardController) GetOverview(ctx *gin.Context) {
	input, ok := dashboardInput(ctx)
	if !ok {
		return
	}

	output, err := c.getOverviewUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}

func dashboardInput(ctx *gin.Context) (dashboard.PeriodInput, bool) {
	period, ok := periodFromQuery(ctx)
	if !ok {
		return dashboard.PeriodInput{}, false
	}
	return dashboard.PeriodInput{Month: period.Month, Year: period.Year}, true
}
