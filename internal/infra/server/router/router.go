// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/expense-tracker/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/expense-tracker/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	categoryController  *controller.CategoryController
	expenseController   *controller.ExpenseController
	incomeController    *controller.IncomeController
	dashboardController *controller.DashboardController
	reportController    *controller.ReportController
	rateLimiter         *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
// A nil rate limiter leaves every route unthrottled.
func NewRouter(
	healthController *controller.HealthController,
	categoryController *controller.CategoryController,
	expenseController *controller.ExpenseController,
	incomeController *controller.IncomeController,
	dashboardController *controller.DashboardController,
	reportController *controller.ReportController,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		categoryController:  categoryController,
		expenseController:   expenseController,
		incomeController:    incomeController,
		dashboardController: dashboardController,
		reportController:    reportController,
		rateLimiter:         rateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// throttle returns the rate limiting middleware for mutating routes.
func (r *Router) throttle() gin.HandlerFunc {
	if r.rateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return r.rateLimiter.Middleware()
}

func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.GET("/health", r.healthController.Check)
	limited := r.throttle()

	// Category routes
	{
		categories := v1.Group("/categories")
		categories.GET("", r.categoryController.List)
		categories.POST("", limited, r.categoryController.Create)
		categories.PATCH("/:id", limited, r.categoryController.Update)
		categories.DELETE("/:id", limited, r.categoryController.Delete)
	}

	// Expense routes
	{
		expenses := v1.Group("/expenses")
		expenses.GET("", r.expenseController.List)
		expenses.POST("", limited, r.expenseController.Create)
		expenses.POST("/suggest-category", limited, r.expenseController.SuggestCategory)
		expenses.GET("/:id", r.expenseController.Get)
		expenses.PUT("/:id", limited, r.expenseController.Update)
		expenses.DELETE("/:id", limited, r.expenseController.Delete)
	}

	// Income routes
	{
		income := v1.Group("/income")
		income.GET("", r.incomeController.Get)
		income.POST("", limited, r.incomeController.Set)
	}

	// Dashboard routes
	{
		dashboard := v1.Group("/dashboard")
		dashboard.GET("/summary", r.dashboardController.GetSummary)
		dashboard.GET("/category-breakdown", r.dashboardController.GetCategoryBreakdown)
		dashboard.GET("/daily-trend", r.dashboardController.GetDailyTrend)
		dashboard.GET("/overview", r.dashboardController.GetOverview)
	}

	// Report routes
	{
		reports := v1.Group("/reports/monthly")
		reports.POST("/email", limited, r.reportController.SendMonthlySummary)
		reports.GET("/export", r.reportController.Export)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
