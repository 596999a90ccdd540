// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-tracker/expense-tracker/config"
	"github.com/finance-tracker/expense-tracker/internal/application/adapter"
	"github.com/finance-tracker/expense-tracker/internal/application/usecase/category"
	"github.com/finance-tracker/expense-tracker/internal/application/usecase/dashboard"
	"github.com/finance-tracker/expense-tracker/internal/application/usecase/expense"
	"github.com/finance-tracker/expense-tracker/internal/application/usecase/income"
	"github.com/finance-tracker/expense-tracker/internal/application/usecase/report"
	"github.com/finance-tracker/expense-tracker/internal/infra/server/router"
	"github.com/finance-tracker/expense-tracker/internal/integration/adapters"
	"github.com/finance-tracker/expense-tracker/internal/integration/email"
	"github.com/finance-tracker/expense-tracker/internal/integration/email/templates"
	"github.com/finance-tracker/expense-tracker/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/expense-tracker/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/expense-tracker/internal/integration/export"
	"github.com/finance-tracker/expense-tracker/internal/integration/persistence"
)

// Version is reported by the health endpoint.
var Version = "dev"

// UseCases exposes the application use cases to non-HTTP entrypoints such as the CLI.
type UseCases struct {
	ListCategories       *category.ListCategoriesUseCase
	CreateCategory       *category.CreateCategoryUseCase
	UpdateCategory       *category.UpdateCategoryUseCase
	DeleteCategory       *category.DeleteCategoryUseCase
	ListExpenses         *expense.ListExpensesUseCase
	GetExpense           *expense.GetExpenseUseCase
	CreateExpense        *expense.CreateExpenseUseCase
	UpdateExpense        *expense.UpdateExpenseUseCase
	DeleteExpense        *expense.DeleteExpenseUseCase
	SuggestCategory      *expense.SuggestCategoryUseCase
	GetIncome            *income.GetIncomeUseCase
	SetIncome            *income.SetIncomeUseCase
	GetSummary           *dashboard.GetSummaryUseCase
	GetCategoryBreakdown *dashboard.GetCategoryBreakdownUseCase
	GetDailyTrend        *dashboard.GetDailyTrendUseCase
	GetOverview          *dashboard.GetOverviewUseCase
	SendMonthlySummary   *report.SendMonthlySummaryUseCase
	ExportMonthly        *report.ExportMonthlyUseCase
}

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Router       *router.Router
	UseCases     UseCases
	EmailWorker  *email.Worker
	CategoryRepo adapter.CategoryRepository
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case rate limiting counts in memory.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)
	recordFetcher := persistence.NewDashboardRepository(db)

	// Create adapters/services
	suggester := adapters.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.Model)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)
	emailSender, err := email.NewSender(email.SenderConfig{
		APIKey:    cfg.Email.ResendAPIKey,
		BaseURL:   cfg.Email.ResendBaseURL,
		FromName:  cfg.Email.FromName,
		FromEmail: cfg.Email.FromEmail,
		ReplyTo:   cfg.Email.ReplyTo,
	})
	if err != nil {
		return nil, err
	}
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}

	uc := UseCases{
		ListCategories:       category.NewListCategoriesUseCase(categoryRepo),
		CreateCategory:       category.NewCreateCategoryUseCase(categoryRepo),
		UpdateCategory:       category.NewUpdateCategoryUseCase(categoryRepo),
		DeleteCategory:       category.NewDeleteCategoryUseCase(categoryRepo),
		ListExpenses:         expense.NewListExpensesUseCase(expenseRepo),
		GetExpense:           expense.NewGetExpenseUseCase(expenseRepo),
		CreateExpense:        expense.NewCreateExpenseUseCase(expenseRepo, categoryRepo),
		UpdateExpense:        expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo),
		DeleteExpense:        expense.NewDeleteExpenseUseCase(expenseRepo),
		SuggestCategory:      expense.NewSuggestCategoryUseCase(categoryRepo, suggester),
		GetIncome:            income.NewGetIncomeUseCase(incomeRepo),
		SetIncome:            income.NewSetIncomeUseCase(incomeRepo),
		GetSummary:           dashboard.NewGetSummaryUseCase(recordFetcher),
		GetCategoryBreakdown: dashboard.NewGetCategoryBreakdownUseCase(recordFetcher),
		GetDailyTrend:        dashboard.NewGetDailyTrendUseCase(recordFetcher),
		GetOverview:          dashboard.NewGetOverviewUseCase(recordFetcher),
		SendMonthlySummary:   report.NewSendMonthlySummaryUseCase(recordFetcher, emailService, cfg.Report.RecipientEmail),
		ExportMonthly:        report.NewExportMonthlyUseCase(recordFetcher, export.NewXLSXRenderer()),
	}

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, Version)

	categoryController := controller.NewCategoryController(
		uc.ListCategories,
		uc.CreateCategory,
		uc.UpdateCategory,
		uc.DeleteCategory,
	)

	expenseController := controller.NewExpenseController(
		uc.ListExpenses,
		uc.GetExpense,
		uc.CreateExpense,
		uc.UpdateExpense,
		uc.DeleteExpense,
		uc.SuggestCategory,
	)

	incomeController := controller.NewIncomeController(uc.GetIncome, uc.SetIncome)

	dashboardController := controller.NewDashboardController(
		uc.GetSummary,
		uc.GetCategoryBreakdown,
		uc.GetDailyTrend,
		uc.GetOverview,
	)

	reportController := controller.NewReportController(uc.SendMonthlySummary, uc.ExportMonthly)

	// Create middleware
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiterWithConfig(redisClient, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	}

	// Create router
	r := router.NewRouter(
		healthController,
		categoryController,
		expenseController,
		incomeController,
		dashboardController,
		reportController,
		rateLimiter,
	)

	worker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval:    cfg.Email.PollInterval,
		BatchSize:       cfg.Email.BatchSize,
		RetentionDays:   cfg.Email.RetentionDays,
		CleanupInterval: email.DefaultWorkerConfig().CleanupInterval,
	})

	return &Injector{
		Config:       cfg,
		DB:           db,
		Router:       r,
		UseCases:     uc,
		EmailWorker:  worker,
		CategoryRepo: categoryRepo,
	}, nil
}
