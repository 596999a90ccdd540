// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/finance-tracker/expense-tracker/internal/application/adapter"
	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
	domainerror "github.com/finance-tracker/expense-tracker/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueMonthlySummaryEmail queues the monthly summary report.
func (s *Service) QueueMonthlySummaryEmail(ctx context.Context, input adapter.QueueMonthlySummaryInput) error {
	subject := fmt.Sprintf("Your %s spending summary - Expense Tracker", input.PeriodLabel)

	// Stored as JSON, so categories go in as plain maps
	categories := make([]map[string]interface{}, 0, len(input.Categories))
	for _, c := range input.Categories {
		categories = append(categories, map[string]interface{}{
			"name":       c.Name,
			"color":      c.Color,
			"total":      c.Total,
			"percentage": c.Percentage,
		})
	}

	templateData := map[string]interface{}{
		"recipient_name": input.RecipientName,
		"period_label":   input.PeriodLabel,
		"total_income":   input.TotalIncome,
		"total_expenses": input.TotalExpenses,
		"balance":        input.Balance,
		"has_income":     input.HasIncome,
		"expense_count":  input.ExpenseCount,
		"categories":     categories,
		"dashboard_url":  s.appBaseURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateMonthlySummary,
		input.RecipientEmail,
		input.RecipientName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue monthly summary email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
