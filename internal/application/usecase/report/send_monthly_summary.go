// Package report builds the outgoing monthly reports: the summary e-mail and the spreadsheet export.
package report

import (
	"context"
	"regexp"
	"strings"

	"github.com/finance-tracker/expense-tracker/internal/application/adapter"
	"github.com/finance-tracker/expense-tracker/internal/application/usecase/dashboard"
	domainerror "github.com/finance-tracker/expense-tracker/internal/domain/error"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// SendMonthlySummaryInput represents the input for e-mailing a month's summary.
type SendMonthlySummaryInput struct {
	Month int
	Year  int
	Email string // Falls back to the configured recipient when empty
	Name  string
}

// SendMonthlySummaryOutput represents the output of queueing the summary e-mail.
type SendMonthlySummaryOutput struct {
	Recipient   string
	PeriodLabel string
}

// SendMonthlySummaryUseCase computes a month's overview and queues it as an e-mail.
type SendMonthlySummaryUseCase struct {
	overview         *dashboard.GetOverviewUseCase
	emailService     adapter.EmailService
	defaultRecipient string
}

// NewSendMonthlySummaryUseCase creates a new SendMonthlySummaryUseCase instance.
func NewSendMonthlySummaryUseCase(
	fetcher dashboard.RecordFetcher,
	emailService adapter.EmailService,
	defaultRecipient string,
) *SendMonthlySummaryUseCase {
	return &SendMonthlySummaryUseCase{
		overview:         dashboard.NewGetOverviewUseCase(fetcher),
		emailService:     emailService,
		defaultRecipient: defaultRecipient,
	}
}

// Execute queues the summary e-mail for the given month.
func (uc *SendMonthlySummaryUseCase) Execute(ctx context.Context, input SendMonthlySummaryInput) (*SendMonthlySummaryOutput, error) {
	recipient := strings.TrimSpace(input.Email)
	if recipient == "" {
		recipient = uc.defaultRecipient
	}
	if recipient == "" {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeRecipientRequired,
			"no recipient given and REPORT_RECIPIENT_EMAIL is not set",
			domainerror.ErrRecipientRequired,
		)
	}
	if !emailRegex.MatchString(recipient) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidRecipient,
			"recipient email is invalid",
			domainerror.ErrInvalidRecipient,
		)
	}

	overview, err := uc.overview.Execute(ctx, dashboard.PeriodInput{Month: input.Month, Year: input.Year})
	if err != nil {
		return nil, err
	}

	summary := overview.Summary
	lines := make([]adapter.SummaryCategoryLine, 0, len(overview.Categories))
	for _, c := range overview.Categories {
		lines = append(lines, adapter.SummaryCategoryLine{
			Name:       c.Name,
			Color:      c.Color,
			Total:      c.Total.StringFixed(2),
			Percentage: c.Percentage.StringFixed(2),
		})
	}

	label := overview.Period.Label()
	err = uc.emailService.QueueMonthlySummaryEmail(ctx, adapter.QueueMonthlySummaryInput{
		RecipientEmail: recipient,
		RecipientName:  strings.TrimSpace(input.Name),
		PeriodLabel:    label,
		TotalIncome:    summary.TotalIncome.StringFixed(2),
		TotalExpenses:  summary.TotalExpenses.StringFixed(2),
		Balance:        summary.Balance.StringFixed(2),
		HasIncome:      summary.HasIncome,
		ExpenseCount:   summary.ExpenseCount,
		Categories:     lines,
	})
	if err != nil {
		return nil, err
	}

	return &SendMonthlySummaryOutput{
		Recipient:   recipient,
		PeriodLabel: label,
	}, nil
}
