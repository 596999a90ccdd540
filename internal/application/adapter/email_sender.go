// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
	Tag     string // Optional provider-side label, e.g. the template type
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueMonthlySummaryEmail queues the monthly summary report.
	QueueMonthlySummaryEmail(ctx context.Context, input QueueMonthlySummaryInput) error
}

// SummaryCategoryLine is one category row of the monthly summary email.
type SummaryCategoryLine struct {
	Name       string
	Color      string
	Total      string
	Percentage string
}

// QueueMonthlySummaryInput represents the input for queueing a monthly summary email.
type QueueMonthlySummaryInput struct {
	RecipientEmail string
	RecipientName  string
	PeriodLabel    string
	TotalIncome    string
	TotalExpenses  string
	Balance        string
	HasIncome      bool
	ExpenseCount   int
	Categories     []SummaryCategoryLine
}
