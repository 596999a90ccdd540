// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus is the delivery state of a queued e-mail.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// EmailTemplateType names the template a queued e-mail is rendered with.
type EmailTemplateType string

// TemplateMonthlySummary renders a month's income, spending and category breakdown.
const TemplateMonthlySummary EmailTemplateType = "monthly_summary"

// DefaultEmailAttempts is how many sends a job gets before it is marked failed.
const DefaultEmailAttempts = 3

// emailRetryDelays is indexed by the number of attempts already made.
var emailRetryDelays = []time.Duration{0, time.Minute, 5 * time.Minute}

// EmailJob is a report e-mail waiting in the outbound queue.
// TemplateData holds plain JSON values so it survives the round trip through the queue table.
type EmailJob struct {
	ID             uuid.UUID
	TemplateType   EmailTemplateType
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]interface{}
	Status         EmailStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ResendID       string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewEmailJob queues a job for immediate delivery.
func NewEmailJob(templateType EmailTemplateType, recipientEmail, recipientName, subject string, data map[string]interface{}) *EmailJob {
	now := time.Now().UTC()
	return &EmailJob{
		ID:             uuid.New(),
		TemplateType:   templateType,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         EmailStatusPending,
		MaxAttempts:    DefaultEmailAttempts,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing claims the job for the current worker batch.
func (e *EmailJob) MarkProcessing() {
	e.Status = EmailStatusProcessing
}

// MarkSent records a successful delivery and the provider's message id.
func (e *EmailJob) MarkSent(resendID string) {
	now := time.Now().UTC()
	e.Status = EmailStatusSent
	e.ResendID = resendID
	e.ProcessedAt = &now
}

// MarkFailed counts a failed attempt. The job goes back to pending with a
// backoff unless the failure is permanent or the attempts are used up.
func (e *EmailJob) MarkFailed(err error, permanent bool) {
	now := time.Now().UTC()
	e.Attempts++
	e.LastError = err.Error()

	if permanent || e.Attempts >= e.MaxAttempts {
		e.Status = EmailStatusFailed
		e.ProcessedAt = &now
		return
	}

	e.Status = EmailStatusPending
	e.ScheduledAt = now.Add(retryDelay(e.Attempts))
}

func retryDelay(attempts int) time.Duration {
	if attempts < len(emailRetryDelays) {
		return emailRetryDelays[attempts]
	}
	return emailRetryDelays[len(emailRetryDelays)-1]
}
