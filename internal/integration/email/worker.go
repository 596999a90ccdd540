// Package email provides email sending functionality.
package email

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/finance-tracker/expense-tracker/internal/application/adapter"
	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
	domainerror "github.com/finance-tracker/expense-tracker/internal/domain/error"
	"github.com/finance-tracker/expense-tracker/internal/integration/email/templates"
)

// Worker processes the email queue and sends emails.
type Worker struct {
	queue        adapter.EmailQueueRepository
	sender       adapter.EmailSender
	renderer     *templates.Renderer
	pollInterval time.Duration
	batchSize    int

	retentionDays   int
	cleanupInterval time.Duration
}

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval    time.Duration
	BatchSize       int
	RetentionDays   int // Sent jobs older than this are deleted; 0 disables cleanup
	CleanupInterval time.Duration
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval:    5 * time.Second,
		BatchSize:       10,
		RetentionDays:   30,
		CleanupInterval: time.Hour,
	}
}

// NewWorker creates a new email worker.
func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	return &Worker{
		queue:           queue,
		sender:          sender,
		renderer:        renderer,
		pollInterval:    config.PollInterval,
		batchSize:       config.BatchSize,
		retentionDays:   config.RetentionDays,
		cleanupInterval: config.CleanupInterval,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Email worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	cleanupInterval := w.cleanupInterval
	if cleanupInterval <= 0 {
		cleanupInterval = time.Hour
	}
	cleanupTicker := time.NewTicker(cleanupInterval)
	defer cleanupTicker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Email worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		case <-cleanupTicker.C:
			w.cleanup(ctx)
		}
	}
}

// processBatch fetches and processes a batch of pending emails.
func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending email jobs", "error", err)
		return
	}

	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing email batch", "count", len(jobs))

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			w.processJob(ctx, job)
		}
	}
}

// processJob processes a single email job.
func (w *Worker) processJob(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With(
		"job_id", job.ID,
		"template", job.TemplateType,
		"recipient", job.RecipientEmail,
	)

	// Mark as processing
	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	// Render template
	html, text, err := w.renderTemplate(job)
	if err != nil {
		logger.Error("Failed to render email template", "error", err)
		w.handleFailure(ctx, job, err, true) // Template errors are permanent
		return
	}

	// Send email
	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
		Tag:     string(job.TemplateType),
	})

	if err != nil {
		logger.Error("Failed to send email", "error", err)

		w.handleFailure(ctx, job, err, domainerror.IsPermanentEmailFailure(err))
		return
	}

	// Mark as sent
	job.MarkSent(result.ResendID)
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Email sent successfully", "resend_id", result.ResendID)
}

// renderTemplate renders the appropriate template for the job.
func (w *Worker) renderTemplate(job *entity.EmailJob) (html string, text string, err error) {
	templateName := string(job.TemplateType)

	// Convert template data to the appropriate struct
	var data interface{}
	switch job.TemplateType {
	case entity.TemplateMonthlySummary:
		balance := getString(job.TemplateData, "balance")
		data = templates.MonthlySummaryData{
			RecipientName: getString(job.TemplateData, "recipient_name"),
			PeriodLabel:   getString(job.TemplateData, "period_label"),
			TotalIncome:   getString(job.TemplateData, "total_income"),
			TotalExpenses: getString(job.TemplateData, "total_expenses"),
			Balance:       balance,
			HasIncome:     getBool(job.TemplateData, "has_income"),
			Negative:      strings.HasPrefix(balance, "-"),
			ExpenseCount:  getInt(job.TemplateData, "expense_count"),
			Categories:    getCategoryLines(job.TemplateData, "categories"),
			DashboardURL:  getString(job.TemplateData, "dashboard_url"),
		}
	default:
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeInvalidTemplate,
			"unknown template type",
			domainerror.ErrInvalidTemplate,
		)
	}

	return w.renderer.Render(templateName, data)
}

// handleFailure handles a failed email job.
func (w *Worker) handleFailure(ctx context.Context, job *entity.EmailJob, err error, permanent bool) {
	job.MarkFailed(err, permanent)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.EmailStatusFailed {
		slog.Warn("Email job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
	} else {
		slog.Info("Email job scheduled for retry",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"scheduled_at", job.ScheduledAt,
		)
	}
}

// getString safely extracts a string from a map.
func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// getBool safely extracts a bool from a map.
func getBool(data map[string]interface{}, key string) bool {
	if v, ok := data[key].(bool); ok {
		return v
	}
	return false
}

// getInt extracts an integer, accepting the float64 that JSON decoding produces.
func getInt(data map[string]interface{}, key string) int {
	switch v := data[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// getCategoryLines extracts the category rows, either freshly built or decoded from JSON.
func getCategoryLines(data map[string]interface{}, key string) []templates.CategoryLine {
	var rows []map[string]interface{}
	switch v := data[key].(type) {
	case []map[string]interface{}:
		rows = v
	case []interface{}:
		for _, item := range v {
			if m, ok := item.(map[string]interface{}); ok {
				rows = append(rows, m)
			}
		}
	}

	lines := make([]templates.CategoryLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, templates.CategoryLine{
			Name:       getString(row, "name"),
			Color:      getString(row, "color"),
			Total:      getString(row, "total"),
			Percentage: getString(row, "percentage"),
		})
	}
	return lines
}

// cleanup drops sent jobs past the retention window.
func (w *Worker) cleanup(ctx context.Context) {
	if w.retentionDays <= 0 {
		return
	}
	removed, err := w.queue.DeleteOldSentJobs(ctx, w.retentionDays)
	if err != nil {
		slog.Error("Failed to delete old email jobs", "error", err)
		return
	}
	if removed > 0 {
		slog.Info("Deleted old email jobs", "count", removed, "retention_days", w.retentionDays)
	}
}

// ProcessNow processes all pending emails immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
