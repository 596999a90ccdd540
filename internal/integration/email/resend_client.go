// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/resend/resend-go/v2"

	"github.com/finance-tracker/expense-tracker/internal/application/adapter"
	domainerror "github.com/finance-tracker/expense-tracker/internal/domain/error"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
	replyTo   string
}

// SenderConfig configures the outbound e-mail sender.
type SenderConfig struct {
	APIKey    string
	BaseURL   string // Optional Resend API endpoint override
	FromName  string
	FromEmail string
	ReplyTo   string
}

// NewResendClient creates a new Resend client.
func NewResendClient(cfg SenderConfig) (*ResendClient, error) {
	client := resend.NewClient(cfg.APIKey)
	if cfg.BaseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid resend base url: %w", err)
		}
		client.BaseURL = base
	}

	return &ResendClient{
		client:    client,
		fromName:  cfg.FromName,
		fromEmail: cfg.FromEmail,
		replyTo:   cfg.ReplyTo,
	}, nil
}

// NewSender returns a Resend-backed sender, or a LogSender when no API key is configured.
func NewSender(cfg SenderConfig) (adapter.EmailSender, error) {
	if cfg.APIKey == "" {
		slog.Warn("RESEND_API_KEY not set, emails will be logged instead of sent")
		return NewLogSender(), nil
	}
	return NewResendClient(cfg)
}

// Send sends an email via Resend.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
		ReplyTo: c.replyTo,
	}
	if input.Tag != "" {
		params.Tags = []resend.Tag{{Name: "template", Value: input.Tag}}
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		if isPermanentError(err) {
			return nil, domainerror.NewEmailError(
				domainerror.ErrCodePermanentEmailFailure,
				"permanent email failure",
				err,
			)
		}
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeTemporaryEmailFailure,
			"temporary email failure",
			err,
		)
	}

	return &adapter.SendEmailResult{
		ResendID: resp.Id,
	}, nil
}

// permanentPatterns mark provider errors that will fail the same way on retry:
// 401, 403 and 422 responses. 429 and 5xx are retried.
var permanentPatterns = []string{
	"401",
	"403",
	"422",
	"unauthorized",
	"forbidden",
	"validation",
	"invalid",
	"bad request",
}

// isPermanentError checks if the error is a permanent error that should not be retried.
func isPermanentError(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range permanentPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// LogSender writes emails to the structured log instead of delivering them.
// It also records them, which makes it the sender of choice in tests.
type LogSender struct {
	mu          sync.Mutex
	sent        []adapter.SendEmailInput
	failWith    error
	failForever bool
}

// NewLogSender creates a new LogSender.
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send implements the adapter.EmailSender interface.
func (s *LogSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		code := domainerror.ErrCodeTemporaryEmailFailure
		if s.failForever {
			code = domainerror.ErrCodePermanentEmailFailure
		}
		return nil, domainerror.NewEmailError(code, "log sender failure", s.failWith)
	}

	s.sent = append(s.sent, input)
	slog.Info("Email not delivered (log sender)",
		"to", input.To,
		"subject", input.Subject,
		"tag", input.Tag,
	)

	return &adapter.SendEmailResult{
		ResendID: fmt.Sprintf("log-%d", len(s.sent)),
	}, nil
}

// Sent returns a copy of the emails recorded so far.
func (s *LogSender) Sent() []adapter.SendEmailInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]adapter.SendEmailInput, len(s.sent))
	copy(out, s.sent)
	return out
}

// FailWith makes subsequent sends fail. Pass nil to clear.
func (s *LogSender) FailWith(err error, permanent bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
	s.failForever = permanent
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.EmailSender = (*ResendClient)(nil)
	_ adapter.EmailSender = (*LogSender)(nil)
)
