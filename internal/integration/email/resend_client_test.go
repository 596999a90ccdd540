package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/expense-tracker/internal/application/adapter"
)

func TestNewSender_WithoutKeyLogs(t *testing.T) {
	sender, err := NewSender(SenderConfig{})
	require.NoError(t, err)
	assert.IsType(t, &LogSender{}, sender)
}

func TestNewSender_InvalidBaseURL(t *testing.T) {
	_, err := NewSender(SenderConfig{APIKey: "re_test", BaseURL: "http://%zz"})
	assert.ErrorContains(t, err, "invalid resend base url")
}

func TestResendClient_Send(t *testing.T) {
	var got map[string]any
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email-123"}`))
	}))
	defer srv.Close()

	sender, err := NewSender(SenderConfig{
		APIKey:    "re_test",
		BaseURL:   srv.URL,
		FromName:  "Expense Tracker",
		FromEmail: "reports@example.com",
		ReplyTo:   "me@example.com",
	})
	require.NoError(t, err)

	result, err := sender.Send(context.Background(), adapter.SendEmailInput{
		To:      "owner@example.com",
		Subject: "Your March summary",
		HTML:    "<p>hi</p>",
		Text:    "hi",
		Tag:     "monthly_summary",
	})
	require.NoError(t, err)

	assert.Equal(t, "email-123", result.ResendID)
	assert.Equal(t, "Bearer re_test", auth)
	assert.Equal(t, "Expense Tracker <reports@example.com>", got["from"])
	assert.Equal(t, []any{"owner@example.com"}, got["to"])
	assert.Equal(t, "Your March summary", got["subject"])
}
