package adapters

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/expense-tracker/internal/application/adapter"
)

func suggestionRequest() (*adapter.CategorySuggestionRequest, uuid.UUID) {
	food := uuid.New()
	return &adapter.CategorySuggestionRequest{
		Description: "Lunch at the diner",
		Amount:      "12.50",
		Categories: []*adapter.CategoryForAI{
			{ID: food, Name: "Food & Dining", Icon: "🍔"},
			{ID: uuid.New(), Name: "Transportation", Icon: "🚗"},
		},
	}, food
}

func TestParseSuggestion(t *testing.T) {
	req, food := suggestionRequest()

	tests := []struct {
		name       string
		text       string
		wantErr    bool
		confidence float64
	}{
		{name: "plain JSON", text: `{"category_id":"` + food.String() + `","confidence":0.9,"reasoning":"meal"}`, confidence: 0.9},
		{name: "fenced JSON", text: "```json\n{\"category_id\":\"" + food.String() + "\",\"confidence\":0.5}\n```", confidence: 0.5},
		{name: "confidence clamped", text: `{"category_id":"` + food.String() + `","confidence":7}`, confidence: 1},
		{name: "unknown category", text: `{"category_id":"` + uuid.NewString() + `","confidence":0.9}`, wantErr: true},
		{name: "not a uuid", text: `{"category_id":"food","confidence":0.9}`, wantErr: true},
		{name: "not JSON", text: `Food & Dining`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSuggestion(tt.text, req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, food, got.CategoryID)
			assert.Equal(t, tt.confidence, got.Confidence)
		})
	}
}

func TestBuildSuggestionPrompt(t *testing.T) {
	req, food := suggestionRequest()

	prompt := buildSuggestionPrompt(req)

	assert.Contains(t, prompt, food.String())
	assert.Contains(t, prompt, "Food & Dining")
	assert.Contains(t, prompt, `"Lunch at the diner"`)
	assert.Contains(t, prompt, "Amount: 12.50")
}

func TestResponseText(t *testing.T) {
	_, err := responseText(nil)
	assert.ErrorIs(t, err, errEmptyResponse)

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("  "), genai.Text(`{"a":1}`)}}},
		},
	}
	text, err := responseText(resp)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, text)
}

func TestGeminiService_Unconfigured(t *testing.T) {
	svc := NewGeminiService("", "")
	req, _ := suggestionRequest()

	assert.False(t, svc.IsAvailable())
	_, err := svc.Suggest(context.Background(), req)
	assert.Error(t, err)
}
