// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/finance-tracker/expense-tracker/internal/application/adapter"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash-lite"

var errEmptyResponse = errors.New("empty response from gemini")

// GeminiService implements the CategorySuggestionService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest asks Gemini which existing category fits the description best.
func (s *GeminiService) Suggest(ctx context.Context, request *adapter.CategorySuggestionRequest) (*adapter.CategorySuggestion, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}
	if len(request.Categories) == 0 {
		return nil, fmt.Errorf("no categories to choose from")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildSuggestionPrompt(request)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	suggestion, err := parseSuggestion(text, request)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return suggestion, nil
}

// buildSuggestionPrompt lists the categories and the expense for a single-choice answer.
func buildSuggestionPrompt(request *adapter.CategorySuggestionRequest) string {
	var sb strings.Builder

	sb.WriteString(`You categorize personal expenses. Pick exactly one of the existing categories below for the expense.
Never invent a category. If nothing fits well, pick the closest one and lower the confidence.

CATEGORIES:
`)
	for _, cat := range request.Categories {
		fmt.Fprintf(&sb, "- ID: %s, Name: %s, Icon: %s\n", cat.ID, cat.Name, cat.Icon)
	}

	sb.WriteString("\nEXPENSE:\n")
	fmt.Fprintf(&sb, "- Description: %q\n", request.Description)
	if request.Amount != "" {
		fmt.Fprintf(&sb, "- Amount: %s\n", request.Amount)
	}

	sb.WriteString(`
Respond with a single JSON object and nothing else:
{
  "category_id": "uuid of the chosen category",
  "confidence": 0.0-1.0,
  "reasoning": "one short sentence"
}
`)

	return sb.String()
}

// responseText returns the first text part of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errEmptyResponse
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok && strings.TrimSpace(string(text)) != "" {
			return string(text), nil
		}
	}
	return "", errEmptyResponse
}

// geminiSuggestion represents the raw response from Gemini.
type geminiSuggestion struct {
	CategoryID string  `json:"category_id"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// parseSuggestion decodes the model's answer and checks the ID against the offered categories.
func parseSuggestion(text string, request *adapter.CategorySuggestionRequest) (*adapter.CategorySuggestion, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var raw geminiSuggestion
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	id, err := uuid.Parse(strings.TrimSpace(raw.CategoryID))
	if err != nil {
		return nil, fmt.Errorf("invalid category_id %q: %w", raw.CategoryID, err)
	}

	offered := false
	for _, cat := range request.Categories {
		if cat.ID == id {
			offered = true
			break
		}
	}
	if !offered {
		return nil, fmt.Errorf("category_id %s was not offered", id)
	}

	confidence := raw.Confidence
	if confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}

	return &adapter.CategorySuggestion{
		CategoryID: id,
		Confidence: confidence,
		Reasoning:  raw.Reasoning,
	}, nil
}

// Ensure GeminiService implements adapter.CategorySuggestionService.
var _ adapter.CategorySuggestionService = (*GeminiService)(nil)
