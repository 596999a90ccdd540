// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// CategorySuggestionRequest asks for the best existing category for an expense description.
type CategorySuggestionRequest struct {
	Description string
	Amount      string
	Categories  []*CategoryForAI
}

// CategoryForAI represents category data for AI processing.
type CategoryForAI struct {
	ID   uuid.UUID
	Name string
	Icon string
}

// CategorySuggestion represents the AI's pick among the existing categories.
type CategorySuggestion struct {
	CategoryID uuid.UUID
	Confidence float64
	Reasoning  string
}

// CategorySuggestionService defines the interface for AI category suggestion.
type CategorySuggestionService interface {
	// Suggest picks the existing category that best fits the description.
	Suggest(ctx context.Context, request *CategorySuggestionRequest) (*CategorySuggestion, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}
