// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/expense-tracker/internal/application/adapter"
	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
	domainerror "github.com/finance-tracker/expense-tracker/internal/domain/error"
)

// SuggestCategoryInput represents the input for a category suggestion.
type SuggestCategoryInput struct {
	Description string
	Amount      *decimal.Decimal // Optional hint
}

// SuggestCategoryOutput represents the suggested category.
type SuggestCategoryOutput struct {
	Category   *entity.Category
	Confidence float64
	Reasoning  string
}

// SuggestCategoryUseCase asks the AI service which existing category fits a description.
type SuggestCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	aiService    adapter.CategorySuggestionService
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	aiService adapter.CategorySuggestionService,
) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		categoryRepo: categoryRepo,
		aiService:    aiService,
	}
}

// Execute performs the suggestion.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeDescriptionRequired,
			"description is required",
			domainerror.ErrDescriptionRequired,
		)
	}

	if uc.aiService == nil || !uc.aiService.IsAvailable() {
		return nil, unavailableError(nil)
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entity.Category, len(categories))
	request := &adapter.CategorySuggestionRequest{
		Description: description,
		Categories:  make([]*adapter.CategoryForAI, 0, len(categories)),
	}
	if input.Amount != nil {
		request.Amount = input.Amount.StringFixed(2)
	}
	for _, c := range categories {
		byID[c.ID.String()] = c
		forAI := &adapter.CategoryForAI{ID: c.ID, Name: c.Name}
		if c.Icon != nil {
			forAI.Icon = *c.Icon
		}
		request.Categories = append(request.Categories, forAI)
	}

	suggestion, err := uc.aiService.Suggest(ctx, request)
	if err != nil {
		return nil, unavailableError(err)
	}

	// The model may answer with an ID that is not in the list
	category, ok := byID[suggestion.CategoryID.String()]
	if !ok {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseCategoryNotFound,
			"suggested category does not exist",
			domainerror.ErrExpenseCategoryNotFound,
		)
	}

	return &SuggestCategoryOutput{
		Category:   category,
		Confidence: suggestion.Confidence,
		Reasoning:  suggestion.Reasoning,
	}, nil
}

func unavailableError(err error) error {
	if err == nil {
		err = domainerror.ErrSuggestionUnavailable
	}
	return domainerror.NewExpenseError(
		domainerror.ErrCodeSuggestionUnavailable,
		"category suggestion service unavailable",
		err,
	)
}
