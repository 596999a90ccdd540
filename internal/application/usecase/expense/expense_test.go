package expense

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/expense-tracker/internal/application/adapter"
	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
	domainerror "github.com/finance-tracker/expense-tracker/internal/domain/error"
)

type memoryCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func (r *memoryCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}
func (r *memoryCategoryRepo) CreateBatch(context.Context, []*entity.Category) error { return nil }
func (r *memoryCategoryRepo) Count(context.Context) (int64, error) {
	return int64(len(r.categories)), nil
}
func (r *memoryCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, domainerror.ErrCategoryNotFound
}
func (r *memoryCategoryRepo) FindAll(context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}
func (r *memoryCategoryRepo) ExistsByName(context.Context, string) (bool, error) { return false, nil }
func (r *memoryCategoryRepo) Update(context.Context, *entity.Category) error     { return nil }
func (r *memoryCategoryRepo) DeleteWithExpenses(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

type memoryExpenseRepo struct {
	expenses map[uuid.UUID]*entity.Expense
}

func (r *memoryExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	r.expenses[e.ID] = e
	return nil
}
func (r *memoryExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ExpenseWithCategory, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, domainerror.ErrExpenseNotFound
	}
	cp := *e
	return &entity.ExpenseWithCategory{Expense: &cp}, nil
}
func (r *memoryExpenseRepo) FindByDateRange(_ context.Context, start, end time.Time) ([]*entity.ExpenseWithCategory, error) {
	out := make([]*entity.ExpenseWithCategory, 0)
	for _, e := range r.expenses {
		if !e.Date.Before(start) && e.Date.Before(end) {
			out = append(out, &entity.ExpenseWithCategory{Expense: e})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Expense.Date.After(out[j].Expense.Date) })
	return out, nil
}
func (r *memoryExpenseRepo) Update(_ context.Context, e *entity.Expense) error {
	r.expenses[e.ID] = e
	return nil
}
func (r *memoryExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.expenses, id)
	return nil
}

func setup() (*memoryExpenseRepo, *memoryCategoryRepo, *entity.Category) {
	food := entity.NewCategory("Food", "#F59E0B", nil, false)
	cats := &memoryCategoryRepo{categories: map[uuid.UUID]*entity.Category{food.ID: food}}
	return &memoryExpenseRepo{expenses: make(map[uuid.UUID]*entity.Expense)}, cats, food
}

func expenseCode(t *testing.T, err error) domainerror.ExpenseErrorCode {
	t.Helper()
	var expErr *domainerror.ExpenseError
	require.True(t, errors.As(err, &expErr), "expected ExpenseError, got %v", err)
	return expErr.Code
}

func TestCreateExpense(t *testing.T) {
	date := time.Date(2024, 3, 2, 15, 30, 0, 0, time.UTC)
	blank := "   "
	note := " lunch "

	tests := []struct {
		name       string
		input      func(food uuid.UUID) CreateExpenseInput
		expectCode domainerror.ExpenseErrorCode
		expectDesc *string
	}{
		{
			name: "valid with description",
			input: func(food uuid.UUID) CreateExpenseInput {
				return CreateExpenseInput{Amount: decimal.RequireFromString("12.34"), CategoryID: food, Date: date, Description: &note}
			},
			expectDesc: strPtr("lunch"),
		},
		{
			name: "blank description dropped",
			input: func(food uuid.UUID) CreateExpenseInput {
				return CreateExpenseInput{Amount: decimal.Zero, CategoryID: food, Date: date, Description: &blank}
			},
		},
		{
			name: "negative amount",
			input: func(food uuid.UUID) CreateExpenseInput {
				return CreateExpenseInput{Amount: decimal.NewFromInt(-1), CategoryID: food, Date: date}
			},
			expectCode: domainerror.ErrCodeInvalidAmount,
		},
		{
			name: "missing date",
			input: func(food uuid.UUID) CreateExpenseInput {
				return CreateExpenseInput{Amount: decimal.NewFromInt(1), CategoryID: food}
			},
			expectCode: domainerror.ErrCodeInvalidExpenseDate,
		},
		{
			name: "missing category",
			input: func(uuid.UUID) CreateExpenseInput {
				return CreateExpenseInput{Amount: decimal.NewFromInt(1), Date: date}
			},
			expectCode: domainerror.ErrCodeExpenseCategoryRequired,
		},
		{
			name: "unknown category",
			input: func(uuid.UUID) CreateExpenseInput {
				return CreateExpenseInput{Amount: decimal.NewFromInt(1), CategoryID: uuid.New(), Date: date}
			},
			expectCode: domainerror.ErrCodeExpenseCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expenses, cats, food := setup()
			out, err := NewCreateExpenseUseCase(expenses, cats).Execute(context.Background(), tt.input(food.ID))
			if tt.expectCode != "" {
				assert.Equal(t, tt.expectCode, expenseCode(t, err))
				assert.Empty(t, expenses.expenses)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, food, out.Expense.Category)
			assert.True(t, out.Expense.Expense.Date.Equal(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)))
			assert.Equal(t, tt.expectDesc, out.Expense.Expense.Description)
			assert.Len(t, expenses.expenses, 1)
		})
	}
}

func strPtr(s string) *string { return &s }

func TestUpdateExpense(t *testing.T) {
	ctx := context.Background()
	expenses, cats, food := setup()
	existing := entity.NewExpense(decimal.NewFromInt(10), food.ID, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), nil)
	_ = expenses.Create(ctx, existing)
	uc := NewUpdateExpenseUseCase(expenses, cats)

	t.Run("full update", func(t *testing.T) {
		desc := "dinner"
		out, err := uc.Execute(ctx, UpdateExpenseInput{
			ExpenseID:   existing.ID,
			Amount:      decimal.RequireFromString("42.50"),
			CategoryID:  food.ID,
			Date:        time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
			Description: &desc,
		})
		require.NoError(t, err)
		assert.True(t, out.Expense.Expense.Amount.Equal(decimal.RequireFromString("42.5")))
		assert.Equal(t, 9, expenses.expenses[existing.ID].Date.Day())
	})

	t.Run("not found", func(t *testing.T) {
		_, err := uc.Execute(ctx, UpdateExpenseInput{ExpenseID: uuid.New()})
		assert.Equal(t, domainerror.ErrCodeExpenseNotFound, expenseCode(t, err))
	})
}

func TestDeleteExpense(t *testing.T) {
	ctx := context.Background()
	expenses, _, food := setup()
	existing := entity.NewExpense(decimal.NewFromInt(10), food.ID, time.Now(), nil)
	_ = expenses.Create(ctx, existing)
	uc := NewDeleteExpenseUseCase(expenses)

	require.NoError(t, uc.Execute(ctx, DeleteExpenseInput{ExpenseID: existing.ID}))
	assert.Empty(t, expenses.expenses)

	err := uc.Execute(ctx, DeleteExpenseInput{ExpenseID: existing.ID})
	assert.Equal(t, domainerror.ErrCodeExpenseNotFound, expenseCode(t, err))
}

func TestListExpenses(t *testing.T) {
	ctx := context.Background()
	expenses, _, food := setup()
	for _, d := range []time.Time{
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	} {
		_ = expenses.Create(ctx, entity.NewExpense(decimal.NewFromInt(1), food.ID, d, nil))
	}

	out, err := NewListExpensesUseCase(expenses).Execute(ctx, ListExpensesInput{Month: 3, Year: 2024})
	require.NoError(t, err)
	require.Len(t, out.Expenses, 2)
	assert.Equal(t, 31, out.Expenses[0].Expense.Date.Day())
	assert.Equal(t, 1, out.Expenses[1].Expense.Date.Day())

	_, err = NewListExpensesUseCase(expenses).Execute(ctx, ListExpensesInput{Month: 0, Year: 2024})
	assert.ErrorIs(t, err, domainerror.ErrInvalidPeriod)
}

func TestParseHelpers(t *testing.T) {
	d, err := ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.March, d.Month())

	_, err = ParseDate("05/03/2024")
	assert.Equal(t, domainerror.ErrCodeInvalidExpenseDate, expenseCode(t, err))

	a, err := ParseAmount(" 10.5 ")
	require.NoError(t, err)
	assert.True(t, a.Equal(decimal.RequireFromString("10.5")))

	_, err = ParseAmount("-3")
	assert.Equal(t, domainerror.ErrCodeInvalidAmount, expenseCode(t, err))

	_, err = ParseAmount("ten")
	assert.Equal(t, domainerror.ErrCodeInvalidAmount, expenseCode(t, err))
}

type stubSuggester struct {
	available bool
	answer    *adapter.CategorySuggestion
	err       error
	got       *adapter.CategorySuggestionRequest
}

func (s *stubSuggester) IsAvailable() bool { return s.available }
func (s *stubSuggester) Suggest(_ context.Context, r *adapter.CategorySuggestionRequest) (*adapter.CategorySuggestion, error) {
	s.got = r
	return s.answer, s.err
}

func TestSuggestCategory(t *testing.T) {
	ctx := context.Background()
	_, cats, food := setup()

	t.Run("returns matched category", func(t *testing.T) {
		ai := &stubSuggester{available: true, answer: &adapter.CategorySuggestion{CategoryID: food.ID, Confidence: 0.9}}
		amount := decimal.RequireFromString("8")
		out, err := NewSuggestCategoryUseCase(cats, ai).Execute(ctx, SuggestCategoryInput{Description: "burger", Amount: &amount})
		require.NoError(t, err)
		assert.Equal(t, food.ID, out.Category.ID)
		assert.Equal(t, "8.00", ai.got.Amount)
		assert.Len(t, ai.got.Categories, 1)
	})

	t.Run("unavailable service", func(t *testing.T) {
		_, err := NewSuggestCategoryUseCase(cats, &stubSuggester{}).Execute(ctx, SuggestCategoryInput{Description: "burger"})
		assert.Equal(t, domainerror.ErrCodeSuggestionUnavailable, expenseCode(t, err))
	})

	t.Run("nil service", func(t *testing.T) {
		_, err := NewSuggestCategoryUseCase(cats, nil).Execute(ctx, SuggestCategoryInput{Description: "burger"})
		assert.Equal(t, domainerror.ErrCodeSuggestionUnavailable, expenseCode(t, err))
	})

	t.Run("unknown suggested id", func(t *testing.T) {
		ai := &stubSuggester{available: true, answer: &adapter.CategorySuggestion{CategoryID: uuid.New()}}
		_, err := NewSuggestCategoryUseCase(cats, ai).Execute(ctx, SuggestCategoryInput{Description: "burger"})
		assert.Equal(t, domainerror.ErrCodeExpenseCategoryNotFound, expenseCode(t, err))
	})

	t.Run("empty description", func(t *testing.T) {
		_, err := NewSuggestCategoryUseCase(cats, &stubSuggester{available: true}).Execute(ctx, SuggestCategoryInput{Description: " "})
		assert.Equal(t, domainerror.ErrCodeDescriptionRequired, expenseCode(t, err))
	})
}
