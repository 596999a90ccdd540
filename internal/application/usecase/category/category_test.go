package category

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
	domainerror "github.com/finance-tracker/expense-tracker/internal/domain/error"
)

// memoryCategoryRepo is an in-memory CategoryRepository.
type memoryCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
	expenses   map[uuid.UUID]int64 // expense count per category
	failCount  error
}

func newMemoryCategoryRepo() *memoryCategoryRepo {
	return &memoryCategoryRepo{
		categories: make(map[uuid.UUID]*entity.Category),
		expenses:   make(map[uuid.UUID]int64),
	}
}

func (r *memoryCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *memoryCategoryRepo) CreateBatch(ctx context.Context, cs []*entity.Category) error {
	for _, c := range cs {
		_ = r.Create(ctx, c)
	}
	return nil
}

func (r *memoryCategoryRepo) Count(_ context.Context) (int64, error) {
	if r.failCount != nil {
		return 0, r.failCount
	}
	return int64(len(r.categories)), nil
}

func (r *memoryCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memoryCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsCustom != out[j].IsCustom {
			return !out[i].IsCustom
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *memoryCategoryRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *memoryCategoryRepo) DeleteWithExpenses(_ context.Context, id uuid.UUID) (int64, error) {
	n := r.expenses[id]
	delete(r.categories, id)
	delete(r.expenses, id)
	return n, nil
}

func categoryCode(t *testing.T, err error) domainerror.CategoryErrorCode {
	t.Helper()
	var catErr *domainerror.CategoryError
	require.True(t, errors.As(err, &catErr), "expected CategoryError, got %v", err)
	return catErr.Code
}

func TestListCategories_SeedsEmptyStore(t *testing.T) {
	repo := newMemoryCategoryRepo()
	uc := NewListCategoriesUseCase(repo)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, out.Seeded)
	assert.Len(t, out.Categories, len(entity.PredefinedCategories))
	for _, c := range out.Categories {
		assert.False(t, c.IsCustom)
		require.NotNil(t, c.Icon)
	}

	again, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, again.Seeded)
	assert.Len(t, again.Categories, len(entity.PredefinedCategories))
}

func TestListCategories_DoesNotSeedWhenPopulated(t *testing.T) {
	repo := newMemoryCategoryRepo()
	_ = repo.Create(context.Background(), entity.NewCategory("Coffee", "#000000", nil, true))

	out, err := NewListCategoriesUseCase(repo).Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, out.Seeded)
	require.Len(t, out.Categories, 1)
	assert.Equal(t, "Coffee", out.Categories[0].Name)
}

func TestListCategories_CountError(t *testing.T) {
	repo := newMemoryCategoryRepo()
	repo.failCount = errors.New("db down")

	_, err := NewListCategoriesUseCase(repo).Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.failCount)
}

func TestCreateCategory(t *testing.T) {
	falseVal := false
	icon := "☕"
	long := "abcdefghijabcdefghijabcdefghijabcdefghijabcdefghijk"

	tests := []struct {
		name        string
		input       CreateCategoryInput
		expectCode  domainerror.CategoryErrorCode
		expectColor string
		expectCust  bool
	}{
		{name: "defaults color and custom flag", input: CreateCategoryInput{Name: "Coffee"}, expectColor: "#3B82F6", expectCust: true},
		{name: "explicit values", input: CreateCategoryInput{Name: "Tea", Color: "#ABC", Icon: &icon, IsCustom: &falseVal}, expectColor: "#ABC", expectCust: false},
		{name: "blank name", input: CreateCategoryInput{Name: "   "}, expectCode: domainerror.ErrCodeCategoryNameRequired},
		{name: "name too long", input: CreateCategoryInput{Name: long}, expectCode: domainerror.ErrCodeCategoryNameTooLong},
		{name: "bad color", input: CreateCategoryInput{Name: "Gym", Color: "red"}, expectCode: domainerror.ErrCodeInvalidColorFormat},
		{name: "duplicate", input: CreateCategoryInput{Name: "Existing"}, expectCode: domainerror.ErrCodeCategoryNameExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryCategoryRepo()
			_ = repo.Create(context.Background(), entity.NewCategory("Existing", "#111111", nil, true))

			out, err := NewCreateCategoryUseCase(repo).Execute(context.Background(), tt.input)
			if tt.expectCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectCode, categoryCode(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectColor, out.Category.Color)
			assert.Equal(t, tt.expectCust, out.Category.IsCustom)
			_, err = repo.FindByID(context.Background(), out.Category.ID)
			assert.NoError(t, err)
		})
	}
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryCategoryRepo()
	target := entity.NewCategory("Coffee", "#000000", nil, true)
	other := entity.NewCategory("Tea", "#111111", nil, true)
	_ = repo.Create(ctx, target)
	_ = repo.Create(ctx, other)
	uc := NewUpdateCategoryUseCase(repo)

	t.Run("renames and recolors", func(t *testing.T) {
		name, color, icon := "Espresso", "#222222", "☕"
		out, err := uc.Execute(ctx, UpdateCategoryInput{CategoryID: target.ID, Name: &name, Color: &color, Icon: &icon})
		require.NoError(t, err)
		assert.Equal(t, "Espresso", out.Category.Name)
		assert.Equal(t, "#222222", out.Category.Color)
		require.NotNil(t, out.Category.Icon)
		assert.Equal(t, "☕", *out.Category.Icon)
	})

	t.Run("clears icon", func(t *testing.T) {
		empty := ""
		out, err := uc.Execute(ctx, UpdateCategoryInput{CategoryID: target.ID, Icon: &empty})
		require.NoError(t, err)
		assert.Nil(t, out.Category.Icon)
	})

	t.Run("name collision", func(t *testing.T) {
		name := "Tea"
		_, err := uc.Execute(ctx, UpdateCategoryInput{CategoryID: target.ID, Name: &name})
		assert.Equal(t, domainerror.ErrCodeCategoryNameExists, categoryCode(t, err))
	})

	t.Run("not found", func(t *testing.T) {
		_, err := uc.Execute(ctx, UpdateCategoryInput{CategoryID: uuid.New()})
		assert.Equal(t, domainerror.ErrCodeCategoryNotFound, categoryCode(t, err))
	})
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("custom category cascades to expenses", func(t *testing.T) {
		repo := newMemoryCategoryRepo()
		c := entity.NewCategory("Coffee", "#000000", nil, true)
		_ = repo.Create(ctx, c)
		repo.expenses[c.ID] = 4

		out, err := NewDeleteCategoryUseCase(repo).Execute(ctx, DeleteCategoryInput{CategoryID: c.ID})
		require.NoError(t, err)
		assert.True(t, out.Success)
		assert.Equal(t, int64(4), out.DeletedExpenses)
		_, err = repo.FindByID(ctx, c.ID)
		assert.ErrorIs(t, err, domainerror.ErrCategoryNotFound)
	})

	t.Run("predefined category is rejected", func(t *testing.T) {
		repo := newMemoryCategoryRepo()
		c := entity.NewCategory("Groceries", "#10B981", nil, false)
		_ = repo.Create(ctx, c)

		_, err := NewDeleteCategoryUseCase(repo).Execute(ctx, DeleteCategoryInput{CategoryID: c.ID})
		assert.Equal(t, domainerror.ErrCodeCannotDeletePredefined, categoryCode(t, err))
		_, err = repo.FindByID(ctx, c.ID)
		assert.NoError(t, err)
	})

	t.Run("missing category", func(t *testing.T) {
		_, err := NewDeleteCategoryUseCase(newMemoryCategoryRepo()).Execute(ctx, DeleteCategoryInput{CategoryID: uuid.New()})
		assert.Equal(t, domainerror.ErrCodeCategoryNotFound, categoryCode(t, err))
	})
}
