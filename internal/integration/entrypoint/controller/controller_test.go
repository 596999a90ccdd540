package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/expense-tracker/config"
	"github.com/finance-tracker/expense-tracker/internal/application/usecase/report"
	"github.com/finance-tracker/expense-tracker/internal/infra/db"
	"github.com/finance-tracker/expense-tracker/internal/infra/dependency"
	"github.com/finance-tracker/expense-tracker/internal/integration/entrypoint/dto"
)

type apiClient struct {
	t      *testing.T
	engine *gin.Engine
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := db.NewConnection(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    filepath.Join(t.TempDir(), "api.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, database.Migrate())

	cfg := config.Load()
	cfg.AI.GeminiAPIKey = ""
	cfg.Report.RecipientEmail = ""
	cfg.RateLimit.Enabled = false

	inj, err := dependency.NewInjector(cfg, database.DB(), nil)
	require.NoError(t, err)

	return &apiClient{t: t, engine: inj.Router.Setup("test")}
}

func (a *apiClient) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// categoryID returns the id of a seeded category by name.
func (a *apiClient) categoryID(name string) string {
	a.t.Helper()
	w := a.do(http.MethodGet, "/api/v1/categories", nil)
	require.Equal(a.t, http.StatusOK, w.Code)
	for _, c := range decode[dto.CategoryListResponse](a.t, w).Categories {
		if c.Name == name {
			return c.ID
		}
	}
	a.t.Fatalf("category %q not found", name)
	return ""
}

func (a *apiClient) addExpense(category, amount, date string) dto.ExpenseResponse {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/v1/expenses", map[string]any{
		"amount":      json.Number(amount),
		"category_id": a.categoryID(category),
		"date":        date,
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[dto.ExpenseResponse](a.t, w)
}

func TestHealth(t *testing.T) {
	api := newAPI(t)

	w := api.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
}

func TestDashboard_PeriodValidation(t *testing.T) {
	api := newAPI(t)

	tests := []struct {
		name string
		path string
		code string
	}{
		{"missing month", "/api/v1/dashboard/summary?year=2024", "DSH-010002"},
		{"missing year", "/api/v1/dashboard/category-breakdown?month=3", "DSH-010002"},
		{"month out of range", "/api/v1/dashboard/daily-trend?month=13&year=2024", "DSH-010001"},
		{"month zero", "/api/v1/dashboard/overview?month=0&year=2024", "DSH-010001"},
		{"non numeric year", "/api/v1/dashboard/summary?month=3&year=abc", "DSH-010001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodGet, tt.path, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.code, decode[dto.ErrorResponse](t, w).Code)
		})
	}
}

func TestDashboard_EmptyMonth(t *testing.T) {
	api := newAPI(t)

	w := api.do(http.MethodGet, "/api/v1/dashboard/summary?month=2&year=2024", nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[dto.SummaryResponse](t, w)
	assert.False(t, summary.HasIncome)
	assert.Equal(t, "0.00", summary.TotalIncome)
	assert.Equal(t, "0.00", summary.TotalExpenses)
	assert.Equal(t, "0.00", summary.Balance)
	assert.Equal(t, "2024-02-29", summary.Period.EndDate)

	w = api.do(http.MethodGet, "/api/v1/dashboard/category-breakdown?month=2&year=2024", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[dto.CategoryBreakdownResponse](t, w).Categories)

	w = api.do(http.MethodGet, "/api/v1/dashboard/daily-trend?month=2&year=2024", nil)
	require.Equal(t, http.StatusOK, w.Code)
	trend := decode[dto.DailyTrendResponse](t, w)
	assert.Empty(t, trend.Days)
	assert.Empty(t, trend.Categories)
}

func TestDashboard_Aggregates(t *testing.T) {
	api := newAPI(t)

	w := api.do(http.MethodPost, "/api/v1/income", map[string]any{
		"month":  3,
		"year":   2024,
		"amount": json.Number("3000"),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	api.addExpense("Groceries", "100.50", "2024-03-05")
	api.addExpense("Bills", "49.50", "2024-03-05")
	api.addExpense("Groceries", "50", "2024-03-01")
	api.addExpense("Groceries", "999", "2024-04-01")

	w = api.do(http.MethodGet, "/api/v1/dashboard/summary?month=3&year=2024", nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[dto.SummaryResponse](t, w)
	assert.True(t, summary.HasIncome)
	assert.Equal(t, "3000.00", summary.TotalIncome)
	assert.Equal(t, "200.00", summary.TotalExpenses)
	assert.Equal(t, "2800.00", summary.Balance)
	assert.Equal(t, 3, summary.ExpenseCount)

	w = api.do(http.MethodGet, "/api/v1/dashboard/category-breakdown?month=3&year=2024", nil)
	require.Equal(t, http.StatusOK, w.Code)
	breakdown := decode[dto.CategoryBreakdownResponse](t, w)
	require.Len(t, breakdown.Categories, 2)
	byName := map[string]dto.CategoryTotalResponse{}
	for _, c := range breakdown.Categories {
		byName[c.Name] = c
	}
	assert.Equal(t, "150.50", byName["Groceries"].Total)
	assert.Equal(t, "75.25", byName["Groceries"].Percentage)
	assert.Equal(t, 2, byName["Groceries"].Count)
	assert.Equal(t, "49.50", byName["Bills"].Total)
	assert.Equal(t, "200.00", breakdown.TotalExpenses)

	w = api.do(http.MethodGet, "/api/v1/dashboard/daily-trend?month=3&year=2024", nil)
	require.Equal(t, http.StatusOK, w.Code)
	trend := decode[dto.DailyTrendResponse](t, w)
	require.Len(t, trend.Days, 2)
	assert.Equal(t, "2024-03-01", trend.Days[0].Date)
	assert.Equal(t, "Mar 01", trend.Days[0].Label)
	assert.Equal(t, "50.00", trend.Days[0].Total)
	assert.Equal(t, "2024-03-05", trend.Days[1].Date)
	assert.Equal(t, "150.00", trend.Days[1].Total)
	assert.Len(t, trend.Days[1].Categories, 2)
	assert.Len(t, trend.Categories, 2)

	w = api.do(http.MethodGet, "/api/v1/dashboard/overview?month=3&year=2024", nil)
	require.Equal(t, http.StatusOK, w.Code)
	overview := decode[dto.OverviewResponse](t, w)
	assert.Equal(t, summary.TotalExpenses, overview.Summary.TotalExpenses)
	assert.Len(t, overview.Categories, 2)
	assert.Len(t, overview.Trend.Days, 2)
}

func TestIncome_Envelope(t *testing.T) {
	api := newAPI(t)

	w := api.do(http.MethodGet, "/api/v1/income?month=5&year=2024", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `null`, string(mustField(t, w.Body.Bytes(), "income")))

	w = api.do(http.MethodPost, "/api/v1/income", map[string]any{
		"month":  5,
		"year":   2024,
		"amount": json.Number("1200.10"),
		"source": "Freelance",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodGet, "/api/v1/income?month=5&year=2024", nil)
	require.Equal(t, http.StatusOK, w.Code)
	envelope := decode[dto.IncomeEnvelope](t, w)
	require.NotNil(t, envelope.Income)
	assert.Equal(t, "1200.10", envelope.Income.Amount)
	assert.Equal(t, "Freelance", envelope.Income.Source)

	w = api.do(http.MethodPost, "/api/v1/income", map[string]any{
		"month":  5,
		"year":   2024,
		"amount": json.Number("-1"),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INC-010001", decode[dto.ErrorResponse](t, w).Code)
}

func mustField(t *testing.T, raw []byte, field string) json.RawMessage {
	t.Helper()
	var obj map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &obj))
	v, ok := obj[field]
	require.True(t, ok, "missing field %q", field)
	return v
}

func TestCategories_Errors(t *testing.T) {
	api := newAPI(t)

	// Listing seeds the predefined set.
	w := api.do(http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodPost, "/api/v1/categories", map[string]any{"name": "Groceries", "color": "#000000"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CAT-010005", decode[dto.ErrorResponse](t, w).Code)

	w = api.do(http.MethodPost, "/api/v1/categories", map[string]any{"name": "Pets", "color": "blue"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CAT-010002", decode[dto.ErrorResponse](t, w).Code)

	w = api.do(http.MethodDelete, "/api/v1/categories/"+api.categoryID("Bills"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CAT-010006", decode[dto.ErrorResponse](t, w).Code)

	w = api.do(http.MethodPut, "/api/v1/categories/00000000-0000-0000-0000-000000000001", map[string]any{"name": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategories_PredefinedSurviveDelete(t *testing.T) {
	api := newAPI(t)

	w := api.do(http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listed := decode[dto.CategoryListResponse](t, w).Categories
	require.NotEmpty(t, listed)
	for _, c := range listed {
		assert.False(t, c.IsCustom, c.Name)
	}

	bill := api.addExpense("Bills", "80", "2024-03-04")

	w = api.do(http.MethodDelete, "/api/v1/categories/"+api.categoryID("Bills"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CAT-010006", decode[dto.ErrorResponse](t, w).Code)

	w = api.do(http.MethodGet, "/api/v1/expenses/"+bill.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCategories_DeleteCascadesExpenses(t *testing.T) {
	api := newAPI(t)

	w := api.do(http.MethodPost, "/api/v1/categories", map[string]any{"name": "Pets", "color": "#AA5500"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[dto.CategoryResponse](t, w)
	assert.True(t, created.IsCustom)

	api.addExpense("Pets", "20", "2024-03-02")
	api.addExpense("Pets", "5", "2024-03-03")

	w = api.do(http.MethodDelete, "/api/v1/categories/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	deleted := decode[dto.DeleteCategoryResponse](t, w)
	assert.True(t, deleted.Success)
	assert.Equal(t, int64(2), deleted.DeletedExpenses)

	w = api.do(http.MethodGet, "/api/v1/expenses?month=3&year=2024", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[dto.ExpenseListResponse](t, w).Expenses)
}

func TestExpenses_CRUD(t *testing.T) {
	api := newAPI(t)

	created := api.addExpense("Food", "12.30", "2024-03-10")
	assert.Equal(t, "12.30", created.Amount)
	require.NotNil(t, created.Category)
	assert.Equal(t, "Food", created.Category.Name)

	w := api.do(http.MethodGet, "/api/v1/expenses/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodPut, "/api/v1/expenses/"+created.ID, map[string]any{
		"amount":      json.Number("15"),
		"category_id": api.categoryID("Restaurants"),
		"date":        "2024-03-11",
		"description": "Dinner",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[dto.ExpenseResponse](t, w)
	assert.Equal(t, "15.00", updated.Amount)
	assert.Equal(t, "2024-03-11", updated.Date)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Dinner", *updated.Description)

	w = api.do(http.MethodGet, "/api/v1/expenses?month=3&year=2024", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[dto.ExpenseListResponse](t, w)
	assert.Len(t, list.Expenses, 1)
	assert.Equal(t, "15.00", list.Total)

	w = api.do(http.MethodDelete, "/api/v1/expenses/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(http.MethodGet, "/api/v1/expenses/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "EXP-020001", decode[dto.ErrorResponse](t, w).Code)
}

func TestExpenses_Validation(t *testing.T) {
	api := newAPI(t)
	food := api.categoryID("Food")

	tests := []struct {
		name string
		body map[string]any
		code string
	}{
		{
			name: "negative amount",
			body: map[string]any{"amount": json.Number("-1"), "category_id": food, "date": "2024-03-01"},
			code: "EXP-010001",
		},
		{
			name: "bad date",
			body: map[string]any{"amount": json.Number("1"), "category_id": food, "date": "03/01/2024"},
			code: "EXP-010002",
		},
		{
			name: "unknown category",
			body: map[string]any{"amount": json.Number("1"), "category_id": "00000000-0000-0000-0000-000000000001", "date": "2024-03-01"},
			code: "EXP-010004",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodPost, "/api/v1/expenses", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.code, decode[dto.ErrorResponse](t, w).Code)
		})
	}
}

func TestSuggestCategory_Unavailable(t *testing.T) {
	api := newAPI(t)

	w := api.do(http.MethodPost, "/api/v1/expenses/suggest-category", map[string]any{"description": "Weekly shop"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "EXP-030001", decode[dto.ErrorResponse](t, w).Code)
}

func TestReports(t *testing.T) {
	api := newAPI(t)
	api.addExpense("Food", "10", "2024-03-01")

	w := api.do(http.MethodGet, "/api/v1/reports/monthly/export?month=3&year=2024", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, report.SpreadsheetContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "expenses-2024-03.xlsx")
	assert.NotEmpty(t, w.Body.Bytes())

	w = api.do(http.MethodPost, "/api/v1/reports/monthly/email", map[string]any{"month": 3, "year": 2024})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "RPT-010001", decode[dto.ErrorResponse](t, w).Code)

	w = api.do(http.MethodPost, "/api/v1/reports/monthly/email", map[string]any{
		"month": 3,
		"year":  2024,
		"email": "me@example.com",
	})
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	resp := decode[dto.SendMonthlyReportResponse](t, w)
	assert.Equal(t, "me@example.com", resp.Recipient)
	assert.Equal(t, "Mar 2024", resp.Period)
}
