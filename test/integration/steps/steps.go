package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/expense-tracker/internal/application/usecase/category"
	"github.com/finance-tracker/expense-tracker/internal/integration/persistence"
	"github.com/finance-tracker/expense-tracker/internal/integration/persistence/model"
	"github.com/finance-tracker/expense-tracker/test/integration/mock"
)

const dateLayout = "2006-01-02"

// Data setup

func (t *testContext) thePredefinedCategoriesExist() error {
	_, err := category.SeedPredefined(context.Background(), persistence.NewCategoryRepository(t.db.DbConn))
	return err
}

func (t *testContext) aCategoryExistsWithNameAndColor(name, color string) error {
	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		IsCustom:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.DbConn.Create(categoryModel).Error; err != nil {
		return err
	}
	t.currentCategoryID = categoryModel.ID
	return nil
}

// theFollowingExpensesExist inserts one expense per table row and selects the
// category of the last row. Columns: category, amount, date and an optional description.
func (t *testContext) theFollowingExpensesExist(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("expense table needs a header and at least one row")
	}

	columns := map[string]int{}
	for i, cell := range table.Rows[0].Cells {
		columns[cell.Value] = i
	}

	for _, row := range table.Rows[1:] {
		value := func(column string) string {
			if i, ok := columns[column]; ok && i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}

		var categoryModel model.CategoryModel
		if err := t.db.DbConn.Where("name = ?", value("category")).First(&categoryModel).Error; err != nil {
			return fmt.Errorf("category '%s' not found: %w", value("category"), err)
		}

		var description *string
		if d := value("description"); d != "" {
			description = &d
		}

		if err := t.insertExpense(categoryModel.ID, value("amount"), value("date"), description); err != nil {
			return err
		}
		t.currentCategoryID = categoryModel.ID
	}
	return nil
}

func (t *testContext) anExpenseReferencesAMissingCategory(amount, date string) error {
	// The dangling reference cannot be written with foreign keys enforced.
	if err := t.db.DbConn.Exec("PRAGMA foreign_keys = OFF").Error; err != nil {
		return err
	}
	defer t.db.DbConn.Exec("PRAGMA foreign_keys = ON")

	return t.insertExpense(uuid.New(), amount, date, nil)
}

func (t *testContext) insertExpense(categoryID uuid.UUID, amount, date string, description *string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}

	now := time.Now().UTC()
	expenseModel := &model.ExpenseModel{
		ID:          uuid.New(),
		Amount:      value,
		CategoryID:  categoryID,
		Date:        day,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.db.DbConn.Create(expenseModel).Error; err != nil {
		return err
	}
	t.lastExpenseID = expenseModel.ID
	return nil
}

func (t *testContext) theIncomeIs(month, year int, amount string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	now := time.Now().UTC()
	return t.db.DbConn.Create(&model.IncomeModel{
		ID:        uuid.New(),
		Month:     month,
		Year:      year,
		Amount:    value,
		Source:    "Salary",
		CreatedAt: now,
		UpdatedAt: now,
	}).Error
}

// External services

func (t *testContext) theEmailProviderAcceptsMessages() error {
	t.apiMock.SetResponse(http.MethodPost, "/emails", http.StatusOK, map[string]any{
		"id": "email-" + uuid.NewString(),
	})
	return nil
}

func (t *testContext) theEmailProviderFailsWithStatus(status int) error {
	t.apiMock.SetResponse(http.MethodPost, "/emails", status, map[string]any{
		"statusCode": status,
		"name":       "application_error",
		"message":    "upstream unavailable",
	})
	return nil
}

func (t *testContext) theEmailWorkerProcessesTheQueue() error {
	t.injector.EmailWorker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) theEmailProviderShouldHaveReceivedMessages(count int) error {
	got := t.apiMock.RequestCount(http.MethodPost, "/emails")
	if got != count {
		return fmt.Errorf("expected %d messages, email provider received %d", count, got)
	}
	return nil
}

func (t *testContext) theEmailProviderMessageFieldShouldBe(index int, field, expected string) error {
	body := t.apiMock.GetRequestBody(http.MethodPost, "/emails", index)
	if body == nil {
		return fmt.Errorf("email provider has no message %d", index)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in message: %v", field, body)
	}
	if actual := fmt.Sprintf("%v", value); actual != expected {
		return fmt.Errorf("message field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func (t *testContext) theRateLimitCounterShouldBeStoredInRedis() error {
	for _, key := range mock.RedisServer().Keys() {
		if strings.HasPrefix(key, "ratelimit:") {
			return nil
		}
	}
	return errors.New("no rate limit key found in redis")
}

// Requests

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) iSendRequestsToWithBody(count int, method, path string, body *godog.DocString) error {
	for i := 0; i < count; i++ {
		if err := t.iSendARequestToWithBody(method, path, body); err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{expense_id}}", t.lastExpenseID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:  resp.StatusCode,
		headers: resp.Header,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody
	t.captureIDs(responseBody)
	return nil
}

// captureIDs remembers created resources for later placeholders.
func (t *testContext) captureIDs(body map[string]any) {
	idStr, ok := body["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	if _, isExpense := body["amount"]; isExpense {
		if _, hasCategory := body["category_id"]; hasCategory {
			t.lastExpenseID = id
			return
		}
	}
	if _, hasColor := body["color"]; hasColor {
		t.currentCategoryID = id
	}
}

// Response assertions

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	_, err := t.jsonBody()
	return err
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeNull(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	parent, last := body, field
	if i := strings.LastIndex(field, "."); i >= 0 {
		p, ok := getFieldValue(body, field[:i]).(map[string]any)
		if !ok {
			return fmt.Errorf("field '%s' not found in response: %v", field[:i], body)
		}
		parent, last = p, field[i+1:]
	}

	value, exists := parent[last]
	if !exists {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	if value != nil {
		return fmt.Errorf("field '%s' expected null, got %v", field, value)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, body)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldBe(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if actual := t.response.headers.Get(header); actual != expected {
		return fmt.Errorf("header '%s' expected '%s', got '%s'", header, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldContain(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if actual := t.response.headers.Get(header); !strings.Contains(actual, expected) {
		return fmt.Errorf("header '%s' expected to contain '%s', got '%s'", header, expected, actual)
	}
	return nil
}

// Database assertions

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	var field any = objectMap
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}
