// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidAmount is returned when an amount is missing, malformed or negative.
	ErrInvalidAmount = errors.New("amount must be a non-negative number")

	// ErrInvalidExpenseDate is returned when the expense date cannot be parsed.
	ErrInvalidExpenseDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrExpenseCategoryRequired is returned when no category is referenced.
	ErrExpenseCategoryRequired = errors.New("category_id is required")

	// ErrExpenseCategoryNotFound is returned when the referenced category does not exist.
	ErrExpenseCategoryNotFound = errors.New("referenced category does not exist")

	// ErrDescriptionRequired is returned when a category suggestion is requested without text.
	ErrDescriptionRequired = errors.New("description is required")

	// ErrSuggestionUnavailable is returned when the category suggestion service is not configured or failing.
	ErrSuggestionUnavailable = errors.New("category suggestion service unavailable")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount           ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseDate      ExpenseErrorCode = "EXP-010002"
	ErrCodeExpenseCategoryRequired ExpenseErrorCode = "EXP-010003"
	ErrCodeExpenseCategoryNotFound ExpenseErrorCode = "EXP-010004"
	ErrCodeDescriptionRequired     ExpenseErrorCode = "EXP-010005"

	// Not found errors (02XXXX)
	ErrCodeExpenseNotFound ExpenseErrorCode = "EXP-020001"

	// External service errors (03XXXX)
	ErrCodeSuggestionUnavailable ExpenseErrorCode = "EXP-030001"

	// Internal errors (99XXXX)
	ErrCodeExpenseInternalError ExpenseErrorCode = "EXP-990001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
