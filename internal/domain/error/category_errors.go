// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when attempting to create a category with an existing name.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrCategoryNameRequired is returned when the category name is empty.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrInvalidColorFormat is returned when the category color format is invalid.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrCannotDeletePredefined is returned when deleting one of the seeded categories.
	ErrCannotDeletePredefined = errors.New("cannot delete predefined categories")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameTooLong    CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidColorFormat     CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameRequired   CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryNotFound       CategoryErrorCode = "CAT-010004"
	ErrCodeCategoryNameExists     CategoryErrorCode = "CAT-010005"
	ErrCodeCannotDeletePredefined CategoryErrorCode = "CAT-010006"

	// Internal errors (99XXXX)
	ErrCodeCategoryInternalError CategoryErrorCode = "CAT-990001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
