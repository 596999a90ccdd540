// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Income domain errors.
var (
	// ErrInvalidIncomeAmount is returned when the income amount is missing, malformed or negative.
	ErrInvalidIncomeAmount = errors.New("income amount must be a non-negative number")
)

// IncomeErrorCode defines error codes for income errors.
// Format: INC-XXYYYY where XX is category and YYYY is specific error.
type IncomeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidIncomeAmount IncomeErrorCode = "INC-010001"
	ErrCodeInvalidIncomePeriod IncomeErrorCode = "INC-010002"

	// Internal errors (99XXXX)
	ErrCodeIncomeInternalError IncomeErrorCode = "INC-990001"
)

// IncomeError represents an income error with code and message.
type IncomeError struct {
	Code    IncomeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IncomeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *IncomeError) Unwrap() error {
	return e.Err
}

// NewIncomeError creates a new IncomeError with the given code and message.
func NewIncomeError(code IncomeErrorCode, message string, err error) *IncomeError {
	return &IncomeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
