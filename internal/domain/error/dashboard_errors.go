// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidPeriod is returned when a month/year pair cannot be resolved to a calendar month.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrMissingPeriod is returned when month or year is not provided.
	ErrMissingPeriod = errors.New("month and year are required")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod DashboardErrorCode = "DSH-010001"
	ErrCodeMissingPeriod DashboardErrorCode = "DSH-010002"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
