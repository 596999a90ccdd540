// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Report domain errors.
var (
	// ErrRecipientRequired is returned when a report e-mail has nowhere to go.
	ErrRecipientRequired = errors.New("recipient email is required")

	// ErrInvalidRecipient is returned when the recipient address is malformed.
	ErrInvalidRecipient = errors.New("recipient email is invalid")

	// ErrExportFailed is returned when the spreadsheet cannot be produced.
	ErrExportFailed = errors.New("failed to build export")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeRecipientRequired ReportErrorCode = "RPT-010001"
	ErrCodeInvalidRecipient  ReportErrorCode = "RPT-010002"

	// Export errors (02XXXX)
	ErrCodeExportFailed ReportErrorCode = "RPT-020001"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
