// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Request-level errors not tied to a domain.
var (
	// ErrRateLimited is returned when a client exceeds its request budget.
	ErrRateLimited = errors.New("too many requests")
)

// RequestErrorCode defines error codes for request-level errors.
type RequestErrorCode string

const (
	ErrCodeRateLimited RequestErrorCode = "REQ-020001"
)
