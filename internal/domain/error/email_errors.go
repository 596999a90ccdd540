package error

import "errors"

// Report e-mail delivery errors.
var (
	ErrEmailJobNotFound = errors.New("email job not found")
	ErrInvalidTemplate  = errors.New("invalid email template")
)

// EmailErrorCode identifies an e-mail delivery failure.
// Format: EMAIL-XXYYYY, 01 queue, 02 provider, 03 template.
type EmailErrorCode string

const (
	ErrCodeEmailQueueFailed EmailErrorCode = "EMAIL-010001"

	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020003"

	ErrCodeInvalidTemplate EmailErrorCode = "EMAIL-030001"
)

// EmailError wraps a queue, provider or template failure with its code.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsPermanentEmailFailure reports whether retrying the send cannot succeed.
func IsPermanentEmailFailure(err error) bool {
	var emailErr *EmailError
	return errors.As(err, &emailErr) &&
		(emailErr.Code == ErrCodePermanentEmailFailure || emailErr.Code == ErrCodeInvalidTemplate)
}
