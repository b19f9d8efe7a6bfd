// Package error defines domain-specific errors for the finapple backend.
package error

import "errors"

// Settings domain errors.
var (
	// ErrBlankSettingsItem is returned when a category or currency name is blank.
	ErrBlankSettingsItem = errors.New("name must not be blank")

	// ErrUnknownCategoryKind is returned for a category kind outside income/expense/investment.
	ErrUnknownCategoryKind = errors.New("unknown category kind")

	// ErrInvalidTheme is returned when the theme is neither light nor dark.
	ErrInvalidTheme = errors.New("invalid theme")

	// ErrInvalidLanguage is returned when the language is not supported.
	ErrInvalidLanguage = errors.New("invalid language")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	ErrCodeBlankSettingsItem   SettingsErrorCode = "SET-010001"
	ErrCodeUnknownCategoryKind SettingsErrorCode = "SET-010002"
	ErrCodeInvalidTheme        SettingsErrorCode = "SET-010003"
	ErrCodeInvalidLanguage     SettingsErrorCode = "SET-010004"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
