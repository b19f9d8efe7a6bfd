// Package error defines domain-specific errors for the finapple backend.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not in the log.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is unknown.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionDate is returned when the transaction date cannot be parsed.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidFrequency is returned when the recurrence frequency is unknown.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrMissingSourceWallet is returned when a transaction needs a source wallet and has none.
	ErrMissingSourceWallet = errors.New("source wallet is required")

	// ErrMissingTransferTarget is returned when a transfer has no destination.
	ErrMissingTransferTarget = errors.New("transfer destination is required")

	// ErrInvalidMultiplier is returned when an impact multiplier is neither +1 nor -1.
	ErrInvalidMultiplier = errors.New("impact multiplier must be +1 or -1")

	// ErrWalletNotFound is returned when a wallet is not found.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrBudgetNotFound is returned when a budget is not found.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrEnvelopeNotFound is returned when an envelope is not found.
	ErrEnvelopeNotFound = errors.New("envelope not found")

	// ErrDuplicateID is returned when an entity is created with an id already in use.
	ErrDuplicateID = errors.New("id already in use")

	// ErrBlankName is returned when an entity is saved without a name.
	ErrBlankName = errors.New("name must not be blank")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType LedgerErrorCode = "LDG-010001"
	ErrCodeInvalidTransactionDate LedgerErrorCode = "LDG-010002"
	ErrCodeInvalidFrequency       LedgerErrorCode = "LDG-010003"
	ErrCodeMissingSourceWallet    LedgerErrorCode = "LDG-010004"
	ErrCodeMissingTransferTarget  LedgerErrorCode = "LDG-010005"
	ErrCodeMissingLedgerFields    LedgerErrorCode = "LDG-010006"
	ErrCodeBlankName              LedgerErrorCode = "LDG-010007"
	ErrCodeInvalidMultiplier      LedgerErrorCode = "LDG-010008"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound LedgerErrorCode = "LDG-020001"
	ErrCodeWalletNotFound      LedgerErrorCode = "LDG-020002"
	ErrCodeBudgetNotFound      LedgerErrorCode = "LDG-020003"
	ErrCodeEnvelopeNotFound    LedgerErrorCode = "LDG-020004"

	// Conflict errors (03XXXX)
	ErrCodeDuplicateID LedgerErrorCode = "LDG-030001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
