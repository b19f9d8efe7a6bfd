// Package error defines domain-specific errors for the finapple backend.
package error

import "errors"

// Investment domain errors.
var (
	// ErrInvestmentNotFound is returned when an investment is not found.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrInvalidPayoutFrequency is returned when the payout frequency is unknown.
	ErrInvalidPayoutFrequency = errors.New("invalid payout frequency")

	// ErrInvalidInterestType is returned when the interest type is unknown.
	ErrInvalidInterestType = errors.New("invalid interest type")

	// ErrInvalidPurchaseDate is returned when the purchase date cannot be parsed.
	ErrInvalidPurchaseDate = errors.New("invalid purchase date")

	// ErrInvalidTermDate is returned when the term date is neither a date nor "perpetual".
	ErrInvalidTermDate = errors.New("invalid term date")
)

// InvestmentErrorCode defines error codes for investment errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InvestmentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPayoutFrequency InvestmentErrorCode = "INV-010001"
	ErrCodeInvalidInterestType    InvestmentErrorCode = "INV-010002"
	ErrCodeInvalidPurchaseDate    InvestmentErrorCode = "INV-010003"
	ErrCodeInvalidTermDate        InvestmentErrorCode = "INV-010004"
	ErrCodeMissingInvestmentField InvestmentErrorCode = "INV-010005"

	// Lookup errors (02XXXX)
	ErrCodeInvestmentNotFound InvestmentErrorCode = "INV-020001"

	// Conflict errors (03XXXX)
	ErrCodeDuplicateInvestment InvestmentErrorCode = "INV-030001"
)

// InvestmentError represents an investment error with code and message.
type InvestmentError struct {
	Code    InvestmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvestmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvestmentError) Unwrap() error {
	return e.Err
}

// NewInvestmentError creates a new InvestmentError with the given code and message.
func NewInvestmentError(code InvestmentErrorCode, message string, err error) *InvestmentError {
	return &InvestmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
