// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of money movement a transaction records.
type TransactionType string

const (
	TransactionTypeIncome     TransactionType = "INCOME"
	TransactionTypeExpense    TransactionType = "EXPENSE"
	TransactionTypeTransfer   TransactionType = "TRANSFER"
	TransactionTypeInvestment TransactionType = "INVESTMENT"
)

// IsValid reports whether the transaction type is one of the known types.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer, TransactionTypeInvestment:
		return true
	}
	return false
}

// Frequency represents the recurrence of an automatic transaction.
type Frequency string

const (
	FrequencyNone       Frequency = "NONE"
	FrequencyDaily      Frequency = "DAILY"
	FrequencyWeekly     Frequency = "WEEKLY"
	FrequencyMonthly    Frequency = "MONTHLY"
	FrequencyCustomDate Frequency = "CUSTOM_DATE"
)

// IsValid reports whether the frequency is one of the known values.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyNone, FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyCustomDate:
		return true
	}
	return false
}

// Transaction represents a single entry of the transaction log.
//
// WalletID is the source wallet. ToWalletID is the transfer destination and may
// identify either a wallet or an envelope. BudgetID is only meaningful for expenses.
type Transaction struct {
	ID         string          `json:"id"`
	Type       TransactionType `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	WalletID   string          `json:"walletId,omitempty"`
	ToWalletID string          `json:"toWalletId,omitempty"`
	EnvelopeID string          `json:"envelopeId,omitempty"`
	BudgetID   string          `json:"budgetId,omitempty"`
	Category   string          `json:"category"`
	Date       time.Time       `json:"date"`
	IsAuto     bool            `json:"isAuto"`
	Frequency  Frequency       `json:"frequency"`
	Comment    string          `json:"comment,omitempty"`
}

// HasBudget reports whether the transaction is charged against a budget.
func (t *Transaction) HasBudget() bool {
	return t.BudgetID != ""
}
