// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// Wallet represents a cash-holding account.
// Balance is only changed by the ledger impact engine or by an explicit wallet edit.
type Wallet struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
	Color    string          `json:"color"`
}

// Budget represents a spending cap with cumulative spending.
type Budget struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Limit    decimal.Decimal `json:"limit"`
	Spent    decimal.Decimal `json:"spent"`
	Currency string          `json:"currency"`
	Color    string          `json:"color"`
}

var hundred = decimal.NewFromInt(100)

// Remaining returns the part of the limit not yet spent, never negative.
func (b *Budget) Remaining() decimal.Decimal {
	remaining := b.Limit.Sub(b.Spent)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// RemainingPercent returns Remaining as a percentage of Limit clamped to [0, 100].
func (b *Budget) RemainingPercent() decimal.Decimal {
	if !b.Limit.IsPositive() {
		return decimal.Zero
	}
	return clampPercent(b.Remaining().Div(b.Limit).Mul(hundred))
}

// IsExceeded reports whether spending went past the limit.
func (b *Budget) IsExceeded() bool {
	return b.Spent.GreaterThan(b.Limit)
}

// Envelope represents a savings goal with a running balance.
type Envelope struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
	Goal     decimal.Decimal `json:"goal"`
	Currency string          `json:"currency"`
	Color    string          `json:"color"`
}

// Progress returns the balance as a percentage of the goal, capped at 100.
func (e *Envelope) Progress() decimal.Decimal {
	if !e.Goal.IsPositive() {
		return decimal.Zero
	}
	return clampPercent(e.Balance.Div(e.Goal).Mul(hundred))
}

func clampPercent(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}
