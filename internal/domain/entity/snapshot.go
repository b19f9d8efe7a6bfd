// Package entity defines the core business entities for the domain layer.
package entity

import (
	"slices"
	"time"
)

// Snapshot is the complete state of the tracker: every entity collection plus
// the settings record. It is owned by the orchestration layer and persisted as a
// single serialized blob.
type Snapshot struct {
	Version      int64         `json:"version"`
	Wallets      []Wallet      `json:"wallets"`
	Budgets      []Budget      `json:"budgets"`
	Envelopes    []Envelope    `json:"envelopes"`
	Investments  []Investment  `json:"investments"`
	Transactions []Transaction `json:"transactions"`
	Settings     Settings      `json:"settings"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// NewSnapshot returns an empty snapshot with default settings.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Wallets:      []Wallet{},
		Budgets:      []Budget{},
		Envelopes:    []Envelope{},
		Investments:  []Investment{},
		Transactions: []Transaction{},
		Settings:     DefaultSettings(),
	}
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	return &Snapshot{
		Version:      s.Version,
		Wallets:      slices.Clone(s.Wallets),
		Budgets:      slices.Clone(s.Budgets),
		Envelopes:    slices.Clone(s.Envelopes),
		Investments:  slices.Clone(s.Investments),
		Transactions: slices.Clone(s.Transactions),
		Settings:     s.Settings.Clone(),
		UpdatedAt:    s.UpdatedAt,
	}
}

// FindTransaction returns the transaction with the given id.
func (s *Snapshot) FindTransaction(id string) (Transaction, bool) {
	i := slices.IndexFunc(s.Transactions, func(t Transaction) bool { return t.ID == id })
	if i < 0 {
		return Transaction{}, false
	}
	return s.Transactions[i], true
}

// FindWallet returns the wallet with the given id.
func (s *Snapshot) FindWallet(id string) (Wallet, bool) {
	i := slices.IndexFunc(s.Wallets, func(w Wallet) bool { return w.ID == id })
	if i < 0 {
		return Wallet{}, false
	}
	return s.Wallets[i], true
}

// FindBudget returns the budget with the given id.
func (s *Snapshot) FindBudget(id string) (Budget, bool) {
	i := slices.IndexFunc(s.Budgets, func(b Budget) bool { return b.ID == id })
	if i < 0 {
		return Budget{}, false
	}
	return s.Budgets[i], true
}

// FindEnvelope returns the envelope with the given id.
func (s *Snapshot) FindEnvelope(id string) (Envelope, bool) {
	i := slices.IndexFunc(s.Envelopes, func(e Envelope) bool { return e.ID == id })
	if i < 0 {
		return Envelope{}, false
	}
	return s.Envelopes[i], true
}

// FindInvestment returns the investment with the given id.
func (s *Snapshot) FindInvestment(id string) (Investment, bool) {
	i := slices.IndexFunc(s.Investments, func(inv Investment) bool { return inv.ID == id })
	if i < 0 {
		return Investment{}, false
	}
	return s.Investments[i], true
}
