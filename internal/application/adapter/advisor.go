// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finapple/backend/internal/domain/entity"
)

// AdviceRequest carries the figures an advisor bases its tip on.
type AdviceRequest struct {
	Wallets      []entity.Wallet
	Budgets      []entity.Budget
	Envelopes    []entity.Envelope
	Transactions []entity.Transaction
	Language     entity.Language
}

// Advisor produces a short financial tip.
type Advisor interface {
	// Advise returns a single tip for the given figures.
	Advise(ctx context.Context, request *AdviceRequest) (string, error)

	// IsAvailable checks if the advisor is properly configured.
	IsAvailable() bool
}
