package envelope

import (
	"context"
	"fmt"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	"github.com/finapple/backend/internal/domain/ledger"
)

// GetEnvelopeInput represents the input for envelope details.
type GetEnvelopeInput struct {
	ID string
}

// GetEnvelopeOutput represents an envelope with the transfers paid into it.
type GetEnvelopeOutput struct {
	Envelope  entity.Envelope
	Transfers []entity.Transaction
}

// GetEnvelopeUseCase returns envelope details.
type GetEnvelopeUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewGetEnvelopeUseCase creates a new GetEnvelopeUseCase instance.
func NewGetEnvelopeUseCase(snapshotRepo adapter.SnapshotRepository) *GetEnvelopeUseCase {
	return &GetEnvelopeUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the lookup.
func (uc *GetEnvelopeUseCase) Execute(ctx context.Context, input GetEnvelopeInput) (*GetEnvelopeOutput, error) {
	s, err := uc.snapshotRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load envelope: %w", err)
	}

	e, ok := s.FindEnvelope(input.ID)
	if !ok {
		return nil, notFound(input.ID)
	}

	return &GetEnvelopeOutput{
		Envelope:  e,
		Transfers: ledger.TransactionsTo(s.Transactions, e.ID),
	}, nil
}
