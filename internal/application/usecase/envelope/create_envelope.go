package envelope

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/domain/entity"
	domainerror "github.com/finapple/backend/internal/domain/error"
)

// CreateEnvelopeInput represents the input for envelope creation.
type CreateEnvelopeInput struct {
	ID string
	EnvelopeInput
}

// CreateEnvelopeOutput represents the output of envelope creation.
type CreateEnvelopeOutput struct {
	Envelope entity.Envelope
}

// CreateEnvelopeUseCase handles envelope creation logic.
type CreateEnvelopeUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewCreateEnvelopeUseCase creates a new CreateEnvelopeUseCase instance.
func NewCreateEnvelopeUseCase(snapshotRepo adapter.SnapshotRepository) *CreateEnvelopeUseCase {
	return &CreateEnvelopeUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute performs the envelope creation.
func (uc *CreateEnvelopeUseCase) Execute(ctx context.Context, input CreateEnvelopeInput) (*CreateEnvelopeOutput, error) {
	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}

	e, err := input.toEntity(id)
	if err != nil {
		return nil, err
	}

	_, err = uc.snapshotRepo.Update(ctx, func(s *entity.Snapshot) error {
		// Transfers resolve wallets before envelopes, so the id must be unique across both.
		if indexOf(s.Envelopes, id) >= 0 {
			return duplicate()
		}
		if _, ok := s.FindWallet(id); ok {
			return duplicate()
		}
		s.Envelopes = append(s.Envelopes, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create envelope: %w", err)
	}

	slog.Info("Envelope created", "envelope_id", e.ID, "goal", e.Goal.String())

	return &CreateEnvelopeOutput{
		Envelope: e,
	}, nil
}

func duplicate() error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeDuplicateID,
		"envelope id already in use",
		domainerror.ErrDuplicateID,
	)
}
